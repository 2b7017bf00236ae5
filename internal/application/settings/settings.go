// Package settings defines application-level configuration data.
package settings

// BedrockConfig defines Bedrock runtime connection settings.
type BedrockConfig struct {
	Region   string `yaml:"region" kong:"help='AWS region of the Bedrock runtime',env='AWS_REGION',default='us-east-1'"`
	Endpoint string `yaml:"endpoint" kong:"help='Override Bedrock runtime endpoint URL',env='BEDROCK_ENDPOINT'"`
}

// LogConfig defines structured logging settings.
type LogConfig struct {
	Level  string `yaml:"level" kong:"help='Log level (debug/info/warn/error)',env='LOG_LEVEL',default='info'"`
	Format string `yaml:"format" kong:"help='Log format (json/text)',env='LOG_FORMAT',default='json'"`
	File   string `yaml:"file" kong:"help='Rotating log file path, in addition to stderr',env='LOG_FILE'"`
}

// Settings represents the application configuration.
type Settings struct {
	Bedrock BedrockConfig `yaml:"bedrock" kong:"embed,prefix='bedrock.'"`
	Log     LogConfig     `yaml:"log" kong:"embed,prefix='log.'"`
}
