package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/summarize/internal/infrastructure/logging"
)

var configEnv = []string{PathEnv, "AWS_REGION", "BEDROCK_ENDPOINT", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE"}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", cfg.Bedrock.Region)
	assert.Empty(t, cfg.Bedrock.Endpoint)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.Log.File)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, strings.Join([]string{
		"bedrock:",
		"  region: eu-central-1",
		"  endpoint: http://localhost:4566",
		"log:",
		"  level: debug",
		"  format: text",
	}, "\n"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "eu-central-1", cfg.Bedrock.Region)
	assert.Equal(t, "http://localhost:4566", cfg.Bedrock.Endpoint)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)

	// Files are never written back.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "file:")
}

func TestLoad_PathFromEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "bedrock:\n  region: ap-northeast-1\n")
	t.Setenv(PathEnv, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "ap-northeast-1", cfg.Bedrock.Region)
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("AWS_REGION", "us-west-2")
	t.Setenv("BEDROCK_ENDPOINT", " http://bedrock.local ")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "us-west-2", cfg.Bedrock.Region)
	assert.Equal(t, "http://bedrock.local", cfg.Bedrock.Endpoint)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_EmptyFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", cfg.Bedrock.Region)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "missing explicit config file")

	_, err = Load(writeConfig(t, "bedrock: ["))
	assert.Error(t, err, "corrupt yaml")
}

func TestYAMLLoader_Lookup(t *testing.T) {
	resolver, err := YAMLLoader(strings.NewReader("flat_key: a\nbedrock:\n  region: b\n"))
	require.NoError(t, err)

	tests := []struct {
		flag string
		want any
	}{
		{flag: "flat-key", want: "a"},
		{flag: "bedrock.region", want: "b"},
		{flag: "bedrock.endpoint", want: nil},
		{flag: "log.level", want: nil},
	}
	for _, tt := range tests {
		got, err := resolver.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: tt.flag}})
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.flag)
	}
}

func TestLoad_LogLevelIsNormalizedByLogger(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "INFO")
	t.Setenv("LOG_FORMAT", "Text")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "INFO", cfg.Log.Level)

	logger, err := logging.New(cfg.Log, io.Discard)
	require.NoError(t, err)
	assert.NoError(t, logger.Close())
}
