// Package config handles configuration loading.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/tesso57/summarize/internal/application/settings"
	"gopkg.in/yaml.v3"
)

// PathEnv names the environment variable holding an optional config file path.
const PathEnv = "SUMMARIZE_CONFIG"

const defaultRegion = "us-east-1"

// Load resolves settings from defaults, environment variables and an
// optional YAML file. An empty path falls back to PathEnv. Nothing is
// written back to disk.
func Load(path string) (settings.Settings, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = strings.TrimSpace(os.Getenv(PathEnv))
	}

	var options []kong.Option
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return settings.Settings{}, fmt.Errorf("failed to read config file: %w", err)
		}
		options = append(options, kong.Configuration(YAMLLoader, path))
	}

	var cfg settings.Settings
	parser, err := kong.New(&cfg, options...)
	if err != nil {
		return settings.Settings{}, err
	}
	if _, err := parser.Parse([]string{}); err != nil {
		return settings.Settings{}, err
	}

	return Normalize(cfg), nil
}

// Normalize trims values and restores defaults blanked by the environment.
func Normalize(cfg settings.Settings) settings.Settings {
	cfg.Bedrock.Region = strings.TrimSpace(cfg.Bedrock.Region)
	cfg.Bedrock.Endpoint = strings.TrimSpace(cfg.Bedrock.Endpoint)
	cfg.Log.File = strings.TrimSpace(cfg.Log.File)
	if cfg.Bedrock.Region == "" {
		cfg.Bedrock.Region = defaultRegion
	}
	return cfg
}

// YAMLLoader is a kong.ConfigurationLoader for YAML files. Nested keys
// are matched against dotted flag names such as "bedrock.region".
func YAMLLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		names := []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")}
		for _, name := range names {
			if v, ok := lookup(values, name); ok {
				return v, nil
			}
		}
		return nil, nil
	}
	return f, nil
}

func lookup(values map[string]any, name string) (any, bool) {
	if v, ok := values[name]; ok {
		return v, true
	}

	parts := strings.Split(name, ".")
	if len(parts) < 2 {
		return nil, false
	}
	curr := values
	for i, part := range parts {
		if i == len(parts)-1 {
			v, ok := curr[part]
			return v, ok
		}
		next, ok := curr[part].(map[string]any)
		if !ok {
			return nil, false
		}
		curr = next
	}
	return nil, false
}
