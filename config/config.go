package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// TokenEnvVar is the environment variable holding the GitHub bearer token.
const TokenEnvVar = "GITHUB_TOKEN"

// Settings is the resolved runtime configuration of the tool.
type Settings struct {
	// Token is the bearer token sent as "Authorization: token <value>".
	Token string
	// BaseURL overrides the API endpoint (GitHub Enterprise, tests).
	// Empty means the public https://api.github.com host.
	BaseURL string
}

// fileConfig is the on-disk YAML configuration shape.
type fileConfig struct {
	Token   string `yaml:"token"`    // Inline, ${ENV_VAR}, or file path
	BaseURL string `yaml:"base_url"` // Optional API endpoint override
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings builds the runtime settings. When path is empty a config file
// is searched in the default locations; the file is optional and the
// GITHUB_TOKEN environment variable always serves as the token fallback.
func NewSettings(path string) (*Settings, error) {
	settings := &Settings{}

	cfgPath := path
	if cfgPath == "" {
		if found, err := FindConfigFile(); err == nil {
			cfgPath = found
		}
	}

	if cfgPath != "" {
		cfg, err := loadFile(cfgPath)
		if err != nil {
			return nil, err
		}
		settings.Token = ResolveToken(cfg.Token)
		settings.BaseURL = cfg.BaseURL
	}

	if settings.Token == "" {
		settings.Token = os.Getenv(TokenEnvVar)
	}

	return settings, nil
}

// loadFile reads and parses a configuration file.
func loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg fileConfig
	if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	return &cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".github-tools.yaml",
		".github-tools.yml",
		"github-tools.yaml",
		"github-tools.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", os.ErrNotExist
}

// ResolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func ResolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	// Expand ${ENV_VAR} references
	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	// If the resolved value is a path to an existing file, read the token from it
	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Debugf("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}
