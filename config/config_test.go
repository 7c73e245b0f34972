package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shekharamit/agents/config"
)

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestResolveToken(t *testing.T) {
	t.Run("should return empty string for empty input", func(t *testing.T) {
		t.Parallel()

		// given
		raw := ""

		// when
		result := config.ResolveToken(raw)

		// then
		assert.Empty(t, result)
	})

	t.Run("should return inline token unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "ghp_abc123xyz"

		// when
		result := config.ResolveToken(raw)

		// then
		assert.Equal(t, "ghp_abc123xyz", result)
	})

	t.Run("should expand environment variable reference", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_TOKEN_RESOLVE", "my-secret-token")
		raw := "${TEST_TOKEN_RESOLVE}"

		// when
		result := config.ResolveToken(raw)

		// then
		assert.Equal(t, "my-secret-token", result)
	})

	t.Run("should return empty for unset env var", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "${DEFINITELY_NOT_SET_VAR_12345}"

		// when
		result := config.ResolveToken(raw)

		// then
		assert.Empty(t, result)
	})

	t.Run("should read token from file when path exists", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		tokenFile := filepath.Join(tmpDir, "token.key")
		err := os.WriteFile(tokenFile, []byte("  file-based-token  \n"), 0o600)
		require.NoError(t, err)

		// when
		result := config.ResolveToken(tokenFile)

		// then
		assert.Equal(t, "file-based-token", result)
	})
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestNewSettings(t *testing.T) {
	t.Run("should load base URL and token from a config file", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		cfgFile := filepath.Join(tmpDir, "github-tools.yaml")
		err := os.WriteFile(cfgFile, []byte(
			"token: inline-token\nbase_url: https://ghe.example.com/api/v3\n",
		), 0o600)
		require.NoError(t, err)

		// when
		settings, err := config.NewSettings(cfgFile)

		// then
		require.NoError(t, err)
		assert.Equal(t, "inline-token", settings.Token)
		assert.Equal(t, "https://ghe.example.com/api/v3", settings.BaseURL)
	})

	t.Run("should expand env var references in the config token", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_SETTINGS_TOKEN", "expanded-token")
		tmpDir := t.TempDir()
		cfgFile := filepath.Join(tmpDir, "github-tools.yaml")
		err := os.WriteFile(cfgFile, []byte("token: ${TEST_SETTINGS_TOKEN}\n"), 0o600)
		require.NoError(t, err)

		// when
		settings, err := config.NewSettings(cfgFile)

		// then
		require.NoError(t, err)
		assert.Equal(t, "expanded-token", settings.Token)
	})

	t.Run("should fall back to GITHUB_TOKEN when the file has no token", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv(config.TokenEnvVar, "env-token")
		tmpDir := t.TempDir()
		cfgFile := filepath.Join(tmpDir, "github-tools.yaml")
		err := os.WriteFile(cfgFile, []byte("base_url: https://ghe.example.com\n"), 0o600)
		require.NoError(t, err)

		// when
		settings, err := config.NewSettings(cfgFile)

		// then
		require.NoError(t, err)
		assert.Equal(t, "env-token", settings.Token)
		assert.Equal(t, "https://ghe.example.com", settings.BaseURL)
	})

	t.Run("should fail when the config file cannot be read", func(t *testing.T) {
		t.Parallel()

		// given
		missing := filepath.Join(t.TempDir(), "nope.yaml")

		// when
		_, err := config.NewSettings(missing)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("should fail on malformed YAML", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		cfgFile := filepath.Join(tmpDir, "github-tools.yaml")
		err := os.WriteFile(cfgFile, []byte("token: [unclosed\n"), 0o600)
		require.NoError(t, err)

		// when
		_, err = config.NewSettings(cfgFile)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}
