package repositories

import (
	"os"

	"go.uber.org/dig"

	"github.com/shekharamit/agents/config"
	ghRepo "github.com/shekharamit/agents/internal/infrastructure/repositories/github"
)

// ConfigPathEnvVar optionally points at an explicit configuration file.
const ConfigPathEnvVar = "GITHUB_TOOLS_CONFIG"

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Runtime settings (token from env/config file, optional base URL)
	if err := container.Provide(func() (*config.Settings, error) {
		return config.NewSettings(os.Getenv(ConfigPathEnvVar))
	}); err != nil {
		return err
	}

	// GitHub-backed host repository
	if err := container.Provide(ghRepo.NewHostRepository); err != nil {
		return err
	}

	return nil
}
