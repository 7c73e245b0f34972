package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewListRepositoriesCommand); err != nil {
		return err
	}
	if err := container.Provide(NewListFilesCommand); err != nil {
		return err
	}
	if err := container.Provide(NewGetFileContentCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *ListRepositoriesCommand) ListRepositories {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ListFilesCommand) ListFiles {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *GetFileContentCommand) GetFileContent {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
