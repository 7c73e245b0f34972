package controllers

import (
	"github.com/shekharamit/agents/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewListReposController); err != nil {
		return err
	}
	if err := container.Provide(NewListFilesController); err != nil {
		return err
	}
	if err := container.Provide(NewGetFileContentController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppContext.
func NewControllers(
	listReposController *ListReposController,
	listFilesController *ListFilesController,
	getFileContentController *GetFileContentController,
) *[]entities.Controller {
	return &[]entities.Controller{
		listReposController,
		listFilesController,
		getFileContentController,
	}
}
