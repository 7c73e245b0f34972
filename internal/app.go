package internal

import (
	"github.com/shekharamit/agents/internal/domain/entities"
)

// AppContext aggregates the CLI controllers built by the DI container.
type AppContext struct {
	controllers *[]entities.Controller
}

// NewAppContext creates a new AppContext with the given controllers.
func NewAppContext(controllers *[]entities.Controller) *AppContext {
	return &AppContext{controllers: controllers}
}

// GetControllers returns all registered controllers.
func (it *AppContext) GetControllers() []entities.Controller {
	return *it.controllers
}
