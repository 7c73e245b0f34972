package controllers

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shekharamit/agents/config"
	"github.com/shekharamit/agents/internal/domain/commands"
	"github.com/shekharamit/agents/internal/domain/entities"
)

// ListReposController handles the "list-repos" subcommand.
type ListReposController struct {
	command  commands.ListRepositories
	settings *config.Settings
	out      io.Writer
}

// NewListReposController creates a new ListReposController.
func NewListReposController(
	command commands.ListRepositories,
	settings *config.Settings,
) *ListReposController {
	return &ListReposController{
		command:  command,
		settings: settings,
		out:      os.Stdout,
	}
}

// GetBind returns the Cobra command metadata for the list-repos controller.
func (it *ListReposController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list-repos",
		Short: "List all repositories for the authenticated user",
		Long: `List the repositories the authenticated user has push access to.
The result is printed as pretty-printed JSON.`,
		Args: cobra.NoArgs,
	}
}

// Execute lists the pushable repositories. Failures here are unexpected and
// escalate to the top-level handler.
func (it *ListReposController) Execute(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	if !ensureToken(it.settings) {
		return nil
	}

	repos, err := it.command.Execute(cmd.Context())
	if err != nil {
		return &DispatchError{Err: err}
	}

	return renderJSON(it.out, repos)
}
