package controllers

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shekharamit/agents/config"
	"github.com/shekharamit/agents/internal/domain/commands"
	"github.com/shekharamit/agents/internal/domain/entities"
)

// ListFilesController handles the "list-files <repo_name>" subcommand.
type ListFilesController struct {
	command  commands.ListFiles
	settings *config.Settings
	out      io.Writer
}

// NewListFilesController creates a new ListFilesController.
func NewListFilesController(
	command commands.ListFiles,
	settings *config.Settings,
) *ListFilesController {
	return &ListFilesController{
		command:  command,
		settings: settings,
		out:      os.Stdout,
	}
}

// GetBind returns the Cobra command metadata for the list-files controller.
func (it *ListFilesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list-files <repo_name>",
		Short: "List all files in a repository",
		Long: `List every file on the default branch of a repository,
given as "owner/name". The result is printed as pretty-printed JSON.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("repo_name is required for list-files command")
			}
			if len(args) > 1 {
				return errors.New("list-files accepts exactly one argument")
			}
			return nil
		},
	}
}

// Execute lists the repository's files. Failures are rendered as an error
// result so the output shape stays uniform.
func (it *ListFilesController) Execute(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	if !ensureToken(it.settings) {
		return nil
	}

	entries, err := it.command.Execute(cmd.Context(), args[0])
	if err != nil {
		return renderJSON(it.out, entities.ErrorResult{Error: err.Error()})
	}

	return renderJSON(it.out, entries)
}
