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

// GetFileContentController handles the "get-file-content <repo_name> <file_path>" subcommand.
type GetFileContentController struct {
	command  commands.GetFileContent
	settings *config.Settings
	out      io.Writer
}

// NewGetFileContentController creates a new GetFileContentController.
func NewGetFileContentController(
	command commands.GetFileContent,
	settings *config.Settings,
) *GetFileContentController {
	return &GetFileContentController{
		command:  command,
		settings: settings,
		out:      os.Stdout,
	}
}

// GetBind returns the Cobra command metadata for the get-file-content controller.
func (it *GetFileContentController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "get-file-content <repo_name> <file_path>",
		Short: "Get the content of a file",
		Long: `Fetch one file from the default branch of a repository and print
its decoded content together with its path and URL as pretty-printed JSON.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("repo_name and file_path are required for get-file-content command")
			}
			if len(args) > 2 {
				return errors.New("get-file-content accepts exactly two arguments")
			}
			return nil
		},
	}
}

// Execute fetches the file content. Failures are rendered as an error result
// so the output shape stays uniform.
func (it *GetFileContentController) Execute(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	if !ensureToken(it.settings) {
		return nil
	}

	content, err := it.command.Execute(cmd.Context(), args[0], args[1])
	if err != nil {
		return renderJSON(it.out, entities.ErrorResult{Error: err.Error()})
	}

	return renderJSON(it.out, content)
}
