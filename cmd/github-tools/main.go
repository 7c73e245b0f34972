package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shekharamit/agents/internal"
	"github.com/shekharamit/agents/internal/domain/entities"
	"github.com/shekharamit/agents/internal/infrastructure/controllers"
)

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "github-tools <command>",
		Short: "Read-only GitHub repository inspection",
		Long: `A command-line client for the GitHub REST API.

Authenticates with the GITHUB_TOKEN environment variable and exposes
three read operations:

  list-repos                                List repositories with push access
  list-files <repo_name>                    List all files in a repository
  get-file-content <repo_name> <file_path>  Get the decoded content of a file

Results are printed as pretty-printed JSON; failures are reported as
{"error": "..."} objects.`,
		RunE: func(command *cobra.Command, _ []string) error {
			return command.Help()
		},
	}
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppContext) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  bind.Args,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		rootCmd.AddCommand(subCmd)
	}
}

// renderUnexpectedError writes the top-level JSON error object to stderr.
func renderUnexpectedError(err error) {
	payload, marshalErr := json.MarshalIndent(entities.ErrorResult{
		Error: "An unexpected error occurred: " + err.Error(),
	}, "", "  ")
	if marshalErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(os.Stderr, string(payload))
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Load a .env file when present, before the token is read
	_ = godotenv.Load()

	// Inject the app context via DIG
	appContext := injectAppContext()

	cobraRoot := buildRootCommand()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		var dispatchErr *controllers.DispatchError
		if errors.As(err, &dispatchErr) {
			renderUnexpectedError(dispatchErr.Unwrap())
		}
		// Usage and validation errors were already reported by Cobra.
		os.Exit(1)
	}
}
