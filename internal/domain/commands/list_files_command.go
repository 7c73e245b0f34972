package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/shekharamit/agents/internal/domain/entities"
	"github.com/shekharamit/agents/internal/domain/repositories"
)

// ListFiles is the interface for the list-files use case.
type ListFiles interface {
	Execute(ctx context.Context, repoFullName string) ([]entities.FileEntry, error)
}

// ListFilesCommand lists every file on a repository's default branch.
type ListFilesCommand struct {
	host repositories.HostRepository
}

// NewListFilesCommand creates a new ListFilesCommand.
func NewListFilesCommand(host repositories.HostRepository) *ListFilesCommand {
	return &ListFilesCommand{host: host}
}

// Execute returns the recursive default-branch tree of the repository.
func (it *ListFilesCommand) Execute(
	ctx context.Context,
	repoFullName string,
) ([]entities.FileEntry, error) {
	entries, err := it.host.ListFiles(ctx, repoFullName)
	if err != nil {
		return nil, err
	}

	logger.Debugf("Repository %q default branch has %d entries", repoFullName, len(entries))
	return entries, nil
}
