package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/shekharamit/agents/internal/domain/entities"
	"github.com/shekharamit/agents/internal/domain/repositories"
)

// GetFileContent is the interface for the get-file-content use case.
type GetFileContent interface {
	Execute(ctx context.Context, repoFullName, filePath string) (entities.FileContent, error)
}

// GetFileContentCommand fetches and decodes one file from a repository's
// default branch.
type GetFileContentCommand struct {
	host repositories.HostRepository
}

// NewGetFileContentCommand creates a new GetFileContentCommand.
func NewGetFileContentCommand(host repositories.HostRepository) *GetFileContentCommand {
	return &GetFileContentCommand{host: host}
}

// Execute returns the decoded content of the file at the given path.
func (it *GetFileContentCommand) Execute(
	ctx context.Context,
	repoFullName, filePath string,
) (entities.FileContent, error) {
	content, err := it.host.GetFileContent(ctx, repoFullName, filePath)
	if err != nil {
		return entities.FileContent{}, err
	}

	logger.Debugf("Fetched %q from %q (%d bytes)", filePath, repoFullName, len(content.Content))
	return content, nil
}
