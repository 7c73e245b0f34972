package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/shekharamit/agents/internal/domain/entities"
	"github.com/shekharamit/agents/internal/domain/repositories"
)

// ListRepositories is the interface for the list-repos use case.
type ListRepositories interface {
	Execute(ctx context.Context) ([]entities.RepositorySummary, error)
}

// ListRepositoriesCommand lists the repositories the authenticated user can
// push to.
type ListRepositoriesCommand struct {
	host repositories.HostRepository
}

// NewListRepositoriesCommand creates a new ListRepositoriesCommand.
func NewListRepositoriesCommand(host repositories.HostRepository) *ListRepositoriesCommand {
	return &ListRepositoriesCommand{host: host}
}

// Execute fetches the user's repositories filtered to push access.
func (it *ListRepositoriesCommand) Execute(ctx context.Context) ([]entities.RepositorySummary, error) {
	repos, err := it.host.ListPushableRepositories(ctx)
	if err != nil {
		return nil, err
	}

	logger.Debugf("Found %d pushable repositories", len(repos))
	return repos, nil
}
