package repositories

import (
	"context"

	"github.com/shekharamit/agents/internal/domain/entities"
)

// HostRepository abstracts a source-hosting service providing read-only
// repository inspection: repository discovery, default-branch file listings
// and file content retrieval. The tool never mutates remote state.
type HostRepository interface {
	// GetRepositoryDetails fetches a single repository by "owner/name".
	// Transport and HTTP failures propagate to the caller.
	GetRepositoryDetails(ctx context.Context, fullName string) (entities.RepositoryDetails, error)

	// ListPushableRepositories returns the authenticated user's repositories
	// that carry push permission. An empty upstream listing yields an empty
	// slice, not an error.
	ListPushableRepositories(ctx context.Context) ([]entities.RepositorySummary, error)

	// ListFiles returns the recursive file tree of the repository's default
	// branch, preserving upstream order. Failures are returned as values so
	// the CLI can render them uniformly.
	ListFiles(ctx context.Context, fullName string) ([]entities.FileEntry, error)

	// GetFileContent fetches one file from the default branch and decodes
	// its base64 payload as UTF-8 text.
	GetFileContent(ctx context.Context, fullName, path string) (entities.FileContent, error)
}
