// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations — no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/shekharamit/agents/internal/domain/entities"
	"github.com/shekharamit/agents/internal/domain/repositories"
)

// SpyHostRepository implements repositories.HostRepository as a configurable spy.
// Configure the response fields for the methods your test exercises, then
// inspect the call-tracking fields to verify behavior.
type SpyHostRepository struct {
	// --- GetRepositoryDetails ---
	Details      entities.RepositoryDetails
	DetailsErr   error
	DetailsCalls []string

	// --- ListPushableRepositories ---
	Repositories   []entities.RepositorySummary
	ListReposErr   error
	ListReposCalls int

	// --- ListFiles ---
	Files          []entities.FileEntry
	ListFilesErr   error
	ListFilesCalls []string

	// --- GetFileContent ---
	Content         entities.FileContent
	GetContentErr   error
	GetContentCalls []string
}

var _ repositories.HostRepository = (*SpyHostRepository)(nil)

func (s *SpyHostRepository) GetRepositoryDetails(
	_ context.Context,
	fullName string,
) (entities.RepositoryDetails, error) {
	s.DetailsCalls = append(s.DetailsCalls, fullName)
	return s.Details, s.DetailsErr
}

func (s *SpyHostRepository) ListPushableRepositories(
	_ context.Context,
) ([]entities.RepositorySummary, error) {
	s.ListReposCalls++
	return s.Repositories, s.ListReposErr
}

func (s *SpyHostRepository) ListFiles(
	_ context.Context,
	fullName string,
) ([]entities.FileEntry, error) {
	s.ListFilesCalls = append(s.ListFilesCalls, fullName)
	return s.Files, s.ListFilesErr
}

func (s *SpyHostRepository) GetFileContent(
	_ context.Context,
	fullName, path string,
) (entities.FileContent, error) {
	s.GetContentCalls = append(s.GetContentCalls, fullName+":"+path)
	return s.Content, s.GetContentErr
}
