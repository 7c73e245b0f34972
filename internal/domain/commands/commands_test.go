package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shekharamit/agents/internal/domain/commands"
	"github.com/shekharamit/agents/internal/domain/entities"
	"github.com/shekharamit/agents/test/infrastructure/repositorydoubles"
)

func TestListRepositoriesCommand(t *testing.T) {
	t.Parallel()

	t.Run("should return the pushable repositories from the host", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &repositorydoubles.SpyHostRepository{
			Repositories: []entities.RepositorySummary{
				{Name: "alpha", FullName: "acme/alpha", DefaultBranch: "main"},
			},
		}
		command := commands.NewListRepositoriesCommand(spy)

		// when
		repos, err := command.Execute(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, spy.Repositories, repos)
		assert.Equal(t, 1, spy.ListReposCalls)
	})

	t.Run("should propagate host failures", func(t *testing.T) {
		t.Parallel()

		// given
		hostErr := errors.New("boom")
		spy := &repositorydoubles.SpyHostRepository{ListReposErr: hostErr}
		command := commands.NewListRepositoriesCommand(spy)

		// when
		_, err := command.Execute(context.Background())

		// then
		require.ErrorIs(t, err, hostErr)
	})
}

func TestListFilesCommand(t *testing.T) {
	t.Parallel()

	t.Run("should return the file entries for the requested repository", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &repositorydoubles.SpyHostRepository{
			Files: []entities.FileEntry{
				{Name: "a.go", Type: "blob", Path: "src/a.go"},
				{Name: "src", Type: "tree", Path: "src"},
			},
		}
		command := commands.NewListFilesCommand(spy)

		// when
		entries, err := command.Execute(context.Background(), "acme/widgets")

		// then
		require.NoError(t, err)
		assert.Equal(t, spy.Files, entries)
		assert.Equal(t, []string{"acme/widgets"}, spy.ListFilesCalls)
	})

	t.Run("should pass error values through unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &repositorydoubles.SpyHostRepository{
			ListFilesErr: entities.ErrRepositoryNotFound,
		}
		command := commands.NewListFilesCommand(spy)

		// when
		_, err := command.Execute(context.Background(), "acme/gone")

		// then
		require.ErrorIs(t, err, entities.ErrRepositoryNotFound)
	})
}

func TestGetFileContentCommand(t *testing.T) {
	t.Parallel()

	t.Run("should return the decoded file content", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &repositorydoubles.SpyHostRepository{
			Content: entities.FileContent{
				Path:    "docs/readme.md",
				Content: "# Widgets\n",
				URL:     "https://api.github.com/repos/acme/widgets/contents/docs/readme.md",
			},
		}
		command := commands.NewGetFileContentCommand(spy)

		// when
		content, err := command.Execute(context.Background(), "acme/widgets", "docs/readme.md")

		// then
		require.NoError(t, err)
		assert.Equal(t, spy.Content, content)
		assert.Equal(t, []string{"acme/widgets:docs/readme.md"}, spy.GetContentCalls)
	})

	t.Run("should pass error values through unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		notFound := &entities.FileNotFoundError{Path: "missing.go", Branch: "main"}
		spy := &repositorydoubles.SpyHostRepository{GetContentErr: notFound}
		command := commands.NewGetFileContentCommand(spy)

		// when
		_, err := command.Execute(context.Background(), "acme/widgets", "missing.go")

		// then
		require.Error(t, err)
		assert.Equal(t, "File 'missing.go' not found on branch 'main'", err.Error())
	})
}
