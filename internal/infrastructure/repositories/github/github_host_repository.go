package github

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	gh "github.com/google/go-github/v66/github"

	"github.com/shekharamit/agents/config"
	"github.com/shekharamit/agents/internal/domain/entities"
	"github.com/shekharamit/agents/internal/domain/repositories"
)

const (
	defaultBranchFallback = "main"
	requestTimeout        = 30 * time.Second
)

// authTransport sets the authentication and media-type headers on every
// outgoing request: "Authorization: token <value>" and the GitHub REST v3
// JSON media type.
type authTransport struct {
	token string
	base  http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "token "+t.token)
	clone.Header.Set("Accept", "application/vnd.github+json")

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}

// GitHubHostRepository implements repositories.HostRepository against the
// GitHub REST API.
type GitHubHostRepository struct {
	client *gh.Client
}

// NewHostRepository creates a GitHub host repository from the given settings.
// An empty BaseURL targets the public https://api.github.com endpoint.
func NewHostRepository(settings *config.Settings) (repositories.HostRepository, error) {
	httpClient := &http.Client{
		Timeout:   requestTimeout,
		Transport: &authTransport{token: settings.Token},
	}

	client := gh.NewClient(httpClient)
	if settings.BaseURL != "" {
		raw := settings.BaseURL
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		parsed, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid base URL %q: %w", settings.BaseURL, err)
		}
		client.BaseURL = parsed
	}

	return &GitHubHostRepository{client: client}, nil
}

// GetRepositoryDetails fetches a single repository. Unlike the listing and
// content operations, failures here propagate to the caller.
func (r *GitHubHostRepository) GetRepositoryDetails(
	ctx context.Context,
	fullName string,
) (entities.RepositoryDetails, error) {
	owner, name, err := splitFullName(fullName)
	if err != nil {
		return entities.RepositoryDetails{}, err
	}

	repo, _, err := r.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return entities.RepositoryDetails{}, fmt.Errorf("failed to get repository %q: %w", fullName, err)
	}

	branch := repo.GetDefaultBranch()
	if branch == "" {
		branch = defaultBranchFallback
	}

	return entities.RepositoryDetails{
		Owner:         owner,
		Name:          name,
		FullName:      repo.GetFullName(),
		Private:       repo.GetPrivate(),
		DefaultBranch: branch,
		HTMLURL:       repo.GetHTMLURL(),
	}, nil
}

// ListPushableRepositories lists the authenticated user's repositories and
// keeps only those with push permission. A single page is requested; the
// tool deliberately does not paginate.
func (r *GitHubHostRepository) ListPushableRepositories(
	ctx context.Context,
) ([]entities.RepositorySummary, error) {
	repos, _, err := r.client.Repositories.ListByAuthenticatedUser(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}

	pushable := make([]entities.RepositorySummary, 0, len(repos))
	for _, repo := range repos {
		if !repo.GetPermissions()["push"] {
			continue
		}
		pushable = append(pushable, entities.RepositorySummary{
			Name:          repo.GetName(),
			FullName:      repo.GetFullName(),
			Description:   repo.GetDescription(),
			Private:       repo.GetPrivate(),
			DefaultBranch: repo.GetDefaultBranch(),
			HTMLURL:       repo.GetHTMLURL(),
			Permissions:   repo.GetPermissions(),
		})
	}

	return pushable, nil
}

// ListFiles resolves the default branch and returns its recursive tree,
// preserving upstream entry order. All failures come back as values with
// user-facing messages.
func (r *GitHubHostRepository) ListFiles(
	ctx context.Context,
	fullName string,
) ([]entities.FileEntry, error) {
	details, err := r.GetRepositoryDetails(ctx, fullName)
	if err != nil {
		return nil, entities.ErrRepositoryNotFound
	}

	tree, _, err := r.client.Git.GetTree(
		ctx, details.Owner, details.Name, details.DefaultBranch,
		true, // recursive
	)
	if err != nil {
		//nolint:err113,staticcheck // message is part of the CLI output contract
		return nil, fmt.Errorf("Error listing files: %v", err)
	}

	entries := make([]entities.FileEntry, 0, len(tree.Entries))
	for _, entry := range tree.Entries {
		entries = append(entries, entities.FileEntry{
			Name: path.Base(entry.GetPath()),
			Type: entry.GetType(),
			Path: entry.GetPath(),
		})
	}

	return entries, nil
}

// GetFileContent resolves the default branch, fetches the file at the given
// path and decodes its base64 payload as UTF-8 text.
func (r *GitHubHostRepository) GetFileContent(
	ctx context.Context,
	fullName, filePath string,
) (entities.FileContent, error) {
	details, err := r.GetRepositoryDetails(ctx, fullName)
	if err != nil {
		return entities.FileContent{}, entities.ErrRepositoryNotFound
	}

	fileContent, _, _, err := r.client.Repositories.GetContents(
		ctx, details.Owner, details.Name, filePath,
		&gh.RepositoryContentGetOptions{Ref: details.DefaultBranch},
	)
	if err != nil {
		//nolint:err113,staticcheck // message is part of the CLI output contract
		return entities.FileContent{}, fmt.Errorf("Error fetching file: %v", err)
	}

	// A directory listing or a response without a content field means the
	// path does not name a file on that branch.
	if fileContent == nil || fileContent.Content == nil {
		return entities.FileContent{}, &entities.FileNotFoundError{
			Path:   filePath,
			Branch: details.DefaultBranch,
		}
	}

	decoded, err := decodeBase64(*fileContent.Content)
	if err != nil || !utf8.Valid(decoded) {
		return entities.FileContent{}, entities.ErrContentDecode
	}

	return entities.FileContent{
		Path:    fileContent.GetPath(),
		Content: string(decoded),
		URL:     fileContent.GetURL(),
	}, nil
}

// decodeBase64 decodes a base64 payload as delivered by the contents API,
// which wraps the text with newlines.
func decodeBase64(raw string) ([]byte, error) {
	compact := strings.Join(strings.Fields(raw), "")
	return base64.StdEncoding.DecodeString(compact)
}

// splitFullName splits an "owner/name" repository identifier.
func splitFullName(fullName string) (string, string, error) {
	owner, name, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || name == "" {
		return "", "", fmt.Errorf("invalid repository name %q: expected owner/name", fullName)
	}
	return owner, name, nil
}
