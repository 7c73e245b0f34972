package entities

// RepositorySummary is the minimal schema decoded from the user repository
// listing. Unknown upstream fields are ignored rather than preserved.
type RepositorySummary struct {
	Name          string          `json:"name"`
	FullName      string          `json:"full_name"`
	Description   string          `json:"description,omitempty"`
	Private       bool            `json:"private"`
	DefaultBranch string          `json:"default_branch"`
	HTMLURL       string          `json:"html_url,omitempty"`
	Permissions   map[string]bool `json:"permissions,omitempty"`
}

// RepositoryDetails holds the fields of a single repository lookup that the
// tool actually uses, chiefly the default branch for follow-up requests.
type RepositoryDetails struct {
	Owner         string `json:"owner"`
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	Private       bool   `json:"private"`
	DefaultBranch string `json:"default_branch"`
	HTMLURL       string `json:"html_url,omitempty"`
}
