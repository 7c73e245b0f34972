package entities

// FileEntry is one entry of a recursive default-branch tree listing.
// Type is the git object type reported upstream ("blob" or "tree").
type FileEntry struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Path string `json:"path"`
}

// FileContent is the decoded content of a single file on the default branch.
type FileContent struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

// ErrorResult is the uniform user-visible failure shape. Every failure the
// tool reports is rendered as this single-field JSON object.
type ErrorResult struct {
	Error string `json:"error"`
}
