package actionserver

// Event - A stored repository event as listed on the dashboard.
type Event struct {
	Id int64 `json:"id"`

	Type string `json:"type"`

	Author string `json:"author"`

	ToBranch string `json:"to_branch"`

	FromBranch *string `json:"from_branch"`

	Repository string `json:"repository"`

	Commits *int `json:"commits,omitempty"`

	Action *string `json:"action,omitempty"`

	Timestamp string `json:"timestamp"`
}

// DBStatusResponse - Body of GET /db-status.
type DBStatusResponse struct {
	Connected bool `json:"connected"`

	Database string `json:"database,omitempty"`

	Table string `json:"table,omitempty"`

	DocumentCount *int64 `json:"document_count,omitempty"`

	Error string `json:"error,omitempty"`
}
