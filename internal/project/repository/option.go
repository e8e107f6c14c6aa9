package repository

// ListProjectsOptions holds the parameters for listing projects.
type ListProjectsOptions struct {
	ManagerID string // Filter by managing user (optional)
	Limit     int    // Max number of results (default 50)
	Offset    int    // Pagination offset
}
