package employee

import (
	"employees-srv/internal/model"
	"employees-srv/pkg/paginator"
)

const (
	// DefaultPerPage is the page size of the employee listing.
	DefaultPerPage = 6
	// DefaultSeedCount is the number of employees Seed creates when no count is given.
	DefaultSeedCount = 102
	// MaxSeedCount bounds a single Seed call.
	MaxSeedCount = 10000
	// PageLast names the last page in BrowseEmployees.
	PageLast = "last"
)

// ListEmployeesInput carries the raw page designator from the request.
// A Limit below 1 means the configured page size.
type ListEmployeesInput struct {
	Page  string
	Limit int
}

// BrowseEmployeesInput carries the raw page designator from the request.
// A Limit below 1 means the configured page size.
type BrowseEmployeesInput struct {
	Page  string
	Limit int
}

// ListEmployeesOutput is one page of employees.
type ListEmployeesOutput struct {
	Page *paginator.Page[model.Employee]
}

type SeedInput struct {
	Count int
}

type SeedOutput struct {
	Created int
}
