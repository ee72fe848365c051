package employee

import "errors"

// Domain errors
var (
	// ErrInvalidPage is returned by BrowseEmployees for a page that does not exist.
	ErrInvalidPage = errors.New("employee: invalid page")

	ErrEmployeeNotFound = errors.New("employee: employee not found")

	ErrInvalidSeedCount = errors.New("employee: invalid seed count")
)
