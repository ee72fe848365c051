package paginator

import "errors"

var (
	// ErrInvalidPageSize is returned by New when the page size is below 1.
	ErrInvalidPageSize = errors.New("paginator: page size must be at least 1")
	// ErrInvalidOrphans is returned by New when the orphan threshold is negative.
	ErrInvalidOrphans = errors.New("paginator: orphans must not be negative")
	// ErrNilObjectList is returned by New when no object list is given.
	ErrNilObjectList = errors.New("paginator: object list is required")

	// ErrPageNotAnInteger marks a page designator that is not a whole number.
	ErrPageNotAnInteger = errors.New("paginator: page not an integer")
	// ErrEmptyPage marks a page number outside the valid range.
	ErrEmptyPage = errors.New("paginator: empty page")
)

// InvalidPageError is returned when a page designator is rejected. Kind is
// either ErrPageNotAnInteger or ErrEmptyPage, so callers can branch with
// errors.Is.
type InvalidPageError struct {
	Kind    error
	Message string
}

func (e *InvalidPageError) Error() string {
	return e.Message
}

func (e *InvalidPageError) Unwrap() error {
	return e.Kind
}

func notAnInteger() error {
	return &InvalidPageError{Kind: ErrPageNotAnInteger, Message: msgNotAnInteger}
}

func emptyPage(msg string) error {
	return &InvalidPageError{Kind: ErrEmptyPage, Message: msg}
}
