package paginator

// Page is one page of a Paginator. Pages are only created by a Paginator.
type Page[T any] struct {
	// Number is the 1-based page number.
	Number int
	// Elements holds the items of this page in collection order.
	Elements []T

	paginator *Paginator[T]
}

// Paginator returns the Paginator that produced the page.
func (pg *Page[T]) Paginator() *Paginator[T] {
	return pg.paginator
}

// Len returns the number of elements on the page.
func (pg *Page[T]) Len() int {
	return len(pg.Elements)
}

// HasNext checks if there is a next page available.
func (pg *Page[T]) HasNext() bool {
	return pg.Number < pg.paginator.numPages
}

// HasPrevious checks if there is a previous page available.
func (pg *Page[T]) HasPrevious() bool {
	return pg.Number > 1
}

// HasOtherPages checks if the collection spans more than this page.
func (pg *Page[T]) HasOtherPages() bool {
	return pg.HasNext() || pg.HasPrevious()
}

// NextPageNumber returns the number of the next page, or ErrEmptyPage on the last page.
func (pg *Page[T]) NextPageNumber() (int, error) {
	return pg.paginator.ValidateNumber(pg.Number + 1)
}

// PreviousPageNumber returns the number of the previous page, or ErrEmptyPage on the first page.
func (pg *Page[T]) PreviousPageNumber() (int, error) {
	return pg.paginator.ValidateNumber(pg.Number - 1)
}

// StartIndex returns the 1-based position of the first element of the page
// within the whole collection, or 0 when the collection is empty.
func (pg *Page[T]) StartIndex() int {
	if pg.paginator.count == 0 {
		return 0
	}
	return (pg.Number-1)*pg.paginator.perPage + 1
}

// EndIndex returns the 1-based position of the last element of the page
// within the whole collection. The last page always ends at Count.
func (pg *Page[T]) EndIndex() int {
	if pg.Number == pg.paginator.numPages {
		return pg.paginator.count
	}
	return pg.Number * pg.paginator.perPage
}

// ToResponse converts the page to the pagination metadata response.
func (pg *Page[T]) ToResponse() PaginatorResponse {
	return PaginatorResponse{
		Total:       pg.paginator.count,
		Count:       pg.Len(),
		PerPage:     pg.paginator.perPage,
		CurrentPage: pg.Number,
		TotalPages:  pg.paginator.numPages,
		StartIndex:  pg.StartIndex(),
		EndIndex:    pg.EndIndex(),
		HasNext:     pg.HasNext(),
		HasPrev:     pg.HasPrevious(),
	}
}

// Navigation builds the page links for the page: previous and next numbers,
// the full page range and the elided window around the page.
func (pg *Page[T]) Navigation() Navigation {
	nav := Navigation{
		Current:   pg.Number,
		First:     1,
		Last:      pg.paginator.numPages,
		PageRange: pg.paginator.Pages(),
		Window:    VisibleWindow(pg.Number, pg.paginator.numPages),
	}
	if prev, err := pg.PreviousPageNumber(); err == nil {
		nav.Previous = &prev
	}
	if next, err := pg.NextPageNumber(); err == nil {
		nav.Next = &next
	}
	return nav
}
