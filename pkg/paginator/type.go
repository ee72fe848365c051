package paginator

// PaginateQuery contains the pagination parameters of a request.
// Page is kept raw so that Paginator.Page can tell a malformed number apart from an out of range one.
type PaginateQuery struct {
	Page  string `json:"page" form:"page"`   // Page number as sent by the client (1-indexed)
	Limit int    `json:"limit" form:"limit"` // Number of items per page
}

// PaginatorResponse is the response format for pagination metadata.
type PaginatorResponse struct {
	Total       int  `json:"total"`        // Total number of items across all pages
	Count       int  `json:"count"`        // Number of items in current page
	PerPage     int  `json:"per_page"`     // Number of items per page
	CurrentPage int  `json:"current_page"` // Current page number (1-indexed)
	TotalPages  int  `json:"total_pages"`  // Total number of pages
	StartIndex  int  `json:"start_index"`  // 1-based position of the first item on the page
	EndIndex    int  `json:"end_index"`    // 1-based position of the last item on the page
	HasNext     bool `json:"has_next"`     // Whether there is a next page
	HasPrev     bool `json:"has_prev"`     // Whether there is a previous page
}

// WindowItem is one entry of a visible page window. It is either a page
// number or a gap standing for the pages that were left out.
type WindowItem struct {
	Number  int  `json:"number,omitempty"`
	Current bool `json:"current,omitempty"`
	Gap     bool `json:"gap,omitempty"`
}

// Navigation holds everything a client needs to render page links:
// previous/next links, the full page range and the elided window.
type Navigation struct {
	Current   int          `json:"current"`
	Previous  *int         `json:"previous"`
	Next      *int         `json:"next"`
	First     int          `json:"first"`
	Last      int          `json:"last"`
	PageRange []int        `json:"page_range"`
	Window    []WindowItem `json:"window"`
}

// Option configures a Paginator.
type Option func(*options)

type options struct {
	orphans             int
	allowEmptyFirstPage bool
}
