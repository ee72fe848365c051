package paginator

const (
	// DefaultPage is the page served when no page number is requested.
	DefaultPage = 1
	// DefaultLimit is the default number of items per page when invalid limit is provided.
	DefaultLimit = 15
	// MaxLimit is the maximum number of items per page to prevent excessive queries.
	MaxLimit = 100

	// QueryParamPage is the query string key that carries the page number.
	QueryParamPage = "page"

	// windowSpan bounds the visible window: pages p with current-windowSpan < p < current+windowSpan.
	windowSpan = 3
)

// Invalid page messages.
const (
	msgNotAnInteger = "That page number is not an integer"
	msgLessThanOne  = "That page number is less than 1"
	msgNoResults    = "That page contains no results"
)
