package paginator

import (
	"net/url"
	"strconv"
	"strings"
)

func pageURL(u *url.URL, page int) string {
	next := *u
	q := next.Query()
	q.Set(QueryParamPage, strconv.Itoa(page))
	next.RawQuery = q.Encode()
	return next.String()
}

// EncodeToLink returns the page encoded to a Link header value for the
// given request URL. The first and last relations are always present, prev
// and next only when such a page exists. u is not modified.
func (pg *Page[T]) EncodeToLink(u *url.URL) string {
	links := make([]string, 0, 4)
	links = append(links, `<`+pageURL(u, 1)+`>; rel="first"`)
	if pg.HasPrevious() {
		links = append(links, `<`+pageURL(u, pg.Number-1)+`>; rel="prev"`)
	}
	if pg.HasNext() {
		links = append(links, `<`+pageURL(u, pg.Number+1)+`>; rel="next"`)
	}
	links = append(links, `<`+pageURL(u, pg.paginator.numPages)+`>; rel="last"`)
	return strings.Join(links, ", ")
}
