package paginator

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Paginator splits an ObjectList into pages of a fixed size.
//
// The collection is counted once by New. The count and the number of pages
// never change afterwards, so a Paginator is safe for concurrent use as long
// as the underlying list is.
type Paginator[T any] struct {
	list                ObjectList[T]
	perPage             int
	orphans             int
	allowEmptyFirstPage bool

	count    int
	numPages int
}

// WithOrphans sets the orphan threshold. When the last page would hold
// orphans elements or fewer, they are merged into the previous page.
func WithOrphans(orphans int) Option {
	return func(o *options) {
		o.orphans = orphans
	}
}

// WithAllowEmptyFirstPage controls whether page 1 of an empty collection is
// a valid, empty page (the default) or an ErrEmptyPage.
func WithAllowEmptyFirstPage(allow bool) Option {
	return func(o *options) {
		o.allowEmptyFirstPage = allow
	}
}

// New creates a Paginator over list with perPage elements per page.
func New[T any](ctx context.Context, list ObjectList[T], perPage int, opts ...Option) (*Paginator[T], error) {
	if list == nil {
		return nil, ErrNilObjectList
	}
	if perPage < 1 {
		return nil, ErrInvalidPageSize
	}

	o := options{allowEmptyFirstPage: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.orphans < 0 {
		return nil, ErrInvalidOrphans
	}

	count, err := list.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("paginator.New: count: %w", err)
	}
	if count < 0 {
		return nil, fmt.Errorf("paginator.New: negative count %d", count)
	}

	return &Paginator[T]{
		list:                list,
		perPage:             perPage,
		orphans:             o.orphans,
		allowEmptyFirstPage: o.allowEmptyFirstPage,
		count:               count,
		numPages:            numPages(count, perPage, o.orphans),
	}, nil
}

// numPages is ceil(count/perPage), minus one when the last page holds no
// more than orphans elements. An empty collection still has one page.
func numPages(count, perPage, orphans int) int {
	if count == 0 {
		return 1
	}

	pages := count / perPage
	last := count % perPage
	if last == 0 {
		last = perPage
	} else {
		pages++
	}

	if pages > 1 && last <= orphans {
		pages--
	}
	return pages
}

// Count returns the total number of elements.
func (p *Paginator[T]) Count() int {
	return p.count
}

// NumPages returns the total number of pages. It is at least 1.
func (p *Paginator[T]) NumPages() int {
	return p.numPages
}

// PerPage returns the page size.
func (p *Paginator[T]) PerPage() int {
	return p.perPage
}

// Orphans returns the orphan threshold.
func (p *Paginator[T]) Orphans() int {
	return p.orphans
}

// AllowEmptyFirstPage reports whether page 1 of an empty collection is valid.
func (p *Paginator[T]) AllowEmptyFirstPage() bool {
	return p.allowEmptyFirstPage
}

// PageRange returns the page numbers 1..NumPages in ascending order. The
// sequence can be ranged over any number of times.
func (p *Paginator[T]) PageRange() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 1; i <= p.numPages; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Pages returns PageRange collected into a slice.
func (p *Paginator[T]) Pages() []int {
	return slices.Collect(p.PageRange())
}

// ValidateNumber parses a page designator and checks that it names a page.
//
// Integer types, integral floats and decimal strings are accepted. Anything
// else fails with ErrPageNotAnInteger. A number below 1 or above NumPages
// fails with ErrEmptyPage, as does page 1 of an empty collection when empty
// first pages are not allowed.
func (p *Paginator[T]) ValidateNumber(raw any) (int, error) {
	n, err := parseNumber(raw)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, emptyPage(msgLessThanOne)
	}
	if n > p.numPages || (p.count == 0 && !p.allowEmptyFirstPage) {
		return 0, emptyPage(msgNoResults)
	}
	return n, nil
}

// Page returns the page named by raw. Errors from ValidateNumber are
// returned unchanged; any other error comes from the underlying list.
func (p *Paginator[T]) Page(ctx context.Context, raw any) (*Page[T], error) {
	n, err := p.ValidateNumber(raw)
	if err != nil {
		return nil, err
	}
	return p.page(ctx, n)
}

// GetPage is the forgiving variant of Page. A designator that is not an
// integer yields page 1, a number below range yields page 1 and a number
// above range yields the last page. The only errors it returns come from the
// underlying list.
func (p *Paginator[T]) GetPage(ctx context.Context, raw any) (*Page[T], error) {
	n, err := parseNumber(raw)
	switch {
	case err != nil, n < 1:
		n = 1
	case n > p.numPages:
		n = p.numPages
	}
	return p.page(ctx, n)
}

func (p *Paginator[T]) page(ctx context.Context, n int) (*Page[T], error) {
	offset := (n - 1) * p.perPage
	limit := p.perPage
	if n == p.numPages {
		// The last page absorbs the orphans.
		limit = p.count - offset
	}

	elements := []T{}
	if limit > 0 {
		items, err := p.list.Slice(ctx, offset, limit)
		if err != nil {
			return nil, fmt.Errorf("paginator.Page: slice: %w", err)
		}
		if items != nil {
			elements = items
		}
	}

	return &Page[T]{
		Number:    n,
		Elements:  elements,
		paginator: p,
	}, nil
}

func parseNumber(raw any) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return clampInt64(v), nil
	case uint:
		return clampUint64(uint64(v)), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return clampUint64(uint64(v)), nil
	case uint64:
		return clampUint64(v), nil
	case float32:
		return parseFloat(float64(v))
	case float64:
		return parseFloat(v)
	case string:
		return parseString(v)
	default:
		return 0, notAnInteger()
	}
}

func parseString(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err == nil {
		return n, nil
	}

	// Whole numbers too large for int are still whole numbers: they are
	// out of range rather than malformed.
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(s, "-") {
			return math.MinInt, nil
		}
		return math.MaxInt, nil
	}
	return 0, notAnInteger()
}

func parseFloat(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, notAnInteger()
	}
	if f >= math.MaxInt {
		return math.MaxInt, nil
	}
	if f <= math.MinInt {
		return math.MinInt, nil
	}
	return int(f), nil
}

func clampInt64(v int64) int {
	if v > math.MaxInt {
		return math.MaxInt
	}
	if v < math.MinInt {
		return math.MinInt
	}
	return int(v)
}

func clampUint64(v uint64) int {
	if v > math.MaxInt {
		return math.MaxInt
	}
	return int(v)
}

// Adjust normalizes the pagination parameters to valid values.
// An empty page becomes DefaultPage, an unset limit becomes defaultLimit
// (DefaultLimit when defaultLimit is not positive) and the limit is capped
// at MaxLimit.
func (q *PaginateQuery) Adjust(defaultLimit int) {
	q.Page = strings.TrimSpace(q.Page)
	if q.Page == "" {
		q.Page = strconv.Itoa(DefaultPage)
	}

	if defaultLimit < 1 {
		defaultLimit = DefaultLimit
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	} else if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
}
