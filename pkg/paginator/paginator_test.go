package paginator

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) SliceList[int] {
	items := make(SliceList[int], n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

// countingList records how often the underlying list is queried.
type countingList struct {
	SliceList[int]
	counts int
	slices int
}

func (l *countingList) Count(ctx context.Context) (int, error) {
	l.counts++
	return l.SliceList.Count(ctx)
}

func (l *countingList) Slice(ctx context.Context, offset, limit int) ([]int, error) {
	l.slices++
	return l.SliceList.Slice(ctx, offset, limit)
}

type failingList struct {
	countErr error
	sliceErr error
}

func (l failingList) Count(context.Context) (int, error) {
	return 10, l.countErr
}

func (l failingList) Slice(context.Context, int, int) ([]int, error) {
	return nil, l.sliceErr
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		list    ObjectList[int]
		perPage int
		opts    []Option
		wantErr error
	}{
		{name: "valid", list: seq(10), perPage: 5},
		{name: "zero page size", list: seq(10), perPage: 0, wantErr: ErrInvalidPageSize},
		{name: "negative page size", list: seq(10), perPage: -3, wantErr: ErrInvalidPageSize},
		{name: "negative orphans", list: seq(10), perPage: 5, opts: []Option{WithOrphans(-1)}, wantErr: ErrInvalidOrphans},
		{name: "nil list", list: nil, perPage: 5, wantErr: ErrNilObjectList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(ctx, tt.list, tt.perPage, tt.opts...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, p)
		})
	}
}

func TestNew_CountsOnce(t *testing.T) {
	ctx := context.Background()
	list := &countingList{SliceList: seq(43)}

	p, err := New[int](ctx, list, 10)
	require.NoError(t, err)

	_, err = p.Page(ctx, 1)
	require.NoError(t, err)
	_, err = p.GetPage(ctx, 99)
	require.NoError(t, err)
	_ = p.Pages()

	assert.Equal(t, 1, list.counts)
	assert.Equal(t, 2, list.slices)
}

func TestNew_CountError(t *testing.T) {
	boom := errors.New("boom")

	_, err := New[int](context.Background(), failingList{countErr: boom}, 5)
	require.ErrorIs(t, err, boom)
}

func TestNumPages(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		perPage int
		orphans int
		want    int
	}{
		{name: "empty", count: 0, perPage: 10, want: 1},
		{name: "single partial page", count: 3, perPage: 10, want: 1},
		{name: "exact multiple", count: 40, perPage: 10, want: 4},
		{name: "baseline", count: 43, perPage: 10, want: 5},
		{name: "orphans merged", count: 43, perPage: 10, orphans: 3, want: 4},
		{name: "orphans below tail", count: 44, perPage: 10, orphans: 3, want: 5},
		{name: "orphans on single page", count: 3, perPage: 10, orphans: 5, want: 1},
		{name: "full tail within threshold", count: 20, perPage: 10, orphans: 10, want: 1},
		{name: "102 employees by 6", count: 102, perPage: 6, want: 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, numPages(tt.count, tt.perPage, tt.orphans))
		})
	}
}

func TestPaginator_Baseline(t *testing.T) {
	ctx := context.Background()

	p, err := New[int](ctx, seq(43), 10)
	require.NoError(t, err)

	assert.Equal(t, 43, p.Count())
	assert.Equal(t, 5, p.NumPages())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, p.Pages())

	for n := 1; n <= 4; n++ {
		pg, err := p.Page(ctx, n)
		require.NoError(t, err)
		assert.Len(t, pg.Elements, 10, "page %d", n)
	}

	last, err := p.Page(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{41, 42, 43}, last.Elements)
	assert.Equal(t, 41, last.StartIndex())
	assert.Equal(t, 43, last.EndIndex())
}

func TestPaginator_Orphans(t *testing.T) {
	ctx := context.Background()

	p, err := New[int](ctx, seq(43), 10, WithOrphans(3))
	require.NoError(t, err)
	assert.Equal(t, 4, p.NumPages())
	assert.Equal(t, 3, p.Orphans())

	last, err := p.Page(ctx, 4)
	require.NoError(t, err)
	assert.Len(t, last.Elements, 13)
	assert.Equal(t, 31, last.StartIndex())
	assert.Equal(t, 43, last.EndIndex())
	assert.Equal(t, 31, last.Elements[0])
	assert.Equal(t, 43, last.Elements[12])

	_, err = p.Page(ctx, 5)
	assert.ErrorIs(t, err, ErrEmptyPage)
}

func TestPaginator_Partition(t *testing.T) {
	ctx := context.Background()

	for count := 0; count <= 35; count++ {
		for perPage := 1; perPage <= 7; perPage++ {
			for orphans := 0; orphans <= 4; orphans++ {
				p, err := New[int](ctx, seq(count), perPage, WithOrphans(orphans))
				require.NoError(t, err)
				require.GreaterOrEqual(t, p.NumPages(), 1)

				var got []int
				for n := range p.PageRange() {
					pg, err := p.Page(ctx, n)
					require.NoError(t, err)
					if pg.Len() > 0 {
						assert.Equal(t, len(got)+1, pg.StartIndex())
						assert.Equal(t, len(got)+pg.Len(), pg.EndIndex())
					}
					assert.LessOrEqual(t, pg.Len(), perPage+orphans)
					got = append(got, pg.Elements...)
				}

				want := []int(seq(count))
				assert.Equal(t, want, append([]int{}, got...),
					"count=%d perPage=%d orphans=%d", count, perPage, orphans)
			}
		}
	}
}

func TestPaginator_Page_Invalid(t *testing.T) {
	ctx := context.Background()

	p, err := New[int](ctx, seq(43), 10)
	require.NoError(t, err)

	tests := []struct {
		name    string
		raw     any
		wantErr error
	}{
		{name: "above range", raw: 99, wantErr: ErrEmptyPage},
		{name: "zero", raw: 0, wantErr: ErrEmptyPage},
		{name: "negative", raw: -1, wantErr: ErrEmptyPage},
		{name: "numeric string above range", raw: "6", wantErr: ErrEmptyPage},
		{name: "huge string", raw: "99999999999999999999999", wantErr: ErrEmptyPage},
		{name: "huge negative string", raw: "-99999999999999999999999", wantErr: ErrEmptyPage},
		{name: "letters", raw: "abc", wantErr: ErrPageNotAnInteger},
		{name: "blank", raw: "", wantErr: ErrPageNotAnInteger},
		{name: "spaces", raw: "   ", wantErr: ErrPageNotAnInteger},
		{name: "decimal string", raw: "1.5", wantErr: ErrPageNotAnInteger},
		{name: "integral decimal string", raw: "2.0", wantErr: ErrPageNotAnInteger},
		{name: "fractional float", raw: 1.5, wantErr: ErrPageNotAnInteger},
		{name: "nan", raw: math.NaN(), wantErr: ErrPageNotAnInteger},
		{name: "nil", raw: nil, wantErr: ErrPageNotAnInteger},
		{name: "bool", raw: true, wantErr: ErrPageNotAnInteger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pg, err := p.Page(ctx, tt.raw)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, pg)

			var invalid *InvalidPageError
			require.ErrorAs(t, err, &invalid)
			assert.NotEmpty(t, invalid.Message)
		})
	}
}

func TestPaginator_Page_Designators(t *testing.T) {
	ctx := context.Background()

	p, err := New[int](ctx, seq(43), 10)
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  any
		want int
	}{
		{name: "int", raw: 2, want: 2},
		{name: "int64", raw: int64(3), want: 3},
		{name: "uint8", raw: uint8(4), want: 4},
		{name: "string", raw: "5", want: 5},
		{name: "padded string", raw: " 2 ", want: 2},
		{name: "signed string", raw: "+3", want: 3},
		{name: "integral float", raw: 4.0, want: 4},
		{name: "integral float32", raw: float32(1), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pg, err := p.Page(ctx, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pg.Number)
		})
	}
}

func TestPaginator_GetPage(t *testing.T) {
	ctx := context.Background()

	p, err := New[int](ctx, seq(43), 10)
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  any
		want int
	}{
		{name: "valid", raw: 3, want: 3},
		{name: "above range", raw: 99, want: 5},
		{name: "huge string", raw: "99999999999999999999999", want: 5},
		{name: "zero", raw: 0, want: 1},
		{name: "negative", raw: "-4", want: 1},
		{name: "not an integer", raw: "abc", want: 1},
		{name: "blank", raw: "", want: 1},
		{name: "nil", raw: nil, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pg, err := p.GetPage(ctx, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pg.Number)
		})
	}
}

func TestPaginator_GetPage_SliceError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	p, err := New[int](ctx, failingList{sliceErr: boom}, 5)
	require.NoError(t, err)

	_, err = p.GetPage(ctx, 1)
	require.ErrorIs(t, err, boom)
	assert.False(t, errors.Is(err, ErrEmptyPage))
}

func TestPaginator_Empty(t *testing.T) {
	ctx := context.Background()

	t.Run("allow empty first page", func(t *testing.T) {
		p, err := New[int](ctx, seq(0), 10)
		require.NoError(t, err)
		assert.Equal(t, 1, p.NumPages())
		assert.True(t, p.AllowEmptyFirstPage())

		pg, err := p.Page(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, pg.Elements)
		assert.NotNil(t, pg.Elements)
		assert.Equal(t, 0, pg.StartIndex())
		assert.Equal(t, 0, pg.EndIndex())
		assert.False(t, pg.HasNext())
		assert.False(t, pg.HasPrevious())

		_, err = p.Page(ctx, 2)
		assert.ErrorIs(t, err, ErrEmptyPage)
	})

	t.Run("disallow empty first page", func(t *testing.T) {
		p, err := New[int](ctx, seq(0), 10, WithAllowEmptyFirstPage(false))
		require.NoError(t, err)
		assert.Equal(t, 1, p.NumPages())
		assert.Equal(t, []int{1}, p.Pages())

		_, err = p.Page(ctx, 1)
		assert.ErrorIs(t, err, ErrEmptyPage)

		pg, err := p.GetPage(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, pg.Number)
		assert.Empty(t, pg.Elements)
	})
}

func TestPaginator_Idempotent(t *testing.T) {
	ctx := context.Background()

	p, err := New[int](ctx, seq(43), 10, WithOrphans(3))
	require.NoError(t, err)

	first, err := p.Page(ctx, 2)
	require.NoError(t, err)
	second, err := p.Page(ctx, 2)
	require.NoError(t, err)

	assert.Equal(t, first.StartIndex(), second.StartIndex())
	assert.Equal(t, first.EndIndex(), second.EndIndex())
	assert.Equal(t, first.Elements, second.Elements)
}

func TestPaginator_PageRange_Restartable(t *testing.T) {
	p, err := New[int](context.Background(), seq(25), 10)
	require.NoError(t, err)

	var first, second []int
	for n := range p.PageRange() {
		first = append(first, n)
	}
	for n := range p.PageRange() {
		second = append(second, n)
		if n == 2 {
			break
		}
	}

	assert.Equal(t, []int{1, 2, 3}, first)
	assert.Equal(t, []int{1, 2}, second)
}

func TestSliceList_Slice(t *testing.T) {
	ctx := context.Background()
	list := seq(5)

	got, err := list.Slice(ctx, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, got)
	assert.Equal(t, 2, cap(got))

	got, err = list.Slice(ctx, 7, 2)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPaginateQuery_Adjust(t *testing.T) {
	tests := []struct {
		name         string
		query        PaginateQuery
		defaultLimit int
		want         PaginateQuery
	}{
		{name: "defaults", query: PaginateQuery{}, defaultLimit: 6, want: PaginateQuery{Page: "1", Limit: 6}},
		{name: "fallback limit", query: PaginateQuery{Page: "2"}, defaultLimit: 0, want: PaginateQuery{Page: "2", Limit: DefaultLimit}},
		{name: "capped limit", query: PaginateQuery{Page: "3", Limit: 500}, defaultLimit: 6, want: PaginateQuery{Page: "3", Limit: MaxLimit}},
		{name: "raw page kept", query: PaginateQuery{Page: " abc ", Limit: 10}, defaultLimit: 6, want: PaginateQuery{Page: "abc", Limit: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.query
			q.Adjust(tt.defaultLimit)
			assert.Equal(t, tt.want, q)
		})
	}
}
