package paginator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pages(numbers ...int) []WindowItem {
	items := make([]WindowItem, 0, len(numbers))
	for _, n := range numbers {
		if n == 0 {
			items = append(items, WindowItem{Gap: true})
			continue
		}
		items = append(items, WindowItem{Number: n})
	}
	return items
}

func withCurrent(items []WindowItem, current int) []WindowItem {
	for i := range items {
		if items[i].Number == current {
			items[i].Current = true
		}
	}
	return items
}

func TestVisibleWindow(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    []WindowItem
	}{
		{name: "middle", current: 5, total: 20, want: pages(1, 0, 3, 4, 5, 6, 7, 0, 20)},
		{name: "first", current: 1, total: 20, want: pages(1, 2, 3, 0, 20)},
		{name: "third", current: 3, total: 20, want: pages(1, 2, 3, 4, 5, 0, 20)},
		{name: "fourth joins first page", current: 4, total: 20, want: pages(1, 2, 3, 4, 5, 6, 0, 20)},
		{name: "last", current: 20, total: 20, want: pages(1, 0, 18, 19, 20)},
		{name: "fourth from end joins last page", current: 17, total: 20, want: pages(1, 0, 15, 16, 17, 18, 19, 20)},
		{name: "third from end", current: 18, total: 20, want: pages(1, 0, 16, 17, 18, 19, 20)},
		{name: "single page", current: 1, total: 1, want: pages(1)},
		{name: "few pages", current: 2, total: 4, want: pages(1, 2, 3, 4)},
		{name: "current above total", current: 30, total: 5, want: pages(1, 0, 3, 4, 5)},
		{name: "current below one", current: -2, total: 5, want: pages(1, 2, 3, 0, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := max(1, min(tt.current, tt.total))
			assert.Equal(t, withCurrent(tt.want, current), VisibleWindow(tt.current, tt.total))
		})
	}
}

func TestVisibleWindow_Empty(t *testing.T) {
	assert.Empty(t, VisibleWindow(1, 0))
	assert.Empty(t, VisibleWindow(3, -1))
}
