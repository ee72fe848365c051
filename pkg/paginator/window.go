package paginator

// VisibleWindow returns the page links to show around current out of total
// pages.
//
// Every page p with current-3 < p < current+3 is listed. Page 1 is added in
// front when current > 3, with a gap when current > 4. The last page is
// added at the end when current < total-2, with a gap when current < total-3.
// current is clamped to [1, total]; an empty window is returned when total
// is below 1.
func VisibleWindow(current, total int) []WindowItem {
	if total < 1 {
		return nil
	}
	current = max(1, min(current, total))

	items := make([]WindowItem, 0, 2*windowSpan+3)

	if current > windowSpan {
		items = append(items, WindowItem{Number: 1})
		if current > windowSpan+1 {
			items = append(items, WindowItem{Gap: true})
		}
	}

	for p := max(1, current-windowSpan+1); p < current+windowSpan && p <= total; p++ {
		items = append(items, WindowItem{Number: p, Current: p == current})
	}

	if current < total-windowSpan+1 {
		if current < total-windowSpan {
			items = append(items, WindowItem{Gap: true})
		}
		items = append(items, WindowItem{Number: total})
	}

	return items
}
