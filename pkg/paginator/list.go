package paginator

import "context"

// ObjectList is an ordered, countable collection that can be paginated.
//
// Implementations must return elements in a stable order: a Paginator
// assumes that Slice(offset, limit) always yields the same elements for the
// same arguments. Database backed lists should therefore always sort by a
// unique key.
type ObjectList[T any] interface {
	// Count returns the total number of elements in the collection.
	Count(ctx context.Context) (int, error)
	// Slice returns up to limit elements starting at the 0-based offset.
	Slice(ctx context.Context, offset, limit int) ([]T, error)
}

// SliceList adapts an in-memory slice to ObjectList.
type SliceList[T any] []T

// Count returns the length of the slice.
func (l SliceList[T]) Count(context.Context) (int, error) {
	return len(l), nil
}

// Slice returns the sub-slice [offset, offset+limit), clipped to the slice
// bounds. The result shares memory with l but cannot be appended into it.
func (l SliceList[T]) Slice(_ context.Context, offset, limit int) ([]T, error) {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(l) || limit <= 0 {
		return []T{}, nil
	}
	end := min(offset+limit, len(l))
	return l[offset:end:end], nil
}
