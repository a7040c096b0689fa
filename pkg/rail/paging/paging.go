package paging

import (
	"context"

	"github.com/ib-77/rail/pkg/rail"
)

// Source is a countable, sliceable sequence. Implementations typically wrap
// a query or a repository; the adapters here never perform I/O themselves.
type Source[T any] interface {
	Count(ctx context.Context) (int, error)
	Slice(ctx context.Context, offset, limit int) ([]T, error)
}

// Paginate produces one page from the source together with pagination
// metadata. Non-positive page or size are coerced to 1; any fault while
// counting or slicing is captured as a DATA_ACCESS failure.
func Paginate[T any](ctx context.Context, src Source[T], page, size int) (res rail.Result[[]T]) {
	page, size = coerce(page, size)

	defer func() {
		if rec := recover(); rec != nil {
			res = dataAccessFailure[[]T](rail.CapturePanic(rec))
		}
	}()

	total, err := src.Count(ctx)
	if err != nil {
		return dataAccessFailure[[]T](err)
	}

	items, err := src.Slice(ctx, (page-1)*size, size)
	if err != nil {
		return dataAccessFailure[[]T](err)
	}

	meta := rail.MetaWithPagination(rail.NewPagination(page, size, total))
	return rail.SuccessMeta(items, meta)
}

// PaginateSlice is Paginate over an in-memory slice.
func PaginateSlice[T any](items []T, page, size int) rail.Result[[]T] {
	page, size = coerce(page, size)

	offset := (page - 1) * size
	pageItems := []T{}
	if offset < len(items) {
		end := min(offset+size, len(items))
		pageItems = items[offset:end:end]
	}

	meta := rail.MetaWithPagination(rail.NewPagination(page, size, len(items)))
	return rail.SuccessMeta(pageItems, meta)
}

func coerce(page, size int) (int, int) {
	return max(page, 1), max(size, 1)
}

func dataAccessFailure[T any](cause error) rail.Result[T] {
	e := rail.NewCode(rail.CodeDataAccess, cause.Error()).
		WithCause(cause).
		WithContext("", rail.CallerName(2))
	return rail.Fail[T](e)
}
