package pipeline

import "context"

// Transform builds a 1-to-1 filter: every input element yields exactly one
// output element. An error from fn aborts the run.
func Transform[I, O any](fn func(context.Context, I) (O, error)) Filter[I, O] {
	return func(src Iterator[I]) Iterator[O] {
		return &transformIter[I, O]{source: src, fn: fn}
	}
}

// Predicate builds a selective filter: elements satisfying fn pass through
// unchanged, the rest are omitted.
func Predicate[T any](fn func(T) bool) Filter[T, T] {
	return func(src Iterator[T]) Iterator[T] {
		return &predicateIter[T]{source: src, fn: fn}
	}
}

// Annotate builds an enriching filter: a 1-to-1 transform that keeps the
// element type, typically attaching derived fields to a record.
func Annotate[T any](fn func(context.Context, T) (T, error)) Filter[T, T] {
	return Transform(fn)
}

// Tap builds a filter that calls fn as a side-effect for each value and
// passes the value through unchanged. Use for logging or counting.
func Tap[T any](fn func(context.Context, T) error) Filter[T, T] {
	return func(src Iterator[T]) Iterator[T] {
		return &tapIter[T]{source: src, fn: fn}
	}
}

type transformIter[I, O any] struct {
	source Iterator[I]
	fn     func(context.Context, I) (O, error)
}

func (it *transformIter[I, O]) Next(ctx context.Context) (O, bool, error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		var zero O
		return zero, false, err
	}
	out, err := it.fn(ctx, val)
	if err != nil {
		var zero O
		return zero, false, err
	}
	return out, true, nil
}

func (it *transformIter[I, O]) Close() error { return it.source.Close() }

type predicateIter[T any] struct {
	source Iterator[T]
	fn     func(T) bool
}

func (it *predicateIter[T]) Next(ctx context.Context) (T, bool, error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		if it.fn(val) {
			return val, true, nil
		}
	}
}

func (it *predicateIter[T]) Close() error { return it.source.Close() }

type tapIter[T any] struct {
	source Iterator[T]
	fn     func(context.Context, T) error
}

func (it *tapIter[T]) Next(ctx context.Context) (T, bool, error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return val, ok, err
	}
	if err := it.fn(ctx, val); err != nil {
		var zero T
		return zero, false, err
	}
	return val, true, nil
}

func (it *tapIter[T]) Close() error { return it.source.Close() }
