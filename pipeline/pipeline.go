package pipeline

import "context"

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// Filter maps one sequence to another. Filters are stateless between runs
// and consume their upstream lazily, one element at a time.
type Filter[I, O any] func(Iterator[I]) Iterator[O]

// Pipeline is an ordered, append-only composition of filters. A pipeline
// holds no per-execution state, so one instance may be reused across
// independent input sequences.
type Pipeline[I, O any] struct {
	apply Filter[I, O]
	count int
}

// New creates an empty pipeline. With no filters attached, Execute is the
// identity: it returns the materialized input unchanged.
func New[T any]() *Pipeline[T, T] {
	return &Pipeline[T, T]{
		apply: func(in Iterator[T]) Iterator[T] { return in },
	}
}

// NewWith creates a pipeline pre-loaded with the given same-type filters,
// applied in argument order.
func NewWith[T any](filters ...Filter[T, T]) *Pipeline[T, T] {
	p := New[T]()
	for _, f := range filters {
		p.Attach(f)
	}
	return p
}

// Attach appends a filter to the chain and returns the receiver for fluent
// chaining. Attachment order is application order; no compatibility
// validation happens here.
func (p *Pipeline[I, O]) Attach(f Filter[O, O]) *Pipeline[I, O] {
	prev := p.apply
	p.apply = func(in Iterator[I]) Iterator[O] {
		return f(prev(in))
	}
	p.count++
	return p
}

// Attach appends a type-changing filter, returning a new pipeline whose
// output type is the filter's. The original pipeline is not modified and
// shares no per-execution state with the result.
func Attach[I, M, O any](p *Pipeline[I, M], f Filter[M, O]) *Pipeline[I, O] {
	prev := p.apply
	return &Pipeline[I, O]{
		apply: func(in Iterator[I]) Iterator[O] {
			return f(prev(in))
		},
		count: p.count + 1,
	}
}

// Len returns the number of attached filters.
func (p *Pipeline[I, O]) Len() int { return p.count }

// Process feeds in through each attached filter in attachment order and
// returns the composed iterator. No element is pulled until the caller
// pulls; the input is consumed exactly once as the result is drained.
func (p *Pipeline[I, O]) Process(in Iterator[I]) Iterator[O] {
	return p.apply(in)
}

// Execute runs the pipeline against in and materializes the final sequence.
// Any error from any filter propagates unmodified; no partial result is
// returned.
func (p *Pipeline[I, O]) Execute(ctx context.Context, in Iterator[I]) ([]O, error) {
	return Collect(ctx, p.Process(in))
}

// Collect drains an iterator into a slice. The iterator is closed before
// returning.
func Collect[T any](ctx context.Context, it Iterator[T]) ([]T, error) {
	defer it.Close()
	result := []T{}
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, val)
	}
}

// ForEach drains an iterator, calling fn for each value. Processing is
// element-by-element; fn errors abort the walk.
func ForEach[T any](ctx context.Context, it Iterator[T], fn func(context.Context, T) error) error {
	defer it.Close()
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(ctx, val); err != nil {
			return err
		}
	}
}

// FromSlice creates an iterator over items. Like any Iterator it is
// single-consumption: once drained it stays empty.
func FromSlice[T any](items []T) Iterator[T] {
	return &sliceIter[T]{items: items}
}

// FromFunc creates an iterator backed by next. closeFn may be nil.
func FromFunc[T any](next func(ctx context.Context) (T, bool, error), closeFn func() error) Iterator[T] {
	return &funcIter[T]{next: next, close: closeFn}
}

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }

type funcIter[T any] struct {
	next  func(ctx context.Context) (T, bool, error)
	close func() error
}

func (it *funcIter[T]) Next(ctx context.Context) (T, bool, error) {
	return it.next(ctx)
}

func (it *funcIter[T]) Close() error {
	if it.close != nil {
		return it.close()
	}
	return nil
}
