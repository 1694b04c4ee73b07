// Package pipeline implements the pipes-and-filters pattern as a lazy,
// pull-based composition of sequence transformers.
//
// A Filter maps one element sequence to another without buffering: each
// stage pulls from its upstream only when it is itself asked for the next
// element, so at most one element is in flight per stage. A Pipeline is an
// ordered list of filters with a single entry point: Process composes the
// chain lazily, Execute runs it and materializes the result.
//
// Sequences are single-consumption. An Iterator is produced once and drained
// once; feeding an already-drained iterator through a pipeline yields an
// empty result, not an error. Reuse a pipeline across runs, not an iterator.
//
// # Filter shapes
//
//   - Transform: 1-to-1, may change the element type
//   - Predicate: 1-to-(0 or 1), passes matching elements through unchanged
//   - Annotate: 1-to-1 enrichment of a record-shaped element
//   - Tap: side-effect without altering the value
//
// # Usage
//
//	trim := pipeline.Transform(func(_ context.Context, s string) (string, error) {
//	    return strings.TrimSpace(s), nil
//	})
//	long := pipeline.Predicate(func(s string) bool { return len(s) > 3 })
//
//	p := pipeline.New[string]().Attach(trim).Attach(long)
//	out, err := p.Execute(ctx, pipeline.FromSlice(input))
//
// Attach appends in order and returns the receiver for fluent chaining; no
// compatibility check happens at attach time. When a filter changes the
// element type, use the package-level Attach, which moves the check to
// generic instantiation:
//
//	nums := pipeline.Attach(p, pipeline.Transform(parseInt))
//
// # Errors
//
// Any error returned by a filter aborts the run and propagates out of
// Execute unmodified. No partial result is returned.
package pipeline
