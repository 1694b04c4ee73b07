// Package errors provides structured error handling for the pipeline
// library and its demo tooling. It implements a coded error type with
// cause chaining and detail maps; the pipeline core never wraps or
// translates these, it propagates them verbatim to the caller.
package errors
