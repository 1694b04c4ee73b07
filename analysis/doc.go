// Package analysis computes summary statistics over materialized comment
// collections: sentiment split, likes distribution, country and user
// cardinality, and text length. It consumes pipeline output and leaves
// presentation to the caller.
package analysis
