// Package socialgen generates synthetic social-media comment datasets for
// the demo pipelines. Generated text loosely matches the language of the
// comment's country so the language and sentiment filters have something
// to bite on, and user names arrive in messy casing so normalization is
// observable.
//
//	gen, err := socialgen.New(socialgen.Config{Count: 500, Seed: 42})
//	comments := gen.Generate()
//
// Generate returns a materialized slice; Iter returns a lazy source that
// produces comments on demand, for feeding a pipeline directly.
package socialgen
