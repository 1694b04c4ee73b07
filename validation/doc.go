// Package validation provides input validation for filter options and
// generator configuration.
//
// It supports struct tag validation (using the validator library) and
// programmatic validation with error collection.
//
// # Struct Tag Validation
//
//	type SpamOptions struct {
//	    MaxRepeatedChars int `validate:"min=1"`
//	}
//	err := validation.Validate(opts)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Min("count", cfg.Count, 1)
//	err := v.Error()
package validation
