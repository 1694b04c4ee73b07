// Package textfilter provides filters for extracting numbers from noisy
// string sequences: whitespace normalization, a numeric gate, integer
// conversion, and a threshold gate, plus a prebuilt pipeline chaining them.
//
//	p := textfilter.Extraction(10)
//	nums, err := p.Execute(ctx, pipeline.FromSlice([]string{"  123  ", "  abc  ", "  456  "}))
//	// nums == []int{123, 456}
//
// ToInt fails fast: a non-numeric string reaching it aborts the whole run
// with a MALFORMED_ELEMENT error. In the prebuilt pipeline OnlyNumeric
// gates the input so ToInt only sees convertible strings.
package textfilter
