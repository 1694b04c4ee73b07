package textfilter

import (
	"context"
	"strconv"
	"strings"

	"github.com/pipekit/pipekit/errors"
	"github.com/pipekit/pipekit/pipeline"
)

// DefaultThreshold is the threshold used by the standard extraction pipeline.
const DefaultThreshold = 10

// NormalizeSpaces returns a transform filter that collapses runs of
// whitespace into single spaces and trims the ends.
func NormalizeSpaces() pipeline.Filter[string, string] {
	return pipeline.Transform(func(_ context.Context, s string) (string, error) {
		return strings.Join(strings.Fields(s), " "), nil
	})
}

// OnlyNumeric returns a predicate filter that keeps strings representing
// numbers. Minus signs, decimal points and thousands separators are
// ignored; the remainder must be non-empty and all digits.
func OnlyNumeric() pipeline.Filter[string, string] {
	return pipeline.Predicate(isNumericString)
}

// ToInt returns a transform filter that converts numeric strings to
// integers. Thousands separators are stripped and fractions truncated.
// A string that does not parse fails the run.
func ToInt() pipeline.Filter[string, int] {
	return pipeline.Transform(func(_ context.Context, s string) (int, error) {
		cleaned := strings.ReplaceAll(s, ",", "")
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, errors.MalformedElement(s, "not a numeric string").WithCause(err)
		}
		return int(f), nil
	})
}

// GreaterThan returns a predicate filter that keeps values strictly greater
// than threshold.
func GreaterThan(threshold int) pipeline.Filter[int, int] {
	return pipeline.Predicate(func(n int) bool {
		return n > threshold
	})
}

// Extraction builds the standard numeric extraction pipeline:
// NormalizeSpaces, OnlyNumeric, ToInt, GreaterThan, in that order.
func Extraction(threshold int) *pipeline.Pipeline[string, int] {
	cleanup := pipeline.New[string]().
		Attach(NormalizeSpaces()).
		Attach(OnlyNumeric())
	return pipeline.Attach(cleanup, ToInt()).
		Attach(GreaterThan(threshold))
}

func isNumericString(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '-' || r == '.' || r == ',':
			// ignored, matching the lenient numeric check of the cleanup stage
		default:
			return false
		}
	}
	return digits > 0
}
