package datefmt_test

import (
	"testing"
	"time"

	"github.com/bjaus/datefmt"
	"github.com/stretchr/testify/assert"
)

func TestISO8601Defaults(t *testing.T) {
	t.Parallel()
	f := datefmt.ISO8601(datefmt.ISO8601Options{})
	assert.Equal(t, "2024-01-26T11:57:23.723615", f(refTime))
}

func TestISO8601Scenarios(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		opts datefmt.ISO8601Options
		want string
	}{
		"basic": {
			opts: datefmt.ISO8601Options{Style: datefmt.Basic},
			want: "20240126T115723.723615",
		},
		"round seconds": {
			opts: datefmt.ISO8601Options{Round: datefmt.RoundSeconds},
			want: "2024-01-26T11:57:23",
		},
		"round ms": {
			opts: datefmt.ISO8601Options{Round: datefmt.RoundMillis},
			want: "2024-01-26T11:57:23.723",
		},
		"space delimiter": {
			opts: datefmt.ISO8601Options{TimeDelimiter: " "},
			want: "2024-01-26 11:57:23.723615",
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			f := datefmt.ISO8601(tt.opts)
			assert.Equal(t, tt.want, f(refTime))
		})
	}
}

// Every combination of the three options is valid and each option's
// effect is independent of the other two.
func TestISO8601OptionIndependence(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		opts datefmt.ISO8601Options
		want string
	}{
		"extended none T":     {datefmt.ISO8601Options{}, "2024-01-26T11:57:23.723615"},
		"extended none space": {datefmt.ISO8601Options{TimeDelimiter: " "}, "2024-01-26 11:57:23.723615"},
		"extended seconds T":  {datefmt.ISO8601Options{Round: datefmt.RoundSeconds}, "2024-01-26T11:57:23"},
		"extended seconds space": {
			datefmt.ISO8601Options{Round: datefmt.RoundSeconds, TimeDelimiter: " "},
			"2024-01-26 11:57:23",
		},
		"extended ms T": {datefmt.ISO8601Options{Round: datefmt.RoundMillis}, "2024-01-26T11:57:23.723"},
		"extended ms space": {
			datefmt.ISO8601Options{Round: datefmt.RoundMillis, TimeDelimiter: " "},
			"2024-01-26 11:57:23.723",
		},
		"basic none T": {datefmt.ISO8601Options{Style: datefmt.Basic}, "20240126T115723.723615"},
		"basic none space": {
			datefmt.ISO8601Options{Style: datefmt.Basic, TimeDelimiter: " "},
			"20240126 115723.723615",
		},
		"basic seconds T": {
			datefmt.ISO8601Options{Style: datefmt.Basic, Round: datefmt.RoundSeconds},
			"20240126T115723",
		},
		"basic seconds space": {
			datefmt.ISO8601Options{Style: datefmt.Basic, Round: datefmt.RoundSeconds, TimeDelimiter: " "},
			"20240126 115723",
		},
		"basic ms T": {
			datefmt.ISO8601Options{Style: datefmt.Basic, Round: datefmt.RoundMillis},
			"20240126T115723.723",
		},
		"basic ms space": {
			datefmt.ISO8601Options{Style: datefmt.Basic, Round: datefmt.RoundMillis, TimeDelimiter: " "},
			"20240126 115723.723",
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			f := datefmt.ISO8601(tt.opts)
			assert.Equal(t, tt.want, f(refTime))
		})
	}
}

func TestISO8601WholeSecond(t *testing.T) {
	t.Parallel()
	// A value with no fractional part renders without a dot under the
	// default rounding, not with ".0" or ".000000".
	whole := time.Date(2024, time.January, 26, 11, 57, 23, 0, time.UTC)
	f := datefmt.ISO8601(datefmt.ISO8601Options{})
	assert.Equal(t, "2024-01-26T11:57:23", f(whole))
}

func TestISO8601MillisZeroPadded(t *testing.T) {
	t.Parallel()
	// 7ms must render ".007", not ".7".
	ts := time.Date(2024, time.January, 26, 11, 57, 23, 7_000_000, time.UTC)
	f := datefmt.ISO8601(datefmt.ISO8601Options{Round: datefmt.RoundMillis})
	assert.Equal(t, "2024-01-26T11:57:23.007", f(ts))
}

func TestISO8601MillisTruncates(t *testing.T) {
	t.Parallel()
	// 723.9995ms truncates to .723; no rounding up.
	ts := time.Date(2024, time.January, 26, 11, 57, 23, 723_999_500, time.UTC)
	f := datefmt.ISO8601(datefmt.ISO8601Options{Round: datefmt.RoundMillis})
	assert.Equal(t, "2024-01-26T11:57:23.723", f(ts))
}

func TestISO8601UnknownOptionsDefault(t *testing.T) {
	t.Parallel()
	// Malformed option values fall back to defaults instead of failing.
	f := datefmt.ISO8601(datefmt.ISO8601Options{Style: "fancy", Round: "ns"})
	assert.Equal(t, "2024-01-26T11:57:23.723615", f(refTime))
}

func TestISO8601ReuseAcrossValues(t *testing.T) {
	t.Parallel()
	f := datefmt.ISO8601(datefmt.ISO8601Options{Round: datefmt.RoundSeconds})
	assert.Equal(t, "2024-01-26T11:57:23", f(refTime))
	assert.Equal(t, "1999-12-31T23:59:59", f(time.Date(1999, time.December, 31, 23, 59, 59, 999_999_999, time.UTC)))
	assert.Equal(t, "0007-03-05T04:08:09", f(time.Date(7, time.March, 5, 4, 8, 9, 0, time.UTC)))
}
