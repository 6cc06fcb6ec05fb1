package datefmt

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"
)

// Strftime builds a [Formatter] from a C strftime pattern, e.g.
// "%Y-%m-%d %H:%M:%S". The pattern is compiled once; the returned
// formatter reuses it on every call. Invalid patterns return an error
// wrapping [ErrInvalidPattern].
func Strftime(pattern string) (Formatter, error) {
	f, err := strftime.New(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPattern, err)
	}
	return func(t time.Time) string {
		return f.FormatString(t)
	}, nil
}

// Layout builds a [Formatter] from a Go reference layout, e.g.
// [time.RFC3339]. Useful for splicing an existing layout into a
// composed template.
func Layout(layout string) Formatter {
	return func(t time.Time) string {
		return t.Format(layout)
	}
}
