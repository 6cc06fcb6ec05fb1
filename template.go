package datefmt

import (
	"strings"
	"time"
)

// Compose splices literal text and formatters into a single [Formatter].
// The returned formatter concatenates, in order,
//
//	literals[0] + formatters[0](t) + literals[1] + ... + literals[n]
//
// so the normal shape is n+1 literals around n formatters. A placeholder
// with no formatter behind it (too few formatters, or a nil entry)
// renders as the empty string rather than failing; templates are
// normally built by the same code that supplies the formatter list, so
// a mismatch degrades instead of erroring. Formatters beyond the last
// placeholder are ignored.
//
// Every formatter is re-evaluated on each call; nothing is cached. The
// result is itself a Formatter, so composed templates nest: a "time"
// template can be a placeholder inside a larger "date-time" template.
// If a formatter panics, the panic propagates and no partial output is
// returned.
func Compose(literals []string, formatters ...Formatter) Formatter {
	return func(t time.Time) string {
		var b strings.Builder
		for i, lit := range literals {
			b.WriteString(lit)
			if i == len(literals)-1 {
				break
			}
			if i < len(formatters) && formatters[i] != nil {
				b.WriteString(formatters[i](t))
			}
		}
		return b.String()
	}
}
