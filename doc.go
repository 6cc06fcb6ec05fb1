// Package datefmt composes date-time formatters from literal text and
// per-field formatting functions.
//
// The central type is [Formatter], a pure func(time.Time) string. The
// package ships a family of single-field formatters ([Year], [Month],
// [Hour], ...), the combinator [Compose] that splices literals and
// formatters into a new Formatter, and [ISO8601], a ready-made profile
// built from both. Formatters are built once and are immutable, so they
// are safe to share across goroutines.
//
// # Composition
//
// [Compose] interleaves n+1 literal fragments with n formatters:
//
//	stamp := datefmt.Compose(
//		[]string{"", "-", "-", " ", ":", ""},
//		datefmt.Year, datefmt.Month, datefmt.Day,
//		datefmt.Hour, datefmt.Minute,
//	)
//	stamp(t) // "2024-01-26 11:57"
//
// The result is itself a Formatter, so templates nest: compose a time
// template once and embed it in several date-time templates with
// different surrounding punctuation. A placeholder with no formatter
// behind it renders as the empty string rather than failing.
//
// # ISO-8601
//
// [ISO8601] returns a Formatter for the ISO-8601 date-time text form.
// [ISO8601Options] controls punctuation ([Extended] or [Basic]),
// seconds precision ([RoundNone], [RoundSeconds], [RoundMillis]) and
// the date/time delimiter. The zero value means all defaults:
//
//	f := datefmt.ISO8601(datefmt.ISO8601Options{})
//	f(t) // "2024-01-26T11:57:23.723615"
//
//	f = datefmt.ISO8601(datefmt.ISO8601Options{Style: datefmt.Basic, Round: datefmt.RoundMillis})
//	f(t) // "20240126T115723.723"
//
// # Pattern Formatters
//
// [Strftime] compiles a C strftime pattern into a Formatter and
// [Layout] wraps a Go reference layout, so externally supplied format
// text can participate in composition:
//
//	f, err := datefmt.Strftime("%Y-%m-%d %H:%M:%S")
//
// # Flags and Config
//
// Use [ParseStyle] and [ParseRounding] to convert CLI flag strings into
// option values; [Styles] and [Roundings] list the accepted names. Both
// enums also implement [encoding.TextUnmarshaler] and yaml.Unmarshaler,
// so [ISO8601Options] decodes directly from a YAML config file.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedStyle] — unknown style string
//   - [ErrUnsupportedRounding] — unknown rounding string
//   - [ErrInvalidPattern] — invalid strftime pattern
//
// Formatting itself never returns an error: a built Formatter is total
// for any representable time value. If a user-supplied formatter panics
// inside a composed template, the panic propagates unmodified and no
// partial output is produced.
package datefmt
