package datefmt

// ISO8601Options configures [ISO8601]. The zero value selects every
// default: extended punctuation, no rounding, "T" delimiter. The fields
// are independent; every combination is valid.
type ISO8601Options struct {
	// Style selects the punctuation profile. Empty or unrecognized
	// values behave as [Extended].
	Style Style `yaml:"style" json:"style"`

	// Round selects the seconds precision. Empty or unrecognized values
	// behave as [RoundNone].
	Round Rounding `yaml:"round" json:"round"`

	// TimeDelimiter separates the date portion from the time portion.
	// Empty means "T"; " " is the other conventional choice. The value
	// is spliced into the output verbatim.
	TimeDelimiter string `yaml:"delimiter" json:"delimiter"`
}

// ISO8601 builds a [Formatter] producing the ISO-8601 date-time text
// representation: year, month, day, the time delimiter, then hour,
// minute, and seconds. With default options the output matches
// "2006-01-02T15:04:05" plus whatever fractional precision the value
// carries.
//
// ISO8601 never fails: every options record yields a working formatter,
// with unrecognized option values falling back to their defaults. The
// returned formatter performs no range validation; that is the time
// value's concern.
func ISO8601(opts ISO8601Options) Formatter {
	dateSep, timeSep := "-", ":"
	if opts.Style == Basic {
		dateSep, timeSep = "", ""
	}
	delim := opts.TimeDelimiter
	if delim == "" {
		delim = "T"
	}
	return Compose(
		[]string{"", dateSep, dateSep, delim, timeSep, timeSep, ""},
		Year, Month, Day, Hour, Minute, secondsField(opts.Round),
	)
}

// secondsField maps a rounding mode to its seconds formatter.
// Unrecognized modes behave as RoundNone.
func secondsField(r Rounding) Formatter {
	switch r {
	case RoundSeconds:
		return Second
	case RoundMillis:
		return SecondMilli
	default:
		return SecondFull
	}
}
