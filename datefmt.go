package datefmt

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedStyle    = errors.New("unsupported style")
	ErrUnsupportedRounding = errors.New("unsupported rounding")
	ErrInvalidPattern      = errors.New("invalid pattern")
)

// Formatter renders one field, or a composed group of fields, of a time
// value. A Formatter must be pure: no side effects, and equal inputs
// always yield identical strings. That makes every Formatter safe to
// build once and share across goroutines without synchronization.
type Formatter func(time.Time) string

// Style selects the ISO-8601 punctuation profile.
type Style string

const (
	// Extended inserts "-" between date components and ":" between time
	// components. This is the default.
	Extended Style = "extended"
	// Basic omits both separators.
	Basic Style = "basic"
)

var styles = []Style{Extended, Basic}

// String returns the style name.
func (s Style) String() string { return string(s) }

// Styles returns all supported style names.
func Styles() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}

// ParseStyle parses a style string.
func ParseStyle(s string) (Style, error) {
	for _, st := range styles {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedStyle, s)
}

// UnmarshalText implements [encoding.TextUnmarshaler]. Unlike the zero
// value, which silently behaves as [Extended], unmarshalling is strict:
// a typo in a flag or config file surfaces as an error.
func (s *Style) UnmarshalText(text []byte) error {
	st, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// UnmarshalYAML implements [yaml.Unmarshaler] with the same strictness
// as [Style.UnmarshalText].
func (s *Style) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	return s.UnmarshalText([]byte(raw))
}

// Rounding selects the seconds precision of the ISO-8601 profile.
type Rounding string

const (
	// RoundNone formats seconds with the full fractional precision the
	// time value carries, trailing zeros trimmed. This is the default.
	RoundNone Rounding = "none"
	// RoundSeconds truncates the time to whole seconds.
	RoundSeconds Rounding = "seconds"
	// RoundMillis truncates the time to milliseconds and always emits
	// exactly three fractional digits.
	RoundMillis Rounding = "ms"
)

var roundings = []Rounding{RoundNone, RoundSeconds, RoundMillis}

// String returns the rounding name.
func (r Rounding) String() string { return string(r) }

// Roundings returns all supported rounding names.
func Roundings() []Rounding {
	out := make([]Rounding, len(roundings))
	copy(out, roundings)
	return out
}

// ParseRounding parses a rounding string.
func ParseRounding(s string) (Rounding, error) {
	for _, r := range roundings {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedRounding, s)
}

// UnmarshalText implements [encoding.TextUnmarshaler]. Strict, like
// [Style.UnmarshalText].
func (r *Rounding) UnmarshalText(text []byte) error {
	rd, err := ParseRounding(string(text))
	if err != nil {
		return err
	}
	*r = rd
	return nil
}

// UnmarshalYAML implements [yaml.Unmarshaler] with the same strictness
// as [Rounding.UnmarshalText].
func (r *Rounding) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	return r.UnmarshalText([]byte(raw))
}
