package datefmt

import (
	"fmt"
	"time"
)

// Year renders the year as four zero-padded digits. The padding applies
// to the magnitude; years before year 0 keep a leading "-".
func Year(t time.Time) string {
	y := t.Year()
	if y < 0 {
		return fmt.Sprintf("-%04d", -y)
	}
	return fmt.Sprintf("%04d", y)
}

// Two-digit zero-padded numeric fields.

// Month renders the month as "01".."12".
func Month(t time.Time) string { return t.Format("01") }

// Day renders the day of month as "01".."31".
func Day(t time.Time) string { return t.Format("02") }

// Hour renders the 24-hour clock hour as "00".."23".
func Hour(t time.Time) string { return t.Format("15") }

// Hour12 renders the 12-hour clock hour as "01".."12". Pair with [AMPM].
func Hour12(t time.Time) string { return t.Format("03") }

// Minute renders the minute as "00".."59".
func Minute(t time.Time) string { return t.Format("04") }

// Second renders the whole second as "00".."59", truncating any
// fractional part.
func Second(t time.Time) string { return t.Format("05") }

// SecondMilli renders the second truncated to millisecond precision
// with exactly three fractional digits, e.g. "23.007".
func SecondMilli(t time.Time) string { return t.Format("05.000") }

// SecondFull renders the second with the full fractional precision the
// value carries, trailing zeros trimmed. A whole second renders with no
// fractional part and no dot, e.g. "23"; 723615000ns renders "23.723615".
func SecondFull(t time.Time) string { return t.Format("05.999999999") }

// Millisecond renders the millisecond part alone as three digits,
// "000".."999".
func Millisecond(t time.Time) string {
	return fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond))
}

// Name fields. These use Go's layout engine, so the names are English;
// locale tables are out of scope.

// Weekday renders the full weekday name, e.g. "Friday".
func Weekday(t time.Time) string { return t.Format("Monday") }

// WeekdayShort renders the abbreviated weekday name, e.g. "Fri".
func WeekdayShort(t time.Time) string { return t.Format("Mon") }

// MonthName renders the full month name, e.g. "January".
func MonthName(t time.Time) string { return t.Format("January") }

// MonthNameShort renders the abbreviated month name, e.g. "Jan".
func MonthNameShort(t time.Time) string { return t.Format("Jan") }

// AMPM renders the meridiem indicator, "AM" or "PM".
func AMPM(t time.Time) string { return t.Format("PM") }
