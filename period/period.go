// Package period provides the orderable keys of the egg price series: a
// year plus an optional sub-period code, and a chronological container of
// values keyed by them.
package period

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Annual is the sub-period code of a yearly average observation.
// The upstream feed numbers real months "M01".."M12" and publishes the
// annual average under "M13".
const Annual = "M13"

// Period identifies one observation in a price series.
type Period struct {
	year int
	code string // "M01".."M13", empty for a plain year
}

// Yearly returns the Period of a plain yearly observation.
func Yearly(year int) Period { return Period{year: year} }

// Monthly returns the Period of a monthly observation.
func Monthly(year int, month time.Month) Period {
	return Period{year: year, code: fmt.Sprintf("M%02d", int(month))}
}

// New returns a Period with an explicit sub-period code.
func New(year int, code string) Period { return Period{year: year, code: code} }

// Year returns the period's year.
func (p Period) Year() int { return p.year }

// Code returns the sub-period code, empty for plain years.
func (p Period) Code() string { return p.code }

// IsZero reports whether p is the zero Period.
func (p Period) IsZero() bool { return p.year == 0 && p.code == "" }

// Compare orders two periods chronologically: by year first, then by code
// compared as strings. The string comparison is deliberate: "M13" (annual
// average) outranks every real month, matching the feed's publication order.
func (p Period) Compare(q Period) int {
	if p.year != q.year {
		return p.year - q.year
	}
	return strings.Compare(p.code, q.code)
}

// Before reports whether p is chronologically before q.
func (p Period) Before(q Period) bool { return p.Compare(q) < 0 }

// After reports whether p is chronologically after q.
func (p Period) After(q Period) bool { return p.Compare(q) > 0 }

// String formats the period in its canonical form, "2023" or "2023-M05".
func (p Period) String() string {
	if p.code == "" {
		return strconv.Itoa(p.year)
	}
	return fmt.Sprintf("%d-%s", p.year, p.code)
}

// Label returns a human-readable form: "May 2023", "2023 annual average",
// or the bare year.
func (p Period) Label() string {
	m, err := p.Month()
	switch {
	case p.code == Annual:
		return fmt.Sprintf("%d annual average", p.year)
	case err == nil:
		return fmt.Sprintf("%s %d", m, p.year)
	case p.code == "":
		return strconv.Itoa(p.year)
	default:
		return p.String()
	}
}

// Month returns the calendar month of a monthly period, or an error for
// plain years and the annual-average code.
func (p Period) Month() (time.Month, error) {
	if !strings.HasPrefix(p.code, "M") {
		return 0, fmt.Errorf("period %s has no month", p)
	}
	n, err := strconv.Atoi(strings.TrimPrefix(p.code, "M"))
	if err != nil || n < 1 || n > 12 {
		return 0, fmt.Errorf("period %s has no month", p)
	}
	return time.Month(n), nil
}

// Parse parses a Period from its canonical form: "2023" or "2023-M05".
func Parse(str string) (Period, error) {
	year, code, found := strings.Cut(str, "-")
	y, err := strconv.Atoi(year)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q: %w", str, err)
	}
	if !found {
		return Yearly(y), nil
	}
	if len(code) != 3 || code[0] != 'M' {
		return Period{}, fmt.Errorf("invalid period %q: want sub-period code like M05", str)
	}
	if _, err := strconv.Atoi(code[1:]); err != nil {
		return Period{}, fmt.Errorf("invalid period %q: %w", str, err)
	}
	return Period{year: y, code: code}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Period {
	p, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return p
}

func (p Period) MarshalJSON() ([]byte, error) {
	str := p.String()
	return json.Marshal(&str)
}

func (p *Period) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := Parse(str)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
