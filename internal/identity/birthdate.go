package identity

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// maxAge bounds custom age ranges.
const maxAge = 120

// AgeRange is an inclusive interval of ages in whole years.
type AgeRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// named buckets
var (
	AgeYoung  = AgeRange{Min: 18, Max: 25}
	AgeAdult  = AgeRange{Min: 26, Max: 40}
	AgeMiddle = AgeRange{Min: 41, Max: 60}
	AgeSenior = AgeRange{Min: 61, Max: 80}
)

var ageBuckets = []struct {
	name string
	r    AgeRange
}{
	{"young", AgeYoung},
	{"adult", AgeAdult},
	{"middle", AgeMiddle},
	{"senior", AgeSenior},
}

// AgeRanges returns the named buckets in ascending order.
func AgeRanges() []AgeRange {
	out := make([]AgeRange, len(ageBuckets))
	for i, b := range ageBuckets {
		out[i] = b.r
	}
	return out
}

// String renders the range as "min-max".
func (a AgeRange) String() string {
	return fmt.Sprintf("%d-%d", a.Min, a.Max)
}

// Name returns the bucket name, or the "min-max" form for custom ranges.
func (a AgeRange) Name() string {
	for _, b := range ageBuckets {
		if b.r == a {
			return b.name
		}
	}
	return a.String()
}

// Validate rejects negative, inverted and implausible ranges.
func (a AgeRange) Validate() error {
	if a.Min < 0 || a.Max > maxAge || a.Max < a.Min {
		return fmt.Errorf("%w: age range %s", ErrInvalidParameter, a)
	}
	return nil
}

// ParseAgeRange accepts a bucket name ("young", "adult", "middle",
// "senior") or an explicit "min-max" range.
func ParseAgeRange(s string) (AgeRange, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, b := range ageBuckets {
		if s == b.name {
			return b.r, nil
		}
	}
	if s == "young-adult" {
		return AgeYoung, nil
	}

	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return AgeRange{}, fmt.Errorf("%w: age range %q", ErrInvalidParameter, s)
	}
	from, err1 := strconv.Atoi(strings.TrimSpace(lo))
	to, err2 := strconv.Atoi(strings.TrimSpace(hi))
	if err1 != nil || err2 != nil {
		return AgeRange{}, fmt.Errorf("%w: age range %q", ErrInvalidParameter, s)
	}

	a := AgeRange{Min: from, Max: to}
	if err := a.Validate(); err != nil {
		return AgeRange{}, err
	}
	return a, nil
}

// GenerateBirthDate draws an age uniformly from a, then a birth date for
// which the age at now is exactly that age.
func GenerateBirthDate(r *rand.Rand, a AgeRange, now time.Time) (time.Time, error) {
	return birthDate(r, a, now)
}

func birthDate(r *rand.Rand, a AgeRange, now time.Time) (time.Time, error) {
	if err := a.Validate(); err != nil {
		return time.Time{}, err
	}

	age := a.Min + r.Intn(a.Max-a.Min+1)
	y, m, d := now.Date()

	// latest birthday that already reached age, earliest one not yet age+1
	latest := civilDate(y-age, m, d)
	earliest := civilDate(y-age-1, m, d).AddDate(0, 0, 1)

	span := int(latest.Sub(earliest).Hours() / 24)
	return earliest.AddDate(0, 0, r.Intn(span+1)), nil
}

// AgeAt returns the age in whole years of someone born on birth at t.
func AgeAt(birth, t time.Time) int {
	by, bm, bd := birth.Date()
	ty, tm, td := t.Date()
	age := ty - by
	if tm < bm || (tm == bm && td < bd) {
		age--
	}
	return age
}

// civilDate builds a UTC midnight date, clamping the day to the month
// length so Feb 29 becomes Feb 28 in common years.
func civilDate(year int, month time.Month, day int) time.Time {
	if last := daysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
