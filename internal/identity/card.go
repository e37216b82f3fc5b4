package identity

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/zarlcorp/zprofile/internal/locale"
)

type brandSpec struct {
	prefixes []string
	length   int
	cvvLen   int
}

var brandSpecs = map[locale.Brand]brandSpec{
	locale.Visa:       {prefixes: []string{"4"}, length: 16, cvvLen: 3},
	locale.Mastercard: {prefixes: []string{"51", "52", "53", "54", "55"}, length: 16, cvvLen: 3},
	locale.Amex:       {prefixes: []string{"34", "37"}, length: 15, cvvLen: 4},
	locale.Discover:   {prefixes: []string{"6011", "65"}, length: 16, cvvLen: 3},
	locale.JCB:        {prefixes: []string{"3528", "3530", "3540", "3550", "3560", "3570", "3589"}, length: 16, cvvLen: 3},
}

// GenerateCard synthesizes a Luhn-valid card of the given brand, expiring
// one to five years after now. An empty brand yields a 16-digit number
// whose first digit is 1-9.
func GenerateCard(r *rand.Rand, brand locale.Brand, now time.Time) (Card, error) {
	return newCard(r, brand, now)
}

func newCard(r *rand.Rand, brand locale.Brand, now time.Time) (Card, error) {
	spec := brandSpec{length: 16, cvvLen: 3}
	if brand != "" {
		var ok bool
		spec, ok = brandSpecs[brand]
		if !ok {
			return Card{}, fmt.Errorf("%w: card brand %q", ErrInvalidParameter, brand)
		}
	}

	var prefix string
	if len(spec.prefixes) > 0 {
		prefix = pick(r, spec.prefixes)
	} else {
		prefix = string(rune('1' + r.Intn(9)))
	}

	number := CardNumber(r, prefix, spec.length)
	if len(number) != spec.length || !LuhnValid(number) {
		return Card{}, fmt.Errorf("%w: card number %q", ErrGenerationFailure, number)
	}

	month := 1 + r.Intn(12)
	year := now.Year() + 1 + r.Intn(5)

	return Card{
		Brand:  string(brand),
		Number: number,
		Expiry: fmt.Sprintf("%02d/%02d", month, year%100),
		CVV:    digits(r, spec.cvvLen),
	}, nil
}

// CardNumber returns a length-digit number that starts with prefix and
// ends with its Luhn check digit.
func CardNumber(r *rand.Rand, prefix string, length int) string {
	payload := prefix
	if len(payload) < length-1 {
		payload += digits(r, length-1-len(payload))
	}
	return payload + string(rune('0'+LuhnCheckDigit(payload)))
}

// LuhnCheckDigit returns the digit that makes payload followed by that
// digit pass the Luhn check. Doubling starts at the rightmost payload
// digit, which becomes the second digit from the right once the check
// digit is appended.
func LuhnCheckDigit(payload string) int {
	sum := 0
	double := true
	for i := len(payload) - 1; i >= 0; i-- {
		d := int(payload[i] - '0')
		if double {
			d *= 2
			if d >= 10 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return (10 - sum%10) % 10
}

// LuhnValid reports whether number is all digits and passes the Luhn
// checksum.
func LuhnValid(number string) bool {
	if len(number) < 2 {
		return false
	}
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d >= 10 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
