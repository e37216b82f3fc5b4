package identity

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/zarlcorp/zprofile/internal/locale"
)

// GenerateName draws a given name from the gendered pool and a family name
// from the country pool. Unspecified gender picks one of the two pools.
func GenerateName(r *rand.Rand, c locale.Country, g locale.Gender) (given, family string, err error) {
	tbl, err := locale.Lookup(c)
	if err != nil {
		return "", "", fmt.Errorf("generate name: %w", err)
	}
	if !g.Valid() {
		return "", "", fmt.Errorf("generate name: %w: gender %q", ErrInvalidParameter, g)
	}
	given, family = name(r, tbl, resolveGender(r, g))
	return given, family, nil
}

// GenerateAddress draws a street, city, region and postal code for c.
func GenerateAddress(r *rand.Rand, c locale.Country) (Address, error) {
	tbl, err := locale.Lookup(c)
	if err != nil {
		return Address{}, fmt.Errorf("generate address: %w", err)
	}
	return address(r, tbl)
}

// GeneratePhone returns "<calling code> <masked number>" for c.
func GeneratePhone(r *rand.Rand, c locale.Country) (string, error) {
	tbl, err := locale.Lookup(c)
	if err != nil {
		return "", fmt.Errorf("generate phone: %w", err)
	}
	return phoneNumber(r, tbl)
}

func name(r *rand.Rand, tbl *locale.Table, g locale.Gender) (given, family string) {
	return pick(r, tbl.GivenNames[g]), pick(r, tbl.FamilyNames)
}

func address(r *rand.Rand, tbl *locale.Table) (Address, error) {
	num := strconv.Itoa(1 + r.Intn(tbl.MaxStreetNumber))
	street := pick(r, tbl.Streets)

	var line string
	switch tbl.StreetLayout {
	case locale.NumberFirst:
		line = num + " " + street
	case locale.NameFirst:
		line = street + " " + num
	case locale.NameCommaNumber:
		line = street + ", " + num
	default:
		return Address{}, fmt.Errorf("%w: street layout %d for %s", ErrGenerationFailure, tbl.StreetLayout, tbl.Country)
	}

	city := pick(r, tbl.Cities)

	var region string
	if len(tbl.Regions) > 0 {
		region = pick(r, tbl.Regions)
	}

	postal := fillPattern(r, tbl.PostalCode)
	if !locale.MatchPattern(tbl.PostalCode, postal) {
		return Address{}, fmt.Errorf("%w: postal code %q for %s", ErrGenerationFailure, postal, tbl.Country)
	}

	return Address{
		Street:      line,
		City:        city,
		Region:      region,
		PostalCode:  postal,
		CountryCode: string(tbl.Country),
		Country:     tbl.Name,
	}, nil
}

func phoneNumber(r *rand.Rand, tbl *locale.Table) (string, error) {
	p := tbl.Phone
	prefix := pick(r, p.Prefixes)
	nsn := prefix + digits(r, p.Length-len(prefix))

	masked, ok := locale.ApplyMask(p.Mask, nsn)
	if !ok {
		return "", fmt.Errorf("%w: phone mask %q for %s", ErrGenerationFailure, p.Mask, tbl.Country)
	}
	return p.CallingCode + " " + masked, nil
}

// fillPattern replaces each slot of a postal code pattern with a random
// character of the slot's class.
func fillPattern(r *rand.Rand, pattern string) string {
	out := make([]byte, len(pattern))
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case locale.SlotDigit:
			out[i] = byte('0' + r.Intn(10))
		case locale.SlotNonZero:
			out[i] = byte('1' + r.Intn(9))
		case locale.SlotLetter:
			out[i] = byte('A' + r.Intn(26))
		default:
			out[i] = pattern[i]
		}
	}
	return string(out)
}
