// Package locale holds the per-country data tables that drive profile
// generation: name pools, address components, and the phone, postal code
// and national ID formatting rules.
//
// Tables are built once at package initialization and never mutated, so
// they are safe to share between goroutines without locking.
package locale

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrUnsupportedCountry is returned when a country has no locale table.
var ErrUnsupportedCountry = errors.New("unsupported country")

// ErrInvalidGender is returned when a gender string is not recognized.
var ErrInvalidGender = errors.New("invalid gender")

// Country is an ISO 3166-1 alpha-2 country code.
type Country string

// supported countries
const (
	FR Country = "FR"
	BE Country = "BE"
	CH Country = "CH"
	CA Country = "CA"
	US Country = "US"
	GB Country = "GB"
	DE Country = "DE"
	ES Country = "ES"
	IT Country = "IT"
	NL Country = "NL"
	BR Country = "BR"
	JP Country = "JP"
	MA Country = "MA"
	SN Country = "SN"
)

// Gender selects the given-name pool and honorific.
type Gender string

const (
	Male        Gender = "male"
	Female      Gender = "female"
	Unspecified Gender = "unspecified"
)

// Valid reports whether g is one of the defined genders.
func (g Gender) Valid() bool {
	switch g {
	case Male, Female, Unspecified:
		return true
	}
	return false
}

// ParseGender maps user input to a Gender. Empty input and "random" mean
// Unspecified.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m", "homme":
		return Male, nil
	case "female", "f", "femme":
		return Female, nil
	case "", "unspecified", "random", "any":
		return Unspecified, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidGender, s)
}

// NameOrder is the order in which given and family names are written.
type NameOrder int

const (
	GivenFamily NameOrder = iota
	FamilyGiven
)

// StreetLayout describes where the street number goes.
type StreetLayout int

const (
	// NumberFirst renders "12 rue de la Paix".
	NumberFirst StreetLayout = iota
	// NameFirst renders "Hauptstraße 12".
	NameFirst
	// NameCommaNumber renders "Calle Mayor, 12".
	NameCommaNumber
)

// Brand is a card network.
type Brand string

const (
	Visa       Brand = "Visa"
	Mastercard Brand = "Mastercard"
	Amex       Brand = "American Express"
	Discover   Brand = "Discover"
	JCB        Brand = "JCB"
)

// IDScheme identifies the national ID algorithm for a country.
type IDScheme int

const (
	SchemeNIR IDScheme = iota + 1
	SchemeBelgianRegister
	SchemeAHV
	SchemeSIN
	SchemeSSN
	SchemeNINO
	SchemeSteuerID
	SchemeDNI
	SchemeCodiceFiscale
	SchemeBSN
	SchemeCPF
	SchemeMyNumber
	SchemeCIN
	SchemeCNI
)

// Phone describes how a national phone number is built and displayed.
type Phone struct {
	CallingCode string   // e.g. "+33"
	Length      int      // national significant number length
	Prefixes    []string // allowed leading digits of the NSN
	Mask        string   // display mask with exactly Length '#' slots
}

// Matches reports whether s is "<calling code> <masked NSN>".
func (p Phone) Matches(s string) bool {
	rest, ok := strings.CutPrefix(s, p.CallingCode+" ")
	if !ok {
		return false
	}
	return MatchPattern(p.Mask, rest)
}

// NationalID describes a country's personal identifier.
type NationalID struct {
	Name   string
	Scheme IDScheme
	Format *regexp.Regexp
}

// Table is the complete dataset for one country.
type Table struct {
	Country  Country
	Name     string // display name used in the address block
	Locale   string // BCP 47 tag
	Currency string // ISO 4217

	GivenNames  map[Gender][]string
	FamilyNames []string
	NameOrder   NameOrder
	Titles      map[Gender]string

	Streets         []string
	StreetLayout    StreetLayout
	MaxStreetNumber int
	Cities          []string
	Regions         []string // empty: region is omitted from addresses
	PostalCode      string   // pattern, see MatchPattern

	Phone       Phone
	NationalID  NationalID
	EmailDomain string
	Brands      []Brand
}

// FullName composes given and family names in the country's order.
func (t *Table) FullName(given, family string) string {
	if t.NameOrder == FamilyGiven {
		return family + " " + given
	}
	return given + " " + family
}

// validate checks that every pool and rule is present and self-consistent.
func (t *Table) validate() error {
	switch {
	case t.Name == "":
		return errors.New("missing display name")
	case len(t.GivenNames[Male]) == 0 || len(t.GivenNames[Female]) == 0:
		return errors.New("missing gendered given names")
	case len(t.FamilyNames) == 0:
		return errors.New("missing family names")
	case t.Titles[Male] == "" || t.Titles[Female] == "":
		return errors.New("missing titles")
	case len(t.Streets) == 0:
		return errors.New("missing streets")
	case t.MaxStreetNumber < 1:
		return errors.New("missing street number range")
	case len(t.Cities) == 0:
		return errors.New("missing cities")
	case t.PostalCode == "":
		return errors.New("missing postal code pattern")
	case t.NationalID.Scheme == 0 || t.NationalID.Format == nil || t.NationalID.Name == "":
		return errors.New("missing national id rule")
	case t.EmailDomain == "":
		return errors.New("missing email domain")
	case len(t.Brands) == 0:
		return errors.New("missing card brands")
	}

	p := t.Phone
	if p.CallingCode == "" || p.Length < 1 || len(p.Prefixes) == 0 {
		return errors.New("incomplete phone format")
	}
	if n := strings.Count(p.Mask, "#"); n != p.Length {
		return fmt.Errorf("phone mask has %d slots, want %d", n, p.Length)
	}
	for _, pre := range p.Prefixes {
		if len(pre) > p.Length {
			return fmt.Errorf("phone prefix %q longer than number", pre)
		}
	}
	return nil
}

// Lookup returns the table for c.
func Lookup(c Country) (*Table, error) {
	t, ok := tables[c]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCountry, string(c))
	}
	return t, nil
}

// Supported reports whether c has a table.
func Supported(c Country) bool {
	_, ok := tables[c]
	return ok
}

// Countries returns all supported countries sorted by code.
func Countries() []Country {
	out := make([]Country, 0, len(tables))
	for c := range tables {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Parse normalizes s and checks that it names a supported country.
func Parse(s string) (Country, error) {
	c := Country(strings.ToUpper(strings.TrimSpace(s)))
	if !Supported(c) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCountry, s)
	}
	return c, nil
}

// Match returns the supported countries whose code matches a glob such as
// "F?", "{FR,BE}" or "*". Matching is case-insensitive.
func Match(pattern string) ([]Country, error) {
	pattern = strings.ToUpper(strings.TrimSpace(pattern))
	if pattern == "" {
		pattern = "*"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("match countries: bad pattern %q", pattern)
	}

	var out []Country
	for _, c := range Countries() {
		ok, err := doublestar.Match(pattern, string(c))
		if err != nil {
			return nil, fmt.Errorf("match countries: %w", err)
		}
		if ok {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no country matches %q", ErrUnsupportedCountry, pattern)
	}
	return out, nil
}

var tables = map[Country]*Table{}

func register(t *Table) {
	tables[t.Country] = t
}

func init() {
	for _, t := range []*Table{
		franceTable, belgiumTable, switzerlandTable, canadaTable,
		unitedStatesTable, unitedKingdomTable, germanyTable, spainTable,
		italyTable, netherlandsTable, brazilTable, japanTable,
		moroccoTable, senegalTable,
	} {
		// an incomplete table is a build defect, not a runtime condition
		if err := t.validate(); err != nil {
			panic(fmt.Sprintf("locale %s: %v", t.Country, err))
		}
		register(t)
	}
}
