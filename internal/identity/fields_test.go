package identity

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/zarlcorp/zprofile/internal/locale"
)

func TestGenerateName(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	tbl, err := locale.Lookup(locale.ES)
	if err != nil {
		t.Fatal(err)
	}

	for range 50 {
		given, family, err := GenerateName(r, locale.ES, locale.Female)
		if err != nil {
			t.Fatal(err)
		}
		if !contains(tbl.GivenNames[locale.Female], given) {
			t.Errorf("given name %q not in female pool", given)
		}
		if !contains(tbl.FamilyNames, family) {
			t.Errorf("family name %q not in pool", family)
		}
	}
}

func TestGenerateNameErrors(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	if _, _, err := GenerateName(r, "QQ", locale.Male); !errors.Is(err, locale.ErrUnsupportedCountry) {
		t.Errorf("err = %v, want ErrUnsupportedCountry", err)
	}
	if _, _, err := GenerateName(r, locale.FR, "x"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("err = %v, want ErrInvalidParameter", err)
	}
}

func TestGenerateAddressLayouts(t *testing.T) {
	r := rand.New(rand.NewSource(2))

	for _, c := range locale.Countries() {
		t.Run(string(c), func(t *testing.T) {
			tbl, err := locale.Lookup(c)
			if err != nil {
				t.Fatal(err)
			}
			for range 50 {
				a, err := GenerateAddress(r, c)
				if err != nil {
					t.Fatal(err)
				}
				if a.Country != tbl.Name {
					t.Errorf("country %q, want %q", a.Country, tbl.Name)
				}
				if len(tbl.Regions) == 0 && a.Region != "" {
					t.Errorf("region %q for a country without regions", a.Region)
				}
				if !contains(tbl.Cities, a.City) {
					t.Errorf("city %q not in pool", a.City)
				}

				first := a.Street[0] >= '0' && a.Street[0] <= '9'
				if (tbl.StreetLayout == locale.NumberFirst) != first {
					t.Errorf("street %q does not follow layout %d", a.Street, tbl.StreetLayout)
				}
				if tbl.StreetLayout == locale.NameCommaNumber && !strings.Contains(a.Street, ", ") {
					t.Errorf("street %q missing comma", a.Street)
				}
			}
		})
	}
}

func TestGeneratePhone(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for _, c := range locale.Countries() {
		tbl, _ := locale.Lookup(c)
		for range 50 {
			ph, err := GeneratePhone(r, c)
			if err != nil {
				t.Fatal(err)
			}
			if !tbl.Phone.Matches(ph) {
				t.Errorf("%s phone %q does not match mask %q", c, ph, tbl.Phone.Mask)
			}
		}
	}

	if _, err := GeneratePhone(r, "XX"); !errors.Is(err, locale.ErrUnsupportedCountry) {
		t.Errorf("err = %v, want ErrUnsupportedCountry", err)
	}
}

func TestFillPattern(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	patterns := []string{"%####", "@#@ #@#", "@@%# %@@", "#####-###"}
	for _, p := range patterns {
		for range 100 {
			s := fillPattern(r, p)
			if !locale.MatchPattern(p, s) {
				t.Errorf("fillPattern(%q) = %q does not match", p, s)
			}
		}
	}
}

func contains(pool []string, s string) bool {
	for _, v := range pool {
		if v == s {
			return true
		}
	}
	return false
}
