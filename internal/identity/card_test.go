package identity

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/zarlcorp/zprofile/internal/locale"
)

func TestLuhnCheckDigit(t *testing.T) {
	tests := []struct {
		payload string
		want    int
	}{
		{"7992739871", 3},
		{"453201511283036", 6},
		{"0", 0},
		{"1", 8},
	}

	for _, tt := range tests {
		t.Run(tt.payload, func(t *testing.T) {
			if got := LuhnCheckDigit(tt.payload); got != tt.want {
				t.Errorf("LuhnCheckDigit(%q) = %d, want %d", tt.payload, got, tt.want)
			}
		})
	}
}

func TestLuhnValid(t *testing.T) {
	tests := []struct {
		number string
		want   bool
	}{
		{"79927398713", true},
		{"79927398710", false},
		{"4532015112830366", true},
		{"4532015112830367", false},
		{"4532 0151", false},
		{"", false},
		{"0", false},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			if got := LuhnValid(tt.number); got != tt.want {
				t.Errorf("LuhnValid(%q) = %v, want %v", tt.number, got, tt.want)
			}
		})
	}
}

func TestGenerateCardBrands(t *testing.T) {
	tests := []struct {
		brand    locale.Brand
		prefixes []string
		length   int
		cvv      int
	}{
		{locale.Visa, []string{"4"}, 16, 3},
		{locale.Mastercard, []string{"51", "52", "53", "54", "55"}, 16, 3},
		{locale.Amex, []string{"34", "37"}, 15, 4},
		{locale.Discover, []string{"6011", "65"}, 16, 3},
		{locale.JCB, []string{"35"}, 16, 3},
	}

	r := rand.New(rand.NewSource(1))
	for _, tt := range tests {
		t.Run(string(tt.brand), func(t *testing.T) {
			for range 500 {
				c, err := GenerateCard(r, tt.brand, fixedNow)
				if err != nil {
					t.Fatal(err)
				}
				if len(c.Number) != tt.length {
					t.Errorf("number %q length %d, want %d", c.Number, len(c.Number), tt.length)
				}
				if !hasAnyPrefix(c.Number, tt.prefixes) {
					t.Errorf("number %q has no %s prefix", c.Number, tt.brand)
				}
				if !LuhnValid(c.Number) {
					t.Errorf("number %q fails luhn", c.Number)
				}
				if len(c.CVV) != tt.cvv {
					t.Errorf("cvv %q, want %d digits", c.CVV, tt.cvv)
				}
				if c.Brand != string(tt.brand) {
					t.Errorf("brand %q, want %q", c.Brand, tt.brand)
				}
			}
		})
	}
}

func TestGenerateCardNoBrand(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for range 500 {
		c, err := GenerateCard(r, "", fixedNow)
		if err != nil {
			t.Fatal(err)
		}
		if len(c.Number) != 16 || c.Number[0] == '0' {
			t.Errorf("unbranded number %q should be 16 digits not starting with 0", c.Number)
		}
		if !LuhnValid(c.Number) {
			t.Errorf("number %q fails luhn", c.Number)
		}
	}
}

func TestGenerateCardUnknownBrand(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	_, err := GenerateCard(r, "Diners", fixedNow)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("err = %v, want ErrInvalidParameter", err)
	}
}

func TestCardExpiryWindow(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	now := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)

	seen := make(map[string]bool)
	for range 1000 {
		c, err := GenerateCard(r, locale.Visa, now)
		if err != nil {
			t.Fatal(err)
		}
		mm, yy, ok := strings.Cut(c.Expiry, "/")
		if !ok {
			t.Fatalf("expiry %q not MM/YY", c.Expiry)
		}
		m, _ := strconv.Atoi(mm)
		y, _ := strconv.Atoi(yy)
		if m < 1 || m > 12 {
			t.Errorf("expiry month %d out of range", m)
		}
		if y < 26 || y > 30 {
			t.Errorf("expiry year %d outside 26..30", y)
		}
		seen[yy] = true
	}
	if len(seen) != 5 {
		t.Errorf("expected five distinct expiry years, saw %v", seen)
	}
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
