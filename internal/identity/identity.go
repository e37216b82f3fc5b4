// Package identity generates synthetic personal profiles for testing.
// All randomness is drawn from an explicit math/rand source, so a fixed
// seed reproduces the same profiles. Nothing here is cryptographically
// random and nothing is persisted.
package identity

import (
	"errors"
	"strings"
	"time"

	"github.com/zarlcorp/zprofile/internal/locale"
)

// ErrInvalidParameter is returned when a request value is outside its
// defined domain, e.g. an age range with Max < Min.
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrGenerationFailure means a generated value broke its own format rule.
// It indicates a defect in a locale table, not a recoverable condition.
var ErrGenerationFailure = errors.New("generation failure")

// Address is a postal address laid out for its country.
type Address struct {
	Street      string `json:"street"`
	City        string `json:"city"`
	Region      string `json:"region"`
	PostalCode  string `json:"postal_code"`
	CountryCode string `json:"country_code"`
	Country     string `json:"country"`
}

// String renders the address on one line, skipping an empty region.
func (a Address) String() string {
	parts := []string{a.Street, strings.TrimSpace(a.PostalCode + " " + a.City)}
	if a.Region != "" {
		parts = append(parts, a.Region)
	}
	parts = append(parts, a.Country)
	return strings.Join(parts, ", ")
}

// Card is a synthetic payment card.
type Card struct {
	Brand  string `json:"brand"`
	Number string `json:"number"`
	Expiry string `json:"expiry"` // MM/YY
	CVV    string `json:"cvv"`
}

// Profile holds a complete generated persona. It is a plain value: copy
// it freely, nothing in it is shared.
type Profile struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	FullName       string         `json:"full_name"`
	Gender         locale.Gender  `json:"gender"`
	BirthDate      time.Time      `json:"birth_date"`
	Age            int            `json:"age"`
	Email          string         `json:"email"`
	Username       string         `json:"username"`
	Password       string         `json:"password"`
	Phone          string         `json:"phone"`
	Address        Address        `json:"address"`
	NationalID     string         `json:"national_id"`
	NationalIDName string         `json:"national_id_name"`
	Card           Card           `json:"card"`
	AvatarURL      string         `json:"avatar_url"`
	AvatarStyle    AvatarStyle    `json:"avatar_style"`
	Country        locale.Country `json:"country"`
	GeneratedAt    time.Time      `json:"generated_at"`
}

// Request carries the four generation parameters.
type Request struct {
	Country     locale.Country
	Gender      locale.Gender
	AgeRange    AgeRange
	AvatarStyle AvatarStyle
}

// Person is the subset of a profile that national ID schemes encode.
type Person struct {
	Given     string
	Family    string
	Gender    locale.Gender // resolved, never Unspecified
	BirthDate time.Time
}
