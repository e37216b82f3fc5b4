// Package export serializes profiles as JSON and CSV, writes them to files
// and streams batches, optionally LZ4 compressed.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/zarlcorp/zprofile/internal/identity"
)

// ErrUnknownFormat is returned for a format name that has no serializer.
var ErrUnknownFormat = errors.New("unknown export format")

// Format names an output encoding.
type Format string

const (
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatJSONL Format = "jsonl"
)

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatCSV, FormatJSONL:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// MIME returns the media type of f.
func MIME(f Format) string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatCSV:
		return "text/csv"
	case FormatJSONL:
		return "application/jsonl"
	}
	return "application/octet-stream"
}

// DefaultFilename returns the name used when saving a single profile.
func DefaultFilename(f Format) string {
	return "profil." + string(f)
}

// Columns is the fixed CSV column order.
var Columns = []string{
	"id",
	"title",
	"first_name",
	"last_name",
	"full_name",
	"gender",
	"birth_date",
	"age",
	"email",
	"username",
	"password",
	"phone",
	"street",
	"city",
	"region",
	"postal_code",
	"country_code",
	"country_name",
	"national_id",
	"national_id_name",
	"card_brand",
	"card_number",
	"card_expiry",
	"card_cvv",
	"avatar_url",
	"avatar_style",
	"country",
	"generated_at",
}

// JSON renders p as indented JSON.
func JSON(p identity.Profile) string {
	// Profile holds only strings, ints and times, which always marshal
	b, _ := json.MarshalIndent(p, "", "  ")
	return string(b)
}

// ParseJSON reconstructs a profile from its JSON form.
func ParseJSON(s string) (identity.Profile, error) {
	var p identity.Profile
	if err := json.Unmarshal([]byte(s), &p); err != nil {
		return identity.Profile{}, fmt.Errorf("parse profile: %w", err)
	}
	return p, nil
}

// CSV renders a header line and one data row.
func CSV(p identity.Profile) string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	// writes to a bytes.Buffer cannot fail
	_ = w.Write(Columns)
	_ = w.Write(Record(p))
	w.Flush()
	return buf.String()
}

// Record returns the CSV fields of p in Columns order.
func Record(p identity.Profile) []string {
	return []string{
		p.ID,
		p.Title,
		p.FirstName,
		p.LastName,
		p.FullName,
		string(p.Gender),
		p.BirthDate.Format(time.DateOnly),
		strconv.Itoa(p.Age),
		p.Email,
		p.Username,
		p.Password,
		p.Phone,
		p.Address.Street,
		p.Address.City,
		p.Address.Region,
		p.Address.PostalCode,
		p.Address.CountryCode,
		p.Address.Country,
		p.NationalID,
		p.NationalIDName,
		p.Card.Brand,
		p.Card.Number,
		p.Card.Expiry,
		p.Card.CVV,
		p.AvatarURL,
		string(p.AvatarStyle),
		string(p.Country),
		p.GeneratedAt.Format(time.RFC3339),
	}
}

// Encode serializes p in a single-profile format.
func Encode(f Format, p identity.Profile) ([]byte, error) {
	switch f {
	case FormatJSON:
		return []byte(JSON(p) + "\n"), nil
	case FormatCSV:
		return []byte(CSV(p)), nil
	}
	return nil, fmt.Errorf("encode profile: %w: %q", ErrUnknownFormat, f)
}
