package export

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pierrec/lz4/v4"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zprofile/internal/identity"
	"github.com/zarlcorp/zprofile/internal/locale"
)

var testNow = time.Date(2025, time.June, 15, 9, 0, 0, 0, time.UTC)

func testProfiles(t *testing.T, n int) []identity.Profile {
	t.Helper()
	g := identity.New(identity.WithSeed(12), identity.WithClock(func() time.Time { return testNow }))

	countries := locale.Countries()
	out := make([]identity.Profile, 0, n)
	for i := range n {
		p, err := g.Generate(identity.Request{
			Country:     countries[i%len(countries)],
			Gender:      locale.Unspecified,
			AgeRange:    identity.AgeYoung,
			AvatarStyle: identity.AvatarPixel,
		})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		out = append(out, p)
	}
	return out
}

func TestJSONRoundTrip(t *testing.T) {
	for _, p := range testProfiles(t, 28) {
		got, err := ParseJSON(JSON(p))
		if err != nil {
			t.Fatalf("ParseJSON: %v", err)
		}
		if got != p {
			t.Errorf("round trip mismatch for %s:\n got %+v\nwant %+v", p.Country, got, p)
		}
	}
}

func TestJSONKeys(t *testing.T) {
	p := testProfiles(t, 1)[0]

	var m map[string]any
	if err := json.Unmarshal([]byte(JSON(p)), &m); err != nil {
		t.Fatal(err)
	}

	keys := []string{
		"id", "title", "first_name", "last_name", "full_name", "gender", "birth_date", "age",
		"email", "username", "password", "phone", "address", "national_id", "national_id_name",
		"card", "avatar_url", "avatar_style", "country", "generated_at",
	}
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			t.Errorf("missing key %q", k)
		}
	}

	addr, ok := m["address"].(map[string]any)
	if !ok {
		t.Fatalf("address is %T", m["address"])
	}
	if addr["postal_code"] != p.Address.PostalCode {
		t.Errorf("address.postal_code = %v, want %q", addr["postal_code"], p.Address.PostalCode)
	}
}

func TestParseJSONInvalid(t *testing.T) {
	if _, err := ParseJSON("{not json"); err == nil {
		t.Error("expected error for malformed json")
	}
}

func TestCSVShape(t *testing.T) {
	p := testProfiles(t, 1)[0]

	records, err := csv.NewReader(strings.NewReader(CSV(p))).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0][0] != "id" {
		t.Errorf("first column = %q, want id", records[0][0])
	}
	for i, rec := range records {
		if len(rec) != len(Columns) {
			t.Errorf("record %d has %d fields, want %d", i, len(rec), len(Columns))
		}
	}
	if records[1][0] != p.ID {
		t.Errorf("id field = %q, want %q", records[1][0], p.ID)
	}
}

func TestCSVQuoting(t *testing.T) {
	p := testProfiles(t, 1)[0]
	p.Address.Street = `Calle Mayor, 12 "bajo"`
	p.FullName = "line\nbreak"

	records, err := csv.NewReader(strings.NewReader(CSV(p))).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	row := records[1]
	if row[12] != p.Address.Street {
		t.Errorf("street = %q, want %q", row[12], p.Address.Street)
	}
	if row[4] != p.FullName {
		t.Errorf("full name = %q, want %q", row[4], p.FullName)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"CSV", FormatCSV, false},
		{" jsonl ", FormatJSONL, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMIME(t *testing.T) {
	if got := MIME(FormatJSON); got != "application/json" {
		t.Errorf("MIME(json) = %q", got)
	}
	if got := MIME(FormatCSV); got != "text/csv" {
		t.Errorf("MIME(csv) = %q", got)
	}
	if got := DefaultFilename(FormatCSV); got != "profil.csv" {
		t.Errorf("DefaultFilename(csv) = %q", got)
	}
}

func TestSave(t *testing.T) {
	p := testProfiles(t, 1)[0]

	tests := []struct {
		name     string
		file     string
		format   Format
		wantPath string
		check    func(data []byte) bool
	}{
		{"default json", "", FormatJSON, "profil.json", func(b []byte) bool {
			got, err := ParseJSON(string(b))
			return err == nil && got == p
		}},
		{"default csv", "", FormatCSV, "profil.csv", func(b []byte) bool {
			return string(b) == CSV(p)
		}},
		{"nested name", "out/2025/me.json", FormatJSON, "out/2025/me.json", func(b []byte) bool {
			return bytes.Contains(b, []byte(p.ID))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := zfilesystem.NewMemFS()
			got, err := Save(fs, tt.file, tt.format, p)
			if err != nil {
				t.Fatalf("Save: %v", err)
			}
			if got != tt.wantPath {
				t.Errorf("path = %q, want %q", got, tt.wantPath)
			}
			data, err := fs.ReadFile(got)
			if err != nil {
				t.Fatalf("read back: %v", err)
			}
			if !tt.check(data) {
				t.Errorf("unexpected content:\n%s", data)
			}
		})
	}
}

func TestSaveUnknownFormat(t *testing.T) {
	p := testProfiles(t, 1)[0]
	_, err := Save(zfilesystem.NewMemFS(), "", "yaml", p)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestWriteBatchCSV(t *testing.T) {
	profiles := testProfiles(t, 30)

	for _, compress := range []bool{false, true} {
		var buf bytes.Buffer
		if err := WriteBatch(&buf, FormatCSV, profiles, compress); err != nil {
			t.Fatalf("WriteBatch: %v", err)
		}

		var r = csv.NewReader(&buf)
		if compress {
			r = csv.NewReader(lz4.NewReader(&buf))
		}
		records, err := r.ReadAll()
		if err != nil {
			t.Fatalf("read csv (compress=%v): %v", compress, err)
		}
		if len(records) != len(profiles)+1 {
			t.Fatalf("got %d records, want %d", len(records), len(profiles)+1)
		}
		for i, p := range profiles {
			if records[i+1][0] != p.ID {
				t.Errorf("row %d id = %q, want %q", i+1, records[i+1][0], p.ID)
			}
		}
	}
}

func TestWriteBatchJSONL(t *testing.T) {
	profiles := testProfiles(t, 20)

	for _, compress := range []bool{false, true} {
		var buf bytes.Buffer
		if err := WriteBatch(&buf, FormatJSONL, profiles, compress); err != nil {
			t.Fatalf("WriteBatch: %v", err)
		}

		var sc *bufio.Scanner
		if compress {
			sc = bufio.NewScanner(lz4.NewReader(&buf))
		} else {
			sc = bufio.NewScanner(&buf)
		}

		i := 0
		for sc.Scan() {
			var p identity.Profile
			if err := json.Unmarshal(sc.Bytes(), &p); err != nil {
				t.Fatalf("line %d: %v", i, err)
			}
			if p != profiles[i] {
				t.Errorf("line %d does not match profile", i)
			}
			i++
		}
		if err := sc.Err(); err != nil {
			t.Fatal(err)
		}
		if i != len(profiles) {
			t.Errorf("read %d lines, want %d", i, len(profiles))
		}
	}
}

func TestBatchWriterCount(t *testing.T) {
	bw, err := NewBatchWriter(&bytes.Buffer{}, FormatJSONL, false)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range testProfiles(t, 3) {
		if bw.Count() != i {
			t.Errorf("Count before write %d = %d", i, bw.Count())
		}
		if err := bw.Write(p); err != nil {
			t.Fatal(err)
		}
	}
	if err := bw.Close(); err != nil {
		t.Fatal(err)
	}
	if bw.Count() != 3 {
		t.Errorf("Count = %d, want 3", bw.Count())
	}
}

func TestWriteBatchEmptyCSVHasHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBatch(&buf, FormatCSV, nil, false); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != strings.Join(Columns, ",") {
		t.Errorf("empty batch = %q, want header only", got)
	}
}

func TestBatchWriterRejectsJSON(t *testing.T) {
	_, err := NewBatchWriter(&bytes.Buffer{}, FormatJSON, false)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}
