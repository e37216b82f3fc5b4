package cli

import (
	"bytes"
	"encoding/csv"
	"errors"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/zarlcorp/zprofile/internal/config"
	"github.com/zarlcorp/zprofile/internal/export"
	"github.com/zarlcorp/zprofile/internal/identity"
	"github.com/zarlcorp/zprofile/internal/locale"
)

func TestCmdIdentityOutputs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, out string)
	}{
		{"text", []string{"--seed", "1"}, func(t *testing.T, out string) {
			for _, label := range []string{"id:", "name:", "email:", "phone:", "address:", "NIR:", "card:"} {
				if !strings.Contains(out, label) {
					t.Errorf("missing %q in:\n%s", label, out)
				}
			}
		}},
		{"json", []string{"--seed", "1", "--json"}, func(t *testing.T, out string) {
			p, err := export.ParseJSON(out)
			if err != nil {
				t.Fatalf("output is not a profile: %v", err)
			}
			if p.Country != locale.FR {
				t.Errorf("country = %q, want FR", p.Country)
			}
		}},
		{"csv", []string{"--seed", "1", "--csv", "--country", "ca"}, func(t *testing.T, out string) {
			records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
			if err != nil {
				t.Fatal(err)
			}
			if len(records) != 2 || records[0][0] != "id" {
				t.Fatalf("unexpected csv:\n%s", out)
			}
			if records[1][len(records[1])-2] != "CA" {
				t.Errorf("country column = %q, want CA", records[1][len(records[1])-2])
			}
		}},
		{"flags override config", []string{"--seed", "3", "--json", "--country", "JP", "--gender", "male", "--age", "senior", "--avatar", "robot"}, func(t *testing.T, out string) {
			p, err := export.ParseJSON(out)
			if err != nil {
				t.Fatal(err)
			}
			if p.Country != locale.JP || p.Gender != locale.Male || p.AvatarStyle != identity.AvatarRobot {
				t.Errorf("flags not applied: %+v", p)
			}
			if p.Age < 61 || p.Age > 80 {
				t.Errorf("age %d outside senior bucket", p.Age)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			if err := CmdIdentity(tt.args, config.Default(), &out, &errOut); err != nil {
				t.Fatalf("CmdIdentity: %v (stderr %s)", err, errOut.String())
			}
			tt.check(t, out.String())
		})
	}
}

func TestCmdIdentitySeedIsDeterministic(t *testing.T) {
	run := func() string {
		var out bytes.Buffer
		if err := CmdIdentity([]string{"--seed", "77", "--csv"}, config.Default(), &out, &bytes.Buffer{}); err != nil {
			t.Fatal(err)
		}
		return out.String()
	}

	// generated_at differs between runs, so compare the id column only
	a, b := run(), run()
	idA := strings.SplitN(strings.Split(a, "\n")[1], ",", 2)[0]
	idB := strings.SplitN(strings.Split(b, "\n")[1], ",", 2)[0]
	if idA != idB {
		t.Errorf("same seed gave ids %q and %q", idA, idB)
	}
}

func TestCmdIdentitySeedZeroIsReproducible(t *testing.T) {
	run := func() string {
		var out bytes.Buffer
		if err := CmdIdentity([]string{"--seed", "0", "--csv"}, config.Default(), &out, &bytes.Buffer{}); err != nil {
			t.Fatal(err)
		}
		return strings.SplitN(strings.Split(out.String(), "\n")[1], ",", 2)[0]
	}

	if a, b := run(), run(); a != b {
		t.Errorf("--seed 0 gave ids %q and %q", a, b)
	}
}

func TestCmdIdentityErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown country", []string{"--country", "XX"}, locale.ErrUnsupportedCountry},
		{"bad gender", []string{"--gender", "none"}, locale.ErrInvalidGender},
		{"bad age", []string{"--age", "90-10"}, identity.ErrInvalidParameter},
		{"bad avatar", []string{"--avatar", "oil"}, identity.ErrInvalidParameter},
		{"help", []string{"-h"}, flag.ErrHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CmdIdentity(tt.args, config.Default(), &bytes.Buffer{}, &bytes.Buffer{})
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	err := CmdIdentity([]string{"--json", "--csv"}, config.Default(), &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil {
		t.Error("expected error for --json with --csv")
	}
}

func TestCmdIdentitySave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")

	var errOut bytes.Buffer
	err := CmdIdentity([]string{"--seed", "5", "--csv", "--out", dir}, config.Default(), &bytes.Buffer{}, &errOut)
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "profil.csv"))
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if !strings.HasPrefix(string(data), "id,") {
		t.Errorf("saved csv does not start with header: %q", data)
	}
	if !strings.Contains(errOut.String(), "saved") {
		t.Errorf("expected save notice, got %q", errOut.String())
	}
}

func TestCmdCountries(t *testing.T) {
	var out bytes.Buffer
	CmdCountries(&out)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(locale.Countries()) {
		t.Fatalf("got %d lines, want %d", len(lines), len(locale.Countries()))
	}
	if !strings.Contains(out.String(), "France") || !strings.Contains(out.String(), "+33") {
		t.Errorf("france row missing:\n%s", out.String())
	}
}

func TestCmdBatch(t *testing.T) {
	var out, errOut bytes.Buffer
	args := []string{"-n", "12", "--countries", "{FR,BE,CH}", "--seed", "9"}
	if err := CmdBatch(args, config.Default(), &out, &errOut); err != nil {
		t.Fatalf("CmdBatch: %v", err)
	}

	records, err := csv.NewReader(&out).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 13 {
		t.Fatalf("got %d records, want 13", len(records))
	}

	col := len(export.Columns) - 2
	seen := make(map[string]int)
	for _, rec := range records[1:] {
		seen[rec[col]]++
	}
	for _, c := range []string{"BE", "CH", "FR"} {
		if seen[c] != 4 {
			t.Errorf("country %s appeared %d times, want 4", c, seen[c])
		}
	}
}

func TestCmdBatchCompressedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.jsonl.lz4")
	args := []string{"-n", "5", "--format", "jsonl", "--lz4", "--out", path}
	var errOut bytes.Buffer
	if err := CmdBatch(args, config.Default(), &bytes.Buffer{}, &errOut); err != nil {
		t.Fatalf("CmdBatch: %v", err)
	}
	if !strings.Contains(errOut.String(), "saved 5 profiles to "+path) {
		t.Errorf("stderr = %q, want saved summary", errOut.String())
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(lz4.NewReader(f)); err != nil {
		t.Fatalf("decompress: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Errorf("got %d lines, want 5", len(lines))
	}
	for i, l := range lines {
		if _, err := export.ParseJSON(l); err != nil {
			t.Errorf("line %d: %v", i, err)
		}
	}
}

func TestCmdBatchErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"zero count", []string{"-n", "0"}, identity.ErrInvalidParameter},
		{"bad format", []string{"--format", "xml"}, export.ErrUnknownFormat},
		{"no matching country", []string{"--countries", "Q*"}, locale.ErrUnsupportedCountry},
		{"unwritable output", []string{"--out", filepath.Join("missing-dir", "x", "out.csv")}, fs.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CmdBatch(tt.args, config.Default(), &bytes.Buffer{}, &bytes.Buffer{})
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUsage(t *testing.T) {
	var out bytes.Buffer
	Usage(&out)
	for _, cmd := range []string{"identity", "countries", "batch", "version"} {
		if !strings.Contains(out.String(), cmd) {
			t.Errorf("usage missing %q", cmd)
		}
	}
}
