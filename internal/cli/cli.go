// Package cli implements zprofile's command-line subcommands.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zprofile/internal/config"
	"github.com/zarlcorp/zprofile/internal/export"
	"github.com/zarlcorp/zprofile/internal/identity"
	"github.com/zarlcorp/zprofile/internal/locale"
)

// Usage prints the command summary.
func Usage(w io.Writer) {
	fmt.Fprint(w, `usage: zprofile [command] [flags]

Run without arguments on a terminal to open the interactive generator.

commands:
  identity   generate one profile (--country --gender --age --avatar --seed --json --csv --out)
  countries  list supported countries
  batch      generate many profiles (-n --countries --format --lz4 --out --seed)
  version    print the version
`)
}

// requestFlags registers the four generation parameters on fs with the
// config values as defaults.
type requestFlags struct {
	country *string
	gender  *string
	age     *string
	avatar  *string
	seed    *int64
}

func addRequestFlags(fs *flag.FlagSet, cfg config.Config) requestFlags {
	return requestFlags{
		country: fs.String("country", cfg.Country, "ISO country code"),
		gender:  fs.String("gender", cfg.Gender, "male, female or unspecified"),
		age:     fs.String("age", cfg.Age, "young, adult, middle, senior or min-max"),
		avatar:  fs.String("avatar", cfg.Avatar, "default, cartoon, pixel, robot or initials"),
		seed:    fs.Int64("seed", 0, "random seed; omit for a fresh random stream"),
	}
}

func (f requestFlags) config(base config.Config) config.Config {
	base.Country = *f.country
	base.Gender = *f.gender
	base.Age = *f.age
	base.Avatar = *f.avatar
	return base
}

// generator returns a seeded generator when --seed was given, including
// --seed 0, and an entropy-seeded one otherwise.
func (f requestFlags) generator(fs *flag.FlagSet) *identity.Generator {
	seeded := false
	fs.Visit(func(fl *flag.Flag) {
		if fl.Name == "seed" {
			seeded = true
		}
	})
	if seeded {
		return identity.New(identity.WithSeed(*f.seed))
	}
	return identity.New()
}

// CmdIdentity generates one profile and prints it as text, JSON or CSV.
// With --out the profile is also saved in that directory.
func CmdIdentity(args []string, cfg config.Config, w, errw io.Writer) error {
	fs := flag.NewFlagSet("identity", flag.ContinueOnError)
	fs.SetOutput(errw)
	rf := addRequestFlags(fs, cfg)
	asJSON := fs.Bool("json", false, "print JSON")
	asCSV := fs.Bool("csv", false, "print CSV")
	out := fs.String("out", cfg.ExportDir, "directory to save the profile in")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *asJSON && *asCSV {
		return errors.New("--json and --csv are mutually exclusive")
	}

	req, err := rf.config(cfg).Request()
	if err != nil {
		return err
	}

	p, err := rf.generator(fs).Generate(req)
	if err != nil {
		return err
	}

	format := export.FormatJSON
	switch {
	case *asJSON:
		fmt.Fprintln(w, export.JSON(p))
	case *asCSV:
		format = export.FormatCSV
		fmt.Fprint(w, export.CSV(p))
	default:
		printProfile(w, p)
	}

	if *out != "" {
		if err := os.MkdirAll(*out, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
		name, err := export.Save(zfilesystem.NewOSFileSystem(*out), "", format, p)
		if err != nil {
			return err
		}
		fmt.Fprintf(errw, "saved %s/%s\n", *out, name)
	}
	return nil
}

// CmdCountries lists the supported countries.
func CmdCountries(w io.Writer) {
	for _, c := range locale.Countries() {
		t, err := locale.Lookup(c)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "  %-3s %-16s %-5s %s\n", c, t.Name, t.Phone.CallingCode, t.NationalID.Name)
	}
}

// CmdBatch writes -n profiles as CSV or JSON Lines, cycling through the
// countries that match --countries. Progress is drawn on errw.
func CmdBatch(args []string, cfg config.Config, w, errw io.Writer) (err error) {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	fs.SetOutput(errw)
	rf := addRequestFlags(fs, cfg)
	n := fs.Int("n", 10, "number of profiles")
	pattern := fs.String("countries", "", "country glob, e.g. 'F?' or '{FR,BE}' (default: --country)")
	formatName := fs.String("format", string(export.FormatCSV), "csv or jsonl")
	compress := fs.Bool("lz4", false, "compress output with lz4")
	out := fs.String("out", "", "output file (default stdout)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *n < 1 {
		return fmt.Errorf("%w: -n must be positive", identity.ErrInvalidParameter)
	}

	format, err := export.ParseFormat(*formatName)
	if err != nil {
		return err
	}

	req, err := rf.config(cfg).Request()
	if err != nil {
		return err
	}

	countries := []locale.Country{req.Country}
	if *pattern != "" {
		countries, err = locale.Match(*pattern)
		if err != nil {
			return err
		}
	}

	if *out != "" {
		f, cerr := os.Create(*out)
		if cerr != nil {
			return fmt.Errorf("create output: %w", cerr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close output: %w", cerr)
			}
		}()
		w = f
	}

	bw, err := export.NewBatchWriter(w, format, *compress)
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(*n,
		progressbar.OptionSetWriter(errw),
		progressbar.OptionSetDescription("generating"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	g := rf.generator(fs)
	for i := range *n {
		req.Country = countries[i%len(countries)]
		p, err := g.Generate(req)
		if err != nil {
			return err
		}
		if err := bw.Write(p); err != nil {
			return err
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	if err := bw.Close(); err != nil {
		return err
	}
	if *out != "" {
		fmt.Fprintf(errw, "saved %d profiles to %s\n", bw.Count(), *out)
	}
	return nil
}

func printProfile(w io.Writer, p identity.Profile) {
	fmt.Fprintf(w, "  id:        %s\n", p.ID)
	fmt.Fprintf(w, "  name:      %s %s\n", p.Title, p.FullName)
	fmt.Fprintf(w, "  gender:    %s\n", p.Gender)
	fmt.Fprintf(w, "  born:      %s (%d)\n", p.BirthDate.Format("2006-01-02"), p.Age)
	fmt.Fprintf(w, "  email:     %s\n", p.Email)
	fmt.Fprintf(w, "  username:  %s\n", p.Username)
	fmt.Fprintf(w, "  password:  %s\n", p.Password)
	fmt.Fprintf(w, "  phone:     %s\n", p.Phone)
	fmt.Fprintf(w, "  address:   %s\n", p.Address)
	fmt.Fprintf(w, "  %-10s %s\n", p.NationalIDName+":", p.NationalID)
	fmt.Fprintf(w, "  card:      %s %s  exp %s  cvv %s\n", p.Card.Brand, p.Card.Number, p.Card.Expiry, p.Card.CVV)
	fmt.Fprintf(w, "  avatar:    %s\n", p.AvatarURL)
}
