package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zprofile/internal/cli"
	"github.com/zarlcorp/zprofile/internal/config"
	"github.com/zarlcorp/zprofile/internal/identity"
	"github.com/zarlcorp/zprofile/internal/tui"
	"golang.org/x/term"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zprofile"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	cfgFS, cfg := loadConfig()

	if len(os.Args) > 1 {
		err := runCLI(ctx, os.Args[1], os.Args[2:], cfg)
		_ = app.Close()
		switch {
		case err == nil, errors.Is(err, flag.ErrHelp):
			return
		default:
			fmt.Fprintf(os.Stderr, "zprofile: %v\n", err)
			os.Exit(1)
		}
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		cli.Usage(os.Stderr)
		_ = app.Close()
		os.Exit(1)
	}

	if err := runTUI(cfgFS, cfg); err != nil {
		slog.Error("tui", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

// loadConfig opens the config directory and reads config.yaml. A broken
// file is reported and replaced by the defaults.
func loadConfig() (zfilesystem.ReadWriteFileFS, config.Config) {
	dir := config.Dir()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		slog.Warn("config dir", "dir", dir, "err", err)
	}

	fsys := zfilesystem.NewOSFileSystem(dir)
	cfg, err := config.Load(fsys)
	if err != nil {
		slog.Warn("config ignored", "err", err)
		cfg = config.Default()
	}
	return fsys, cfg
}

func runCLI(_ context.Context, cmd string, args []string, cfg config.Config) error {
	switch cmd {
	case "version":
		fmt.Printf("zprofile %s\n", version)
		return nil
	case "identity":
		return cli.CmdIdentity(args, cfg, os.Stdout, os.Stderr)
	case "countries":
		cli.CmdCountries(os.Stdout)
		return nil
	case "batch":
		return cli.CmdBatch(args, cfg, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		cli.Usage(os.Stdout)
		return nil
	default:
		cli.Usage(os.Stderr)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func runTUI(cfgFS zfilesystem.ReadWriteFileFS, cfg config.Config) error {
	exportDir := cfg.ExportDir
	if exportDir == "" {
		exportDir = "."
	}

	files := tui.Files{
		Config: cfgFS,
		Export: zfilesystem.NewOSFileSystem(exportDir),
	}

	m := tui.New(version, identity.New(), cfg, files)
	_, err := tea.NewProgram(m).Run()
	return err
}
