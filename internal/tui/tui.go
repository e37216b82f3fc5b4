// Package tui implements the root Bubble Tea model for zprofile.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zprofile/internal/config"
	"github.com/zarlcorp/zprofile/internal/export"
	"github.com/zarlcorp/zprofile/internal/identity"
)

type viewID int

const (
	viewMenu viewID = iota
	viewConfigure
	viewProfile
)

var accent = zstyle.ZburnAccent

// Files groups the two places the TUI writes to.
type Files struct {
	// Config holds config.yaml; the last request is remembered there.
	Config zfilesystem.ReadWriteFileFS
	// Export receives profil.json and profil.csv.
	Export zfilesystem.ReadWriteFileFS
}

// Model is the root TUI model.
type Model struct {
	version string
	gen     *identity.Generator
	cfg     config.Config
	files   Files

	active    viewID
	menu      menuModel
	configure configureModel
	profile   profileModel

	// terminal dimensions
	width  int
	height int
}

// New creates the root TUI model. cfg must be valid; it seeds the config
// panel.
func New(version string, gen *identity.Generator, cfg config.Config, files Files) Model {
	req, err := cfg.Request()
	if err != nil {
		cfg = config.Default()
		req, _ = cfg.Request()
	}
	return Model{
		version:   version,
		gen:       gen,
		cfg:       cfg,
		files:     files,
		active:    viewMenu,
		menu:      newMenuModel(version),
		configure: newConfigureModel(req),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case navigateMsg:
		return m.navigate(msg.view)

	case generateMsg:
		return m.handleGenerate(msg.req)

	case exportMsg:
		return m.handleExport(msg.format, msg.profile)

	case quickPasswordMsg:
		return m.handleQuickPassword()
	}

	return m.updateActive(msg)
}

func (m Model) View() string {
	// the menu includes the logo, render directly
	if m.active == viewMenu {
		return m.menu.View()
	}

	var content string
	switch m.active {
	case viewConfigure:
		content = m.configure.View()
	case viewProfile:
		content = m.profile.View()
	}

	header := zstyle.RenderHeader("zprofile", viewTitle(m.active), accent)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

// viewTitle returns the display title for each view.
func viewTitle(id viewID) string {
	switch id {
	case viewConfigure:
		return "Configure"
	case viewProfile:
		return "Profile"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewConfigure:
		return []zstyle.HelpPair{
			{Key: "↑/↓", Desc: "option"},
			{Key: "←/→", Desc: "change"},
			{Key: "enter", Desc: "generate"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewProfile:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "copy field"},
			{Key: "c", Desc: "copy all"},
			{Key: "j", Desc: "json"},
			{Key: "v", Desc: "csv"},
			{Key: "n", Desc: "new"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case viewConfigure:
		m.configure, cmd = m.configure.Update(msg)
	case viewProfile:
		m.profile, cmd = m.profile.Update(msg)
	}

	return m, cmd
}

func (m Model) navigate(view viewID) (tea.Model, tea.Cmd) {
	switch view {
	case viewMenu:
		m.menu = newMenuModel(m.version)
		m.active = viewMenu
		return m, tea.ClearScreen

	case viewConfigure:
		m.active = viewConfigure
		return m, tea.ClearScreen

	case viewProfile:
		// straight from the menu: generate with the panel's current choice
		return m.handleGenerate(m.configure.request())
	}

	return m, nil
}

// handleGenerate builds a profile and shows it. On failure the config panel
// shows the error and no profile is kept.
func (m Model) handleGenerate(req identity.Request) (tea.Model, tea.Cmd) {
	p, err := m.gen.Generate(req)
	if err != nil {
		m.configure.flash = err.Error()
		m.configure.flashErr = true
		m.profile = profileModel{}
		m.active = viewConfigure
		return m, clearFlashAfter()
	}

	m.cfg = m.cfg.FromRequest(req)
	if m.files.Config != nil {
		// remembering the choice is best effort
		_ = config.Save(m.files.Config, m.cfg)
	}

	m.profile = newProfileModel(p, req)
	m.active = viewProfile
	return m, tea.ClearScreen
}

func (m Model) handleExport(f export.Format, p identity.Profile) (tea.Model, tea.Cmd) {
	if m.files.Export == nil {
		m.profile = m.profile.setFlash("export: no export directory", true)
		return m, clearFlashAfter()
	}

	name, err := export.Save(m.files.Export, "", f, p)
	if err != nil {
		m.profile = m.profile.setFlash("export: "+err.Error(), true)
		return m, clearFlashAfter()
	}

	m.profile = m.profile.setFlash("saved "+name, false)
	return m, clearFlashAfter()
}

func (m Model) handleQuickPassword() (tea.Model, tea.Cmd) {
	pw := m.gen.Password(quickPasswordLen)
	if err := copyToClipboard(pw); err != nil {
		m.menu.flash = "copy: " + err.Error()
		return m, clearFlashAfter()
	}
	m.menu.flash = "password copied"
	return m, clearFlashAfter()
}
