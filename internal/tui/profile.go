package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zprofile/internal/export"
	"github.com/zarlcorp/zprofile/internal/identity"
)

// profileField represents a labeled field for display and selection.
type profileField struct {
	label string
	value string
}

// profileModel displays a generated profile with copy and export actions.
type profileModel struct {
	profile  identity.Profile
	req      identity.Request
	fields   []profileField
	cursor   int
	flash    string
	flashErr bool
}

// exportMsg asks the root to save the profile in the given format.
type exportMsg struct {
	format  export.Format
	profile identity.Profile
}

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

// blank lines are drawn before these field indices
var sectionBreaks = map[int]bool{6: true, 9: true, 13: true}

func newProfileModel(p identity.Profile, req identity.Request) profileModel {
	return profileModel{
		profile: p,
		req:     req,
		fields:  profileFields(p),
	}
}

func profileFields(p identity.Profile) []profileField {
	return []profileField{
		{"name", strings.TrimSpace(p.Title + " " + p.FullName)},
		{"gender", string(p.Gender)},
		{"born", p.BirthDate.Format("2006-01-02")},
		{"age", strconv.Itoa(p.Age)},
		{"email", p.Email},
		{"phone", p.Phone},
		{"address", p.Address.String()},
		{"id card", p.NationalID},
		{"id type", p.NationalIDName},
		{"username", p.Username},
		{"password", p.Password},
		{"card", p.Card.Brand + " " + p.Card.Number},
		{"expiry", p.Card.Expiry + "  cvv " + p.Card.CVV},
		{"avatar", p.AvatarURL},
		{"id", p.ID},
	}
}

func (m profileModel) Init() tea.Cmd {
	return nil
}

func (m profileModel) Update(msg tea.Msg) (profileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		m.flashErr = false
		return m, nil
	}

	return m, nil
}

func (m profileModel) handleKey(msg tea.KeyMsg) (profileModel, tea.Cmd) {
	// letter actions come first so j exports rather than moves
	switch msg.String() {
	case "j":
		p := m.profile
		return m, func() tea.Msg { return exportMsg{format: export.FormatJSON, profile: p} }

	case "v":
		p := m.profile
		return m, func() tea.Msg { return exportMsg{format: export.FormatCSV, profile: p} }

	case "c":
		if err := copyToClipboard(m.allFieldsText()); err != nil {
			return m.setFlash("copy: "+err.Error(), true), clearFlashAfter()
		}
		return m.setFlash("copied all!", false), clearFlashAfter()

	case "n":
		req := m.req
		return m, func() tea.Msg { return generateMsg{req: req} }
	}

	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewConfigure} }
	}

	if msg.Type == tea.KeyUp || msg.String() == "k" {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if msg.Type == tea.KeyDown {
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		// copy selected field
		val := m.fields[m.cursor].value
		if err := copyToClipboard(val); err != nil {
			return m.setFlash("copy: "+err.Error(), true), clearFlashAfter()
		}
		return m.setFlash("copied!", false), clearFlashAfter()
	}

	return m, nil
}

func (m profileModel) setFlash(msg string, isErr bool) profileModel {
	m.flash = msg
	m.flashErr = isErr
	return m
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

func (m profileModel) allFieldsText() string {
	var b strings.Builder
	for _, f := range m.fields {
		fmt.Fprintf(&b, "%s: %s\n", f.label, f.value)
	}
	return b.String()
}

func (m profileModel) View() string {
	accentStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)

	// sub-header with name and country
	name := zstyle.Subtitle.Render(m.profile.FullName)
	country := zstyle.MutedText.Render(m.profile.Address.Country)
	s := "\n  " + name + "  " + country + "\n\n"

	for i, f := range m.fields {
		if sectionBreaks[i] {
			s += "\n"
		}
		label := zstyle.MutedText.Render(fmt.Sprintf("%-10s", f.label))
		if i == m.cursor {
			s += "  " + accentStyle.Render("▸") + " " + label + " " + f.value + "\n"
		} else {
			s += "    " + label + " " + f.value + "\n"
		}
	}

	s += "\n"

	// always reserve a line for flash to prevent layout shift
	switch {
	case m.flash != "" && m.flashErr:
		s += "  " + zstyle.StatusErr.Render(m.flash) + "\n"
	case m.flash != "":
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	default:
		s += "\n"
	}

	return s
}
