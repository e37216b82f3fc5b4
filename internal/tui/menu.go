package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
)

type menuChoice int

const (
	menuGenerate menuChoice = iota
	menuConfigure
	menuPassword
	menuQuit
)

var menuItems = []string{
	"Generate profile",
	"Configure",
	"Copy a password (quick)",
	"Quit",
}

const quickPasswordLen = 20

// menuModel is the main menu view.
type menuModel struct {
	cursor  int
	version string
	flash   string
}

// navigateMsg tells the root model to switch views.
type navigateMsg struct {
	view viewID
}

// quickPasswordMsg tells the root to generate and copy a password.
type quickPasswordMsg struct{}

func newMenuModel(version string) menuModel {
	return menuModel{version: version}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (menuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, zstyle.KeyQuit) {
			return m, tea.Quit
		}

		if key.Matches(msg, zstyle.KeyUp) {
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyDown) {
			if m.cursor < len(menuItems)-1 {
				m.cursor++
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			return m, m.selectItem()
		}

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m menuModel) selectItem() tea.Cmd {
	switch menuChoice(m.cursor) {
	case menuGenerate:
		return func() tea.Msg { return navigateMsg{view: viewProfile} }
	case menuConfigure:
		return func() tea.Msg { return navigateMsg{view: viewConfigure} }
	case menuPassword:
		return func() tea.Msg { return quickPasswordMsg{} }
	case menuQuit:
		return tea.Quit
	}
	return nil
}

func (m menuModel) View() string {
	indent := lipgloss.NewStyle().MarginLeft(2)
	logo := indent.Render(zstyle.StyledLogo(lipgloss.NewStyle().Foreground(accent)))
	name := zstyle.MutedText.Render("zprofile " + m.version)

	s := fmt.Sprintf("\n%s\n  %s\n\n", logo, name)

	for i, item := range menuItems {
		mi := zstyle.MenuItem{
			Label:  item,
			Active: m.cursor == i,
		}
		s += zstyle.RenderMenuItem(mi, accent) + "\n"
	}

	s += "\n"
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	s += "  " + zstyle.MutedText.Render("j/k navigate  enter select  q quit") + "\n\n"
	return s
}
