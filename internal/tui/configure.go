package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zprofile/internal/identity"
	"github.com/zarlcorp/zprofile/internal/locale"
)

type option int

const (
	optCountry option = iota
	optGender
	optAge
	optAvatar
	optCount
)

var optLabels = [optCount]string{
	"country",
	"gender",
	"age",
	"avatar",
}

// generateMsg asks the root to build a profile for req.
type generateMsg struct {
	req identity.Request
}

// configureModel is the panel where the four generation parameters are
// chosen. Each option cycles through its values with left and right.
type configureModel struct {
	countries []locale.Country
	genders   []locale.Gender
	ages      []identity.AgeRange
	avatars   []identity.AvatarStyle

	// selected index per option
	idx      [optCount]int
	focus    option
	flash    string
	flashErr bool
}

func newConfigureModel(req identity.Request) configureModel {
	m := configureModel{
		countries: locale.Countries(),
		genders:   []locale.Gender{locale.Unspecified, locale.Female, locale.Male},
		ages:      identity.AgeRanges(),
		avatars:   identity.AvatarStyles(),
	}

	m.idx[optCountry] = indexOf(m.countries, req.Country)
	m.idx[optGender] = indexOf(m.genders, req.Gender)
	m.idx[optAvatar] = indexOf(m.avatars, req.AvatarStyle)

	// a custom range from the config file becomes an extra choice
	if i := indexOf(m.ages, req.AgeRange); m.ages[i] == req.AgeRange {
		m.idx[optAge] = i
	} else {
		m.ages = append([]identity.AgeRange{req.AgeRange}, m.ages...)
	}

	return m
}

// indexOf returns the position of v in s, or 0 when absent.
func indexOf[T comparable](s []T, v T) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return 0
}

func (m configureModel) request() identity.Request {
	return identity.Request{
		Country:     m.countries[m.idx[optCountry]],
		Gender:      m.genders[m.idx[optGender]],
		AgeRange:    m.ages[m.idx[optAge]],
		AvatarStyle: m.avatars[m.idx[optAvatar]],
	}
}

func (m configureModel) size(o option) int {
	switch o {
	case optCountry:
		return len(m.countries)
	case optGender:
		return len(m.genders)
	case optAge:
		return len(m.ages)
	case optAvatar:
		return len(m.avatars)
	}
	return 0
}

func (m configureModel) cycle(step int) configureModel {
	n := m.size(m.focus)
	m.idx[m.focus] = ((m.idx[m.focus]+step)%n + n) % n
	return m
}

func (m configureModel) Init() tea.Cmd {
	return nil
}

func (m configureModel) Update(msg tea.Msg) (configureModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, zstyle.KeyQuit) {
			return m, tea.Quit
		}

		if key.Matches(msg, zstyle.KeyBack) {
			return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
		}

		if key.Matches(msg, zstyle.KeyUp) || msg.Type == tea.KeyShiftTab {
			m.focus = (m.focus + optCount - 1) % optCount
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyDown) || key.Matches(msg, zstyle.KeyTab) {
			m.focus = (m.focus + 1) % optCount
			return m, nil
		}

		switch msg.String() {
		case "left", "h":
			return m.cycle(-1), nil
		case "right", "l", " ":
			return m.cycle(1), nil
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			req := m.request()
			return m, func() tea.Msg { return generateMsg{req: req} }
		}

	case flashMsg:
		m.flash = ""
		m.flashErr = false
		return m, nil
	}

	return m, nil
}

func (m configureModel) value(o option) string {
	i := m.idx[o]
	switch o {
	case optCountry:
		c := m.countries[i]
		if t, err := locale.Lookup(c); err == nil {
			return fmt.Sprintf("%s  %s", c, t.Name)
		}
		return string(c)
	case optGender:
		return string(m.genders[i])
	case optAge:
		a := m.ages[i]
		if name := a.Name(); name != a.String() {
			return fmt.Sprintf("%s  (%s)", name, a)
		}
		return a.String()
	case optAvatar:
		return string(m.avatars[i])
	}
	return ""
}

func (m configureModel) View() string {
	accentStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)

	s := "\n  " + zstyle.Subtitle.Render("profile parameters") + "\n\n"

	for o := option(0); o < optCount; o++ {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-8s", optLabels[o]))
		val := fmt.Sprintf("‹ %s ›", m.value(o))
		if o == m.focus {
			s += "  " + accentStyle.Render("▸") + " " + label + " " + zstyle.Highlight.Render(val) + "\n"
		} else {
			s += "    " + label + " " + val + "\n"
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
