package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abdullahosa/duo-list/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateAdd, StateEdit, StateFilter:
		content = m.form.View()
	case StatePick:
		content = m.viewPicked()
	default:
		content = docStyle.Render(m.grid.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewCategory(),
		content,
		m.viewStatusLine(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, status := range models.Statuses {
		if i == m.statusIdx {
			tabs = append(tabs, activeTabStyle.Render(string(status)))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(string(status)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewCategory() string {
	line := categoryStyle.Render(fmt.Sprintf("‹ %s ›", m.category()))

	var active []string
	if len(m.typeFilter) > 0 {
		active = append(active, strings.Join(m.typeFilter, ","))
	}
	if len(m.vibeFilter) > 0 {
		active = append(active, strings.Join(m.vibeFilter, ","))
	}
	if len(active) > 0 {
		line += filterStyle.Render("filters: " + strings.Join(active, " | "))
	}
	return line
}

func (m Model) viewStatusLine() string {
	if m.warning != "" {
		return warningStyle.Render(m.warning)
	}
	if m.notice != "" {
		return noticeStyle.Render(m.notice)
	}
	return ""
}

func (m Model) viewPicked() string {
	rec := m.picked
	if rec == nil {
		return ""
	}

	lines := []string{
		"🎲 " + rec.Activity,
		"",
		fmt.Sprintf("%s / %s", rec.Type, rec.Vibe),
	}
	if rec.Link != "" {
		lines = append(lines, rec.Link)
	}
	lines = append(lines, "", "press any key to go back")

	return lipgloss.Place(m.width, m.height-6,
		lipgloss.Center, lipgloss.Center,
		pickedStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...)),
	)
}
