package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/abdullahosa/duo-list/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.grid.SetSize(msg.Width-4, msg.Height-8)
		return m, nil
	}

	switch m.state {
	case StateAdd, StateEdit, StateFilter:
		return m.updateForm(msg)
	case StatePick:
		if _, ok := msg.(tea.KeyMsg); ok {
			m.picked = nil
			m.state = StateBoard
		}
		return m, nil
	}

	return m.updateBoard(msg)
}

func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		m.notice = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.statusIdx = (m.statusIdx + 1) % len(models.Statuses)
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.statusIdx = (m.statusIdx - 1 + len(models.Statuses)) % len(models.Statuses)
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Right):
			m.categoryIdx = (m.categoryIdx + 1) % len(models.Categories)
			// Attribute filters are category-specific
			m.typeFilter = nil
			m.vibeFilter = nil
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Left):
			m.categoryIdx = (m.categoryIdx - 1 + len(models.Categories)) % len(models.Categories)
			m.typeFilter = nil
			m.vibeFilter = nil
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Add):
			return m, m.startAdd()
		case key.Matches(msg, m.keys.Edit):
			return m, m.startEdit()
		case key.Matches(msg, m.keys.Filter):
			return m, m.startFilter()
		case key.Matches(msg, m.keys.Advance):
			m.advanceStatus()
			return m, nil
		case key.Matches(msg, m.keys.Pick):
			m.pickRandom()
			return m, nil
		case key.Matches(msg, m.keys.Reload):
			m.reload()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateBoard
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		switch m.state {
		case StateAdd:
			m.completeAdd()
		case StateEdit:
			m.completeEdit()
		case StateFilter:
			m.typeFilter = m.filterForm.Types
			m.vibeFilter = m.filterForm.Vibes
			m.refresh()
		}
		m.state = StateBoard
	case huh.StateAborted:
		m.state = StateBoard
	}

	return m, cmd
}
