package grid

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/abdullahosa/duo-list/internal/models"
)

// Model renders the filtered subset of the board as a navigable grid. The
// grid is read-only; edits go through the edit form so the reconciler can
// route them back into the full table.
type Model struct {
	table table.Model
	recs  []models.Record
}

func New(width, height int) Model {
	t := table.New(
		table.WithColumns(defaultColumns("Type", "Vibe")),
		table.WithFocused(true),
		table.WithWidth(width),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)

	return Model{table: t}
}

func defaultColumns(typeLabel, vibeLabel string) []table.Column {
	return []table.Column{
		{Title: "Activity", Width: 28},
		{Title: typeLabel, Width: 14},
		{Title: vibeLabel, Width: 14},
		{Title: "Link", Width: 30},
	}
}

// SetRecords replaces the grid contents. The attribute column titles follow
// the current category's labels.
func (m *Model) SetRecords(recs []models.Record, typeLabel, vibeLabel string) {
	m.recs = recs

	rows := make([]table.Row, len(recs))
	for i, rec := range recs {
		rows[i] = table.Row{rec.Activity, rec.Type, rec.Vibe, rec.Link}
	}

	m.table.SetColumns(defaultColumns(typeLabel, vibeLabel))
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

// Selected returns the record under the cursor.
func (m Model) Selected() (models.Record, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.recs) {
		return models.Record{}, false
	}
	return m.recs[i], true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.recs) == 0 {
		return "\n  Nothing here yet.\n  Press 'a' to add an activity."
	}
	return m.table.View()
}

func (m *Model) SetSize(width, height int) {
	m.table.SetWidth(width)
	m.table.SetHeight(height)
}
