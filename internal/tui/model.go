package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/abdullahosa/duo-list/internal/board"
	"github.com/abdullahosa/duo-list/internal/logger"
	"github.com/abdullahosa/duo-list/internal/models"
	"github.com/abdullahosa/duo-list/internal/provision"
	"github.com/abdullahosa/duo-list/internal/storage"
	"github.com/abdullahosa/duo-list/internal/tui/components/grid"
)

type SessionState int

const (
	StateBoard SessionState = iota
	StateAdd
	StateEdit
	StateFilter
	StatePick
)

type AddFormModel struct {
	Activity string
	Type     string
	Vibe     string
	Status   models.Status
}

type EditFormModel struct {
	Activity string
	Type     string
	Vibe     string
	Status   models.Status
	Link     string
}

type FilterFormModel struct {
	Types []string
	Vibes []string
}

type Model struct {
	store       storage.Provider
	provisioner *provision.Provisioner

	state SessionState
	keys  KeyMap
	help  help.Model
	grid  grid.Model

	table       board.Table
	categoryIdx int
	statusIdx   int
	typeFilter  []string
	vibeFilter  []string
	visible     []models.Record // the filtered subset backing the grid

	form       *huh.Form
	addForm    *AddFormModel
	editForm   *EditFormModel
	filterForm *FilterFormModel
	editingID  string
	picked     *models.Record

	warning  string // recoverable degradation, shown in the status line
	notice   string
	degraded bool // last load failed; write paths are blocked until a clean reload

	width    int
	height   int
	quitting bool
}

func NewModel(store storage.Provider, prov *provision.Provisioner) Model {
	m := Model{
		store:       store,
		provisioner: prov,
		state:       StateBoard,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		grid:        grid.New(0, 0),
	}
	m.reload()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Left, m.keys.Right}
	if m.state == StateBoard {
		keys = append(keys, m.keys.Add, m.keys.Edit, m.keys.Pick, m.keys.Filter)
	}
	return append(keys, m.keys.Quit, m.keys.Help)
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m *Model) category() string {
	return models.Categories[m.categoryIdx]
}

func (m *Model) status() models.Status {
	return models.Statuses[m.statusIdx]
}

// reload re-fetches and normalizes the shared document. A degraded load
// keeps an empty table and surfaces a warning instead of crashing the UI,
// and blocks every write path until a clean reload: persisting the empty
// table would replace the whole document.
func (m *Model) reload() {
	t, err := board.Load(context.Background(), m.store)
	m.table = t
	m.degraded = err != nil
	if err != nil {
		logger.Warn("degraded load", "source", m.store.Source(), "err", err)
		m.warning = fmt.Sprintf("⚠ could not load activities: %v", err)
	} else {
		m.warning = ""
	}
	m.refresh()
}

// refresh recomputes the visible subset from the current category, status
// view, and attribute filters.
func (m *Model) refresh() {
	m.visible = board.Filter(m.table, m.category(), m.status(), m.typeFilter, m.vibeFilter)

	opts, err := models.OptionsFor(m.category())
	if err != nil {
		opts = models.CategoryOptions{TypeLabel: "Type", VibeLabel: "Vibe"}
	}
	m.grid.SetRecords(m.visible, opts.TypeLabel, opts.VibeLabel)
}

// persist writes the full table back. Refuses outright after a degraded
// load, since the write is full-replace and the table is not the document.
// On failure the in-memory table keeps the edit and disagrees with the
// remote document until the next reload; that is surfaced, not rolled back.
func (m *Model) persist() {
	if m.degraded {
		m.warning = "⚠ not saving after a failed load - press 'r' to reload first"
		return
	}
	if err := m.store.Persist(context.Background(), m.table.Records); err != nil {
		logger.Error("persist failed", "source", m.store.Source(), "err", err)
		m.warning = fmt.Sprintf("⚠ save failed: %v", err)
		return
	}
	m.notice = "Saved"
}

func (m *Model) startAdd() tea.Cmd {
	if m.degraded {
		m.warning = "⚠ not saving after a failed load - press 'r' to reload first"
		return nil
	}
	opts, err := models.OptionsFor(m.category())
	if err != nil {
		m.warning = fmt.Sprintf("⚠ %v", err)
		return nil
	}
	m.addForm = &AddFormModel{Status: m.status()}
	m.form = NewAddForm(m.addForm, opts)
	m.state = StateAdd
	return m.form.Init()
}

func (m *Model) startEdit() tea.Cmd {
	rec, ok := m.grid.Selected()
	if !ok {
		return nil
	}
	opts, err := models.OptionsFor(m.category())
	if err != nil {
		m.warning = fmt.Sprintf("⚠ %v", err)
		return nil
	}
	m.editingID = rec.ID
	m.editForm = &EditFormModel{
		Activity: rec.Activity,
		Type:     rec.Type,
		Vibe:     rec.Vibe,
		Status:   rec.Status,
		Link:     rec.Link,
	}
	m.form = NewEditForm(m.editForm, opts)
	m.state = StateEdit
	return m.form.Init()
}

func (m *Model) startFilter() tea.Cmd {
	opts, err := models.OptionsFor(m.category())
	if err != nil {
		m.warning = fmt.Sprintf("⚠ %v", err)
		return nil
	}
	m.filterForm = &FilterFormModel{
		Types: append([]string{}, m.typeFilter...),
		Vibes: append([]string{}, m.vibeFilter...),
	}
	m.form = NewFilterForm(m.filterForm, opts)
	m.state = StateFilter
	return m.form.Init()
}

func (m *Model) completeAdd() {
	if m.degraded {
		m.warning = "⚠ not saving after a failed load - press 'r' to reload first"
		return
	}
	f := m.addForm
	rec := models.Record{
		ID:       uuid.New().String(),
		Category: m.category(),
		Activity: f.Activity,
		Type:     f.Type,
		Vibe:     f.Vibe,
		Status:   f.Status,
	}

	if rec.Category == models.CategoryVacation && m.provisioner.Enabled() {
		// Best-effort: a failed call still creates the record, link stays
		// empty.
		link, err := m.provisioner.ProvisionTab(context.Background(), rec.Activity)
		if err != nil {
			logger.Warn("tab provisioning failed", "activity", rec.Activity, "err", err)
			m.warning = "⚠ planning tab was not created"
		}
		rec.Link = link
	}

	m.table.Records = append(m.table.Records, rec)
	m.persist()

	// Jump to the view the new record lands in
	for i, s := range models.Statuses {
		if s == rec.Status {
			m.statusIdx = i
		}
	}
	m.refresh()
}

func (m *Model) completeEdit() {
	f := m.editForm

	var original []models.Record
	for _, rec := range m.visible {
		if rec.ID == m.editingID {
			original = append(original, rec)
			break
		}
	}
	if len(original) == 0 {
		return
	}

	edited := make([]models.Record, len(original))
	copy(edited, original)
	edited[0].Activity = f.Activity
	edited[0].Type = f.Type
	edited[0].Vibe = f.Vibe
	edited[0].Status = f.Status
	edited[0].Link = f.Link

	if board.Reconcile(&m.table, original, edited) {
		m.persist()
	} else {
		m.notice = "No changes"
	}
	m.refresh()
}

// advanceStatus moves the selected record to the next status view.
func (m *Model) advanceStatus() {
	if m.degraded {
		m.warning = "⚠ not saving after a failed load - press 'r' to reload first"
		return
	}
	rec, ok := m.grid.Selected()
	if !ok {
		return
	}

	edited := rec
	switch rec.Status {
	case models.StatusToDo:
		edited.Status = models.StatusInProgress
	case models.StatusInProgress:
		edited.Status = models.StatusCompleted
	default:
		m.notice = "Already completed"
		return
	}

	if board.Reconcile(&m.table, []models.Record{rec}, []models.Record{edited}) {
		m.persist()
		m.refresh()
	}
}

func (m *Model) pickRandom() {
	rec, err := board.PickRandom(m.visible)
	if err != nil {
		m.warning = "⚠ nothing to pick from - adjust the filters or add activities"
		return
	}
	m.picked = &rec
	m.state = StatePick
}
