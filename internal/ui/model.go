package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taxops/perdcomp/internal/filter"
	"github.com/taxops/perdcomp/internal/model"
	"github.com/taxops/perdcomp/internal/paginate"
	"github.com/taxops/perdcomp/internal/store"
)

// Model is the interactive browser over the order collection. The
// filtered view and the stats are recomputed on every render; the store
// stays the single source of truth.
type Model struct {
	Store *store.Store

	query    filter.Query
	page     int
	pageSize int

	cursor         int
	showingDetails bool
	searching      bool
	search         textinput.Model

	notice   string
	quitting bool
}

// NewModel initializes the browser.
func NewModel(s *store.Store, pageSize int) Model {
	ti := textinput.New()
	ti.Placeholder = "PER/DCOMP ou banco..."
	ti.CharLimit = 64
	ti.Width = 32

	if pageSize <= 0 {
		pageSize = 10
	}

	return Model{
		Store:    s,
		query:    filter.Query{View: filter.ViewAll},
		page:     1,
		pageSize: pageSize,
		search:   ti,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// filtered returns the current view; current returns the visible page.
func (m Model) filtered() []model.Order {
	return filter.Apply(m.Store.Orders(), m.query)
}

func (m Model) currentPage() paginate.Page {
	return paginate.Paginate(m.filtered(), m.page, m.pageSize)
}

// resetPage honors the consumer-side contract: any query change sends
// the user back to page 1.
func (m *Model) resetPage() {
	m.page = 1
	m.cursor = 0
}

func (m *Model) clampCursor(items int) {
	if m.cursor >= items {
		m.cursor = items - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) selected() (model.Order, bool) {
	items := m.currentPage().Items
	if m.cursor < 0 || m.cursor >= len(items) {
		return model.Order{}, false
	}
	return items[m.cursor], true
}
