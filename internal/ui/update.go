package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taxops/perdcomp/internal/audit"
	"github.com/taxops/perdcomp/internal/filter"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.searching {
		return m.updateSearch(keyMsg)
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "/":
		m.searching = true
		m.search.SetValue(m.query.Search)
		m.search.Focus()
		return m, textinput.Blink

	case "v":
		m.query.View = nextView(m.query.View)
		m.resetPage()

	case "c":
		m.query = filter.Query{View: filter.ViewAll}
		m.resetPage()
		m.notice = ""

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		m.cursor++
		m.clampCursor(len(m.currentPage().Items))

	case "left", "h":
		if m.page > 1 {
			m.page--
			m.cursor = 0
		}

	case "right", "l":
		if total := m.currentPage().TotalPages; m.page < total {
			m.page++
			m.cursor = 0
		}

	case "enter":
		m.showingDetails = !m.showingDetails

	case " ":
		if o, ok := m.selected(); ok {
			o.Paid = !o.Paid
			m.Store.Update(o)
			audit.LogAction("EDIT", o.ID, o.Number, o.Value, paidDetail(o.Paid))
		}

	case "x":
		if o, ok := m.selected(); ok {
			m.Store.Remove(o.ID)
			audit.LogAction("DELETE", o.ID, o.Number, o.Value, o.Status)
			m.clampCursor(len(m.currentPage().Items))
			if total := m.currentPage().TotalPages; total > 0 && m.page > total {
				m.page = total
			}
		}
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "enter":
		m.searching = false
		m.search.Blur()
		m.query.Search = m.search.Value()
		m.resetPage()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func nextView(v filter.View) filter.View {
	switch v {
	case filter.ViewAll, "":
		return filter.ViewCompensation
	case filter.ViewCompensation:
		return filter.ViewRestitution
	default:
		return filter.ViewAll
	}
}

func paidDetail(paid bool) string {
	if paid {
		return "marcado como pago"
	}
	return "baixa desfeita"
}
