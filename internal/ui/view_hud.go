package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/taxops/perdcomp/internal/model"
	"github.com/taxops/perdcomp/internal/stats"
)

// viewHUD renders the stat cards over the filtered view, the same five
// figures the dashboard always showed.
func (m Model) viewHUD() string {
	s := stats.Aggregate(m.filtered())

	cards := []struct {
		label string
		value string
	}{
		{"Valor Bruto Total", model.FormatBRL(s.GrossTotal)},
		{"Compensado (DCOMP)", model.FormatBRL(s.TotalCompensated)},
		{"Efetivado (Pago)", fmt.Sprintf("%s · %d itens", model.FormatBRL(s.TotalPaid), s.PaidCount)},
		{"Saldo Pendente", model.FormatBRL(s.TotalPending)},
		{"Total Pedidos", fmt.Sprintf("%d", s.TotalCount)},
	}

	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		body := cardLabelStyle.Render(c.label) + "\n" + c.value
		rendered = append(rendered, cardStyle.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
