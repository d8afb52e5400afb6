package ui

import (
	"fmt"
	"strings"

	"github.com/taxops/perdcomp/internal/filter"
	"github.com/taxops/perdcomp/internal/model"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showingDetails {
		return m.viewDetails()
	}

	s := strings.Builder{}
	s.WriteString(titleStyle.Render("FLUXO PER/DCOMP"))
	s.WriteString(dimStyle.Render("  Monitoramento de Créditos e Compensações Fiscais"))
	s.WriteString("\n\n")

	s.WriteString(m.viewHUD())
	s.WriteString("\n")

	s.WriteString(m.viewFilters())
	s.WriteString("\n")

	page := m.currentPage()
	if len(page.Items) == 0 {
		s.WriteString(dimStyle.Render("  Nenhum registro encontrado.") + "\n")
	} else {
		for i, o := range page.Items {
			s.WriteString(m.renderRow(i, o))
		}
	}

	s.WriteString("\n")
	if page.TotalPages > 1 {
		s.WriteString(dimStyle.Render(fmt.Sprintf("  Página %d de %d\n", m.page, page.TotalPages)))
	}
	if m.notice != "" {
		s.WriteString(noticeStyle.Render("  " + m.notice + "\n"))
	}
	s.WriteString(helpStyle("  / busca · v tipo · ←/→ página · espaço baixa · x excluir · enter detalhes · c limpar · q sair\n"))
	return s.String()
}

func (m Model) viewFilters() string {
	if m.searching {
		return "  Buscar: " + m.search.View() + "\n"
	}

	parts := []string{"Visão: " + viewLabel(m.query.View)}
	if m.query.Search != "" {
		parts = append(parts, fmt.Sprintf("Busca: %q", m.query.Search))
	}
	return dimStyle.Render("  "+strings.Join(parts, "   ")) + "\n"
}

func (m Model) renderRow(i int, o model.Order) string {
	cursor := "  "
	if i == m.cursor {
		cursor = cursorStyle.Render("> ")
	}

	paid := dimStyle.Render("NÃO")
	if o.Paid {
		paid = paidStyle.Render("SIM")
	}

	kind := "REST"
	if o.Kind() == model.Compensation {
		kind = "COMP"
	}

	line := fmt.Sprintf("%s%-32s %s %s %-18s %14s %s",
		cursor,
		truncate(o.Number, 32),
		model.FormatDate(o.TransmissionDate),
		kind,
		truncate(o.Status, 18),
		model.FormatBRL(o.Value),
		paid,
	)
	return line + "\n"
}

func viewLabel(v filter.View) string {
	switch v {
	case filter.ViewCompensation:
		return "Compensações"
	case filter.ViewRestitution:
		return "Restituições"
	default:
		return "Todos"
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
