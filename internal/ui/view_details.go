package ui

import (
	"fmt"
	"strings"

	"github.com/taxops/perdcomp/internal/filter"
	"github.com/taxops/perdcomp/internal/model"
)

func kindView(o model.Order) filter.View {
	if o.Kind() == model.Compensation {
		return filter.ViewCompensation
	}
	return filter.ViewRestitution
}

func (m Model) viewDetails() string {
	o, ok := m.selected()
	if !ok {
		return dimStyle.Render("Nenhum registro selecionado.") + "\n\n" + helpStyle("enter volta")
	}

	s := strings.Builder{}
	s.WriteString(titleStyle.Render("DETALHES DO PEDIDO"))
	s.WriteString("\n\n")

	row := func(label, value string) {
		s.WriteString(fmt.Sprintf("  %s %s\n", cardLabelStyle.Render(fmt.Sprintf("%-20s", label)), value))
	}

	row("PER/DCOMP", o.Number)
	row("Transmissão", model.FormatDate(o.TransmissionDate))
	row("Tipo de Crédito", o.CreditType)
	row("Tipo de Documento", o.DocumentType)
	row("Classificação", viewLabel(kindView(o)))
	row("Situação", o.Status)
	row("Valor", model.FormatBRL(o.Value))
	if o.Paid {
		row("Baixado", paidStyle.Render("SIM"))
	} else {
		row("Baixado", dangerStyle.Render("NÃO"))
	}
	if o.Bank != "" {
		row("Banco", o.Bank)
	}
	row("Importado em", model.FormatDate(o.ImportedAt))
	row("ID", dimStyle.Render(o.ID))

	s.WriteString("\n" + helpStyle("  enter volta · espaço baixa · x excluir · q sair\n"))
	return s.String()
}
