package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/taxops/perdcomp/internal/filter"
	"github.com/taxops/perdcomp/internal/model"
	"github.com/taxops/perdcomp/internal/paginate"
	"github.com/taxops/perdcomp/internal/stats"
)

var (
	listFilter filterFlags
	listPage   int
)

var listHeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#10B981"))

var listDimStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#64748B"))

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista os pedidos filtrados",
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := listFilter.query()
		if err != nil {
			return err
		}
		s, err := openStore()
		if err != nil {
			return err
		}

		filtered := filter.Apply(s.Orders(), q)
		page := paginate.Paginate(filtered, listPage, cfg.PageSize)

		if len(filtered) == 0 {
			fmt.Println("Nenhum pedido encontrado.")
			return nil
		}

		fmt.Println(listHeaderStyle.Render(fmt.Sprintf(
			"%-8s %-26s %-12s %-6s %-18s %16s %-6s",
			"ID", "PER/DCOMP", "Data", "Tipo", "Situação", "Valor", "Baixado")))
		for _, o := range page.Items {
			fmt.Println(renderListRow(o))
		}

		st := stats.Aggregate(filtered)
		fmt.Println(listDimStyle.Render(fmt.Sprintf(
			"\nPágina %d de %d · %d pedidos · Total Bruto %s · Pendente %s",
			listPage, page.TotalPages, st.TotalCount,
			model.FormatBRL(st.GrossTotal), model.FormatBRL(st.TotalPending))))
		return nil
	},
}

func renderListRow(o model.Order) string {
	kind := "REST"
	if o.Kind() == model.Compensation {
		kind = "COMP"
	}
	paid := "NÃO"
	if o.Paid {
		paid = "SIM"
	}
	return fmt.Sprintf("%-8s %-26s %-12s %-6s %-18s %16s %-6s",
		shortID(o.ID), clip(o.Number, 26), model.FormatDate(o.TransmissionDate),
		kind, clip(o.Status, 18), model.FormatBRL(o.Value), paid)
}

func shortID(id string) string {
	return clip(id, 8)
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func init() {
	listFilter.register(listCmd)
	listCmd.Flags().IntVar(&listPage, "page", 1, "Página a exibir")
	rootCmd.AddCommand(listCmd)
}
