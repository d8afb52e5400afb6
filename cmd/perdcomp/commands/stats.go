package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/taxops/perdcomp/internal/filter"
	"github.com/taxops/perdcomp/internal/model"
	"github.com/taxops/perdcomp/internal/stats"
)

var statsFilter filterFlags

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Resumo financeiro dos pedidos filtrados",
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := statsFilter.query()
		if err != nil {
			return err
		}
		s, err := openStore()
		if err != nil {
			return err
		}

		st := stats.Aggregate(filter.Apply(s.Orders(), q))

		cards := []string{
			statsCard("TOTAL BRUTO", model.FormatBRL(st.GrossTotal)),
			statsCard("COMPENSADO", model.FormatBRL(st.TotalCompensated)),
			statsCard(fmt.Sprintf("BAIXADO (%d)", st.PaidCount), model.FormatBRL(st.TotalPaid)),
			statsCard("PENDENTE", model.FormatBRL(st.TotalPending)),
			statsCard("PEDIDOS", fmt.Sprintf("%d", st.TotalCount)),
		}
		fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
		return nil
	},
}

var (
	statsCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#64748B")).
			Padding(0, 2).
			Margin(0, 1)

	statsLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B")).
			Bold(true)
)

func statsCard(label, value string) string {
	return statsCardStyle.Render(statsLabelStyle.Render(label) + "\n" + value)
}

func init() {
	statsFilter.register(statsCmd)
	rootCmd.AddCommand(statsCmd)
}
