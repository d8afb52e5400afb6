package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taxops/perdcomp/internal/audit"
)

var editFlags struct {
	number   string
	date     string
	credit   string
	document string
	status   string
	value    float64
	paid     bool
	bank     string
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Altera campos de um pedido",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		o, err := resolveOrder(s, args[0])
		if err != nil {
			return err
		}

		var changed []string
		set := func(flag string, apply func()) {
			if cmd.Flags().Changed(flag) {
				apply()
				changed = append(changed, flag)
			}
		}
		set("number", func() { o.Number = editFlags.number })
		set("credit", func() { o.CreditType = editFlags.credit })
		set("document", func() { o.DocumentType = editFlags.document })
		set("status", func() { o.Status = editFlags.status })
		set("value", func() { o.Value = editFlags.value })
		set("paid", func() { o.Paid = editFlags.paid })
		set("bank", func() { o.Bank = editFlags.bank })
		if cmd.Flags().Changed("date") {
			t, err := parseFlagDate(editFlags.date)
			if err != nil {
				return err
			}
			o.TransmissionDate = t
			changed = append(changed, "date")
		}

		if len(changed) == 0 {
			fmt.Println("Nada a alterar.")
			return nil
		}

		s.Update(o)
		audit.LogAction("EDIT", o.ID, o.Number, o.Value, "campos: "+strings.Join(changed, ", "))
		fmt.Printf("Pedido %s atualizado (%s).\n", o.Number, strings.Join(changed, ", "))
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editFlags.number, "number", "", "Número do PER/DCOMP")
	editCmd.Flags().StringVar(&editFlags.date, "date", "", "Data de transmissão (AAAA-MM-DD ou DD/MM/AAAA)")
	editCmd.Flags().StringVar(&editFlags.credit, "credit", "", "Tipo de crédito")
	editCmd.Flags().StringVar(&editFlags.document, "document", "", "Tipo de documento")
	editCmd.Flags().StringVar(&editFlags.status, "status", "", "Situação do pedido")
	editCmd.Flags().Float64Var(&editFlags.value, "value", 0, "Valor do crédito")
	editCmd.Flags().BoolVar(&editFlags.paid, "paid", false, "Marca ou desmarca a baixa")
	editCmd.Flags().StringVar(&editFlags.bank, "bank", "", "Banco de recebimento")

	rootCmd.AddCommand(editCmd)
}
