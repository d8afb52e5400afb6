package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taxops/perdcomp/internal/audit"
	"github.com/taxops/perdcomp/internal/model"
)

var addFlags struct {
	number   string
	date     string
	credit   string
	document string
	status   string
	value    float64
	paid     bool
	bank     string
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Cadastra um pedido manualmente",
	RunE: func(cmd *cobra.Command, args []string) error {
		if addFlags.number == "" {
			return errors.New("o número do PER/DCOMP é obrigatório (--number)")
		}
		if !cmd.Flags().Changed("value") {
			return errors.New("o valor do crédito é obrigatório (--value)")
		}

		now := time.Now().UTC()
		o := model.Order{
			ID:               model.NewID(),
			Number:           addFlags.number,
			TransmissionDate: now,
			CreditType:       addFlags.credit,
			DocumentType:     addFlags.document,
			Status:           addFlags.status,
			Value:            addFlags.value,
			ImportedAt:       now,
			Paid:             addFlags.paid,
			Bank:             addFlags.bank,
		}
		if addFlags.date != "" {
			t, err := parseFlagDate(addFlags.date)
			if err != nil {
				return err
			}
			o.TransmissionDate = t
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		s.Add(o)
		audit.LogAction("ADD", o.ID, o.Number, o.Value, "cadastro manual")

		fmt.Printf("Pedido %s cadastrado (%s).\n", o.Number, model.FormatBRL(o.Value))
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addFlags.number, "number", "", "Número do PER/DCOMP")
	addCmd.Flags().StringVar(&addFlags.date, "date", "", "Data de transmissão (AAAA-MM-DD ou DD/MM/AAAA)")
	addCmd.Flags().StringVar(&addFlags.credit, "credit", "N/A", "Tipo de crédito")
	addCmd.Flags().StringVar(&addFlags.document, "document", "N/A", "Tipo de documento")
	addCmd.Flags().StringVar(&addFlags.status, "status", model.StatusUnderReview, "Situação do pedido")
	addCmd.Flags().Float64Var(&addFlags.value, "value", 0, "Valor do crédito")
	addCmd.Flags().BoolVar(&addFlags.paid, "paid", false, "Marca o pedido como baixado")
	addCmd.Flags().StringVar(&addFlags.bank, "bank", "", "Banco de recebimento")

	rootCmd.AddCommand(addCmd)
}
