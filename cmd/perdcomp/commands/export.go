package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/taxops/perdcomp/internal/export"
	"github.com/taxops/perdcomp/internal/filter"
	"github.com/taxops/perdcomp/internal/model"
)

var (
	exportFilter filterFlags
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exporta os pedidos filtrados",
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Exporta a visualização filtrada em CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(func(orders []model.Order, view filter.View, w *os.File) error {
			return export.WriteCSV(w, orders)
		}, csvFileName)
	},
}

var exportPDFCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Exporta a visualização filtrada em PDF",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(func(orders []model.Order, view filter.View, w *os.File) error {
			return export.WritePDF(w, orders, view, time.Now())
		}, pdfFileName)
	},
}

func runExport(write func([]model.Order, filter.View, *os.File) error, name func(filter.View, time.Time) string) error {
	q, err := exportFilter.query()
	if err != nil {
		return err
	}
	s, err := openStore()
	if err != nil {
		return err
	}

	orders := filter.Apply(s.Orders(), q)
	if len(orders) == 0 {
		return export.ErrNoRecords
	}

	out := exportOut
	if out == "" {
		out = name(q.View, time.Now())
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("criar arquivo: %w", err)
	}
	defer f.Close()

	if err := write(orders, q.View, f); err != nil {
		os.Remove(out)
		return err
	}
	fmt.Printf("%d pedido(s) exportado(s) para %s.\n", len(orders), out)
	return nil
}

func csvFileName(view filter.View, now time.Time) string {
	suffix := ""
	switch view {
	case filter.ViewCompensation:
		suffix = "_COMP"
	case filter.ViewRestitution:
		suffix = "_REST"
	}
	return fmt.Sprintf("relatorio_perdcomp%s_%s.csv", suffix, now.Format("2006-01-02"))
}

func pdfFileName(view filter.View, now time.Time) string {
	name := "geral"
	switch view {
	case filter.ViewCompensation:
		name = "compensacao"
	case filter.ViewRestitution:
		name = "restituicao"
	}
	return fmt.Sprintf("relatorio_%s_%s.pdf", name, now.Format("2006-01-02"))
}

func init() {
	exportFilter.registerPersistent(exportCmd)
	exportCmd.PersistentFlags().StringVarP(&exportOut, "output", "o", "", "Arquivo de saída (padrão com data do dia)")
	exportCmd.AddCommand(exportCSVCmd, exportPDFCmd)
	rootCmd.AddCommand(exportCmd)
}
