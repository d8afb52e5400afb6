package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/taxops/perdcomp/internal/audit"
	"github.com/taxops/perdcomp/internal/export"
)

var backupCmd = &cobra.Command{
	Use:   "backup [arquivo]",
	Short: "Grava um snapshot JSON de toda a coleção",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}

		out := fmt.Sprintf("perdcomp_backup_%s.json", time.Now().Format("2006-01-02"))
		if len(args) == 1 {
			out = args[0]
		}

		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("criar arquivo: %w", err)
		}
		defer f.Close()

		if err := export.WriteBackup(f, s.Orders()); err != nil {
			os.Remove(out)
			return err
		}
		fmt.Printf("%d pedido(s) salvos em %s.\n", s.Len(), out)
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <arquivo>",
	Short: "Restaura um snapshot, preservando os pedidos atuais",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("abrir arquivo: %w", err)
		}
		defer f.Close()

		orders, err := export.ReadBackup(f)
		if err != nil {
			return err
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		s.RestorePrepend(orders)
		audit.LogAction("RESTORE", "", "", 0, fmt.Sprintf("%d pedidos de %s", len(orders), args[0]))

		fmt.Printf("%d pedido(s) restaurado(s); a coleção agora tem %d.\n", len(orders), s.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd, restoreCmd)
}
