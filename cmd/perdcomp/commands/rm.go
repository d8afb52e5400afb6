package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taxops/perdcomp/internal/audit"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove um pedido",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		o, err := resolveOrder(s, args[0])
		if err != nil {
			// Removing something already gone is not a failure.
			fmt.Println(err)
			return nil
		}

		s.Remove(o.ID)
		audit.LogAction("DELETE", o.ID, o.Number, o.Value, "remoção via CLI")
		fmt.Printf("Pedido %s removido.\n", o.Number)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
