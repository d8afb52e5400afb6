package commands

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/taxops/perdcomp/internal/config"
	"github.com/taxops/perdcomp/internal/ui"
	"github.com/taxops/perdcomp/internal/version"
)

var (
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "perdcomp",
	Short: "Fluxo PER/DCOMP no terminal",
	Long: `Fluxo PER/DCOMP - Monitoramento de Créditos e Compensações Fiscais

Importe, filtre e acompanhe pedidos de restituição, ressarcimento e
declarações de compensação sem sair do terminal.`,
	Version: version.Current,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		p := tea.NewProgram(ui.NewModel(s, cfg.PageSize))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("erro ao iniciar a interface: %w", err)
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Arquivo de configuração (padrão ~/.perdcomp.yaml)")
	rootCmd.PersistentFlags().String("store", "", "Arquivo de dados (padrão ~/.perdcomp/orders_v4.json)")
	rootCmd.PersistentFlags().Int("page-size", 10, "Itens por página")
	rootCmd.PersistentFlags().String("aliases", "", "Arquivo YAML com apelidos extras de colunas")
	rootCmd.PersistentFlags().Bool("mock-extraction", false, "Simula a extração do XML (sem chamada externa)")
	rootCmd.PersistentFlags().MarkHidden("mock-extraction")

	viper.BindPFlag("store_path", rootCmd.PersistentFlags().Lookup("store"))
	viper.BindPFlag("page_size", rootCmd.PersistentFlags().Lookup("page-size"))
	viper.BindPFlag("alias_file", rootCmd.PersistentFlags().Lookup("aliases"))
	viper.BindPFlag("mock_extraction", rootCmd.PersistentFlags().Lookup("mock-extraction"))

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		renderHelp(cmd)
	})
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.SetConfigFile(filepath.Join(home, ".perdcomp.yaml"))
			viper.SetConfigType("yaml")
		}
	}

	defaults := config.Default()
	viper.SetDefault("page_size", defaults.PageSize)
	viper.SetDefault("gemini.region", defaults.Gemini.Region)
	viper.SetDefault("gemini.model", defaults.Gemini.Model)
	viper.SetEnvPrefix("PERDCOMP")
	viper.AutomaticEnv()
	viper.ReadInConfig()

	cfg = defaults
	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Printf("[WARN] configuração inválida: %v\n", err)
	}
}

func renderHelp(cmd *cobra.Command) {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#10B981")).
		MarginBottom(1)

	flagStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA"))

	fmt.Println(titleStyle.Render(fmt.Sprintf("FLUXO PER/DCOMP %s", version.Current)))
	fmt.Println("Monitoramento de Créditos e Compensações Fiscais.")

	fmt.Println(titleStyle.Render("USO"))
	fmt.Printf("  %s\n\n", cmd.UseLine())

	fmt.Println(titleStyle.Render("COMANDOS"))
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() {
			fmt.Printf("  %-12s %s\n", c.Name(), c.Short)
		}
	}
	fmt.Println("")

	fmt.Println(titleStyle.Render("FLAGS"))
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		output := fmt.Sprintf("  --%-15s %s", f.Name, f.Usage)
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" {
			output += fmt.Sprintf(" (padrão %s)", f.DefValue)
		}
		fmt.Println(flagStyle.Render(output))
	})
	fmt.Println("")
}
