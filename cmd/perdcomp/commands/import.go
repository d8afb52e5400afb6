package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/taxops/perdcomp/internal/audit"
	"github.com/taxops/perdcomp/internal/extract"
	"github.com/taxops/perdcomp/internal/importer"
	"github.com/taxops/perdcomp/internal/model"
	"github.com/taxops/perdcomp/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <arquivo>",
	Short: "Importa pedidos de uma planilha CSV ou de um XML de PER/DCOMP",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		path := args[0]
		if strings.EqualFold(filepath.Ext(path), ".xml") {
			return importXML(cmd.Context(), s, path)
		}
		return importTabular(s, path)
	},
}

func importTabular(s *store.Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("abrir planilha: %w", err)
	}
	defer f.Close()

	aliases, err := loadAliases()
	if err != nil {
		return fmt.Errorf("carregar apelidos de colunas: %w", err)
	}

	orders, err := importer.ReadTabular(f, aliases)
	if err != nil {
		return err
	}

	s.AddBatch(orders)
	for _, o := range orders {
		audit.LogAction("IMPORT", o.ID, o.Number, o.Value, "planilha "+filepath.Base(path))
	}
	fmt.Printf("%d pedido(s) importado(s) de %s.\n", len(orders), filepath.Base(path))
	return nil
}

func importXML(ctx context.Context, s *store.Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("ler XML: %w", err)
	}

	ex, closeEx, err := newExtractor(ctx)
	if err != nil {
		return err
	}
	defer closeEx()

	order, err := runExtraction(ctx, string(data), ex)
	if err != nil {
		return err
	}

	s.Add(order)
	audit.LogAction("IMPORT", order.ID, order.Number, order.Value, "XML "+filepath.Base(path))
	fmt.Printf("Pedido %s importado (%s).\n", order.Number, model.FormatBRL(order.Value))
	return nil
}

func newExtractor(ctx context.Context) (importer.Extractor, func(), error) {
	if cfg.MockExtraction {
		mock := &extract.Mock{Result: importer.Extraction{
			Number:           "00000.00000.000000.0.0.00-0000",
			TransmissionDate: time.Now().UTC().Format(time.RFC3339),
			CreditType:       "Saldo Negativo de IRPJ",
			DocumentType:     "Declaração de Compensação",
			Status:           model.StatusProcessing,
			Value:            1234.56,
		}}
		return mock, func() {}, nil
	}
	if cfg.Gemini.Project == "" {
		return nil, nil, errors.New("projeto Gemini não configurado (gemini.project no ~/.perdcomp.yaml ou PERDCOMP_GEMINI_PROJECT)")
	}
	client, err := extract.NewClient(ctx, cfg.Gemini.Project, cfg.Gemini.Region, cfg.Gemini.Model)
	if err != nil {
		return nil, nil, fmt.Errorf("conectar ao serviço de extração: %w", err)
	}
	return client, func() { client.Close() }, nil
}

// runExtraction keeps a spinner on screen while the collaborator call
// is in flight. The call itself runs once; there is no retry.
func runExtraction(ctx context.Context, content string, ex importer.Extractor) (model.Order, error) {
	m := newExtractionModel(ctx, content, ex)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return model.Order{}, fmt.Errorf("erro ao exibir progresso: %w", err)
	}
	res := final.(extractionModel)
	return res.order, res.err
}

type extractionDoneMsg struct {
	order model.Order
	err   error
}

type extractionModel struct {
	spinner spinner.Model
	run     func() tea.Msg
	done    bool
	order   model.Order
	err     error
}

func newExtractionModel(ctx context.Context, content string, ex importer.Extractor) extractionModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))

	return extractionModel{
		spinner: sp,
		run: func() tea.Msg {
			o, err := importer.ImportXML(ctx, content, ex)
			return extractionDoneMsg{order: o, err: err}
		},
	}
}

func (m extractionModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m extractionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case extractionDoneMsg:
		m.done = true
		m.order = msg.order
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.done = true
			m.err = context.Canceled
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m extractionModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s Analisando o XML com IA...\n", m.spinner.View())
}

func init() {
	rootCmd.AddCommand(importCmd)
}
