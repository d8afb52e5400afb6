package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/taxops/perdcomp/internal/filter"
	"github.com/taxops/perdcomp/internal/importer"
	"github.com/taxops/perdcomp/internal/model"
	"github.com/taxops/perdcomp/internal/store"
)

func openStore() (*store.Store, error) {
	path := cfg.StorePath
	if path == "" {
		var err error
		path, err = store.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("localizar arquivo de dados: %w", err)
		}
	}
	warn := func(err error) {
		fmt.Printf("[WARN] persistência: %v\n", err)
	}
	return store.Open(store.JSONFile{Path: path}, warn), nil
}

func loadAliases() (importer.Aliases, error) {
	a := importer.DefaultAliases()
	if cfg.AliasFile != "" {
		if err := a.MergeFile(cfg.AliasFile); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// filterFlags are shared by list, stats and the filtered exports, so
// the exported file always matches what the user was looking at.
type filterFlags struct {
	search string
	from   string
	to     string
	view   string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	f.bind(cmd.Flags())
}

// registerPersistent puts the filter flags on a parent command so its
// subcommands share them (export csv / export pdf).
func (f *filterFlags) registerPersistent(cmd *cobra.Command) {
	f.bind(cmd.PersistentFlags())
}

func (f *filterFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.search, "search", "", "Busca por número PER/DCOMP ou banco")
	fs.StringVar(&f.from, "from", "", "Data inicial (AAAA-MM-DD ou DD/MM/AAAA)")
	fs.StringVar(&f.to, "to", "", "Data final (AAAA-MM-DD ou DD/MM/AAAA)")
	fs.StringVar(&f.view, "view", "all", "Visualização: all, compensation ou restitution")
}

func (f filterFlags) query() (filter.Query, error) {
	q := filter.Query{Search: f.search}

	switch filter.View(f.view) {
	case filter.ViewAll, filter.ViewCompensation, filter.ViewRestitution, "":
		q.View = filter.View(f.view)
	default:
		return q, fmt.Errorf("visualização desconhecida: %q", f.view)
	}

	if f.from != "" {
		t, err := parseFlagDate(f.from)
		if err != nil {
			return q, fmt.Errorf("data inicial: %w", err)
		}
		q.From = &t
	}
	if f.to != "" {
		t, err := parseFlagDate(f.to)
		if err != nil {
			return q, fmt.Errorf("data final: %w", err)
		}
		q.To = &t
	}
	return q, nil
}

// resolveOrder matches a full id, a unique id prefix, or an exact
// filing number, in that order.
func resolveOrder(s *store.Store, key string) (model.Order, error) {
	if o, ok := s.Get(key); ok {
		return o, nil
	}
	var hit model.Order
	hits := 0
	for _, o := range s.Orders() {
		if strings.HasPrefix(o.ID, key) {
			hit = o
			hits++
		}
	}
	if hits == 1 {
		return hit, nil
	}
	if hits > 1 {
		return model.Order{}, fmt.Errorf("identificador ambíguo: %q", key)
	}
	for _, o := range s.Orders() {
		if o.Number == key {
			return o, nil
		}
	}
	return model.Order{}, fmt.Errorf("pedido não encontrado: %q", key)
}

func parseFlagDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "02/01/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("data inválida: %q", s)
}
