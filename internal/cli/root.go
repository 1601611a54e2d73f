package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/pawsearch/internal/infra/logger"
	"github.com/aalvaropc/pawsearch/internal/ui/tui"
)

type globalFlags struct {
	debug     bool
	workspace string
	baseURL   string
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:          "pawsearch",
		Short:        "Search customers and their pets from the terminal",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(*g)
			if err != nil {
				return err
			}
			defer ws.close()

			return tui.Run(tui.Deps{
				Searcher:  ws.searcher,
				Debounce:  ws.cfg.Search.Debounce,
				ConfigErr: ws.cfgErr,
				Logger:    logger.L(),
				Debug:     g.debug,
			})
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVar(&g.debug, "debug", false, "enable verbose logging to .pawsearch/logs/pawsearch.log")
	pf.StringVarP(&g.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	pf.StringVar(&g.baseURL, "base-url", "", "Customer API base URL (overrides pawsearch.yaml)")

	cmd.AddCommand(
		searchCmd(g),
		speciesCmd(),
		initCmd(g),
		versionCmd(),
	)
	return cmd
}
