package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/pawsearch/internal/domain"
	"github.com/aalvaropc/pawsearch/internal/infra/customerapi"
	"github.com/aalvaropc/pawsearch/internal/infra/logger"
	"github.com/aalvaropc/pawsearch/internal/infra/workspacefinder"
	"github.com/aalvaropc/pawsearch/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	// cfgErr is set when pawsearch.yaml exists but could not be used.
	// cfg then holds the defaults.
	cfgErr error

	searcher ports.CustomerSearcher
	close    func()
}

// loadWorkspace resolves the workspace, loads its config, starts the file
// logger and builds the customer API client. Outside a workspace the current
// directory and the default config are used.
func loadWorkspace(g globalFlags) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(g.workspace)
	if err != nil {
		if !domain.IsKind(err, domain.KindNotFound) {
			return nil, err
		}
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			return nil, fmt.Errorf("get working directory: %w", wdErr)
		}
		root = wd
	}

	cfg, cfgErr := workspacefinder.LoadConfig(root)
	if cfgErr != nil {
		cfg = domain.DefaultConfig()
	}
	applyOverrides(&cfg, g)

	cleanup, logErr := logger.Setup(logger.Config{Root: root, Debug: g.debug})
	closeFn := func() {}
	if logErr == nil && cleanup != nil {
		closeFn = func() { _ = cleanup() }
	}

	log := logger.L()
	if cfgErr != nil {
		log.Warn("config.load_failed", "root", root, "err", cfgErr)
	}

	client, err := customerapi.New(cfg.API, customerapi.WithLogger(log))
	if err != nil {
		closeFn()
		return nil, err
	}

	return &workspaceCtx{
		root:     root,
		cfg:      cfg,
		cfgErr:   cfgErr,
		searcher: client,
		close:    closeFn,
	}, nil
}

func applyOverrides(cfg *domain.Config, g globalFlags) {
	if u := strings.TrimSpace(g.baseURL); u != "" {
		cfg.API.BaseURL = u
	}
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	var locator ports.WorkspaceLocator = workspacefinder.NewFinder()
	return locator.FindRoot(wd)
}
