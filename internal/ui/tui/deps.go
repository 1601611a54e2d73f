package tui

import (
	"log/slog"
	"time"

	"github.com/aalvaropc/pawsearch/internal/ports"
)

type Deps struct {
	Searcher ports.CustomerSearcher

	// Debounce delays the fetch after a text edit. Zero fetches on every edit.
	Debounce time.Duration

	// ConfigErr is shown once as a toast when the workspace config could not
	// be loaded and defaults are in use.
	ConfigErr error

	Logger *slog.Logger
	Debug  bool
}
