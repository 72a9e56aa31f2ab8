package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dotcomlabs/trustledger/internal/config"
	"github.com/dotcomlabs/trustledger/internal/store"
)

// openStore loads the effective config and opens the ledger database.
//
// The --db flag takes precedence over the config file. The parent
// directory is created on first use so a fresh machine works without
// setup. Callers own closing the returned store.
func openStore(opts *RootOptions) (*store.Store, config.Config, error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return nil, config.Config{}, WrapExitError(ExitCommandError, "load config", err)
	}

	path := cfg.DBPath
	if opts.DB != "" {
		path = opts.DB
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, config.Config{}, WrapExitError(ExitCommandError,
				fmt.Sprintf("create data directory %s", dir), err)
		}
	}

	s, err := store.Open(path)
	if err != nil {
		return nil, config.Config{}, WrapExitError(ExitCommandError,
			fmt.Sprintf("open database %s", path), err)
	}

	return s, cfg, nil
}
