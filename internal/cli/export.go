package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcomlabs/trustledger/internal/export"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Output string
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the full ledger as JSON",
		Long: `Export every commitment as a JSON array of
{user, message, amount, due_date, status, hash} records, preserving
insertion order.

By default the export is written to the path from the config file.
Use --output to write elsewhere, or "--output -" for stdout.

Example:
  trustledger export --output -`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", `output file ("-" = stdout, default from config)`)

	return cmd
}

func runExport(opts *ExportOptions, cmd *cobra.Command) error {
	s, cfg, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer s.Close()

	projector := export.NewProjector(s)

	path := opts.Output
	if path == "" {
		path = cfg.ExportPath
	}

	if path == "-" {
		if err := projector.WriteJSON(cmd.Context(), cmd.OutOrStdout()); err != nil {
			return WrapExitError(ExitCommandError, "export ledger", err)
		}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("create export file %s", path), err)
	}
	defer f.Close()

	if err := projector.WriteJSON(cmd.Context(), f); err != nil {
		return WrapExitError(ExitCommandError, "export ledger", err)
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	if opts.Format == "json" {
		return out.Success(map[string]string{"path": path})
	}
	return out.Success("exported to " + path)
}
