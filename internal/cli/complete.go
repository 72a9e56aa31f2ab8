package cli

import (
	"github.com/spf13/cobra"

	"github.com/dotcomlabs/trustledger/internal/ledger"
)

// NewCompleteCommand creates the complete command.
func NewCompleteCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete <fingerprint>",
		Short: "Mark a commitment as completed",
		Long: `Mark the commitment with the given fingerprint as completed.

Completing an already-completed commitment succeeds; an unknown
fingerprint is an error.

Example:
  trustledger complete 4f7a1c9e02...`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComplete(rootOpts, cmd, args[0])
		},
	}

	return cmd
}

func runComplete(opts *RootOptions, cmd *cobra.Command, fingerprint string) error {
	s, _, err := openStore(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	svc := ledger.NewService(s, nil)
	if err := svc.Complete(cmd.Context(), fingerprint); err != nil {
		return ledgerExitError(opts, cmd, err)
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	if opts.Format == "json" {
		return out.Success(map[string]string{"fingerprint": fingerprint, "status": string(ledger.StatusCompleted)})
	}
	return out.Success("completed: " + fingerprint)
}
