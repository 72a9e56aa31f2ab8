package cli

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dotcomlabs/trustledger/internal/ledger"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <user> <message> <amount> <due-date>",
		Short: "Record a new commitment",
		Long: `Record a new commitment for a user.

The amount must be a non-negative number. The due date is stored as
given; it is not parsed or validated as a calendar date.

Example:
  trustledger add Ana "Pay rent" 500 2025-11-01`,
		Args:          cobra.ExactArgs(4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(rootOpts, cmd, args)
		},
	}

	return cmd
}

func runAdd(opts *RootOptions, cmd *cobra.Command, args []string) error {
	user, message, amountText, dueDate := args[0], args[1], args[2], args[3]

	amount, err := strconv.ParseFloat(amountText, 64)
	if err != nil {
		return NewExitError(ExitFailure, "amount must be a number")
	}

	s, _, err := openStore(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	svc := ledger.NewService(s, nil)
	fingerprint, err := svc.Record(cmd.Context(), user, message, amount, dueDate)
	if err != nil {
		return ledgerExitError(opts, cmd, err)
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	if opts.Format == "json" {
		return out.Success(map[string]string{"fingerprint": fingerprint})
	}
	return out.Success("recorded: " + fingerprint)
}

// ledgerExitError renders a ledger error through the formatter and
// returns a silent ExitError carrying the right exit code.
func ledgerExitError(opts *RootOptions, cmd *cobra.Command, err error) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	var le *ledger.Error
	if errors.As(err, &le) {
		_ = out.Error(string(le.Code), le.Error())
		code := ExitFailure
		if le.Code == ledger.CodeStorage {
			code = ExitCommandError
		}
		return NewExitError(code, "")
	}

	return WrapExitError(ExitCommandError, "unexpected error", err)
}
