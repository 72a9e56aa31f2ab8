package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotcomlabs/trustledger/internal/ledger"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Limit int
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list <user>",
		Short: "List a user's commitments, most recent first",
		Long: `List a user's commitments ordered by creation time descending.

The --limit flag caps how many entries are shown; it is a display
concern only and defaults to showing everything.

Example:
  trustledger list Ana --limit 10`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd, args[0])
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum entries to show (0 = all)")

	return cmd
}

// listEntry is the JSON projection of one listed commitment.
type listEntry struct {
	Message     string  `json:"message"`
	Amount      float64 `json:"amount"`
	DueDate     string  `json:"due_date"`
	Status      string  `json:"status"`
	Fingerprint string  `json:"fingerprint"`
	CreatedAt   int64   `json:"created_at"`
}

func runList(opts *ListOptions, cmd *cobra.Command, user string) error {
	s, _, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer s.Close()

	svc := ledger.NewService(s, nil)
	commitments, err := svc.ListFor(cmd.Context(), user)
	if err != nil {
		return ledgerExitError(opts.RootOptions, cmd, err)
	}

	if opts.Limit > 0 && len(commitments) > opts.Limit {
		commitments = commitments[:opts.Limit]
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	if opts.Format == "json" {
		entries := make([]listEntry, len(commitments))
		for i, c := range commitments {
			entries[i] = listEntry{
				Message:     c.Message,
				Amount:      c.Amount,
				DueDate:     c.DueDate,
				Status:      string(c.Status),
				Fingerprint: c.Fingerprint,
				CreatedAt:   c.CreatedAt,
			}
		}
		return out.Success(entries)
	}

	if len(commitments) == 0 {
		return out.Success(fmt.Sprintf("no commitments for %s", user))
	}

	var b strings.Builder
	for _, c := range commitments {
		fmt.Fprintf(&b, "%s | %v | due %s | [%s] | %s\n",
			c.Message, c.Amount, c.DueDate, c.Status, c.Fingerprint)
	}
	fmt.Fprint(cmd.OutOrStdout(), b.String())
	return nil
}
