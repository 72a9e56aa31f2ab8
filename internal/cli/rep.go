package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotcomlabs/trustledger/internal/reputation"
)

// NewRepCommand creates the rep command.
func NewRepCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rep <user>",
		Short: "Show a user's reputation score",
		Long: `Show a user's reputation: the percentage of their commitments
with COMPLETED status, rounded to two decimals. A user with no
recorded commitments scores 0.

Example:
  trustledger rep Ana`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRep(rootOpts, cmd, args[0])
		},
	}

	return cmd
}

func runRep(opts *RootOptions, cmd *cobra.Command, user string) error {
	s, _, err := openStore(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	engine := reputation.NewEngine(s)
	score, err := engine.Score(cmd.Context(), user)
	if err != nil {
		return WrapExitError(ExitCommandError, "compute reputation", err)
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	if opts.Format == "json" {
		return out.Success(map[string]any{"user": user, "score": score})
	}
	return out.Success(fmt.Sprintf("%s: %.2f%%", user, score))
}
