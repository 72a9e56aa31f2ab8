package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotcomlabs/trustledger/internal/dispatch"
	"github.com/dotcomlabs/trustledger/internal/export"
	"github.com/dotcomlabs/trustledger/internal/ledger"
	"github.com/dotcomlabs/trustledger/internal/reputation"
)

// NewChatCommand creates the chat command.
func NewChatCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat <user>",
		Short: "Run the command dispatcher as a line-oriented session",
		Long: `Run the chat-bot command dispatcher against stdin.

Each input line is dispatched as if it were an inbound bot command
(add, complete, rep, list, export) and the reply is printed. This is
the same dispatch layer the bot transport uses, minus the network.

A configured bot token is required, matching the bot's own startup
check.

Example:
  trustledger chat Ana`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(rootOpts, cmd, args[0])
		},
	}

	return cmd
}

func runChat(opts *RootOptions, cmd *cobra.Command, user string) error {
	s, cfg, err := openStore(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	// The chat surface is the one place a missing token is fatal.
	if err := cfg.RequireToken(); err != nil {
		return WrapExitError(ExitCommandError, "chat startup", err)
	}

	d := dispatch.New(
		ledger.NewService(s, nil),
		reputation.NewEngine(s),
		export.NewProjector(s),
		cfg.ExportPath,
		nil,
	)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Chatting as %s. Type 'help' for commands, Ctrl-D to quit.\n", user)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		reply := d.Handle(cmd.Context(), user, scanner.Text())
		fmt.Fprintln(out, reply)
	}
	if err := scanner.Err(); err != nil {
		return WrapExitError(ExitCommandError, "read input", err)
	}

	return nil
}
