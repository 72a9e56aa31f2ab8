// Package dispatch maps inbound textual commands onto ledger
// operations and renders their results as text replies.
//
// This is the chat surface of the system: every core failure is
// translated into a human-readable correction hint, and nothing that
// happens here ever takes the hosting process down. The core never
// formats user-facing strings itself; all wording lives in this
// package.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dotcomlabs/trustledger/internal/export"
	"github.com/dotcomlabs/trustledger/internal/ledger"
	"github.com/dotcomlabs/trustledger/internal/reputation"
)

// listDisplayLimit caps how many commitments a list reply shows.
// Purely a presentation concern; the core returns the full history.
const listDisplayLimit = 10

// shortHashLen is how many fingerprint characters replies show.
const shortHashLen = 10

const usage = `Available commands:
  add <message> | <amount> | <due date>  record a commitment
  complete <fingerprint>                 mark a commitment completed
  rep                                    show your reputation
  list                                   list your commitments
  export                                 export the ledger to JSON`

// Dispatcher routes textual commands to the core services.
type Dispatcher struct {
	ledger     *ledger.Service
	reputation *reputation.Engine
	projector  *export.Projector
	exportPath string
	tokens     TokenGenerator
}

// New creates a dispatcher. A nil token generator defaults to UUIDv7.
func New(svc *ledger.Service, rep *reputation.Engine, proj *export.Projector, exportPath string, tokens TokenGenerator) *Dispatcher {
	if tokens == nil {
		tokens = UUIDv7Generator{}
	}
	return &Dispatcher{
		ledger:     svc,
		reputation: rep,
		projector:  proj,
		exportPath: exportPath,
		tokens:     tokens,
	}
}

// Handle processes one inbound command line from user and returns the
// reply text. It never returns an error: failures become replies, and
// storage failures are additionally logged with the correlation token.
func (d *Dispatcher) Handle(ctx context.Context, user, input string) string {
	token := d.tokens.Generate()

	command, rest := splitCommand(input)
	slog.Debug("handling command",
		"token", token,
		"user", user,
		"command", command,
	)

	switch command {
	case "start", "help", "":
		return usage
	case "add":
		return d.handleAdd(ctx, token, user, rest)
	case "complete":
		return d.handleComplete(ctx, token, strings.TrimSpace(rest))
	case "rep":
		return d.handleRep(ctx, token, user)
	case "list":
		return d.handleList(ctx, token, user)
	case "export":
		return d.handleExport(ctx, token)
	default:
		return fmt.Sprintf("Unknown command %q.\n%s", command, usage)
	}
}

// splitCommand separates the command word from its arguments.
// A leading slash (Telegram style) is accepted and stripped.
func splitCommand(input string) (command, rest string) {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "/")

	command, rest, _ = strings.Cut(input, " ")
	return strings.ToLower(command), rest
}

func (d *Dispatcher) handleAdd(ctx context.Context, token, user, rest string) string {
	const hint = "Invalid format. Use:\nadd <message> | <amount> | <due date>"

	fields := strings.Split(rest, "|")
	if len(fields) != 3 {
		return hint
	}

	message := strings.TrimSpace(fields[0])
	amountText := strings.TrimSpace(fields[1])
	dueDate := strings.TrimSpace(fields[2])

	amount, err := strconv.ParseFloat(amountText, 64)
	if err != nil {
		return fmt.Sprintf("Amount %q is not a number.\n%s", amountText, hint)
	}

	fingerprint, err := d.ledger.Record(ctx, user, message, amount, dueDate)
	if err != nil {
		if ledger.IsValidation(err) {
			return fmt.Sprintf("Cannot record that: %v.\n%s", err, hint)
		}
		slog.Error("record failed", "token", token, "error", err)
		return "Something went wrong storing your commitment. Please try again."
	}

	return fmt.Sprintf("Commitment recorded with fingerprint %s...", shortHash(fingerprint))
}

func (d *Dispatcher) handleComplete(ctx context.Context, token, fingerprint string) string {
	if fingerprint == "" {
		return "Usage: complete <fingerprint>"
	}

	if err := d.ledger.Complete(ctx, fingerprint); err != nil {
		if ledger.IsNotFound(err) {
			return fmt.Sprintf("No commitment found with fingerprint %s.", fingerprint)
		}
		slog.Error("complete failed", "token", token, "error", err)
		return "Something went wrong updating your commitment. Please try again."
	}

	return fmt.Sprintf("Commitment %s... marked as completed.", shortHash(fingerprint))
}

func (d *Dispatcher) handleRep(ctx context.Context, token, user string) string {
	score, err := d.reputation.Score(ctx, user)
	if err != nil {
		slog.Error("reputation failed", "token", token, "error", err)
		return "Something went wrong computing your reputation. Please try again."
	}

	return fmt.Sprintf("Your current reputation is %.2f%%", score)
}

func (d *Dispatcher) handleList(ctx context.Context, token, user string) string {
	commitments, err := d.ledger.ListFor(ctx, user)
	if err != nil {
		slog.Error("list failed", "token", token, "error", err)
		return "Something went wrong reading your commitments. Please try again."
	}

	if len(commitments) == 0 {
		return "You have no commitments recorded yet."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Commitments for %s:\n", user)
	for i, c := range commitments {
		if i == listDisplayLimit {
			fmt.Fprintf(&b, "... and %d more", len(commitments)-listDisplayLimit)
			break
		}
		fmt.Fprintf(&b, "- %s | %v | due %s | [%s] | %s...\n",
			c.Message, c.Amount, c.DueDate, c.Status, shortHash(c.Fingerprint))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (d *Dispatcher) handleExport(ctx context.Context, token string) string {
	f, err := os.Create(d.exportPath)
	if err != nil {
		slog.Error("export failed", "token", token, "error", err)
		return "Something went wrong writing the export file. Please try again."
	}
	defer f.Close()

	if err := d.projector.WriteJSON(ctx, f); err != nil {
		slog.Error("export failed", "token", token, "error", err)
		return "Something went wrong exporting the ledger. Please try again."
	}

	return fmt.Sprintf("Ledger exported to %s", d.exportPath)
}

// shortHash returns the leading fingerprint characters for display.
func shortHash(fingerprint string) string {
	if len(fingerprint) <= shortHashLen {
		return fingerprint
	}
	return fingerprint[:shortHashLen]
}
