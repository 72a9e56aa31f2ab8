// Package reputation turns a user's commitment history into a trust
// score: the percentage of commitments with COMPLETED status, rounded
// to two decimals.
package reputation

import (
	"context"
	"fmt"
	"math"

	"github.com/dotcomlabs/trustledger/internal/ledger"
)

// History is the read-only store view the engine needs.
// Implemented by *store.Store.
type History interface {
	QueryByUser(ctx context.Context, user string) ([]ledger.Commitment, error)
}

// Engine computes trust scores. It only ever reads.
type Engine struct {
	history History
}

// NewEngine creates a reputation engine over the given history.
func NewEngine(history History) *Engine {
	return &Engine{history: history}
}

// Score returns the user's trust score in [0, 100].
//
// A user with no recorded commitments scores 0. This is a documented
// sentinel: an untested user is indistinguishable from a 0%-performing
// one. Known limitation, kept deliberately.
//
// Otherwise the score is round(100 * completed / total) to two decimal
// places, using half-away-from-zero rounding (math.Round).
func (e *Engine) Score(ctx context.Context, user string) (float64, error) {
	commitments, err := e.history.QueryByUser(ctx, user)
	if err != nil {
		return 0, fmt.Errorf("score %q: %w", user, err)
	}

	if len(commitments) == 0 {
		return 0, nil
	}

	completed := 0
	for _, c := range commitments {
		if c.Completed() {
			completed++
		}
	}

	score := 100 * float64(completed) / float64(len(commitments))
	return math.Round(score*100) / 100, nil
}
