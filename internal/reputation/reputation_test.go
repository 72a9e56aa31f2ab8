package reputation_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcomlabs/trustledger/internal/ledger"
	"github.com/dotcomlabs/trustledger/internal/reputation"
	"github.com/dotcomlabs/trustledger/internal/store"
	"github.com/dotcomlabs/trustledger/internal/testutil"
)

var base = time.Unix(1700000000, 0)

// setup opens a fresh store and returns the service and engine over it.
func setup(t *testing.T) (*ledger.Service, *reputation.Engine) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "trust.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	svc := ledger.NewService(s, testutil.NewStepClock(base, time.Second))
	return svc, reputation.NewEngine(s)
}

// recordN records n commitments for user and completes the first k.
func recordN(t *testing.T, svc *ledger.Service, user string, n, k int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < n; i++ {
		fingerprint, err := svc.Record(ctx, user, "task", 1, "2025-11-01")
		require.NoError(t, err)
		if i < k {
			require.NoError(t, svc.Complete(ctx, fingerprint))
		}
	}
}

func TestScore_EmptyHistoryIsZero(t *testing.T) {
	_, engine := setup(t)

	score, err := engine.Score(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestScore_Rounding(t *testing.T) {
	tests := []struct {
		name string
		n, k int
		want float64
	}{
		{"one of three", 3, 1, 33.33},
		{"two of three", 3, 2, 66.67},
		{"all of seven", 7, 7, 100.0},
		{"none of four", 4, 0, 0.0},
		{"one of two", 2, 1, 50.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, engine := setup(t)
			recordN(t, svc, "Ana", tt.n, tt.k)

			score, err := engine.Score(context.Background(), "Ana")
			require.NoError(t, err)
			assert.Equal(t, tt.want, score)
		})
	}
}

func TestScore_IgnoresOtherUsers(t *testing.T) {
	svc, engine := setup(t)
	recordN(t, svc, "Ana", 2, 2)
	recordN(t, svc, "Luis", 2, 0)

	score, err := engine.Score(context.Background(), "Ana")
	require.NoError(t, err)
	assert.Equal(t, 100.0, score)
}

// TestScore_AnaScenario walks the full record/complete/record sequence
// and checks the score after every step.
func TestScore_AnaScenario(t *testing.T) {
	svc, engine := setup(t)
	ctx := context.Background()

	f1, err := svc.Record(ctx, "Ana", "Pay rent", 500.0, "2025-11-01")
	require.NoError(t, err)

	score, err := engine.Score(ctx, "Ana")
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)

	require.NoError(t, svc.Complete(ctx, f1))

	score, err = engine.Score(ctx, "Ana")
	require.NoError(t, err)
	assert.Equal(t, 100.0, score)

	_, err = svc.Record(ctx, "Ana", "Clean house", 0.0, "2025-11-05")
	require.NoError(t, err)

	score, err = engine.Score(ctx, "Ana")
	require.NoError(t, err)
	assert.Equal(t, 50.0, score)
}
