package security

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/portfolio/contact-api/internal/core/domain"
	"github.com/portfolio/contact-api/internal/infrastructure/queue"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(nil)
	ctx := context.Background()

	for _, pw := range []string{"pw123", "", "correct horse battery staple", "ünïcødé"} {
		hash, err := h.Hash(ctx, pw)
		require.NoError(t, err)
		assert.NotEqual(t, pw, hash)
		assert.True(t, h.Compare(ctx, pw, hash), "password %q should match its hash", pw)
		assert.False(t, h.Compare(ctx, pw+"x", hash))
	}
}

func TestBcryptHasher_UsesFixedCost(t *testing.T) {
	hash, err := NewBcryptHasher(nil).Hash(context.Background(), "secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, DefaultCost, cost)
}

func TestBcryptHasher_SaltsEachHash(t *testing.T) {
	h := NewBcryptHasher(nil)
	a, err := h.Hash(context.Background(), "same")
	require.NoError(t, err)
	b, err := h.Hash(context.Background(), "same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestBcryptHasher_CompareMalformedHash(t *testing.T) {
	assert.False(t, NewBcryptHasher(nil).Compare(context.Background(), "pw", "not-a-hash"))
}

func TestBcryptHasher_TooLongPasswordIsValidationError(t *testing.T) {
	h := NewBcryptHasher(nil)
	for _, pw := range []string{strings.Repeat("a", 100), strings.Repeat("ü", 40)} {
		_, err := h.Hash(context.Background(), pw)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.NotErrorIs(t, err, domain.ErrHashing)
	}

	_, err := h.Hash(context.Background(), strings.Repeat("ü", 36))
	assert.NoError(t, err)
}

func TestBcryptHasher_RunsOnPool(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool := queue.NewPool(2, zerolog.Nop())
	pool.Start(ctx)
	h := NewBcryptHasher(pool)

	hash, err := h.Hash(ctx, "pooled")
	require.NoError(t, err)
	assert.True(t, h.Compare(ctx, "pooled", hash))
}

type stoppedRunner struct{}

func (stoppedRunner) Submit(context.Context, func()) error { return queue.ErrPoolStopped }

func TestBcryptHasher_CancelledRequestStillHashes(t *testing.T) {
	poolCtx, stop := context.WithCancel(context.Background())
	defer stop()
	pool := queue.NewPool(1, zerolog.Nop())
	pool.Start(poolCtx)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := NewBcryptHasher(pool)
	hash, err := h.Hash(ctx, "pw")
	require.NoError(t, err)
	assert.True(t, h.Compare(ctx, "pw", hash))
}

func TestBcryptHasher_StoppedRunner(t *testing.T) {
	h := NewBcryptHasher(stoppedRunner{})

	_, err := h.Hash(context.Background(), "pw")
	assert.ErrorIs(t, err, domain.ErrHashing)
	assert.False(t, h.Compare(context.Background(), "pw", "$2a$10$abcdefghijklmnopqrstuv"))
}
