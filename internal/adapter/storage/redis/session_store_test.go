package redis

import (
	"context"
	"testing"
	"time"

	"boltcard-gateway/internal/core/ports"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_PutAndClaim(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewSessionStore(client)
	ctx := context.Background()

	session := &ports.WithdrawSession{
		K1:        "aabbccdd00112233aabbccdd00112233",
		CardID:    uuid.New(),
		Counter:   42,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	require.NoError(t, store.Put(ctx, session, time.Minute))

	claimed, err := store.Claim(ctx, session.K1)
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, session.CardID, claimed.CardID)
	assert.Equal(t, int64(42), claimed.Counter)
}

func TestSessionStore_ClaimIsSingleUse(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewSessionStore(client)
	ctx := context.Background()

	session := &ports.WithdrawSession{K1: "k1-once", CardID: uuid.New(), Counter: 7}
	require.NoError(t, store.Put(ctx, session, time.Minute))

	first, err := store.Claim(ctx, "k1-once")
	require.NoError(t, err)
	require.NotNil(t, first)

	// The second claim loses: GETDEL already removed the key.
	second, err := store.Claim(ctx, "k1-once")
	require.NoError(t, err)
	assert.Nil(t, second)
}

func TestSessionStore_ClaimUnknownK1(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewSessionStore(client)

	claimed, err := store.Claim(context.Background(), "never-minted")
	require.NoError(t, err)
	assert.Nil(t, claimed)
}

func TestSessionStore_SessionExpires(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewSessionStore(client)
	ctx := context.Background()

	session := &ports.WithdrawSession{K1: "k1-ttl", CardID: uuid.New(), Counter: 7}
	require.NoError(t, store.Put(ctx, session, time.Second))

	s.FastForward(2 * time.Second)

	claimed, err := store.Claim(ctx, "k1-ttl")
	require.NoError(t, err)
	assert.Nil(t, claimed, "expired session should not be claimable")
}
