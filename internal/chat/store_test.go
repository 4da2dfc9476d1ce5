package chat

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreContextRoundTrip(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Close()
	ctx := context.Background()

	// A user we have never seen gets a fresh context.
	sc, err := s.Context(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, sc)
	assert.Empty(t, sc.SelectedMall)

	sc.SelectedMall = "Orion Mall"
	sc.SelectedMallID = 2
	require.NoError(t, s.SetContext(ctx, "u1", sc))

	got, err := s.Context(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Orion Mall", got.SelectedMall)
	assert.Equal(t, int64(2), got.SelectedMallID)

	// Users are isolated from each other.
	other, err := s.Context(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, other.SelectedMall)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Close()
	ctx := context.Background()

	sc, err := s.Context(ctx, "u1")
	require.NoError(t, err)
	require.NoError(t, s.SetContext(ctx, "u1", sc))

	// Mutating the returned value must not leak into the store.
	sc.SelectedMall = "Phoenix Marketcity"

	got, err := s.Context(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got.SelectedMall)
}

func TestMemoryStorePendingBooking(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Close()
	ctx := context.Background()

	pb, err := s.PendingBooking(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, pb)

	require.NoError(t, s.SetPendingBooking(ctx, "u1", &PendingBooking{
		SlotID:   7,
		MallName: "Orion Mall",
	}))

	pb, err = s.PendingBooking(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, pb)
	assert.Equal(t, int64(7), pb.SlotID)

	require.NoError(t, s.ClearPendingBooking(ctx, "u1"))

	pb, err = s.PendingBooking(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, pb)
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore(10 * time.Millisecond)
	defer s.Close()
	ctx := context.Background()

	sc, err := s.Context(ctx, "u1")
	require.NoError(t, err)
	sc.SelectedMall = "Orion Mall"
	require.NoError(t, s.SetContext(ctx, "u1", sc))

	time.Sleep(20 * time.Millisecond)

	// Reads past the TTL start over even before the janitor sweeps.
	got, err := s.Context(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got.SelectedMall)
}

func TestMemoryStoreLockSerializesPerUser(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Close()

	var (
		mu      sync.Mutex
		current int
		max     int
	)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := s.Lock("u1")
			defer unlock()

			mu.Lock()
			current++
			if current > max {
				max = current
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			current--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, max, "turns of the same user must not interleave")
}
