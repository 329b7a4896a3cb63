package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a settable clock for driving TTL transitions
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// counter wraps a compute function and counts invocations
type counter struct {
	calls int
	value string
	err   error
}

func (c *counter) compute(context.Context) (string, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	return c.value, nil
}

func TestKey(t *testing.T) {
	assert.Equal(t, "deals:NO1:private:5:16000", Key("deals", "NO1", "private", "5", "16000"))
	assert.Equal(t, "prices", Key("prices"))
}

func TestGetOrCompute_MissThenFresh(t *testing.T) {
	clock := newFakeClock()
	svc := NewService(NewMemoryStore()).WithClock(clock.Now)
	ctx := context.Background()
	src := &counter{value: "v1"}

	// First call misses and computes
	res, err := GetOrCompute(ctx, svc, "k", time.Hour, src.compute)
	require.NoError(t, err)
	assert.Equal(t, "v1", res.Value)
	assert.False(t, res.FromCache)
	assert.False(t, res.Stale)
	assert.Equal(t, 1, src.calls)

	// Half a TTL later the entry is still fresh
	clock.Advance(30 * time.Minute)
	res, err = GetOrCompute(ctx, svc, "k", time.Hour, src.compute)
	require.NoError(t, err)
	assert.Equal(t, "v1", res.Value)
	assert.True(t, res.FromCache)
	assert.False(t, res.Stale)
	assert.Equal(t, 1, src.calls, "fresh hit must not recompute")
}

func TestGetOrCompute_ExpiredEntryIsRecomputed(t *testing.T) {
	clock := newFakeClock()
	svc := NewService(NewMemoryStore()).WithClock(clock.Now)
	ctx := context.Background()
	src := &counter{value: "v1"}

	_, err := GetOrCompute(ctx, svc, "k", time.Hour, src.compute)
	require.NoError(t, err)

	clock.Advance(90 * time.Minute)
	src.value = "v2"
	res, err := GetOrCompute(ctx, svc, "k", time.Hour, src.compute)
	require.NoError(t, err)
	assert.Equal(t, "v2", res.Value)
	assert.False(t, res.FromCache)
	assert.Equal(t, 2, src.calls)

	// The recompute reset the entry age
	clock.Advance(30 * time.Minute)
	res, err = GetOrCompute(ctx, svc, "k", time.Hour, src.compute)
	require.NoError(t, err)
	assert.True(t, res.FromCache)
	assert.Equal(t, "v2", res.Value)
	assert.Equal(t, 2, src.calls)
}

func TestGetOrCompute_ServesStaleWhenRecomputeFails(t *testing.T) {
	clock := newFakeClock()
	svc := NewService(NewMemoryStore()).WithClock(clock.Now)
	ctx := context.Background()
	src := &counter{value: "v1"}

	_, err := GetOrCompute(ctx, svc, "k", time.Hour, src.compute)
	require.NoError(t, err)

	clock.Advance(90 * time.Minute)
	src.err = errors.New("upstream down")
	res, err := GetOrCompute(ctx, svc, "k", time.Hour, src.compute)
	require.NoError(t, err, "a stale entry must absorb the compute failure")
	assert.Equal(t, "v1", res.Value)
	assert.True(t, res.FromCache)
	assert.True(t, res.Stale)

	// Once the upstream recovers the entry is replaced
	src.err = nil
	src.value = "v2"
	res, err = GetOrCompute(ctx, svc, "k", time.Hour, src.compute)
	require.NoError(t, err)
	assert.Equal(t, "v2", res.Value)
	assert.False(t, res.Stale)
}

func TestGetOrCompute_PropagatesErrorWithoutPriorEntry(t *testing.T) {
	svc := NewService(NewMemoryStore()).WithClock(newFakeClock().Now)
	src := &counter{err: errors.New("upstream down")}

	_, err := GetOrCompute(context.Background(), svc, "k", time.Hour, src.compute)
	assert.ErrorContains(t, err, "upstream down")
}

func TestGetOrCompute_BoundaryAgeStillFresh(t *testing.T) {
	clock := newFakeClock()
	svc := NewService(NewMemoryStore()).WithClock(clock.Now)
	ctx := context.Background()
	src := &counter{value: "v1"}

	_, err := GetOrCompute(ctx, svc, "k", time.Hour, src.compute)
	require.NoError(t, err)

	// Age == ttl counts as fresh; only strictly older entries expire
	clock.Advance(time.Hour)
	res, err := GetOrCompute(ctx, svc, "k", time.Hour, src.compute)
	require.NoError(t, err)
	assert.True(t, res.FromCache)
	assert.Equal(t, 1, src.calls)
}

func TestGetOrCompute_KeysAreIndependent(t *testing.T) {
	clock := newFakeClock()
	svc := NewService(NewMemoryStore()).WithClock(clock.Now)
	ctx := context.Background()
	first := &counter{value: "a"}
	second := &counter{value: "b"}

	resA, err := GetOrCompute(ctx, svc, Key("deals", "NO1"), time.Hour, first.compute)
	require.NoError(t, err)
	resB, err := GetOrCompute(ctx, svc, Key("deals", "NO2"), time.Hour, second.compute)
	require.NoError(t, err)

	assert.Equal(t, "a", resA.Value)
	assert.Equal(t, "b", resB.Value)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestRefresh_OverwritesFreshEntry(t *testing.T) {
	clock := newFakeClock()
	svc := NewService(NewMemoryStore()).WithClock(clock.Now)
	ctx := context.Background()
	src := &counter{value: "v1"}

	_, err := GetOrCompute(ctx, svc, "k", time.Hour, src.compute)
	require.NoError(t, err)

	src.value = "v2"
	value, err := Refresh(ctx, svc, "k", src.compute)
	require.NoError(t, err)
	assert.Equal(t, "v2", value)
	assert.Equal(t, 2, src.calls)

	res, err := GetOrCompute(ctx, svc, "k", time.Hour, src.compute)
	require.NoError(t, err)
	assert.True(t, res.FromCache)
	assert.Equal(t, "v2", res.Value)
}

func TestRefresh_FailureLeavesEntryIntact(t *testing.T) {
	clock := newFakeClock()
	svc := NewService(NewMemoryStore()).WithClock(clock.Now)
	ctx := context.Background()
	src := &counter{value: "v1"}

	_, err := GetOrCompute(ctx, svc, "k", time.Hour, src.compute)
	require.NoError(t, err)

	src.err = errors.New("upstream down")
	_, err = Refresh(ctx, svc, "k", src.compute)
	require.Error(t, err)

	src.err = nil
	res, err := GetOrCompute(ctx, svc, "k", time.Hour, src.compute)
	require.NoError(t, err)
	assert.True(t, res.FromCache)
	assert.Equal(t, "v1", res.Value)
}

func TestClearAndInvalidate(t *testing.T) {
	clock := newFakeClock()
	svc := NewService(NewMemoryStore()).WithClock(clock.Now)
	ctx := context.Background()
	src := &counter{value: "v1"}

	_, err := GetOrCompute(ctx, svc, "a", time.Hour, src.compute)
	require.NoError(t, err)
	_, err = GetOrCompute(ctx, svc, "b", time.Hour, src.compute)
	require.NoError(t, err)
	require.Equal(t, 2, src.calls)

	require.NoError(t, svc.Invalidate(ctx, "a"))
	_, err = GetOrCompute(ctx, svc, "a", time.Hour, src.compute)
	require.NoError(t, err)
	assert.Equal(t, 3, src.calls, "invalidated key must recompute")

	require.NoError(t, svc.Clear(ctx))
	_, err = GetOrCompute(ctx, svc, "b", time.Hour, src.compute)
	require.NoError(t, err)
	assert.Equal(t, 4, src.calls, "cleared keys must recompute")
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, found, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	entry := Entry{StoredAt: time.Now(), Value: []byte(`"hello"`)}
	require.NoError(t, store.Set(ctx, "k", entry))

	got, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, entry.Value, got.Value)

	require.NoError(t, store.Delete(ctx, "k"))
	_, found, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}
