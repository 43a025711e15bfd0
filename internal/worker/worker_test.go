package worker

import (
	"context"
	"errors"
	"slices"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type series []float64

func (s series) Clone() series { return slices.Clone(s) }

type record struct {
	ID   int
	Name string
}

type fixedID string

func (f fixedID) NewID() string { return string(f) }

func TestJoinWaitsForLastSideEffect(t *testing.T) {
	var finished atomic.Bool
	h := Spawn(context.Background(), Options{}, "slow", func(_ context.Context, d time.Duration) {
		time.Sleep(d)
		finished.Store(true)
	}, 20*time.Millisecond)

	h.Join()
	assert.True(t, finished.Load())

	select {
	case <-h.Done():
	default:
		t.Fatalf("done channel should be closed after join")
	}
}

func TestSpawnClonesBundle(t *testing.T) {
	original := series{1.1, 2.2, 3.3}
	release := make(chan struct{})
	var seen series

	h := Spawn(context.Background(), Options{}, "series", func(_ context.Context, s series) {
		<-release
		seen = s
	}, original)

	original[0] = 99
	close(release)
	h.Join()

	assert.Equal(t, series{1.1, 2.2, 3.3}, seen)
}

func TestSpawnCopiesValueBundle(t *testing.T) {
	bundle := record{ID: 1, Name: "Mehul"}
	release := make(chan struct{})
	var seen record

	h := Spawn(context.Background(), Options{}, "record", func(_ context.Context, r record) {
		<-release
		seen = r
	}, bundle)

	bundle.Name = "changed"
	close(release)
	h.Join()

	assert.Equal(t, record{ID: 1, Name: "Mehul"}, seen)
}

func TestHandleIdentity(t *testing.T) {
	h := Spawn(context.Background(), Options{IDGen: fixedID("w-1"), Logger: zap.NewNop()}, "named", func(context.Context, int) {}, 0)
	h.Join()
	assert.Equal(t, "w-1", h.ID())
	assert.Equal(t, "named", h.Name())

	a := Spawn(context.Background(), Options{}, "a", func(context.Context, int) {}, 0)
	b := Spawn(context.Background(), Options{IDGen: fixedID("")}, "b", func(context.Context, int) {}, 0)
	a.Join()
	b.Join()
	require.NotEmpty(t, a.ID())
	require.NotEmpty(t, b.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestGroupRunsAll(t *testing.T) {
	var count atomic.Int32
	runners := []Runner{
		{Name: "one", Run: func(context.Context) error { count.Add(1); return nil }},
		{Name: "two", Run: func(context.Context) error { count.Add(1); return nil }},
	}

	require.NoError(t, Group{Logger: zap.NewNop()}.Run(context.Background(), runners))
	assert.Equal(t, int32(2), count.Load())
}

func TestGroupCombinesErrors(t *testing.T) {
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	var ran atomic.Bool
	runners := []Runner{
		{Name: "a", Run: func(context.Context) error { return errA }},
		{Name: "ok", Run: func(context.Context) error { ran.Store(true); return nil }},
		{Name: "b", Run: func(context.Context) error { return errB }},
	}

	err := Group{}.Run(context.Background(), runners)
	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.True(t, ran.Load())
}

func TestGroupNoRunners(t *testing.T) {
	assert.Error(t, Group{}.Run(context.Background(), nil))
}
