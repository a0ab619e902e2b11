package tui

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlashTimer_defaultTTL(t *testing.T) {
	assert.Equal(t, DefaultFlashTTL, NewFlashTimer(0).TTL())
	assert.Equal(t, 6*time.Second, DefaultFlashTTL)
	assert.Equal(t, time.Second, NewFlashTimer(time.Second).TTL())
}

func TestFlashTimer_fires(t *testing.T) {
	f := NewFlashTimer(5 * time.Millisecond)

	cmd := f.Schedule(context.Background(), 3)
	require.NotNil(t, cmd)
	assert.True(t, f.Pending())

	assert.Equal(t, flashExpiredMsg{seq: 3}, cmd())
}

func TestFlashTimer_supersede(t *testing.T) {
	f := NewFlashTimer(time.Hour)

	first := f.Schedule(context.Background(), 1)
	_ = f.Schedule(context.Background(), 2)

	done := make(chan any, 1)
	go func() { done <- first() }()

	select {
	case msg := <-done:
		assert.Nil(t, msg, "superseded expiry must not deliver a message")
	case <-time.After(time.Second):
		t.Fatal("superseded timer did not return")
	}
}

func TestFlashTimer_Stop(t *testing.T) {
	f := NewFlashTimer(time.Hour)
	cmd := f.Schedule(context.Background(), 1)

	f.Stop()

	assert.False(t, f.Pending())
	assert.Nil(t, cmd())
}

func TestFlashTimer_parentCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	f := NewFlashTimer(time.Hour)
	cmd := f.Schedule(ctx, 1)

	cancel()

	assert.Nil(t, cmd())
}

func TestFlashTimer_StopIdle(t *testing.T) {
	f := NewFlashTimer(time.Second)
	f.Stop() // should not panic
	assert.False(t, f.Pending())
}
