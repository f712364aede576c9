package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_SubscribeAndBroadcast(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe()
	defer cleanup()

	assert.Equal(t, 1, hub.SubscriberCount())

	hub.Broadcast(Event{Type: TypeImportCompleted, Data: "batch-1"})

	select {
	case event := <-ch:
		assert.Equal(t, TypeImportCompleted, event.Type)
		assert.Equal(t, "batch-1", event.Data)
	case <-time.After(time.Second):
		t.Fatal("expected event, got none")
	}
}

func TestHub_CleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe()
	require.Equal(t, 1, hub.SubscriberCount())

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount())

	// Second call is a no-op.
	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount())
}

func TestHub_BroadcastNeverBlocks(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe()
	defer cleanup()

	done := make(chan struct{})
	go func() {
		// More events than the channel buffers; extras are dropped.
		for i := 0; i < 100; i++ {
			hub.Broadcast(Event{Type: TypeEarningUpdated})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast blocked on a slow subscriber")
	}
}

func TestHub_MultipleSubscribers(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe()
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe()
	defer cleanup2()

	hub.Broadcast(Event{Type: TypeEarningUpdated})

	for _, ch := range []chan Event{ch1, ch2} {
		select {
		case event := <-ch:
			assert.Equal(t, TypeEarningUpdated, event.Type)
		case <-time.After(time.Second):
			t.Fatal("subscriber missed the event")
		}
	}
}
