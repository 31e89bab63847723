package notify

import (
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestBroadcast_DeliversToAllSubscribers(t *testing.T) {
	hub := NewHub()
	a := hub.Subscribe()
	b := hub.Subscribe()

	hub.Broadcast(NewSummaryReadyEvent("2026-02-24"))

	for _, sub := range []*Subscription{a, b} {
		payload := <-sub.Ch
		var got Event
		assert.NoError(t, json.Unmarshal(payload, &got))
		assert.Equal(t, EventSummaryReady, got.Type)
		assert.Equal(t, "2026-02-24", got.Data["date"])
	}
}

func TestBroadcast_ZeroSubscribers(t *testing.T) {
	hub := NewHub()

	assert.NotPanics(t, func() {
		hub.Broadcast(NewActivityPopupEvent())
	})
	assert.Equal(t, 0, hub.Count())
}

func TestBroadcast_PrunesUnresponsiveSubscriber(t *testing.T) {
	hub := NewHub()
	slow := hub.Subscribe()
	live := hub.Subscribe()

	// Fill the slow subscriber's buffer; it never drains.
	for i := 0; i < subscriberBuffer; i++ {
		hub.Broadcast(NewActivityPopupEvent())
		<-live.Ch
	}

	// The next broadcast cannot be delivered to the slow client, so it is
	// removed as a side effect of that same call.
	hub.Broadcast(NewSummaryReadyEvent("2026-02-24"))

	assert.Equal(t, 1, hub.Count())
	assert.NotNil(t, <-live.Ch)

	// The pruned subscription is signalled through Done, not a channel close.
	select {
	case <-slow.Done():
	default:
		t.Fatal("pruned subscription not marked done")
	}
}

func TestUnsubscribe_Idempotent(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()

	hub.Unsubscribe(sub)
	assert.NotPanics(t, func() { hub.Unsubscribe(sub) })
	assert.Equal(t, 0, hub.Count())
}

func TestBroadcast_ConcurrentWithUnsubscribe(t *testing.T) {
	hub := NewHub()

	subs := make([]*Subscription, 64)
	for i := range subs {
		subs[i] = hub.Subscribe()
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			hub.Broadcast(NewActivityPopupEvent())
		}
	}()
	go func() {
		defer wg.Done()
		for _, sub := range subs {
			hub.Unsubscribe(sub)
		}
	}()

	assert.NotPanics(t, wg.Wait)
	assert.Equal(t, 0, hub.Count())
}

func TestBroadcast_AfterUnsubscribe(t *testing.T) {
	hub := NewHub()
	gone := hub.Subscribe()
	stay := hub.Subscribe()
	hub.Unsubscribe(gone)

	hub.Broadcast(NewDailyNotePromptEvent("2026-02-24"))

	payload := <-stay.Ch
	var got Event
	assert.NoError(t, json.Unmarshal(payload, &got))
	assert.Equal(t, ActionShowDailyNotePrompt, got.Action)
	assert.Equal(t, 1, hub.Count())
}
