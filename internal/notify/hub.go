package notify

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// subscriberBuffer is the per-subscriber channel depth. A subscriber whose
// buffer is full at broadcast time counts as dead and is pruned.
const subscriberBuffer = 16

// Subscription is a live client registration. Ch yields marshaled events
// until the subscription is removed, at which point Done is closed. Ch itself
// is never closed, so a broadcast racing a removal can never panic.
type Subscription struct {
	ID   uuid.UUID
	Ch   chan []byte
	done chan struct{}
	once sync.Once
}

// Done is closed when the subscription has been removed from the hub,
// whether by Unsubscribe or by broadcast-side pruning.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Hub is the in-memory subscriber registry of the primary context. The mutex
// guards registry structure only; delivery happens outside it on a snapshot.
type Hub struct {
	mu   sync.Mutex
	subs map[uuid.UUID]*Subscription
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uuid.UUID]*Subscription)}
}

func (h *Hub) Subscribe() *Subscription {
	sub := &Subscription{
		ID:   uuid.New(),
		Ch:   make(chan []byte, subscriberBuffer),
		done: make(chan struct{}),
	}

	h.mu.Lock()
	h.subs[sub.ID] = sub
	total := len(h.subs)
	h.mu.Unlock()

	log.Info().Str("subscription", sub.ID.String()).Int("total", total).Msg("ws client subscribed")
	return sub
}

func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	_, ok := h.subs[sub.ID]
	if ok {
		delete(h.subs, sub.ID)
	}
	total := len(h.subs)
	h.mu.Unlock()

	sub.once.Do(func() { close(sub.done) })

	if ok {
		log.Info().Str("subscription", sub.ID.String()).Int("total", total).Msg("ws client unsubscribed")
	}
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Broadcast delivers the event to every subscriber live at call time.
// Delivery is non-blocking: a subscriber that cannot accept the message is
// removed from the registry as part of this call, never retried or queued.
// Broadcasting to zero subscribers is a no-op.
func (h *Hub) Broadcast(event Event) {
	payload, err := event.Marshal()
	if err != nil {
		log.Error().Err(err).Str("type", string(event.Type)).Msg("failed to marshal event")
		return
	}

	h.mu.Lock()
	snapshot := make([]*Subscription, 0, len(h.subs))
	for _, sub := range h.subs {
		snapshot = append(snapshot, sub)
	}
	h.mu.Unlock()

	var dead []*Subscription
	for _, sub := range snapshot {
		select {
		case sub.Ch <- payload:
		default:
			dead = append(dead, sub)
		}
	}

	for _, sub := range dead {
		log.Warn().Str("subscription", sub.ID.String()).Msg("dropping unresponsive ws client")
		h.Unsubscribe(sub)
	}
}
