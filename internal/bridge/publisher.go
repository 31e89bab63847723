package bridge

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/nuwan-labs/project-buddy/internal/notify"
)

// publishTimeout bounds how long a scheduling-context job may spend handing
// an event across the context boundary. The job never blocks beyond it.
const publishTimeout = 2 * time.Second

// Publisher is the scheduling context's side of the bridge. Broadcast
// publishes the event onto the redis channel the API process pumps from;
// a failed publish is warned about and disregarded, the job that produced
// the event is complete either way.
type Publisher struct {
	rdb *redis.Client
}

func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

func (p *Publisher) Broadcast(event notify.Event) {
	payload, err := event.Marshal()
	if err != nil {
		log.Error().Err(err).Str("type", string(event.Type)).Msg("bridge: failed to marshal event")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := p.rdb.Publish(ctx, notify.BridgeChannel, payload).Err(); err != nil {
		log.Warn().Err(err).Str("type", string(event.Type)).Msg("bridge: broadcast dropped, primary context unreachable")
	}
}
