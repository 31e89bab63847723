package notify

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// BridgeChannel is the redis pub/sub channel the scheduling context publishes
// events on. The API process runs RunPump to fan them out to live clients.
const BridgeChannel = "project-buddy:events"

// RunPump subscribes to the bridge channel and forwards every decoded event
// into the hub. It blocks until ctx is cancelled; malformed payloads are
// logged and dropped so one bad message cannot stall the stream.
func RunPump(ctx context.Context, rdb *redis.Client, hub *Hub) {
	pubsub := rdb.Subscribe(ctx, BridgeChannel)
	defer pubsub.Close()

	log.Info().Str("channel", BridgeChannel).Msg("event pump started")

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("event pump stopped")
			return
		case msg, ok := <-ch:
			if !ok {
				log.Warn().Msg("bridge subscription closed")
				return
			}
			event, err := UnmarshalEvent([]byte(msg.Payload))
			if err != nil {
				log.Warn().Err(err).Msg("dropping malformed bridge event")
				continue
			}
			hub.Broadcast(event)
		}
	}
}
