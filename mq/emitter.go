package mq

import (
	"context"
	"encoding/json"
	"log"
	"matchify/models"
	"matchify/rdx"
)

// Emit publishes a domain event (mission status change, proposal update,
// deliverable review, payment) to the notification channel.
func Emit(ctx context.Context, eventName string, content models.Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(context.Background(), "matchify-events", data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s event to Redis: %v", eventName, err)
		return
	}
}

// StartNotificationWorker consumes domain events and fans them out as
// per-user notification counters. Best effort: losing an event degrades
// badges, never mission or payment state.
func StartNotificationWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, "matchify-events")
	ch := sub.Channel()

	log.Println("[NotificationWorker] Listening for events...")

	for msg := range ch {
		var event models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[NotificationWorker] Failed to parse event: %v", err)
			continue
		}
		if event.ItemId == "" {
			continue
		}
		if err := rdx.Conn.Incr(ctx, "notif:"+event.ItemId).Err(); err != nil {
			log.Printf("[NotificationWorker] counter error: %v", err)
		}
	}
}
