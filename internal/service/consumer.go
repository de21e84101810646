package service

import (
	"context"
	"encoding/json"
	"log"

	"qrmenu/internal/domain"

	"github.com/segmentio/kafka-go"
)

// Consumer folds menu events from kafka into the popularity store and
// the durable event log.
type Consumer struct {
	Reader *kafka.Reader
	Store  PopularityStore
	Events ItemEventRepository
}

func NewConsumer(reader *kafka.Reader, store PopularityStore, events ItemEventRepository) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
		Events: events,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("[menu-svc] starting menu events consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[menu-svc] error reading message: %v", err)
			continue
		}

		var msg domain.EventMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("[menu-svc] error unmarshaling message: %v", err)
			continue
		}

		c.ProcessEvent(ctx, msg)
	}
}

// ProcessEvent counts cart-add and item-view events per restaurant per
// day. Other event types (leads) carry no ranking signal and are
// skipped.
func (c *Consumer) ProcessEvent(ctx context.Context, msg domain.EventMessage) {
	if msg.Type != domain.EventCartAdd && msg.Type != domain.EventItemView {
		return
	}
	if msg.RestaurantID == "" || msg.ItemID == "" {
		return
	}

	if err := c.Store.RecordItemEvent(ctx, msg.RestaurantID, msg.ItemID, msg.Timestamp); err != nil {
		log.Printf("[menu-svc] error recording %s event: %v", msg.Type, err)
	}

	if c.Events == nil {
		return
	}
	if err := c.Events.InsertItemEvent(&domain.ItemEvent{
		RestaurantID: msg.RestaurantID,
		ItemID:       msg.ItemID,
		Type:         msg.Type,
		CreatedAt:    msg.Timestamp,
	}); err != nil {
		log.Printf("[menu-svc] error persisting %s event: %v", msg.Type, err)
	}
}
