package archive

import (
	"context"
	"encoding/json"
	"log"

	"drivethru/internal/domain"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	ArchiveOrder(ctx context.Context, order *domain.OrderSession) error
}

var _ StoreInterface = (*PostgresStore)(nil)

type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("[archive] starting archive consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[archive] error reading message: %v", err)
			continue
		}

		var msg domain.ArchiveMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("[archive] error unmarshaling message: %v", err)
			continue
		}

		if msg.Type == domain.ArchiveMessageType {
			c.ProcessFinalized(ctx, msg)
		}
	}
}

func (c *Consumer) ProcessFinalized(ctx context.Context, msg domain.ArchiveMessage) {
	log.Printf("[archive] archiving order %s (session=%s, restaurant=%d, total=%.2f)",
		msg.Order.ID, msg.Order.SessionID, msg.Order.RestaurantID, msg.Order.TotalAmount)

	if err := c.Store.ArchiveOrder(ctx, &msg.Order); err != nil {
		log.Printf("[archive] error archiving order %s: %v", msg.Order.ID, err)
		return
	}

	log.Printf("[archive] successfully archived order %s", msg.Order.ID)
}
