package archive

import (
	"context"
	"encoding/json"
	"time"

	"drivethru/internal/domain"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// PublishFinalized emits the archival intent for a finalized order. The
// order ID keys the message so replays of the same order land on the same
// partition.
func (p *KafkaPublisher) PublishFinalized(ctx context.Context, order *domain.OrderSession) error {
	msg := domain.ArchiveMessage{
		Type:      domain.ArchiveMessageType,
		Order:     *order,
		Timestamp: time.Now().UTC(),
	}
	payload, _ := json.Marshal(msg)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.ID),
		Value: payload,
	})
}
