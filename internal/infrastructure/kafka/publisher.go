package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/craveo/marketplace-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

// Publisher ships marketplace events to the notification topic. Implements
// domain.EventDispatcher; callers invoke it after commit and treat failures
// as log-only.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *Publisher) Dispatch(event domain.MarketplaceEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(event.RecipientID),
		Value: msg,
		Time:  time.Now(),
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
