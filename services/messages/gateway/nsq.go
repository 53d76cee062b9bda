package gateway

import (
	"context"

	"github.com/piresc/smsmock/internal/pkg/logger"
	"github.com/piresc/smsmock/internal/pkg/models"
)

// Publisher is the subset of the NSQ producer the gateway needs
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// NSQGateway publishes message events to NSQ
type NSQGateway struct {
	publisher Publisher
	topic     string
}

// NewNSQGateway creates a message gateway. A nil publisher turns publishing
// into a no-op.
func NewNSQGateway(publisher Publisher, cfg *models.Config) *NSQGateway {
	return &NSQGateway{
		publisher: publisher,
		topic:     cfg.NSQ.Topic,
	}
}

// PublishMessageLogged announces a newly stored message
func (g *NSQGateway) PublishMessageLogged(ctx context.Context, event *models.MessageEvent) error {
	if g.publisher == nil {
		return nil
	}

	if err := g.publisher.Publish(g.topic, event); err != nil {
		return err
	}

	logger.Debug("Published message event",
		logger.String("topic", g.topic),
		logger.String("message_id", event.MessageID.String()))
	return nil
}
