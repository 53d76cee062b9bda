package handler

import (
	"context"

	"github.com/piresc/smsmock/internal/pkg/logger"
	"github.com/piresc/smsmock/internal/pkg/models"
	nsqpkg "github.com/piresc/smsmock/internal/pkg/nsq"
	"github.com/piresc/smsmock/services/messages"
)

// DeliveryHandler consumes message events and records simulated delivery
type DeliveryHandler struct {
	messageUC messages.MessageUC
}

// NewDeliveryHandler creates a delivery consumer handler
func NewDeliveryHandler(messageUC messages.MessageUC) *DeliveryHandler {
	return &DeliveryHandler{
		messageUC: messageUC,
	}
}

// HandleMessageLogged processes one message.logged event. Malformed events
// are dropped; store failures are returned so NSQ requeues them.
func (h *DeliveryHandler) HandleMessageLogged(body []byte) error {
	var event models.MessageEvent
	if err := nsqpkg.UnmarshalMessage(body, &event); err != nil {
		logger.Warn("Dropping malformed message event", logger.Err(err))
		return nil
	}

	return h.messageUC.MarkDelivered(context.Background(), &event)
}
