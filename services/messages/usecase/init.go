package usecase

import (
	"time"

	"github.com/piresc/smsmock/internal/pkg/metrics"
	"github.com/piresc/smsmock/internal/pkg/models"
	"github.com/piresc/smsmock/services/messages"
)

// MessageUC implements the message usecase
type MessageUC struct {
	messageRepo messages.MessageRepo
	messageGW   messages.MessageGW
	projects    messages.ProjectReader
	metrics     *metrics.Metrics
	cfg         *models.Config
	now         func() time.Time
}

// NewMessageUC creates a new message usecase
func NewMessageUC(
	messageRepo messages.MessageRepo,
	messageGW messages.MessageGW,
	projects messages.ProjectReader,
	m *metrics.Metrics,
	cfg *models.Config,
) *MessageUC {
	return &MessageUC{
		messageRepo: messageRepo,
		messageGW:   messageGW,
		projects:    projects,
		metrics:     m,
		cfg:         cfg,
		now:         models.Now,
	}
}
