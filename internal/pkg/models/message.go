package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Message directions
const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

// Message statuses
const (
	MessageStatusQueued    = "queued"
	MessageStatusSent      = "sent"
	MessageStatusDelivered = "delivered"
	MessageStatusFailed    = "failed"
	MessageStatusReceived  = "received"
)

const (
	MaxMessageBodyLen = 1600
	SystemSender      = "SYSTEM"
)

// Message is a logged SMS belonging to a project
type Message struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	ProjectID   uuid.UUID  `json:"project" db:"project_id"`
	From        string     `json:"from" db:"from_number"`
	To          string     `json:"to" db:"to_number"`
	Body        string     `json:"body" db:"body"`
	Direction   string     `json:"direction" db:"direction"`
	Status      string     `json:"status" db:"status"`
	Metadata    Metadata   `json:"metadata,omitempty" db:"metadata"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty" db:"delivered_at"`
}

// SendMessageRequest represents a request to log an outbound message
type SendMessageRequest struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Body     string   `json:"body"`
	Metadata Metadata `json:"metadata"`
}

// DeleteMessagesResult reports how many messages a bulk delete removed
type DeleteMessagesResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// MessageEvent is published whenever a message is logged
type MessageEvent struct {
	MessageID uuid.UUID `json:"message_id"`
	ProjectID uuid.UUID `json:"project_id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Direction string    `json:"direction"`
	Status    string    `json:"status"`
	IsOTP     bool      `json:"is_otp"`
	CreatedAt time.Time `json:"created_at"`
}

// Metadata is free-form JSON attached to a message, stored as JSONB
type Metadata map[string]interface{}

// Value implements driver.Valuer
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner
func (m *Metadata) Scan(src interface{}) error {
	if src == nil {
		*m = nil
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported metadata type %T", src)
	}
	return json.Unmarshal(raw, m)
}

// IsOTP reports whether the metadata marks an OTP audit message
func (m Metadata) IsOTP() bool {
	isOTP, _ := m["isOTP"].(bool)
	return isOTP
}
