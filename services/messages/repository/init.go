package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/smsmock/internal/pkg/models"
)

// MessageRepo implements messages.MessageRepo over Postgres
type MessageRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewMessageRepo creates a new message repository instance
func NewMessageRepo(cfg *models.Config, db *sqlx.DB) *MessageRepo {
	return &MessageRepo{
		cfg: cfg,
		db:  db,
	}
}
