package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"prime-property/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	GetByID(ctx context.Context, id int64) (*domain.Message, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.MessageView, error)
}

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	query := r.db.Rebind(`
		INSERT INTO messages (sender_id, receiver_id, property_id, content, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`)

	return r.db.QueryRowxContext(ctx, query,
		message.SenderID, message.ReceiverID, message.PropertyID, message.Content, message.CreatedAt,
	).Scan(&message.ID)
}

func (r *messageRepository) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	var message domain.Message
	query := r.db.Rebind(`SELECT id, sender_id, receiver_id, property_id, content, created_at
		FROM messages WHERE id = ?`)

	err := r.db.GetContext(ctx, &message, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// ListForUser returns every message the user sent or received, newest first.
// Names and titles are nil when the referenced row is gone.
func (r *messageRepository) ListForUser(ctx context.Context, userID int64) ([]domain.MessageView, error) {
	messages := []domain.MessageView{}
	query := r.db.Rebind(`
		SELECT m.id, m.sender_id, m.receiver_id, m.property_id, m.content, m.created_at,
			s.name AS sender_name, rc.name AS receiver_name, p.title AS property_title
		FROM messages m
		LEFT JOIN users s ON s.id = m.sender_id
		LEFT JOIN users rc ON rc.id = m.receiver_id
		LEFT JOIN properties p ON p.id = m.property_id
		WHERE m.sender_id = ? OR m.receiver_id = ?
		ORDER BY m.created_at DESC, m.id DESC`)

	err := r.db.SelectContext(ctx, &messages, query, userID, userID)
	return messages, err
}
