package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tuliptour/internal/models/db_models"
)

type MessageRepositoryInterface interface {
	CreateMessage(ctx context.Context, message *db_models.Message) error
	ListMessages(ctx context.Context) ([]db_models.Message, error)
	ListMessagesByEmail(ctx context.Context, email string) ([]db_models.Message, error)
	GetMessageByID(ctx context.Context, id uuid.UUID) (*db_models.Message, error)
	// SaveReply stores the admin response and flags in one statement.
	SaveReply(ctx context.Context, id uuid.UUID, response string, isReplied, isRead bool) error
	MarkRead(ctx context.Context, id uuid.UUID) error
}

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) CreateMessage(ctx context.Context, message *db_models.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *MessageRepository) ListMessages(ctx context.Context) ([]db_models.Message, error) {
	var messages []db_models.Message
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}

func (r *MessageRepository) ListMessagesByEmail(ctx context.Context, email string) ([]db_models.Message, error) {
	var messages []db_models.Message
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}

func (r *MessageRepository) GetMessageByID(ctx context.Context, id uuid.UUID) (*db_models.Message, error) {
	var message db_models.Message
	err := r.db.WithContext(ctx).First(&message, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *MessageRepository) SaveReply(ctx context.Context, id uuid.UUID, response string, isReplied, isRead bool) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Message{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"response":   response,
			"is_replied": isReplied,
			"is_read":    isRead,
		}).Error
}

func (r *MessageRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Message{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}
