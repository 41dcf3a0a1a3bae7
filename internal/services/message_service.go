package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tuliptour/internal/models/db_models"
	"tuliptour/internal/models/request_models"
	"tuliptour/internal/repositories"
	"tuliptour/pkg/utils"
)

type MessageServiceInterface interface {
	CreateMessage(ctx context.Context, req request_models.CreateMessageRequest) (*db_models.Message, error)
	ListMessages(ctx context.Context) ([]db_models.Message, error)
	ListMessagesByEmail(ctx context.Context, email string) ([]db_models.Message, error)
	// ReplyMessage stores the admin response, marking the message replied
	// and unread so the recipient sees it as new.
	ReplyMessage(ctx context.Context, id uuid.UUID, response string) error
	// MarkRead records that the recipient viewed the reply.
	MarkRead(ctx context.Context, id uuid.UUID) error
}

type MessageService struct {
	messageRepo repositories.MessageRepositoryInterface
	mailer      MailServiceInterface
}

func NewMessageService(messageRepo repositories.MessageRepositoryInterface, mailer MailServiceInterface) MessageServiceInterface {
	return &MessageService{messageRepo: messageRepo, mailer: mailer}
}

func (s *MessageService) CreateMessage(ctx context.Context, req request_models.CreateMessageRequest) (*db_models.Message, error) {
	message := &db_models.Message{
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		IsReplied: false,
		IsRead:    false,
	}
	if err := s.messageRepo.CreateMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return message, nil
}

func (s *MessageService) ListMessages(ctx context.Context) ([]db_models.Message, error) {
	messages, err := s.messageRepo.ListMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return messages, nil
}

func (s *MessageService) ListMessagesByEmail(ctx context.Context, email string) ([]db_models.Message, error) {
	messages, err := s.messageRepo.ListMessagesByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return messages, nil
}

func (s *MessageService) ReplyMessage(ctx context.Context, id uuid.UUID, response string) error {
	if strings.TrimSpace(response) == "" {
		return utils.ErrEmptyResponse
	}

	message, err := s.messageRepo.GetMessageByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrMessageNotFound
		}
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	if err := s.messageRepo.SaveReply(ctx, id, response, true, false); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	// Notification is best-effort; a mail failure never fails the reply.
	if s.mailer != nil {
		if err := s.mailer.SendReplyNotification(message.Email, message.Name, message.Message, response); err != nil {
			log.Printf("Failed to send reply notification to %s: %v", message.Email, err)
		}
	}
	return nil
}

func (s *MessageService) MarkRead(ctx context.Context, id uuid.UUID) error {
	if _, err := s.messageRepo.GetMessageByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrMessageNotFound
		}
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if err := s.messageRepo.MarkRead(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}
