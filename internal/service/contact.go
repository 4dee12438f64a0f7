package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/domain"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/repository"
	apperrors "github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/errors"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactService manages contact-form submissions.
type ContactService struct {
	repo   repository.ContactRepository
	logger *slog.Logger
}

// NewContactService creates a new contact service.
func NewContactService(repo repository.ContactRepository, logger *slog.Logger) *ContactService {
	return &ContactService{repo: repo, logger: logger}
}

// ContactInput holds a contact-form submission.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitMessage validates and stores a contact-form submission.
func (s *ContactService) SubmitMessage(ctx context.Context, input ContactInput) (*domain.ContactMessage, error) {
	if input.Name == "" || input.Email == "" || input.Subject == "" || input.Message == "" {
		return nil, apperrors.InvalidInput("All fields are required")
	}
	if !emailPattern.MatchString(input.Email) {
		return nil, apperrors.InvalidInput("Invalid email format")
	}

	msg := &domain.ContactMessage{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		Status:    domain.ContactStatusNew,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, apperrors.Internal("Error sending message", err)
	}

	s.logger.InfoContext(ctx, "contact message received",
		slog.String("message_id", msg.ID),
		slog.String("subject", msg.Subject),
	)

	return msg, nil
}

// ListMessages returns a filtered, paginated page of contact messages.
func (s *ContactService) ListMessages(ctx context.Context, filter repository.ContactFilter) ([]domain.ContactMessage, int, error) {
	messages, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list contact messages: %w", err)
	}
	return messages, total, nil
}

// UpdateMessageStatus marks a message as new, read or replied.
func (s *ContactService) UpdateMessageStatus(ctx context.Context, id string, status string) error {
	if !domain.IsValidContactStatus(status) {
		return apperrors.InvalidInput(fmt.Sprintf("Invalid status %q", status))
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update contact status: %w", err)
	}

	s.logger.InfoContext(ctx, "contact message status updated",
		slog.String("message_id", id),
		slog.String("status", status),
	)
	return nil
}

// DeleteMessage removes a contact message.
func (s *ContactService) DeleteMessage(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete contact message: %w", err)
	}

	s.logger.InfoContext(ctx, "contact message deleted", slog.String("message_id", id))
	return nil
}
