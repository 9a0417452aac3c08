package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/skelectricals/backend/internal/domain"
	"github.com/skelectricals/backend/internal/logger"
	"github.com/skelectricals/backend/internal/model"
	"github.com/skelectricals/backend/internal/repository"
)

// ContactService handles contact/quote form submissions.
type ContactService interface {
	// Submit stores a new contact request from the public form
	Submit(ctx context.Context, req *model.CreateContactRequest) (*domain.ContactRequest, error)

	// List retrieves all contact requests for admins, newest first
	List(ctx context.Context) ([]*domain.ContactRequest, error)

	// Resolve flips the resolved flag on a request
	Resolve(ctx context.Context, id uuid.UUID, resolved bool) (*domain.ContactRequest, error)
}

type contactService struct {
	repo   repository.ContactRepository
	logger *logger.Logger
}

// NewContactService creates a contact service
func NewContactService(repo repository.ContactRepository, log *logger.Logger) ContactService {
	return &contactService{repo: repo, logger: log}
}

func (s *contactService) Submit(ctx context.Context, req *model.CreateContactRequest) (*domain.ContactRequest, error) {
	contact := req.ToContactRequest()
	if err := contact.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}

	s.logger.Infow("received contact request", "email", contact.Email, "service", contact.ServiceType)
	return contact, nil
}

func (s *contactService) List(ctx context.Context) ([]*domain.ContactRequest, error) {
	return s.repo.List(ctx)
}

func (s *contactService) Resolve(ctx context.Context, id uuid.UUID, resolved bool) (*domain.ContactRequest, error) {
	return s.repo.SetResolved(ctx, id, resolved)
}
