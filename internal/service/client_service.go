package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/skelectricals/backend/internal/domain"
	"github.com/skelectricals/backend/internal/logger"
	"github.com/skelectricals/backend/internal/model"
	"github.com/skelectricals/backend/internal/repository"
)

// ClientService manages client records on behalf of admins.
type ClientService interface {
	Create(ctx context.Context, req *model.CreateClientRequest) (*domain.Client, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	GetByCompanyName(ctx context.Context, companyName string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateClientRequest) (*domain.Client, error)
}

type clientService struct {
	repo   repository.ClientRepository
	logger *logger.Logger
}

// NewClientService creates a client service
func NewClientService(repo repository.ClientRepository, log *logger.Logger) ClientService {
	return &clientService{repo: repo, logger: log}
}

func (s *clientService) Create(ctx context.Context, req *model.CreateClientRequest) (*domain.Client, error) {
	client := req.ToClient()
	if err := client.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}

	s.logger.Infow("created client", "company", client.CompanyName)
	return client, nil
}

func (s *clientService) Get(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *clientService) GetByCompanyName(ctx context.Context, companyName string) (*domain.Client, error) {
	return s.repo.GetByCompanyName(ctx, companyName)
}

func (s *clientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.repo.List(ctx)
}

func (s *clientService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateClientRequest) (*domain.Client, error) {
	client, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		client.CompanyName = *req.CompanyName
	}
	if req.GSTNumber != nil {
		client.GSTNumber = *req.GSTNumber
	}
	if req.BillingAddress != nil {
		client.BillingAddress = *req.BillingAddress
	}
	if req.ContactName != nil {
		client.ContactName = *req.ContactName
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = *req.Email
	}

	if err := client.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}
