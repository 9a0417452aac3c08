package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skelectricals/backend/internal/domain"
	ierr "github.com/skelectricals/backend/internal/errors"
	"github.com/skelectricals/backend/internal/types"
)

// InMemoryUserStore implements repository.UserRepository on maps.
type InMemoryUserStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.User
}

// NewInMemoryUserStore creates an empty in-memory user store
func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{users: make(map[uuid.UUID]*domain.User)}
}

func (s *InMemoryUserStore) Create(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return ierr.NewErrorf("user %s already exists", user.Email).
				WithHintf("A user with email %s already exists", user.Email).
				Mark(ierr.ErrAlreadyExists)
		}
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *InMemoryUserStore) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ierr.NewError("user not found").
			WithHint("User does not exist").
			Mark(ierr.ErrNotFound)
	}
	cp := *user
	return &cp, nil
}

func (s *InMemoryUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, ierr.NewError("user not found").
		WithHint("User does not exist").
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryUserStore) UpdateRole(_ context.Context, id uuid.UUID, role types.UserRole, companyName string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ierr.NewError("user not found").
			WithHint("User does not exist").
			Mark(ierr.ErrNotFound)
	}
	user.Role = role
	user.CompanyName = companyName
	user.UpdatedAt = time.Now()
	cp := *user
	return &cp, nil
}

// InMemoryClientStore implements repository.ClientRepository on maps.
type InMemoryClientStore struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]*domain.Client
}

// NewInMemoryClientStore creates an empty in-memory client store
func NewInMemoryClientStore() *InMemoryClientStore {
	return &InMemoryClientStore{clients: make(map[uuid.UUID]*domain.Client)}
}

func (s *InMemoryClientStore) Create(_ context.Context, client *domain.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.clients {
		if existing.CompanyName == client.CompanyName {
			return ierr.NewErrorf("client %s already exists", client.CompanyName).
				WithHintf("A client named %s already exists", client.CompanyName).
				Mark(ierr.ErrAlreadyExists)
		}
	}

	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	now := time.Now()
	client.CreatedAt = now
	client.UpdatedAt = now

	cp := *client
	s.clients[client.ID] = &cp
	return nil
}

func (s *InMemoryClientStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	client, ok := s.clients[id]
	if !ok {
		return nil, clientNotFound()
	}
	cp := *client
	return &cp, nil
}

func (s *InMemoryClientStore) GetByCompanyName(_ context.Context, companyName string) (*domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, client := range s.clients {
		if client.CompanyName == companyName {
			cp := *client
			return &cp, nil
		}
	}
	return nil, clientNotFound()
}

func (s *InMemoryClientStore) List(_ context.Context) ([]*domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Client, 0, len(s.clients))
	for _, client := range s.clients {
		cp := *client
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CompanyName < result[j].CompanyName
	})
	return result, nil
}

func (s *InMemoryClientStore) Update(_ context.Context, client *domain.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.clients[client.ID]
	if !ok {
		return clientNotFound()
	}
	client.CreatedAt = existing.CreatedAt
	client.UpdatedAt = time.Now()
	cp := *client
	s.clients[client.ID] = &cp
	return nil
}

func clientNotFound() error {
	return ierr.NewError("client not found").
		WithHint("Client does not exist").
		Mark(ierr.ErrNotFound)
}

// InMemoryContactStore implements repository.ContactRepository on maps.
type InMemoryContactStore struct {
	mu       sync.RWMutex
	requests map[uuid.UUID]*domain.ContactRequest
	seq      int
}

// NewInMemoryContactStore creates an empty in-memory contact store
func NewInMemoryContactStore() *InMemoryContactStore {
	return &InMemoryContactStore{requests: make(map[uuid.UUID]*domain.ContactRequest)}
}

func (s *InMemoryContactStore) Create(_ context.Context, req *domain.ContactRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	s.seq++
	req.CreatedAt = time.Now().Add(time.Duration(s.seq) * time.Microsecond)

	cp := *req
	s.requests[req.ID] = &cp
	return nil
}

func (s *InMemoryContactStore) List(_ context.Context) ([]*domain.ContactRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.ContactRequest, 0, len(s.requests))
	for _, req := range s.requests {
		cp := *req
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *InMemoryContactStore) SetResolved(_ context.Context, id uuid.UUID, resolved bool) (*domain.ContactRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[id]
	if !ok {
		return nil, ierr.NewError("contact request not found").
			WithHint("Contact request does not exist").
			Mark(ierr.ErrNotFound)
	}
	req.Resolved = resolved
	cp := *req
	return &cp, nil
}
