package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/skelectricals/backend/internal/billing"
	ierr "github.com/skelectricals/backend/internal/errors"
	"github.com/skelectricals/backend/internal/repository"
	"github.com/skelectricals/backend/internal/types"
)

// InMemoryInvoiceStore implements repository.InvoiceRepository on a map, for
// service tests.
type InMemoryInvoiceStore struct {
	mu       sync.RWMutex
	invoices map[int64]*billing.Invoice
	// creation sequence tracked separately so CreatedAt ties sort stably
	seq int64
}

// NewInMemoryInvoiceStore creates an empty in-memory invoice store
func NewInMemoryInvoiceStore() *InMemoryInvoiceStore {
	return &InMemoryInvoiceStore{invoices: make(map[int64]*billing.Invoice)}
}

func cloneInvoice(inv *billing.Invoice) *billing.Invoice {
	cp := *inv
	cp.LineItems = make([]billing.LineItem, len(inv.LineItems))
	copy(cp.LineItems, inv.LineItems)
	return &cp
}

// Create assigns the next invoice number (max existing + 1) and stores a copy.
func (s *InMemoryInvoiceStore) Create(_ context.Context, inv *billing.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var max int64
	for n := range s.invoices {
		if n > max {
			max = n
		}
	}
	inv.InvoiceNumber = max + 1
	s.seq++
	now := time.Now().Add(time.Duration(s.seq) * time.Microsecond)
	inv.CreatedAt = now
	inv.UpdatedAt = now

	s.invoices[inv.InvoiceNumber] = cloneInvoice(inv)
	return nil
}

// GetByNumber retrieves one invoice by number.
func (s *InMemoryInvoiceStore) GetByNumber(_ context.Context, number int64) (*billing.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, ok := s.invoices[number]
	if !ok {
		return nil, ierr.NewErrorf("invoice %d not found", number).
			WithHintf("Invoice %s does not exist", billing.FormatInvoiceNumber(number)).
			Mark(ierr.ErrNotFound)
	}
	return cloneInvoice(inv), nil
}

// List retrieves invoices matching the filter, newest first.
func (s *InMemoryInvoiceStore) List(_ context.Context, filter repository.InvoiceFilter) ([]*billing.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*billing.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		if filter.CompanyName != "" && inv.CompanyName != filter.CompanyName {
			continue
		}
		result = append(result, cloneInvoice(inv))
	}

	sort.Slice(result, func(i, j int) bool {
		if filter.OrderByInvoiceDate {
			if !result[i].InvoiceDate.Time.Equal(result[j].InvoiceDate.Time) {
				return result[i].InvoiceDate.Time.After(result[j].InvoiceDate.Time)
			}
		} else if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].InvoiceNumber > result[j].InvoiceNumber
	})

	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

// Update replaces a stored invoice.
func (s *InMemoryInvoiceStore) Update(_ context.Context, inv *billing.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.invoices[inv.InvoiceNumber]
	if !ok {
		return ierr.NewErrorf("invoice %d not found", inv.InvoiceNumber).
			WithHintf("Invoice %s does not exist", billing.FormatInvoiceNumber(inv.InvoiceNumber)).
			Mark(ierr.ErrNotFound)
	}

	inv.CreatedAt = existing.CreatedAt
	inv.UpdatedAt = time.Now()
	s.invoices[inv.InvoiceNumber] = cloneInvoice(inv)
	return nil
}

// UpdateStatus changes only the status of a stored invoice.
func (s *InMemoryInvoiceStore) UpdateStatus(_ context.Context, number int64, status types.InvoiceStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoices[number]
	if !ok {
		return ierr.NewErrorf("invoice %d not found", number).
			WithHintf("Invoice %s does not exist", billing.FormatInvoiceNumber(number)).
			Mark(ierr.ErrNotFound)
	}
	inv.Status = status
	inv.UpdatedAt = time.Now()
	return nil
}

// MarkOverdueBefore applies the overdue sweep across the store.
func (s *InMemoryInvoiceStore) MarkOverdueBefore(_ context.Context, today time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	day := types.Truncate(today)
	var changed int64
	for _, inv := range s.invoices {
		if inv.Status.IsDateDriven() && types.Truncate(inv.PaymentDueDate.Time).Before(day) {
			inv.Status = types.InvoiceStatusOverdue
			inv.UpdatedAt = time.Now()
			changed++
		}
	}
	return changed, nil
}
