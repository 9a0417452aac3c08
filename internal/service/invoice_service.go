package service

import (
	"context"

	"github.com/skelectricals/backend/internal/billing"
	"github.com/skelectricals/backend/internal/cache"
	ierr "github.com/skelectricals/backend/internal/errors"
	"github.com/skelectricals/backend/internal/logger"
	"github.com/skelectricals/backend/internal/model"
	"github.com/skelectricals/backend/internal/repository"
	"github.com/skelectricals/backend/internal/types"
)

// InvoiceService owns the invoice lifecycle. Every listing operation runs the
// overdue sweep first; single reads sweep the one record they touch.
type InvoiceService interface {
	// Create persists a new invoice with computed totals, the next invoice
	// number and status pending.
	Create(ctx context.Context, req *model.CreateInvoiceRequest) (*billing.Invoice, error)

	// Get retrieves one invoice for an admin.
	Get(ctx context.Context, number int64) (*billing.Invoice, error)

	// GetForClient retrieves one invoice on behalf of the owning client,
	// flipping sent to viewed as a side effect of the read.
	GetForClient(ctx context.Context, number int64, companyName string) (*billing.Invoice, error)

	// List retrieves all invoices, newest first, after the overdue sweep.
	List(ctx context.Context) ([]*billing.Invoice, error)

	// ListForCompany retrieves one client's invoices after the overdue sweep.
	ListForCompany(ctx context.Context, companyName string) ([]*billing.Invoice, error)

	// Recent retrieves the most recently dated invoices for dashboards.
	Recent(ctx context.Context, limit int) ([]*billing.Invoice, error)

	// Update applies a full edit, including due-date status side effects and
	// explicit status overrides.
	Update(ctx context.Context, number int64, req *model.UpdateInvoiceRequest) (*billing.Invoice, error)

	// UpdateStatus applies the dedicated status-only change.
	UpdateStatus(ctx context.Context, number int64, status types.InvoiceStatus) (*billing.Invoice, error)

	// ReconcileOverdue runs the idempotent overdue sweep, returning the
	// number of invoices flipped.
	ReconcileOverdue(ctx context.Context) (int64, error)
}

type invoiceService struct {
	repo   repository.InvoiceRepository
	engine *billing.StatusEngine
	cache  *cache.Cache
	logger *logger.Logger
}

// NewInvoiceService creates an invoice service
func NewInvoiceService(repo repository.InvoiceRepository, engine *billing.StatusEngine, c *cache.Cache, log *logger.Logger) InvoiceService {
	return &invoiceService{repo: repo, engine: engine, cache: c, logger: log}
}

func (s *invoiceService) Create(ctx context.Context, req *model.CreateInvoiceRequest) (*billing.Invoice, error) {
	inv := req.ToInvoice()
	if inv.InvoiceDate.IsZero() {
		inv.InvoiceDate = types.NewDateOnly(s.engine.Today())
	}
	inv.Status = types.InvoiceStatusPending
	inv.RecalculateTotals()

	if err := inv.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}

	s.invalidateStats()
	s.logger.Infow("created invoice",
		"invoiceNumber", inv.InvoiceNumber,
		"company", inv.CompanyName,
		"totalAmount", inv.TotalAmount,
	)
	return inv, nil
}

func (s *invoiceService) Get(ctx context.Context, number int64) (*billing.Invoice, error) {
	return s.getSwept(ctx, number)
}

func (s *invoiceService) GetForClient(ctx context.Context, number int64, companyName string) (*billing.Invoice, error) {
	inv, err := s.getSwept(ctx, number)
	if err != nil {
		return nil, err
	}

	if inv.CompanyName != companyName {
		return nil, ierr.NewErrorf("invoice %d does not belong to %s", number, companyName).
			WithHint("You do not have access to this invoice").
			Mark(ierr.ErrPermissionDenied)
	}

	if next := s.engine.StatusOnClientRead(inv.Status); next != inv.Status {
		if err := s.repo.UpdateStatus(ctx, inv.InvoiceNumber, next); err != nil {
			return nil, err
		}
		inv.Status = next
		s.invalidateStats()
	}

	return inv, nil
}

// getSwept loads one invoice and applies the overdue sweep to it, persisting
// the flip so reads observe the same state the list endpoints produce.
func (s *invoiceService) getSwept(ctx context.Context, number int64) (*billing.Invoice, error) {
	inv, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	if swept := s.engine.SweepStatus(inv.Status, inv.PaymentDueDate); swept != inv.Status {
		if err := s.repo.UpdateStatus(ctx, inv.InvoiceNumber, swept); err != nil {
			return nil, err
		}
		inv.Status = swept
		s.invalidateStats()
	}

	return inv, nil
}

func (s *invoiceService) List(ctx context.Context) ([]*billing.Invoice, error) {
	if _, err := s.ReconcileOverdue(ctx); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, repository.InvoiceFilter{})
}

func (s *invoiceService) ListForCompany(ctx context.Context, companyName string) ([]*billing.Invoice, error) {
	if _, err := s.ReconcileOverdue(ctx); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, repository.InvoiceFilter{CompanyName: companyName})
}

func (s *invoiceService) Recent(ctx context.Context, limit int) ([]*billing.Invoice, error) {
	if _, err := s.ReconcileOverdue(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 5
	}
	return s.repo.List(ctx, repository.InvoiceFilter{Limit: limit, OrderByInvoiceDate: true})
}

func (s *invoiceService) Update(ctx context.Context, number int64, req *model.UpdateInvoiceRequest) (*billing.Invoice, error) {
	inv, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	applyInvoiceEdit(inv, req)

	// Due-date side effects run before the explicit status override.
	status := inv.Status
	if req.PaymentDueDate != nil {
		status = s.engine.ApplyDueDateEdit(inv.Status, *req.PaymentDueDate)
	}

	var requested types.InvoiceStatus
	if req.Status != nil {
		requested = types.InvoiceStatus(*req.Status)
	}
	status, err = s.engine.ResolveEditStatus(status, requested, inv.PaymentDueDate)
	if err != nil {
		return nil, err
	}
	inv.Status = status

	inv.RecalculateTotals()
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, inv); err != nil {
		return nil, err
	}

	s.invalidateStats()
	s.logger.Infow("updated invoice", "invoiceNumber", inv.InvoiceNumber, "status", inv.Status)
	return inv, nil
}

func (s *invoiceService) UpdateStatus(ctx context.Context, number int64, status types.InvoiceStatus) (*billing.Invoice, error) {
	inv, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	if err := s.engine.ValidateStatusChange(status, inv.PaymentDueDate); err != nil {
		return nil, err
	}

	// The record must stay valid under the new status; in particular a draft
	// with no line items cannot be flipped to a non-draft status.
	inv.Status = status
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, number, status); err != nil {
		return nil, err
	}

	s.invalidateStats()
	s.logger.Infow("changed invoice status", "invoiceNumber", number, "status", status)
	return inv, nil
}

func (s *invoiceService) ReconcileOverdue(ctx context.Context) (int64, error) {
	changed, err := s.repo.MarkOverdueBefore(ctx, s.engine.Today())
	if err != nil {
		return 0, err
	}
	if changed > 0 {
		s.invalidateStats()
		s.logger.Infow("overdue sweep flipped invoices", "count", changed)
	}
	return changed, nil
}

func (s *invoiceService) invalidateStats() {
	s.cache.DeleteByPrefix(cache.PrefixDashboardStats)
}

// applyInvoiceEdit copies the request's non-nil fields onto the invoice.
// Status is handled separately by the status engine.
func applyInvoiceEdit(inv *billing.Invoice, req *model.UpdateInvoiceRequest) {
	if req.CompanyName != nil {
		inv.CompanyName = *req.CompanyName
	}
	if req.BillingAddress != nil {
		inv.BillingAddress = *req.BillingAddress
	}
	if req.WorkSiteLocation != nil {
		inv.WorkSiteLocation = *req.WorkSiteLocation
	}
	if req.ClientContactName != nil {
		inv.ClientContactName = *req.ClientContactName
	}
	if req.OrderNumber != nil {
		inv.OrderNumber = *req.OrderNumber
	}
	if req.CompanyGSTNumber != nil {
		inv.CompanyGSTNumber = *req.CompanyGSTNumber
	}
	if req.InvoiceDate != nil {
		inv.InvoiceDate = *req.InvoiceDate
	}
	if req.PaymentDueDate != nil {
		inv.PaymentDueDate = *req.PaymentDueDate
	}
	if req.LineItems != nil {
		items := make([]billing.LineItem, 0, len(*req.LineItems))
		for i := range *req.LineItems {
			items = append(items, (*req.LineItems)[i].ToLineItem())
		}
		inv.LineItems = items
	}
}
