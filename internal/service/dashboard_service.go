package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/skelectricals/backend/internal/billing"
	"github.com/skelectricals/backend/internal/cache"
	"github.com/skelectricals/backend/internal/logger"
	"github.com/skelectricals/backend/internal/model"
	"github.com/skelectricals/backend/internal/types"
)

// DashboardService computes invoice aggregations for the admin dashboard and
// the per-client account view. Results are cached briefly; invoice writes
// invalidate the cache.
type DashboardService interface {
	// Stats aggregates over all invoices.
	Stats(ctx context.Context) (*model.DashboardStats, error)

	// StatsForCompany aggregates over one client's invoices.
	StatsForCompany(ctx context.Context, companyName string) (*model.DashboardStats, error)
}

type dashboardService struct {
	invoices InvoiceService
	engine   *billing.StatusEngine
	cache    *cache.Cache
	logger   *logger.Logger
}

// NewDashboardService creates a dashboard service
func NewDashboardService(invoices InvoiceService, engine *billing.StatusEngine, c *cache.Cache, log *logger.Logger) DashboardService {
	return &dashboardService{invoices: invoices, engine: engine, cache: c, logger: log}
}

func (s *dashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	return s.stats(ctx, "")
}

func (s *dashboardService) StatsForCompany(ctx context.Context, companyName string) (*model.DashboardStats, error) {
	return s.stats(ctx, companyName)
}

func (s *dashboardService) stats(ctx context.Context, companyName string) (*model.DashboardStats, error) {
	key := cache.GenerateKey(cache.PrefixDashboardStats, companyName)
	if cached, ok := s.cache.Get(key); ok {
		if stats, ok := cached.(*model.DashboardStats); ok {
			return stats, nil
		}
	}

	// Listing through the invoice service runs the overdue sweep first, so
	// the aggregation never counts a stale pending invoice.
	var (
		invoices []*billing.Invoice
		err      error
	)
	if companyName == "" {
		invoices, err = s.invoices.List(ctx)
	} else {
		invoices, err = s.invoices.ListForCompany(ctx, companyName)
	}
	if err != nil {
		return nil, err
	}

	stats := s.aggregate(invoices)
	s.cache.Set(key, stats, 0)
	return stats, nil
}

func (s *dashboardService) aggregate(invoices []*billing.Invoice) *model.DashboardStats {
	today := s.engine.Today()
	stats := &model.DashboardStats{
		TotalInvoices:     len(invoices),
		CountByStatus:     make(map[string]int),
		Revenue:           decimal.Zero,
		PendingPayments:   decimal.Zero,
		PaymentsThisMonth: decimal.Zero,
	}

	totalBilled := decimal.Zero
	for _, inv := range invoices {
		stats.CountByStatus[inv.Status.String()]++
		totalBilled = totalBilled.Add(inv.TotalAmount)

		switch {
		case inv.Status == types.InvoiceStatusPaid:
			stats.Revenue = stats.Revenue.Add(inv.TotalAmount)
			if inv.InvoiceDate.Year() == today.Year() && inv.InvoiceDate.Month() == today.Month() {
				stats.PaymentsThisMonth = stats.PaymentsThisMonth.Add(inv.TotalAmount)
			}
		case inv.Status.IsDateDriven():
			stats.PendingPayments = stats.PendingPayments.Add(inv.TotalAmount)
		}
	}

	if totalBilled.IsPositive() {
		stats.CollectionRate = stats.Revenue.
			Div(totalBilled).
			Mul(decimal.NewFromInt(100)).
			Round(0).
			IntPart()
	}

	return stats
}
