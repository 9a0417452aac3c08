package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/skelectricals/backend/internal/billing"
	"github.com/skelectricals/backend/internal/cache"
	"github.com/skelectricals/backend/internal/logger"
	"github.com/skelectricals/backend/internal/model"
	"github.com/skelectricals/backend/internal/testutil"
	"github.com/skelectricals/backend/internal/types"
)

type DashboardServiceSuite struct {
	suite.Suite
	ctx      context.Context
	store    *testutil.InMemoryInvoiceStore
	invoices InvoiceService
	service  DashboardService
}

func TestDashboardService(t *testing.T) {
	suite.Run(t, new(DashboardServiceSuite))
}

func (s *DashboardServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = testutil.NewInMemoryInvoiceStore()
	engine := billing.NewStatusEngine(billing.FixedClock(testToday))
	c := cache.New()
	s.invoices = NewInvoiceService(s.store, engine, c, logger.NewNop())
	s.service = NewDashboardService(s.invoices, engine, c, logger.NewNop())
}

func (s *DashboardServiceSuite) createInvoice(company string, rate int64, invoiceDate, due time.Time) *billing.Invoice {
	inv, err := s.invoices.Create(s.ctx, &model.CreateInvoiceRequest{
		CompanyName:       company,
		BillingAddress:    "14 Industrial Estate, Pune",
		WorkSiteLocation:  "Unit 3, MIDC Bhosari",
		ClientContactName: "R. Deshmukh",
		OrderNumber:       "PO-2025-118",
		CompanyGSTNumber:  "27AABCU9603R1ZX",
		InvoiceDate:       types.NewDateOnly(invoiceDate),
		PaymentDueDate:    types.NewDateOnly(due),
		LineItems: []model.LineItemRequest{
			{
				Name:           "Panel installation",
				Quantity:       decimal.NewFromInt(1),
				HSNCode:        "9954",
				Rate:           decimal.NewFromInt(rate),
				GSTRatePercent: "9",
			},
		},
	})
	s.Require().NoError(err)
	return inv
}

func (s *DashboardServiceSuite) markPaid(number int64) {
	_, err := s.invoices.UpdateStatus(s.ctx, number, types.InvoiceStatusPaid)
	s.Require().NoError(err)
}

func (s *DashboardServiceSuite) TestStatsWithNoInvoices() {
	stats, err := s.service.Stats(s.ctx)
	s.Require().NoError(err)

	s.Equal(0, stats.TotalInvoices)
	s.Equal(int64(0), stats.CollectionRate)
	s.True(stats.Revenue.IsZero())
	s.True(stats.PendingPayments.IsZero())
}

func (s *DashboardServiceSuite) TestCollectionRateIsHundredWhenAllPaid() {
	future := testToday.AddDate(0, 0, 30)
	a := s.createInvoice("Apex Textiles Pvt Ltd", 1000, testToday, future)
	b := s.createInvoice("Apex Textiles Pvt Ltd", 2000, testToday, future)
	s.markPaid(a.InvoiceNumber)
	s.markPaid(b.InvoiceNumber)

	stats, err := s.service.Stats(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(100), stats.CollectionRate)
	s.True(stats.Revenue.Equal(stats.PaymentsThisMonth))
}

func (s *DashboardServiceSuite) TestStatsSplitPaidAndPending() {
	future := testToday.AddDate(0, 0, 30)
	paid := s.createInvoice("Apex Textiles Pvt Ltd", 1000, testToday, future)
	s.createInvoice("Apex Textiles Pvt Ltd", 3000, testToday, future) // stays pending
	s.markPaid(paid.InvoiceNumber)

	stats, err := s.service.Stats(s.ctx)
	s.Require().NoError(err)

	s.Equal(2, stats.TotalInvoices)
	s.Equal(1, stats.CountByStatus[types.InvoiceStatusPaid.String()])
	s.Equal(1, stats.CountByStatus[types.InvoiceStatusPending.String()])

	// rate 9 at both CGST and SGST: total = basic * 1.18
	s.True(stats.Revenue.Equal(decimal.NewFromInt(1180)), "revenue: %s", stats.Revenue)
	s.True(stats.PendingPayments.Equal(decimal.NewFromInt(3540)), "pending: %s", stats.PendingPayments)

	// 1180 / 4720 * 100 = 25
	s.Equal(int64(25), stats.CollectionRate)
}

func (s *DashboardServiceSuite) TestPaymentsThisMonthExcludesOlderInvoices() {
	future := testToday.AddDate(0, 0, 30)
	thisMonth := s.createInvoice("Apex Textiles Pvt Ltd", 1000, testToday, future)
	lastMonth := s.createInvoice("Apex Textiles Pvt Ltd", 2000, testToday.AddDate(0, -1, 0), future)
	s.markPaid(thisMonth.InvoiceNumber)
	s.markPaid(lastMonth.InvoiceNumber)

	stats, err := s.service.Stats(s.ctx)
	s.Require().NoError(err)

	s.True(stats.PaymentsThisMonth.Equal(decimal.NewFromInt(1180)), "this month: %s", stats.PaymentsThisMonth)
	s.True(stats.Revenue.Equal(decimal.NewFromInt(3540)), "revenue: %s", stats.Revenue)
}

func (s *DashboardServiceSuite) TestStatsRunSweepFirst() {
	s.createInvoice("Apex Textiles Pvt Ltd", 1000, testToday, testToday.AddDate(0, 0, -1))

	stats, err := s.service.Stats(s.ctx)
	s.Require().NoError(err)

	s.Equal(1, stats.CountByStatus[types.InvoiceStatusOverdue.String()])
	s.True(stats.PendingPayments.IsZero())
}

func (s *DashboardServiceSuite) TestStatsForCompanyScopes() {
	future := testToday.AddDate(0, 0, 30)
	mine := s.createInvoice("Apex Textiles Pvt Ltd", 1000, testToday, future)
	s.createInvoice("Other Works Ltd", 9000, testToday, future)
	s.markPaid(mine.InvoiceNumber)

	stats, err := s.service.StatsForCompany(s.ctx, "Apex Textiles Pvt Ltd")
	s.Require().NoError(err)

	s.Equal(1, stats.TotalInvoices)
	s.Equal(int64(100), stats.CollectionRate)
}

func (s *DashboardServiceSuite) TestStatsAreCachedUntilInvalidated() {
	future := testToday.AddDate(0, 0, 30)
	s.createInvoice("Apex Textiles Pvt Ltd", 1000, testToday, future)

	first, err := s.service.Stats(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, first.TotalInvoices)

	// A write through the invoice service invalidates the cached stats.
	s.createInvoice("Apex Textiles Pvt Ltd", 2000, testToday, future)
	second, err := s.service.Stats(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, second.TotalInvoices)
}
