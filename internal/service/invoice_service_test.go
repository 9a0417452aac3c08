package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/skelectricals/backend/internal/billing"
	"github.com/skelectricals/backend/internal/cache"
	ierr "github.com/skelectricals/backend/internal/errors"
	"github.com/skelectricals/backend/internal/logger"
	"github.com/skelectricals/backend/internal/model"
	"github.com/skelectricals/backend/internal/repository"
	"github.com/skelectricals/backend/internal/testutil"
	"github.com/skelectricals/backend/internal/types"
)

var testToday = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

type InvoiceServiceSuite struct {
	suite.Suite
	ctx     context.Context
	store   *testutil.InMemoryInvoiceStore
	engine  *billing.StatusEngine
	service InvoiceService
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceSuite))
}

func (s *InvoiceServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = testutil.NewInMemoryInvoiceStore()
	s.engine = billing.NewStatusEngine(billing.FixedClock(testToday))
	s.service = NewInvoiceService(s.store, s.engine, cache.New(), logger.NewNop())
}

func (s *InvoiceServiceSuite) createRequest(due time.Time) *model.CreateInvoiceRequest {
	return &model.CreateInvoiceRequest{
		CompanyName:       "Apex Textiles Pvt Ltd",
		BillingAddress:    "14 Industrial Estate, Pune",
		WorkSiteLocation:  "Unit 3, MIDC Bhosari",
		ClientContactName: "R. Deshmukh",
		OrderNumber:       "PO-2025-118",
		CompanyGSTNumber:  "27AABCU9603R1ZX",
		PaymentDueDate:    types.NewDateOnly(due),
		LineItems: []model.LineItemRequest{
			{
				Name:           "Armoured cable 4x16",
				Quantity:       decimal.NewFromInt(10),
				HSNCode:        "8544",
				Rate:           decimal.NewFromInt(5000),
				GSTRatePercent: "18",
			},
		},
	}
}

func (s *InvoiceServiceSuite) TestCreateAssignsSequentialNumbers() {
	first, err := s.service.Create(s.ctx, s.createRequest(testToday.AddDate(0, 0, 30)))
	s.Require().NoError(err)
	s.Equal(int64(1), first.InvoiceNumber)
	s.Equal(types.InvoiceStatusPending, first.Status)

	second, err := s.service.Create(s.ctx, s.createRequest(testToday.AddDate(0, 0, 30)))
	s.Require().NoError(err)
	s.Equal(int64(2), second.InvoiceNumber)
}

func (s *InvoiceServiceSuite) TestCreateComputesTotals() {
	inv, err := s.service.Create(s.ctx, s.createRequest(testToday.AddDate(0, 0, 30)))
	s.Require().NoError(err)

	s.True(inv.NetAmount.Equal(decimal.NewFromInt(50000)), "net: %s", inv.NetAmount)
	s.True(inv.TotalCGST.Equal(decimal.NewFromInt(9000)))
	s.True(inv.TotalSGST.Equal(decimal.NewFromInt(9000)))
	s.True(inv.TotalAmount.Equal(decimal.NewFromInt(68000)))
	s.Equal(types.NewDateOnly(testToday), inv.InvoiceDate)
}

func (s *InvoiceServiceSuite) TestCreateRejectsBadLineItem() {
	req := s.createRequest(testToday.AddDate(0, 0, 30))
	req.LineItems[0].GSTRatePercent = "15"

	_, err := s.service.Create(s.ctx, req)
	s.Require().Error(err)
	s.True(ierr.IsValidation(err))

	// Nothing was persisted.
	invoices, err := s.store.List(s.ctx, repository.InvoiceFilter{})
	s.Require().NoError(err)
	s.Empty(invoices)
}

func (s *InvoiceServiceSuite) TestListSweepsOverdueInvoices() {
	inv, err := s.service.Create(s.ctx, s.createRequest(testToday.AddDate(0, 0, -1)))
	s.Require().NoError(err)
	s.Equal(types.InvoiceStatusPending, inv.Status)

	invoices, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(invoices, 1)
	s.Equal(types.InvoiceStatusOverdue, invoices[0].Status)
}

func (s *InvoiceServiceSuite) TestDueDateEditRevertsOverdueToPending() {
	inv, err := s.service.Create(s.ctx, s.createRequest(testToday.AddDate(0, 0, -1)))
	s.Require().NoError(err)

	_, err = s.service.ReconcileOverdue(s.ctx)
	s.Require().NoError(err)

	tomorrow := types.NewDateOnly(testToday.AddDate(0, 0, 1))
	updated, err := s.service.Update(s.ctx, inv.InvoiceNumber, &model.UpdateInvoiceRequest{
		PaymentDueDate: &tomorrow,
	})
	s.Require().NoError(err)
	s.Equal(types.InvoiceStatusPending, updated.Status)
}

func (s *InvoiceServiceSuite) TestDueDateEditIntoPastFlipsToOverdue() {
	inv, err := s.service.Create(s.ctx, s.createRequest(testToday.AddDate(0, 0, 30)))
	s.Require().NoError(err)

	yesterday := types.NewDateOnly(testToday.AddDate(0, 0, -1))
	updated, err := s.service.Update(s.ctx, inv.InvoiceNumber, &model.UpdateInvoiceRequest{
		PaymentDueDate: &yesterday,
	})
	s.Require().NoError(err)
	s.Equal(types.InvoiceStatusOverdue, updated.Status)
}

func (s *InvoiceServiceSuite) TestEditWithExplicitPaidWinsOverDateRules() {
	inv, err := s.service.Create(s.ctx, s.createRequest(testToday.AddDate(0, 0, 30)))
	s.Require().NoError(err)

	yesterday := types.NewDateOnly(testToday.AddDate(0, 0, -1))
	paid := types.InvoiceStatusPaid.String()
	updated, err := s.service.Update(s.ctx, inv.InvoiceNumber, &model.UpdateInvoiceRequest{
		PaymentDueDate: &yesterday,
		Status:         &paid,
	})
	s.Require().NoError(err)
	s.Equal(types.InvoiceStatusPaid, updated.Status)
}

func (s *InvoiceServiceSuite) TestUpdateStatusPendingWhilePastDueIsBlocked() {
	inv, err := s.service.Create(s.ctx, s.createRequest(testToday.AddDate(0, 0, -1)))
	s.Require().NoError(err)

	_, err = s.service.UpdateStatus(s.ctx, inv.InvoiceNumber, types.InvoiceStatusPending)
	s.Require().Error(err)
	s.True(ierr.IsBusinessRule(err))

	// Status was left unchanged.
	stored, err := s.store.GetByNumber(s.ctx, inv.InvoiceNumber)
	s.Require().NoError(err)
	s.Equal(types.InvoiceStatusPending, stored.Status)
}

func (s *InvoiceServiceSuite) TestUpdateStatusPaidOnOverdueSucceeds() {
	inv, err := s.service.Create(s.ctx, s.createRequest(testToday.AddDate(0, 0, -1)))
	s.Require().NoError(err)

	_, err = s.service.ReconcileOverdue(s.ctx)
	s.Require().NoError(err)

	updated, err := s.service.UpdateStatus(s.ctx, inv.InvoiceNumber, types.InvoiceStatusPaid)
	s.Require().NoError(err)
	s.Equal(types.InvoiceStatusPaid, updated.Status)
}

func (s *InvoiceServiceSuite) TestUpdateStatusRejectsUnknownStatus() {
	inv, err := s.service.Create(s.ctx, s.createRequest(testToday.AddDate(0, 0, 30)))
	s.Require().NoError(err)

	_, err = s.service.UpdateStatus(s.ctx, inv.InvoiceNumber, types.InvoiceStatus("archived"))
	s.Require().Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *InvoiceServiceSuite) TestUpdateStatusNotFound() {
	_, err := s.service.UpdateStatus(s.ctx, 99, types.InvoiceStatusPaid)
	s.Require().Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *InvoiceServiceSuite) TestClientReadFlipsSentToViewed() {
	inv, err := s.service.Create(s.ctx, s.createRequest(testToday.AddDate(0, 0, 30)))
	s.Require().NoError(err)

	_, err = s.service.UpdateStatus(s.ctx, inv.InvoiceNumber, types.InvoiceStatusSent)
	s.Require().NoError(err)

	got, err := s.service.GetForClient(s.ctx, inv.InvoiceNumber, inv.CompanyName)
	s.Require().NoError(err)
	s.Equal(types.InvoiceStatusViewed, got.Status)

	// Reading again leaves it viewed.
	again, err := s.service.GetForClient(s.ctx, inv.InvoiceNumber, inv.CompanyName)
	s.Require().NoError(err)
	s.Equal(types.InvoiceStatusViewed, again.Status)
}

func (s *InvoiceServiceSuite) TestUpdateStatusOnEmptyDraftIsRejected() {
	inv, err := s.service.Create(s.ctx, s.createRequest(testToday.AddDate(0, 0, 30)))
	s.Require().NoError(err)

	empty := []model.LineItemRequest{}
	draft := types.InvoiceStatusDraft.String()
	_, err = s.service.Update(s.ctx, inv.InvoiceNumber, &model.UpdateInvoiceRequest{
		LineItems: &empty,
		Status:    &draft,
	})
	s.Require().NoError(err)

	// A draft with no line items cannot leave draft through the status-only
	// operation.
	_, err = s.service.UpdateStatus(s.ctx, inv.InvoiceNumber, types.InvoiceStatusSent)
	s.Require().Error(err)
	s.True(ierr.IsValidation(err))

	stored, err := s.store.GetByNumber(s.ctx, inv.InvoiceNumber)
	s.Require().NoError(err)
	s.Equal(types.InvoiceStatusDraft, stored.Status)
}

func (s *InvoiceServiceSuite) TestClientReadOfPastDueSentInvoiceSweepsToOverdue() {
	inv, err := s.service.Create(s.ctx, s.createRequest(testToday.AddDate(0, 0, 30)))
	s.Require().NoError(err)

	_, err = s.service.UpdateStatus(s.ctx, inv.InvoiceNumber, types.InvoiceStatusSent)
	s.Require().NoError(err)

	// Pull the due date into the past behind the service's back so the sweep,
	// not the read flip, decides the status.
	due := types.NewDateOnly(testToday.AddDate(0, 0, -1))
	stored, err := s.store.GetByNumber(s.ctx, inv.InvoiceNumber)
	s.Require().NoError(err)
	stored.PaymentDueDate = due
	s.Require().NoError(s.store.Update(s.ctx, stored))

	got, err := s.service.GetForClient(s.ctx, inv.InvoiceNumber, inv.CompanyName)
	s.Require().NoError(err)
	s.Equal(types.InvoiceStatusOverdue, got.Status)
}

func (s *InvoiceServiceSuite) TestClientReadOfOthersInvoiceIsDenied() {
	inv, err := s.service.Create(s.ctx, s.createRequest(testToday.AddDate(0, 0, 30)))
	s.Require().NoError(err)

	_, err = s.service.GetForClient(s.ctx, inv.InvoiceNumber, "Some Other Company")
	s.Require().Error(err)
	s.True(ierr.IsPermissionDenied(err))
}

func (s *InvoiceServiceSuite) TestEditRemovingAllLineItemsIsRejectedForNonDraft() {
	inv, err := s.service.Create(s.ctx, s.createRequest(testToday.AddDate(0, 0, 30)))
	s.Require().NoError(err)

	empty := []model.LineItemRequest{}
	_, err = s.service.Update(s.ctx, inv.InvoiceNumber, &model.UpdateInvoiceRequest{
		LineItems: &empty,
	})
	s.Require().Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *InvoiceServiceSuite) TestEditToDraftMayHaveZeroLineItems() {
	inv, err := s.service.Create(s.ctx, s.createRequest(testToday.AddDate(0, 0, 30)))
	s.Require().NoError(err)

	empty := []model.LineItemRequest{}
	draft := types.InvoiceStatusDraft.String()
	updated, err := s.service.Update(s.ctx, inv.InvoiceNumber, &model.UpdateInvoiceRequest{
		LineItems: &empty,
		Status:    &draft,
	})
	s.Require().NoError(err)
	s.Equal(types.InvoiceStatusDraft, updated.Status)
	s.True(updated.TotalAmount.IsZero())
}
