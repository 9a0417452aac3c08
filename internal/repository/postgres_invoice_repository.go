package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/skelectricals/backend/internal/billing"
	ierr "github.com/skelectricals/backend/internal/errors"
	"github.com/skelectricals/backend/internal/types"
)

// PostgresInvoiceRepository implements InvoiceRepository using PostgreSQL.
// Line items are stored as JSONB; amounts are NUMERIC columns scanned through
// their text representation into decimals.
type PostgresInvoiceRepository struct {
	db *pgxpool.Pool
}

// NewPostgresInvoiceRepository creates a new PostgreSQL invoice repository
func NewPostgresInvoiceRepository(db *pgxpool.Pool) InvoiceRepository {
	return &PostgresInvoiceRepository{db: db}
}

const invoiceColumns = `
	invoice_number, company_name, billing_address, work_site_location,
	client_contact_name, order_number, company_gst_number,
	invoice_date, payment_due_date, line_items,
	total_cgst::text, total_sgst::text, net_amount::text, total_amount::text,
	status, created_at, updated_at
`

// Create persists a new invoice. The invoice number is assigned inside the
// INSERT so two concurrent creates serialize on the primary key instead of
// racing in application code.
func (r *PostgresInvoiceRepository) Create(ctx context.Context, inv *billing.Invoice) error {
	items, err := json.Marshal(inv.LineItems)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to encode line items").
			Mark(ierr.ErrInternal)
	}

	query := `
		INSERT INTO invoices (
			invoice_number, company_name, billing_address, work_site_location,
			client_contact_name, order_number, company_gst_number,
			invoice_date, payment_due_date, line_items,
			total_cgst, total_sgst, net_amount, total_amount, status
		)
		VALUES (
			(SELECT COALESCE(MAX(invoice_number), 0) + 1 FROM invoices),
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)
		RETURNING invoice_number, created_at, updated_at
	`

	err = r.db.QueryRow(
		ctx,
		query,
		inv.CompanyName,
		inv.BillingAddress,
		inv.WorkSiteLocation,
		inv.ClientContactName,
		inv.OrderNumber,
		inv.CompanyGSTNumber,
		inv.InvoiceDate.Time,
		inv.PaymentDueDate.Time,
		items,
		inv.TotalCGST.String(),
		inv.TotalSGST.String(),
		inv.NetAmount.String(),
		inv.TotalAmount.String(),
		inv.Status.String(),
	).Scan(&inv.InvoiceNumber, &inv.CreatedAt, &inv.UpdatedAt)

	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create invoice").
			Mark(ierr.ErrDatabase)
	}

	return nil
}

// GetByNumber retrieves one invoice by its invoice number.
func (r *PostgresInvoiceRepository) GetByNumber(ctx context.Context, number int64) (*billing.Invoice, error) {
	query := fmt.Sprintf(`SELECT %s FROM invoices WHERE invoice_number = $1`, invoiceColumns)

	inv, err := scanInvoice(r.db.QueryRow(ctx, query, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ierr.NewErrorf("invoice %d not found", number).
				WithHintf("Invoice %s does not exist", billing.FormatInvoiceNumber(number)).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get invoice").
			Mark(ierr.ErrDatabase)
	}

	return inv, nil
}

// List retrieves invoices matching the filter.
func (r *PostgresInvoiceRepository) List(ctx context.Context, filter InvoiceFilter) ([]*billing.Invoice, error) {
	query := fmt.Sprintf(`SELECT %s FROM invoices`, invoiceColumns)
	args := []any{}

	if filter.CompanyName != "" {
		query += ` WHERE company_name = $1`
		args = append(args, filter.CompanyName)
	}

	if filter.OrderByInvoiceDate {
		query += ` ORDER BY invoice_date DESC, invoice_number DESC`
	} else {
		query += ` ORDER BY created_at DESC, invoice_number DESC`
	}

	if filter.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, filter.Limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list invoices").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	invoices := make([]*billing.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan invoice row").
				Mark(ierr.ErrDatabase)
		}
		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to read invoice rows").
			Mark(ierr.ErrDatabase)
	}

	return invoices, nil
}

// Update replaces the mutable fields of an invoice in a single statement,
// keeping the record's mutation atomic (last-writer-wins; no version column).
func (r *PostgresInvoiceRepository) Update(ctx context.Context, inv *billing.Invoice) error {
	items, err := json.Marshal(inv.LineItems)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to encode line items").
			Mark(ierr.ErrInternal)
	}

	query := `
		UPDATE invoices
		SET company_name = $1, billing_address = $2, work_site_location = $3,
			client_contact_name = $4, order_number = $5, company_gst_number = $6,
			invoice_date = $7, payment_due_date = $8, line_items = $9,
			total_cgst = $10, total_sgst = $11, net_amount = $12, total_amount = $13,
			status = $14, updated_at = CURRENT_TIMESTAMP
		WHERE invoice_number = $15
		RETURNING updated_at
	`

	err = r.db.QueryRow(
		ctx,
		query,
		inv.CompanyName,
		inv.BillingAddress,
		inv.WorkSiteLocation,
		inv.ClientContactName,
		inv.OrderNumber,
		inv.CompanyGSTNumber,
		inv.InvoiceDate.Time,
		inv.PaymentDueDate.Time,
		items,
		inv.TotalCGST.String(),
		inv.TotalSGST.String(),
		inv.NetAmount.String(),
		inv.TotalAmount.String(),
		inv.Status.String(),
		inv.InvoiceNumber,
	).Scan(&inv.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ierr.NewErrorf("invoice %d not found", inv.InvoiceNumber).
				WithHintf("Invoice %s does not exist", billing.FormatInvoiceNumber(inv.InvoiceNumber)).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).
			WithHint("Failed to update invoice").
			Mark(ierr.ErrDatabase)
	}

	return nil
}

// UpdateStatus changes only the status of an existing invoice.
func (r *PostgresInvoiceRepository) UpdateStatus(ctx context.Context, number int64, status types.InvoiceStatus) error {
	query := `
		UPDATE invoices
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE invoice_number = $2
		RETURNING invoice_number
	`

	var n int64
	if err := r.db.QueryRow(ctx, query, status.String(), number).Scan(&n); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ierr.NewErrorf("invoice %d not found", number).
				WithHintf("Invoice %s does not exist", billing.FormatInvoiceNumber(number)).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).
			WithHint("Failed to update invoice status").
			Mark(ierr.ErrDatabase)
	}

	return nil
}

// MarkOverdueBefore runs the overdue sweep as one statement.
func (r *PostgresInvoiceRepository) MarkOverdueBefore(ctx context.Context, today time.Time) (int64, error) {
	query := `
		UPDATE invoices
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE status = ANY($2) AND payment_due_date < $3
	`

	tag, err := r.db.Exec(ctx, query,
		types.InvoiceStatusOverdue.String(),
		[]string{
			types.InvoiceStatusPending.String(),
			types.InvoiceStatusSent.String(),
			types.InvoiceStatusViewed.String(),
		},
		types.Truncate(today),
	)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to sweep overdue invoices").
			Mark(ierr.ErrDatabase)
	}

	return tag.RowsAffected(), nil
}

// scanInvoice reads one invoice row in invoiceColumns order.
func scanInvoice(row pgx.Row) (*billing.Invoice, error) {
	var (
		inv                                      billing.Invoice
		invoiceDate, dueDate                     time.Time
		itemsJSON                                []byte
		totalCGST, totalSGST, net, total, status string
	)

	err := row.Scan(
		&inv.InvoiceNumber,
		&inv.CompanyName,
		&inv.BillingAddress,
		&inv.WorkSiteLocation,
		&inv.ClientContactName,
		&inv.OrderNumber,
		&inv.CompanyGSTNumber,
		&invoiceDate,
		&dueDate,
		&itemsJSON,
		&totalCGST,
		&totalSGST,
		&net,
		&total,
		&status,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	inv.InvoiceDate = types.NewDateOnly(invoiceDate)
	inv.PaymentDueDate = types.NewDateOnly(dueDate)
	inv.Status = types.InvoiceStatus(status)

	if err := json.Unmarshal(itemsJSON, &inv.LineItems); err != nil {
		return nil, fmt.Errorf("failed to decode line items: %w", err)
	}

	for dst, src := range map[*decimal.Decimal]string{
		&inv.TotalCGST:   totalCGST,
		&inv.TotalSGST:   totalSGST,
		&inv.NetAmount:   net,
		&inv.TotalAmount: total,
	} {
		d, err := decimal.NewFromString(src)
		if err != nil {
			return nil, fmt.Errorf("failed to parse amount %q: %w", src, err)
		}
		*dst = d
	}

	return &inv, nil
}
