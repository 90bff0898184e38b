package invoices

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/biztime/biztime/internal/platform/db"
	"github.com/biztime/biztime/internal/platform/httpx"
)

// Repository is the store surface the invoice resource needs.
type Repository interface {
	WithTx(ctx context.Context, fn func(context.Context, Repository) error) error
	List(ctx context.Context) ([]Summary, error)
	Get(ctx context.Context, id int64) (Detail, error)
	GetForUpdate(ctx context.Context, id int64) (Invoice, error)
	Create(ctx context.Context, compCode string, amount float64, addDate time.Time) (Invoice, error)
	Update(ctx context.Context, inv Invoice) (Invoice, error)
	Delete(ctx context.Context, id int64) error
}

const invoiceColumns = `id, comp_code, amt, paid, add_date, paid_date`

type repository struct {
	db   db.DBTX
	pool db.Pool
}

// NewRepository returns a Repository backed by PostgreSQL.
func NewRepository(pool db.Pool) Repository {
	return &repository{db: pool, pool: pool}
}

func (r *repository) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(ctx, &repository{db: tx, pool: r.pool})
	})
}

func notFound(id int64) error {
	return fmt.Errorf("invoice %d: %w", id, httpx.ErrNotFound)
}

func (r *repository) List(ctx context.Context) ([]Summary, error) {
	rows, err := r.db.Query(ctx, `SELECT id, comp_code FROM invoices ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	invoices := make([]Summary, 0)
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.CompCode); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		invoices = append(invoices, s)
	}
	return invoices, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Detail, error) {
	row := r.db.QueryRow(ctx, `
		SELECT i.id, i.comp_code, i.amt, i.paid, i.add_date, i.paid_date,
		       c.code, c.name, c.description
		FROM invoices AS i
		JOIN companies AS c ON c.code = i.comp_code
		WHERE i.id = $1`, id)

	var (
		d                 Detail
		addDate, paidDate pgtype.Date
		description       pgtype.Text
	)
	err := row.Scan(&d.ID, &d.CompCode, &d.Amount, &d.Paid, &addDate, &paidDate,
		&d.Company.Code, &d.Company.Name, &description)
	if err != nil {
		if db.IsNoRows(err) {
			return Detail{}, notFound(id)
		}
		return Detail{}, fmt.Errorf("get invoice: %w", err)
	}
	d.AddDate = addDate.Time
	d.PaidDate = datePtr(paidDate)
	if description.Valid {
		d.Company.Description = &description.String
	}
	return d, nil
}

func (r *repository) GetForUpdate(ctx context.Context, id int64) (Invoice, error) {
	row := r.db.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1 FOR UPDATE`, id)
	inv, err := scanInvoice(row)
	if err != nil {
		if db.IsNoRows(err) {
			return Invoice{}, notFound(id)
		}
		return Invoice{}, fmt.Errorf("lock invoice: %w", err)
	}
	return inv, nil
}

func (r *repository) Create(ctx context.Context, compCode string, amount float64, addDate time.Time) (Invoice, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO invoices (comp_code, amt, add_date) VALUES ($1, $2, $3) RETURNING `+invoiceColumns,
		compCode, amount, dateArg(&addDate),
	)
	inv, err := scanInvoice(row)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return Invoice{}, fmt.Errorf("%w: company %q does not exist", httpx.ErrValidation, compCode)
		}
		return Invoice{}, fmt.Errorf("create invoice: %w", err)
	}
	return inv, nil
}

func (r *repository) Update(ctx context.Context, inv Invoice) (Invoice, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE invoices SET amt = $2, paid = $3, paid_date = $4 WHERE id = $1 RETURNING `+invoiceColumns,
		inv.ID, inv.Amount, inv.Paid, dateArg(inv.PaidDate),
	)
	updated, err := scanInvoice(row)
	if err != nil {
		if db.IsNoRows(err) {
			return Invoice{}, notFound(inv.ID)
		}
		return Invoice{}, fmt.Errorf("update invoice: %w", err)
	}
	return updated, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound(id)
	}
	return nil
}

func scanInvoice(row pgx.Row) (Invoice, error) {
	var (
		inv               Invoice
		addDate, paidDate pgtype.Date
	)
	if err := row.Scan(&inv.ID, &inv.CompCode, &inv.Amount, &inv.Paid, &addDate, &paidDate); err != nil {
		return Invoice{}, err
	}
	inv.AddDate = addDate.Time
	inv.PaidDate = datePtr(paidDate)
	return inv, nil
}

func datePtr(d pgtype.Date) *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}

func dateArg(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: dateOf(*t), Valid: true}
}
