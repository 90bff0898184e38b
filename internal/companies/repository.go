package companies

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/biztime/biztime/internal/platform/db"
	"github.com/biztime/biztime/internal/platform/httpx"
)

// Repository is the store surface the company resource needs.
type Repository interface {
	List(ctx context.Context) ([]Summary, error)
	Get(ctx context.Context, code string) (Company, error)
	InvoiceIDs(ctx context.Context, code string) ([]int64, error)
	Create(ctx context.Context, company Company) (Company, error)
	Update(ctx context.Context, code, name string, description *string) (Company, error)
	Delete(ctx context.Context, code string) error
}

type repository struct {
	db db.DBTX
}

// NewRepository returns a Repository backed by PostgreSQL.
func NewRepository(conn db.DBTX) Repository {
	return &repository{db: conn}
}

func notFound(code string) error {
	return fmt.Errorf("company %q: %w", code, httpx.ErrNotFound)
}

func (r *repository) List(ctx context.Context) ([]Summary, error) {
	rows, err := r.db.Query(ctx, `SELECT code, name FROM companies ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	companies := make([]Summary, 0)
	for rows.Next() {
		var c Summary
		if err := rows.Scan(&c.Code, &c.Name); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (r *repository) Get(ctx context.Context, code string) (Company, error) {
	row := r.db.QueryRow(ctx, `SELECT code, name, description FROM companies WHERE code = $1`, code)
	c, err := scanCompany(row)
	if err != nil {
		if db.IsNoRows(err) {
			return Company{}, notFound(code)
		}
		return Company{}, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

func (r *repository) InvoiceIDs(ctx context.Context, code string) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM invoices WHERE comp_code = $1 ORDER BY id`, code)
	if err != nil {
		return nil, fmt.Errorf("list company invoices: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan invoice id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *repository) Create(ctx context.Context, company Company) (Company, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO companies (code, name, description) VALUES ($1, $2, $3) RETURNING code, name, description`,
		company.Code, company.Name, textArg(company.Description),
	)
	c, err := scanCompany(row)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return Company{}, fmt.Errorf("company %q: %w", company.Code, httpx.ErrDuplicate)
		}
		return Company{}, fmt.Errorf("create company: %w", err)
	}
	return c, nil
}

func (r *repository) Update(ctx context.Context, code, name string, description *string) (Company, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE companies SET name = $2, description = $3 WHERE code = $1 RETURNING code, name, description`,
		code, name, textArg(description),
	)
	c, err := scanCompany(row)
	if err != nil {
		if db.IsNoRows(err) {
			return Company{}, notFound(code)
		}
		if db.IsUniqueViolation(err) {
			return Company{}, fmt.Errorf("company name %q: %w", name, httpx.ErrDuplicate)
		}
		return Company{}, fmt.Errorf("update company: %w", err)
	}
	return c, nil
}

func (r *repository) Delete(ctx context.Context, code string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM companies WHERE code = $1`, code)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return fmt.Errorf("company %q is still referenced by invoices: %w", code, httpx.ErrConflict)
		}
		return fmt.Errorf("delete company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound(code)
	}
	return nil
}

func scanCompany(row pgx.Row) (Company, error) {
	var (
		c           Company
		description pgtype.Text
	)
	if err := row.Scan(&c.Code, &c.Name, &description); err != nil {
		return Company{}, err
	}
	if description.Valid {
		c.Description = &description.String
	}
	return c, nil
}

func textArg(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
