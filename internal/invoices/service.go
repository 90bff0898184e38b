package invoices

import (
	"context"
	"time"

	"github.com/biztime/biztime/internal/platform/validation"
)

// Service implements the invoice resource on top of a Repository.
type Service struct {
	repo      Repository
	validator *validation.Validator
	now       func() time.Time
}

// NewService builds a Service. A nil clock defaults to time.Now.
func NewService(repo Repository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, validator: validation.New(), now: now}
}

func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Detail, error) {
	return s.repo.Get(ctx, id)
}

// Create records a new unpaid invoice dated today.
func (s *Service) Create(ctx context.Context, req CreateInvoiceRequest) (Invoice, error) {
	req, err := s.validateCreate(req)
	if err != nil {
		return Invoice{}, err
	}
	return s.repo.Create(ctx, req.CompCode, *req.Amount, dateOf(s.now()))
}

// Update applies the amount and paid changes to an invoice. The current row
// is locked for the duration of the read-modify-write.
func (s *Service) Update(ctx context.Context, id int64, req UpdateInvoiceRequest) (Invoice, error) {
	if err := s.validateUpdate(req); err != nil {
		return Invoice{}, err
	}

	var updated Invoice
	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		inv, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if req.Amount != nil {
			inv.Amount = *req.Amount
		}
		if req.Paid != nil {
			inv.SetPaid(*req.Paid, s.now())
		}
		updated, err = repo.Update(ctx, inv)
		return err
	})
	if err != nil {
		return Invoice{}, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
