package companies

import (
	"context"

	"github.com/biztime/biztime/internal/platform/validation"
)

// Service implements the company resource on top of a Repository.
type Service struct {
	repo      Repository
	validator *validation.Validator
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, validator: validation.New()}
}

func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.repo.List(ctx)
}

// Get loads a company together with the ids of its invoices.
func (s *Service) Get(ctx context.Context, code string) (Detail, error) {
	company, err := s.repo.Get(ctx, code)
	if err != nil {
		return Detail{}, err
	}
	ids, err := s.repo.InvoiceIDs(ctx, code)
	if err != nil {
		return Detail{}, err
	}
	return Detail{Company: company, Invoices: ids}, nil
}

func (s *Service) Create(ctx context.Context, req CreateCompanyRequest) (Company, error) {
	company, err := s.validateCreate(req)
	if err != nil {
		return Company{}, err
	}
	return s.repo.Create(ctx, company)
}

// Update replaces name and description. The code never changes.
func (s *Service) Update(ctx context.Context, code string, req UpdateCompanyRequest) (Company, error) {
	req, err := s.validateUpdate(req)
	if err != nil {
		return Company{}, err
	}
	return s.repo.Update(ctx, code, req.Name, req.Description)
}

func (s *Service) Delete(ctx context.Context, code string) error {
	return s.repo.Delete(ctx, code)
}
