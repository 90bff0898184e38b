package companies

import (
	"context"
	"fmt"
	"sort"

	"github.com/biztime/biztime/internal/platform/httpx"
)

type memoryRepo struct {
	companies map[string]Company
	invoices  map[string][]int64
	failWith  error
}

func newMemoryRepo(seed ...Company) *memoryRepo {
	repo := &memoryRepo{companies: map[string]Company{}, invoices: map[string][]int64{}}
	for _, c := range seed {
		repo.companies[c.Code] = c
	}
	return repo
}

func (m *memoryRepo) List(ctx context.Context) ([]Summary, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := make([]Summary, 0, len(m.companies))
	for _, c := range m.companies {
		out = append(out, Summary{Code: c.Code, Name: c.Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (m *memoryRepo) Get(ctx context.Context, code string) (Company, error) {
	c, ok := m.companies[code]
	if !ok {
		return Company{}, notFound(code)
	}
	return c, nil
}

func (m *memoryRepo) InvoiceIDs(ctx context.Context, code string) ([]int64, error) {
	ids := append([]int64{}, m.invoices[code]...)
	return ids, nil
}

func (m *memoryRepo) Create(ctx context.Context, company Company) (Company, error) {
	if _, ok := m.companies[company.Code]; ok {
		return Company{}, fmt.Errorf("company %q: %w", company.Code, httpx.ErrDuplicate)
	}
	m.companies[company.Code] = company
	return company, nil
}

func (m *memoryRepo) Update(ctx context.Context, code, name string, description *string) (Company, error) {
	c, ok := m.companies[code]
	if !ok {
		return Company{}, notFound(code)
	}
	for other, existing := range m.companies {
		if other != code && existing.Name == name {
			return Company{}, fmt.Errorf("company name %q: %w", name, httpx.ErrDuplicate)
		}
	}
	c.Name = name
	c.Description = description
	m.companies[code] = c
	return c, nil
}

func (m *memoryRepo) Delete(ctx context.Context, code string) error {
	if _, ok := m.companies[code]; !ok {
		return notFound(code)
	}
	delete(m.companies, code)
	delete(m.invoices, code)
	return nil
}

func strPtr(s string) *string { return &s }
