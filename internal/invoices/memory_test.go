package invoices

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/biztime/biztime/internal/platform/httpx"
)

type memoryRepo struct {
	companies map[string]Company
	invoices  map[int64]Invoice
	nextID    int64
	txCount   int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{companies: map[string]Company{}, invoices: map[int64]Invoice{}}
}

func (m *memoryRepo) addCompany(c Company) {
	m.companies[c.Code] = c
}

func (m *memoryRepo) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	m.txCount++
	snapshot := make(map[int64]Invoice, len(m.invoices))
	for k, v := range m.invoices {
		snapshot[k] = v
	}
	if err := fn(ctx, m); err != nil {
		m.invoices = snapshot
		return err
	}
	return nil
}

func (m *memoryRepo) List(ctx context.Context) ([]Summary, error) {
	out := make([]Summary, 0, len(m.invoices))
	for _, inv := range m.invoices {
		out = append(out, Summary{ID: inv.ID, CompCode: inv.CompCode})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryRepo) Get(ctx context.Context, id int64) (Detail, error) {
	inv, ok := m.invoices[id]
	if !ok {
		return Detail{}, notFound(id)
	}
	return Detail{Invoice: inv, Company: m.companies[inv.CompCode]}, nil
}

func (m *memoryRepo) GetForUpdate(ctx context.Context, id int64) (Invoice, error) {
	inv, ok := m.invoices[id]
	if !ok {
		return Invoice{}, notFound(id)
	}
	return inv, nil
}

func (m *memoryRepo) Create(ctx context.Context, compCode string, amount float64, addDate time.Time) (Invoice, error) {
	if _, ok := m.companies[compCode]; !ok {
		return Invoice{}, fmt.Errorf("%w: company %q does not exist", httpx.ErrValidation, compCode)
	}
	m.nextID++
	inv := Invoice{ID: m.nextID, CompCode: compCode, Amount: amount, AddDate: addDate}
	m.invoices[inv.ID] = inv
	return inv, nil
}

func (m *memoryRepo) Update(ctx context.Context, inv Invoice) (Invoice, error) {
	if _, ok := m.invoices[inv.ID]; !ok {
		return Invoice{}, notFound(inv.ID)
	}
	m.invoices[inv.ID] = inv
	return inv, nil
}

func (m *memoryRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.invoices[id]; !ok {
		return notFound(id)
	}
	delete(m.invoices, id)
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func floatPtr(f float64) *float64 { return &f }

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }
