package invoices

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biztime/biztime/internal/platform/httpx"
)

func newTestService(t *testing.T) (*Service, *memoryRepo, *fixedClock) {
	t.Helper()
	repo := newMemoryRepo()
	repo.addCompany(Company{Code: "testco", Name: "Test Company", Description: strPtr("Test description")})
	clock := &fixedClock{now: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)}
	return NewService(repo, clock.Now), repo, clock
}

func TestServiceCreateDefaults(t *testing.T) {
	svc, _, _ := newTestService(t)

	inv, err := svc.Create(context.Background(), CreateInvoiceRequest{CompCode: "testco", Amount: floatPtr(200)})
	require.NoError(t, err)
	assert.Equal(t, "testco", inv.CompCode)
	assert.Equal(t, 200.0, inv.Amount)
	assert.False(t, inv.Paid)
	assert.Nil(t, inv.PaidDate)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), inv.AddDate)
}

func TestServiceCreateValidation(t *testing.T) {
	svc, _, _ := newTestService(t)

	cases := []CreateInvoiceRequest{
		{Amount: floatPtr(10)},
		{CompCode: "testco"},
		{CompCode: "testco", Amount: floatPtr(0)},
		{CompCode: "testco", Amount: floatPtr(-5)},
		{CompCode: "nonexist", Amount: floatPtr(10)},
	}
	for _, req := range cases {
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, httpx.ErrValidation, "%+v", req)
	}
}

func TestServiceUpdatePaidLifecycle(t *testing.T) {
	svc, _, clock := newTestService(t)
	ctx := context.Background()

	inv, err := svc.Create(ctx, CreateInvoiceRequest{CompCode: "testco", Amount: floatPtr(100)})
	require.NoError(t, err)

	clock.now = time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	paid, err := svc.Update(ctx, inv.ID, UpdateInvoiceRequest{Paid: boolPtr(true)})
	require.NoError(t, err)
	require.True(t, paid.Paid)
	require.NotNil(t, paid.PaidDate)
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), *paid.PaidDate)

	clock.now = time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC)
	again, err := svc.Update(ctx, inv.ID, UpdateInvoiceRequest{Paid: boolPtr(true)})
	require.NoError(t, err)
	require.NotNil(t, again.PaidDate)
	assert.Equal(t, *paid.PaidDate, *again.PaidDate)

	unpaid, err := svc.Update(ctx, inv.ID, UpdateInvoiceRequest{Paid: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, unpaid.Paid)
	assert.Nil(t, unpaid.PaidDate)
}

func TestServiceUpdateAmountOnly(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	inv, err := svc.Create(ctx, CreateInvoiceRequest{CompCode: "testco", Amount: floatPtr(200)})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, inv.ID, UpdateInvoiceRequest{Amount: floatPtr(300)})
	require.NoError(t, err)
	assert.Equal(t, 300.0, updated.Amount)
	assert.False(t, updated.Paid)
	assert.Nil(t, updated.PaidDate)
	assert.Equal(t, 1, repo.txCount)
}

func TestServiceUpdateErrors(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, 999, UpdateInvoiceRequest{Amount: floatPtr(400)})
	require.ErrorIs(t, err, httpx.ErrNotFound)

	inv, err := svc.Create(ctx, CreateInvoiceRequest{CompCode: "testco", Amount: floatPtr(200)})
	require.NoError(t, err)
	_, err = svc.Update(ctx, inv.ID, UpdateInvoiceRequest{Amount: floatPtr(-1)})
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestServiceDeleteIsDurable(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	inv, err := svc.Create(ctx, CreateInvoiceRequest{CompCode: "testco", Amount: floatPtr(50)})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, inv.ID))
	_, err = svc.Get(ctx, inv.ID)
	require.ErrorIs(t, err, httpx.ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, inv.ID), httpx.ErrNotFound)
}
