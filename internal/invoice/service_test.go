// AngelaMos | 2026
// service_test.go

package invoice

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/grocerly/backoffice/internal/core"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, inv *Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *mockRepository) GetByID(
	ctx context.Context,
	id string,
) (*Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Invoice), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, inv *Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepository) List(
	ctx context.Context,
	params ListInvoicesParams,
) ([]Invoice, int, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]Invoice), args.Int(1), args.Error(2)
}

func (m *mockRepository) TotalsByUser(
	ctx context.Context,
	userID string,
) ([]float64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]float64), args.Error(1)
}

type mockProductChecker struct {
	mock.Mock
}

func (m *mockProductChecker) AllExist(
	ctx context.Context,
	ids []string,
) (bool, error) {
	args := m.Called(ctx, ids)
	return args.Bool(0), args.Error(1)
}

func newTestService(
	repo *mockRepository,
	products *mockProductChecker,
) *Service {
	return NewService(repo, products, slog.New(slog.DiscardHandler))
}

func TestCreate_Success(t *testing.T) {
	repo := new(mockRepository)
	products := new(mockProductChecker)
	svc := newTestService(repo, products)

	productIDs := []string{
		"6a1c7a2e-8a17-4f3c-96ce-8f2b2b48f7f0",
		"b0d4de53-30f5-4f40-a7f4-1d2f4a3e8c11",
	}

	products.On("AllExist", mock.Anything, productIDs).Return(true, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(inv *Invoice) bool {
		return inv.ID != "" &&
			inv.UserID == "user-1" &&
			inv.Total == 42.50 &&
			len(inv.ProductIDs) == 2
	})).Return(nil)

	inv, err := svc.Create(context.Background(), CreateInvoiceRequest{
		UserID:     "user-1",
		Total:      42.50,
		ProductIDs: productIDs,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, inv.ID)
	assert.Equal(t, 42.50, inv.Total)

	repo.AssertExpectations(t)
	products.AssertExpectations(t)
}

func TestCreate_UnknownProduct(t *testing.T) {
	repo := new(mockRepository)
	products := new(mockProductChecker)
	svc := newTestService(repo, products)

	products.On("AllExist", mock.Anything, mock.Anything).Return(false, nil)

	_, err := svc.Create(context.Background(), CreateInvoiceRequest{
		UserID:     "user-1",
		Total:      10,
		ProductIDs: []string{"2f3c1f8e-0000-4000-8000-000000000000"},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidInput))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdate_ReplacesProducts(t *testing.T) {
	repo := new(mockRepository)
	products := new(mockProductChecker)
	svc := newTestService(repo, products)

	existing := &Invoice{
		ID:         "inv-1",
		UserID:     "user-1",
		Total:      10,
		ProductIDs: []string{"old-product"},
	}

	newProducts := []string{"c5f9e77a-2222-4222-8222-222222222222"}

	repo.On("GetByID", mock.Anything, "inv-1").Return(existing, nil)
	products.On("AllExist", mock.Anything, newProducts).Return(true, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(inv *Invoice) bool {
		return inv.Total == 99.99 &&
			len(inv.ProductIDs) == 1 &&
			inv.ProductIDs[0] == newProducts[0]
	})).Return(nil)

	total := 99.99
	inv, err := svc.Update(context.Background(), "inv-1", UpdateInvoiceRequest{
		Total:      &total,
		ProductIDs: &newProducts,
	})

	require.NoError(t, err)
	assert.Equal(t, 99.99, inv.Total)
	repo.AssertExpectations(t)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := new(mockRepository)
	products := new(mockProductChecker)
	svc := newTestService(repo, products)

	repo.On("GetByID", mock.Anything, "missing").
		Return(nil, core.ErrNotFound)

	_, err := svc.Update(context.Background(), "missing", UpdateInvoiceRequest{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestUpdate_PartialKeepsProducts(t *testing.T) {
	repo := new(mockRepository)
	products := new(mockProductChecker)
	svc := newTestService(repo, products)

	existing := &Invoice{
		ID:         "inv-1",
		UserID:     "user-1",
		Total:      10,
		ProductIDs: []string{"keep-me"},
	}

	repo.On("GetByID", mock.Anything, "inv-1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(inv *Invoice) bool {
		return inv.Total == 15 &&
			len(inv.ProductIDs) == 1 &&
			inv.ProductIDs[0] == "keep-me"
	})).Return(nil)

	total := 15.0
	_, err := svc.Update(context.Background(), "inv-1", UpdateInvoiceRequest{
		Total: &total,
	})

	require.NoError(t, err)
	products.AssertNotCalled(t, "AllExist", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestCustomerSummary_AggregatesSpend(t *testing.T) {
	repo := new(mockRepository)
	products := new(mockProductChecker)
	svc := newTestService(repo, products)

	repo.On("TotalsByUser", mock.Anything, "user-1").
		Return([]float64{10, 20, 40}, nil)

	summary, err := svc.CustomerSummary(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "user-1", summary.UserID)
	assert.Equal(t, 3, summary.InvoiceCount)
	assert.Equal(t, 70.0, summary.TotalSpend)
	require.NotNil(t, summary.AveragePurchase)
	assert.InDelta(t, 23.333, *summary.AveragePurchase, 0.001)
	repo.AssertExpectations(t)
}

func TestCustomerSummary_NoInvoices(t *testing.T) {
	repo := new(mockRepository)
	products := new(mockProductChecker)
	svc := newTestService(repo, products)

	repo.On("TotalsByUser", mock.Anything, "user-2").
		Return([]float64{}, nil)

	summary, err := svc.CustomerSummary(context.Background(), "user-2")

	require.NoError(t, err)
	assert.Equal(t, 0, summary.InvoiceCount)
	assert.Equal(t, 0.0, summary.TotalSpend)
	assert.Nil(t, summary.AveragePurchase)
}
