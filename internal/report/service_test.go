// AngelaMos | 2026
// service_test.go

package report

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) InvoiceTotals(ctx context.Context) ([]float64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

func (m *mockRepository) TopProducts(
	ctx context.Context,
	limit int,
) ([]TopProduct, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]TopProduct), args.Error(1)
}

func (m *mockRepository) ActiveCustomers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func TestBuild_EmptyLedger(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, slog.New(slog.DiscardHandler))

	repo.On("InvoiceTotals", mock.Anything).Return([]float64{}, nil)
	repo.On("TopProducts", mock.Anything, 5).Return([]TopProduct{}, nil)
	repo.On("ActiveCustomers", mock.Anything).Return(0, nil)

	report, err := svc.Build(context.Background())
	require.NoError(t, err)

	assert.Zero(t, report.TotalSales)
	assert.Nil(t, report.AveragePurchase)
	assert.Nil(t, report.MedianPurchase)
	assert.Zero(t, report.ActiveCustomers)
	assert.Empty(t, report.TopProducts)
}

func TestBuild_PopulatedLedger(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, slog.New(slog.DiscardHandler))

	repo.On("InvoiceTotals", mock.Anything).
		Return([]float64{10, 10, 10, 100}, nil)
	repo.On("TopProducts", mock.Anything, 5).Return([]TopProduct{
		{ProductID: "p1", Name: "Oat Milk", InvoiceCount: 3},
		{ProductID: "p2", Name: "Rye Bread", InvoiceCount: 1},
	}, nil)
	repo.On("ActiveCustomers", mock.Anything).Return(2, nil)

	report, err := svc.Build(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 130, report.TotalSales, 1e-9)
	require.NotNil(t, report.AveragePurchase)
	assert.InDelta(t, 32.5, *report.AveragePurchase, 1e-9)
	require.NotNil(t, report.MedianPurchase)
	assert.InDelta(t, 10, *report.MedianPurchase, 1e-9)
	assert.Equal(t, 2, report.ActiveCustomers)
	assert.Len(t, report.TopProducts, 2)
}

func TestBuild_QueryFailureIsFatal(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, slog.New(slog.DiscardHandler))

	repo.On("InvoiceTotals", mock.Anything).
		Return(nil, errors.New("connection reset"))

	_, err := svc.Build(context.Background())
	require.Error(t, err)
}
