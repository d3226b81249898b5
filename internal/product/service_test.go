// AngelaMos | 2026
// service_test.go

package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/grocerly/backoffice/internal/core"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, p *Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockRepository) GetByID(
	ctx context.Context,
	id string,
) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, p *Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepository) List(
	ctx context.Context,
	params ListProductsParams,
) ([]Product, int, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]Product), args.Int(1), args.Error(2)
}

func (m *mockRepository) ExistByIDs(
	ctx context.Context,
	ids []string,
) (bool, error) {
	args := m.Called(ctx, ids)
	return args.Bool(0), args.Error(1)
}

func TestCreate_AssignsID(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *Product) bool {
		return p.ID != "" && p.Name == "Oat Milk"
	})).Return(nil)

	price := 2.49
	product, err := svc.Create(context.Background(), CreateProductRequest{
		Name:              "Oat Milk",
		Price:             &price,
		Brand:             "Oatly",
		AvailableQuantity: 12,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	repo.AssertExpectations(t)
}

func TestUpdate_MergesOnlyProvidedFields(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	price := 1.99
	existing := &Product{
		ID:       "p1",
		Name:     "Rye Bread",
		Price:    &price,
		Brand:    "Bakehouse",
		Category: "bread",
	}

	repo.On("GetByID", mock.Anything, "p1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *Product) bool {
		return p.Name == "Dark Rye Bread" &&
			p.Brand == "Bakehouse" &&
			*p.Price == 1.99
	})).Return(nil)

	name := "Dark Rye Bread"
	product, err := svc.Update(context.Background(), "p1", UpdateProductRequest{
		Name: &name,
	})

	require.NoError(t, err)
	assert.Equal(t, "Dark Rye Bread", product.Name)
	assert.Equal(t, "bread", product.Category)
	repo.AssertExpectations(t)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, "missing").
		Return(nil, core.ErrNotFound)

	_, err := svc.Update(context.Background(), "missing", UpdateProductRequest{})
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestList_NormalizesPagination(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("List", mock.Anything,
		mock.MatchedBy(func(p ListProductsParams) bool {
			return p.Page == 1 && p.PageSize == 20
		}),
	).Return([]Product{}, 0, nil)

	_, _, err := svc.List(context.Background(), ListProductsParams{
		Page:     -3,
		PageSize: 0,
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
