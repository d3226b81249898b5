// AngelaMos | 2026
// service.go

package product

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(
	ctx context.Context,
	req CreateProductRequest,
) (*Product, error) {
	product := &Product{
		ID:                uuid.New().String(),
		Name:              req.Name,
		Price:             req.Price,
		Brand:             req.Brand,
		Picture:           req.Picture,
		Category:          req.Category,
		NutritionalInfo:   req.NutritionalInfo,
		AvailableQuantity: req.AvailableQuantity,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateProductRequest,
) (*Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		product.Price = req.Price
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	if req.Picture != nil {
		product.Picture = *req.Picture
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.NutritionalInfo != nil {
		product.NutritionalInfo = *req.NutritionalInfo
	}
	if req.AvailableQuantity != nil {
		product.AvailableQuantity = *req.AvailableQuantity
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(
	ctx context.Context,
	params ListProductsParams,
) ([]Product, int, error) {
	params.Normalize()
	return s.repo.List(ctx, params)
}

func (s *Service) AllExist(ctx context.Context, ids []string) (bool, error) {
	return s.repo.ExistByIDs(ctx, ids)
}
