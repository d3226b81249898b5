// AngelaMos | 2026
// service.go

package invoice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/grocerly/backoffice/internal/core"
	"github.com/grocerly/backoffice/internal/report"
)

// ProductChecker reports whether every referenced product exists in the
// catalog. Satisfied by the product service.
type ProductChecker interface {
	AllExist(ctx context.Context, ids []string) (bool, error)
}

type Service struct {
	repo     Repository
	products ProductChecker
	logger   *slog.Logger
}

func NewService(
	repo Repository,
	products ProductChecker,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:     repo,
		products: products,
		logger:   logger,
	}
}

func (s *Service) Create(
	ctx context.Context,
	req CreateInvoiceRequest,
) (*Invoice, error) {
	if err := s.checkProducts(ctx, req.ProductIDs); err != nil {
		return nil, err
	}

	inv := &Invoice{
		ID:         uuid.NewString(),
		UserID:     req.UserID,
		Total:      req.Total,
		ProductIDs: req.ProductIDs,
	}

	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}

	s.logger.Info("invoice created",
		"invoice_id", inv.ID,
		"user_id", inv.UserID,
		"total", inv.Total)

	return inv, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Invoice, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateInvoiceRequest,
) (*Invoice, error) {
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Total != nil {
		inv.Total = *req.Total
	}
	if req.ProductIDs != nil {
		if err := s.checkProducts(ctx, *req.ProductIDs); err != nil {
			return nil, err
		}
		inv.ProductIDs = *req.ProductIDs
	}

	if err := s.repo.Update(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(
	ctx context.Context,
	params ListInvoicesParams,
) ([]Invoice, int, error) {
	params.Normalize()
	return s.repo.List(ctx, params)
}

// CustomerSummary folds one customer's invoice totals into spend figures.
// A customer with no invoices gets a zero-count summary, not an error.
func (s *Service) CustomerSummary(
	ctx context.Context,
	userID string,
) (*CustomerSummaryResponse, error) {
	totals, err := s.repo.TotalsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &CustomerSummaryResponse{
		UserID:          userID,
		InvoiceCount:    len(totals),
		TotalSpend:      report.TotalSales(totals),
		AveragePurchase: report.AveragePurchase(totals),
	}, nil
}

func (s *Service) checkProducts(ctx context.Context, ids []string) error {
	ok, err := s.products.AllExist(ctx, ids)
	if err != nil {
		return fmt.Errorf("checking products: %w", err)
	}
	if !ok {
		return fmt.Errorf(
			"invoice references unknown products: %w", core.ErrInvalidInput,
		)
	}
	return nil
}
