// AngelaMos | 2026
// service.go

package report

import (
	"context"
	"fmt"
	"log/slog"
)

const topProductsLimit = 5

// Report is the KPI snapshot served to back-office staff. Average and
// median are null when the ledger is empty rather than zero, so dashboards
// can tell "no sales" apart from "free sales".
type Report struct {
	TotalSales      float64      `json:"total_sales"`
	AveragePurchase *float64     `json:"average_purchase"`
	MedianPurchase  *float64     `json:"median_purchase"`
	ActiveCustomers int          `json:"active_customers"`
	TopProducts     []TopProduct `json:"top_products"`
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Build assembles the full KPI report. The report is all-or-nothing: any
// query failure surfaces as a single error rather than a partial report.
func (s *Service) Build(ctx context.Context) (*Report, error) {
	totals, err := s.repo.InvoiceTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("building report: %w", err)
	}

	topProducts, err := s.repo.TopProducts(ctx, topProductsLimit)
	if err != nil {
		return nil, fmt.Errorf("building report: %w", err)
	}

	activeCustomers, err := s.repo.ActiveCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("building report: %w", err)
	}

	return &Report{
		TotalSales:      TotalSales(totals),
		AveragePurchase: AveragePurchase(totals),
		MedianPurchase:  MedianPurchase(totals),
		ActiveCustomers: activeCustomers,
		TopProducts:     topProducts,
	}, nil
}
