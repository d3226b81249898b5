// AngelaMos | 2026
// repository.go

package report

import (
	"context"
	"fmt"

	"github.com/grocerly/backoffice/internal/core"
)

// TopProduct is one row of the best-sellers ranking.
type TopProduct struct {
	ProductID    string `db:"product_id" json:"product_id"`
	Name         string `db:"name" json:"name"`
	InvoiceCount int    `db:"invoice_count" json:"invoice_count"`
}

type Repository interface {
	InvoiceTotals(ctx context.Context) ([]float64, error)
	TopProducts(ctx context.Context, limit int) ([]TopProduct, error)
	ActiveCustomers(ctx context.Context) (int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) InvoiceTotals(ctx context.Context) ([]float64, error) {
	totals := []float64{}
	query := `SELECT total FROM invoices`

	if err := r.db.SelectContext(ctx, &totals, query); err != nil {
		return nil, fmt.Errorf("invoice totals: %w", err)
	}

	return totals, nil
}

// TopProducts ranks catalog products by how many invoices reference them.
// Ties break on product ID ascending so the ranking is stable across runs.
func (r *repository) TopProducts(
	ctx context.Context,
	limit int,
) ([]TopProduct, error) {
	products := []TopProduct{}
	query := `
		SELECT p.id AS product_id,
		       p.name AS name,
		       COUNT(ip.invoice_id) AS invoice_count
		FROM products p
		JOIN invoice_products ip ON ip.product_id = p.id
		GROUP BY p.id, p.name
		ORDER BY invoice_count DESC, p.id ASC
		LIMIT $1`

	if err := r.db.SelectContext(ctx, &products, query, limit); err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}

	return products, nil
}

func (r *repository) ActiveCustomers(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(DISTINCT user_id) FROM invoices`

	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("active customers: %w", err)
	}

	return count, nil
}
