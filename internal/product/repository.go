// AngelaMos | 2026
// repository.go

package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/grocerly/backoffice/internal/core"
)

type Repository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params ListProductsParams) ([]Product, int, error)
	ExistByIDs(ctx context.Context, ids []string) (bool, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, product *Product) error {
	query := `
		INSERT INTO products (
			id, name, price, brand, picture, category,
			nutritional_info, available_quantity
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, product, query,
		product.ID,
		product.Name,
		product.Price,
		product.Brand,
		product.Picture,
		product.Category,
		product.NutritionalInfo,
		product.AvailableQuantity,
	)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*Product, error) {
	query := `
		SELECT id, name, price, brand, picture, category,
		       nutritional_info, available_quantity, created_at, updated_at
		FROM products
		WHERE id = $1`

	var product Product
	err := r.db.GetContext(ctx, &product, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get product: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	return &product, nil
}

func (r *repository) Update(ctx context.Context, product *Product) error {
	query := `
		UPDATE products
		SET name = $2, price = $3, brand = $4, picture = $5, category = $6,
		    nutritional_info = $7, available_quantity = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &product.UpdatedAt, query,
		product.ID,
		product.Name,
		product.Price,
		product.Brand,
		product.Picture,
		product.Category,
		product.NutritionalInfo,
		product.AvailableQuantity,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update product: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM products WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete product: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(
	ctx context.Context,
	params ListProductsParams,
) ([]Product, int, error) {
	params.Normalize()

	conditions := []string{"TRUE"}
	var args []any
	argIdx := 1

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR brand ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+escapeLike(params.Search)+"%")
		argIdx++
	}

	if params.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argIdx))
		args = append(args, params.Category)
		argIdx++
	}

	if params.Brand != "" {
		conditions = append(conditions, fmt.Sprintf("brand = $%d", argIdx))
		args = append(args, params.Brand)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(
		"SELECT COUNT(*) FROM products WHERE %s",
		whereClause,
	)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, name, price, brand, picture, category,
		       nutritional_info, available_quantity, created_at, updated_at
		FROM products
		WHERE %s
		ORDER BY name ASC, id ASC
		LIMIT $%d OFFSET $%d`,
		whereClause, argIdx, argIdx+1)

	args = append(args, params.PageSize, params.Offset())

	var products []Product
	if err := r.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}

	return products, total, nil
}

// ExistByIDs reports whether every ID in the set refers to a stored product.
// The invoice ledger uses it to reject dangling references before writing.
func (r *repository) ExistByIDs(
	ctx context.Context,
	ids []string,
) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}

	unique := dedupe(ids)

	query, args, err := sqlx.In(
		"SELECT COUNT(DISTINCT id) FROM products WHERE id IN (?)",
		unique,
	)
	if err != nil {
		return false, fmt.Errorf("check products exist: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, r.db.Rebind(query), args...); err != nil {
		return false, fmt.Errorf("check products exist: %w", err)
	}

	return count == len(unique), nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
