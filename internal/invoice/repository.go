// AngelaMos | 2026
// repository.go

package invoice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/grocerly/backoffice/internal/core"
)

type Repository interface {
	Create(ctx context.Context, inv *Invoice) error
	GetByID(ctx context.Context, id string) (*Invoice, error)
	Update(ctx context.Context, inv *Invoice) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params ListInvoicesParams) ([]Invoice, int, error)
	TotalsByUser(ctx context.Context, userID string) ([]float64, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Create inserts the invoice row and its product links in one transaction
// so a rejected product reference never leaves a half-written invoice.
func (r *repository) Create(ctx context.Context, inv *Invoice) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO invoices (id, user_id, total)
			VALUES ($1, $2, $3)
			RETURNING created_at, updated_at`

		err := tx.GetContext(ctx, inv, query, inv.ID, inv.UserID, inv.Total)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return fmt.Errorf("create invoice: %w", core.ErrInvalidInput)
			}
			return fmt.Errorf("create invoice: %w", err)
		}

		if err := insertProducts(ctx, tx, inv.ID, inv.ProductIDs); err != nil {
			return err
		}

		return nil
	})
}

func (r *repository) GetByID(ctx context.Context, id string) (*Invoice, error) {
	var inv Invoice
	query := `
		SELECT id, user_id, total, created_at, updated_at
		FROM invoices
		WHERE id = $1`

	if err := r.db.GetContext(ctx, &inv, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get invoice: %w", core.ErrNotFound)
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}

	productIDs, err := r.productIDs(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	inv.ProductIDs = productIDs

	return &inv, nil
}

// Update rewrites the mutable columns and replaces the product links.
// CreatedAt is deliberately left untouched.
func (r *repository) Update(ctx context.Context, inv *Invoice) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			UPDATE invoices
			SET total = $2, updated_at = NOW()
			WHERE id = $1
			RETURNING updated_at`

		err := tx.GetContext(ctx, &inv.UpdatedAt, query, inv.ID, inv.Total)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("update invoice: %w", core.ErrNotFound)
			}
			return fmt.Errorf("update invoice: %w", err)
		}

		del := `DELETE FROM invoice_products WHERE invoice_id = $1`
		if _, err := tx.ExecContext(ctx, del, inv.ID); err != nil {
			return fmt.Errorf("clear invoice products: %w", err)
		}

		return insertProducts(ctx, tx, inv.ID, inv.ProductIDs)
	})
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		del := `DELETE FROM invoice_products WHERE invoice_id = $1`
		if _, err := tx.ExecContext(ctx, del, id); err != nil {
			return fmt.Errorf("delete invoice products: %w", err)
		}

		result, err := tx.ExecContext(
			ctx, `DELETE FROM invoices WHERE id = $1`, id,
		)
		if err != nil {
			return fmt.Errorf("delete invoice: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete invoice: %w", err)
		}
		if rows == 0 {
			return fmt.Errorf("delete invoice: %w", core.ErrNotFound)
		}

		return nil
	})
}

func (r *repository) List(
	ctx context.Context,
	params ListInvoicesParams,
) ([]Invoice, int, error) {
	where := ""
	args := []any{}
	if params.UserID != "" {
		where = "WHERE user_id = $1"
		args = append(args, params.UserID)
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM invoices %s", where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count invoices: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, total, created_at, updated_at
		FROM invoices
		%s
		ORDER BY created_at DESC, id
		LIMIT %d OFFSET %d`,
		where, params.PageSize, params.Offset())

	invoices := []Invoice{}
	if err := r.db.SelectContext(ctx, &invoices, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}

	for i := range invoices {
		productIDs, err := r.productIDs(ctx, r.db, invoices[i].ID)
		if err != nil {
			return nil, 0, err
		}
		invoices[i].ProductIDs = productIDs
	}

	return invoices, total, nil
}

// TotalsByUser returns every invoice total for one customer, oldest first.
func (r *repository) TotalsByUser(
	ctx context.Context,
	userID string,
) ([]float64, error) {
	totals := []float64{}
	query := `
		SELECT total
		FROM invoices
		WHERE user_id = $1
		ORDER BY created_at, id`

	if err := r.db.SelectContext(ctx, &totals, query, userID); err != nil {
		return nil, fmt.Errorf("invoice totals: %w", err)
	}

	return totals, nil
}

func (r *repository) productIDs(
	ctx context.Context,
	db core.DBTX,
	invoiceID string,
) ([]string, error) {
	ids := []string{}
	query := `
		SELECT product_id
		FROM invoice_products
		WHERE invoice_id = $1
		ORDER BY product_id`

	if err := db.SelectContext(ctx, &ids, query, invoiceID); err != nil {
		return nil, fmt.Errorf("invoice products: %w", err)
	}

	return ids, nil
}

func insertProducts(
	ctx context.Context,
	tx *sqlx.Tx,
	invoiceID string,
	productIDs []string,
) error {
	query := `
		INSERT INTO invoice_products (invoice_id, product_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`

	for _, productID := range productIDs {
		if _, err := tx.ExecContext(ctx, query, invoiceID, productID); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return fmt.Errorf(
					"link product %s: %w", productID, core.ErrInvalidInput,
				)
			}
			return fmt.Errorf("link product %s: %w", productID, err)
		}
	}

	return nil
}
