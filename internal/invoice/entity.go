// AngelaMos | 2026
// entity.go

package invoice

import "time"

// Invoice records a purchase: a customer, the products bought, and the
// charged total. CreatedAt is set once at insert and never modified.
type Invoice struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Total     float64   `db:"total" json:"total"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	// ProductIDs is loaded from the join table, not a column.
	ProductIDs []string `db:"-" json:"product_ids"`
}
