// AngelaMos | 2026
// entity.go

package product

import (
	"time"
)

type Product struct {
	ID                string    `db:"id"`
	Name              string    `db:"name"`
	Price             *float64  `db:"price"`
	Brand             string    `db:"brand"`
	Picture           string    `db:"picture"`
	Category          string    `db:"category"`
	NutritionalInfo   string    `db:"nutritional_info"`
	AvailableQuantity int       `db:"available_quantity"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

func (p *Product) InStock() bool {
	return p.AvailableQuantity > 0
}
