// AngelaMos | 2026
// dto.go

package product

import (
	"time"
)

type CreateProductRequest struct {
	Name              string   `json:"name"                         validate:"required,min=1,max=255"`
	Price             *float64 `json:"price,omitempty"              validate:"omitempty,gte=0"`
	Brand             string   `json:"brand,omitempty"              validate:"omitempty,max=255"`
	Picture           string   `json:"picture,omitempty"            validate:"omitempty,url,max=2048"`
	Category          string   `json:"category,omitempty"`
	NutritionalInfo   string   `json:"nutritional_info,omitempty"`
	AvailableQuantity int      `json:"available_quantity,omitempty" validate:"omitempty,gte=0"`
}

type UpdateProductRequest struct {
	Name              *string  `json:"name,omitempty"    validate:"omitempty,min=1,max=255"`
	Price             *float64 `json:"price,omitempty"   validate:"omitempty,gte=0"`
	Brand             *string  `json:"brand,omitempty"   validate:"omitempty,max=255"`
	Picture           *string  `json:"picture,omitempty" validate:"omitempty,url,max=2048"`
	Category          *string  `json:"category,omitempty"`
	NutritionalInfo   *string  `json:"nutritional_info,omitempty"`
	AvailableQuantity *int     `json:"available_quantity,omitempty" validate:"omitempty,gte=0"`
}

type ProductResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Price             *float64  `json:"price"`
	Brand             string    `json:"brand,omitempty"`
	Picture           string    `json:"picture,omitempty"`
	Category          string    `json:"category,omitempty"`
	NutritionalInfo   string    `json:"nutritional_info,omitempty"`
	AvailableQuantity int       `json:"available_quantity"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type ListProductsParams struct {
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Search   string `json:"search"`
	Category string `json:"category"`
	Brand    string `json:"brand"`
}

func (p *ListProductsParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

func (p *ListProductsParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func ToProductResponse(p *Product) ProductResponse {
	return ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Price:             p.Price,
		Brand:             p.Brand,
		Picture:           p.Picture,
		Category:          p.Category,
		NutritionalInfo:   p.NutritionalInfo,
		AvailableQuantity: p.AvailableQuantity,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func ToProductResponseList(products []Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, ToProductResponse(&p))
	}
	return responses
}
