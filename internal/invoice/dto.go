// AngelaMos | 2026
// dto.go

package invoice

import "time"

type CreateInvoiceRequest struct {
	UserID     string   `json:"user_id" validate:"required,uuid"`
	Total      float64  `json:"total" validate:"gte=0"`
	ProductIDs []string `json:"product_ids" validate:"required,min=1,dive,uuid"`
}

type UpdateInvoiceRequest struct {
	Total      *float64  `json:"total,omitempty" validate:"omitempty,gte=0"`
	ProductIDs *[]string `json:"product_ids,omitempty" validate:"omitempty,min=1,dive,uuid"`
}

type InvoiceResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Total      float64   `json:"total"`
	ProductIDs []string  `json:"product_ids"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CustomerSummaryResponse aggregates one customer's spend across the
// ledger. AveragePurchase is null when the customer has no invoices.
type CustomerSummaryResponse struct {
	UserID          string   `json:"user_id"`
	InvoiceCount    int      `json:"invoice_count"`
	TotalSpend      float64  `json:"total_spend"`
	AveragePurchase *float64 `json:"average_purchase"`
}

type ListInvoicesParams struct {
	Page     int
	PageSize int
	UserID   string
}

func (p *ListInvoicesParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 || p.PageSize > 100 {
		p.PageSize = 20
	}
}

func (p *ListInvoicesParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func ToInvoiceResponse(inv *Invoice) InvoiceResponse {
	productIDs := inv.ProductIDs
	if productIDs == nil {
		productIDs = []string{}
	}

	return InvoiceResponse{
		ID:         inv.ID,
		UserID:     inv.UserID,
		Total:      inv.Total,
		ProductIDs: productIDs,
		CreatedAt:  inv.CreatedAt,
		UpdatedAt:  inv.UpdatedAt,
	}
}

func ToInvoiceResponseList(invoices []Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses
}
