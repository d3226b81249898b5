// AngelaMos | 2026
// handler.go

package openfoodfacts

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grocerly/backoffice/internal/core"
)

type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) Fetch(w http.ResponseWriter, r *http.Request) {
	barcode := chi.URLParam(r, "barcode")
	if barcode == "" {
		core.BadRequest(w, "barcode is required")
		return
	}

	record, err := h.client.FetchProduct(r.Context(), barcode)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "product")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, record)
}
