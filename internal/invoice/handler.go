// AngelaMos | 2026
// handler.go

package invoice

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/grocerly/backoffice/internal/core"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes mounts the invoice ledger. Every route requires a session;
// any authenticated account may read and write invoices.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/invoices", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/summary", h.CustomerSummary)
		r.Get("/{invoiceID}", h.Get)
		r.Put("/{invoiceID}", h.Update)
		r.Delete("/{invoiceID}", h.Delete)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	params := ListInvoicesParams{
		UserID: r.URL.Query().Get("user_id"),
	}
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		params.Page = page
	}
	if size, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil {
		params.PageSize = size
	}
	params.Normalize()

	invoices, total, err := h.service.List(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Paginated(
		w,
		ToInvoiceResponseList(invoices),
		params.Page,
		params.PageSize,
		total,
	)
}

func (h *Handler) CustomerSummary(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		core.BadRequest(w, "user_id query parameter is required")
		return
	}

	summary, err := h.service.CustomerSummary(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, summary)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, "invoiceID")

	inv, err := h.service.GetByID(r.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "invoice")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToInvoiceResponse(inv))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	inv, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "one or more referenced records do not exist")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToInvoiceResponse(inv))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, "invoiceID")

	var req UpdateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	inv, err := h.service.Update(r.Context(), invoiceID, req)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "invoice")
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, "one or more referenced records do not exist")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, ToInvoiceResponse(inv))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, "invoiceID")

	if err := h.service.Delete(r.Context(), invoiceID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "invoice")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}
