// AngelaMos | 2026
// handler.go

package product

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/grocerly/backoffice/internal/authz"
	"github.com/grocerly/backoffice/internal/core"
	"github.com/grocerly/backoffice/internal/middleware"
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

// RegisterRoutes mounts the catalog routes. Reads require authentication,
// writes are gated by the product mutation policy. The external lookup
// endpoint proxies Open Food Facts and needs no session.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
	lookup http.HandlerFunc,
) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/openfoodfacts/{barcode}", lookup)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Get("/", h.List)
			r.Get("/{productID}", h.Get)

			r.With(middleware.RequirePermission(
				authz.ActionCreate, authz.ResourceProduct,
			)).Post("/", h.Create)

			r.With(middleware.RequirePermission(
				authz.ActionUpdate, authz.ResourceProduct,
			)).Put("/{productID}", h.Update)

			r.With(middleware.RequirePermission(
				authz.ActionDelete, authz.ResourceProduct,
			)).Delete("/{productID}", h.Delete)
		})
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	params := ListProductsParams{
		Page:     parseIntQuery(r, "page", 1),
		PageSize: parseIntQuery(r, "page_size", 20),
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
		Brand:    r.URL.Query().Get("brand"),
	}

	products, total, err := h.service.List(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Paginated(
		w,
		ToProductResponseList(products),
		params.Page,
		params.PageSize,
		total,
	)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	product, err := h.service.GetByID(r.Context(), productID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "product")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToProductResponse(product))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	product, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToProductResponse(product))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	product, err := h.service.Update(r.Context(), productID, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "product")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToProductResponse(product))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	if err := h.service.Delete(r.Context(), productID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "product")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func parseIntQuery(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return parsed
}
