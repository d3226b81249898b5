// AngelaMos | 2026
// handler.go

package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grocerly/backoffice/internal/core"
	"github.com/grocerly/backoffice/internal/middleware"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the KPI report behind the admin gate.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/reports", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(middleware.RequireAdmin)

		r.Get("/", h.Get)
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Build(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, report)
}
