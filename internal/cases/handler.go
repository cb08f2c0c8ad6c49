// AngelaMos | 2026
// handler.go

package cases

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/precinct/internal/core"
	"github.com/angelamos/precinct/internal/middleware"
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

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/cases", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.ListCases)
		r.Post("/", h.CreateCase)
		r.Get("/{caseID}", h.GetCase)
		r.Put("/{caseID}", h.UpdateCase)
		r.Delete("/{caseID}", h.DeleteCase)
	})
}

func (h *Handler) ListCases(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, CasesResponse{Cases: list})
}

func (h *Handler) CreateCase(w http.ResponseWriter, r *http.Request) {
	var req CreateCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	userID := middleware.GetUserID(r.Context())

	c, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, CaseResponse{Case: *c})
}

func (h *Handler) GetCase(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "caseID"))
	if err != nil {
		core.BadRequest(w, "invalid case id")
		return
	}

	c, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "case")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, CaseResponse{Case: *c})
}

func (h *Handler) UpdateCase(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "caseID"))
	if err != nil {
		core.BadRequest(w, "invalid case id")
		return
	}

	var req UpdateCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	c, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "case")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, CaseResponse{Case: *c})
}

func (h *Handler) DeleteCase(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "caseID"))
	if err != nil {
		core.BadRequest(w, "invalid case id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "case")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, core.MessageResponse{Message: "deleted successfully"})
}
