// AngelaMos | 2026
// handler.go

package plates

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
	r.Route("/license-plates", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.ListPlates)
		r.Post("/", h.CreatePlate)
		r.Get("/search/{plateNumber}", h.SearchPlate)
		r.Get("/{plateID}", h.GetPlate)
		r.Put("/{plateID}", h.UpdatePlate)
		r.Delete("/{plateID}", h.DeletePlate)
	})
}

func (h *Handler) ListPlates(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, PlatesResponse{LicensePlates: list})
}

func (h *Handler) CreatePlate(w http.ResponseWriter, r *http.Request) {
	var req CreatePlateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	userID := middleware.GetUserID(r.Context())

	p, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			core.JSONError(w, core.DuplicateError("plate number"))
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, PlateResponse{LicensePlate: *p})
}

// SearchPlate is an exact-match lookup by plate number.
func (h *Handler) SearchPlate(w http.ResponseWriter, r *http.Request) {
	plateNumber := chi.URLParam(r, "plateNumber")

	p, err := h.service.GetByPlateNumber(r.Context(), plateNumber)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "license plate")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, PlateResponse{LicensePlate: *p})
}

func (h *Handler) GetPlate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "plateID"))
	if err != nil {
		core.BadRequest(w, "invalid plate id")
		return
	}

	p, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "license plate")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, PlateResponse{LicensePlate: *p})
}

func (h *Handler) UpdatePlate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "plateID"))
	if err != nil {
		core.BadRequest(w, "invalid plate id")
		return
	}

	var req UpdatePlateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	p, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "license plate")
			return
		}
		if errors.Is(err, core.ErrDuplicateKey) {
			core.JSONError(w, core.DuplicateError("plate number"))
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, PlateResponse{LicensePlate: *p})
}

func (h *Handler) DeletePlate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "plateID"))
	if err != nil {
		core.BadRequest(w, "invalid plate id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "license plate")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, core.MessageResponse{Message: "deleted successfully"})
}
