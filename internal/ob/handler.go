// AngelaMos | 2026
// handler.go

package ob

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
	r.Route("/ob-entries", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.ListEntries)
		r.Post("/", h.CreateEntry)
		r.Get("/{entryID}", h.GetEntry)
		r.Put("/{entryID}", h.UpdateEntry)
		r.Delete("/{entryID}", h.DeleteEntry)
	})
}

func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, EntriesResponse{OBEntries: list})
}

func (h *Handler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	userID := middleware.GetUserID(r.Context())

	e, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, EntryResponse{OBEntry: *e})
}

func (h *Handler) GetEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "entryID"))
	if err != nil {
		core.BadRequest(w, "invalid entry id")
		return
	}

	e, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "ob entry")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, EntryResponse{OBEntry: *e})
}

func (h *Handler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "entryID"))
	if err != nil {
		core.BadRequest(w, "invalid entry id")
		return
	}

	var req UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	e, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "ob entry")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, EntryResponse{OBEntry: *e})
}

func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "entryID"))
	if err != nil {
		core.BadRequest(w, "invalid entry id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "ob entry")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, core.MessageResponse{Message: "deleted successfully"})
}
