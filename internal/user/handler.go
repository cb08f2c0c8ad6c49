// AngelaMos | 2026
// handler.go

package user

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
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator)
		r.Put("/profile", h.UpdateProfile)
	})

	r.Route("/users", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/", h.ListUsers)
		r.Delete("/{userID}", h.DeleteUser)
	})

	r.Route("/officers", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/", h.ListOfficers)
		r.Post("/", h.CreateOfficer)
		r.Put("/{officerID}", h.UpdateOfficer)
		r.Delete("/{officerID}", h.DeleteOfficer)
	})
}

// UpdateProfile lets the authenticated user edit their own record.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	updated, err := h.service.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			core.JSONError(w, core.DuplicateError("email"))
			return
		}
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "user")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, struct {
		User UserResponse `json:"user"`
	}{User: ToUserResponse(updated)})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, UsersResponse{Users: ToUserResponseList(users)})
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	h.deleteByParam(w, r, "userID")
}

func (h *Handler) ListOfficers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, OfficersResponse{Officers: ToUserResponseList(users)})
}

func (h *Handler) CreateOfficer(w http.ResponseWriter, r *http.Request) {
	var req CreateOfficerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	officer, err := h.service.CreateOfficer(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			core.JSONError(w, core.DuplicateError("username"))
			return
		}
		if errors.Is(err, ErrEmailTaken) {
			core.JSONError(w, core.DuplicateError("email"))
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, OfficerResponse{Officer: ToUserResponse(officer)})
}

func (h *Handler) UpdateOfficer(w http.ResponseWriter, r *http.Request) {
	officerID, err := strconv.Atoi(chi.URLParam(r, "officerID"))
	if err != nil {
		core.BadRequest(w, "invalid officer id")
		return
	}

	var req UpdateOfficerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	officer, err := h.service.UpdateOfficer(r.Context(), officerID, req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			core.JSONError(w, core.DuplicateError("email"))
			return
		}
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "officer")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, OfficerResponse{Officer: ToUserResponse(officer)})
}

func (h *Handler) DeleteOfficer(w http.ResponseWriter, r *http.Request) {
	h.deleteByParam(w, r, "officerID")
}

func (h *Handler) deleteByParam(
	w http.ResponseWriter,
	r *http.Request,
	param string,
) {
	targetID, err := strconv.Atoi(chi.URLParam(r, param))
	if err != nil {
		core.BadRequest(w, "invalid id")
		return
	}

	requesterID := middleware.GetUserID(r.Context())

	if err := h.service.Delete(r.Context(), requesterID, targetID); err != nil {
		if errors.Is(err, ErrSelfDelete) {
			core.BadRequest(w, "cannot delete your own account")
			return
		}
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "user")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, core.MessageResponse{Message: "deleted successfully"})
}
