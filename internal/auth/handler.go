// AngelaMos | 2026
// handler.go

package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/precinct/internal/config"
	"github.com/angelamos/precinct/internal/core"
	"github.com/angelamos/precinct/internal/middleware"
	"github.com/angelamos/precinct/internal/user"
)

type Handler struct {
	service   *Service
	validator *validator.Validate

	cookieName   string
	sessionTTL   time.Duration
	secureCookie bool
}

func NewHandler(service *Service, cfg *config.Config) *Handler {
	return &Handler{
		service:      service,
		validator:    validator.New(validator.WithRequiredStructEnabled()),
		cookieName:   cfg.Session.CookieName,
		sessionTTL:   cfg.Session.TTL,
		secureCookie: cfg.IsProduction(),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
	loginLimiter func(http.Handler) http.Handler,
) {
	r.Route("/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(loginLimiter)
			r.Post("/login", h.Login)
			r.Post("/forgot-password", h.ForgotPassword)
		})

		r.Post("/reset-password", h.ResetPassword)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Post("/logout", h.Logout)
			r.Get("/me", h.Me)
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(adminOnly)
			r.Post("/register", h.Register)
		})
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	u, sess, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			core.Unauthorized(w, "invalid username or password")
		case errors.Is(err, ErrAccountDisabled):
			core.Forbidden(w, "account is disabled")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	h.setSessionCookie(w, sess.ID)
	core.OK(w, LoginResponse{User: user.ToUserResponse(u)})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	if err := h.service.Logout(r.Context(), sessionID); err != nil {
		core.InternalServerError(w, err)
		return
	}

	h.clearSessionCookie(w)
	core.OK(w, core.MessageResponse{Message: "logged out"})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	u, err := h.service.CurrentUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			// The account vanished mid-session.
			h.clearSessionCookie(w)
			core.Unauthorized(w, "account no longer exists")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, LoginResponse{User: user.ToUserResponse(u)})
}

func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	token, err := h.service.ForgotPassword(r.Context(), req.Username)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ForgotPasswordResponse{
		Message: "if the account exists, a reset token has been issued",
		Token:   token,
	})
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	if err := h.service.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		if errors.Is(err, ErrInvalidToken) {
			core.BadRequest(w, "invalid or expired reset token")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, core.MessageResponse{Message: "password has been reset"})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	u, err := h.service.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUsernameTaken):
			core.JSONError(w, core.DuplicateError("username"))
		case errors.Is(err, user.ErrEmailTaken):
			core.JSONError(w, core.DuplicateError("email"))
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.Created(w, LoginResponse{User: user.ToUserResponse(u)})
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
