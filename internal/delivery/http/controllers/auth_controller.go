package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventguestbook/internal/delivery/http/helpers"
	"eventguestbook/internal/delivery/http/middleware"
	"eventguestbook/internal/delivery/http/session"
	"eventguestbook/internal/domain"
)

// Flash statuses for the login and registration flows.
const (
	statusLoggedIn         = "You are now logged in."
	statusIncorrectPass    = "Incorrect password"
	statusUserNotFound     = "User not found. Do you need to sign up?"
	statusEmailTaken       = "A user with this email already exists."
	statusPasswordMismatch = "Please ensure that your passwords match."
	statusRegistered       = "Thank you for signing up! You can now log in."
)

// AuthFormView is the view data for the login and registration forms.
type AuthFormView struct {
	Messages []string `json:"messages"`
}

type AuthController struct {
	Logger   *slog.Logger
	Service  domain.AuthService
	Sessions *session.Manager
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService, sessions *session.Manager) *AuthController {
	return &AuthController{
		Logger:   logger,
		Service:  svc,
		Sessions: sessions,
	}
}

// LoginForm godoc
// @Summary Login form view data
// @Tags auth
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains pending status messages"
// @Router /login [get]
func (c *AuthController) LoginForm(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, AuthFormView{Messages: c.Sessions.Flashes(w, r)})
}

// Login godoc
// @Summary Log in
// @Description Authenticate with username and password from a form post. On success the session cookie is set and the client is redirected home; on failure a status message is flashed and the client returns to the login form.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 303 "redirect to / on success, /login on failure"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid form data")
		return
	}
	user, err := c.Service.Login(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrIncorrectPassword):
			c.Sessions.Flash(w, r, statusIncorrectPass)
		case errors.Is(err, domain.ErrUserNotFound):
			c.Sessions.Flash(w, r, statusUserNotFound)
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "login failed")
			return
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := c.Sessions.SignIn(w, r, user.ID); err != nil {
		c.Logger.ErrorContext(r.Context(), "session save failed", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to establish session")
		return
	}
	c.Sessions.Flash(w, r, statusLoggedIn)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// RegisterForm godoc
// @Summary Registration form view data
// @Tags auth
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains pending status messages"
// @Router /register [get]
func (c *AuthController) RegisterForm(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, AuthFormView{Messages: c.Sessions.Flashes(w, r)})
}

// Register godoc
// @Summary Sign up a new user
// @Description Create an account from a form post. Duplicate email or mismatched password confirmation flashes a status and returns to the form; on success the client is redirected to the login form.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param name formData string true "Display name"
// @Param username formData string true "Username"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param confirm-password formData string true "Password confirmation"
// @Success 303 "redirect to /login on success, /register on failure"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /register [post]
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid form data")
		return
	}
	_, err := c.Service.Register(r.Context(),
		r.PostFormValue("name"),
		r.PostFormValue("username"),
		r.PostFormValue("email"),
		r.PostFormValue("password"),
		r.PostFormValue("confirm-password"),
	)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			c.Sessions.Flash(w, r, statusEmailTaken)
		case errors.Is(err, domain.ErrPasswordMismatch):
			c.Sessions.Flash(w, r, statusPasswordMismatch)
		case errors.Is(err, domain.ErrInvalidEmail), errors.Is(err, domain.ErrDuplicateUsername):
			c.Sessions.Flash(w, r, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "registration failed")
			return
		}
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}
	c.Sessions.Flash(w, r, statusRegistered)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Profile godoc
// @Summary Current account page
// @Tags auth
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the authenticated user"
// @Failure 303 "redirect to /login when unauthenticated"
// @Router /user [get]
func (c *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}

// Logout godoc
// @Summary End the session
// @Tags auth
// @Success 303 "redirect to /"
// @Router /logout [get]
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := c.Sessions.SignOut(w, r); err != nil {
		c.Logger.ErrorContext(r.Context(), "session destroy failed", "err", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
