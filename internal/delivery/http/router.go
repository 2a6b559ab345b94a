package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventguestbook/internal/delivery/http/controllers"
	"eventguestbook/internal/delivery/http/middleware"
	"eventguestbook/internal/delivery/http/session"
)

// NewRouter initializes the HTTP router with all application routes. The
// guards wrap the handlers directly, so an unauthorized request never reaches
// handler logic.
func NewRouter(
	public *controllers.PublicController,
	auth *controllers.AuthController,
	admin *controllers.AdminController,
	sessions *session.Manager,
	identities middleware.IdentityLoader,
	logger *slog.Logger,
) *http.ServeMux {
	requireUser := middleware.RequireUser(sessions, identities, logger)
	requireAdmin := middleware.RequireAdmin(sessions, identities, logger)

	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /{$}", public.Home)
	mux.HandleFunc("GET /holidays", public.HolidayList)
	mux.HandleFunc("GET /guests", public.GuestList)
	mux.HandleFunc("POST /guests", public.SubmitRSVP)
	mux.HandleFunc("GET /rsvp", public.RSVPForm)

	// Accounts
	mux.HandleFunc("GET /login", auth.LoginForm)
	mux.HandleFunc("POST /login", auth.Login)
	mux.HandleFunc("GET /register", auth.RegisterForm)
	mux.HandleFunc("POST /register", auth.Register)
	mux.HandleFunc("GET /user", requireUser(auth.Profile))
	mux.HandleFunc("GET /logout", requireUser(auth.Logout))

	// Admin
	mux.HandleFunc("GET /admin", requireAdmin(admin.Dashboard))
	mux.HandleFunc("POST /admin/add-event", requireAdmin(admin.AddEvent))
	mux.HandleFunc("POST /admin/edit-event/{eventID}", requireAdmin(admin.EditEvent))
	mux.HandleFunc("POST /admin/delete-event/{eventID}", requireAdmin(admin.DeleteEvent))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
