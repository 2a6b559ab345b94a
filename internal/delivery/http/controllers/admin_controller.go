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

// Flash statuses for the admin event management flow.
const (
	statusEventCreated  = "Event created."
	statusEventUpdated  = "Event updated."
	statusEventDeleted  = "Event deleted."
	statusEventNotFound = "Event not found."
)

// AdminView is the view data for the event management page.
type AdminView struct {
	Events   []*domain.Event `json:"events"`
	User     *domain.User    `json:"user"`
	Messages []string        `json:"messages"`
}

type AdminController struct {
	Logger   *slog.Logger
	Events   domain.EventService
	Sessions *session.Manager
}

func NewAdminController(logger *slog.Logger, events domain.EventService, sessions *session.Manager) *AdminController {
	return &AdminController{
		Logger:   logger,
		Events:   events,
		Sessions: sessions,
	}
}

// Dashboard godoc
// @Summary List events for management
// @Tags admin
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains events, the admin user, and pending status messages"
// @Failure 303 "redirect to /login or / when not an administrator"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin [get]
func (c *AdminController) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())
	events, err := c.Events.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to list events")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, AdminView{
		Events:   events,
		User:     user,
		Messages: c.Sessions.Flashes(w, r),
	})
}

// AddEvent godoc
// @Summary Create an event
// @Description Creates an event from a form post. Date must be MM-DD-YYYY and time HH:MM (24-hour); a parse failure flashes the validation message and redirects without creating anything.
// @Tags admin
// @Accept x-www-form-urlencoded
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param date formData string true "Date (MM-DD-YYYY)"
// @Param time formData string true "Time (HH:MM, 24-hour)"
// @Success 303 "redirect to /admin"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/add-event [post]
func (c *AdminController) AddEvent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid form data")
		return
	}
	_, err := c.Events.Create(r.Context(),
		r.PostFormValue("title"),
		r.PostFormValue("description"),
		r.PostFormValue("date"),
		r.PostFormValue("time"),
	)
	if err != nil {
		if !c.flashEventError(w, r, err) {
			return
		}
	} else {
		c.Sessions.Flash(w, r, statusEventCreated)
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// EditEvent godoc
// @Summary Edit an event
// @Description Overwrites title, description, date, and time of an existing event. Uses the same strict date/time validation as create; a missing event flashes a not-found status.
// @Tags admin
// @Accept x-www-form-urlencoded
// @Param eventID path string true "Event ID"
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param date formData string true "Date (MM-DD-YYYY)"
// @Param time formData string true "Time (HH:MM, 24-hour)"
// @Success 303 "redirect to /admin"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/edit-event/{eventID} [post]
func (c *AdminController) EditEvent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid form data")
		return
	}
	_, err := c.Events.Update(r.Context(),
		r.PathValue("eventID"),
		r.PostFormValue("title"),
		r.PostFormValue("description"),
		r.PostFormValue("date"),
		r.PostFormValue("time"),
	)
	if err != nil {
		if !c.flashEventError(w, r, err) {
			return
		}
	} else {
		c.Sessions.Flash(w, r, statusEventUpdated)
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event and its guest associations; the guests themselves are kept.
// @Tags admin
// @Param eventID path string true "Event ID"
// @Success 303 "redirect to /admin"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/delete-event/{eventID} [post]
func (c *AdminController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	err := c.Events.Delete(r.Context(), r.PathValue("eventID"))
	if err != nil {
		if !c.flashEventError(w, r, err) {
			return
		}
	} else {
		c.Sessions.Flash(w, r, statusEventDeleted)
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// flashEventError flashes a status for expected mutation failures and reports
// whether the caller should continue with its redirect. Unexpected errors get
// a 500 envelope instead and false is returned.
func (c *AdminController) flashEventError(w http.ResponseWriter, r *http.Request, err error) bool {
	switch {
	case errors.Is(err, domain.ErrInvalidDate), errors.Is(err, domain.ErrInvalidTime):
		c.Sessions.Flash(w, r, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		c.Sessions.Flash(w, r, statusEventNotFound)
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "event operation failed")
		return false
	}
	return true
}
