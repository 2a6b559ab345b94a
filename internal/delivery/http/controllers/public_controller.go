package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventguestbook/internal/delivery/http/helpers"
	"eventguestbook/internal/delivery/http/session"
	"eventguestbook/internal/domain"
)

// HomeView is the view data for the event listing page.
type HomeView struct {
	Events   []*domain.Event `json:"events"`
	Messages []string        `json:"messages"`
}

type PublicController struct {
	Logger   *slog.Logger
	Events   domain.EventService
	RSVP     domain.RSVPService
	Holidays domain.HolidayService
	Sessions *session.Manager
}

func NewPublicController(logger *slog.Logger, events domain.EventService, rsvp domain.RSVPService, holidays domain.HolidayService, sessions *session.Manager) *PublicController {
	return &PublicController{
		Logger:   logger,
		Events:   events,
		RSVP:     rsvp,
		Holidays: holidays,
		Sessions: sessions,
	}
}

// Home godoc
// @Summary List upcoming events
// @Tags public
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains events and pending status messages"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router / [get]
func (c *PublicController) Home(w http.ResponseWriter, r *http.Request) {
	events, err := c.Events.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to list events")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, HomeView{Events: events, Messages: c.Sessions.Flashes(w, r)})
}

// HolidayList godoc
// @Summary Upcoming holidays for the current month
// @Tags public
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains year, month, and holidays"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_unavailable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /holidays [get]
func (c *PublicController) HolidayList(w http.ResponseWriter, r *http.Request) {
	holidays, err := c.Holidays.Upcoming(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		if errors.Is(err, domain.ErrHolidayProviderUnavailable) {
			helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeUpstream, "holiday provider unavailable")
			return
		}
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to load holidays")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, holidays)
}

// RSVPForm godoc
// @Summary RSVP form view data
// @Description Lists the events a guest can RSVP to.
// @Tags public
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains events"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rsvp [get]
func (c *PublicController) RSVPForm(w http.ResponseWriter, r *http.Request) {
	events, err := c.Events.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to list events")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, HomeView{Events: events})
}

// GuestList godoc
// @Summary List events with their RSVP'd guests
// @Tags public
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains events with guests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /guests [get]
func (c *PublicController) GuestList(w http.ResponseWriter, r *http.Request) {
	listing, err := c.RSVP.ListEventsWithGuests(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to list guests")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, listing)
}

// SubmitRSVP godoc
// @Summary Submit an RSVP
// @Description Records a guest against an existing event from a form post and responds with the refreshed guest listing.
// @Tags public
// @Accept x-www-form-urlencoded
// @Produce json
// @Param event_id formData string true "Target event ID"
// @Param name formData string true "Guest name"
// @Param email formData string true "Guest email"
// @Param plus-one formData string false "Bringing a plus one"
// @Param phone formData string false "Guest phone"
// @Success 201 {object} helpers.APIResponse "data contains the refreshed guest listing"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /guests [post]
func (c *PublicController) SubmitRSVP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid form data")
		return
	}
	plusOne := r.PostFormValue("plus-one") != ""
	_, err := c.RSVP.AddGuest(r.Context(),
		r.PostFormValue("event_id"),
		r.PostFormValue("name"),
		r.PostFormValue("email"),
		plusOne,
		r.PostFormValue("phone"),
	)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingGuestDetails):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to record RSVP")
		}
		return
	}
	listing, err := c.RSVP.ListEventsWithGuests(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to list guests")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, listing)
}
