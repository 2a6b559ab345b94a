package session

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName = "guestbook-session"
	userIDKey   = "user_id"
)

// Manager wraps the signed-cookie session store. It carries two things: the
// logged-in user ID and one-shot flash messages shown on the next view.
type Manager struct {
	store *sessions.CookieStore
}

// NewManager creates a Manager with the given signing secret. Secure should
// be true whenever the app is served over HTTPS.
func NewManager(secret string, secure bool) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

// SignIn binds the user ID to the session cookie.
func (m *Manager) SignIn(w http.ResponseWriter, r *http.Request, userID string) error {
	session, _ := m.store.Get(r, sessionName)
	session.Values[userIDKey] = userID
	return session.Save(r, w)
}

// SignOut destroys the session cookie unconditionally.
func (m *Manager) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, sessionName)
	delete(session.Values, userIDKey)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// UserID returns the identity bound to the current session, if any.
func (m *Manager) UserID(r *http.Request) (string, bool) {
	session, _ := m.store.Get(r, sessionName)
	id, ok := session.Values[userIDKey].(string)
	return id, ok && id != ""
}

// Flash queues a one-shot status message for the next rendered view.
func (m *Manager) Flash(w http.ResponseWriter, r *http.Request, message string) {
	session, _ := m.store.Get(r, sessionName)
	session.AddFlash(message)
	_ = session.Save(r, w)
}

// Flashes drains and returns the queued status messages. Draining requires a
// save, so the response writer is needed even on a read.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []string {
	session, _ := m.store.Get(r, sessionName)
	raw := session.Flashes()
	if len(raw) > 0 {
		_ = session.Save(r, w)
	}
	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}
