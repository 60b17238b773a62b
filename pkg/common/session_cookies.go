package common

import (
	"net/http"
	"strings"

	"github.com/hylla/browse/pkg/tracking"
)

func setSessionCookie(w http.ResponseWriter, r *http.Request, sessionId string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "sid",
		Value:    sessionId,
		Domain:   strings.TrimPrefix(r.Host, "."),
		SameSite: http.SameSiteNoneMode,
		HttpOnly: true,
		MaxAge:   2592000,
		Path:     "/",
	})
}

// HandleSessionCookie returns the visitor's session id, minting one and
// emitting a session event when the cookie is missing.
func HandleSessionCookie(trk tracking.Tracking, w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie("sid")
	if err == nil && c.Value != "" {
		return c.Value
	}
	sessionId := tracking.NewSessionId()
	if trk != nil {
		go trk.TrackSession(sessionId, r)
	}
	setSessionCookie(w, r, sessionId)
	return sessionId
}
