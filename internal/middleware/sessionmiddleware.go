package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"strategycoach/internal/session"
	"strategycoach/pkg/coach"
)

const (
	// SessionHeader carries the session ID in both directions.
	SessionHeader = "X-Session-Id"
	// SessionCookie is the browser fallback when the header is absent.
	SessionCookie = "coach_session"
)

type SessionMiddleware struct {
	store     *session.Store
	cookieTTL time.Duration
}

func NewSessionMiddleware(store *session.Store, cookieTTL time.Duration) *SessionMiddleware {
	return &SessionMiddleware{store: store, cookieTTL: cookieTTL}
}

// Handle attaches the caller's session to the request context, creating
// one when the request names none or an expired one. The ID is echoed in
// both the response header and a cookie.
func (m *SessionMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(SessionHeader))
		if id == "" {
			if c, err := r.Cookie(SessionCookie); err == nil {
				id = strings.TrimSpace(c.Value)
			}
		}

		sess, created := m.store.Resolve(id)
		if created {
			logx.WithContext(r.Context()).Infof("session: started %s", sess.ID)
		}

		w.Header().Set(SessionHeader, sess.ID)
		cookie := &http.Cookie{
			Name:     SessionCookie,
			Value:    sess.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		}
		if m.cookieTTL > 0 {
			cookie.MaxAge = int(m.cookieTTL / time.Second)
		}
		http.SetCookie(w, cookie)

		ctx := session.NewContext(r.Context(), sess)
		ctx = coach.ContextWithSessionID(ctx, sess.ID)
		next(w, r.WithContext(ctx))
	}
}

// ClearSession undoes what Handle wrote to w, so the client stops sending
// an ID that no longer exists. It must run before the body is written.
func ClearSession(w http.ResponseWriter) {
	h := w.Header()
	h.Del(SessionHeader)
	h.Del("Set-Cookie")
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
