package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-wallet-admin/internal/app"
	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/internal/utils"
	"github.com/MKhiriev/go-wallet-admin/models"
)

const sessionCookieName = "session"

type sessionCtxKey struct{}

// authPage protects dashboard pages. Requests without a valid session are
// redirected to the login page and a stale session cookie is cleared.
func (h *Handler) authPage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, err := h.authenticate(r)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("unauthenticated page request")
			if _, cookieErr := r.Cookie(sessionCookieName); cookieErr == nil {
				clearSessionCookie(w)
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authAPI protects JSON routes and answers 401 on a missing or invalid
// session.
func (h *Handler) authAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, err := h.authenticate(r)
		if err != nil {
			logger.FromRequest(r).Err(err).Msg("unauthenticated api request")
			utils.WriteJSONError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authenticate reads the session from the session cookie or, failing that,
// the Authorization bearer header. On success the returned context carries
// the operator and the raw session.
func (h *Handler) authenticate(r *http.Request) (context.Context, error) {
	ctx := r.Context()

	raw, err := sessionFromRequest(r)
	if err != nil {
		return ctx, err
	}

	token, err := h.services.AuthService.ParseToken(ctx, raw)
	if err != nil {
		return ctx, err
	}

	ctx = utils.WithAdmin(ctx, token.AdminID, token.Login)
	return context.WithValue(ctx, sessionCtxKey{}, raw), nil
}

func sessionFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrNoSession
	}

	token, err := utils.ParseBearerToken(header)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}
	return token, nil
}

func sessionFromContext(ctx context.Context) (string, bool) {
	session, ok := ctx.Value(sessionCtxKey{}).(string)
	return session, ok && session != ""
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token models.Token) {
	expires := time.Now().Add(h.sessionTTL)
	if token.ExpiresAt != nil {
		expires = token.ExpiresAt.Time
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.String(),
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// actor names the signed-in operator in audit entries.
func actor(ctx context.Context) string {
	login, ok := utils.GetAdminLoginFromContext(ctx)
	if !ok {
		return "web:unknown"
	}
	return "web:" + login
}

// checkCSRF reports whether the form of r carries the token of its session.
func (h *Handler) checkCSRF(r *http.Request) bool {
	session, ok := sessionFromContext(r.Context())
	if !ok {
		return false
	}
	return utils.VerifyCSRFToken(r.PostFormValue("csrf_token"), session, h.hashKey)
}
