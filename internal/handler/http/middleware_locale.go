package http

import (
	"net/http"

	"github.com/MKhiriev/go-wallet-admin/internal/i18n"
)

// withLocale attaches the localizer of the request language. A language
// chosen through ?lang= is remembered in a cookie.
func (h *Handler) withLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tag, persist := h.bundle.ResolveTag(r)
		if persist {
			i18n.SetLanguageCookie(w, tag)
		}

		ctx := i18n.WithLocalizer(r.Context(), h.bundle.Localizer(tag))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
