package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-wallet-admin/internal/app"
	"github.com/MKhiriev/go-wallet-admin/internal/i18n"
	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/internal/utils"
	"github.com/MKhiriev/go-wallet-admin/internal/web"
)

func (h *Handler) localizer(r *http.Request) *i18n.Localizer {
	if l := i18n.FromContext(r.Context()); l != nil {
		return l
	}
	tag, _ := h.bundle.ResolveTag(r)
	return h.bundle.Localizer(tag)
}

// page fills the layout data shared by every page: the localizer, the
// signed-in operator, the CSRF token of the session and the language links.
func (h *Handler) page(r *http.Request, title string) web.Page {
	l := h.localizer(r)
	p := web.Page{L: l, Title: title}

	ctx := r.Context()
	if login, ok := utils.GetAdminLoginFromContext(ctx); ok {
		p.Admin = login
	}
	if session, ok := sessionFromContext(ctx); ok {
		p.CSRFToken = utils.CSRFToken(session, h.hashKey)
	}

	for _, tag := range h.bundle.Tags() {
		base, _ := tag.Base()
		p.Languages = append(p.Languages, web.Language{
			Label:  strings.ToUpper(base.String()),
			URL:    i18n.LanguageURL(r.URL.Path, r.URL.RawQuery, tag.String()),
			Active: tag.String() == l.Lang(),
		})
	}
	return p
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	if err := h.renderer.Render(w, status, page, data); err != nil {
		logger.FromRequest(r).Err(err).Str("page", page).Msg("failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// renderError shows the error page with the status and message err maps to.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	logError(r, err, status)

	h.render(w, r, status, web.PageError, web.ErrorView{
		Page:    h.page(r, "error occurred"),
		Status:  status,
		Message: messageFromError(err),
	})
}

// writeAPIError answers a JSON route with {"error": message}.
func writeAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	logError(r, err, status)
	utils.WriteJSONError(w, messageFromError(err), status)
}

func logError(r *http.Request, err error, status int) {
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		return
	}
	log.Debug().Err(err).Int("status", status).Msg("request rejected")
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		utils.WriteJSONError(w, app.MsgPageNotFound, http.StatusNotFound)
		return
	}

	logger.FromRequest(r).Debug().Str("path", r.URL.Path).Msg("page not found")
	h.render(w, r, http.StatusNotFound, web.PageError, web.ErrorView{
		Page:    h.page(r, "error occurred"),
		Status:  http.StatusNotFound,
		Message: app.MsgPageNotFound,
	})
}
