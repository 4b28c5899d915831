package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-wallet-admin/internal/app"
	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/internal/service"
	"github.com/MKhiriev/go-wallet-admin/internal/utils"
	"github.com/MKhiriev/go-wallet-admin/internal/web"
)

type credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	// an operator with a live session goes straight to the dashboard
	if _, err := h.authenticate(r); err == nil {
		http.Redirect(w, r, "/admin/clients", http.StatusSeeOther)
		return
	}

	h.render(w, r, http.StatusOK, web.PageLogin, web.LoginView{Page: h.page(r, "sign in")})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds := credentials{Login: r.PostFormValue("login"), Password: r.PostFormValue("password")}

	admin, err := h.services.AuthService.Login(ctx, creds.Login, creds.Password)
	if err != nil {
		status := statusFromError(err)
		logError(r, err, status)
		h.render(w, r, status, web.PageLogin, web.LoginView{
			Page:  h.page(r, "sign in"),
			Login: creds.Login,
			Error: messageFromError(err),
		})
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, admin)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	log.Info().Str("login", admin.Login).Msg("operator signed in")
	h.setSessionCookie(w, token)
	http.Redirect(w, r, "/admin/clients", http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if !h.checkCSRF(r) {
		h.renderError(w, r, ErrInvalidCSRFToken)
		return
	}

	login, _ := utils.GetAdminLoginFromContext(r.Context())
	logger.FromRequest(r).Info().Str("login", login).Msg("operator signed out")

	clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// apiLogin signs an operator in for the JSON API. The token is returned in
// the "Authorization" response header.
func (h *Handler) apiLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	admin, err := h.services.AuthService.Login(ctx, creds.Login, creds.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Err(err).Msg("no admin was found/wrong password")
		}
		writeAPIError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, admin)
	if err != nil {
		writeAPIError(w, r, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}
