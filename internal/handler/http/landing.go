package http

import (
	"net/http"

	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/internal/web"
	"github.com/MKhiriev/go-wallet-admin/models"
)

func (h *Handler) landing(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	h.render(w, r, http.StatusOK, web.PageLanding, web.LandingView{
		Page:       h.page(r, ""),
		Features:   web.LandingFeatures,
		ModalOpen:  query.Has("register"),
		Registered: query.Has("registered"),
	})
}

// register forwards the sign-up form. On failure the modal is shown again
// with the entered values and the error; the password is never echoed.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	registration := models.Registration{
		FirstName: r.PostFormValue("first_name"),
		LastName:  r.PostFormValue("last_name"),
		Email:     r.PostFormValue("email"),
		Password:  r.PostFormValue("password"),
	}

	if err := h.services.RegistrationService.Register(r.Context(), registration); err != nil {
		status := statusFromError(err)
		logError(r, err, status)

		registration.Password = ""
		h.render(w, r, status, web.PageLanding, web.LandingView{
			Page:      h.page(r, "registration"),
			Features:  web.LandingFeatures,
			ModalOpen: true,
			Form:      registration,
			Error:     messageFromError(err),
		})
		return
	}

	logger.FromRequest(r).Info().Str("email", registration.Email).Msg("registration forwarded")
	http.Redirect(w, r, "/?registered=1", http.StatusSeeOther)
}
