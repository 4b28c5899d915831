package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/internal/web"
	"github.com/MKhiriev/go-wallet-admin/models"
	"github.com/go-chi/chi/v5"
)

// defaultAuditLimit caps the audit page and GET /api/audit when no limit is
// given.
const defaultAuditLimit = 100

// clientID returns the {id} route parameter decoded. chi matches on the raw
// path when the request carries escapes such as %2F, leaving them in the
// parameter.
func clientID(r *http.Request) string {
	id := chi.URLParam(r, "id")
	if decoded, err := url.PathUnescape(id); err == nil {
		return decoded
	}
	return id
}

func (h *Handler) clientsPage(w http.ResponseWriter, r *http.Request) {
	h.renderClients(w, r, http.StatusOK, "", "")
}

// confirmDeletePage is the client list with the delete dialog open.
func (h *Handler) confirmDeletePage(w http.ResponseWriter, r *http.Request) {
	h.renderClients(w, r, http.StatusOK, clientID(r), "")
}

// renderClients fetches the list once and renders it. A failed fetch shows
// only the error.
func (h *Handler) renderClients(w http.ResponseWriter, r *http.Request, status int, confirmID, confirmError string) {
	query := r.FormValue("q")
	view := web.ClientsView{
		Page:         h.page(r, "clients"),
		Query:        query,
		ConfirmID:    confirmID,
		ConfirmError: confirmError,
	}

	clients, err := h.services.ClientService.List(r.Context(), query)
	if err != nil {
		status = statusFromError(err)
		logError(r, err, status)
		view.Error = messageFromError(err)
		view.ConfirmID = ""
	} else {
		view.Clients = clients
	}

	h.render(w, r, status, web.PageClients, view)
}

// deleteClient deletes the client and redirects back to the list, which is
// then fetched exactly once. On failure the dialog stays open with the error.
func (h *Handler) deleteClient(w http.ResponseWriter, r *http.Request) {
	if !h.checkCSRF(r) {
		h.renderError(w, r, ErrInvalidCSRFToken)
		return
	}

	ctx := r.Context()
	id := clientID(r)
	query := r.PostFormValue("q")

	if err := h.services.ClientService.Delete(ctx, actor(ctx), id); err != nil {
		status := statusFromError(err)
		logError(r, err, status)
		h.renderClients(w, r, status, id, messageFromError(err))
		return
	}

	logger.FromRequest(r).Info().Str("client_id", id).Msg("client deleted")

	target := "/admin/clients"
	if query != "" {
		target += "?" + url.Values{"q": {query}}.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Handler) clientPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	client, err := h.services.ClientService.Get(ctx, clientID(r))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	showBTC := queryFlag(r, "btc")
	card := h.services.BalanceService.Card(ctx, client.Balance, showBTC)

	h.render(w, r, http.StatusOK, web.PageClient, web.ClientView{
		Page:    h.page(r, "client"),
		Client:  client,
		Card:    card,
		ShowBTC: showBTC,
	})
}

func (h *Handler) transactionsPage(w http.ResponseWriter, r *http.Request) {
	id := clientID(r)

	transactions, err := h.services.ClientService.Transactions(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, web.PageTransactions, web.TransactionsView{
		Page:         h.page(r, "transaction history"),
		ClientID:     id,
		Transactions: transactions,
	})
}

func (h *Handler) auditPage(w http.ResponseWriter, r *http.Request) {
	entries, err := h.services.AuditService.Recent(r.Context(), auditFilter(r))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, web.PageAudit, web.AuditView{
		Page:    h.page(r, "audit log"),
		Entries: entries,
	})
}

// auditFilter reads ?action=, ?actor= and ?limit= from the query string.
func auditFilter(r *http.Request) models.AuditFilter {
	query := r.URL.Query()
	filter := models.AuditFilter{
		Action: models.AuditAction(query.Get("action")),
		Actor:  query.Get("actor"),
		Limit:  defaultAuditLimit,
	}
	if limit, err := strconv.ParseUint(query.Get("limit"), 10, 64); err == nil && limit > 0 {
		filter.Limit = limit
	}
	return filter
}

func queryFlag(r *http.Request, name string) bool {
	value, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && value
}
