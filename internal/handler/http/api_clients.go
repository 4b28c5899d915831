package http

import (
	"net/http"

	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/internal/utils"
)

// apiListClients answers GET /api/clients?q= with a JSON array.
func (h *Handler) apiListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.services.ClientService.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeAPIError(w, r, err)
		return
	}
	utils.WriteJSONList(w, clients, http.StatusOK)
}

func (h *Handler) apiGetClient(w http.ResponseWriter, r *http.Request) {
	client, err := h.services.ClientService.Get(r.Context(), clientID(r))
	if err != nil {
		writeAPIError(w, r, err)
		return
	}

	utils.WriteJSON(w, client, http.StatusOK)
}

func (h *Handler) apiDeleteClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := clientID(r)

	if err := h.services.ClientService.Delete(ctx, actor(ctx), id); err != nil {
		writeAPIError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("client_id", id).Msg("client deleted")
	w.WriteHeader(http.StatusNoContent)
}

// apiBalance answers with the balance card; ?btc=true adds the conversion.
func (h *Handler) apiBalance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	client, err := h.services.ClientService.Get(ctx, clientID(r))
	if err != nil {
		writeAPIError(w, r, err)
		return
	}

	card := h.services.BalanceService.Card(ctx, client.Balance, queryFlag(r, "btc"))
	utils.WriteJSON(w, card, http.StatusOK)
}

func (h *Handler) apiTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.services.ClientService.Transactions(r.Context(), clientID(r))
	if err != nil {
		writeAPIError(w, r, err)
		return
	}
	utils.WriteJSONList(w, transactions, http.StatusOK)
}

func (h *Handler) apiAudit(w http.ResponseWriter, r *http.Request) {
	entries, err := h.services.AuditService.Recent(r.Context(), auditFilter(r))
	if err != nil {
		writeAPIError(w, r, err)
		return
	}
	utils.WriteJSONList(w, entries, http.StatusOK)
}
