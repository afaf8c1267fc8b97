package transactions

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/account-lab/internal/accounts"
	"github.com/JaimeStill/account-lab/pkg/decode"
	"github.com/JaimeStill/account-lab/pkg/handlers"
	"github.com/JaimeStill/account-lab/pkg/routes"
)

type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/accounts/{id}/transactions",
		Tags:        []string{"Transactions"},
		Description: "Transfers between accounts",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: Spec.Create},
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "PUT", Pattern: "", Handler: h.Process, OpenAPI: Spec.Process},
		},
		Schemas: Spec.Schemas(),
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	id, err := accounts.PathID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	fields, err := decode.Fields(r.Body, "destination_id", "amount")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	cmd := CreateCommand{
		DestinationID: fields["destination_id"],
		Amount:        fields["amount"],
	}

	result, err := h.sys.Create(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	id, err := accounts.PathID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	filter, err := FilterFromQuery(r.URL.Query())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	result, err := h.sys.List(r.Context(), id, filter)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Process(w http.ResponseWriter, r *http.Request) {
	id, err := accounts.PathID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Process(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if result == nil {
		handlers.RespondJSON(w, http.StatusOK, struct{}{})
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}
