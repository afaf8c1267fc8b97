package api

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/account-lab/internal/accounts"
	"github.com/JaimeStill/account-lab/internal/transactions"
	"github.com/JaimeStill/account-lab/pkg/openapi"
	"github.com/JaimeStill/account-lab/pkg/pagination"
	"github.com/JaimeStill/account-lab/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	basePath string,
	spec *openapi.Spec,
	domain *Domain,
	logger *slog.Logger,
	page pagination.Config,
) {
	accountsHandler := accounts.NewHandler(domain.Accounts, logger, page)
	transactionsHandler := transactions.NewHandler(domain.Transactions, logger)

	routes.Register(
		mux,
		basePath,
		spec,
		accountsHandler.Routes(),
		transactionsHandler.Routes(),
	)
}
