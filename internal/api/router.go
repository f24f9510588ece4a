package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kingao12/investment-platform/internal/api/handlers"
	custommiddleware "github.com/kingao12/investment-platform/internal/api/middleware"
	"github.com/kingao12/investment-platform/internal/config"
	"github.com/kingao12/investment-platform/internal/service"
)

// Services bundles the service dependencies the router wires into handlers.
type Services struct {
	System      *service.SystemService
	Portfolio   *service.PortfolioService
	Holding     *service.HoldingService
	Transaction *service.TransactionService
	Valuation   *service.ValuationService
	Journal     *service.JournalService
	Calendar    *service.CalendarService
	Settings    *service.SettingsService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/portfolios", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(svc.Portfolio)
			holdingHandler := handlers.NewHoldingHandler(svc.Holding)
			r.Get("/", portfolioHandler.Portfolios)
			r.Post("/", portfolioHandler.CreatePortfolio)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", portfolioHandler.GetPortfolio)
				r.Put("/", portfolioHandler.UpdatePortfolio)
				r.Delete("/", portfolioHandler.DeletePortfolio)
				r.Get("/summary", portfolioHandler.PortfolioSummary)
				r.Get("/holdings", holdingHandler.HoldingsPerPortfolio)
			})
		})

		r.Route("/holdings", func(r chi.Router) {
			holdingHandler := handlers.NewHoldingHandler(svc.Holding)
			transactionHandler := handlers.NewTransactionHandler(svc.Transaction)
			r.Post("/", holdingHandler.CreateHolding)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", holdingHandler.GetHolding)
				r.Put("/", holdingHandler.UpdateHolding)
				r.Delete("/", holdingHandler.DeleteHolding)
				r.Get("/transactions", transactionHandler.TransactionsPerHolding)
			})
		})

		r.Route("/transactions", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(svc.Transaction)
			r.Post("/", transactionHandler.CreateTransaction)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", transactionHandler.GetTransaction)
				r.Put("/", transactionHandler.UpdateTransaction)
				r.Delete("/", transactionHandler.DeleteTransaction)
			})
		})

		r.Route("/prices", func(r chi.Router) {
			priceHandler := handlers.NewPriceHandler(svc.Valuation)
			r.Post("/refresh", priceHandler.RefreshPrices)
		})

		r.Route("/journal", func(r chi.Router) {
			journalHandler := handlers.NewJournalHandler(svc.Journal)
			r.Get("/", journalHandler.Entries)
			r.Post("/", journalHandler.CreateEntry)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/", journalHandler.UpdateEntry)
				r.Delete("/", journalHandler.DeleteEntry)
			})
		})

		r.Route("/calendar", func(r chi.Router) {
			calendarHandler := handlers.NewCalendarHandler(svc.Calendar)
			r.Get("/", calendarHandler.Events)
			r.Post("/", calendarHandler.CreateEvent)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/", calendarHandler.UpdateEvent)
				r.Delete("/", calendarHandler.DeleteEvent)
			})
		})

		r.Route("/settings", func(r chi.Router) {
			settingsHandler := handlers.NewSettingsHandler(svc.Settings)
			r.Put("/equity-api-key", settingsHandler.UpdateEquityAPIKey)
		})
	})

	return r
}
