package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/debug-create/new-money-pal/internal/handlers/v1/assistant"
	"github.com/debug-create/new-money-pal/internal/handlers/v1/budget"
	"github.com/debug-create/new-money-pal/internal/handlers/v1/dashboard"
	"github.com/debug-create/new-money-pal/internal/handlers/v1/goal"
	"github.com/debug-create/new-money-pal/internal/handlers/v1/status"
	"github.com/debug-create/new-money-pal/internal/handlers/v1/transaction"
	"github.com/debug-create/new-money-pal/internal/logging"
	"github.com/debug-create/new-money-pal/internal/service"
	"github.com/debug-create/new-money-pal/internal/session"
	"github.com/debug-create/new-money-pal/internal/storage"
)

const shutdownTimeout = 10 * time.Second

type Rest struct {
	Logger           *logrus.Logger
	Port             string
	Storage          *storage.Storage
	Service          *service.Service
	Verifier         *session.Verifier
	ExportDateLayout string
}

// Router builds the HTTP routes. /status stays outside the Huma API so it
// works without a session.
func (r *Rest) Router() http.Handler {
	router := chi.NewRouter()

	statusHandler := status.NewHandler(r.Storage)
	router.Get("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	router.Group(func(router chi.Router) {
		router.Use(logging.Middleware(r.Logger))

		config := huma.DefaultConfig("MoneyPal API", "1.0.0")
		config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
			session.SecurityScheme: {
				Type:         "http",
				Scheme:       "bearer",
				BearerFormat: "JWT",
			},
		}
		api := humachi.New(router, config)
		api.UseMiddleware(session.Middleware(api, r.Verifier))

		r.register(api)
	})

	return router
}

func (r *Rest) register(api huma.API) {
	svc := r.Service

	transaction.NewCreateTransactionHandler(svc.Ledger).Register(api)
	transaction.NewListTransactionsHandler(svc.Ledger).Register(api)
	transaction.NewDeleteTransactionHandler(svc.Ledger).Register(api)
	transaction.NewExportTransactionsHandler(svc.Ledger, r.ExportDateLayout).Register(api)

	budget.NewGetBudgetHandler(svc.Budget).Register(api)
	budget.NewSetBudgetHandler(svc.Budget).Register(api)

	goal.NewCreateGoalHandler(svc.Goals).Register(api)
	goal.NewListGoalsHandler(svc.Goals).Register(api)
	goal.NewDeleteGoalHandler(svc.Goals).Register(api)

	dashboard.NewGetDashboardHandler(svc.Dashboard).Register(api)
	dashboard.NewSimulateHandler(svc.Dashboard).Register(api)

	assistant.NewMagicParseHandler(svc.Assistant).Register(api)
	assistant.NewChatHandler(svc.Assistant).Register(api)
	assistant.NewAuditHandler(svc.Assistant).Register(api)
}

// Serve blocks until ctx is cancelled or the listener fails.
func (r *Rest) Serve(ctx context.Context) {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
