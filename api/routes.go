package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-projector/internal/handlers/v1/account"
	"github.com/carson-networks/budget-projector/internal/handlers/v1/projection"
	"github.com/carson-networks/budget-projector/internal/handlers/v1/status"
	"github.com/carson-networks/budget-projector/internal/handlers/v1/transaction"
	"github.com/carson-networks/budget-projector/internal/logging"
	"github.com/carson-networks/budget-projector/internal/service"
)

const shutdownTimeout = 15 * time.Second

// pinger is the database health check used by /status.
type pinger interface {
	Ping(ctx context.Context) error
}

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Database pinger
}

// Router builds the chi router: /status as a plain handler and the v1 API
// through huma.
func (r *Rest) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	statusHandler := status.NewHandler(r.Database)
	router.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humachi.New(router, huma.DefaultConfig("Budget Projector", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	projection.NewProjectHandler(r.Service.Projection).Register(api)
	projection.NewProjectStoredHandler(r.Service.Projection).Register(api)
	transaction.NewImportTransactionsHandler(r.Service.Import).Register(api)
	account.NewListAccountsHandler(r.Service.Accounts).Register(api)

	return router
}

// Serve listens until ctx is done, then shuts the server down gracefully.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
