package wire

import (
	"net/http"
	"time"

	"stackbnb/internal/adaptor"
	"stackbnb/internal/data/repository"
	"stackbnb/internal/integrations/mailer"
	"stackbnb/internal/integrations/payments"
	"stackbnb/internal/usecase"
	"stackbnb/pkg/middleware"
	"stackbnb/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the dependency graph: provider clients, services, handlers
// and the router.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	mailClient := mailer.NewClient(
		config.Mailer.BaseURL,
		config.Mailer.APIKey,
		config.Mailer.FromName,
		config.Mailer.FromAddress,
		time.Duration(config.Mailer.TimeoutSeconds)*time.Second,
		logger,
	)

	paymentsClient := payments.NewClient(
		config.Payments.BaseURL,
		config.Payments.APIKey,
		time.Duration(config.Payments.TimeoutSeconds)*time.Second,
		logger,
	)

	service := usecase.NewService(repo, mailClient, paymentsClient, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, repo, config, logger)
	wireCatalog(r, handler.Vendor, handler.Experience, repo, config, logger)
	wireHost(r, handler.Host, repo, config, logger)
	wireBooking(r, handler.Booking, repo, config, logger)
	wireNotify(r, handler.Notify)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
