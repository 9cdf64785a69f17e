package wire

import (
	"stackbnb/internal/adaptor"
	"stackbnb/internal/data/entity"
	"stackbnb/internal/data/repository"
	"stackbnb/pkg/middleware"
	"stackbnb/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireHost(
	r chi.Router,
	hostHandler *adaptor.HostHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/host", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleHost), string(entity.RoleAdmin)))

		r.Post("/promos", hostHandler.CreatePromo)
		r.Get("/promos", hostHandler.ListPromos)
		r.Delete("/promos/{id}", hostHandler.DeactivatePromo)
		r.Get("/commission", hostHandler.CommissionSummary)
		r.Get("/bookings", hostHandler.MyBookings)
	})
}
