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

func wireCatalog(
	r chi.Router,
	vendorHandler *adaptor.VendorHandler,
	experienceHandler *adaptor.ExperienceHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public catalog
	r.Get("/api/vendors", vendorHandler.ListPublished)
	r.Get("/api/vendors/{id}", vendorHandler.GetByID)
	r.Get("/api/experiences", experienceHandler.ListPublished)
	r.Get("/api/experiences/{id}", experienceHandler.GetByID)

	// Vendor console
	r.Route("/api/vendor", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleVendor), string(entity.RoleAdmin)))

		r.Post("/profile", vendorHandler.CreateProfile)
		r.Get("/profile", vendorHandler.GetMyProfile)
		r.Put("/profile", vendorHandler.UpdateProfile)
		r.Get("/bookings", vendorHandler.MyBookings)

		r.Post("/experiences", experienceHandler.Create)
		r.Get("/experiences", experienceHandler.ListMine)
		r.Put("/experiences/{id}", experienceHandler.Update)
		r.Delete("/experiences/{id}", experienceHandler.Deactivate)
	})
}
