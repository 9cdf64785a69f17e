package repository

import (
	"stackbnb/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User       UserRepository
	Session    SessionRepository
	Vendor     VendorRepository
	Experience ExperienceRepository
	Booking    BookingRepository
	Promo      PromoRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Session:    NewSessionRepository(db, log),
		Vendor:     NewVendorRepository(db, log),
		Experience: NewExperienceRepository(db, log),
		Booking:    NewBookingRepository(db, log),
		Promo:      NewPromoRepository(db, log),
	}
}
