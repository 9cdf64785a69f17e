package usecase

import (
	"stackbnb/internal/data/repository"
	"stackbnb/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth       AuthService
	Vendor     VendorService
	Experience ExperienceService
	Host       HostService
	Booking    BookingService
	Notify     NotifyService
}

func NewService(
	repo *repository.Repository,
	mail Mailer,
	refunder Refunder,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	notify := NewNotifyService(mail, config.Mailer.OpsEmail, log)

	return &Service{
		Auth:       NewAuthService(repo, config, log),
		Vendor:     NewVendorService(repo, log),
		Experience: NewExperienceService(repo, log),
		Host:       NewHostService(repo, log),
		Booking:    NewBookingService(repo, notify, refunder, config, log),
		Notify:     notify,
	}
}
