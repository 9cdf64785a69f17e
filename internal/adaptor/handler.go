package adaptor

import (
	"stackbnb/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth       *AuthHandler
	Vendor     *VendorHandler
	Experience *ExperienceHandler
	Host       *HostHandler
	Booking    *BookingHandler
	Notify     *NotifyHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(service.Auth, log),
		Vendor:     NewVendorHandler(service.Vendor, log),
		Experience: NewExperienceHandler(service.Experience, log),
		Host:       NewHostHandler(service.Host, log),
		Booking:    NewBookingHandler(service.Booking, log),
		Notify:     NewNotifyHandler(service.Notify, log),
	}
}
