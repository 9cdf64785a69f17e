package usecase

import (
	"bytes"
	"context"
	"fmt"

	"stackbnb/internal/dto/request"
	"stackbnb/internal/dto/response"
	"stackbnb/internal/integrations/mailer"
	"stackbnb/pkg/utils"

	"go.uber.org/zap"
)

type NotificationType string

const (
	NotificationBooking            NotificationType = "booking"
	NotificationPromoUsed          NotificationType = "promo_used"
	NotificationVendorBooking      NotificationType = "vendor_booking"
	NotificationGuestConfirmation  NotificationType = "guest_confirmation"
	NotificationBookingReminder    NotificationType = "booking_reminder"
	NotificationHostCommission     NotificationType = "host_commission"
	NotificationGuestCancellation  NotificationType = "guest_cancellation"
	NotificationVendorCancellation NotificationType = "vendor_cancellation"
)

// Mailer is the slice of the mail provider client the dispatcher needs.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) (*mailer.SendResponse, error)
}

type NotifyService interface {
	Dispatch(ctx context.Context, req *request.NotifyRequest) (*response.NotifyResponse, error)
}

type notifyService struct {
	mailer   Mailer
	opsEmail string
	log      *zap.Logger
}

func NewNotifyService(m Mailer, opsEmail string, log *zap.Logger) NotifyService {
	return &notifyService{
		mailer:   m,
		opsEmail: opsEmail,
		log:      log.With(zap.String("service", "notify")),
	}
}

// requiredFields maps each notification type to the request fields that must
// be present before rendering. A missing field is rejected up front rather
// than producing an email with holes in it.
var requiredFields = map[NotificationType][]string{
	NotificationBooking:            {"order_id", "experience_name", "guest_name", "guest_email"},
	NotificationPromoUsed:          {"host_name", "host_email", "promo_code", "order_id"},
	NotificationVendorBooking:      {"vendor_name", "vendor_email", "guest_name", "experience_name", "order_id"},
	NotificationGuestConfirmation:  {"guest_name", "guest_email", "experience_name", "order_id"},
	NotificationBookingReminder:    {"guest_name", "guest_email", "experience_name", "booking_date", "booking_time"},
	NotificationHostCommission:     {"host_name", "host_email", "order_id"},
	NotificationGuestCancellation:  {"guest_name", "guest_email", "experience_name", "order_id", "total_amount"},
	NotificationVendorCancellation: {"vendor_name", "vendor_email", "experience_name", "order_id", "total_amount"},
}

func (s *notifyService) Dispatch(ctx context.Context, req *request.NotifyRequest) (*response.NotifyResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Notify validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	notifType := NotificationType(req.Type)

	fields, ok := requiredFields[notifType]
	if !ok {
		s.log.Warn("Unknown notification type", zap.String("type", req.Type))
		return nil, fmt.Errorf("unknown notification type: %s", req.Type)
	}

	if missing := missingFields(req, fields); len(missing) > 0 {
		s.log.Warn("Notification missing required fields",
			zap.String("type", req.Type),
			zap.Strings("missing", missing),
		)
		return nil, fmt.Errorf("notification type %s missing required fields: %v", req.Type, missing)
	}

	to := s.recipient(notifType, req)
	subject := s.subject(notifType, req)

	tmpl := emailTemplates[notifType]
	var body bytes.Buffer
	if err := tmpl.Execute(&body, req); err != nil {
		s.log.Error("Failed to render email template",
			zap.Error(err),
			zap.String("type", req.Type),
		)
		return nil, fmt.Errorf("render %s template: %w", req.Type, err)
	}

	sent, err := s.mailer.Send(ctx, to, subject, body.String())
	if err != nil {
		s.log.Error("Failed to send notification",
			zap.Error(err),
			zap.String("type", req.Type),
			zap.String("to", to),
		)
		return nil, fmt.Errorf("send %s notification: %w", req.Type, err)
	}

	s.log.Info("Notification sent",
		zap.String("type", req.Type),
		zap.String("to", to),
		zap.String("email_id", sent.ID),
	)

	return &response.NotifyResponse{
		Success:       true,
		EmailID:       sent.ID,
		RecipientMail: to,
	}, nil
}

// recipient picks the target address for the type. The plain "booking" type
// goes to the operations inbox, everything else to the named party.
func (s *notifyService) recipient(t NotificationType, req *request.NotifyRequest) string {
	switch t {
	case NotificationBooking:
		return s.opsEmail
	case NotificationPromoUsed, NotificationHostCommission:
		return req.HostEmail
	case NotificationVendorBooking, NotificationVendorCancellation:
		return req.VendorEmail
	default:
		return req.GuestEmail
	}
}

func (s *notifyService) subject(t NotificationType, req *request.NotifyRequest) string {
	switch t {
	case NotificationBooking:
		return fmt.Sprintf("New booking: %s (%s)", req.ExperienceName, req.OrderID)
	case NotificationPromoUsed:
		return fmt.Sprintf("Your promo code %s was used", req.PromoCode)
	case NotificationVendorBooking:
		return fmt.Sprintf("New booking for %s", req.ExperienceName)
	case NotificationGuestConfirmation:
		return fmt.Sprintf("Booking confirmed: %s", req.ExperienceName)
	case NotificationBookingReminder:
		return fmt.Sprintf("Reminder: %s on %s", req.ExperienceName, req.BookingDate)
	case NotificationHostCommission:
		return fmt.Sprintf("Commission earned on order %s", req.OrderID)
	case NotificationGuestCancellation:
		return fmt.Sprintf("Booking cancelled: %s", req.ExperienceName)
	case NotificationVendorCancellation:
		return fmt.Sprintf("Booking cancelled for %s", req.ExperienceName)
	default:
		return "Stackbnb notification"
	}
}

func missingFields(req *request.NotifyRequest, fields []string) []string {
	var missing []string
	for _, f := range fields {
		if fieldValue(req, f) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

func fieldValue(req *request.NotifyRequest, field string) string {
	switch field {
	case "guest_name":
		return req.GuestName
	case "guest_email":
		return req.GuestEmail
	case "vendor_name":
		return req.VendorName
	case "vendor_email":
		return req.VendorEmail
	case "host_name":
		return req.HostName
	case "host_email":
		return req.HostEmail
	case "experience_name":
		return req.ExperienceName
	case "order_id":
		return req.OrderID
	case "booking_date":
		return req.BookingDate
	case "booking_time":
		return req.BookingTime
	case "promo_code":
		return req.PromoCode
	case "total_amount":
		if req.TotalAmount <= 0 {
			return ""
		}
		return fmt.Sprintf("%.2f", req.TotalAmount)
	default:
		return ""
	}
}
