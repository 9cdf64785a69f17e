package repository

import (
	"context"
	"fmt"

	"stackbnb/internal/data/entity"
	"stackbnb/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const bookingColumns = `id, order_id, experience_id, experience_name, vendor_id, host_id,
	       guest_name, guest_email, guest_phone, booking_date, booking_time,
	       guests, total_amount, currency, status, cancellation_hours,
	       commission_rate, stripe_session_id, cancellation_reason, cancelled_at,
	       created_at, updated_at, deleted_at`

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error)
	FindByGuestEmail(ctx context.Context, email string, limit, offset int) ([]*entity.Booking, error)
	FindByVendorID(ctx context.Context, vendorID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	FindByHostID(ctx context.Context, hostID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CommissionTotalByHostID(ctx context.Context, hostID uuid.UUID) (float64, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error

	// Cancel performs the pending/confirmed -> cancelled transition as a
	// single conditional UPDATE. The returned count is zero when the booking
	// was already cancelled or completed (or never existed), which keeps
	// concurrent cancel attempts race-free: exactly one caller observes 1.
	Cancel(ctx context.Context, bookingID uuid.UUID, reason *string) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, order_id, experience_id, experience_name, vendor_id,
		                      host_id, guest_name, guest_email, guest_phone,
		                      booking_date, booking_time, guests, total_amount,
		                      currency, status, cancellation_hours, commission_rate,
		                      stripe_session_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		        $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.OrderID,
		booking.ExperienceID,
		booking.ExperienceName,
		booking.VendorID,
		booking.HostID,
		booking.GuestName,
		booking.GuestEmail,
		booking.GuestPhone,
		booking.BookingDate,
		booking.BookingTime,
		booking.Guests,
		booking.TotalAmount,
		booking.Currency,
		booking.Status,
		booking.CancellationHours,
		booking.CommissionRate,
		booking.StripeSessionID,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("order_id", booking.OrderID),
			zap.String("guest_email", booking.GuestEmail),
		)
		return fmt.Errorf("create booking %s: %w", booking.OrderID, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1 AND deleted_at IS NULL`, bookingColumns)

	booking, err := r.scanBookingRow(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE order_id = $1 AND deleted_at IS NULL`, bookingColumns)

	booking, err := r.scanBookingRow(r.db.QueryRow(ctx, query, orderID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by order ID",
			zap.Error(err),
			zap.String("order_id", orderID),
		)
		return nil, fmt.Errorf("find booking by order ID %s: %w", orderID, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByGuestEmail(ctx context.Context, email string, limit, offset int) ([]*entity.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM bookings
		WHERE guest_email = $1 AND deleted_at IS NULL
		ORDER BY booking_date DESC, booking_time DESC
		LIMIT $2 OFFSET $3
	`, bookingColumns)

	rows, err := r.db.Query(ctx, query, email, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by guest email",
			zap.Error(err),
			zap.String("guest_email", email),
		)
		return nil, fmt.Errorf("find bookings by guest email %s: %w", email, err)
	}
	defer rows.Close()

	return r.scanBookingRows(rows)
}

func (r *bookingRepository) FindByVendorID(ctx context.Context, vendorID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM bookings
		WHERE vendor_id = $1 AND deleted_at IS NULL
		ORDER BY booking_date DESC, booking_time DESC
		LIMIT $2 OFFSET $3
	`, bookingColumns)

	rows, err := r.db.Query(ctx, query, vendorID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by vendor ID",
			zap.Error(err),
			zap.String("vendor_id", vendorID.String()),
		)
		return nil, fmt.Errorf("find bookings by vendor ID %s: %w", vendorID.String(), err)
	}
	defer rows.Close()

	return r.scanBookingRows(rows)
}

func (r *bookingRepository) FindByHostID(ctx context.Context, hostID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM bookings
		WHERE host_id = $1 AND deleted_at IS NULL
		ORDER BY booking_date DESC, booking_time DESC
		LIMIT $2 OFFSET $3
	`, bookingColumns)

	rows, err := r.db.Query(ctx, query, hostID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by host ID",
			zap.Error(err),
			zap.String("host_id", hostID.String()),
		)
		return nil, fmt.Errorf("find bookings by host ID %s: %w", hostID.String(), err)
	}
	defer rows.Close()

	return r.scanBookingRows(rows)
}

func (r *bookingRepository) CommissionTotalByHostID(ctx context.Context, hostID uuid.UUID) (float64, error) {
	query := `
		SELECT COALESCE(SUM(total_amount * commission_rate / 100), 0)
		FROM bookings
		WHERE host_id = $1 AND status = 'confirmed' AND deleted_at IS NULL
	`

	var total float64
	err := r.db.QueryRow(ctx, query, hostID).Scan(&total)
	if err != nil {
		r.log.Error("Failed to sum host commission",
			zap.Error(err),
			zap.String("host_id", hostID.String()),
		)
		return 0, fmt.Errorf("sum commission for host %s: %w", hostID.String(), err)
	}

	return total, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) Cancel(ctx context.Context, bookingID uuid.UUID, reason *string) (int64, error) {
	query := `
		UPDATE bookings
		SET status = 'cancelled', cancellation_reason = $2,
		    cancelled_at = NOW(), updated_at = NOW()
		WHERE id = $1
		  AND status IN ('pending', 'confirmed')
		  AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, bookingID, reason)
	if err != nil {
		r.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return 0, fmt.Errorf("cancel booking %s: %w", bookingID.String(), err)
	}

	return result.RowsAffected(), nil
}

func (r *bookingRepository) scanBookingRow(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.OrderID,
		&booking.ExperienceID,
		&booking.ExperienceName,
		&booking.VendorID,
		&booking.HostID,
		&booking.GuestName,
		&booking.GuestEmail,
		&booking.GuestPhone,
		&booking.BookingDate,
		&booking.BookingTime,
		&booking.Guests,
		&booking.TotalAmount,
		&booking.Currency,
		&booking.Status,
		&booking.CancellationHours,
		&booking.CommissionRate,
		&booking.StripeSessionID,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&booking.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) scanBookingRows(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := r.scanBookingRow(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}
