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

type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.VendorProfile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.VendorProfile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.VendorProfile, error)
	FindPublished(ctx context.Context, limit, offset int) ([]*entity.VendorProfile, error)
	CountPublished(ctx context.Context) (int64, error)
	Update(ctx context.Context, vendor *entity.VendorProfile) error
}

type vendorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVendorRepository(db database.PgxIface, log *zap.Logger) VendorRepository {
	return &vendorRepository{
		db:  db,
		log: log.With(zap.String("repository", "vendor")),
	}
}

func (r *vendorRepository) Create(ctx context.Context, vendor *entity.VendorProfile) error {
	query := `
		INSERT INTO vendor_profiles (id, user_id, name, contact_email, description,
		                             commission_rate, cancellation_hours, published,
		                             created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		vendor.ID,
		vendor.UserID,
		vendor.Name,
		vendor.ContactEmail,
		vendor.Description,
		vendor.CommissionRate,
		vendor.CancellationHours,
		vendor.Published,
		vendor.CreatedAt,
		vendor.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create vendor profile",
			zap.Error(err),
			zap.String("user_id", vendor.UserID.String()),
		)
		return fmt.Errorf("create vendor profile for user %s: %w", vendor.UserID.String(), err)
	}

	return nil
}

func (r *vendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.VendorProfile, error) {
	query := `
		SELECT id, user_id, name, contact_email, description,
		       commission_rate, cancellation_hours, published,
		       created_at, updated_at, deleted_at
		FROM vendor_profiles
		WHERE id = $1 AND deleted_at IS NULL
	`

	var vendor entity.VendorProfile
	err := r.db.QueryRow(ctx, query, id).Scan(
		&vendor.ID,
		&vendor.UserID,
		&vendor.Name,
		&vendor.ContactEmail,
		&vendor.Description,
		&vendor.CommissionRate,
		&vendor.CancellationHours,
		&vendor.Published,
		&vendor.CreatedAt,
		&vendor.UpdatedAt,
		&vendor.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find vendor by ID",
			zap.Error(err),
			zap.String("vendor_id", id.String()),
		)
		return nil, fmt.Errorf("find vendor by ID %s: %w", id.String(), err)
	}

	return &vendor, nil
}

func (r *vendorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.VendorProfile, error) {
	query := `
		SELECT id, user_id, name, contact_email, description,
		       commission_rate, cancellation_hours, published,
		       created_at, updated_at, deleted_at
		FROM vendor_profiles
		WHERE user_id = $1 AND deleted_at IS NULL
	`

	var vendor entity.VendorProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&vendor.ID,
		&vendor.UserID,
		&vendor.Name,
		&vendor.ContactEmail,
		&vendor.Description,
		&vendor.CommissionRate,
		&vendor.CancellationHours,
		&vendor.Published,
		&vendor.CreatedAt,
		&vendor.UpdatedAt,
		&vendor.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find vendor by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find vendor by user ID %s: %w", userID.String(), err)
	}

	return &vendor, nil
}

func (r *vendorRepository) FindPublished(ctx context.Context, limit, offset int) ([]*entity.VendorProfile, error) {
	query := `
		SELECT id, user_id, name, contact_email, description,
		       commission_rate, cancellation_hours, published,
		       created_at, updated_at, deleted_at
		FROM vendor_profiles
		WHERE published = TRUE AND deleted_at IS NULL
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list published vendors", zap.Error(err))
		return nil, fmt.Errorf("list published vendors: %w", err)
	}
	defer rows.Close()

	var vendors []*entity.VendorProfile
	for rows.Next() {
		var vendor entity.VendorProfile
		err := rows.Scan(
			&vendor.ID,
			&vendor.UserID,
			&vendor.Name,
			&vendor.ContactEmail,
			&vendor.Description,
			&vendor.CommissionRate,
			&vendor.CancellationHours,
			&vendor.Published,
			&vendor.CreatedAt,
			&vendor.UpdatedAt,
			&vendor.DeletedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan vendor row", zap.Error(err))
			return nil, fmt.Errorf("scan vendor row: %w", err)
		}
		vendors = append(vendors, &vendor)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate vendor rows: %w", err)
	}

	return vendors, nil
}

func (r *vendorRepository) CountPublished(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM vendor_profiles WHERE published = TRUE AND deleted_at IS NULL`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count published vendors", zap.Error(err))
		return 0, fmt.Errorf("count published vendors: %w", err)
	}

	return count, nil
}

func (r *vendorRepository) Update(ctx context.Context, vendor *entity.VendorProfile) error {
	query := `
		UPDATE vendor_profiles
		SET name = $2, contact_email = $3, description = $4,
		    commission_rate = $5, cancellation_hours = $6, published = $7,
		    updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		vendor.ID,
		vendor.Name,
		vendor.ContactEmail,
		vendor.Description,
		vendor.CommissionRate,
		vendor.CancellationHours,
		vendor.Published,
		vendor.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update vendor profile",
			zap.Error(err),
			zap.String("vendor_id", vendor.ID.String()),
		)
		return fmt.Errorf("update vendor profile %s: %w", vendor.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vendor profile %s not found", vendor.ID.String())
	}

	return nil
}
