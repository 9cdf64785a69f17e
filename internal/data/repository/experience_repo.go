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

type ExperienceRepository interface {
	Create(ctx context.Context, exp *entity.Experience) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Experience, error)
	FindByVendorID(ctx context.Context, vendorID uuid.UUID) ([]*entity.Experience, error)
	FindPublished(ctx context.Context, limit, offset int) ([]*entity.Experience, error)
	CountPublished(ctx context.Context) (int64, error)
	Update(ctx context.Context, exp *entity.Experience) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type experienceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewExperienceRepository(db database.PgxIface, log *zap.Logger) ExperienceRepository {
	return &experienceRepository{
		db:  db,
		log: log.With(zap.String("repository", "experience")),
	}
}

func (r *experienceRepository) Create(ctx context.Context, exp *entity.Experience) error {
	query := `
		INSERT INTO experiences (id, vendor_id, name, description, price, currency,
		                         duration_minutes, max_guests, is_active,
		                         created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		exp.ID,
		exp.VendorID,
		exp.Name,
		exp.Description,
		exp.Price,
		exp.Currency,
		exp.DurationMinutes,
		exp.MaxGuests,
		exp.IsActive,
		exp.CreatedAt,
		exp.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create experience",
			zap.Error(err),
			zap.String("vendor_id", exp.VendorID.String()),
			zap.String("name", exp.Name),
		)
		return fmt.Errorf("create experience %s: %w", exp.Name, err)
	}

	return nil
}

func (r *experienceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Experience, error) {
	query := `
		SELECT id, vendor_id, name, description, price, currency,
		       duration_minutes, max_guests, is_active,
		       created_at, updated_at, deleted_at
		FROM experiences
		WHERE id = $1 AND deleted_at IS NULL
	`

	var exp entity.Experience
	err := r.db.QueryRow(ctx, query, id).Scan(
		&exp.ID,
		&exp.VendorID,
		&exp.Name,
		&exp.Description,
		&exp.Price,
		&exp.Currency,
		&exp.DurationMinutes,
		&exp.MaxGuests,
		&exp.IsActive,
		&exp.CreatedAt,
		&exp.UpdatedAt,
		&exp.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find experience by ID",
			zap.Error(err),
			zap.String("experience_id", id.String()),
		)
		return nil, fmt.Errorf("find experience by ID %s: %w", id.String(), err)
	}

	return &exp, nil
}

func (r *experienceRepository) FindByVendorID(ctx context.Context, vendorID uuid.UUID) ([]*entity.Experience, error) {
	query := `
		SELECT id, vendor_id, name, description, price, currency,
		       duration_minutes, max_guests, is_active,
		       created_at, updated_at, deleted_at
		FROM experiences
		WHERE vendor_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, vendorID)
	if err != nil {
		r.log.Error("Failed to find experiences by vendor ID",
			zap.Error(err),
			zap.String("vendor_id", vendorID.String()),
		)
		return nil, fmt.Errorf("find experiences by vendor ID %s: %w", vendorID.String(), err)
	}
	defer rows.Close()

	return scanExperiences(rows, r.log)
}

func (r *experienceRepository) FindPublished(ctx context.Context, limit, offset int) ([]*entity.Experience, error) {
	query := `
		SELECT e.id, e.vendor_id, e.name, e.description, e.price, e.currency,
		       e.duration_minutes, e.max_guests, e.is_active,
		       e.created_at, e.updated_at, e.deleted_at
		FROM experiences e
		JOIN vendor_profiles v ON v.id = e.vendor_id
		WHERE e.is_active = TRUE
		  AND e.deleted_at IS NULL
		  AND v.published = TRUE
		  AND v.deleted_at IS NULL
		ORDER BY e.name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list published experiences", zap.Error(err))
		return nil, fmt.Errorf("list published experiences: %w", err)
	}
	defer rows.Close()

	return scanExperiences(rows, r.log)
}

func (r *experienceRepository) CountPublished(ctx context.Context) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM experiences e
		JOIN vendor_profiles v ON v.id = e.vendor_id
		WHERE e.is_active = TRUE
		  AND e.deleted_at IS NULL
		  AND v.published = TRUE
		  AND v.deleted_at IS NULL
	`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count published experiences", zap.Error(err))
		return 0, fmt.Errorf("count published experiences: %w", err)
	}

	return count, nil
}

func (r *experienceRepository) Update(ctx context.Context, exp *entity.Experience) error {
	query := `
		UPDATE experiences
		SET name = $2, description = $3, price = $4, currency = $5,
		    duration_minutes = $6, max_guests = $7, is_active = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		exp.ID,
		exp.Name,
		exp.Description,
		exp.Price,
		exp.Currency,
		exp.DurationMinutes,
		exp.MaxGuests,
		exp.IsActive,
		exp.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update experience",
			zap.Error(err),
			zap.String("experience_id", exp.ID.String()),
		)
		return fmt.Errorf("update experience %s: %w", exp.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("experience %s not found", exp.ID.String())
	}

	return nil
}

func (r *experienceRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE experiences SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to deactivate experience",
			zap.Error(err),
			zap.String("experience_id", id.String()),
		)
		return fmt.Errorf("deactivate experience %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("experience %s not found", id.String())
	}

	return nil
}

func scanExperiences(rows pgx.Rows, log *zap.Logger) ([]*entity.Experience, error) {
	var experiences []*entity.Experience
	for rows.Next() {
		var exp entity.Experience
		err := rows.Scan(
			&exp.ID,
			&exp.VendorID,
			&exp.Name,
			&exp.Description,
			&exp.Price,
			&exp.Currency,
			&exp.DurationMinutes,
			&exp.MaxGuests,
			&exp.IsActive,
			&exp.CreatedAt,
			&exp.UpdatedAt,
			&exp.DeletedAt,
		)
		if err != nil {
			log.Error("Failed to scan experience row", zap.Error(err))
			return nil, fmt.Errorf("scan experience row: %w", err)
		}
		experiences = append(experiences, &exp)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate experience rows: %w", err)
	}

	return experiences, nil
}
