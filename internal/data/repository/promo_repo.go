package repository

import (
	"context"
	"fmt"
	"strings"

	"stackbnb/internal/data/entity"
	"stackbnb/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PromoRepository interface {
	Create(ctx context.Context, promo *entity.PromoCode) error
	FindByCode(ctx context.Context, code string) (*entity.PromoCode, error)
	FindByHostID(ctx context.Context, hostID uuid.UUID) ([]*entity.PromoCode, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type promoRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPromoRepository(db database.PgxIface, log *zap.Logger) PromoRepository {
	return &promoRepository{
		db:  db,
		log: log.With(zap.String("repository", "promo")),
	}
}

func (r *promoRepository) Create(ctx context.Context, promo *entity.PromoCode) error {
	query := `
		INSERT INTO promo_codes (id, code, host_id, discount_percent, is_active,
		                         created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		promo.ID,
		strings.ToUpper(promo.Code),
		promo.HostID,
		promo.DiscountPercent,
		promo.IsActive,
		promo.CreatedAt,
		promo.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create promo code",
			zap.Error(err),
			zap.String("code", promo.Code),
			zap.String("host_id", promo.HostID.String()),
		)
		return fmt.Errorf("create promo code %s: %w", promo.Code, err)
	}

	return nil
}

func (r *promoRepository) FindByCode(ctx context.Context, code string) (*entity.PromoCode, error) {
	query := `
		SELECT id, code, host_id, discount_percent, is_active,
		       created_at, updated_at, deleted_at
		FROM promo_codes
		WHERE code = $1 AND deleted_at IS NULL
	`

	var promo entity.PromoCode
	err := r.db.QueryRow(ctx, query, strings.ToUpper(code)).Scan(
		&promo.ID,
		&promo.Code,
		&promo.HostID,
		&promo.DiscountPercent,
		&promo.IsActive,
		&promo.CreatedAt,
		&promo.UpdatedAt,
		&promo.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find promo code",
			zap.Error(err),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("find promo code %s: %w", code, err)
	}

	return &promo, nil
}

func (r *promoRepository) FindByHostID(ctx context.Context, hostID uuid.UUID) ([]*entity.PromoCode, error) {
	query := `
		SELECT id, code, host_id, discount_percent, is_active,
		       created_at, updated_at, deleted_at
		FROM promo_codes
		WHERE host_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, hostID)
	if err != nil {
		r.log.Error("Failed to find promo codes by host ID",
			zap.Error(err),
			zap.String("host_id", hostID.String()),
		)
		return nil, fmt.Errorf("find promo codes by host ID %s: %w", hostID.String(), err)
	}
	defer rows.Close()

	var promos []*entity.PromoCode
	for rows.Next() {
		var promo entity.PromoCode
		err := rows.Scan(
			&promo.ID,
			&promo.Code,
			&promo.HostID,
			&promo.DiscountPercent,
			&promo.IsActive,
			&promo.CreatedAt,
			&promo.UpdatedAt,
			&promo.DeletedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan promo code row", zap.Error(err))
			return nil, fmt.Errorf("scan promo code row: %w", err)
		}
		promos = append(promos, &promo)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate promo code rows: %w", err)
	}

	return promos, nil
}

func (r *promoRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE promo_codes SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to deactivate promo code",
			zap.Error(err),
			zap.String("promo_id", id.String()),
		)
		return fmt.Errorf("deactivate promo code %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("promo code %s not found", id.String())
	}

	return nil
}
