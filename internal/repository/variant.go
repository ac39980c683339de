package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tuanvumaihuynh/catalog-service/internal/model"
	"github.com/tuanvumaihuynh/catalog-service/internal/storage/db"
)

type UpdateVariantParams struct {
	ID             uuid.UUID
	Name           *string
	Sku            *string
	PriceCents     *int64
	InventoryCount *int
	UpdatedAt      time.Time
}

type VariantRepository interface {
	WithDB(db db.DB) VariantRepository
	CreateVariant(ctx context.Context, variant model.Variant) error
	GetVariant(ctx context.Context, id uuid.UUID) (model.Variant, error)
	ListVariantsByProduct(ctx context.Context, productID uuid.UUID) ([]model.Variant, error)
	SkuExists(ctx context.Context, sku string) (bool, error)
	SkuExistsExcluding(ctx context.Context, sku string, excludeID uuid.UUID) (bool, error)
	CountVariantsByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
	UpdateVariant(ctx context.Context, params UpdateVariantParams) error
	DeleteVariant(ctx context.Context, id uuid.UUID) error
}

type variantRepository struct {
	db db.DB
}

func NewVariantRepository(db db.DB) VariantRepository {
	return &variantRepository{db: db}
}

func (r variantRepository) WithDB(db db.DB) VariantRepository {
	return &variantRepository{db: db}
}

func (r variantRepository) CreateVariant(ctx context.Context, variant model.Variant) error {
	if _, err := r.db.Exec(ctx, `
		INSERT INTO variants (id, product_id, sku, name, price_cents, inventory_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		variant.ID,
		variant.ProductID,
		variant.Sku,
		variant.Name,
		variant.PriceCents,
		variant.InventoryCount,
		variant.CreatedAt,
		variant.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert variant: %w", err)
	}

	return nil
}

func (r variantRepository) GetVariant(ctx context.Context, id uuid.UUID) (model.Variant, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, product_id, sku, name, price_cents, inventory_count, created_at, updated_at
		FROM variants
		WHERE id = $1`,
		id,
	)

	var v model.Variant
	if err := row.Scan(
		&v.ID, &v.ProductID, &v.Sku, &v.Name,
		&v.PriceCents, &v.InventoryCount, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Variant{}, ErrNotFound
		}
		return model.Variant{}, fmt.Errorf("get variant: %w", err)
	}

	return v, nil
}

func (r variantRepository) ListVariantsByProduct(ctx context.Context, productID uuid.UUID) ([]model.Variant, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, product_id, sku, name, price_cents, inventory_count, created_at, updated_at
		FROM variants
		WHERE product_id = $1
		ORDER BY created_at ASC`,
		productID,
	)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()

	variants := []model.Variant{}
	for rows.Next() {
		var v model.Variant
		if err := rows.Scan(
			&v.ID, &v.ProductID, &v.Sku, &v.Name,
			&v.PriceCents, &v.InventoryCount, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		variants = append(variants, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate variants: %w", err)
	}

	return variants, nil
}

func (r variantRepository) SkuExists(ctx context.Context, sku string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM variants WHERE sku = $1)`, sku,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("check sku exists: %w", err)
	}

	return exists, nil
}

func (r variantRepository) SkuExistsExcluding(ctx context.Context, sku string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM variants WHERE sku = $1 AND id != $2)`, sku, excludeID,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("check sku exists excluding: %w", err)
	}

	return exists, nil
}

func (r variantRepository) CountVariantsByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM variants WHERE product_id = $1`, productID,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count variants: %w", err)
	}

	return count, nil
}

func (r variantRepository) UpdateVariant(ctx context.Context, params UpdateVariantParams) error {
	if _, err := r.db.Exec(ctx, `
		UPDATE variants
		SET name = COALESCE($2, name),
		    sku = COALESCE($3, sku),
		    price_cents = COALESCE($4, price_cents),
		    inventory_count = COALESCE($5, inventory_count),
		    updated_at = $6
		WHERE id = $1`,
		params.ID,
		params.Name,
		params.Sku,
		params.PriceCents,
		params.InventoryCount,
		params.UpdatedAt,
	); err != nil {
		return fmt.Errorf("update variant: %w", err)
	}

	return nil
}

func (r variantRepository) DeleteVariant(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM variants WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete variant: %w", err)
	}

	return nil
}
