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

type ListProductsParams struct {
	// Search matches name and description, case-insensitive substring.
	Search     *string
	CategoryID *uuid.UUID
}

type UpdateProductParams struct {
	ID          uuid.UUID
	Name        *string
	Description *string
	CategoryID  *uuid.UUID
	Status      *model.ProductStatus
	UpdatedAt   time.Time
}

type ProductRepository interface {
	WithDB(db db.DB) ProductRepository
	CreateProduct(ctx context.Context, product model.Product) error
	GetProduct(ctx context.Context, id uuid.UUID) (model.ProductWithCategory, error)
	ListProducts(ctx context.Context, params ListProductsParams) ([]model.ProductSummary, error)
	UpdateProduct(ctx context.Context, params UpdateProductParams) error
	SoftDeleteProduct(ctx context.Context, id uuid.UUID, at time.Time) error
}

type productRepository struct {
	db db.DB
}

func NewProductRepository(db db.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r productRepository) WithDB(db db.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r productRepository) CreateProduct(ctx context.Context, product model.Product) error {
	if _, err := r.db.Exec(ctx, `
		INSERT INTO products (id, name, description, category_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		product.ID,
		product.Name,
		product.Description,
		product.CategoryID,
		string(product.Status),
		product.CreatedAt,
		product.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}

	return nil
}

func (r productRepository) GetProduct(ctx context.Context, id uuid.UUID) (model.ProductWithCategory, error) {
	row := r.db.QueryRow(ctx, `
		SELECT p.id, p.name, p.description, p.category_id, p.status,
		       p.deleted_at, p.created_at, p.updated_at, c.name
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.id = $1`,
		id,
	)

	product, err := scanProductWithCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ProductWithCategory{}, ErrNotFound
		}
		return model.ProductWithCategory{}, fmt.Errorf("get product: %w", err)
	}

	return product, nil
}

func (r productRepository) ListProducts(ctx context.Context, params ListProductsParams) ([]model.ProductSummary, error) {
	query := `
		SELECT p.id, p.name, p.description, p.category_id, p.status,
		       p.deleted_at, p.created_at, p.updated_at, c.name,
		       COUNT(v.id),
		       MIN(v.price_cents),
		       MAX(v.price_cents),
		       COALESCE(SUM(v.inventory_count), 0)
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		LEFT JOIN variants v ON v.product_id = p.id
		WHERE p.deleted_at IS NULL`
	args := []any{}

	if params.Search != nil && *params.Search != "" {
		args = append(args, "%"+*params.Search+"%")
		query += fmt.Sprintf(" AND (p.name ILIKE $%d OR p.description ILIKE $%d)", len(args), len(args))
	}
	if params.CategoryID != nil {
		args = append(args, *params.CategoryID)
		query += fmt.Sprintf(" AND p.category_id = $%d", len(args))
	}

	query += `
		GROUP BY p.id, c.name
		ORDER BY p.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	summaries := []model.ProductSummary{}
	for rows.Next() {
		var (
			s      model.ProductSummary
			status string
		)
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Description, &s.CategoryID, &status,
			&s.DeletedAt, &s.CreatedAt, &s.UpdatedAt, &s.CategoryName,
			&s.VariantCount, &s.MinPriceCents, &s.MaxPriceCents, &s.TotalInventory,
		); err != nil {
			return nil, fmt.Errorf("scan product summary: %w", err)
		}
		s.Status = model.ProductStatus(status)
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product summaries: %w", err)
	}

	return summaries, nil
}

func (r productRepository) UpdateProduct(ctx context.Context, params UpdateProductParams) error {
	var status *string
	if params.Status != nil {
		status = (*string)(params.Status)
	}

	if _, err := r.db.Exec(ctx, `
		UPDATE products
		SET name = COALESCE($2, name),
		    description = COALESCE($3, description),
		    category_id = COALESCE($4, category_id),
		    status = COALESCE($5, status),
		    updated_at = $6
		WHERE id = $1`,
		params.ID,
		params.Name,
		params.Description,
		params.CategoryID,
		status,
		params.UpdatedAt,
	); err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	return nil
}

func (r productRepository) SoftDeleteProduct(ctx context.Context, id uuid.UUID, at time.Time) error {
	if _, err := r.db.Exec(ctx, `
		UPDATE products
		SET deleted_at = $2, updated_at = $2
		WHERE id = $1`,
		id, at,
	); err != nil {
		return fmt.Errorf("soft delete product: %w", err)
	}

	return nil
}

func scanProductWithCategory(row pgx.Row) (model.ProductWithCategory, error) {
	var (
		p      model.ProductWithCategory
		status string
	)
	if err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.CategoryID, &status,
		&p.DeletedAt, &p.CreatedAt, &p.UpdatedAt, &p.CategoryName,
	); err != nil {
		return model.ProductWithCategory{}, err
	}
	p.Status = model.ProductStatus(status)

	return p, nil
}
