package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tuanvumaihuynh/catalog-service/internal/model"
	"github.com/tuanvumaihuynh/catalog-service/internal/storage/db"
)

type CategoryRepository interface {
	WithDB(db db.DB) CategoryRepository
	CreateCategory(ctx context.Context, category model.Category) error
	ListCategories(ctx context.Context) ([]model.Category, error)
}

type categoryRepository struct {
	db db.DB
}

func NewCategoryRepository(db db.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r categoryRepository) WithDB(db db.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r categoryRepository) CreateCategory(ctx context.Context, category model.Category) error {
	if _, err := r.db.Exec(ctx, `
		INSERT INTO categories (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`,
		category.ID,
		category.Name,
		category.CreatedAt,
		category.UpdatedAt,
	); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrConflict
		}
		return fmt.Errorf("insert category: %w", err)
	}

	return nil
}

func (r categoryRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, created_at, updated_at
		FROM categories
		ORDER BY name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	return categories, nil
}
