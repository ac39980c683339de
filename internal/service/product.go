package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tuanvumaihuynh/catalog-service/internal/apperr"
	"github.com/tuanvumaihuynh/catalog-service/internal/model"
	"github.com/tuanvumaihuynh/catalog-service/internal/repository"
	"github.com/tuanvumaihuynh/catalog-service/internal/storage/db"
)

type ListProductsParams struct {
	Search     *string
	CategoryID *uuid.UUID
}

type CreateProductParams struct {
	Name        string
	Description *string
	CategoryID  *uuid.UUID
	Status      *model.ProductStatus
	Variants    []CreateVariantParams
}

type CreateVariantParams struct {
	Sku            string
	Name           *string
	PriceCents     *int64
	InventoryCount *int
}

// UpdateProductParams is a merge-patch: nil fields are left unchanged.
type UpdateProductParams struct {
	Name        *string
	Description *string
	CategoryID  *uuid.UUID
	Status      *model.ProductStatus
}

// ProductService owns the product aggregate: every multi-row invariant
// over a product and its variants is enforced here.
type ProductService interface {
	ListProducts(ctx context.Context, params ListProductsParams) ([]model.ProductSummary, error)
	GetProduct(ctx context.Context, id uuid.UUID) (model.ProductDetail, error)
	CreateProduct(ctx context.Context, params CreateProductParams) (model.ProductDetail, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, params UpdateProductParams) (model.ProductWithCategory, error)
	SoftDeleteProduct(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	db          db.DB
	productRepo repository.ProductRepository
	variantRepo repository.VariantRepository
}

func NewProductService(
	db db.DB,
	productRepo repository.ProductRepository,
	variantRepo repository.VariantRepository,
) ProductService {
	return &productService{
		db:          db,
		productRepo: productRepo,
		variantRepo: variantRepo,
	}
}

func (s *productService) ListProducts(ctx context.Context, params ListProductsParams) ([]model.ProductSummary, error) {
	summaries, err := s.productRepo.ListProducts(ctx, repository.ListProductsParams{
		Search:     params.Search,
		CategoryID: params.CategoryID,
	})
	if err != nil {
		return nil, fmt.Errorf("product repository list products: %w", err)
	}

	return summaries, nil
}

// GetProduct deliberately returns soft-deleted products too: only
// listings filter on deleted_at, direct lookups stay addressable.
func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (model.ProductDetail, error) {
	product, err := s.productRepo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.ProductDetail{}, apperr.ErrProductNotFound
		}
		return model.ProductDetail{}, fmt.Errorf("product repository get product: %w", err)
	}

	variants, err := s.variantRepo.ListVariantsByProduct(ctx, id)
	if err != nil {
		return model.ProductDetail{}, fmt.Errorf("variant repository list variants: %w", err)
	}

	return model.ProductDetail{
		ProductWithCategory: product,
		Variants:            variants,
	}, nil
}

func (s *productService) CreateProduct(ctx context.Context, params CreateProductParams) (model.ProductDetail, error) {
	if strings.TrimSpace(params.Name) == "" {
		return model.ProductDetail{}, apperr.ErrProductNameRequired
	}
	if len(params.Variants) == 0 {
		return model.ProductDetail{}, apperr.ErrVariantsRequired
	}
	for _, v := range params.Variants {
		if strings.TrimSpace(v.Sku) == "" {
			return model.ProductDetail{}, apperr.ErrVariantSkuRequired
		}
		if v.PriceCents != nil && *v.PriceCents < 0 {
			return model.ProductDetail{}, apperr.ErrNegativePrice
		}
		if v.InventoryCount != nil && *v.InventoryCount < 0 {
			return model.ProductDetail{}, apperr.ErrNegativeInventory
		}
	}
	for _, v := range params.Variants {
		sku := strings.TrimSpace(v.Sku)
		exists, err := s.variantRepo.SkuExists(ctx, sku)
		if err != nil {
			return model.ProductDetail{}, fmt.Errorf("variant repository check sku: %w", err)
		}
		if exists {
			return model.ProductDetail{}, apperr.NewDuplicateSku(sku)
		}
	}

	product, variants, err := buildProductAggregate(params)
	if err != nil {
		return model.ProductDetail{}, err
	}

	// The product and all its variants persist as one unit, or not at all.
	if err := s.db.WithTx(ctx, func(db db.DB) error {
		if err := s.productRepo.
			WithDB(db).
			CreateProduct(ctx, product); err != nil {
			return fmt.Errorf("product repository create product: %w", err)
		}

		variantRepo := s.variantRepo.WithDB(db)
		for _, variant := range variants {
			if err := variantRepo.CreateVariant(ctx, variant); err != nil {
				return fmt.Errorf("variant repository create variant: %w", err)
			}
		}

		return nil
	}); err != nil {
		return model.ProductDetail{}, fmt.Errorf("db with tx: %w", err)
	}

	return s.GetProduct(ctx, product.ID)
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, params UpdateProductParams) (model.ProductWithCategory, error) {
	if _, err := s.productRepo.GetProduct(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.ProductWithCategory{}, apperr.ErrProductNotFound
		}
		return model.ProductWithCategory{}, fmt.Errorf("product repository get product: %w", err)
	}

	if err := s.productRepo.UpdateProduct(ctx, repository.UpdateProductParams{
		ID:          id,
		Name:        params.Name,
		Description: params.Description,
		CategoryID:  params.CategoryID,
		Status:      params.Status,
		UpdatedAt:   time.Now(),
	}); err != nil {
		return model.ProductWithCategory{}, fmt.Errorf("product repository update product: %w", err)
	}

	product, err := s.productRepo.GetProduct(ctx, id)
	if err != nil {
		return model.ProductWithCategory{}, fmt.Errorf("product repository get product: %w", err)
	}

	return product, nil
}

func (s *productService) SoftDeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.GetProduct(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.ErrProductNotFound
		}
		return fmt.Errorf("product repository get product: %w", err)
	}

	// Not idempotent: deleting twice re-stamps deleted_at, which is fine.
	if err := s.productRepo.SoftDeleteProduct(ctx, id, time.Now()); err != nil {
		return fmt.Errorf("product repository soft delete product: %w", err)
	}

	return nil
}

// buildProductAggregate applies all defaulting in one place and
// materializes the rows to insert.
func buildProductAggregate(params CreateProductParams) (model.Product, []model.Variant, error) {
	productID, err := uuid.NewV7()
	if err != nil {
		return model.Product{}, nil, fmt.Errorf("generate uuid v7: %w", err)
	}

	now := time.Now()

	status := model.ProductStatusActive
	if params.Status != nil {
		status = *params.Status
	}

	product := model.Product{
		ID:          productID,
		Name:        strings.TrimSpace(params.Name),
		Description: params.Description,
		CategoryID:  params.CategoryID,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	variants := make([]model.Variant, 0, len(params.Variants))
	for _, v := range params.Variants {
		variantID, err := uuid.NewV7()
		if err != nil {
			return model.Product{}, nil, fmt.Errorf("generate uuid v7: %w", err)
		}

		variant := model.Variant{
			ID:        variantID,
			ProductID: productID,
			Sku:       strings.TrimSpace(v.Sku),
			Name:      "Default",
			CreatedAt: now,
			UpdatedAt: now,
		}
		if v.Name != nil {
			variant.Name = *v.Name
		}
		if v.PriceCents != nil {
			variant.PriceCents = *v.PriceCents
		}
		if v.InventoryCount != nil {
			variant.InventoryCount = *v.InventoryCount
		}

		variants = append(variants, variant)
	}

	return product, variants, nil
}
