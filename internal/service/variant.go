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
)

// UpdateVariantParams is a merge-patch: nil fields are left unchanged.
type UpdateVariantParams struct {
	Name           *string
	Sku            *string
	PriceCents     *int64
	InventoryCount *int
}

// VariantService enforces single-variant rules: price/inventory
// non-negativity, SKU uniqueness, and the last-variant protection that
// keeps every product with at least one variant.
type VariantService interface {
	GetVariant(ctx context.Context, id uuid.UUID) (model.Variant, error)
	UpdateVariant(ctx context.Context, id uuid.UUID, params UpdateVariantParams) (model.Variant, error)
	DeleteVariant(ctx context.Context, id uuid.UUID) error
}

type variantService struct {
	variantRepo repository.VariantRepository
}

func NewVariantService(variantRepo repository.VariantRepository) VariantService {
	return &variantService{variantRepo: variantRepo}
}

func (s *variantService) GetVariant(ctx context.Context, id uuid.UUID) (model.Variant, error) {
	variant, err := s.variantRepo.GetVariant(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Variant{}, apperr.ErrVariantNotFound
		}
		return model.Variant{}, fmt.Errorf("variant repository get variant: %w", err)
	}

	return variant, nil
}

func (s *variantService) UpdateVariant(ctx context.Context, id uuid.UUID, params UpdateVariantParams) (model.Variant, error) {
	if _, err := s.variantRepo.GetVariant(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Variant{}, apperr.ErrVariantNotFound
		}
		return model.Variant{}, fmt.Errorf("variant repository get variant: %w", err)
	}

	if params.PriceCents != nil && *params.PriceCents < 0 {
		return model.Variant{}, apperr.ErrNegativePrice
	}
	if params.InventoryCount != nil && *params.InventoryCount < 0 {
		return model.Variant{}, apperr.ErrNegativeInventory
	}

	var sku *string
	if params.Sku != nil {
		trimmed := strings.TrimSpace(*params.Sku)
		if trimmed == "" {
			return model.Variant{}, apperr.ErrSkuRequired
		}

		// Uniqueness check excludes the variant itself so re-submitting
		// an unchanged SKU is not a collision.
		exists, err := s.variantRepo.SkuExistsExcluding(ctx, trimmed, id)
		if err != nil {
			return model.Variant{}, fmt.Errorf("variant repository check sku: %w", err)
		}
		if exists {
			return model.Variant{}, apperr.NewDuplicateSku(trimmed)
		}

		sku = &trimmed
	}

	if err := s.variantRepo.UpdateVariant(ctx, repository.UpdateVariantParams{
		ID:             id,
		Name:           params.Name,
		Sku:            sku,
		PriceCents:     params.PriceCents,
		InventoryCount: params.InventoryCount,
		UpdatedAt:      time.Now(),
	}); err != nil {
		return model.Variant{}, fmt.Errorf("variant repository update variant: %w", err)
	}

	variant, err := s.variantRepo.GetVariant(ctx, id)
	if err != nil {
		return model.Variant{}, fmt.Errorf("variant repository get variant: %w", err)
	}

	return variant, nil
}

func (s *variantService) DeleteVariant(ctx context.Context, id uuid.UUID) error {
	variant, err := s.variantRepo.GetVariant(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.ErrVariantNotFound
		}
		return fmt.Errorf("variant repository get variant: %w", err)
	}

	count, err := s.variantRepo.CountVariantsByProduct(ctx, variant.ProductID)
	if err != nil {
		return fmt.Errorf("variant repository count variants: %w", err)
	}
	if count <= 1 {
		return apperr.ErrLastVariant
	}

	if err := s.variantRepo.DeleteVariant(ctx, id); err != nil {
		return fmt.Errorf("variant repository delete variant: %w", err)
	}

	return nil
}
