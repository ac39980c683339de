package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/catalog-service/internal/apperr"
	"github.com/tuanvumaihuynh/catalog-service/internal/model"
	"github.com/tuanvumaihuynh/catalog-service/internal/repository"
	"github.com/tuanvumaihuynh/catalog-service/internal/service"
	"github.com/tuanvumaihuynh/catalog-service/pkg/ptr"
	"github.com/tuanvumaihuynh/catalog-service/pkg/zerror"
)

func TestProductService_CreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name    string
		params  service.CreateProductParams
		wantErr error
	}{
		{
			name: "blank name rejected",
			params: service.CreateProductParams{
				Name:     "   ",
				Variants: []service.CreateVariantParams{{Sku: "SKU-1"}},
			},
			wantErr: apperr.ErrProductNameRequired,
		},
		{
			name:    "empty variants rejected",
			params:  service.CreateProductParams{Name: "Shirt"},
			wantErr: apperr.ErrVariantsRequired,
		},
		{
			name: "blank sku rejected",
			params: service.CreateProductParams{
				Name:     "Shirt",
				Variants: []service.CreateVariantParams{{Sku: "  "}},
			},
			wantErr: apperr.ErrVariantSkuRequired,
		},
		{
			name: "negative price rejected",
			params: service.CreateProductParams{
				Name: "Shirt",
				Variants: []service.CreateVariantParams{
					{Sku: "SKU-1", PriceCents: ptr.New(int64(-1))},
				},
			},
			wantErr: apperr.ErrNegativePrice,
		},
		{
			name: "negative inventory rejected",
			params: service.CreateProductParams{
				Name: "Shirt",
				Variants: []service.CreateVariantParams{
					{Sku: "SKU-1", InventoryCount: ptr.New(-5)},
				},
			},
			wantErr: apperr.ErrNegativeInventory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productRepo := &mockProductRepository{}
			variantRepo := &mockVariantRepository{}
			svc := service.NewProductService(fakeTxDB{}, productRepo, variantRepo)

			_, err := svc.CreateProduct(context.Background(), tt.params)

			require.ErrorIs(t, err, tt.wantErr)
			productRepo.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
			variantRepo.AssertNotCalled(t, "CreateVariant", mock.Anything, mock.Anything)
		})
	}
}

func TestProductService_CreateProduct_DuplicateSku(t *testing.T) {
	productRepo := &mockProductRepository{}
	variantRepo := &mockVariantRepository{}
	variantRepo.On("SkuExists", mock.Anything, "SKU-1").Return(false, nil).Once()
	variantRepo.On("SkuExists", mock.Anything, "SKU-2").Return(true, nil).Once()

	svc := service.NewProductService(fakeTxDB{}, productRepo, variantRepo)

	_, err := svc.CreateProduct(context.Background(), service.CreateProductParams{
		Name: "Shirt",
		Variants: []service.CreateVariantParams{
			{Sku: "SKU-1"},
			{Sku: "SKU-2"},
		},
	})

	var zErr zerror.ZError
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "SKU 'SKU-2' already exists", zErr.Msg())
	assert.Equal(t, zerror.StatusBadRequest, zErr.Status())

	// Nothing was written.
	productRepo.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	variantRepo.AssertNotCalled(t, "CreateVariant", mock.Anything, mock.Anything)
	variantRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_Defaults(t *testing.T) {
	productRepo := &mockProductRepository{}
	variantRepo := &mockVariantRepository{}

	variantRepo.On("SkuExists", mock.Anything, "SKU-1").Return(false, nil).Once()

	var createdID uuid.UUID
	productRepo.On("CreateProduct", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		createdID = p.ID
		return p.Name == "Shirt" &&
			p.Status == model.ProductStatusActive &&
			p.Description == nil &&
			p.CategoryID == nil
	})).Return(nil).Once()

	variantRepo.On("CreateVariant", mock.Anything, mock.MatchedBy(func(v model.Variant) bool {
		return v.Sku == "SKU-1" &&
			v.Name == "Default" &&
			v.PriceCents == 0 &&
			v.InventoryCount == 0
	})).Return(nil).Once()

	productRepo.On("GetProduct", mock.Anything, mock.Anything).
		Return(model.ProductWithCategory{
			Product: model.Product{Name: "Shirt", Status: model.ProductStatusActive},
		}, nil).Once()
	variantRepo.On("ListVariantsByProduct", mock.Anything, mock.Anything).
		Return([]model.Variant{{Sku: "SKU-1", Name: "Default"}}, nil).Once()

	svc := service.NewProductService(fakeTxDB{}, productRepo, variantRepo)

	detail, err := svc.CreateProduct(context.Background(), service.CreateProductParams{
		// Name and SKU are trimmed before persisting.
		Name:     "  Shirt  ",
		Variants: []service.CreateVariantParams{{Sku: " SKU-1 "}},
	})

	require.NoError(t, err)
	assert.Equal(t, "Shirt", detail.Name)
	require.Len(t, detail.Variants, 1)
	assert.Equal(t, "Default", detail.Variants[0].Name)
	assert.NotEqual(t, uuid.Nil, createdID)

	productRepo.AssertExpectations(t)
	variantRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_VariantInsertFails(t *testing.T) {
	productRepo := &mockProductRepository{}
	variantRepo := &mockVariantRepository{}

	variantRepo.On("SkuExists", mock.Anything, "SKU-1").Return(false, nil).Once()
	productRepo.On("CreateProduct", mock.Anything, mock.Anything).Return(nil).Once()
	variantRepo.On("CreateVariant", mock.Anything, mock.Anything).
		Return(errors.New("insert failed")).Once()

	svc := service.NewProductService(fakeTxDB{}, productRepo, variantRepo)

	_, err := svc.CreateProduct(context.Background(), service.CreateProductParams{
		Name:     "Shirt",
		Variants: []service.CreateVariantParams{{Sku: "SKU-1"}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db with tx")
	productRepo.AssertNotCalled(t, "GetProduct", mock.Anything, mock.Anything)
}

func TestProductService_GetProduct(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		productRepo := &mockProductRepository{}
		variantRepo := &mockVariantRepository{}
		id := uuid.New()
		productRepo.On("GetProduct", mock.Anything, id).
			Return(model.ProductWithCategory{}, repository.ErrNotFound).Once()

		svc := service.NewProductService(fakeTxDB{}, productRepo, variantRepo)

		_, err := svc.GetProduct(context.Background(), id)
		require.ErrorIs(t, err, apperr.ErrProductNotFound)
	})

	t.Run("soft deleted products stay addressable", func(t *testing.T) {
		productRepo := &mockProductRepository{}
		variantRepo := &mockVariantRepository{}
		id := uuid.New()
		deletedAt := time.Now()
		productRepo.On("GetProduct", mock.Anything, id).
			Return(model.ProductWithCategory{
				Product: model.Product{ID: id, Name: "Shirt", DeletedAt: &deletedAt},
			}, nil).Once()
		variantRepo.On("ListVariantsByProduct", mock.Anything, id).
			Return([]model.Variant{{Sku: "SKU-1"}}, nil).Once()

		svc := service.NewProductService(fakeTxDB{}, productRepo, variantRepo)

		detail, err := svc.GetProduct(context.Background(), id)
		require.NoError(t, err)
		assert.NotNil(t, detail.DeletedAt)
		assert.Len(t, detail.Variants, 1)
	})
}

func TestProductService_UpdateProduct(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		productRepo := &mockProductRepository{}
		id := uuid.New()
		productRepo.On("GetProduct", mock.Anything, id).
			Return(model.ProductWithCategory{}, repository.ErrNotFound).Once()

		svc := service.NewProductService(fakeTxDB{}, productRepo, &mockVariantRepository{})

		_, err := svc.UpdateProduct(context.Background(), id, service.UpdateProductParams{})
		require.ErrorIs(t, err, apperr.ErrProductNotFound)
		productRepo.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything)
	})

	t.Run("merge patch forwards only provided fields", func(t *testing.T) {
		productRepo := &mockProductRepository{}
		id := uuid.New()
		existing := model.ProductWithCategory{
			Product: model.Product{ID: id, Name: "Shirt"},
		}
		updated := model.ProductWithCategory{
			Product: model.Product{ID: id, Name: "Tee"},
		}

		productRepo.On("GetProduct", mock.Anything, id).Return(existing, nil).Once()
		productRepo.On("UpdateProduct", mock.Anything, mock.MatchedBy(func(p repository.UpdateProductParams) bool {
			return p.ID == id &&
				p.Name != nil && *p.Name == "Tee" &&
				p.Description == nil &&
				p.CategoryID == nil &&
				p.Status == nil
		})).Return(nil).Once()
		productRepo.On("GetProduct", mock.Anything, id).Return(updated, nil).Once()

		svc := service.NewProductService(fakeTxDB{}, productRepo, &mockVariantRepository{})

		product, err := svc.UpdateProduct(context.Background(), id, service.UpdateProductParams{
			Name: ptr.New("Tee"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Tee", product.Name)
		productRepo.AssertExpectations(t)
	})
}

func TestProductService_SoftDeleteProduct(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		productRepo := &mockProductRepository{}
		id := uuid.New()
		productRepo.On("GetProduct", mock.Anything, id).
			Return(model.ProductWithCategory{}, repository.ErrNotFound).Once()

		svc := service.NewProductService(fakeTxDB{}, productRepo, &mockVariantRepository{})

		err := svc.SoftDeleteProduct(context.Background(), id)
		require.ErrorIs(t, err, apperr.ErrProductNotFound)
		productRepo.AssertNotCalled(t, "SoftDeleteProduct", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("stamps deletion time", func(t *testing.T) {
		productRepo := &mockProductRepository{}
		id := uuid.New()
		productRepo.On("GetProduct", mock.Anything, id).
			Return(model.ProductWithCategory{Product: model.Product{ID: id}}, nil).Once()
		productRepo.On("SoftDeleteProduct", mock.Anything, id, mock.MatchedBy(func(at time.Time) bool {
			return time.Since(at) < time.Minute
		})).Return(nil).Once()

		svc := service.NewProductService(fakeTxDB{}, productRepo, &mockVariantRepository{})

		require.NoError(t, svc.SoftDeleteProduct(context.Background(), id))
		productRepo.AssertExpectations(t)
	})
}

func TestProductService_ListProducts(t *testing.T) {
	productRepo := &mockProductRepository{}
	categoryID := uuid.New()

	productRepo.On("ListProducts", mock.Anything, repository.ListProductsParams{
		Search:     ptr.New("shirt"),
		CategoryID: &categoryID,
	}).Return([]model.ProductSummary{
		{ProductWithCategory: model.ProductWithCategory{Product: model.Product{Name: "Shirt"}}, VariantCount: 2},
	}, nil).Once()

	svc := service.NewProductService(fakeTxDB{}, productRepo, &mockVariantRepository{})

	summaries, err := svc.ListProducts(context.Background(), service.ListProductsParams{
		Search:     ptr.New("shirt"),
		CategoryID: &categoryID,
	})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, int64(2), summaries[0].VariantCount)
	productRepo.AssertExpectations(t)
}
