package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/tuanvumaihuynh/catalog-service/internal/model"
	"github.com/tuanvumaihuynh/catalog-service/internal/repository"
	"github.com/tuanvumaihuynh/catalog-service/internal/storage/db"
)

// fakeTxDB satisfies db.DB for services under test. WithTx runs the
// function directly; queries are never issued because repositories are
// mocked.
type fakeTxDB struct {
	db.DB
}

func (f fakeTxDB) WithTx(_ context.Context, txFunc func(db.DB) error) error {
	return txFunc(f)
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) WithDB(_ db.DB) repository.ProductRepository {
	return m
}

func (m *mockProductRepository) CreateProduct(ctx context.Context, product model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepository) GetProduct(ctx context.Context, id uuid.UUID) (model.ProductWithCategory, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.ProductWithCategory), args.Error(1)
}

func (m *mockProductRepository) ListProducts(ctx context.Context, params repository.ListProductsParams) ([]model.ProductSummary, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProductSummary), args.Error(1)
}

func (m *mockProductRepository) UpdateProduct(ctx context.Context, params repository.UpdateProductParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *mockProductRepository) SoftDeleteProduct(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

type mockVariantRepository struct {
	mock.Mock
}

func (m *mockVariantRepository) WithDB(_ db.DB) repository.VariantRepository {
	return m
}

func (m *mockVariantRepository) CreateVariant(ctx context.Context, variant model.Variant) error {
	args := m.Called(ctx, variant)
	return args.Error(0)
}

func (m *mockVariantRepository) GetVariant(ctx context.Context, id uuid.UUID) (model.Variant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Variant), args.Error(1)
}

func (m *mockVariantRepository) ListVariantsByProduct(ctx context.Context, productID uuid.UUID) ([]model.Variant, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Variant), args.Error(1)
}

func (m *mockVariantRepository) SkuExists(ctx context.Context, sku string) (bool, error) {
	args := m.Called(ctx, sku)
	return args.Bool(0), args.Error(1)
}

func (m *mockVariantRepository) SkuExistsExcluding(ctx context.Context, sku string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, sku, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockVariantRepository) CountVariantsByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockVariantRepository) UpdateVariant(ctx context.Context, params repository.UpdateVariantParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *mockVariantRepository) DeleteVariant(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) WithDB(_ db.DB) repository.CategoryRepository {
	return m
}

func (m *mockCategoryRepository) CreateCategory(ctx context.Context, category model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}
