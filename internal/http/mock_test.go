package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/catalog-service/internal/config"
	cataloghttp "github.com/tuanvumaihuynh/catalog-service/internal/http"
	"github.com/tuanvumaihuynh/catalog-service/internal/model"
	"github.com/tuanvumaihuynh/catalog-service/internal/service"
	"github.com/tuanvumaihuynh/catalog-service/internal/storage/db"
)

type mockProductService struct {
	mock.Mock
}

func (m *mockProductService) ListProducts(ctx context.Context, params service.ListProductsParams) ([]model.ProductSummary, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProductSummary), args.Error(1)
}

func (m *mockProductService) GetProduct(ctx context.Context, id uuid.UUID) (model.ProductDetail, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.ProductDetail), args.Error(1)
}

func (m *mockProductService) CreateProduct(ctx context.Context, params service.CreateProductParams) (model.ProductDetail, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.ProductDetail), args.Error(1)
}

func (m *mockProductService) UpdateProduct(ctx context.Context, id uuid.UUID, params service.UpdateProductParams) (model.ProductWithCategory, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(model.ProductWithCategory), args.Error(1)
}

func (m *mockProductService) SoftDeleteProduct(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockVariantService struct {
	mock.Mock
}

func (m *mockVariantService) GetVariant(ctx context.Context, id uuid.UUID) (model.Variant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Variant), args.Error(1)
}

func (m *mockVariantService) UpdateVariant(ctx context.Context, id uuid.UUID, params service.UpdateVariantParams) (model.Variant, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(model.Variant), args.Error(1)
}

func (m *mockVariantService) DeleteVariant(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) ListCategories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, name string) (model.Category, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(model.Category), args.Error(1)
}

type mockHealthChecker struct {
	mock.Mock
}

func (m *mockHealthChecker) IsHealthy(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

type testDeps struct {
	productSvc  *mockProductService
	variantSvc  *mockVariantService
	categorySvc *mockCategoryService
	health      *mockHealthChecker
}

// newTestRouter wires mocked services through the real handler
// registration so routing and error mapping are exercised end to end.
func newTestRouter(t *testing.T) (chi.Router, testDeps) {
	t.Helper()

	deps := testDeps{
		productSvc:  &mockProductService{},
		variantSvc:  &mockVariantService{},
		categorySvc: &mockCategoryService{},
		health:      &mockHealthChecker{},
	}

	var health db.HealthChecker = deps.health
	svc := cataloghttp.New(
		config.HTTP{},
		slog.New(slog.DiscardHandler),
		deps.productSvc,
		deps.variantSvc,
		deps.categorySvc,
		health,
	)

	r := chi.NewRouter()
	require.NoError(t, svc.RegisterHandlers(r))

	return r, deps
}

func doRequest(t *testing.T, r chi.Router, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))

	return v
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	body := decodeBody[map[string]string](t, rec)
	require.Contains(t, body, "error")

	return body["error"]
}
