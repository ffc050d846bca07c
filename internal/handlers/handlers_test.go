package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/example/loomwear/internal/cartstate"
	"github.com/example/loomwear/internal/config"
	"github.com/example/loomwear/internal/database"
	"github.com/example/loomwear/internal/models"
	"github.com/example/loomwear/internal/routes"
	"github.com/example/loomwear/internal/storage"
	"github.com/example/loomwear/internal/utils"
)

type testEnv struct {
	App *fiber.App
	DB  *gorm.DB
	Cfg *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	kv, err := storage.NewFile(t.TempDir())
	require.NoError(t, err)

	cart := cartstate.NewCartStore(kv, zerolog.Nop())
	variants := cartstate.NewVariantStore(kv, zerolog.Nop())
	cfg := &config.Config{JWTSecret: "test-secret", TokenExpires: time.Hour}

	app := fiber.New()
	routes.Register(app, db, cfg, cart, variants)

	return &testEnv{App: app, DB: db, Cfg: cfg}
}

func (env *testEnv) request(t *testing.T, method, path string, body any, token string) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := env.App.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func (env *testEnv) seedProduct(t *testing.T) *models.Product {
	t.Helper()

	product := models.Product{
		Name:  "Premium Cotton T-Shirt",
		Price: decimal.RequireFromString("49.99"),
		Colors: []models.Color{
			{Name: "White", HexCode: "#FFFFFF", SortOrder: 0},
			{Name: "Black", HexCode: "#000000", SortOrder: 1},
		},
		Sizes: []models.Size{
			{Size: "S", SortOrder: 0},
			{Size: "M", SortOrder: 1},
		},
	}
	require.NoError(t, env.DB.Create(&product).Error)
	return &product
}

func data(body map[string]any) map[string]any {
	d, _ := body["data"].(map[string]any)
	return d
}

func TestHealth(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	resp, body := env.request(t, http.MethodGet, "/api/health", nil, "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Server is running", body["status"])
}

func TestGetProductNotFound(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	resp, _ := env.request(t, http.MethodGet, "/api/products/404", nil, "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetProductReturnsOrderedVariants(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	product := env.seedProduct(t)

	resp, body := env.request(t, http.MethodGet, fmt.Sprintf("/api/products/%d", product.ID), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	colors, ok := data(body)["colors"].([]any)
	require.True(t, ok)
	require.Len(t, colors, 2)
	first, _ := colors[0].(map[string]any)
	assert.Equal(t, "White", first["name"])
}

func TestAddToCartMergesAndRecomputesTotals(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	item := map[string]any{
		"productId": 1, "name": "T", "color": "Red", "size": "M", "price": 10,
	}

	resp, _ := env.request(t, http.MethodPost, "/api/cart/items", item, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	item["quantity"] = 2
	resp, body := env.request(t, http.MethodPost, "/api/cart/items", item, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	payload := data(body)
	items, _ := payload["items"].([]any)
	require.Len(t, items, 1)

	totals, _ := payload["totals"].(map[string]any)
	assert.Equal(t, float64(3), totals["count"])
	assert.Equal(t, float64(30), totals["amount"])
	assert.Equal(t, true, payload["persisted"])
}

func TestRemoveCartItemDropsAllVariants(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.request(t, http.MethodPost, "/api/cart/items",
		map[string]any{"productId": 1, "name": "T", "color": "Red", "price": 10}, "")
	env.request(t, http.MethodPost, "/api/cart/items",
		map[string]any{"productId": 1, "name": "T", "color": "Blue", "price": 10}, "")

	resp, body := env.request(t, http.MethodDelete, "/api/cart/items/1", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	items, _ := data(body)["items"].([]any)
	assert.Empty(t, items)
}

func TestClearCart(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.request(t, http.MethodPost, "/api/cart/items",
		map[string]any{"productId": 1, "name": "T", "price": 10, "quantity": 4}, "")

	resp, body := env.request(t, http.MethodDelete, "/api/cart/", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	totals, _ := data(body)["totals"].(map[string]any)
	assert.Equal(t, float64(0), totals["count"])
}

func TestSelectionDefaultsAndWriteThrough(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	product := env.seedProduct(t)

	resp, body := env.request(t, http.MethodGet, fmt.Sprintf("/api/selection?productId=%d", product.ID), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "White", data(body)["selectedColor"])
	assert.Equal(t, "S", data(body)["selectedSize"])

	resp, body = env.request(t, http.MethodPut, "/api/selection", map[string]any{"color": "Black"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Black", data(body)["selectedColor"])
	assert.Equal(t, true, data(body)["persisted"])

	// A later catalog-backed read must not clobber the explicit choice.
	_, body = env.request(t, http.MethodGet, fmt.Sprintf("/api/selection?productId=%d", product.ID), nil, "")
	assert.Equal(t, "Black", data(body)["selectedColor"])
}

func TestBundleQuoteEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	resp, body := env.request(t, http.MethodPost, "/api/bundle/quote", map[string]any{
		"items": []map[string]any{
			{"name": "Main Product", "price": 50},
			{"name": "Complementary Item 1", "price": 20},
			{"name": "Complementary Item 2", "price": 10},
		},
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	quote := data(body)
	assert.Equal(t, float64(80), quote["total"])
	assert.Equal(t, float64(8), quote["discount"])
	assert.Equal(t, float64(72), quote["bundlePrice"])
	assert.Equal(t, float64(10), quote["displayDiscountPercent"])
}

func TestCatalogWritesRequireAuth(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	resp, _ := env.request(t, http.MethodPost, "/api/products",
		map[string]any{"name": "Hoodie", "price": 59.99}, "")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminCanCreateProductAndChildren(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	hash, err := utils.HashPassword("correct horse")
	require.NoError(t, err)
	require.NoError(t, env.DB.Create(&models.User{Email: "admin@example.test", PasswordHash: hash}).Error)

	resp, body := env.request(t, http.MethodPost, "/api/auth/login",
		map[string]any{"email": "admin@example.test", "password": "correct horse"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := data(body)["token"].(string)
	require.NotEmpty(t, token)

	resp, body = env.request(t, http.MethodPost, "/api/products",
		map[string]any{"name": "Hoodie", "price": 59.99}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	productID := int(data(body)["id"].(float64))

	// Omitted order defaults to 0.
	resp, body = env.request(t, http.MethodPost, fmt.Sprintf("/api/products/%d/colors", productID),
		map[string]any{"name": "White", "hexCode": "#FFFFFF"}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, float64(0), data(body)["order"])
}
