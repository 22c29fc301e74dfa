package wire_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rk-commerce/internal/data/repository/repotest"
	"rk-commerce/internal/wire"
	"rk-commerce/pkg/token"
	"rk-commerce/pkg/utils"
)

func testConfig() *utils.Config {
	return &utils.Config{
		App:       utils.AppConfig{Name: "rk-commerce", APIPrefix: "/api"},
		JWT:       utils.JWTConfig{Secret: "test-secret", Expiry: 30 * time.Minute},
		CORS:      utils.CORSConfig{AllowedOrigins: []string{"*"}},
		RateLimit: utils.RateLimitConfig{Requests: 100, Window: time.Minute},
		Limits:    utils.LimitsConfig{CatalogList: 1000, OrderList: 1000},
	}
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type client struct {
	t      *testing.T
	router http.Handler
	token  string
}

func newClient(t *testing.T, config *utils.Config, health wire.HealthChecker) *client {
	t.Helper()

	tokens, err := token.NewManager(config.JWT.Secret, config.JWT.Expiry)
	require.NoError(t, err)

	app := wire.Wiring(repotest.New(), health, tokens, config, zap.NewNop())
	return &client{t: t, router: app.Router}
}

func (c *client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func (c *client) registerAndLogin(email string) {
	c.t.Helper()

	rec := c.do(http.MethodPost, "/api/register", map[string]string{
		"email":     email,
		"password":  "pw",
		"full_name": "Test User",
		"phone":     "0812",
		"address":   "Jl. Merdeka 1",
	})
	require.Equal(c.t, http.StatusOK, rec.Code, rec.Body.String())

	rec = c.do(http.MethodPost, "/api/login", map[string]string{"email": email, "password": "pw"})
	require.Equal(c.t, http.StatusOK, rec.Code, rec.Body.String())
	c.token = decode[map[string]string](c.t, rec)["access_token"]
	require.NotEmpty(c.t, c.token)
}

func TestShoppingFlow(t *testing.T) {
	t.Parallel()

	c := newClient(t, testConfig(), nil)

	rec := c.do(http.MethodPost, "/api/init-products", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Sample products initialized", decode[map[string]string](t, rec)["message"])

	rec = c.do(http.MethodPost, "/api/register", map[string]string{
		"email": "a@x.com", "password": "pw", "full_name": "Ayu", "phone": "0812", "address": "Jl. Merdeka 1",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	registered := decode[map[string]any](t, rec)
	assert.Equal(t, "a@x.com", registered["email"])
	assert.NotContains(t, rec.Body.String(), "password")

	rec = c.do(http.MethodPost, "/api/login", map[string]string{"email": "a@x.com", "password": "pw"})
	require.Equal(t, http.StatusOK, rec.Code)
	login := decode[map[string]string](t, rec)
	assert.Equal(t, "bearer", login["token_type"])
	c.token = login["access_token"]

	rec = c.do(http.MethodGet, "/api/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@x.com", decode[map[string]any](t, rec)["email"])

	rec = c.do(http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	products := decode[[]map[string]any](t, rec)
	require.NotEmpty(t, products)
	productID := products[0]["id"].(string)

	rec = c.do(http.MethodPost, "/api/cart", map[string]any{"product_id": productID, "quantity": 1})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = c.do(http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cart := decode[[]struct {
		ID       string         `json:"id"`
		Quantity int            `json:"quantity"`
		Product  map[string]any `json:"product"`
	}](t, rec)
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)
	assert.Equal(t, productID, cart[0].Product["id"])

	rec = c.do(http.MethodPost, "/api/orders", map[string]any{
		"items": []map[string]any{{
			"product_id":   productID,
			"product_name": products[0]["name"],
			"quantity":     1,
			"price":        products[0]["price"],
		}},
		"total_amount":     products[0]["price"],
		"payment_method":   "cod",
		"shipping_address": "Jl. Merdeka 1",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	order := decode[map[string]any](t, rec)
	assert.Equal(t, "pending", order["status"])

	rec = c.do(http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	orders := decode[[]map[string]any](t, rec)
	require.Len(t, orders, 1)
	items := orders[0]["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, productID, items[0].(map[string]any)["product_id"])

	rec = c.do(http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestRootAndHealth(t *testing.T) {
	t.Parallel()

	c := newClient(t, testConfig(), nil)

	rec := c.do(http.MethodGet, "/api/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "RK Industry API", decode[map[string]string](t, rec)["message"])

	rec = c.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = c.do(http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "rk_http_requests_total")
}

func TestHealthReportsStoreFailure(t *testing.T) {
	t.Parallel()

	c := newClient(t, testConfig(), pingFunc(func(context.Context) error {
		return errors.New("connection refused")
	}))

	rec := c.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestDuplicateRegistrationIsBadRequest(t *testing.T) {
	t.Parallel()

	c := newClient(t, testConfig(), nil)
	c.registerAndLogin("a@x.com")

	rec := c.do(http.MethodPost, "/api/register", map[string]string{
		"email": "a@x.com", "password": "pw2", "full_name": "Again",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "already registered")
}

func TestBadCredentialsAreUnauthorized(t *testing.T) {
	t.Parallel()

	c := newClient(t, testConfig(), nil)
	c.registerAndLogin("a@x.com")

	rec := c.do(http.MethodPost, "/api/login", map[string]string{"email": "a@x.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	t.Parallel()

	c := newClient(t, testConfig(), nil)

	for _, path := range []string{"/api/me", "/api/cart", "/api/orders"} {
		rec := c.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	c.token = "not-a-jwt"
	rec := c.do(http.MethodGet, "/api/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Could not validate credentials")
}

func TestProductEndpoints(t *testing.T) {
	t.Parallel()

	c := newClient(t, testConfig(), nil)

	rec := c.do(http.MethodPost, "/api/init-products", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = c.do(http.MethodPost, "/api/init-products", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Products already initialized", decode[map[string]string](t, rec)["message"])

	rec = c.do(http.MethodGet, "/api/products?category=clothing", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, p := range decode[[]map[string]any](t, rec) {
		assert.Equal(t, "clothing", p["category"])
	}

	rec = c.do(http.MethodGet, "/api/products/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found", decode[map[string]any](t, rec)["detail"])

	rec = c.do(http.MethodPost, "/api/products", map[string]any{
		"name": "Cap", "description": "Baseball cap", "price": 12.5, "category": "accessories", "stock": 10,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decode[map[string]any](t, rec)

	rec = c.do(http.MethodGet, "/api/products/"+created["id"].(string), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Cap", decode[map[string]any](t, rec)["name"])

	rec = c.do(http.MethodPost, "/api/products", map[string]any{"name": "No category", "price": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[map[string]any](t, rec)["errors"], "category")
}

func TestCartEndpoints(t *testing.T) {
	t.Parallel()

	c := newClient(t, testConfig(), nil)
	c.do(http.MethodPost, "/api/init-products", nil)
	c.registerAndLogin("a@x.com")

	products := decode[[]map[string]any](t, c.do(http.MethodGet, "/api/products", nil))
	productID := products[0]["id"].(string)

	rec := c.do(http.MethodPost, "/api/cart", map[string]any{"product_id": productID, "quantity": 2})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = c.do(http.MethodPost, "/api/cart", map[string]any{"product_id": productID, "quantity": 3})
	require.Equal(t, http.StatusOK, rec.Code)
	item := decode[map[string]any](t, rec)
	assert.Equal(t, 5.0, item["quantity"])

	rec = c.do(http.MethodPost, "/api/cart", map[string]any{"product_id": productID, "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = c.do(http.MethodPost, "/api/cart", map[string]any{"product_id": "missing"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Another user cannot delete the row.
	other := &client{t: t, router: c.router}
	other.registerAndLogin("b@x.com")
	rec = other.do(http.MethodDelete, "/api/cart/"+item["id"].(string), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = c.do(http.MethodDelete, "/api/cart/"+item["id"].(string), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decode[map[string]string](t, rec)["message"], "removed")

	rec = c.do(http.MethodGet, "/api/cart", nil)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCredentialRoutesAreRateLimited(t *testing.T) {
	t.Parallel()

	config := testConfig()
	config.RateLimit = utils.RateLimitConfig{Requests: 2, Window: time.Minute}
	c := newClient(t, config, nil)

	body := map[string]string{"email": "a@x.com", "password": "pw"}
	for i := 0; i < 2; i++ {
		rec := c.do(http.MethodPost, "/api/login", body)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	rec := c.do(http.MethodPost, "/api/login", body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Catalog routes are not limited.
	rec = c.do(http.MethodGet, "/api/products", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestIDIsEchoed(t *testing.T) {
	t.Parallel()

	c := newClient(t, testConfig(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))

	rec = c.do(http.MethodGet, "/api/", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestUnknownRouteIsJSON(t *testing.T) {
	t.Parallel()

	c := newClient(t, testConfig(), nil)

	rec := c.do(http.MethodGet, "/api/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json"))
}

func TestMissingAmountsAreRejected(t *testing.T) {
	t.Parallel()

	c := newClient(t, testConfig(), nil)
	c.registerAndLogin("a@x.com")

	cases := []struct {
		name  string
		path  string
		body  map[string]any
		field string
	}{
		{
			name: "order without total",
			path: "/api/orders",
			body: map[string]any{
				"items":            []map[string]any{{"product_id": "p1", "product_name": "n", "quantity": 1, "price": 10}},
				"payment_method":   "Bkash",
				"shipping_address": "addr",
			},
			field: "total_amount",
		},
		{
			name: "order item without price",
			path: "/api/orders",
			body: map[string]any{
				"items":            []map[string]any{{"product_id": "p1", "product_name": "n", "quantity": 1}},
				"total_amount":     10,
				"payment_method":   "Bkash",
				"shipping_address": "addr",
			},
			field: "items[0].price",
		},
		{
			name:  "product without price",
			path:  "/api/products",
			body:  map[string]any{"name": "x", "category": "c"},
			field: "price",
		},
	}

	for _, tc := range cases {
		rec := c.do(http.MethodPost, tc.path, tc.body)
		require.Equal(t, http.StatusBadRequest, rec.Code, tc.name)

		body := decode[struct {
			Detail string            `json:"detail"`
			Errors map[string]string `json:"errors"`
		}](t, rec)
		assert.Equal(t, "This field is required", body.Errors[tc.field], tc.name)
	}

	// Nothing was stored by the rejected requests.
	rec := c.do(http.MethodGet, "/api/orders", nil)
	assert.JSONEq(t, "[]", rec.Body.String())
	rec = c.do(http.MethodGet, "/api/products", nil)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestZeroAmountsAreAccepted(t *testing.T) {
	t.Parallel()

	c := newClient(t, testConfig(), nil)
	c.registerAndLogin("a@x.com")

	rec := c.do(http.MethodPost, "/api/products", map[string]any{"name": "Sticker", "category": "accessories", "price": 0})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 0.0, decode[map[string]any](t, rec)["price"])

	rec = c.do(http.MethodPost, "/api/orders", map[string]any{
		"items":            []map[string]any{{"product_id": "p1", "product_name": "Sticker", "quantity": 1, "price": 0}},
		"total_amount":     0,
		"payment_method":   "Bkash",
		"shipping_address": "addr",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestInvalidJSONIsBadRequest(t *testing.T) {
	t.Parallel()

	c := newClient(t, testConfig(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"detail":"Invalid request body"}`, rec.Body.String())
}
