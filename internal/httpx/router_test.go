package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"loafer-be/internal/admin"
	"loafer-be/internal/auth"
	"loafer-be/internal/cart"
	"loafer-be/internal/catalog"
	"loafer-be/internal/checkout"
	"loafer-be/internal/pricing"
	"loafer-be/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	catalogRepo, err := catalog.NewRepository()
	require.NoError(t, err)
	ranges, err := catalog.ParsePriceRanges("0-100,100-200,200-300,300-1000")
	require.NoError(t, err)

	tokens, err := auth.NewManager("test-secret", time.Hour)
	require.NoError(t, err)

	userRepo := user.NewRepository()
	require.NoError(t, user.SeedDemoAccounts(context.Background(), userRepo))

	cartRepo := cart.NewRepository()
	checkoutRepo := checkout.NewRepository()

	return NewRouter(Deps{
		Catalog:  catalog.NewService(catalogRepo, ranges),
		Cart:     cart.NewService(cartRepo, catalogRepo, pricing.DefaultThreshold(), pricing.DefaultTaxRate),
		Checkout: checkout.NewService(checkoutRepo, cartRepo, checkout.DefaultMethodRates(), pricing.DefaultTaxRate),
		User:     user.NewService(userRepo, tokens),
		Admin:    admin.NewService(checkoutRepo, catalogRepo, userRepo),
		Tokens:   tokens,
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func login(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := decodeBody(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/healthz", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestRouter_Catalog(t *testing.T) {
	router := newTestRouter(t)

	t.Run("list all", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/products", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.EqualValues(t, 7, body["count"])
	})

	t.Run("list filtered", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/products?category=Running&color=White", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.EqualValues(t, 1, body["count"])
	})

	t.Run("repeated facet params are OR", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/products?price=0-100&price=300-1000", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.EqualValues(t, 1, body["count"])
	})

	t.Run("get by id", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/products/1", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Quantum X-9000", body["name"])
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/products/999", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("facets", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/facets", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Contains(t, body, "categories")
		assert.Contains(t, body, "price_ranges")
	})
}

func TestRouter_Auth(t *testing.T) {
	router := newTestRouter(t)

	t.Run("register then me", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
			"email":    "shopper@example.com",
			"password": "secret123",
			"name":     "Shopper",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		token, _ := decodeBody(t, w)["token"].(string)
		require.NotEmpty(t, token)

		me := doJSON(t, router, http.MethodGet, "/api/me", token, nil)
		require.Equal(t, http.StatusOK, me.Code)
		assert.Contains(t, me.Body.String(), "shopper@example.com")
	})

	t.Run("short password is rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
			"email":    "short@example.com",
			"password": "short",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad credentials", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
			"email":    "demo@loaferbd.com",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("cart requires auth", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/cart", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRouter_CartAndCheckoutFlow(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "demo@loaferbd.com", "demo1234")

	// Add two lines.
	w := doJSON(t, router, http.MethodPost, "/api/cart/items", token, gin.H{
		"product_id": "1",
		"color":      "Black",
		"size":       "9",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/cart/items", token, gin.H{
		"product_id": "2",
		"color":      "Brown",
		"size":       "8",
		"quantity":   2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// 199 + 458 = 657: free shipping under the cart-view policy.
	w = doJSON(t, router, http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	totals := decodeBody(t, w)["totals"].(map[string]any)
	assert.Equal(t, "657", fmt.Sprint(totals["subtotal"]))
	assert.Equal(t, "0", fmt.Sprint(totals["shipping"]))

	// Open a checkout session; the flow prices with flat rates instead.
	w = doJSON(t, router, http.MethodPost, "/api/checkout/sessions", token, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	session := decodeBody(t, w)
	sessionID := session["id"].(string)
	assert.Equal(t, "information", session["step"])

	w = doJSON(t, router, http.MethodPut, "/api/checkout/sessions/"+sessionID+"/contact", token, gin.H{
		"first_name": "Demo",
		"last_name":  "Shopper",
		"email":      "demo@loaferbd.com",
		"address":    "12 Gulshan Ave",
		"city":       "Dhaka",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "shipping", decodeBody(t, w)["step"])

	w = doJSON(t, router, http.MethodPut, "/api/checkout/sessions/"+sessionID+"/shipping", token, gin.H{
		"method": "express",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, "payment", body["step"])
	sessionTotals := body["totals"].(map[string]any)
	assert.Equal(t, "19.99", fmt.Sprint(sessionTotals["shipping"]))

	w = doJSON(t, router, http.MethodPost, "/api/checkout/sessions/"+sessionID+"/confirm", token, gin.H{
		"payment_method": "credit",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decodeBody(t, w)
	assert.Equal(t, "PENDING", order["status"])

	// Confirming consumed the cart.
	w = doJSON(t, router, http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["items"])
}

func TestRouter_Admin(t *testing.T) {
	router := newTestRouter(t)

	t.Run("plain user is forbidden", func(t *testing.T) {
		token := login(t, router, "demo@loaferbd.com", "demo1234")

		w := doJSON(t, router, http.MethodGet, "/api/admin/stats", token, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin reads stats", func(t *testing.T) {
		token := login(t, router, "admin@loaferbd.com", "admin1234")

		w := doJSON(t, router, http.MethodGet, "/api/admin/stats", token, nil)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decodeBody(t, w)
		assert.EqualValues(t, 7, body["product_count"])
		assert.EqualValues(t, 2, body["customer_count"])
	})

	t.Run("top products validates limit", func(t *testing.T) {
		token := login(t, router, "admin@loaferbd.com", "admin1234")

		w := doJSON(t, router, http.MethodGet, "/api/admin/top-products?limit=0", token, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
