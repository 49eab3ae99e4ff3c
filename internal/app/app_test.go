package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-demo/internal/api"
	"shop-demo/internal/config"
	internaldb "shop-demo/internal/db"
	"shop-demo/internal/db/repository"
)

func testConfig() *config.Config {
	return &config.Config{
		SeedDemo:       true,
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
		Auth: config.AuthConfig{
			JWTSecret: "test-secret",
			JWTIssuer: "shop-demo",
			JWTTTL:    time.Hour,
		},
	}
}

func newTestApp(t *testing.T) (*App, *repository.CartRepo) {
	t.Helper()
	writeDB, readDB := internaldb.OpenTestSQLite(t)
	a, err := New(context.Background(), Deps{Cfg: testConfig(), WriteDB: writeDB, ReadDB: readDB})
	require.NoError(t, err)
	require.NotNil(t, a.Issuer)
	return a, repository.NewCartRepo(readDB)
}

func call(t *testing.T, srv *httptest.Server, method, path, token, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestSeedDemo_Idempotent(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, seedDemo(ctx, writeDB))
	require.NoError(t, seedDemo(ctx, writeDB))

	n, err := repository.NewCustomerRepo(writeDB).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	id, err := repository.NewCustomerRepo(writeDB).FindIDByUsername(ctx, DemoCustomer)
	require.NoError(t, err)
	entries, err := repository.NewCartRepo(writeDB).ListByCustomer(ctx, id)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestApp_EndToEnd(t *testing.T) {
	a, carts := newTestApp(t)
	srv := httptest.NewServer(a.Router)
	t.Cleanup(srv.Close)

	token, err := a.Issuer.Issue(DemoCustomer)
	require.NoError(t, err)

	// Seeded cart entries have ids 1 (chicken) and 2 (beer).
	resp := call(t, srv, http.MethodPost, "/api/customers/me/orders", token,
		`[{"cartId":1,"quantity":2},{"cartId":2,"quantity":5}]`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var placed api.PlaceOrderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&placed))
	assert.Equal(t, fmt.Sprintf("/api/customers/me/orders/%d", placed.OrderID), resp.Header.Get("Location"))

	resp = call(t, srv, http.MethodGet, resp.Header.Get("Location"), token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got api.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got.OrderDetails, 2)
	assert.Equal(t, "chicken", got.OrderDetails[0].Name)
	assert.Equal(t, 2, got.OrderDetails[0].Quantity)
	assert.Equal(t, "beer", got.OrderDetails[1].Name)
	assert.Equal(t, 5, got.OrderDetails[1].Quantity)
	assert.Equal(t, int64(2*10000+5*20000), got.TotalPrice)

	resp = call(t, srv, http.MethodGet, "/api/customers/me/orders", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []api.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, placed.OrderID, list[0].OrderID)

	for _, id := range []int64{1, 2} {
		_, err := carts.Find(context.Background(), id)
		assert.Error(t, err, "cart entry %d should be consumed", id)
	}

	// Placing the same entries again fails: they no longer resolve.
	resp = call(t, srv, http.MethodPost, "/api/customers/me/orders", token, `[{"cartId":1,"quantity":1}]`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestApp_RejectsBadTokens(t *testing.T) {
	a, _ := newTestApp(t)
	srv := httptest.NewServer(a.Router)
	t.Cleanup(srv.Close)

	stranger, err := a.Issuer.Issue("nobody")
	require.NoError(t, err)

	resp := call(t, srv, http.MethodGet, "/api/customers/me/orders", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = call(t, srv, http.MethodGet, "/api/customers/me/orders", "not.a.jwt", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = call(t, srv, http.MethodGet, "/api/customers/me/orders", stranger, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "valid token without a customer")
}
