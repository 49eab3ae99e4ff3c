package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-demo/internal/domain"
)

type stubResolver struct{}

func (stubResolver) Resolve(_ context.Context, header string) (domain.Principal, error) {
	switch header {
	case "":
		return domain.Principal{}, domain.ErrUnauthorized(domain.ErrMissingCredentials, "authorization header is required")
	case "Bearer yaho":
		return domain.Principal{Username: "yaho"}, nil
	default:
		return domain.Principal{}, domain.ErrUnauthorized(domain.ErrInvalidToken, "invalid token")
	}
}

type stubOrders struct {
	placeFn func(p domain.Principal, reqs []domain.OrderLineRequest) (int64, error)
	getFn   func(p domain.Principal, id int64) (domain.OrderView, error)
	listFn  func(p domain.Principal) ([]domain.OrderView, error)
}

func (s *stubOrders) PlaceOrder(_ context.Context, p domain.Principal, reqs []domain.OrderLineRequest) (int64, error) {
	return s.placeFn(p, reqs)
}

func (s *stubOrders) GetOrder(_ context.Context, p domain.Principal, id int64) (domain.OrderView, error) {
	return s.getFn(p, id)
}

func (s *stubOrders) ListOrders(_ context.Context, p domain.Principal) ([]domain.OrderView, error) {
	return s.listFn(p)
}

func newTestServer(t *testing.T, orders *stubOrders) *httptest.Server {
	t.Helper()
	h := NewHandler(orders, orders, nil)
	srv := httptest.NewServer(NewRouter(h, RouterConfig{Resolver: stubResolver{}}))
	t.Cleanup(srv.Close)
	return srv
}

func doRequest(t *testing.T, method, url, token, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), method, url, strings.NewReader(body))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

func TestPlaceOrder_Created(t *testing.T) {
	var got []domain.OrderLineRequest
	srv := newTestServer(t, &stubOrders{
		placeFn: func(p domain.Principal, reqs []domain.OrderLineRequest) (int64, error) {
			assert.Equal(t, "yaho", p.Username)
			got = reqs
			return 42, nil
		},
	})

	resp := doRequest(t, http.MethodPost, srv.URL+"/api/customers/me/orders", "yaho",
		`[{"cartId":1,"quantity":2},{"cartId":2,"quantity":5}]`)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/api/customers/me/orders/42", resp.Header.Get("Location"))
	var body PlaceOrderResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, int64(42), body.OrderID)
	assert.Equal(t, []domain.OrderLineRequest{
		{CartEntryID: 1, Quantity: 2},
		{CartEntryID: 2, Quantity: 5},
	}, got)
}

func TestPlaceOrder_Errors(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		body     string
		err      error
		wantCode int
	}{
		{name: "no token", body: `[]`, wantCode: http.StatusUnauthorized},
		{name: "bad token", token: "forged", body: `[]`, wantCode: http.StatusUnauthorized},
		{name: "malformed body", token: "yaho", body: `{"cartId":1}`, wantCode: http.StatusBadRequest},
		{name: "empty body", token: "yaho", body: ``, wantCode: http.StatusBadRequest},
		{name: "unknown field", token: "yaho", body: `[{"cartId":1,"qty":1}]`, wantCode: http.StatusBadRequest},
		{name: "invalid quantity", token: "yaho", body: `[{"cartId":1,"quantity":0}]`,
			err: domain.ErrValidationKind(domain.ErrInvalidQuantity, "quantity must be positive"), wantCode: http.StatusBadRequest},
		{name: "unknown cart entry", token: "yaho", body: `[{"cartId":9,"quantity":1}]`,
			err: domain.ErrNotFoundKind(domain.ErrUnknownCartEntry, "cart entry 9 not found"), wantCode: http.StatusBadRequest},
		{name: "foreign cart entry", token: "yaho", body: `[{"cartId":3,"quantity":1}]`,
			err: domain.ErrAccessDenied(domain.ErrCartEntryNotOwned, "cart entry 3 does not belong to the caller"), wantCode: http.StatusForbidden},
		{name: "store failure", token: "yaho", body: `[{"cartId":1,"quantity":1}]`,
			err: errors.New("database is locked"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			srv := newTestServer(t, &stubOrders{
				placeFn: func(domain.Principal, []domain.OrderLineRequest) (int64, error) {
					called = true
					return 0, tt.err
				},
			})

			resp := doRequest(t, http.MethodPost, srv.URL+"/api/customers/me/orders", tt.token, tt.body)

			assert.Equal(t, tt.wantCode, resp.StatusCode)
			var body map[string]interface{}
			decodeBody(t, resp, &body)
			assert.InDelta(t, float64(tt.wantCode), body["code"], 0.001)
			if tt.wantCode == http.StatusUnauthorized {
				assert.False(t, called, "service must not run for unauthenticated calls")
			}
			if tt.wantCode == http.StatusInternalServerError {
				assert.Equal(t, "internal server error", body["message"])
			}
		})
	}
}

func TestGetOrder(t *testing.T) {
	srv := newTestServer(t, &stubOrders{
		getFn: func(_ domain.Principal, id int64) (domain.OrderView, error) {
			switch id {
			case 1:
				return domain.OrderView{
					OrderID:    1,
					TotalPrice: 120000,
					Lines: []domain.OrderLineView{
						{ProductID: 10, Name: "chicken", Price: 10000, ImageURL: "chicken.jpg", Quantity: 2},
						{ProductID: 20, Name: "beer", Price: 20000, ImageURL: "beer.jpg", Quantity: 5},
					},
				}, nil
			case 2:
				return domain.OrderView{}, domain.ErrNotFoundKind(domain.ErrOrderNotOwned, "order 2 not found")
			default:
				return domain.OrderView{}, domain.ErrNotFoundKind(domain.ErrUnknownOrder, "order %d not found", id)
			}
		},
	})

	t.Run("owner", func(t *testing.T) {
		resp := doRequest(t, http.MethodGet, srv.URL+"/api/customers/me/orders/1", "yaho", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body Order
		decodeBody(t, resp, &body)
		assert.Equal(t, int64(1), body.OrderID)
		assert.Equal(t, int64(120000), body.TotalPrice)
		require.Len(t, body.OrderDetails, 2)
		assert.Equal(t, OrderDetail{ProductID: 10, Name: "chicken", Price: 10000, ImageURL: "chicken.jpg", Quantity: 2}, body.OrderDetails[0])
	})

	t.Run("not owned and unknown are both 404", func(t *testing.T) {
		for _, path := range []string{"/2", "/3"} {
			resp := doRequest(t, http.MethodGet, srv.URL+"/api/customers/me/orders"+path, "yaho", "")
			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		}
	})

	t.Run("bad id", func(t *testing.T) {
		resp := doRequest(t, http.MethodGet, srv.URL+"/api/customers/me/orders/abc", "yaho", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestListOrders(t *testing.T) {
	srv := newTestServer(t, &stubOrders{
		listFn: func(domain.Principal) ([]domain.OrderView, error) {
			return []domain.OrderView{{OrderID: 1}, {OrderID: 2}}, nil
		},
	})

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/customers/me/orders", "yaho", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body []Order
	decodeBody(t, resp, &body)
	require.Len(t, body, 2)
	assert.Equal(t, int64(1), body[0].OrderID)
	assert.NotNil(t, body[0].OrderDetails)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, &stubOrders{})

	resp := doRequest(t, http.MethodGet, srv.URL+"/healthz", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
