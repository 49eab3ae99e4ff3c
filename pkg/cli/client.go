package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"shop-demo/internal/api"
)

// APIError is a non-2xx response from the shop API.
type APIError struct {
	HTTPStatus int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.HTTPStatus)
}

// Client calls the order API with a bearer token.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// NewClient creates a Client for baseURL.
func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL:    baseURL,
		Token:      token,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

const ordersPath = "/api/customers/me/orders"

// PlaceOrder posts lines and returns the new order id.
func (c *Client) PlaceOrder(ctx context.Context, lines []api.OrderLineRequest) (int64, error) {
	var out api.PlaceOrderResponse
	if err := c.do(ctx, http.MethodPost, ordersPath, lines, &out); err != nil {
		return 0, err
	}
	return out.OrderID, nil
}

// GetOrder fetches one order.
func (c *Client) GetOrder(ctx context.Context, id int64) (api.Order, error) {
	var out api.Order
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", ordersPath, id), nil, &out)
	return out, err
}

// ListOrders fetches every order of the caller.
func (c *Client) ListOrders(ctx context.Context) ([]api.Order, error) {
	var out []api.Order
	err := c.do(ctx, http.MethodGet, ordersPath, nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(c.BaseURL, "/")+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{HTTPStatus: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var errBody struct {
			Message string `json:"message"`
		}
		if json.NewDecoder(resp.Body).Decode(&errBody) == nil && errBody.Message != "" {
			apiErr.Message = errBody.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
