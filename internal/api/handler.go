// Package api provides the HTTP handlers for customer orders.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"shop-demo/internal/domain"
	"shop-demo/internal/middleware"
)

const maxBodyBytes = 1 << 20

// OrderPlacer places orders.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, principal domain.Principal, reqs []domain.OrderLineRequest) (int64, error)
}

// OrderReader reads orders back for their owner.
type OrderReader interface {
	GetOrder(ctx context.Context, principal domain.Principal, orderID int64) (domain.OrderView, error)
	ListOrders(ctx context.Context, principal domain.Principal) ([]domain.OrderView, error)
}

// Handler serves the /api/customers/me/orders routes.
type Handler struct {
	placer OrderPlacer
	reader OrderReader
	logger *slog.Logger
}

// NewHandler creates a new Handler.
func NewHandler(placer OrderPlacer, reader OrderReader, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{placer: placer, reader: reader, logger: logger}
}

// PlaceOrder handles POST /api/customers/me/orders.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request, p domain.Principal) {
	var body []OrderLineRequest
	if err := decodeJSON(w, r, &body); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.placer.PlaceOrder(r.Context(), p, orderLineRequestsToDomain(body))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/customers/me/orders/%d", id))
	writeJSON(w, http.StatusCreated, PlaceOrderResponse{OrderID: id})
}

// GetOrder handles GET /api/customers/me/orders/{orderId}.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request, p domain.Principal) {
	id, err := domain.ParseOrderID(chi.URLParam(r, "orderId"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	view, err := h.reader.GetOrder(r.Context(), p, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orderToAPI(view))
}

// ListOrders handles GET /api/customers/me/orders.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request, p domain.Principal) {
	views, err := h.reader.ListOrders(r.Context(), p)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	out := make([]Order, len(views))
	for i, v := range views {
		out[i] = orderToAPI(v)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if httpStatusFromDomainError(err) == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed",
			"request_id", middleware.RequestIDFromContext(r.Context()),
			"path", r.URL.Path,
			"error", err)
	}
	writeDomainError(w, err)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
