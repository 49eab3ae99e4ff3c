// Package order implements order placement and retrieval for authenticated
// customers.
package order

import (
	"context"
	"fmt"
	"log/slog"

	"shop-demo/internal/domain"
)

// PlacementService converts cart entries into an immutable order.
type PlacementService struct {
	customers domain.CustomerDirectory
	tx        domain.Transactor
	audit     auditor
	logger    *slog.Logger
}

// NewPlacementService creates a PlacementService.
func NewPlacementService(
	customers domain.CustomerDirectory,
	tx domain.Transactor,
	audit domain.AuditRepository,
	logger *slog.Logger,
) *PlacementService {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "order-placement")
	return &PlacementService{
		customers: customers,
		tx:        tx,
		audit:     auditor{repo: audit, logger: logger},
		logger:    logger,
	}
}

// PlaceOrder consumes the requested cart entries of the principal's customer
// and records them as one order. Either the whole order is persisted and every
// entry removed, or nothing changes. Failures are never retried.
func (s *PlacementService) PlaceOrder(ctx context.Context, principal domain.Principal, reqs []domain.OrderLineRequest) (int64, error) {
	orderID, err := s.place(ctx, principal, reqs)
	if err != nil {
		s.audit.failed(ctx, principal.Username, domain.ActionPlaceOrder, nil, err)
		if domain.KindOf(err) == nil {
			s.logger.ErrorContext(ctx, "place order failed", "principal", principal.Username, "error", err)
		}
		return 0, err
	}

	s.audit.allowed(ctx, principal.Username, domain.ActionPlaceOrder, &orderID)
	s.logger.InfoContext(ctx, "order placed",
		"principal", principal.Username, "order_id", orderID, "lines", len(reqs))
	return orderID, nil
}

func (s *PlacementService) place(ctx context.Context, principal domain.Principal, reqs []domain.OrderLineRequest) (int64, error) {
	if len(reqs) == 0 {
		return 0, domain.ErrValidation("an order needs at least one line")
	}
	for _, r := range reqs {
		if err := r.Validate(); err != nil {
			return 0, err
		}
	}

	customerID, err := lookupCustomer(ctx, s.customers, principal)
	if err != nil {
		return 0, err
	}

	tx, err := s.tx.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() //nolint:errcheck

	order, err := tx.Orders().Create(ctx, customerID)
	if err != nil {
		return 0, fmt.Errorf("create order: %w", err)
	}

	for i, r := range reqs {
		if err := consume(ctx, tx, customerID, order.ID, i, r); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return order.ID, nil
}

// consume moves one cart entry into the order as the line at position.
func consume(ctx context.Context, tx domain.StoreTx, customerID, orderID int64, position int, r domain.OrderLineRequest) error {
	entry, err := tx.Carts().Find(ctx, r.CartEntryID)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.ErrNotFoundKind(domain.ErrUnknownCartEntry, "cart entry %d not found", r.CartEntryID)
		}
		return fmt.Errorf("find cart entry %d: %w", r.CartEntryID, err)
	}
	if entry.CustomerID != customerID {
		return domain.ErrAccessDenied(domain.ErrCartEntryNotOwned, "cart entry %d does not belong to the caller", r.CartEntryID)
	}

	product, err := tx.Products().Find(ctx, entry.ProductID)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.ErrNotFoundKind(domain.ErrUnknownProduct, "product %d not found", entry.ProductID)
		}
		return fmt.Errorf("find product %d: %w", entry.ProductID, err)
	}
	if !product.Available {
		return domain.ErrNotFoundKind(domain.ErrUnknownProduct, "product %d is not available", entry.ProductID)
	}

	if err := tx.Orders().AppendLine(ctx, orderID, domain.SnapshotLine(position, product, r.Quantity)); err != nil {
		return err
	}

	if err := tx.Carts().Delete(ctx, entry.ID); err != nil {
		if domain.IsNotFound(err) {
			return domain.ErrNotFoundKind(domain.ErrUnknownCartEntry, "cart entry %d was already consumed", entry.ID)
		}
		return fmt.Errorf("delete cart entry %d: %w", entry.ID, err)
	}
	return nil
}

func lookupCustomer(ctx context.Context, customers domain.CustomerDirectory, principal domain.Principal) (int64, error) {
	id, err := customers.FindIDByUsername(ctx, principal.Username)
	if err != nil {
		if domain.IsNotFound(err) {
			return 0, domain.ErrNotFoundKind(domain.ErrUnknownCustomer, "no customer for principal %q", principal.Username)
		}
		return 0, fmt.Errorf("find customer %q: %w", principal.Username, err)
	}
	return id, nil
}
