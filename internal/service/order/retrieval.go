package order

import (
	"context"
	"fmt"
	"log/slog"

	"shop-demo/internal/domain"
)

// RetrievalService returns orders to the customer that owns them.
type RetrievalService struct {
	customers domain.CustomerDirectory
	orders    domain.OrderStore
	audit     auditor
	logger    *slog.Logger
}

// NewRetrievalService creates a RetrievalService. orders may be backed by the
// read pool.
func NewRetrievalService(
	customers domain.CustomerDirectory,
	orders domain.OrderStore,
	audit domain.AuditRepository,
	logger *slog.Logger,
) *RetrievalService {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "order-retrieval")
	return &RetrievalService{
		customers: customers,
		orders:    orders,
		audit:     auditor{repo: audit, logger: logger},
		logger:    logger,
	}
}

// GetOrder returns the order with the given id. A missing order and an order
// owned by someone else fail with different kinds but the same message.
func (s *RetrievalService) GetOrder(ctx context.Context, principal domain.Principal, orderID int64) (domain.OrderView, error) {
	view, err := s.getOrder(ctx, principal, orderID)
	if err != nil {
		s.audit.failed(ctx, principal.Username, domain.ActionGetOrder, &orderID, err)
		return domain.OrderView{}, err
	}
	return view, nil
}

func (s *RetrievalService) getOrder(ctx context.Context, principal domain.Principal, orderID int64) (domain.OrderView, error) {
	customerID, err := lookupCustomer(ctx, s.customers, principal)
	if err != nil {
		return domain.OrderView{}, err
	}

	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.OrderView{}, domain.ErrNotFoundKind(domain.ErrUnknownOrder, "order %d not found", orderID)
		}
		return domain.OrderView{}, fmt.Errorf("find order %d: %w", orderID, err)
	}
	if o.CustomerID != customerID {
		s.logger.WarnContext(ctx, "order access denied", "principal", principal.Username, "order_id", orderID)
		return domain.OrderView{}, domain.ErrNotFoundKind(domain.ErrOrderNotOwned, "order %d not found", orderID)
	}
	return domain.NewOrderView(o), nil
}

// ListOrders returns every order of the principal's customer, oldest first.
func (s *RetrievalService) ListOrders(ctx context.Context, principal domain.Principal) ([]domain.OrderView, error) {
	customerID, err := lookupCustomer(ctx, s.customers, principal)
	if err != nil {
		s.audit.failed(ctx, principal.Username, domain.ActionListOrders, nil, err)
		return nil, err
	}

	orders, err := s.orders.FindAllByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("list orders of customer %d: %w", customerID, err)
	}

	views := make([]domain.OrderView, len(orders))
	for i := range orders {
		views[i] = domain.NewOrderView(&orders[i])
	}
	return views, nil
}
