package repository

import (
	"context"
	"database/sql"
	"fmt"

	dbstore "shop-demo/internal/db/dbstore"
	"shop-demo/internal/db/mapper"
	"shop-demo/internal/domain"
)

// OrderRepo implements domain.OrderStore. There is no update or delete.
type OrderRepo struct {
	q *dbstore.Queries
}

func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{q: dbstore.New(db)}
}

func (r *OrderRepo) Create(ctx context.Context, customerID int64) (*domain.Order, error) {
	id, err := r.q.CreateOrder(ctx, customerID)
	if err != nil {
		return nil, mapDBError(err)
	}
	row, err := r.q.GetOrder(ctx, id)
	if err != nil {
		return nil, mapDBError(err)
	}
	return mapper.OrderFromDB(row, nil), nil
}

func (r *OrderRepo) AppendLine(ctx context.Context, orderID int64, line domain.OrderLine) error {
	if err := r.q.InsertOrderLine(ctx, mapper.OrderLineToDBParams(orderID, line)); err != nil {
		return fmt.Errorf("insert order line %d: %w", line.Position, mapDBError(err))
	}
	return nil
}

func (r *OrderRepo) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	row, err := r.q.GetOrder(ctx, id)
	if err != nil {
		return nil, mapDBError(err)
	}
	lines, err := r.q.ListOrderLines(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list lines of order %d: %w", id, err)
	}
	return mapper.OrderFromDB(row, lines), nil
}

func (r *OrderRepo) FindAllByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error) {
	rows, err := r.q.ListOrdersByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		lines, err := r.q.ListOrderLines(ctx, row.ID)
		if err != nil {
			return nil, fmt.Errorf("list lines of order %d: %w", row.ID, err)
		}
		orders = append(orders, *mapper.OrderFromDB(row, lines))
	}
	return orders, nil
}

var _ domain.OrderStore = (*OrderRepo)(nil)
