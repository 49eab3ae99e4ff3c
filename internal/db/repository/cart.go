package repository

import (
	"context"
	"database/sql"

	dbstore "shop-demo/internal/db/dbstore"
	"shop-demo/internal/db/mapper"
	"shop-demo/internal/domain"
)

// CartRepo implements domain.CartStore.
type CartRepo struct {
	q *dbstore.Queries
}

func NewCartRepo(db *sql.DB) *CartRepo {
	return &CartRepo{q: dbstore.New(db)}
}

func (r *CartRepo) Find(ctx context.Context, id int64) (*domain.CartEntry, error) {
	row, err := r.q.GetCartItem(ctx, id)
	if err != nil {
		return nil, mapDBError(err)
	}
	return mapper.CartEntryFromDB(row), nil
}

func (r *CartRepo) Add(ctx context.Context, customerID, productID int64) (*domain.CartEntry, error) {
	id, err := r.q.AddCartItem(ctx, dbstore.AddCartItemParams{
		CustomerID: customerID,
		ProductID:  productID,
	})
	if err != nil {
		return nil, mapDBError(err)
	}
	return r.Find(ctx, id)
}

func (r *CartRepo) ListByCustomer(ctx context.Context, customerID int64) ([]domain.CartEntry, error) {
	rows, err := r.q.ListCartItemsByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return mapper.CartEntriesFromDB(rows), nil
}

func (r *CartRepo) Delete(ctx context.Context, id int64) error {
	affected, err := r.q.DeleteCartItem(ctx, id)
	return notFoundIfNone(affected, err, "cart entry %d not found", id)
}

var _ domain.CartStore = (*CartRepo)(nil)
