package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	dbstore "shop-demo/internal/db/dbstore"
	"shop-demo/internal/domain"
)

// TxManager implements domain.Transactor on the write pool.
type TxManager struct {
	db *sql.DB
	q  *dbstore.Queries
}

func NewTxManager(db *sql.DB) *TxManager {
	return &TxManager{db: db, q: dbstore.New(db)}
}

// Begin starts a transaction. With the write pool's _txlock=immediate the
// write lock is taken here, so concurrent placements run one after another.
func (m *TxManager) Begin(ctx context.Context) (domain.StoreTx, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	qtx := m.q.WithTx(tx)
	return &storeTx{
		tx:       tx,
		carts:    &CartRepo{q: qtx},
		products: &ProductRepo{q: qtx},
		orders:   &OrderRepo{q: qtx},
	}, nil
}

type storeTx struct {
	tx       *sql.Tx
	carts    *CartRepo
	products *ProductRepo
	orders   *OrderRepo
}

func (s *storeTx) Carts() domain.CartStore       { return s.carts }
func (s *storeTx) Products() domain.ProductStore { return s.products }
func (s *storeTx) Orders() domain.OrderStore     { return s.orders }

func (s *storeTx) Commit() error {
	if err := s.tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (s *storeTx) Rollback() error {
	if err := s.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rollback tx: %w", err)
	}
	return nil
}

var _ domain.Transactor = (*TxManager)(nil)
