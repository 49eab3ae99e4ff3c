package repository

import (
	"context"
	"database/sql"

	dbstore "shop-demo/internal/db/dbstore"
	"shop-demo/internal/db/mapper"
	"shop-demo/internal/domain"
)

// CustomerRepo implements domain.CustomerDirectory.
type CustomerRepo struct {
	q *dbstore.Queries
}

func NewCustomerRepo(db *sql.DB) *CustomerRepo {
	return &CustomerRepo{q: dbstore.New(db)}
}

func (r *CustomerRepo) FindIDByUsername(ctx context.Context, username string) (int64, error) {
	id, err := r.q.GetCustomerIDByUsername(ctx, username)
	if err != nil {
		return 0, mapDBError(err)
	}
	return id, nil
}

func (r *CustomerRepo) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	if c.Username == "" {
		return nil, domain.ErrValidation("username is required")
	}
	id, err := r.q.CreateCustomer(ctx, c.Username)
	if err != nil {
		return nil, mapDBError(err)
	}
	row, err := r.q.GetCustomer(ctx, id)
	if err != nil {
		return nil, mapDBError(err)
	}
	return mapper.CustomerFromDB(row), nil
}

// Count returns the number of customers.
func (r *CustomerRepo) Count(ctx context.Context) (int64, error) {
	return r.q.CountCustomers(ctx)
}

var _ domain.CustomerDirectory = (*CustomerRepo)(nil)
