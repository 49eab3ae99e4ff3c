package dbstore

import "context"

const createCustomer = `INSERT INTO customers (username) VALUES (?)`

func (q *Queries) CreateCustomer(ctx context.Context, username string) (int64, error) {
	result, err := q.db.ExecContext(ctx, createCustomer, username)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

const getCustomer = `SELECT id, username, created_at FROM customers WHERE id = ?`

func (q *Queries) GetCustomer(ctx context.Context, id int64) (Customer, error) {
	row := q.db.QueryRowContext(ctx, getCustomer, id)
	var i Customer
	err := row.Scan(&i.ID, &i.Username, &i.CreatedAt)
	return i, err
}

const getCustomerIDByUsername = `SELECT id FROM customers WHERE username = ?`

func (q *Queries) GetCustomerIDByUsername(ctx context.Context, username string) (int64, error) {
	row := q.db.QueryRowContext(ctx, getCustomerIDByUsername, username)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const countCustomers = `SELECT COUNT(*) FROM customers`

func (q *Queries) CountCustomers(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countCustomers)
	var count int64
	err := row.Scan(&count)
	return count, err
}
