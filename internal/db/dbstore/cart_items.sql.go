package dbstore

import "context"

const addCartItem = `INSERT INTO cart_items (customer_id, product_id) VALUES (?, ?)`

type AddCartItemParams struct {
	CustomerID int64
	ProductID  int64
}

func (q *Queries) AddCartItem(ctx context.Context, arg AddCartItemParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, addCartItem, arg.CustomerID, arg.ProductID)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

const getCartItem = `SELECT id, customer_id, product_id, created_at FROM cart_items WHERE id = ?`

func (q *Queries) GetCartItem(ctx context.Context, id int64) (CartItem, error) {
	row := q.db.QueryRowContext(ctx, getCartItem, id)
	var i CartItem
	err := row.Scan(&i.ID, &i.CustomerID, &i.ProductID, &i.CreatedAt)
	return i, err
}

const listCartItemsByCustomer = `SELECT id, customer_id, product_id, created_at FROM cart_items
WHERE customer_id = ? ORDER BY id`

func (q *Queries) ListCartItemsByCustomer(ctx context.Context, customerID int64) ([]CartItem, error) {
	rows, err := q.db.QueryContext(ctx, listCartItemsByCustomer, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CartItem
	for rows.Next() {
		var i CartItem
		if err := rows.Scan(&i.ID, &i.CustomerID, &i.ProductID, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteCartItem = `DELETE FROM cart_items WHERE id = ?`

func (q *Queries) DeleteCartItem(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteCartItem, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
