package dbstore

import "context"

const createOrder = `INSERT INTO orders (customer_id) VALUES (?)`

func (q *Queries) CreateOrder(ctx context.Context, customerID int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, createOrder, customerID)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

const getOrder = `SELECT id, customer_id, created_at FROM orders WHERE id = ?`

func (q *Queries) GetOrder(ctx context.Context, id int64) (Order, error) {
	row := q.db.QueryRowContext(ctx, getOrder, id)
	var i Order
	err := row.Scan(&i.ID, &i.CustomerID, &i.CreatedAt)
	return i, err
}

const listOrdersByCustomer = `SELECT id, customer_id, created_at FROM orders
WHERE customer_id = ? ORDER BY created_at, id`

func (q *Queries) ListOrdersByCustomer(ctx context.Context, customerID int64) ([]Order, error) {
	rows, err := q.db.QueryContext(ctx, listOrdersByCustomer, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Order
	for rows.Next() {
		var i Order
		if err := rows.Scan(&i.ID, &i.CustomerID, &i.CreatedAt); err != nil {
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

const insertOrderLine = `INSERT INTO order_lines (order_id, position, product_id, name, price, image_url, quantity)
VALUES (?, ?, ?, ?, ?, ?, ?)`

type InsertOrderLineParams struct {
	OrderID   int64
	Position  int64
	ProductID int64
	Name      string
	Price     int64
	ImageUrl  string
	Quantity  int64
}

func (q *Queries) InsertOrderLine(ctx context.Context, arg InsertOrderLineParams) error {
	_, err := q.db.ExecContext(ctx, insertOrderLine,
		arg.OrderID, arg.Position, arg.ProductID, arg.Name, arg.Price, arg.ImageUrl, arg.Quantity)
	return err
}

const listOrderLines = `SELECT order_id, position, product_id, name, price, image_url, quantity
FROM order_lines WHERE order_id = ? ORDER BY position`

func (q *Queries) ListOrderLines(ctx context.Context, orderID int64) ([]OrderLine, error) {
	rows, err := q.db.QueryContext(ctx, listOrderLines, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []OrderLine
	for rows.Next() {
		var i OrderLine
		if err := rows.Scan(&i.OrderID, &i.Position, &i.ProductID, &i.Name, &i.Price, &i.ImageUrl, &i.Quantity); err != nil {
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
