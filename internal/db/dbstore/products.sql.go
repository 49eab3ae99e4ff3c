package dbstore

import "context"

const createProduct = `INSERT INTO products (name, price, image_url, available) VALUES (?, ?, ?, ?)`

type CreateProductParams struct {
	Name      string
	Price     int64
	ImageUrl  string
	Available int64
}

func (q *Queries) CreateProduct(ctx context.Context, arg CreateProductParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, createProduct, arg.Name, arg.Price, arg.ImageUrl, arg.Available)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

const getProduct = `SELECT id, name, price, image_url, available, created_at FROM products WHERE id = ?`

func (q *Queries) GetProduct(ctx context.Context, id int64) (Product, error) {
	row := q.db.QueryRowContext(ctx, getProduct, id)
	var i Product
	err := row.Scan(&i.ID, &i.Name, &i.Price, &i.ImageUrl, &i.Available, &i.CreatedAt)
	return i, err
}

const updateProduct = `UPDATE products SET name = ?, price = ?, image_url = ?, available = ? WHERE id = ?`

type UpdateProductParams struct {
	Name      string
	Price     int64
	ImageUrl  string
	Available int64
	ID        int64
}

func (q *Queries) UpdateProduct(ctx context.Context, arg UpdateProductParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateProduct, arg.Name, arg.Price, arg.ImageUrl, arg.Available, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteProduct = `DELETE FROM products WHERE id = ?`

func (q *Queries) DeleteProduct(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteProduct, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
