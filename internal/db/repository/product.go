package repository

import (
	"context"
	"database/sql"

	dbstore "shop-demo/internal/db/dbstore"
	"shop-demo/internal/db/mapper"
	"shop-demo/internal/domain"
)

// ProductRepo implements domain.ProductStore.
type ProductRepo struct {
	q *dbstore.Queries
}

func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{q: dbstore.New(db)}
}

func (r *ProductRepo) Find(ctx context.Context, id int64) (*domain.Product, error) {
	row, err := r.q.GetProduct(ctx, id)
	if err != nil {
		return nil, mapDBError(err)
	}
	return mapper.ProductFromDB(row), nil
}

func (r *ProductRepo) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	id, err := r.q.CreateProduct(ctx, dbstore.CreateProductParams{
		Name:      p.Name,
		Price:     p.Price,
		ImageUrl:  p.ImageURL,
		Available: mapper.BoolToInt(p.Available),
	})
	if err != nil {
		return nil, mapDBError(err)
	}
	return r.Find(ctx, id)
}

func (r *ProductRepo) Update(ctx context.Context, p *domain.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	affected, err := r.q.UpdateProduct(ctx, dbstore.UpdateProductParams{
		Name:      p.Name,
		Price:     p.Price,
		ImageUrl:  p.ImageURL,
		Available: mapper.BoolToInt(p.Available),
		ID:        p.ID,
	})
	return notFoundIfNone(affected, err, "product %d not found", p.ID)
}

// Delete removes a product. Orders keep their snapshots.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	affected, err := r.q.DeleteProduct(ctx, id)
	return notFoundIfNone(affected, err, "product %d not found", id)
}

var _ domain.ProductStore = (*ProductRepo)(nil)
