package repository

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	internaldb "shop-demo/internal/db"
	"shop-demo/internal/domain"
)

type fixture struct {
	db        *sql.DB
	customers *CustomerRepo
	products  *ProductRepo
	carts     *CartRepo
	orders    *OrderRepo
	tx        *TxManager
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()
	writeDB, _ := internaldb.OpenTestSQLite(t)
	return &fixture{
		db:        writeDB,
		customers: NewCustomerRepo(writeDB),
		products:  NewProductRepo(writeDB),
		carts:     NewCartRepo(writeDB),
		orders:    NewOrderRepo(writeDB),
		tx:        NewTxManager(writeDB),
	}
}

func (f *fixture) customer(t *testing.T, username string) int64 {
	t.Helper()
	c, err := f.customers.Create(context.Background(), &domain.Customer{Username: username})
	require.NoError(t, err)
	return c.ID
}

func (f *fixture) product(t *testing.T, name string, price int64) *domain.Product {
	t.Helper()
	p, err := f.products.Create(context.Background(), &domain.Product{
		Name: name, Price: price, ImageURL: "http://example.com/" + name + ".jpg", Available: true,
	})
	require.NoError(t, err)
	return p
}
