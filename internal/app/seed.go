package app

import (
	"context"
	"database/sql"
	"fmt"

	"shop-demo/internal/db/repository"
	"shop-demo/internal/domain"
)

// DemoCustomer is the username seeded by seedDemo.
const DemoCustomer = "yaho"

// seedDemo creates the demo customer with chicken and beer in the cart.
// Idempotent: it does nothing once any customer exists.
func seedDemo(ctx context.Context, writeDB *sql.DB) error {
	customers := repository.NewCustomerRepo(writeDB)
	n, err := customers.Count(ctx)
	if err != nil {
		return fmt.Errorf("count customers: %w", err)
	}
	if n > 0 {
		return nil
	}

	yaho, err := customers.Create(ctx, &domain.Customer{Username: DemoCustomer})
	if err != nil {
		return fmt.Errorf("create %s: %w", DemoCustomer, err)
	}

	products := repository.NewProductRepo(writeDB)
	carts := repository.NewCartRepo(writeDB)
	for _, p := range []domain.Product{
		{Name: "chicken", Price: 10000, ImageURL: "https://images.example.com/chicken.jpg", Available: true},
		{Name: "beer", Price: 20000, ImageURL: "https://images.example.com/beer.jpg", Available: true},
	} {
		created, err := products.Create(ctx, &p)
		if err != nil {
			return fmt.Errorf("create product %s: %w", p.Name, err)
		}
		if _, err := carts.Add(ctx, yaho.ID, created.ID); err != nil {
			return fmt.Errorf("add %s to cart: %w", p.Name, err)
		}
	}
	return nil
}
