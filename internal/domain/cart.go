package domain

import "time"

// CartEntry is one pending product selection owned by a customer.
type CartEntry struct {
	ID         int64
	CustomerID int64
	ProductID  int64
	CreatedAt  time.Time
}
