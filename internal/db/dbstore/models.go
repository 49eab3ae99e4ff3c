package dbstore

import "database/sql"

type Customer struct {
	ID        int64
	Username  string
	CreatedAt string
}

type Product struct {
	ID        int64
	Name      string
	Price     int64
	ImageUrl  string
	Available int64
	CreatedAt string
}

type CartItem struct {
	ID         int64
	CustomerID int64
	ProductID  int64
	CreatedAt  string
}

type Order struct {
	ID         int64
	CustomerID int64
	CreatedAt  string
}

type OrderLine struct {
	OrderID   int64
	Position  int64
	ProductID int64
	Name      string
	Price     int64
	ImageUrl  string
	Quantity  int64
}

type AuditLog struct {
	ID            string
	PrincipalName string
	Action        string
	Status        string
	ErrorKind     sql.NullString
	ErrorMessage  sql.NullString
	OrderID       sql.NullInt64
	CreatedAt     string
}
