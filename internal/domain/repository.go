package domain

import "context"

// Lookups return a *NotFoundError (without a kind) when the row does not
// exist; services translate it into the matching error kind.

// CustomerDirectory resolves usernames to customer ids.
type CustomerDirectory interface {
	FindIDByUsername(ctx context.Context, username string) (int64, error)
	Create(ctx context.Context, c *Customer) (*Customer, error)
}

// CartStore provides access to cart entries.
type CartStore interface {
	Find(ctx context.Context, id int64) (*CartEntry, error)
	Add(ctx context.Context, customerID, productID int64) (*CartEntry, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]CartEntry, error)
	// Delete removes the entry; it returns a *NotFoundError when no row was deleted.
	Delete(ctx context.Context, id int64) error
}

// ProductStore provides access to product records.
type ProductStore interface {
	Find(ctx context.Context, id int64) (*Product, error)
	Create(ctx context.Context, p *Product) (*Product, error)
	Update(ctx context.Context, p *Product) error
}

// OrderStore provides append-only access to orders and their lines.
type OrderStore interface {
	Create(ctx context.Context, customerID int64) (*Order, error)
	AppendLine(ctx context.Context, orderID int64, line OrderLine) error
	FindByID(ctx context.Context, id int64) (*Order, error)
	FindAllByCustomer(ctx context.Context, customerID int64) ([]Order, error)
}

// StoreTx is a scoped transaction. Stores obtained from it share the
// transaction. Rollback after Commit is a no-op.
type StoreTx interface {
	Carts() CartStore
	Products() ProductStore
	Orders() OrderStore
	Commit() error
	Rollback() error
}

// Transactor begins scoped transactions.
type Transactor interface {
	Begin(ctx context.Context) (StoreTx, error)
}

// AuditFilter holds filter parameters for querying audit logs.
type AuditFilter struct {
	PrincipalName *string
	Action        *string
	Status        *string
	Limit         int
}

// AuditRepository provides operations for audit log entries.
type AuditRepository interface {
	Insert(ctx context.Context, e *AuditEntry) error
	List(ctx context.Context, filter AuditFilter) ([]AuditEntry, error)
}
