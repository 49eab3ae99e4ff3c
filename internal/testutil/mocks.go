// Package testutil provides shared mock implementations of domain interfaces
// for use in tests across the codebase.
package testutil

import (
	"context"

	"shop-demo/internal/domain"
)

// === Audit Repository Mock ===

// MockAuditRepo implements domain.AuditRepository for testing.
type MockAuditRepo struct {
	InsertFn func(ctx context.Context, e *domain.AuditEntry) error
	ListFn   func(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, error)
	Entries  []*domain.AuditEntry // collected entries for assertions
}

// Insert records the entry, then calls InsertFn if set.
func (m *MockAuditRepo) Insert(ctx context.Context, e *domain.AuditEntry) error {
	if m.InsertFn != nil {
		if err := m.InsertFn(ctx, e); err != nil {
			return err
		}
	}
	m.Entries = append(m.Entries, e)
	return nil
}

// List implements the interface method for testing.
func (m *MockAuditRepo) List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}
	panic("unexpected call to MockAuditRepo.List")
}

// LastEntry returns the last collected audit entry, or nil if none.
func (m *MockAuditRepo) LastEntry() *domain.AuditEntry {
	if len(m.Entries) == 0 {
		return nil
	}
	return m.Entries[len(m.Entries)-1]
}

// HasAction returns true if any collected entry has the given action.
func (m *MockAuditRepo) HasAction(action string) bool {
	for _, e := range m.Entries {
		if e.Action == action {
			return true
		}
	}
	return false
}

var _ domain.AuditRepository = (*MockAuditRepo)(nil)

// === Customer Directory Mock ===

// MockCustomerDirectory implements domain.CustomerDirectory for testing.
type MockCustomerDirectory struct {
	FindIDByUsernameFn func(ctx context.Context, username string) (int64, error)
	CreateFn           func(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
}

// FindIDByUsername implements the interface method for testing.
func (m *MockCustomerDirectory) FindIDByUsername(ctx context.Context, username string) (int64, error) {
	if m.FindIDByUsernameFn != nil {
		return m.FindIDByUsernameFn(ctx, username)
	}
	panic("unexpected call to MockCustomerDirectory.FindIDByUsername")
}

// Create implements the interface method for testing.
func (m *MockCustomerDirectory) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	panic("unexpected call to MockCustomerDirectory.Create")
}

var _ domain.CustomerDirectory = (*MockCustomerDirectory)(nil)

// === Cart Store Mock ===

// MockCartStore implements domain.CartStore for testing.
type MockCartStore struct {
	FindFn           func(ctx context.Context, id int64) (*domain.CartEntry, error)
	AddFn            func(ctx context.Context, customerID, productID int64) (*domain.CartEntry, error)
	ListByCustomerFn func(ctx context.Context, customerID int64) ([]domain.CartEntry, error)
	DeleteFn         func(ctx context.Context, id int64) error
}

// Find implements the interface method for testing.
func (m *MockCartStore) Find(ctx context.Context, id int64) (*domain.CartEntry, error) {
	if m.FindFn != nil {
		return m.FindFn(ctx, id)
	}
	panic("unexpected call to MockCartStore.Find")
}

// Add implements the interface method for testing.
func (m *MockCartStore) Add(ctx context.Context, customerID, productID int64) (*domain.CartEntry, error) {
	if m.AddFn != nil {
		return m.AddFn(ctx, customerID, productID)
	}
	panic("unexpected call to MockCartStore.Add")
}

// ListByCustomer implements the interface method for testing.
func (m *MockCartStore) ListByCustomer(ctx context.Context, customerID int64) ([]domain.CartEntry, error) {
	if m.ListByCustomerFn != nil {
		return m.ListByCustomerFn(ctx, customerID)
	}
	panic("unexpected call to MockCartStore.ListByCustomer")
}

// Delete implements the interface method for testing.
func (m *MockCartStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	panic("unexpected call to MockCartStore.Delete")
}

var _ domain.CartStore = (*MockCartStore)(nil)

// === Product Store Mock ===

// MockProductStore implements domain.ProductStore for testing.
type MockProductStore struct {
	FindFn   func(ctx context.Context, id int64) (*domain.Product, error)
	CreateFn func(ctx context.Context, p *domain.Product) (*domain.Product, error)
	UpdateFn func(ctx context.Context, p *domain.Product) error
}

// Find implements the interface method for testing.
func (m *MockProductStore) Find(ctx context.Context, id int64) (*domain.Product, error) {
	if m.FindFn != nil {
		return m.FindFn(ctx, id)
	}
	panic("unexpected call to MockProductStore.Find")
}

// Create implements the interface method for testing.
func (m *MockProductStore) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	panic("unexpected call to MockProductStore.Create")
}

// Update implements the interface method for testing.
func (m *MockProductStore) Update(ctx context.Context, p *domain.Product) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, p)
	}
	panic("unexpected call to MockProductStore.Update")
}

var _ domain.ProductStore = (*MockProductStore)(nil)

// === Order Store Mock ===

// MockOrderStore implements domain.OrderStore for testing.
type MockOrderStore struct {
	CreateFn            func(ctx context.Context, customerID int64) (*domain.Order, error)
	AppendLineFn        func(ctx context.Context, orderID int64, line domain.OrderLine) error
	FindByIDFn          func(ctx context.Context, id int64) (*domain.Order, error)
	FindAllByCustomerFn func(ctx context.Context, customerID int64) ([]domain.Order, error)
}

// Create implements the interface method for testing.
func (m *MockOrderStore) Create(ctx context.Context, customerID int64) (*domain.Order, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, customerID)
	}
	panic("unexpected call to MockOrderStore.Create")
}

// AppendLine implements the interface method for testing.
func (m *MockOrderStore) AppendLine(ctx context.Context, orderID int64, line domain.OrderLine) error {
	if m.AppendLineFn != nil {
		return m.AppendLineFn(ctx, orderID, line)
	}
	panic("unexpected call to MockOrderStore.AppendLine")
}

// FindByID implements the interface method for testing.
func (m *MockOrderStore) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	panic("unexpected call to MockOrderStore.FindByID")
}

// FindAllByCustomer implements the interface method for testing.
func (m *MockOrderStore) FindAllByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error) {
	if m.FindAllByCustomerFn != nil {
		return m.FindAllByCustomerFn(ctx, customerID)
	}
	panic("unexpected call to MockOrderStore.FindAllByCustomer")
}

var _ domain.OrderStore = (*MockOrderStore)(nil)

// === Transaction Mocks ===

// MockStoreTx implements domain.StoreTx and counts commits and rollbacks.
type MockStoreTx struct {
	CartStore    *MockCartStore
	ProductStore *MockProductStore
	OrderStore   *MockOrderStore
	CommitFn     func() error

	Committed  bool
	RolledBack bool
}

// Carts implements the interface method for testing.
func (m *MockStoreTx) Carts() domain.CartStore { return m.CartStore }

// Products implements the interface method for testing.
func (m *MockStoreTx) Products() domain.ProductStore { return m.ProductStore }

// Orders implements the interface method for testing.
func (m *MockStoreTx) Orders() domain.OrderStore { return m.OrderStore }

// Commit implements the interface method for testing.
func (m *MockStoreTx) Commit() error {
	if m.CommitFn != nil {
		if err := m.CommitFn(); err != nil {
			return err
		}
	}
	m.Committed = true
	return nil
}

// Rollback marks the tx rolled back unless it was already committed.
func (m *MockStoreTx) Rollback() error {
	if !m.Committed {
		m.RolledBack = true
	}
	return nil
}

var _ domain.StoreTx = (*MockStoreTx)(nil)

// MockTransactor implements domain.Transactor for testing.
type MockTransactor struct {
	BeginFn func(ctx context.Context) (domain.StoreTx, error)
	Tx      *MockStoreTx
}

// Begin returns BeginFn's result, or Tx when BeginFn is nil.
func (m *MockTransactor) Begin(ctx context.Context) (domain.StoreTx, error) {
	if m.BeginFn != nil {
		return m.BeginFn(ctx)
	}
	if m.Tx != nil {
		return m.Tx, nil
	}
	panic("unexpected call to MockTransactor.Begin")
}

var _ domain.Transactor = (*MockTransactor)(nil)
