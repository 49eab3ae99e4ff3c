// Package mapper provides conversion functions between domain and database types.
package mapper

import (
	"database/sql"
	"time"

	dbstore "shop-demo/internal/db/dbstore"
	"shop-demo/internal/domain"
)

const timeLayout = "2006-01-02 15:04:05"

func parseTime(s string) time.Time {
	t, _ := time.Parse(timeLayout, s)
	return t
}

func ptrStr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func ptrInt(ni sql.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	return &ni.Int64
}

// NullStrFromPtr converts a *string to sql.NullString.
func NullStrFromPtr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// NullIntFromPtr converts a *int64 to sql.NullInt64.
func NullIntFromPtr(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *i, Valid: true}
}

// BoolToInt converts a bool to the 0/1 integer SQLite stores.
func BoolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// CustomerFromDB converts a dbstore.Customer to a domain.Customer.
func CustomerFromDB(c dbstore.Customer) *domain.Customer {
	return &domain.Customer{ID: c.ID, Username: c.Username}
}

// ProductFromDB converts a dbstore.Product to a domain.Product.
func ProductFromDB(p dbstore.Product) *domain.Product {
	return &domain.Product{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageUrl,
		Available: p.Available != 0,
	}
}

// CartEntryFromDB converts a dbstore.CartItem to a domain.CartEntry.
func CartEntryFromDB(c dbstore.CartItem) *domain.CartEntry {
	return &domain.CartEntry{
		ID:         c.ID,
		CustomerID: c.CustomerID,
		ProductID:  c.ProductID,
		CreatedAt:  parseTime(c.CreatedAt),
	}
}

// CartEntriesFromDB converts a slice of dbstore.CartItem.
func CartEntriesFromDB(cs []dbstore.CartItem) []domain.CartEntry {
	out := make([]domain.CartEntry, len(cs))
	for i, c := range cs {
		out[i] = *CartEntryFromDB(c)
	}
	return out
}

// OrderFromDB converts an order row and its line rows to a domain.Order.
func OrderFromDB(o dbstore.Order, lines []dbstore.OrderLine) *domain.Order {
	order := &domain.Order{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		CreatedAt:  parseTime(o.CreatedAt),
		Lines:      make([]domain.OrderLine, len(lines)),
	}
	for i, l := range lines {
		order.Lines[i] = OrderLineFromDB(l)
	}
	return order
}

// OrderLineFromDB converts a dbstore.OrderLine to a domain.OrderLine.
func OrderLineFromDB(l dbstore.OrderLine) domain.OrderLine {
	return domain.OrderLine{
		Position:  int(l.Position),
		ProductID: l.ProductID,
		Name:      l.Name,
		Price:     l.Price,
		ImageURL:  l.ImageUrl,
		Quantity:  int(l.Quantity),
	}
}

// OrderLineToDBParams converts a domain.OrderLine to insert parameters.
func OrderLineToDBParams(orderID int64, l domain.OrderLine) dbstore.InsertOrderLineParams {
	return dbstore.InsertOrderLineParams{
		OrderID:   orderID,
		Position:  int64(l.Position),
		ProductID: l.ProductID,
		Name:      l.Name,
		Price:     l.Price,
		ImageUrl:  l.ImageURL,
		Quantity:  int64(l.Quantity),
	}
}

// AuditEntryFromDB converts a dbstore.AuditLog to a domain.AuditEntry.
func AuditEntryFromDB(a dbstore.AuditLog) *domain.AuditEntry {
	return &domain.AuditEntry{
		ID:            a.ID,
		PrincipalName: a.PrincipalName,
		Action:        a.Action,
		Status:        a.Status,
		ErrorKind:     ptrStr(a.ErrorKind),
		ErrorMessage:  ptrStr(a.ErrorMessage),
		OrderID:       ptrInt(a.OrderID),
		CreatedAt:     parseTime(a.CreatedAt),
	}
}

// AuditEntryToDBParams converts a domain.AuditEntry to insert parameters.
func AuditEntryToDBParams(e *domain.AuditEntry) dbstore.InsertAuditLogParams {
	return dbstore.InsertAuditLogParams{
		ID:            e.ID,
		PrincipalName: e.PrincipalName,
		Action:        e.Action,
		Status:        e.Status,
		ErrorKind:     NullStrFromPtr(e.ErrorKind),
		ErrorMessage:  NullStrFromPtr(e.ErrorMessage),
		OrderID:       NullIntFromPtr(e.OrderID),
	}
}
