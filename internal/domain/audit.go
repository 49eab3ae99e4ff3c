package domain

import "time"

// Audit statuses.
const (
	AuditAllowed = "ALLOWED"
	AuditDenied  = "DENIED"
	AuditError   = "ERROR"
)

// Audit actions.
const (
	ActionPlaceOrder = "PLACE_ORDER"
	ActionGetOrder   = "GET_ORDER"
	ActionListOrders = "LIST_ORDERS"
)

// AuditEntry represents a single audit log record.
type AuditEntry struct {
	ID            string
	PrincipalName string
	Action        string
	Status        string // "ALLOWED", "DENIED", "ERROR"
	ErrorKind     *string
	ErrorMessage  *string
	OrderID       *int64
	CreatedAt     time.Time
}
