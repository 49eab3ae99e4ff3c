package order

import (
	"context"
	"errors"
	"log/slog"

	"shop-demo/internal/domain"
)

// auditor writes audit entries once the store transaction has ended. Audit
// failures are logged and never change the outcome of the operation.
type auditor struct {
	repo   domain.AuditRepository
	logger *slog.Logger
}

func (a auditor) allowed(ctx context.Context, principal, action string, orderID *int64) {
	a.insert(ctx, &domain.AuditEntry{
		PrincipalName: principal,
		Action:        action,
		Status:        domain.AuditAllowed,
		OrderID:       orderID,
	})
}

func (a auditor) failed(ctx context.Context, principal, action string, orderID *int64, err error) {
	status := domain.AuditError
	var denied *domain.AccessDeniedError
	if errors.As(err, &denied) || errors.Is(err, domain.ErrOrderNotOwned) || errors.Is(err, domain.ErrUnknownCustomer) {
		status = domain.AuditDenied
	}

	msg := err.Error()
	entry := &domain.AuditEntry{
		PrincipalName: principal,
		Action:        action,
		Status:        status,
		ErrorMessage:  &msg,
		OrderID:       orderID,
	}
	if kind := domain.KindOf(err); kind != nil {
		k := kind.Error()
		entry.ErrorKind = &k
	}
	a.insert(ctx, entry)
}

func (a auditor) insert(ctx context.Context, e *domain.AuditEntry) {
	if a.repo == nil {
		return
	}
	if err := a.repo.Insert(ctx, e); err != nil {
		a.logger.WarnContext(ctx, "audit insert failed", "action", e.Action, "error", err)
	}
}
