package repository

import (
	"context"
	"database/sql"

	dbstore "shop-demo/internal/db/dbstore"
	"shop-demo/internal/db/mapper"
	"shop-demo/internal/domain"
)

const defaultAuditLimit = 100

type AuditRepo struct {
	q *dbstore.Queries
}

func NewAuditRepo(db *sql.DB) *AuditRepo {
	return &AuditRepo{q: dbstore.New(db)}
}

func (r *AuditRepo) Insert(ctx context.Context, e *domain.AuditEntry) error {
	if e.ID == "" {
		e.ID = domain.NewID()
	}
	return r.q.InsertAuditLog(ctx, mapper.AuditEntryToDBParams(e))
}

func (r *AuditRepo) List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	rows, err := r.q.ListAuditLogs(ctx, dbstore.ListAuditLogsParams{
		PrincipalName: mapper.NullStrFromPtr(filter.PrincipalName),
		Action:        mapper.NullStrFromPtr(filter.Action),
		Status:        mapper.NullStrFromPtr(filter.Status),
		Limit:         int64(limit),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]domain.AuditEntry, len(rows))
	for i, row := range rows {
		entries[i] = *mapper.AuditEntryFromDB(row)
	}
	return entries, nil
}

var _ domain.AuditRepository = (*AuditRepo)(nil)
