package dbstore

import (
	"context"
	"database/sql"
)

const insertAuditLog = `INSERT INTO audit_log (id, principal_name, action, status, error_kind, error_message, order_id)
VALUES (?, ?, ?, ?, ?, ?, ?)`

type InsertAuditLogParams struct {
	ID            string
	PrincipalName string
	Action        string
	Status        string
	ErrorKind     sql.NullString
	ErrorMessage  sql.NullString
	OrderID       sql.NullInt64
}

func (q *Queries) InsertAuditLog(ctx context.Context, arg InsertAuditLogParams) error {
	_, err := q.db.ExecContext(ctx, insertAuditLog,
		arg.ID, arg.PrincipalName, arg.Action, arg.Status, arg.ErrorKind, arg.ErrorMessage, arg.OrderID)
	return err
}

const listAuditLogs = `SELECT id, principal_name, action, status, error_kind, error_message, order_id, created_at
FROM audit_log
WHERE (? IS NULL OR principal_name = ?)
  AND (? IS NULL OR action = ?)
  AND (? IS NULL OR status = ?)
ORDER BY created_at DESC, id DESC
LIMIT ?`

type ListAuditLogsParams struct {
	PrincipalName sql.NullString
	Action        sql.NullString
	Status        sql.NullString
	Limit         int64
}

func (q *Queries) ListAuditLogs(ctx context.Context, arg ListAuditLogsParams) ([]AuditLog, error) {
	rows, err := q.db.QueryContext(ctx, listAuditLogs,
		arg.PrincipalName, arg.PrincipalName,
		arg.Action, arg.Action,
		arg.Status, arg.Status,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []AuditLog
	for rows.Next() {
		var i AuditLog
		if err := rows.Scan(&i.ID, &i.PrincipalName, &i.Action, &i.Status,
			&i.ErrorKind, &i.ErrorMessage, &i.OrderID, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
