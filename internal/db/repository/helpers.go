// Package repository implements domain repository interfaces using SQLite.
package repository

import (
	"database/sql"
	"errors"
	"strings"

	"shop-demo/internal/domain"
)

func mapDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.NotFoundError{Message: "resource not found"}
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return &domain.ConflictError{Message: "resource already exists"}
	}
	return err
}

// notFoundIfNone turns a zero rows-affected result into a NotFoundError.
func notFoundIfNone(affected int64, err error, format string, args ...interface{}) error {
	if err != nil {
		return mapDBError(err)
	}
	if affected == 0 {
		return domain.ErrNotFound(format, args...)
	}
	return nil
}
