// internal/service/tx.go
package service

import (
	"context"
	"errors"
	"fmt"

	"go_golf_stat_keep/internal/middleware"
	"go_golf_stat_keep/internal/model"

	"gorm.io/gorm"
)

// runInTx runs fn in one transaction. Domain errors come back unchanged; any
// other failure is reported as model.ErrTransactionFailure.
func runInTx(ctx context.Context, db *gorm.DB, op string, fn func(tx *gorm.DB) error) error {
	err := db.WithContext(ctx).Transaction(fn)
	if err == nil || isDomainError(err) {
		return err
	}
	middleware.GetLogger(ctx).Error("Transaction failed", "op", op, "error", err)
	return fmt.Errorf("%s: %w: %w", op, model.ErrTransactionFailure, err)
}

// internalError is used for failed reads outside a transaction.
func internalError(ctx context.Context, op string, err error) error {
	if isDomainError(err) {
		return err
	}
	middleware.GetLogger(ctx).Error("Unexpected error", "op", op, "error", err)
	return fmt.Errorf("%s: %w: %w", op, model.ErrInternalServer, err)
}

func isDomainError(err error) bool {
	return errors.Is(err, model.ErrInvalidInput) ||
		errors.Is(err, model.ErrNotFound) ||
		errors.Is(err, model.ErrConstraintViolation) ||
		errors.Is(err, model.ErrForbidden) ||
		errors.Is(err, model.ErrUnauthorized) ||
		errors.Is(err, model.ErrTransactionFailure)
}
