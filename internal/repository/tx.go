package repository

import (
	apperrors "loadout-backend/internal/errors"

	"gorm.io/gorm"
)

const minTxRetries = 3

// WithTxRetry runs fn in a transaction, retrying transient conflicts
// (serialization failures, deadlocks, busy databases) up to retries times.
func WithTxRetry(db *gorm.DB, retries int, entity string, fn func(tx *gorm.DB) error) error {
	return retryLoop(retries, func() error {
		return translateError(entity, db.Transaction(fn))
	})
}

func retryLoop(retries int, attempt func() error) error {
	if retries < minTxRetries {
		retries = minTxRetries
	}

	var err error
	for i := 0; i < retries; i++ {
		err = attempt()
		if err == nil || !apperrors.IsRetryable(err) {
			return err
		}
	}

	return err
}
