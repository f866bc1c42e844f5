package repository

import (
	"errors"
	"fmt"

	apperrors "loadout-backend/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// translateError maps driver and gorm failures onto the application error
// taxonomy, preserving SQLSTATE codes reported by the store
func translateError(entity string, err error) error {
	if err == nil {
		return nil
	}

	if apperrors.IsStoreError(err) || apperrors.IsNotFound(err) || apperrors.IsValidation(err) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewNotFoundError(entity)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return apperrors.NewStoreError(pgErr.Code, pgErr.Message, err)
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch {
		case sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique || sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey:
			return apperrors.NewStoreError(apperrors.CodeUniqueViolation, sqliteErr.Error(), err)
		case sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey:
			return apperrors.NewStoreError(apperrors.CodeForeignKeyViolation, sqliteErr.Error(), err)
		case sqliteErr.ExtendedCode == sqlite3.ErrConstraintNotNull:
			return apperrors.NewStoreError(apperrors.CodeNotNullViolation, sqliteErr.Error(), err)
		case sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked:
			return apperrors.NewStoreError(apperrors.CodeSerializationFailure, sqliteErr.Error(), err)
		}
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.NewStoreError(apperrors.CodeUniqueViolation, fmt.Sprintf("duplicate %s", entity), err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperrors.NewStoreError(apperrors.CodeForeignKeyViolation, fmt.Sprintf("%s references a missing row", entity), err)
	}

	return err
}

func permissionDenied(entity string) error {
	return apperrors.NewStoreError(apperrors.CodeInsufficientPrivilege,
		fmt.Sprintf("permission denied for %s", entity), nil)
}
