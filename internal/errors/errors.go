package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Store error codes surfaced by the record store. They follow the SQLSTATE
// values the database reports so callers can branch on them directly.
const (
	CodeUniqueViolation       = "23505"
	CodeInsufficientPrivilege = "42501"
	CodeForeignKeyViolation   = "23503"
	CodeNotNullViolation      = "23502"
	CodeSerializationFailure  = "40001"
	CodeDeadlockDetected      = "40P01"
)

// User-facing messages for store failures
const (
	MsgDuplicateName    = "A record with that name already exists"
	MsgDuplicateRecord  = "An identical record already exists"
	MsgPermissionDenied = "You do not have permission to perform this action"
	MsgGeneric          = "Something went wrong, please try again"
)

// StoreError is a failure reported by the record store, carrying a code
// and the store's own message
type StoreError struct {
	Code    string
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("store error %s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("store error %s", e.Code)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is enables errors.Is() comparison for StoreError by code
func (e *StoreError) Is(target error) bool {
	t, ok := target.(*StoreError)
	if !ok {
		return false
	}
	return t.Code == "" || e.Code == t.Code
}

// Entity Not Found Errors
var (
	ErrModelNotFound          = &NotFoundError{Entity: "model"}
	ErrAttachmentTypeNotFound = &NotFoundError{Entity: "attachment type"}
	ErrAttachmentNotFound     = &NotFoundError{Entity: "attachment"}
	ErrLoadoutNotFound        = &NotFoundError{Entity: "loadout"}
	ErrRatingNotFound         = &NotFoundError{Entity: "loadout rating"}
	ErrProfileNotFound        = &NotFoundError{Entity: "profile"}
	ErrTableNotFound          = &NotFoundError{Entity: "table"}
)

// Store Errors
var (
	ErrUniqueViolation  = &StoreError{Code: CodeUniqueViolation}
	ErrPermissionDenied = &StoreError{Code: CodeInsufficientPrivilege, Message: "permission denied"}
)

// Business Logic Errors
var (
	ErrSubmitInFlight = errors.New("a submission is already in flight")
	ErrInvalidIntent  = errors.New("invalid intent")
	ErrInvalidColumn  = errors.New("unknown column")
	ErrLikeConflict   = errors.New("like could not be applied after retries")
	ErrStaleResult    = errors.New("result superseded by a newer request")
)

// Authentication Errors
var (
	ErrMissingToken    = &AuthenticationError{Message: "authorization header required"}
	ErrInvalidToken    = &AuthenticationError{Message: "invalid or expired token"}
	ErrUserNotInCtx    = &AuthenticationError{Message: "user not found in context"}
	ErrAdminRequired   = &AuthorizationError{Message: "admin privileges required"}
	ErrJWTSecretNotSet = &ConfigurationError{Message: "JWT_SECRET is not configured"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.Is(err, &ValidationError{}) || errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.Is(err, &AuthenticationError{}) || errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.Is(err, &AuthorizationError{}) || errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.Is(err, &ConfigurationError{}) || errors.As(err, &configErr)
}

// IsStoreError checks if an error is a StoreError
func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}

// StoreCode returns the code of the StoreError in err's chain, or "" when
// err carries none
func StoreCode(err error) string {
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Code
	}
	return ""
}

// IsPermissionDenied reports whether err is a store permission failure
func IsPermissionDenied(err error) bool {
	return StoreCode(err) == CodeInsufficientPrivilege
}

// IsRetryable reports whether err is a transient store conflict worth retrying
func IsRetryable(err error) bool {
	code := StoreCode(err)
	return code == CodeSerializationFailure || code == CodeDeadlockDetected
}

// FieldError is a message bound to a form field or to a banner key
type FieldError struct {
	Field   string
	Message string
}

// MapStoreError converts a store failure to the field or banner it is shown
// under. A unique violation attaches to uniqueField, or to the "server"
// banner when the entity has no such field. Permission failures and
// anything else go to the "server" banner.
func MapStoreError(err error, uniqueField string) FieldError {
	switch StoreCode(err) {
	case CodeUniqueViolation:
		if uniqueField == "" {
			return FieldError{Field: "server", Message: MsgDuplicateRecord}
		}
		return FieldError{Field: uniqueField, Message: MsgDuplicateName}
	case CodeInsufficientPrivilege:
		return FieldError{Field: "server", Message: MsgPermissionDenied}
	default:
		return FieldError{Field: "server", Message: MsgGeneric}
	}
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewStoreError creates a StoreError wrapping the underlying driver error
func NewStoreError(code, message string, err error) error {
	return &StoreError{Code: code, Message: message, Err: err}
}
