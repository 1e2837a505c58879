package apperrors

import (
	"net/http"
)

// Predefined errors for conditions shared across modules. Module-specific
// messages are built with the factories in errors.go.

var ErrInvalidCredentials = New(
	CodeUnauthorized,
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeUnauthorized,
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeConflict,
	"Email already in use",
	http.StatusConflict,
)

var ErrUserSuspended = New(
	CodeForbidden,
	"Your account has been suspended",
	http.StatusForbidden,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrFileTooLarge = New(
	CodeValidationError,
	"File size exceeds the allowed limit",
	http.StatusBadRequest,
)

var ErrInvalidFileType = New(
	CodeValidationError,
	"The provided file type is not allowed",
	http.StatusBadRequest,
)

var ErrInsufficientBalance = New(
	CodeValidationError,
	"Insufficient balance for this operation",
	http.StatusBadRequest,
)
