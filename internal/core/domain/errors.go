package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInternalServer     = errors.New("internal server error")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// UserErrors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrAdminExists       = errors.New("admin account already exists")
	ErrNothingToUpdate   = errors.New("nothing to update")
)

// InventoryErrors
var (
	ErrItemNotFound      = errors.New("item not found")
	ErrInsufficientStock = errors.New("not enough items in stock")
	ErrOrderNotFound     = errors.New("order not found")
	ErrReturnNotFound    = errors.New("return not found")
	ErrVendorNotFound    = errors.New("vendor not found")
	ErrLogNotFound       = errors.New("log not found")
)
