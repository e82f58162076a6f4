package utils

import "errors"

var (
	ErrDatabaseError      = errors.New("database error")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrAccountInactive    = errors.New("account is deactivated")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidGSTNumber   = errors.New("invalid GST number format")
	ErrTemplateNotFound   = errors.New("no business template configured")
	ErrBillNotFound       = errors.New("bill not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrSelfDelete         = errors.New("admins cannot delete their own account")
	ErrUnsupportedFile    = errors.New("unsupported file type")
)
