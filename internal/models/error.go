package models

import "errors"

var (
	ErrValidation        = errors.New("missing or invalid required field")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("status transition is not allowed")
	ErrDuplicateMenuItem = errors.New("menu item already exists")
	ErrMenuItemNotFound  = errors.New("menu item not found")
	ErrAccessDenied      = errors.New("access denied")
	ErrInternalError     = errors.New("internal error")
)
