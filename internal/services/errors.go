package services

import "errors"

// Бизнес-ошибки. Тексты отдаются пользователю как есть, поэтому
// сформулированы человеческим языком.
var (
	ErrUnauthorized     = errors.New("Unauthorized")
	ErrLinkNotFound     = errors.New("Link not found")
	ErrURLRequired      = errors.New("URL is required")
	ErrInvalidURL       = errors.New("Invalid URL format")
	ErrSlugFormat       = errors.New("Custom slug can only contain letters, numbers, and hyphens")
	ErrSlugTooShort     = errors.New("Custom slug must be at least 3 characters long")
	ErrSlugTooLong      = errors.New("Custom slug must be 50 characters or less")
	ErrSlugTaken        = errors.New("This custom slug is already taken")
	ErrAllocationFailed = errors.New("Failed to generate unique short code")
)

// ErrUnknown ошибка хранилища. Детали остаются в логах, наружу уходит
// только обобщенное сообщение.
var ErrUnknown = errors.New("[service]: unknown error")
