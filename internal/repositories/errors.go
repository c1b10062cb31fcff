package repositories

import "errors"

// Ошибки уровня хранилища. Сервисный слой переводит их в бизнес-ошибки.
var (
	ErrNotFound     = errors.New("[repository]: record not found")
	ErrDuplicateKey = errors.New("[repository]: duplicate key")
	ErrUnknown      = errors.New("[repository]: unknown error")
)
