package sql

import (
	"github.com/fsdevblog/golinks/internal/repositories"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// convertErrorType переводит ошибки gorm в ошибки уровня репозитория.
// Работает в связке с опцией gorm.Config{TranslateError: true}.
func convertErrorType(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return repositories.ErrDuplicateKey
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repositories.ErrNotFound
	default:
		return repositories.ErrUnknown
	}
}
