package controllers

import (
	"net/http"

	"github.com/fsdevblog/golinks/internal/services"
	"github.com/pkg/errors"
)

// Сообщения для ошибок хранилища. Детали в логах, наружу только общие фразы.
const (
	msgFailedCreate = "Failed to create link"
	msgFailedUpdate = "Failed to update link"
	msgFailedDelete = "Failed to delete link"
	msgFailedList   = "Failed to load links"
)

// errorStatus подбирает HTTP статус под бизнес-ошибку сервисного слоя.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrLinkNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrSlugTaken):
		return http.StatusConflict
	case errors.Is(err, services.ErrURLRequired),
		errors.Is(err, services.ErrInvalidURL),
		errors.Is(err, services.ErrSlugFormat),
		errors.Is(err, services.ErrSlugTooShort),
		errors.Is(err, services.ErrSlugTooLong):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Бизнес-ошибки, текст которых показывается пользователю как есть.
// ErrAllocationFailed в списке несмотря на статус 500: его сообщение
// само по себе пользовательское и деталей хранилища не содержит.
var surfacedErrors = []error{
	services.ErrUnauthorized,
	services.ErrLinkNotFound,
	services.ErrURLRequired,
	services.ErrInvalidURL,
	services.ErrSlugFormat,
	services.ErrSlugTooShort,
	services.ErrSlugTooLong,
	services.ErrSlugTaken,
	services.ErrAllocationFailed,
}

// errorMessage текст ошибки для пользователя. Ошибки из surfacedErrors уходят
// как есть, все прочее прячется за genericMsg.
func errorMessage(err error, genericMsg string) string {
	for _, se := range surfacedErrors {
		if errors.Is(err, se) {
			return err.Error()
		}
	}
	return genericMsg
}
