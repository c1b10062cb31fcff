package services

import (
	"math/rand/v2"
	"regexp"
)

// shortCodeAlphabet алфавит коротких кодов (base62).
const shortCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// MaxAllocateAttempts потолок попыток подобрать свободный автоматический код.
// После исчерпания возвращается ErrAllocationFailed.
const MaxAllocateAttempts = 10

const (
	slugMinLength = 3
	slugMaxLength = 50
)

// slugRegex допустимые символы пользовательского кода.
var slugRegex = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

// GenerateShortCode возвращает случайный код заданной длины из base62 алфавита.
// Криптостойкость здесь не нужна: от коллизий защищает проверка уникальности
// и уникальный индекс хранилища, а не энтропия.
func GenerateShortCode(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = shortCodeAlphabet[rand.IntN(len(shortCodeAlphabet))]
	}
	return string(b)
}

// ValidateSlug проверяет пользовательский код. Слаг должен быть уже обрезан
// от пробелов; пустая строка — забота вызывающего (значит слаг не задан).
// Порядок проверок фиксирован: формат, затем минимальная и максимальная длина.
func ValidateSlug(slug string) error {
	if !slugRegex.MatchString(slug) {
		return ErrSlugFormat
	}
	if len(slug) < slugMinLength {
		return ErrSlugTooShort
	}
	if len(slug) > slugMaxLength {
		return ErrSlugTooLong
	}
	return nil
}
