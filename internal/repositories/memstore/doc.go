// Package memstore содержит реализацию репозитория ссылок в памяти.
// Используется по умолчанию (без настроенной БД) и в тестах.
package memstore
