// Package sql содержит реализацию репозитория ссылок поверх gorm.
// Подходит как для sqlite, так и для postgres подключений.
package sql
