package models

import "time"

// ShortCodeLength длина автоматически сгенерированного короткого кода.
const ShortCodeLength = 6

// Link структура модели короткой ссылки.
//
// Короткий код уникален на уровне хранилища (уникальный индекс) — проверка
// существования в сервисном слое лишь предварительная.
type Link struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	ShortCode   string    `gorm:"size:50;uniqueIndex;not null" json:"shortCode"`
	OriginalURL string    `gorm:"size:2048;not null" json:"originalUrl"`
	UserID      string    `gorm:"size:255;index;not null" json:"userId"`
	Clicks      uint      `gorm:"not null;default:0" json:"clicks"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
