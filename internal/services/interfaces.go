package services

import (
	"context"

	"github.com/fsdevblog/golinks/internal/models"
)

// LinkRepository описывает хранилище ссылок.
type LinkRepository interface {
	// Create создает запись. Конфликт по короткому коду возвращается
	// как repositories.ErrDuplicateKey.
	Create(ctx context.Context, link *models.Link) error
	// GetByID находит запись по первичному ключу.
	GetByID(ctx context.Context, id uint) (*models.Link, error)
	// GetByShortCode находит запись по короткому коду.
	GetByShortCode(ctx context.Context, shortCode string) (*models.Link, error)
	// GetAllByUserID возвращает ссылки владельца, свежие первыми.
	GetAllByUserID(ctx context.Context, userID string) ([]models.Link, error)
	// Update перезаписывает адрес назначения и короткий код одной операцией.
	Update(ctx context.Context, id uint, originalURL, shortCode string) error
	// IncrementClicks атомарно увеличивает счетчик переходов на единицу.
	IncrementClicks(ctx context.Context, id uint) error
	// Delete удаляет запись.
	Delete(ctx context.Context, id uint) error
}

// DashboardNotifier получает сигнал после успешной мутации списка ссылок.
type DashboardNotifier interface {
	Invalidate(userID string)
}
