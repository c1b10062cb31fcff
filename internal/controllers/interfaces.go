package controllers

import (
	"context"

	"github.com/fsdevblog/golinks/internal/models"
)

// LinkManager операции жизненного цикла ссылок и резолв редиректа.
type LinkManager interface {
	Create(ctx context.Context, userID, rawURL, customSlug string) (*models.Link, error)
	Update(ctx context.Context, userID string, id uint, rawURL, customSlug string) (*models.Link, error)
	Delete(ctx context.Context, userID string, id uint) error
	GetAllByUserID(ctx context.Context, userID string) ([]models.Link, error)
	Resolve(ctx context.Context, shortCode string) (*models.Link, error)
}
