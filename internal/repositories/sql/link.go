package sql

import (
	"context"

	"github.com/fsdevblog/golinks/internal/models"
	"github.com/fsdevblog/golinks/internal/repositories"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type LinkRepo struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewLinkRepo(db *gorm.DB, logger *logrus.Logger) *LinkRepo {
	return &LinkRepo{
		db:     db,
		logger: logger.WithField("module", "repository/sql/link"),
	}
}

// Create создает запись. При конфликте уникального индекса short_code
// возвращает repositories.ErrDuplicateKey — это сигнал коллизии для сервиса.
func (r *LinkRepo) Create(ctx context.Context, link *models.Link) error {
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		convErr := convertErrorType(err)
		if errors.Is(convErr, repositories.ErrDuplicateKey) {
			return convErr
		}
		r.logger.WithError(err).Errorf("failed to create record %+v", *link)
		return convErr
	}
	return nil
}

func (r *LinkRepo) GetByID(ctx context.Context, id uint) (*models.Link, error) {
	var link models.Link
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		r.logger.WithError(err).Errorf("failed to get record by id %d", id)
		return nil, repositories.ErrUnknown
	}
	return &link, nil
}

func (r *LinkRepo) GetByShortCode(ctx context.Context, shortCode string) (*models.Link, error) {
	var link models.Link
	if err := r.db.WithContext(ctx).Where("short_code = ?", shortCode).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		r.logger.WithError(err).Errorf("failed to get record by short code %s", shortCode)
		return nil, repositories.ErrUnknown
	}
	return &link, nil
}

func (r *LinkRepo) GetAllByUserID(ctx context.Context, userID string) ([]models.Link, error) {
	var links []models.Link
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&links).Error
	if err != nil {
		r.logger.WithError(err).Errorf("failed to get records by user id %s", userID)
		return nil, repositories.ErrUnknown
	}
	return links, nil
}

// Update перезаписывает адрес назначения и короткий код одним запросом.
// Поле updated_at gorm обновляет сам.
func (r *LinkRepo) Update(ctx context.Context, id uint, originalURL, shortCode string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Link{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"original_url": originalURL,
			"short_code":   shortCode,
		})
	if res.Error != nil {
		convErr := convertErrorType(res.Error)
		if !errors.Is(convErr, repositories.ErrDuplicateKey) {
			r.logger.WithError(res.Error).Errorf("failed to update record %d", id)
		}
		return convErr
	}
	if res.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// IncrementClicks атомарно увеличивает счетчик переходов: одно выражение
// `clicks = clicks + 1` вместо чтения и перезаписи, чтобы параллельные
// редиректы не теряли инкременты. Счетчик не трогает updated_at.
func (r *LinkRepo) IncrementClicks(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Model(&models.Link{}).
		Where("id = ?", id).
		UpdateColumn("clicks", gorm.Expr("clicks + ?", 1))
	if res.Error != nil {
		r.logger.WithError(res.Error).Errorf("failed to increment clicks for record %d", id)
		return repositories.ErrUnknown
	}
	if res.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *LinkRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Link{}, id)
	if res.Error != nil {
		r.logger.WithError(res.Error).Errorf("failed to delete record %d", id)
		return repositories.ErrUnknown
	}
	if res.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
