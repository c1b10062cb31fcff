package smocks

import (
	"context"

	"github.com/fsdevblog/golinks/internal/models"
	"github.com/stretchr/testify/mock"
)

// LinkRepoMock мок репозитория ссылок для тестов сервисного слоя.
type LinkRepoMock struct {
	mock.Mock
}

func (m *LinkRepoMock) Create(ctx context.Context, link *models.Link) error {
	args := m.Called(ctx, link)
	return args.Error(0) //nolint:wrapcheck
}

func (m *LinkRepoMock) GetByID(ctx context.Context, id uint) (*models.Link, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).(*models.Link), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *LinkRepoMock) GetByShortCode(ctx context.Context, shortCode string) (*models.Link, error) {
	args := m.Called(ctx, shortCode)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).(*models.Link), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *LinkRepoMock) GetAllByUserID(ctx context.Context, userID string) ([]models.Link, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).([]models.Link), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *LinkRepoMock) Update(ctx context.Context, id uint, originalURL, shortCode string) error {
	args := m.Called(ctx, id, originalURL, shortCode)
	return args.Error(0) //nolint:wrapcheck
}

func (m *LinkRepoMock) IncrementClicks(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0) //nolint:wrapcheck
}

func (m *LinkRepoMock) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0) //nolint:wrapcheck
}

// NotifierMock мок сигнала инвалидации дашборда.
type NotifierMock struct {
	mock.Mock
}

func (m *NotifierMock) Invalidate(userID string) {
	m.Called(userID)
}

// LinkServiceMock мок сервиса ссылок для тестов контроллеров.
type LinkServiceMock struct {
	mock.Mock
}

func (m *LinkServiceMock) Create(ctx context.Context, userID, rawURL, customSlug string) (*models.Link, error) {
	args := m.Called(ctx, userID, rawURL, customSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).(*models.Link), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *LinkServiceMock) Update(ctx context.Context, userID string, id uint, rawURL, customSlug string) (*models.Link, error) {
	args := m.Called(ctx, userID, id, rawURL, customSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).(*models.Link), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *LinkServiceMock) Delete(ctx context.Context, userID string, id uint) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0) //nolint:wrapcheck
}

func (m *LinkServiceMock) GetAllByUserID(ctx context.Context, userID string) ([]models.Link, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).([]models.Link), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *LinkServiceMock) Resolve(ctx context.Context, shortCode string) (*models.Link, error) {
	args := m.Called(ctx, shortCode)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).(*models.Link), args.Error(1) //nolint:wrapcheck,errcheck
}
