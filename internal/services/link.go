package services

import (
	"context"
	"net/url"
	"strings"

	"github.com/fsdevblog/golinks/internal/models"
	"github.com/fsdevblog/golinks/internal/repositories"
	"github.com/pkg/errors"
)

// maxURLLength предел длины адреса назначения (колонка original_url).
const maxURLLength = 2048

// LinkService отвечает за жизненный цикл ссылок: создание, изменение,
// удаление с проверкой владельца, а также резолв редиректа со счетчиком
// переходов.
type LinkService struct {
	linkRepo LinkRepository
	notifier DashboardNotifier
}

func NewLinkService(linkRepo LinkRepository, notifier DashboardNotifier) *LinkService {
	return &LinkService{
		linkRepo: linkRepo,
		notifier: notifier,
	}
}

// Create создает ссылку. Если передан непустой пользовательский слаг —
// валидирует и резервирует его, иначе подбирает свободный автоматический код.
//
// Проверка существования кода заранее — это лишь быстрый отсев: между
// проверкой и вставкой есть окно гонки, поэтому дубликат на вставке
// трактуется как коллизия (повтор для автокода, ErrSlugTaken для слага).
func (s *LinkService) Create(ctx context.Context, userID, rawURL, customSlug string) (*models.Link, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	destination, urlErr := validateURL(rawURL)
	if urlErr != nil {
		return nil, urlErr
	}

	slug := strings.TrimSpace(customSlug)
	if slug != "" {
		return s.createWithSlug(ctx, userID, destination, slug)
	}
	return s.createWithAutoCode(ctx, userID, destination)
}

func (s *LinkService) createWithSlug(ctx context.Context, userID, destination, slug string) (*models.Link, error) {
	if vErr := ValidateSlug(slug); vErr != nil {
		return nil, vErr
	}

	taken, checkErr := s.isShortCodeTaken(ctx, slug)
	if checkErr != nil {
		return nil, checkErr
	}
	if taken {
		return nil, ErrSlugTaken
	}

	link := &models.Link{
		UserID:      userID,
		ShortCode:   slug,
		OriginalURL: destination,
	}
	if createErr := s.linkRepo.Create(ctx, link); createErr != nil {
		if errors.Is(createErr, repositories.ErrDuplicateKey) {
			// кто-то успел занять слаг между проверкой и вставкой
			return nil, ErrSlugTaken
		}
		return nil, errors.Wrap(ErrUnknown, "create link")
	}

	s.invalidate(userID)
	return link, nil
}

func (s *LinkService) createWithAutoCode(ctx context.Context, userID, destination string) (*models.Link, error) {
	for range MaxAllocateAttempts {
		code := GenerateShortCode(models.ShortCodeLength)

		taken, checkErr := s.isShortCodeTaken(ctx, code)
		if checkErr != nil {
			return nil, checkErr
		}
		if taken {
			// коллизия, пробуем следующий кандидат
			continue
		}

		link := &models.Link{
			UserID:      userID,
			ShortCode:   code,
			OriginalURL: destination,
		}
		if createErr := s.linkRepo.Create(ctx, link); createErr != nil {
			if errors.Is(createErr, repositories.ErrDuplicateKey) {
				// проиграли гонку за код, попытка сгорает
				continue
			}
			return nil, errors.Wrap(ErrUnknown, "create link")
		}

		s.invalidate(userID)
		return link, nil
	}
	return nil, ErrAllocationFailed
}

// Update меняет адрес назначения и, опционально, короткий код.
// Слаг проверяется только если отличается от текущего: повторная отправка
// того же значения — идемпотентный no-op без ревалидации.
func (s *LinkService) Update(ctx context.Context, userID string, id uint, rawURL, customSlug string) (*models.Link, error) {
	link, ownErr := s.fetchOwned(ctx, userID, id)
	if ownErr != nil {
		return nil, ownErr
	}

	destination, urlErr := validateURL(rawURL)
	if urlErr != nil {
		return nil, urlErr
	}

	shortCode := link.ShortCode
	if slug := strings.TrimSpace(customSlug); slug != "" && slug != link.ShortCode {
		if vErr := ValidateSlug(slug); vErr != nil {
			return nil, vErr
		}
		taken, checkErr := s.isShortCodeTaken(ctx, slug)
		if checkErr != nil {
			return nil, checkErr
		}
		if taken {
			return nil, ErrSlugTaken
		}
		shortCode = slug
	}

	if upErr := s.linkRepo.Update(ctx, id, destination, shortCode); upErr != nil {
		switch {
		case errors.Is(upErr, repositories.ErrDuplicateKey):
			return nil, ErrSlugTaken
		case errors.Is(upErr, repositories.ErrNotFound):
			return nil, ErrLinkNotFound
		default:
			return nil, errors.Wrap(ErrUnknown, "update link")
		}
	}

	link.OriginalURL = destination
	link.ShortCode = shortCode

	s.invalidate(userID)
	return link, nil
}

// Delete удаляет ссылку владельца.
func (s *LinkService) Delete(ctx context.Context, userID string, id uint) error {
	if _, ownErr := s.fetchOwned(ctx, userID, id); ownErr != nil {
		return ownErr
	}

	if delErr := s.linkRepo.Delete(ctx, id); delErr != nil {
		if errors.Is(delErr, repositories.ErrNotFound) {
			return ErrLinkNotFound
		}
		return errors.Wrap(ErrUnknown, "delete link")
	}

	s.invalidate(userID)
	return nil
}

// GetAllByUserID возвращает ссылки владельца для дашборда, свежие первыми.
func (s *LinkService) GetAllByUserID(ctx context.Context, userID string) ([]models.Link, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	links, err := s.linkRepo.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(ErrUnknown, "list links")
	}
	return links, nil
}

// Resolve находит ссылку по короткому коду и засчитывает переход.
// Инкремент — одно атомарное выражение на стороне хранилища.
func (s *LinkService) Resolve(ctx context.Context, shortCode string) (*models.Link, error) {
	link, err := s.linkRepo.GetByShortCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, errors.Wrap(ErrUnknown, "resolve short code")
	}

	if incErr := s.linkRepo.IncrementClicks(ctx, link.ID); incErr != nil {
		return nil, errors.Wrap(ErrUnknown, "increment clicks")
	}
	link.Clicks++

	return link, nil
}

// fetchOwned достает запись и сверяет владельца.
func (s *LinkService) fetchOwned(ctx context.Context, userID string, id uint) (*models.Link, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	link, err := s.linkRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, errors.Wrap(ErrUnknown, "fetch link")
	}
	if link.UserID != userID {
		return nil, ErrUnauthorized
	}
	return link, nil
}

func (s *LinkService) isShortCodeTaken(ctx context.Context, shortCode string) (bool, error) {
	_, err := s.linkRepo.GetByShortCode(ctx, shortCode)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, repositories.ErrNotFound) {
		return false, nil
	}
	return false, errors.Wrap(ErrUnknown, "check short code")
}

func (s *LinkService) invalidate(userID string) {
	if s.notifier != nil {
		s.notifier.Invalidate(userID)
	}
}

// validateURL проверяет адрес назначения: обязателен, абсолютный URL,
// не длиннее колонки в хранилище.
func validateURL(rawURL string) (string, error) {
	if rawURL == "" {
		return "", ErrURLRequired
	}
	if len(rawURL) > maxURLLength {
		return "", ErrInvalidURL
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return "", ErrInvalidURL
	}
	return rawURL, nil
}
