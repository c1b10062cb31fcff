package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/fsdevblog/golinks/internal/models"
	"github.com/fsdevblog/golinks/internal/repositories"
)

// LinkRepo хранит ссылки в памяти. Семантика повторяет sql репозиторий:
// карта byCode играет роль уникального индекса по короткому коду.
type LinkRepo struct {
	mu     sync.RWMutex
	byID   map[uint]models.Link
	byCode map[string]uint
	nextID uint
}

func NewLinkRepo() *LinkRepo {
	return &LinkRepo{
		byID:   make(map[uint]models.Link),
		byCode: make(map[string]uint),
	}
}

func (r *LinkRepo) Create(_ context.Context, link *models.Link) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byCode[link.ShortCode]; taken {
		return repositories.ErrDuplicateKey
	}

	r.nextID++
	link.ID = r.nextID
	now := time.Now()
	if link.CreatedAt.IsZero() {
		link.CreatedAt = now
	}
	link.UpdatedAt = now

	r.byID[link.ID] = *link
	r.byCode[link.ShortCode] = link.ID
	return nil
}

func (r *LinkRepo) GetByID(_ context.Context, id uint) (*models.Link, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	link, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &link, nil
}

func (r *LinkRepo) GetByShortCode(_ context.Context, shortCode string) (*models.Link, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byCode[shortCode]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	link := r.byID[id]
	return &link, nil
}

func (r *LinkRepo) GetAllByUserID(_ context.Context, userID string) ([]models.Link, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var links []models.Link
	for _, link := range r.byID {
		if link.UserID == userID {
			links = append(links, link)
		}
	}
	// Свежие записи первыми, как в выборке `ORDER BY created_at DESC, id DESC`.
	sort.Slice(links, func(i, j int) bool {
		if links[i].CreatedAt.Equal(links[j].CreatedAt) {
			return links[i].ID > links[j].ID
		}
		return links[i].CreatedAt.After(links[j].CreatedAt)
	})
	return links, nil
}

func (r *LinkRepo) Update(_ context.Context, id uint, originalURL, shortCode string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	link, ok := r.byID[id]
	if !ok {
		return repositories.ErrNotFound
	}
	if takenBy, taken := r.byCode[shortCode]; taken && takenBy != id {
		return repositories.ErrDuplicateKey
	}

	delete(r.byCode, link.ShortCode)
	link.OriginalURL = originalURL
	link.ShortCode = shortCode
	link.UpdatedAt = time.Now()

	r.byID[id] = link
	r.byCode[shortCode] = id
	return nil
}

func (r *LinkRepo) IncrementClicks(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	link, ok := r.byID[id]
	if !ok {
		return repositories.ErrNotFound
	}
	link.Clicks++
	r.byID[id] = link
	return nil
}

func (r *LinkRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	link, ok := r.byID[id]
	if !ok {
		return repositories.ErrNotFound
	}
	delete(r.byCode, link.ShortCode)
	delete(r.byID, id)
	return nil
}
