package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsdevblog/golinks/internal/models"
	"github.com/fsdevblog/golinks/internal/repositories"
)

func newLink(userID, code string) *models.Link {
	return &models.Link{
		UserID:      userID,
		ShortCode:   code,
		OriginalURL: "https://example.com/" + code,
	}
}

func TestLinkRepo_Create(t *testing.T) {
	ctx := context.Background()
	repo := NewLinkRepo()

	link := newLink("user-1", "abc123")
	require.NoError(t, repo.Create(ctx, link))
	assert.NotZero(t, link.ID)
	assert.False(t, link.CreatedAt.IsZero())

	// короткий код уникален
	err := repo.Create(ctx, newLink("user-2", "abc123"))
	assert.ErrorIs(t, err, repositories.ErrDuplicateKey)
}

func TestLinkRepo_Get(t *testing.T) {
	ctx := context.Background()
	repo := NewLinkRepo()

	link := newLink("user-1", "abc123")
	require.NoError(t, repo.Create(ctx, link))

	byID, err := repo.GetByID(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, "abc123", byID.ShortCode)

	byCode, err := repo.GetByShortCode(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, link.ID, byCode.ID)

	_, err = repo.GetByID(ctx, 404)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	_, err = repo.GetByShortCode(ctx, "missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestLinkRepo_GetAllByUserID(t *testing.T) {
	ctx := context.Background()
	repo := NewLinkRepo()

	first := newLink("user-1", "first1")
	first.CreatedAt = time.Now().Add(-2 * time.Hour)
	second := newLink("user-1", "second")
	second.CreatedAt = time.Now().Add(-time.Hour)
	foreign := newLink("user-2", "others")

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, foreign))

	links, err := repo.GetAllByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, links, 2)
	// свежие первыми, чужие записи не попадают
	assert.Equal(t, "second", links[0].ShortCode)
	assert.Equal(t, "first1", links[1].ShortCode)

	empty, err := repo.GetAllByUserID(ctx, "user-3")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestLinkRepo_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewLinkRepo()

	link := newLink("user-1", "abc123")
	require.NoError(t, repo.Create(ctx, link))
	taken := newLink("user-2", "taken1")
	require.NoError(t, repo.Create(ctx, taken))

	require.NoError(t, repo.Update(ctx, link.ID, "https://new.example.com", "renamed"))

	updated, err := repo.GetByShortCode(ctx, "renamed")
	require.NoError(t, err)
	assert.Equal(t, "https://new.example.com", updated.OriginalURL)

	// старый код освобожден
	_, err = repo.GetByShortCode(ctx, "abc123")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// чужой код занять нельзя
	err = repo.Update(ctx, link.ID, "https://new.example.com", "taken1")
	assert.ErrorIs(t, err, repositories.ErrDuplicateKey)

	// перезапись собственным кодом допустима
	require.NoError(t, repo.Update(ctx, link.ID, "https://same.example.com", "renamed"))

	err = repo.Update(ctx, 404, "https://new.example.com", "nobody")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestLinkRepo_IncrementClicks(t *testing.T) {
	ctx := context.Background()
	repo := NewLinkRepo()

	link := newLink("user-1", "abc123")
	require.NoError(t, repo.Create(ctx, link))

	for range 3 {
		require.NoError(t, repo.IncrementClicks(ctx, link.ID))
	}

	got, err := repo.GetByID(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(3), got.Clicks)

	assert.ErrorIs(t, repo.IncrementClicks(ctx, 404), repositories.ErrNotFound)
}

func TestLinkRepo_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewLinkRepo()

	link := newLink("user-1", "abc123")
	require.NoError(t, repo.Create(ctx, link))

	require.NoError(t, repo.Delete(ctx, link.ID))
	_, err := repo.GetByID(ctx, link.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	_, err = repo.GetByShortCode(ctx, "abc123")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, link.ID), repositories.ErrNotFound)

	// код можно переиспользовать после удаления
	require.NoError(t, repo.Create(ctx, newLink("user-2", "abc123")))
}
