// Command seed наполняет базу примерами ссылок: 10 записей на 3 синтетических
// пользователей со случайным числом переходов. Удобно для разработки дашборда.
package main

import (
	"context"
	"math/rand/v2"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fsdevblog/golinks/internal/config"
	"github.com/fsdevblog/golinks/internal/db"
	"github.com/fsdevblog/golinks/internal/models"
	"github.com/fsdevblog/golinks/internal/repositories/sql"
	"github.com/fsdevblog/golinks/internal/services"
)

const (
	linksCount = 10
	usersCount = 3
	maxClicks  = 100
)

func main() {
	conf := config.MustLoadConfig()
	logger := conf.Logger

	if conf.DBType == config.DBTypeInMemory {
		logger.Fatal("seed requires a sql storage, set SQLITE_PATH or DATABASE_DSN")
	}

	conn, connErr := db.NewConnectionFactory(db.FactoryConfig{
		StorageType: db.StorageType(conf.DBType),
		SQLitePath:  conf.SQLitePath,
		PostgresDSN: conf.DatabaseDSN,
	})
	if connErr != nil {
		logger.WithError(connErr).Fatal("connect storage")
	}

	linkRepo := sql.NewLinkRepo(conn.(*gorm.DB), logger)

	users := make([]string, usersCount)
	for i := range users {
		users[i] = uuid.NewString()
	}

	ctx := context.Background()
	for i := range linksCount {
		link := models.Link{
			UserID:      users[i%usersCount],
			ShortCode:   services.GenerateShortCode(models.ShortCodeLength),
			OriginalURL: gofakeit.URL(),
			Clicks:      uint(rand.IntN(maxClicks)),
		}
		if err := linkRepo.Create(ctx, &link); err != nil {
			logger.WithError(err).Fatalf("insert link %d", i)
		}
		logger.Infof("%s -> %s (%d clicks, owner %s)",
			link.ShortCode, link.OriginalURL, link.Clicks, link.UserID)
	}

	logger.Infof("Seeded %d links for %d users", linksCount, usersCount)
}
