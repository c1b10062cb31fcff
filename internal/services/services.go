package services

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/golinks/internal/repositories/memstore"
	"github.com/fsdevblog/golinks/internal/repositories/sql"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ServiceType string

const (
	ServiceTypeSQLite   ServiceType = "sqlite"
	ServiceTypePostgres ServiceType = "postgres"
	ServiceTypeInMemory ServiceType = "inMemory"
)

type Services struct {
	LinkService *LinkService
}

// Factory собирает сервисный слой поверх выбранного хранилища.
// Для sql типов ожидает *gorm.DB в conn, для inMemory conn не нужен.
func Factory(conn any, sType ServiceType, notifier DashboardNotifier, logger *logrus.Logger) (*Services, error) {
	switch sType {
	case ServiceTypeSQLite, ServiceTypePostgres:
		gormDB, ok := conn.(*gorm.DB)
		if !ok {
			return nil, errors.New("invalid connection type. expected *gorm.DB")
		}
		linkRepo := sql.NewLinkRepo(gormDB, logger)
		return &Services{LinkService: NewLinkService(linkRepo, notifier)}, nil
	case ServiceTypeInMemory:
		linkRepo := memstore.NewLinkRepo()
		return &Services{LinkService: NewLinkService(linkRepo, notifier)}, nil
	default:
		return nil, fmt.Errorf("unknown service type: %s", sType)
	}
}
