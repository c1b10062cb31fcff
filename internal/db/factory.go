package db

import (
	"errors"
	"fmt"
)

type StorageType string

const (
	StorageTypeSQLite   StorageType = "sqlite"
	StorageTypePostgres StorageType = "postgres"
	StorageTypeInMemory StorageType = "inMemory"
)

type FactoryConfig struct {
	StorageType StorageType
	SQLitePath  string
	PostgresDSN string
}

// NewConnectionFactory возвращает подключение к выбранному хранилищу.
// Для inMemory подключения нет — хранилище живет в репозитории.
func NewConnectionFactory(config FactoryConfig) (any, error) {
	switch config.StorageType {
	case StorageTypeSQLite:
		if config.SQLitePath == "" {
			return nil, errors.New("sqlite path is empty")
		}
		return NewSQLite(config.SQLitePath)
	case StorageTypePostgres:
		if config.PostgresDSN == "" {
			return nil, errors.New("postgres dsn is empty")
		}
		return NewPostgres(config.PostgresDSN)
	case StorageTypeInMemory:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", config.StorageType)
	}
}
