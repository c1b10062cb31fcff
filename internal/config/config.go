package config

import (
	"flag"
	"net/url"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type DBType string

const (
	DBTypeSQLite   DBType = "sqlite"
	DBTypePostgres DBType = "postgres"
	DBTypeInMemory DBType = "inMemory"
)

type Config struct {
	// Адрес на котором запустится сервер
	ServerAddress string `env:"SERVER_ADDRESS"`
	// Базовый адрес результирующей короткой ссылки
	BaseURL *url.URL `env:"BASE_URL"`
	// Тип хранилища
	DBType DBType `env:"DB" envDefault:"inMemory"`
	// Путь до файла sqlite
	SQLitePath string `env:"SQLITE_PATH"`
	// Строка подключения к postgres
	DatabaseDSN string `env:"DATABASE_DSN"`
	// Ключ подписи JWT куки
	JWTSecret string `env:"JWT_SECRET" envDefault:"insecure-dev-secret"`
	Logger    *logrus.Logger
}

func LoadConfig() (*Config, error) {
	// .env опционален, молча едем дальше если его нет
	_ = godotenv.Load()

	var flagsConfig, envConfig Config
	logger := initLogger()

	if err := env.Parse(&envConfig); err != nil {
		return nil, errors.Wrapf(err, "parse ENV config error")
	}

	loadsFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	conf.Logger = logger
	return conf, nil
}

func MustLoadConfig() *Config {
	conf, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return conf
}

// loadsFlags парсит флаги командной строки.
func loadsFlags(flagsConfig *Config) {
	flag.StringVar(&flagsConfig.ServerAddress, "a", "localhost:8080", "Адрес сервера")
	flag.StringVar(&flagsConfig.SQLitePath, "f", "", "Путь до файла sqlite")
	flag.StringVar(&flagsConfig.DatabaseDSN, "d", "", "Строка подключения к postgres")

	bDesc := "Базовый адрес результирующей короткой ссылки (по умолчанию Scheme://Host запущенного сервера)"
	flag.Func("b", bDesc, func(rawURL string) error {
		parsedURL, err := url.ParseRequestURI(rawURL)
		if err != nil {
			return errors.Wrap(err, "failed to parse base url")
		}

		// отсекаем Path и Query если они заданы в базовом урле
		flagsConfig.BaseURL = &url.URL{
			Scheme: parsedURL.Scheme,
			Host:   parsedURL.Host,
		}
		return nil
	})

	flag.Parse()
}

// mergeConfig сливает структуры для env и флагов. Env приоритетнее.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	conf := &Config{
		ServerAddress: defaultIfBlank[string](envConfig.ServerAddress, flagsConfig.ServerAddress),
		BaseURL:       defaultIfBlank[*url.URL](envConfig.BaseURL, flagsConfig.BaseURL),
		DBType:        defaultIfBlank[DBType](envConfig.DBType, flagsConfig.DBType),
		SQLitePath:    defaultIfBlank[string](envConfig.SQLitePath, flagsConfig.SQLitePath),
		DatabaseDSN:   defaultIfBlank[string](envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		JWTSecret:     defaultIfBlank[string](envConfig.JWTSecret, flagsConfig.JWTSecret),
	}

	// тип хранилища выводим из того, что настроено
	if conf.DBType == DBTypeInMemory {
		switch {
		case conf.DatabaseDSN != "":
			conf.DBType = DBTypePostgres
		case conf.SQLitePath != "":
			conf.DBType = DBTypeSQLite
		}
	}
	return conf
}

func defaultIfBlank[T any](value T, defaultValue T) T {
	if v, ok := any(value).(string); ok && v == "" {
		return defaultValue
	}
	if v, ok := any(value).(DBType); ok && v == "" {
		return defaultValue
	}
	if v, ok := any(value).(*url.URL); ok && v == nil {
		return defaultValue
	}
	return value
}
