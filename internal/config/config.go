package config

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	pkgerrors "github.com/pkg/errors"
)

const DefaultShutdownTimeout = 10 * time.Second

type Config struct {
	// Адрес, на котором запустится сервер
	ServerAddress string `env:"SERVER_ADDRESS"`
	// Строка подключения к PostgreSQL. Если задана, используется postgres.
	DatabaseDSN string `env:"DATABASE_DSN"`
	// Путь к файлу sqlite. Используется, если DatabaseDSN пуст.
	SQLitePath string `env:"SQLITE_PATH"`
	// Префикс, под которым монтируются маршруты, например `/api`
	RoutePrefix string `env:"ROUTE_PREFIX"`
	// Уровень логирования: debug, info, warning, error
	LogLevel string `env:"LOG_LEVEL"`
	// Время на корректное завершение сервера
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// LoadConfig собирает конфигурацию из .env файла, переменных окружения и флагов.
// Переменные окружения приоритетнее флагов.
func LoadConfig(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, pkgerrors.Wrap(err, "load .env file error")
	}

	var envConfig Config
	if err := env.Parse(&envConfig); err != nil {
		return nil, pkgerrors.Wrap(err, "parse ENV config error")
	}

	flagsConfig, err := loadFlags(args)
	if err != nil {
		return nil, err
	}

	return mergeConfig(&envConfig, flagsConfig), nil
}

// MustLoadConfig аналогичен LoadConfig, но паникует в случае ошибки.
func MustLoadConfig() *Config {
	conf, err := LoadConfig(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return conf
}

// loadFlags парсит флаги командной строки.
func loadFlags(args []string) (*Config, error) {
	var flagsConfig Config
	fSet := flag.NewFlagSet("bookmarks", flag.ContinueOnError)

	fSet.StringVar(&flagsConfig.ServerAddress, "a", "localhost:8080", "Адрес сервера")
	fSet.StringVar(&flagsConfig.DatabaseDSN, "d", "", "Строка подключения к PostgreSQL")
	fSet.StringVar(&flagsConfig.SQLitePath, "s", "", "Путь к файлу sqlite")
	fSet.StringVar(&flagsConfig.RoutePrefix, "p", "", "Префикс маршрутов")
	fSet.StringVar(&flagsConfig.LogLevel, "l", "", "Уровень логирования")
	fSet.DurationVar(&flagsConfig.ShutdownTimeout, "t", DefaultShutdownTimeout, "Время на завершение сервера")

	if err := fSet.Parse(args); err != nil {
		return nil, pkgerrors.Wrap(err, "parse flags error")
	}
	return &flagsConfig, nil
}

// mergeConfig сливает структуры для env и флагов.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		ServerAddress:   defaultIfBlank(envConfig.ServerAddress, flagsConfig.ServerAddress),
		DatabaseDSN:     defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		SQLitePath:      defaultIfBlank(envConfig.SQLitePath, flagsConfig.SQLitePath),
		RoutePrefix:     defaultIfBlank(envConfig.RoutePrefix, flagsConfig.RoutePrefix),
		LogLevel:        defaultIfBlank(envConfig.LogLevel, flagsConfig.LogLevel),
		ShutdownTimeout: defaultIfBlank(envConfig.ShutdownTimeout, flagsConfig.ShutdownTimeout),
	}
}

func defaultIfBlank[T comparable](value T, defaultValue T) T {
	var zero T
	if value == zero {
		return defaultValue
	}
	return value
}
