package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
)

// EnvPrefix префикс переменных окружения, переопределяющих config.toml
const EnvPrefix = "ZB"

var (
	// ErrReadConfig ошибка чтения файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config")

	// ErrInvalidConfig конфигурация не прошла проверку
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Engine   EngineConfig   `toml:"engine"`
	Broker   BrokerConfig   `toml:"broker"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" split_words:"true"`
	ReadTimeout     int `toml:"read_timeout" split_words:"true"`
	WriteTimeout    int `toml:"write_timeout" split_words:"true"`
	IdleTimeout     int `toml:"idle_timeout" split_words:"true"`
	ShutdownTimeout int `toml:"shutdown_timeout" split_words:"true"`
}

// DatabaseConfig параметры хранилища. Driver: postgres | sqlite
type DatabaseConfig struct {
	Driver          string `toml:"driver"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	Path            string `toml:"path"` // файл sqlite или :memory:
	MaxOpenConns    int    `toml:"max_open_conns" split_words:"true"`
	MaxIdleConns    int    `toml:"max_idle_conns" split_words:"true"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" split_words:"true"`
	Migrate         bool   `toml:"migrate"`
}

// DSN строка подключения для выбранного драйвера
func (d DatabaseConfig) DSN() string {
	if d.Driver == "sqlite" {
		return d.Path
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig параметры логгера
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig параметры prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name" split_words:"true"`
}

// EngineConfig параметры движка бронирования
type EngineConfig struct {
	Timezone             string `toml:"timezone"`
	LockTimeoutMs        int    `toml:"lock_timeout_ms" split_words:"true"`
	IdempotencyCacheSize int    `toml:"idempotency_cache_size" split_words:"true"`
}

// Location часовой пояс расписаний
func (e EngineConfig) Location() (*time.Location, error) {
	return time.LoadLocation(e.Timezone)
}

// LockTimeout время ожидания блокировки сотрудника
func (e EngineConfig) LockTimeout() time.Duration {
	return time.Duration(e.LockTimeoutMs) * time.Millisecond
}

// BrokerConfig параметры публикации событий в RabbitMQ
type BrokerConfig struct {
	Enabled          bool   `toml:"enabled"`
	URL              string `toml:"url"`
	Exchange         string `toml:"exchange"`
	PublishTimeoutMs int    `toml:"publish_timeout_ms" split_words:"true"`
}

// Load читает config.toml, затем .env (если есть), затем переменные ZB_*.
// Переменные окружения имеют приоритет над файлом
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: .env: %v", ErrReadConfig, err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("%w: env: %v", ErrReadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("%w: database.driver must be postgres or sqlite, got %q", ErrInvalidConfig, c.Database.Driver)
	}

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if _, err := c.Engine.Location(); err != nil {
		return fmt.Errorf("%w: engine.timezone %q: %v", ErrInvalidConfig, c.Engine.Timezone, err)
	}
	if c.Engine.LockTimeoutMs < 0 {
		return fmt.Errorf("%w: engine.lock_timeout_ms must not be negative", ErrInvalidConfig)
	}
	if c.Broker.Enabled && c.Broker.URL == "" {
		return fmt.Errorf("%w: broker.url is required when broker is enabled", ErrInvalidConfig)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Driver:          "sqlite",
			Path:            "zonebooking.db",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			Migrate:         true,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "zonebooking",
		},
		Engine: EngineConfig{
			Timezone:             domain.DefaultTimezone,
			LockTimeoutMs:        3000,
			IdempotencyCacheSize: 1024,
		},
		Broker: BrokerConfig{
			Exchange:         "zonebooking.events",
			PublishTimeoutMs: 2000,
		},
	}
}
