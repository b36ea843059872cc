package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/Coach-ScheduleService/internal/domain"
	"github.com/m04kA/Coach-ScheduleService/pkg/types"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// ScheduleConfig настройки рабочего окна и геометрии слотов
// Пустые значения заменяются дефолтами при построении SchedulePolicy
type ScheduleConfig struct {
	OpenTime             string `toml:"open_time"`  // "HH:MM"
	CloseTime            string `toml:"close_time"` // "HH:MM"
	BookingMarginMinutes int    `toml:"booking_margin_minutes"`
	SlotDurationMinutes  int    `toml:"slot_duration_minutes"`
	SlotStepMinutes      int    `toml:"slot_step_minutes"`
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Logs.File == "" {
		cfg.Logs.File = "logs/app.log"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	if _, err := cfg.SchedulePolicy(); err != nil {
		return nil, fmt.Errorf("config: invalid [schedule] section: %w", err)
	}

	return &cfg, nil
}

// DSN возвращает строку подключения для lib/pq
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// SchedulePolicy собирает доменную политику расписания из конфигурации,
// подставляя дефолты для незаполненных полей
func (c *Config) SchedulePolicy() (domain.SchedulePolicy, error) {
	policy := domain.DefaultSchedulePolicy()

	if c.Schedule.OpenTime != "" {
		open, err := types.NewTimeStringFromString(c.Schedule.OpenTime)
		if err != nil {
			return domain.SchedulePolicy{}, fmt.Errorf("open_time: %w", err)
		}
		policy.OpenTime = open
	}
	if c.Schedule.CloseTime != "" {
		close, err := types.NewTimeStringFromString(c.Schedule.CloseTime)
		if err != nil {
			return domain.SchedulePolicy{}, fmt.Errorf("close_time: %w", err)
		}
		policy.CloseTime = close
	}
	if c.Schedule.BookingMarginMinutes > 0 {
		policy.BookingMarginMinutes = c.Schedule.BookingMarginMinutes
	}
	if c.Schedule.SlotDurationMinutes > 0 {
		policy.SlotDurationMinutes = c.Schedule.SlotDurationMinutes
	}
	if c.Schedule.SlotStepMinutes > 0 {
		policy.SlotStepMinutes = c.Schedule.SlotStepMinutes
	}

	if policy.CloseTime.IsBefore(policy.OpenTime) {
		return domain.SchedulePolicy{}, fmt.Errorf("close_time %s is before open_time %s",
			policy.CloseTime, policy.OpenTime)
	}

	return policy, nil
}
