package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Config конфигурация приложения
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
	Receipts ReceiptsConfig `toml:"receipts"`
	UI       UIConfig       `toml:"ui"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры эндпоинта метрик
type MetricsConfig struct {
	Enabled         bool   `toml:"enabled"`
	ServiceName     string `toml:"service_name"`
	Addr            string `toml:"addr"`
	Path            string `toml:"path"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
}

// BookingConfig окно записи
type BookingConfig struct {
	SlotCapacity    int    `toml:"slot_capacity"`
	HorizonDays     int    `toml:"horizon_days"`
	OpenHour        int    `toml:"open_hour"`
	CloseHour       int    `toml:"close_hour"`
	ExcludedWeekday string `toml:"excluded_weekday"`
}

// ReceiptsConfig параметры чеков
type ReceiptsConfig struct {
	Dir       string `toml:"dir"`
	SalonName string `toml:"salon_name"`
	Currency  string `toml:"currency"`
}

// UIConfig параметры терминального интерфейса
type UIConfig struct {
	Locale   string `toml:"locale"`
	Timezone string `toml:"timezone"`
}

// envOverrides переменные окружения, перекрывающие файл конфигурации
type envOverrides struct {
	DBHost     string `envconfig:"DB_HOST"`
	DBPort     int    `envconfig:"DB_PORT"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME"`
	LogLevel   string `envconfig:"LOG_LEVEL"`
}

// Load загружает конфигурацию из файла и переменных окружения (.env рядом с рабочей директорией)
func Load(path string) (*Config, error) {
	return LoadWithEnv(path, ".env")
}

// LoadWithEnv загружает конфигурацию, подгружая переменные из envPath.
// Отсутствующий .env не считается ошибкой.
func LoadWithEnv(path, envPath string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", envPath, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	window := domain.DefaultSlotWindow()

	return &Config{
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
			File:  "logs/salon.log",
		},
		Metrics: MetricsConfig{
			ServiceName:     "salon",
			Addr:            "127.0.0.1:9100",
			Path:            "/metrics",
			ShutdownTimeout: 5,
		},
		Booking: BookingConfig{
			SlotCapacity:    window.Capacity,
			HorizonDays:     window.HorizonDays,
			OpenHour:        window.OpenHour,
			CloseHour:       window.CloseHour,
			ExcludedWeekday: strings.ToLower(window.ExcludedWeekday.String()),
		},
		Receipts: ReceiptsConfig{
			Dir:       "recibos",
			SalonName: "Peluquería",
			Currency:  "$",
		},
		UI: UIConfig{
			Locale:   "es",
			Timezone: "Local",
		},
	}
}

func (c *Config) applyEnv() error {
	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return fmt.Errorf("config: read environment: %w", err)
	}

	if env.DBHost != "" {
		c.Database.Host = env.DBHost
	}
	if env.DBPort != 0 {
		c.Database.Port = env.DBPort
	}
	if env.DBUser != "" {
		c.Database.User = env.DBUser
	}
	if env.DBPassword != "" {
		c.Database.Password = env.DBPassword
	}
	if env.DBName != "" {
		c.Database.DBName = env.DBName
	}
	if env.LogLevel != "" {
		c.Logs.Level = env.LogLevel
	}

	return nil
}

func (c *Config) validate() error {
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("%w: database host, dbname and user are required", ErrInvalidConfig)
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		return fmt.Errorf("%w: database port %d", ErrInvalidConfig, c.Database.Port)
	}

	if _, err := c.SlotWindow(); err != nil {
		return err
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	switch c.UI.Locale {
	case "es", "en":
	default:
		return fmt.Errorf("%w: unsupported locale %q", ErrInvalidConfig, c.UI.Locale)
	}

	if c.Receipts.Dir == "" {
		return fmt.Errorf("%w: receipts dir is required", ErrInvalidConfig)
	}

	return nil
}

// DSN формирует строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   "/" + d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// SlotWindow окно записи из секции [booking]
func (c *Config) SlotWindow() (domain.SlotWindow, error) {
	weekday, err := parseWeekday(c.Booking.ExcludedWeekday)
	if err != nil {
		return domain.SlotWindow{}, err
	}

	w := domain.SlotWindow{
		OpenHour:        c.Booking.OpenHour,
		CloseHour:       c.Booking.CloseHour,
		ExcludedWeekday: weekday,
		Capacity:        c.Booking.SlotCapacity,
		HorizonDays:     c.Booking.HorizonDays,
	}
	if err := w.Validate(); err != nil {
		return domain.SlotWindow{}, fmt.Errorf("%w: booking: %v", ErrInvalidConfig, err)
	}

	return w, nil
}

// Location часовой пояс салона
func (c *Config) Location() (*time.Location, error) {
	if c.UI.Timezone == "" || strings.EqualFold(c.UI.Timezone, "local") {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(c.UI.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidConfig, c.UI.Timezone, err)
	}
	return loc, nil
}

// ShutdownTimeoutDuration таймаут остановки сервера метрик
func (m MetricsConfig) ShutdownTimeoutDuration() time.Duration {
	return time.Duration(m.ShutdownTimeout) * time.Second
}

func parseWeekday(s string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(strings.TrimSpace(s), d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown weekday %q", ErrInvalidConfig, s)
}
