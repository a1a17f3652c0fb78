package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Geocoder GeocoderConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Session  SessionConfig
	Admin    AdminConfig
	Map      MapConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	AllowOrigins string
}

type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type GeocoderConfig struct {
	Provider   string
	GoogleURL  string
	APIKey     string
	MapboxURL  string
	MapboxKey  string
	Timeout    time.Duration
	MaxWorkers int
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	GeocodeCacheTTL time.Duration
}

type SessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

type AdminConfig struct {
	Token string
}

type MapConfig struct {
	DefaultLat  float64
	DefaultLng  float64
	DefaultZoom int
}

type LogConfig struct {
	Level string
}

const (
	GeocoderGoogle  = "google"
	GeocoderBackend = "backend"
	GeocoderMapbox  = "mapbox"
)

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile - как Load, но с явным путем к файлу. Отсутствующий файл не ошибка.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("APP_HOST"),
			Port:         v.GetInt("APP_PORT"),
			Env:          v.GetString("APP_ENV"),
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Backend: BackendConfig{
			BaseURL: strings.TrimRight(v.GetString("BACKEND_BASE_URL"), "/"),
			Timeout: time.Duration(v.GetInt("BACKEND_TIMEOUT")) * time.Second,
		},
		Geocoder: GeocoderConfig{
			Provider:   strings.ToLower(v.GetString("GEOCODER_PROVIDER")),
			GoogleURL:  v.GetString("GOOGLE_GEOCODING_URL"),
			APIKey:     v.GetString("GOOGLE_API_KEY"),
			MapboxURL:  strings.TrimRight(v.GetString("MAPBOX_BASE_URL"), "/"),
			MapboxKey:  v.GetString("MAPBOX_ACCESS_TOKEN"),
			Timeout:    time.Duration(v.GetInt("GEOCODER_TIMEOUT")) * time.Second,
			MaxWorkers: v.GetInt("GEOCODER_MAX_WORKERS"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			GeocodeCacheTTL: time.Duration(v.GetInt("GEOCODE_CACHE_TTL")) * time.Second,
		},
		Session: SessionConfig{
			TTL:           time.Duration(v.GetInt("SESSION_TTL")) * time.Second,
			SweepInterval: time.Duration(v.GetInt("SESSION_SWEEP_INTERVAL")) * time.Second,
		},
		Admin: AdminConfig{
			Token: v.GetString("ADMIN_TOKEN"),
		},
		Map: MapConfig{
			DefaultLat:  v.GetFloat64("MAP_DEFAULT_LAT"),
			DefaultLng:  v.GetFloat64("MAP_DEFAULT_LNG"),
			DefaultZoom: v.GetInt("MAP_DEFAULT_ZOOM"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_HOST", "0.0.0.0")
	v.SetDefault("APP_PORT", 3000)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("BACKEND_BASE_URL", "http://localhost:5000")
	v.SetDefault("BACKEND_TIMEOUT", 10)
	v.SetDefault("GEOCODER_PROVIDER", GeocoderGoogle)
	v.SetDefault("GOOGLE_GEOCODING_URL", "https://maps.googleapis.com/maps/api/geocode/json")
	v.SetDefault("MAPBOX_BASE_URL", "https://api.mapbox.com")
	v.SetDefault("GEOCODER_TIMEOUT", 5)
	v.SetDefault("GEOCODER_MAX_WORKERS", 8)
	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("GEOCODE_CACHE_TTL", 7*24*3600)
	v.SetDefault("SESSION_TTL", 1800)
	v.SetDefault("SESSION_SWEEP_INTERVAL", 60)
	v.SetDefault("MAP_DEFAULT_LAT", 48.8566)
	v.SetDefault("MAP_DEFAULT_LNG", 2.3522)
	v.SetDefault("MAP_DEFAULT_ZOOM", 13)
}

func (c *Config) validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("BACKEND_BASE_URL is required")
	}
	switch c.Geocoder.Provider {
	case GeocoderGoogle, GeocoderBackend, GeocoderMapbox:
	default:
		return fmt.Errorf("unknown GEOCODER_PROVIDER %q", c.Geocoder.Provider)
	}
	if c.Geocoder.MaxWorkers <= 0 {
		c.Geocoder.MaxWorkers = 1
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}
