package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "gestionstocke"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	Pricing PricingConfig
	Sync    SyncConfig
	Content ContentConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Pricing.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"GESTIONSTOCKE_APP_ENV" required:"true"`
	Port         string `envconfig:"GESTIONSTOCKE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"GESTIONSTOCKE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GESTIONSTOCKE_LOG_WARN_STACK" default:"false"`
	AutoMigrate  bool   `envconfig:"GESTIONSTOCKE_AUTO_MIGRATE" default:"false"`
	StockPolicy  string `envconfig:"GESTIONSTOCKE_CART_STOCK_POLICY" default:"ignore"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN             string        `envconfig:"GESTIONSTOCKE_DB_DSN" required:"true"`
	MaxOpenConns    int           `envconfig:"GESTIONSTOCKE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"GESTIONSTOCKE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"GESTIONSTOCKE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"GESTIONSTOCKE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"GESTIONSTOCKE_REDIS_URL"`
	Address      string        `envconfig:"GESTIONSTOCKE_REDIS_ADDR"`
	Password     string        `envconfig:"GESTIONSTOCKE_REDIS_PASSWORD"`
	DB           int           `envconfig:"GESTIONSTOCKE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"GESTIONSTOCKE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"GESTIONSTOCKE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"GESTIONSTOCKE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GESTIONSTOCKE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"GESTIONSTOCKE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// PricingConfig carries the admin-controlled pricing knobs used to derive
// cart summaries. Values are read-only inputs to the derivation.
type PricingConfig struct {
	DeliveryPrice         float64 `envconfig:"GESTIONSTOCKE_PRICING_DELIVERY_PRICE" default:"5.99"`
	FreeShippingThreshold float64 `envconfig:"GESTIONSTOCKE_PRICING_FREE_SHIPPING_THRESHOLD" default:"100"`
	TaxRate               float64 `envconfig:"GESTIONSTOCKE_PRICING_TAX_RATE" default:"0.2"`
	BannerText            string  `envconfig:"GESTIONSTOCKE_PRICING_BANNER_TEXT" default:"Livraison offerte dès 100€"`
	BannerActive          bool    `envconfig:"GESTIONSTOCKE_PRICING_BANNER_ACTIVE" default:"true"`
}

func (p PricingConfig) validate() error {
	if p.DeliveryPrice < 0 {
		return fmt.Errorf("delivery price must be non-negative")
	}
	if p.TaxRate < 0 || p.TaxRate >= 1 {
		return fmt.Errorf("tax rate must be a fraction in [0,1)")
	}
	return nil
}

// SyncConfig drives the debounced cart mirror.
type SyncConfig struct {
	Endpoint      string        `envconfig:"GESTIONSTOCKE_SYNC_ENDPOINT"`
	CSRFToken     string        `envconfig:"GESTIONSTOCKE_SYNC_CSRF_TOKEN"`
	DebounceDelay time.Duration `envconfig:"GESTIONSTOCKE_SYNC_DEBOUNCE" default:"500ms"`
	HTTPTimeout   time.Duration `envconfig:"GESTIONSTOCKE_SYNC_HTTP_TIMEOUT" default:"5s"`
}

// ContentConfig drives the persisted site-content document.
type ContentConfig struct {
	StorageKey    string        `envconfig:"GESTIONSTOCKE_CONTENT_STORAGE_KEY" default:"siteContent"`
	DebounceDelay time.Duration `envconfig:"GESTIONSTOCKE_CONTENT_DEBOUNCE" default:"300ms"`
}
