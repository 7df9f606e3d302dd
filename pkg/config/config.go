package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Pricing   PricingConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if err := cfg.Pricing.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MORU_APP_ENV" required:"true"`
	Port         string `envconfig:"MORU_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MORU_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MORU_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"MORU_DB_DSN"`
	Driver string `envconfig:"MORU_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"MORU_DB_HOST"`
	LegacyPort     int    `envconfig:"MORU_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MORU_DB_USER"`
	LegacyPassword string `envconfig:"MORU_DB_PASSWORD"`
	LegacyName     string `envconfig:"MORU_DB_NAME"`
	LegacySSLMode  string `envconfig:"MORU_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MORU_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MORU_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MORU_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MORU_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"MORU_REDIS_URL"`
	Address      string        `envconfig:"MORU_REDIS_ADDR"`
	Password     string        `envconfig:"MORU_REDIS_PASSWORD"`
	DB           int           `envconfig:"MORU_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MORU_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MORU_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MORU_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MORU_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MORU_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type RateLimitConfig struct {
	QuoteWindow  time.Duration `envconfig:"MORU_RATE_LIMIT_QUOTE_WINDOW" default:"1m"`
	QuoteIPLimit int           `envconfig:"MORU_RATE_LIMIT_QUOTE_IP_LIMIT" default:"120"`
}

// PricingConfig tunes the default quote policies without a deploy of new code.
// Zero values fall through to the engine defaults.
type PricingConfig struct {
	QtyMin            int  `envconfig:"MORU_PRICING_QTY_MIN" default:"1"`
	QtyMax            int  `envconfig:"MORU_PRICING_QTY_MAX" default:"99"`
	OneValuePerOption bool `envconfig:"MORU_PRICING_ONE_VALUE_PER_OPTION" default:"true"`
}

func (p PricingConfig) validate() error {
	if p.QtyMin < 1 {
		return fmt.Errorf("%s must be at least 1", EnvPricingQtyMin)
	}
	if p.QtyMax < p.QtyMin {
		return fmt.Errorf("%s must be >= %s", EnvPricingQtyMax, EnvPricingQtyMin)
	}
	return nil
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
