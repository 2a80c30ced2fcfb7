// Package config carga la configuración del servicio desde un YAML y permite
// sobreescribirla con variables de entorno.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Env     string `yaml:"env"` // dev | prod
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	Server struct {
		Addr               string        `yaml:"addr"`
		CORSAllowedOrigins []string      `yaml:"cors_allowed_origins"`
		ReadTimeout        time.Duration `yaml:"read_timeout"`
		WriteTimeout       time.Duration `yaml:"write_timeout"`
		ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`

	Storage struct {
		Driver   string `yaml:"driver"` // memory | postgres
		DSN      string `yaml:"dsn"`
		Migrate  bool   `yaml:"migrate"`
		Postgres struct {
			MaxOpenConns int `yaml:"max_open_conns"`
			MaxIdleConns int `yaml:"max_idle_conns"`
		} `yaml:"postgres"`
	} `yaml:"storage"`

	Cache struct {
		Kind  string        `yaml:"kind"` // memory | redis | none
		TTL   time.Duration `yaml:"ttl"`
		Redis struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"cache"`

	JWT struct {
		Issuer string        `yaml:"issuer"`
		Secret string        `yaml:"secret"`
		TTL    time.Duration `yaml:"ttl"`
	} `yaml:"jwt"`

	Password struct {
		BcryptCost int `yaml:"bcrypt_cost"`
	} `yaml:"password"`

	// SMTP sends the welcome mail. An empty Host disables it.
	SMTP struct {
		Host               string `yaml:"host"`
		Port               int    `yaml:"port"`
		Username           string `yaml:"username"`
		Password           string `yaml:"password"`
		From               string `yaml:"from"`
		TLS                string `yaml:"tls"` // auto | ssl | none
		InsecureSkipVerify bool   `yaml:"insecure_skip_verify"`
	} `yaml:"smtp"`
}

// Load lee path, aplica overrides de entorno, completa defaults y valida.
// Si el archivo no existe no es error: se usan solo defaults y entorno.
func Load(path string) (*Config, error) {
	var c Config
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(b, &c); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	c.applyEnvOverrides()
	c.setDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) setDefaults() {
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.App.Name == "" {
		c.App.Name = "postwall"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15 * time.Second
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "memory"
	}
	if c.Cache.Kind == "" {
		c.Cache.Kind = "memory"
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 30 * time.Second
	}
	if c.Cache.Redis.Prefix == "" {
		c.Cache.Redis.Prefix = "postwall:"
	}
	if c.JWT.Issuer == "" {
		c.JWT.Issuer = "postwall"
	}
	if c.JWT.TTL == 0 {
		c.JWT.TTL = 7 * 24 * time.Hour
	}
	if c.Password.BcryptCost == 0 {
		c.Password.BcryptCost = 10
	}
	if c.SMTP.Port == 0 {
		c.SMTP.Port = 587
	}
	if c.SMTP.TLS == "" {
		c.SMTP.TLS = "auto"
	}
}

func getEnvStr(key string) (string, bool) {
	v := os.Getenv(key)
	return v, v != ""
}

func getEnvInt(key string) (int, bool) {
	if s, ok := getEnvStr(key); ok {
		if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return i, true
		}
	}
	return 0, false
}

func getEnvBool(key string) (bool, bool) {
	if s, ok := getEnvStr(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			return b, true
		}
	}
	return false, false
}

func getEnvDur(key string) (time.Duration, bool) {
	if s, ok := getEnvStr(key); ok {
		if d, err := time.ParseDuration(strings.TrimSpace(s)); err == nil {
			return d, true
		}
	}
	return 0, false
}

func getEnvCSV(key string) ([]string, bool) {
	s, ok := getEnvStr(key)
	if !ok {
		return nil, false
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out, true
}

// applyEnvOverrides: el entorno tiene prioridad sobre el archivo. Valores
// numéricos o duraciones que no parsean se ignoran.
func (c *Config) applyEnvOverrides() {
	if v, ok := getEnvStr("APP_ENV"); ok {
		c.App.Env = strings.ToLower(v)
	}
	if v, ok := getEnvStr("SERVICE_VERSION"); ok {
		c.App.Version = v
	}
	if v, ok := getEnvStr("LOG_LEVEL"); ok {
		c.Log.Level = strings.ToLower(v)
	}

	if v, ok := getEnvStr("SERVER_ADDR"); ok {
		c.Server.Addr = v
	}
	if v, ok := getEnvCSV("SERVER_CORS_ALLOWED_ORIGINS"); ok {
		c.Server.CORSAllowedOrigins = v
	}
	if v, ok := getEnvDur("SERVER_SHUTDOWN_TIMEOUT"); ok {
		c.Server.ShutdownTimeout = v
	}

	if v, ok := getEnvStr("STORAGE_DRIVER"); ok {
		c.Storage.Driver = strings.ToLower(v)
	}
	if v, ok := getEnvStr("STORAGE_DSN"); ok {
		c.Storage.DSN = v
	}
	if v, ok := getEnvBool("STORAGE_MIGRATE"); ok {
		c.Storage.Migrate = v
	}
	if v, ok := getEnvInt("POSTGRES_MAX_OPEN_CONNS"); ok {
		c.Storage.Postgres.MaxOpenConns = v
	}
	if v, ok := getEnvInt("POSTGRES_MAX_IDLE_CONNS"); ok {
		c.Storage.Postgres.MaxIdleConns = v
	}

	if v, ok := getEnvStr("CACHE_KIND"); ok {
		c.Cache.Kind = strings.ToLower(v)
	}
	if v, ok := getEnvDur("CACHE_TTL"); ok {
		c.Cache.TTL = v
	}
	if v, ok := getEnvStr("REDIS_ADDR"); ok {
		c.Cache.Redis.Addr = v
	}
	if v, ok := getEnvStr("REDIS_PASSWORD"); ok {
		c.Cache.Redis.Password = v
	}
	if v, ok := getEnvInt("REDIS_DB"); ok {
		c.Cache.Redis.DB = v
	}
	if v, ok := getEnvStr("REDIS_PREFIX"); ok {
		c.Cache.Redis.Prefix = v
	}

	if v, ok := getEnvStr("JWT_ISSUER"); ok {
		c.JWT.Issuer = v
	}
	if v, ok := getEnvStr("JWT_SECRET"); ok {
		c.JWT.Secret = v
	}
	if v, ok := getEnvDur("JWT_TTL"); ok {
		c.JWT.TTL = v
	}

	if v, ok := getEnvInt("BCRYPT_COST"); ok {
		c.Password.BcryptCost = v
	}

	if v, ok := getEnvStr("SMTP_HOST"); ok {
		c.SMTP.Host = v
	}
	if v, ok := getEnvInt("SMTP_PORT"); ok {
		c.SMTP.Port = v
	}
	if v, ok := getEnvStr("SMTP_USERNAME"); ok {
		c.SMTP.Username = v
	}
	if v, ok := getEnvStr("SMTP_PASSWORD"); ok {
		c.SMTP.Password = v
	}
	if v, ok := getEnvStr("SMTP_FROM"); ok {
		c.SMTP.From = v
	}
	if v, ok := getEnvStr("SMTP_TLS"); ok {
		c.SMTP.TLS = strings.ToLower(v)
	}
	if v, ok := getEnvBool("SMTP_INSECURE_SKIP_VERIFY"); ok {
		c.SMTP.InsecureSkipVerify = v
	}
}

const minProdSecretLen = 32

func (c *Config) Validate() error {
	var errs []error

	switch c.App.Env {
	case "dev", "prod":
	default:
		errs = append(errs, fmt.Errorf("app.env must be dev or prod, got %q", c.App.Env))
	}

	switch c.Storage.Driver {
	case "memory":
	case "postgres":
		if strings.TrimSpace(c.Storage.DSN) == "" {
			errs = append(errs, errors.New("storage.dsn is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("storage.driver must be memory or postgres, got %q", c.Storage.Driver))
	}

	switch c.Cache.Kind {
	case "memory", "none":
	case "redis":
		if c.Cache.Redis.Addr == "" {
			errs = append(errs, errors.New("cache.redis.addr is required for the redis cache"))
		}
	default:
		errs = append(errs, fmt.Errorf("cache.kind must be memory, redis or none, got %q", c.Cache.Kind))
	}

	switch secret := strings.TrimSpace(c.JWT.Secret); {
	case secret == "":
		errs = append(errs, errors.New("jwt.secret is required"))
	case c.App.Env == "prod" && len(secret) < minProdSecretLen:
		errs = append(errs, fmt.Errorf("jwt.secret must be at least %d bytes in prod", minProdSecretLen))
	}

	if c.Password.BcryptCost < 4 || c.Password.BcryptCost > 31 {
		errs = append(errs, fmt.Errorf("password.bcrypt_cost must be between 4 and 31, got %d", c.Password.BcryptCost))
	}

	if c.SMTP.Host != "" {
		if c.SMTP.From == "" {
			errs = append(errs, errors.New("smtp.from is required when smtp.host is set"))
		}
		switch c.SMTP.TLS {
		case "auto", "ssl", "none":
		default:
			errs = append(errs, fmt.Errorf("smtp.tls must be auto, ssl or none, got %q", c.SMTP.TLS))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
