// Package config предоставляет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// EnvProduction значение NODE_ENV, при котором cookie выставляется с флагом Secure.
const EnvProduction = "production"

// Config общая структура для хранения настроек
type Config struct {
	Env             string `yaml:"env" env:"NODE_ENV" env-default:"development"`
	ClientOrigin    string `yaml:"client_origin" env:"CLIENT_ORIGIN" env-default:"http://localhost:3000"`
	BcryptCost      int    `yaml:"bcrypt_cost" env:"BCRYPT_COST" env-default:"10"`
	Mongo           `yaml:"mongo"`
	Stripe          `yaml:"stripe"`
	JWTToken        `yaml:"jwttoken"`
	HTTPServer      `yaml:"http_server"`
	RedisConnection `yaml:"redis_connection"`
	Entitlement     `yaml:"entitlement"`
}

// Mongo структура для настройки подключения к MongoDB
type Mongo struct {
	MongoURI       string        `yaml:"uri" env:"MONGO_URI" env-required:"true"`
	MongoDatabase  string        `yaml:"database" env:"MONGO_DATABASE" env-default:"highschoolprep"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"MONGO_CONNECT_TIMEOUT" env-default:"10s"`
}

// Stripe структура для настройки платёжного шлюза
type Stripe struct {
	StripeAPIKey        string `yaml:"api_key" env:"STRIPE_API_KEY"`
	StripeWebhookSecret string `yaml:"webhook_secret" env:"STRIPE_WEBHOOK_SECRET"`
	// StripeBackendURL переопределяет адрес API, пустое значение означает боевой api.stripe.com.
	StripeBackendURL string `yaml:"backend_url" env:"STRIPE_BACKEND_URL"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:":5000"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env:"HTTP_TIMEOUT" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// RedisConnection структура для настройки подключения к redis.
// Пустой адрес отключает кэш каталога.
type RedisConnection struct {
	RedisAddress     string        `yaml:"addressredis" env:"REDIS_ADDRESS"`
	RedisPassword    string        `yaml:"password" env:"REDIS_PASSWORD"`
	RedisUser        string        `yaml:"user" env:"REDIS_USER"`
	RedisDB          int           `yaml:"db" env:"REDIS_DB"`
	RedisMaxRetries  int           `yaml:"max_retries" env:"REDIS_MAX_RETRIES"`
	RedisDialTimeout time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT"`
	RedisTimeout     time.Duration `yaml:"timeoutredis" env:"REDIS_TIMEOUT"`
	CacheTTL         time.Duration `yaml:"cache_ttl" env:"CACHE_TTL" env-default:"5m"`
}

// JWTToken структура для работы с jwt-токеном
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET" env-required:"true"`
	TokenTTL     time.Duration `yaml:"token_ttl" env:"JWT_TTL" env-default:"720h"`
}

// Entitlement структура для настройки политики срока премиума
type Entitlement struct {
	DurationPolicy string `yaml:"duration_policy" env:"ENTITLEMENT_DURATION_POLICY" env-default:"fixed"`
}

// Load читает конфиг из файла CONFIG_PATH, если он задан, иначе только из переменных окружения.
func Load() (*Config, error) {
	const op = "config.Load"
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return &cfg, nil
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: file %s does not exist", op, configPath)
	}
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

// MustLoad функция для загрузки конфига, завершает процесс при ошибке
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

// IsProduction сообщает, запущен ли сервис в боевом окружении.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"ClientOrigin: %s\n"+
			"Mongo:\n"+
			"  Database: %s\n"+
			"  ConnectTimeout: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  DB: %d\n"+
			"  CacheTTL: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"JWTToken:\n"+
			"  TokenTTL: %s\n"+
			"Entitlement:\n"+
			"  DurationPolicy: %s\n",
		c.Env,
		c.ClientOrigin,
		c.MongoDatabase,
		c.ConnectTimeout,
		c.RedisAddress,
		c.RedisDB,
		c.CacheTTL,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.TokenTTL,
		c.DurationPolicy,
	)
}
