package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	MQTT      MQTTConfig      `yaml:"mqtt"`
	Insight   InsightConfig   `yaml:"insight"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
//
// Port reads PORT first so the hosting platform's injected port wins;
// SERVER_PORT is the conventional name used in config files and compose.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"PORT,SERVER_PORT"        env-default:"10000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr returns the listen address in host:port form.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds PostgreSQL connection settings.
//
// Boolean fields default to false: cleanenv applies env-default to any
// zero-valued field after reading the file, so a true default could never
// be switched off from YAML.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN,DATABASE_URL"   env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds session token and password hashing settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"energymonitor"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"24h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig limits requests per client IP on the auth endpoints.
type RateLimitConfig struct {
	AuthPerMinute   int           `yaml:"auth_per_minute"  env:"RATE_LIMIT_AUTH_PER_MINUTE"  env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// MQTTConfig configures the optional event publisher.
type MQTTConfig struct {
	Enabled     bool          `yaml:"enabled"      env:"MQTT_ENABLED"      env-default:"false"`
	Broker      string        `yaml:"broker"       env:"MQTT_BROKER"`
	ClientID    string        `yaml:"client_id"    env:"MQTT_CLIENT_ID"    env-default:"energymonitor"`
	TopicPrefix string        `yaml:"topic_prefix" env:"MQTT_TOPIC_PREFIX" env-default:"energymonitor"`
	QoS         byte          `yaml:"qos"          env:"MQTT_QOS"          env-default:"1"`
	Username    string        `yaml:"username"     env:"MQTT_USERNAME"`
	Password    string        `yaml:"password"     env:"MQTT_PASSWORD"`
	Timeout     time.Duration `yaml:"timeout"      env:"MQTT_TIMEOUT"      env-default:"5s"`
}

// InsightConfig holds the analysis defaults exposed over HTTP.
type InsightConfig struct {
	CostPerKWh         float64 `yaml:"cost_per_kwh"         env:"INSIGHT_COST_PER_KWH"         env-default:"0.15"`
	DefaultHistoryDays int     `yaml:"default_history_days" env:"INSIGHT_DEFAULT_HISTORY_DAYS" env-default:"14"`
	MaxHistoryDays     int     `yaml:"max_history_days"     env:"INSIGHT_MAX_HISTORY_DAYS"     env-default:"365"`
	DefaultWeeks       int     `yaml:"default_weeks"        env:"INSIGHT_DEFAULT_WEEKS"        env-default:"4"`
	MaxWeeks           int     `yaml:"max_weeks"            env:"INSIGHT_MAX_WEEKS"            env-default:"12"`
}
