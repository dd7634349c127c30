package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port))
	}

	if strings.TrimSpace(c.Database.DSN) == "" {
		errs = append(errs, errors.New("database.dsn is required"))
	}
	if c.Database.MinConns > c.Database.MaxConns {
		errs = append(errs, fmt.Errorf("database.min_conns (%d) exceeds max_conns (%d)", c.Database.MinConns, c.Database.MaxConns))
	}

	if len(c.Auth.JWTSecret) < 32 {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret)))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("auth.password_hash_cost must be in %d..%d (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL))
	}

	if c.RateLimit.AuthPerMinute <= 0 {
		errs = append(errs, fmt.Errorf("rate_limit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute))
	}

	if err := c.MQTT.validate(); err != nil {
		errs = append(errs, fmt.Errorf("mqtt: %w", err))
	}
	if err := c.Insight.validate(); err != nil {
		errs = append(errs, fmt.Errorf("insight: %w", err))
	}

	return errors.Join(errs...)
}

func (m *MQTTConfig) validate() error {
	if !m.Enabled {
		return nil
	}
	if strings.TrimSpace(m.Broker) == "" {
		return errors.New("broker is required when enabled")
	}
	if m.QoS > 2 {
		return fmt.Errorf("qos must be 0, 1 or 2 (got %d)", m.QoS)
	}
	return nil
}

func (i *InsightConfig) validate() error {
	if i.CostPerKWh < 0 {
		return fmt.Errorf("cost_per_kwh must be >= 0 (got %v)", i.CostPerKWh)
	}
	if i.MaxHistoryDays <= 0 {
		return fmt.Errorf("max_history_days must be > 0 (got %d)", i.MaxHistoryDays)
	}
	if i.DefaultHistoryDays <= 0 || i.DefaultHistoryDays > i.MaxHistoryDays {
		return fmt.Errorf("default_history_days must be in 1..%d (got %d)", i.MaxHistoryDays, i.DefaultHistoryDays)
	}
	if i.MaxWeeks <= 0 {
		return fmt.Errorf("max_weeks must be > 0 (got %d)", i.MaxWeeks)
	}
	if i.DefaultWeeks <= 0 || i.DefaultWeeks > i.MaxWeeks {
		return fmt.Errorf("default_weeks must be in 1..%d (got %d)", i.MaxWeeks, i.DefaultWeeks)
	}
	return nil
}
