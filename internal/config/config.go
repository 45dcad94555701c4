package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string
		DSN    string
	}
	JWT struct {
		// Secrets holds the signing keys, newest first. Tokens are signed
		// with Secrets[0] and verified against every entry, so a rotated-out
		// key keeps validating outstanding tokens.
		Secrets []string
		Expiry  time.Duration
	}
}

// Load reads config from environment (FESIPOP_ prefix) and optional fesipop.yaml.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FESIPOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("fesipop")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("jwt.expiry", "24h")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")

	for _, s := range strings.Split(v.GetString("jwt.secret"), ",") {
		if s = strings.TrimSpace(s); s != "" {
			cfg.JWT.Secrets = append(cfg.JWT.Secrets, s)
		}
	}

	expiry, err := time.ParseDuration(v.GetString("jwt.expiry"))
	if err != nil {
		return nil, fmt.Errorf("invalid FESIPOP_JWT_EXPIRY: %w", err)
	}
	cfg.JWT.Expiry = expiry

	if cfg.DB.Driver == "" {
		return nil, fmt.Errorf("FESIPOP_DB_DRIVER is required (sqlite3, mysql, postgres)")
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("FESIPOP_DB_DSN is required")
	}
	if len(cfg.JWT.Secrets) == 0 {
		return nil, fmt.Errorf("FESIPOP_JWT_SECRET is required")
	}

	return cfg, nil
}
