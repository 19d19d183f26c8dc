package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env is the process environment the server reads at startup.
type Env struct {
	Addr               string   `env:"LARO_ADDR"`
	DBPath             string   `env:"LARO_DB" envDefault:"laro_arcade.db"`
	ConfigPath         string   `env:"LARO_CONFIG" envDefault:"laro_config.json"`
	AllowedOrigins     []string `env:"LARO_ALLOWED_ORIGINS" envSeparator:","`
	SessionSecret      string   `env:"SESSION_SECRET"`
	SecureCookie       bool     `env:"SESSION_SECURE_COOKIE"`
	GoogleClientID     string   `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string   `env:"GOOGLE_CLIENT_SECRET"`
}

// GoogleEnabled reports whether the Google code exchange can be offered.
func (e Env) GoogleEnabled() bool {
	return strings.TrimSpace(e.GoogleClientID) != "" && strings.TrimSpace(e.GoogleClientSecret) != ""
}

// LoadEnv loads a .env file from the working directory when present and
// parses the environment.
func LoadEnv() (Env, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Env{}, fmt.Errorf("load .env: %w", err)
	}
	return ParseEnv()
}

func ParseEnv() (Env, error) {
	e, err := env.ParseAs[Env]()
	if err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	origins := e.AllowedOrigins[:0]
	for _, o := range e.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	e.AllowedOrigins = origins
	return e, nil
}
