package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the full process configuration: defaults, overridden by an
// optional YAML file, overridden by KIOSK_* environment variables
// (KIOSK_HTTP_ADDR, KIOSK_MANAGER_PASSWORD_HASH, ...).
type Config struct {
	HTTPAddr    string   `koanf:"http_addr"`
	DataDir     string   `koanf:"data_dir"`
	LogPath     string   `koanf:"log_path"`
	CORSOrigins []string `koanf:"cors_origins"`

	// ManagerPasswordHash is a bcrypt hash of the manager password. When
	// empty, main derives one from DevManagerPassword and logs a warning.
	ManagerPasswordHash string `koanf:"manager_password_hash"`
	JWTSecret           string `koanf:"jwt_secret"`
}

const envPrefix = "KIOSK_"

// DevManagerPassword is the fallback manager password for local development
// when no manager_password_hash is configured.
const DevManagerPassword = "gerente"

// Load reads configuration, layering file and env over defaults. An empty
// path skips the file layer; an unreadable or malformed file is an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"http_addr":             ":8081",
		"data_dir":              "./data",
		"log_path":              "./logs/app.log",
		"cors_origins":          []string{"http://localhost:5173"},
		"manager_password_hash": "",
		"jwt_secret":            "dev-secret-change-in-production",
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %q: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("load env config: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
