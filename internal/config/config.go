package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-projector/internal/normalizer"
)

// ConfigFileVariable names the environment variable holding an optional YAML
// config file. Environment variables override values from the file.
const ConfigFileVariable = "CONFIG_FILE"

type Config struct {
	PostgresAddress  string `koanf:"postgres_address"`
	PostgresPort     string `koanf:"postgres_port"`
	PostgresDB       string `koanf:"postgres_db"`
	PostgresUsername string `koanf:"postgres_username"`
	PostgresPassword string `koanf:"postgres_password"`

	HTTPPort        string `koanf:"http_port"`
	LogLevel        string `koanf:"log_level"`
	OperatorWorkers int    `koanf:"operator_workers"`
	ImportPolarity  string `koanf:"import_polarity"`

	// Polarity is ImportPolarity parsed.
	Polarity normalizer.Polarity `koanf:"-"`
}

// In all cases the default behavior should be for the docker compose setup
var defaults = map[string]any{
	"postgres_address":  "localhost",
	"postgres_port":     "5433",
	"postgres_db":       "postgres",
	"postgres_username": "postgres",
	"postgres_password": "testpassword",
	"http_port":         "9446",
	"log_level":         "info",
	"operator_workers":  4,
	"import_polarity":   "flag",
}

func ProcessEnvironmentVariables() (*Config, error) {
	return Load(os.Getenv(ConfigFileVariable))
}

// Load layers defaults, the YAML file at path (skipped when empty) and the
// environment, then validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := Config{}
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps POSTGRES_PORT to postgres_port and drops variables that are not
// config keys.
func envKey(name string) string {
	key := strings.ToLower(name)
	if _, ok := defaults[key]; !ok {
		return ""
	}
	return key
}

func (c *Config) validate() error {
	var errs []error

	polarity, err := normalizer.ParsePolarity(c.ImportPolarity)
	if err != nil {
		errs = append(errs, fmt.Errorf("import_polarity: %w", err))
	}
	c.Polarity = polarity

	if c.OperatorWorkers < 1 {
		errs = append(errs, fmt.Errorf("operator_workers must be at least 1, got %d", c.OperatorWorkers))
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}

	if c.HTTPPort == "" {
		errs = append(errs, errors.New("http_port must not be empty"))
	}

	return errors.Join(errs...)
}
