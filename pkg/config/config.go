package config

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/iancoleman/strcase"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	AuthModeStatic = "static"
	AuthModeHashed = "hashed"
	AuthModeJWT    = "jwt"
)

const (
	configFileENV     = "CONFIG_FILE"
	defaultConfigFile = "/config/catalog.yaml"
)

type Config struct {
	DatabaseDriver            string        `koanf:"database_driver" default:"sqlite" validate:"oneof=sqlite postgres"`
	DatabaseFilePath          string        `koanf:"database_file_path" validate:"required_if=DatabaseDriver sqlite"`
	DatabaseURL               string        `koanf:"database_url" validate:"required_if=DatabaseDriver postgres"`
	DatabaseDebug             bool          `koanf:"database_debug"`
	DatabaseConnectRetryCount int           `koanf:"database_connect_retry_count" default:"5"`
	DatabaseConnectRetryDelay time.Duration `koanf:"database_connect_retry_delay" default:"2s"`
	DatabaseBusyTimeout       time.Duration `koanf:"database_busy_timeout" default:"5s"`
	DatabaseMaxRetries        int           `koanf:"database_max_retries" default:"5"`
	ServerHost                string        `koanf:"server_host" default:"0.0.0.0"`
	ServerPort                int           `koanf:"server_port" default:"8000"`

	// AuthMode selects how the credential in the X-API-Key header is checked.
	AuthMode   string `koanf:"auth_mode" default:"static" validate:"oneof=static hashed jwt"`
	APIKey     string `koanf:"api_key" validate:"required_if=AuthMode static"`
	APIKeyHash string `koanf:"api_key_hash" validate:"required_if=AuthMode hashed"`
	JWTSecret  string `koanf:"jwt_secret" validate:"required_if=AuthMode jwt"`
}

// New loads the config from, in increasing order of precedence: struct
// defaults, the YAML file named by CONFIG_FILE, and environment variables
// (optionally seeded from a .env file).
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to load .env")
	}

	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, errors.WithStack(err)
	}

	k := koanf.New(".")

	configFile := os.Getenv(configFileENV)
	if configFile == "" {
		configFile = defaultConfigFile
	}
	if _, err := os.Stat(configFile); err == nil {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed to load config file: %s", configFile)
		}
	}

	err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		return strings.ToLower(key), value
	}), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewForTest returns a config backed by an in-memory database and a fixed API
// key.
func NewForTest() *Config {
	cfg := &Config{}
	_ = defaults.Set(cfg)
	cfg.DatabaseFilePath = ":memory:"
	cfg.DatabaseConnectRetryCount = 1
	cfg.DatabaseConnectRetryDelay = 0
	cfg.ServerHost = "127.0.0.1"
	cfg.APIKey = "test-api-key"
	return cfg
}

func validate(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return errors.WithStack(err)
	}

	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		key := toSnakeCase(fe.Field())
		envName := strings.ToUpper(key)
		switch fe.Tag() {
		case "required_if":
			msgs = append(msgs, fmt.Sprintf("missing required config: %s (%s)", envName, key))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("invalid config value for %s (%s): must be one of %s", envName, key, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("invalid config value for %s (%s)", envName, key))
		}
	}

	return errors.New(strings.Join(msgs, "; "))
}

func toSnakeCase(s string) string {
	return strcase.ToSnake(s)
}
