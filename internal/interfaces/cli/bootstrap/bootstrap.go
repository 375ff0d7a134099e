// Package bootstrap loads configuration and opens the shared resources every
// CLI command needs.
package bootstrap

import (
	"fmt"
	"os"
	"strings"

	"turnero/internal/infrastructure/config"
	"turnero/internal/infrastructure/database"
	"turnero/internal/shared/biztime"
	"turnero/internal/shared/logger"
)

// Options select the environment and config file.
type Options struct {
	Env        string
	ConfigPath string
}

// ResolveEnv lets the ENV variable override the --env flag.
func (o Options) ResolveEnv() string {
	if envVar := os.Getenv("ENV"); envVar != "" {
		return envVar
	}
	return o.Env
}

// LoadConfig reads the configuration, maps the environment onto a gin mode
// and initializes the logger and business timezone.
func LoadConfig(opts Options) (*config.Config, logger.Interface, error) {
	env := opts.ResolveEnv()

	cfg, err := config.Load(env, opts.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = MapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// Init loads the configuration and opens the process database connection.
// Callers must defer database.Close.
func Init(opts Options) (*config.Config, logger.Interface, error) {
	cfg, log, err := LoadConfig(opts)
	if err != nil {
		return nil, nil, err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return cfg, log, nil
}

func MapEnvToGinMode(environment string) string {
	switch strings.ToLower(environment) {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
