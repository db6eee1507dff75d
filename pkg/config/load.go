package config

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads the first env file found among envFilePath (searching parent
// directories) and then builds the config from the process environment.
// Variables already set in the environment win over file values.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	if len(envFilePath) == 0 {
		envFilePath = []string{".env"}
	}
	if path, ok := loadFirstEnvFile(logger, envFilePath); ok {
		logger.Info("Loaded environment file", "path", path)
	} else {
		logger.Info("No environment file loaded, using process environment", "tried", envFilePath)
	}
	return loadFromEnv()
}

func loadFirstEnvFile(logger *slog.Logger, candidates []string) (string, bool) {
	for _, name := range candidates {
		path, err := FindEnvTest(name)
		if err != nil {
			logger.Debug("Environment file not found", "name", name)
			continue
		}
		if err := godotenv.Load(path); err != nil {
			logger.Warn("Failed to load environment file", "path", path, "error", err)
			continue
		}
		return path, true
	}
	return "", false
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}

	slog.Default().Info("App config loaded",
		"env", cfg.Env,
		"port", cfg.Server.Port,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
		"db", maskValue(cfg.DB.Url),
		"auth_required", cfg.Auth.Required,
		"auth_jwt_secret", maskValue(cfg.Auth.Jwt.Secret),
		"auth_jwt_expiry", cfg.Auth.Jwt.Expiry,
		"redis", maskValue(cfg.Redis.URL),
		"kyc_cache_ttl", cfg.Cache.KYCTTL,
		"event_bus", cfg.EventBus.Driver,
	)
	return &cfg, nil
}

func maskValue(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}
