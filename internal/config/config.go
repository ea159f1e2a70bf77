package config

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds all deployment configuration, read from the environment.
type Config struct {
	MongoURI     string
	DatabaseName string
	RedisAddr    string
	HTTPPort     string
	JWTSecret    string
	LogLevel     string
	LogFormat    string
}

// Load reads configuration from the environment, after loading a local
// .env file when one exists.
func Load() *Config {
	// Missing .env is the normal case in deployed environments.
	_ = godotenv.Load()

	return &Config{
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DatabaseName: getEnv("DATABASE_NAME", "trivity"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		JWTSecret:    getEnv("JWT_SECRET", "dev-secret-key-change-in-production"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
	}
}

// NewLogger builds the process logger from the config.
func (c *Config) NewLogger() (*zap.Logger, error) {
	var zapCfg zap.Config
	if c.LogFormat == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	zapCfg.Level.SetLevel(level)

	return zapCfg.Build()
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
