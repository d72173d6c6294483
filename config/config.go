package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddr       string
	GinMode          string
	CORSAllowOrigins []string

	// Share links
	ShareBaseURL   string
	QRCodeEndpoint string
	QRCodeSize     int

	// Simulation timings
	GenerationDelay         time.Duration
	TrainingTickInterval    time.Duration
	TrainingCompletionDelay time.Duration
	GeneratorSeed           int64

	// Sessions
	SessionIdleTimeout   time.Duration
	SessionSweepInterval time.Duration

	// Log configuration
	LogLevel      string
	LogFilename   string
	LogMaxSize    int
	LogMaxBackups int
	LogMaxAge     int
	LogCompress   bool
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		// Ignore error if .env file is not found
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return &Config{
		ServerAddr:       getEnv("SERVER_ADDR", ":8080"),
		GinMode:          getEnv("GIN_MODE", "release"),
		CORSAllowOrigins: getEnvAsList("CORS_ALLOW_ORIGINS", []string{"http://localhost:5173", "http://localhost:8080"}),

		ShareBaseURL:   strings.TrimRight(getEnv("SHARE_BASE_URL", "https://aimodelgenerator.app"), "/"),
		QRCodeEndpoint: getEnv("QR_CODE_ENDPOINT", "https://api.qrserver.com/v1/create-qr-code/"),
		QRCodeSize:     getEnvAsInt("QR_CODE_SIZE", 200),

		GenerationDelay:         getEnvAsDuration("GENERATION_DELAY", 2*time.Second),
		TrainingTickInterval:    getEnvAsDuration("TRAINING_TICK_INTERVAL", 1500*time.Millisecond),
		TrainingCompletionDelay: getEnvAsDuration("TRAINING_COMPLETION_DELAY", time.Second),
		GeneratorSeed:           int64(getEnvAsInt("GENERATOR_SEED", 0)),

		SessionIdleTimeout:   getEnvAsDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
		SessionSweepInterval: getEnvAsDuration("SESSION_SWEEP_INTERVAL", time.Minute),

		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		LogFilename:   getEnv("LOG_FILENAME", "logs/app.log"),
		LogMaxSize:    getEnvAsInt("LOG_MAX_SIZE", 100),
		LogMaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 3),
		LogMaxAge:     getEnvAsInt("LOG_MAX_AGE", 28),
		LogCompress:   getEnvAsBool("LOG_COMPRESS", true),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := time.ParseDuration(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

// getEnvAsList splits a comma separated value, dropping empty entries.
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var values []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
