package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Logger   LoggerConfig
	Upload   UploadConfig
	WhatsApp WhatsAppConfig
	Currency CurrencyConfig
	Admin    AdminConfig
}

type ServerConfig struct {
	Port        string
	BaseURL     string
	FrontendURL string
}

type DatabaseConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // minutes
}

type JWTConfig struct {
	Secret   string
	TTLHours int
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

type UploadConfig struct {
	Dir string
}

type WhatsAppConfig struct {
	Number string
}

type CurrencyConfig struct {
	// Static display rate: how many IDR one MYR buys.
	MYRToIDRRate float64
}

type AdminConfig struct {
	Username string
	Password string
	Email    string
}

// Load reads configuration from environment variables with sane defaults.
// Call godotenv.Load() before this if a .env file should be honored.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "5000"),
			BaseURL:     getEnv("BASE_URL", "http://localhost:5000"),
			FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			DSN:             getEnv("DB_DSN", "root:root@tcp(127.0.0.1:3306)/topupstore?parseTime=true"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: getEnvInt("DB_CONN_MAX_LIFETIME", 5),
		},
		JWT: JWTConfig{
			Secret:   getEnv("JWT_SECRET", "secret"),
			TTLHours: getEnvInt("JWT_TTL_HOURS", 24),
		},
		Logger: LoggerConfig{
			Level:    getEnv("LOGGER_LEVEL", "info"),
			Encoding: getEnv("LOGGER_ENCODING", "console"),
		},
		Upload: UploadConfig{
			Dir: getEnv("UPLOAD_DIR", "./public/uploads"),
		},
		WhatsApp: WhatsAppConfig{
			Number: getEnv("WHATSAPP_NUMBER", "6281234567890"),
		},
		Currency: CurrencyConfig{
			MYRToIDRRate: getEnvFloat("MYR_TO_IDR_RATE", 3400),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Password: getEnv("ADMIN_PASSWORD", "admin123"),
			Email:    getEnv("ADMIN_EMAIL", "admin@example.com"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
