package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию сервера калькуляторов
type Config struct {
	Port            int
	MaxPrincipal    float64
	MaxRate         float64
	MaxTermYears    int
	MaxExtraPayment float64
	MaxIncome       float64
	RedisAddr       string
	SavedNamespace  string
	OTELEndpoint    string
	OTELServiceName string
	LogLevel        string
	AllowedOrigins  []string
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnvInt("PORT", 8000),
		MaxPrincipal:    getEnvFloat("MAX_PRINCIPAL", 1e9),
		MaxRate:         getEnvFloat("MAX_RATE", 100),
		MaxTermYears:    getEnvInt("MAX_TERM_YEARS", 50),
		MaxExtraPayment: getEnvFloat("MAX_EXTRA_PAYMENT", 1e8),
		MaxIncome:       getEnvFloat("MAX_INCOME", 1e9),
		RedisAddr:       getEnvString("REDIS_ADDR", ""),
		SavedNamespace:  getEnvString("SAVED_NAMESPACE", "calculators"),
		OTELEndpoint:    getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName: getEnvString("OTEL_SERVICE_NAME", "calculators-server"),
		LogLevel:        getEnvString("LOG_LEVEL", "INFO"),
		AllowedOrigins:  getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvList разбирает список значений через запятую
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

// SavedKey возвращает ключ хранилища для списка сохраненных калькуляторов
func (c *Config) SavedKey() string {
	return c.SavedNamespace + ":saved"
}
