package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config содержит настройки приложения
type Config struct {
	APIBaseURL string // базовый URL REST API (API Gateway)
	UserPoolID string // ID пула пользователей Cognito
	ClientID   string // ID клиента приложения Cognito
	Region     string // регион AWS
	AdminGroup string // имя группы Cognito для администраторов
	StatePath  string // путь к локальному файлу состояния
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	config := &Config{
		APIBaseURL: getEnv("API_BASE_URL", "https://jej5dh7680.execute-api.me-central-1.amazonaws.com"),
		UserPoolID: getEnv("COGNITO_USER_POOL_ID", "me-central-1_LOdxvPm2z"),
		ClientID:   getEnv("COGNITO_CLIENT_ID", "3202mcqviakvekej1323avsvh"),
		Region:     getEnv("COGNITO_REGION", "me-central-1"),
		AdminGroup: getEnv("ADMIN_GROUP", "Admin"),
		StatePath:  getEnv("STATE_PATH", defaultStatePath()),
	}

	// Проверяем обязательные переменные
	if config.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}
	if config.ClientID == "" {
		return nil, fmt.Errorf("COGNITO_CLIENT_ID is required")
	}
	if config.Region == "" {
		return nil, fmt.Errorf("COGNITO_REGION is required")
	}

	return config, nil
}

// defaultStatePath возвращает путь к файлу состояния в домашней директории
func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".samihaproj.json"
	}
	return filepath.Join(home, ".samihaproj.json")
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
