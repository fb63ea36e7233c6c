package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Ключи локального состояния
const (
	KeyRedirectAfterLogin = "redirectAfterLogin"
	KeyCognitoUser        = "cognitoUser"
	KeyIDToken            = "idToken"
	KeyAccessToken        = "accessToken"
	KeyRefreshToken       = "refreshToken"
	KeyPreferredLanguage  = "preferredLanguage"
)

// Store — локальное хранилище ключ-значение в JSON-файле.
// Играет роль localStorage браузера: токены сессии, отложенный
// редирект после входа, данные пользователя для дашбордов.
type Store struct {
	path   string
	values map[string]string
}

// Open открывает хранилище по указанному пути
func Open(path string) (*Store, error) {
	s := &Store{
		path:   path,
		values: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	if err := json.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("state file is corrupted: %w", err)
	}

	return s, nil
}

// Get возвращает значение по ключу или пустую строку
func (s *Store) Get(key string) string {
	return s.values[key]
}

// Set сохраняет значение по ключу
func (s *Store) Set(key, value string) error {
	s.values[key] = value
	return s.flush()
}

// Delete удаляет значение по ключу
func (s *Store) Delete(key string) error {
	if _, exists := s.values[key]; !exists {
		return nil
	}
	delete(s.values, key)
	return s.flush()
}

// Consume возвращает значение и сразу удаляет его (чтение ровно один раз)
func (s *Store) Consume(key string) (string, error) {
	value := s.values[key]
	if value == "" {
		return "", nil
	}
	if err := s.Delete(key); err != nil {
		return "", err
	}
	return value, nil
}

// flush записывает состояние на диск
func (s *Store) flush() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	return os.WriteFile(s.path, data, 0o600)
}
