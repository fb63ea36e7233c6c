package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Provider — граница провайдера идентификации.
// Возвращает текущую действующую сессию или nil, если её нет.
type Provider interface {
	CurrentSession() (*Session, error)
}

// Session представляет сессию пользователя: токены, выданные Cognito.
// Роль и идентификатор пользователя читаются из клеймов ID-токена.
type Session struct {
	IDToken      string
	AccessToken  string
	RefreshToken string
}

// claims разбирает полезную нагрузку ID-токена без проверки подписи.
// Подпись проверяет бэкенд; клиенту нужны только клеймы для отображения.
func (s *Session) claims() (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.IDToken, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// IsValid сообщает, не истёк ли срок действия сессии
func (s *Session) IsValid() bool {
	if s == nil || s.IDToken == "" {
		return false
	}

	claims, err := s.claims()
	if err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.After(time.Now())
}

// Subject возвращает идентификатор пользователя (клейм sub)
func (s *Session) Subject() string {
	claims, err := s.claims()
	if err != nil {
		return ""
	}
	sub, _ := claims["sub"].(string)
	return sub
}

// Email возвращает email пользователя из токена
func (s *Session) Email() string {
	claims, err := s.claims()
	if err != nil {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}

// Name возвращает имя пользователя из токена.
// Если имени нет, используется часть email до @.
func (s *Session) Name() string {
	claims, err := s.claims()
	if err != nil {
		return ""
	}
	if name, _ := claims["name"].(string); name != "" {
		return name
	}
	if email, _ := claims["email"].(string); email != "" {
		return strings.SplitN(email, "@", 2)[0]
	}
	return ""
}

// Groups возвращает список групп Cognito из токена
func (s *Session) Groups() []string {
	claims, err := s.claims()
	if err != nil {
		return nil
	}

	raw, ok := claims["cognito:groups"].([]interface{})
	if !ok {
		return nil
	}

	groups := make([]string, 0, len(raw))
	for _, g := range raw {
		if name, ok := g.(string); ok {
			groups = append(groups, name)
		}
	}
	return groups
}

// InGroup проверяет членство пользователя в группе
func (s *Session) InGroup(name string) bool {
	for _, g := range s.Groups() {
		if g == name {
			return true
		}
	}
	return false
}
