package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/KJ-77/samihaproj/config"
	"github.com/KJ-77/samihaproj/store"
)

// ProviderError — ошибка вызова провайдера идентификации
type ProviderError struct {
	Op      string // операция Cognito (InitiateAuth, SignUp и т.д.)
	Type    string // тип ошибки из ответа (__type)
	Message string
}

func (e *ProviderError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("cognito %s failed: %s: %s", e.Op, e.Type, e.Message)
	}
	return fmt.Sprintf("cognito %s failed: %s", e.Op, e.Message)
}

// CognitoClient — клиент пула пользователей Cognito.
// Токены сессии хранятся в локальном хранилище между запусками.
type CognitoClient struct {
	cfg   *config.Config
	state *store.Store
	http  *http.Client

	// Endpoint переопределяется в тестах; по умолчанию
	// собирается из региона.
	Endpoint string
}

// NewCognitoClient создает клиент провайдера идентификации
func NewCognitoClient(cfg *config.Config, state *store.Store) *CognitoClient {
	return &CognitoClient{
		cfg:      cfg,
		state:    state,
		http:     &http.Client{},
		Endpoint: fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/", cfg.Region),
	}
}

// call выполняет один вызов API Cognito в формате amz-json-1.1
func (c *CognitoClient) call(op string, request, response interface{}) error {
	body, err := json.Marshal(request)
	if err != nil {
		return &ProviderError{Op: op, Message: err.Error()}
	}

	req, err := http.NewRequest(http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return &ProviderError{Op: op, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/x-amz-json-1.1")
	req.Header.Set("X-Amz-Target", "AWSCognitoIdentityProviderService."+op)

	resp, err := c.http.Do(req)
	if err != nil {
		return &ProviderError{Op: op, Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ProviderError{Op: op, Message: err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Type    string `json:"__type"`
			Message string `json:"message"`
		}
		_ = json.Unmarshal(data, &apiErr)
		return &ProviderError{Op: op, Type: apiErr.Type, Message: apiErr.Message}
	}

	if response != nil {
		if err := json.Unmarshal(data, response); err != nil {
			return &ProviderError{Op: op, Message: "invalid response: " + err.Error()}
		}
	}

	return nil
}

type attribute struct {
	Name  string `json:"Name"`
	Value string `json:"Value"`
}

type authResult struct {
	AuthenticationResult struct {
		IDToken      string `json:"IdToken"`
		AccessToken  string `json:"AccessToken"`
		RefreshToken string `json:"RefreshToken"`
		ExpiresIn    int    `json:"ExpiresIn"`
	} `json:"AuthenticationResult"`
}

// SignUp регистрирует нового пользователя
func (c *CognitoClient) SignUp(name, email, password string) error {
	request := map[string]interface{}{
		"ClientId": c.cfg.ClientID,
		"Username": email,
		"Password": password,
		"UserAttributes": []attribute{
			{Name: "name", Value: name},
			{Name: "email", Value: email},
		},
	}
	return c.call("SignUp", request, nil)
}

// SignIn выполняет вход по email и паролю.
// После входа данные пользователя сохраняются для дашбордов.
func (c *CognitoClient) SignIn(email, password string) (*Session, error) {
	request := map[string]interface{}{
		"AuthFlow": "USER_PASSWORD_AUTH",
		"ClientId": c.cfg.ClientID,
		"AuthParameters": map[string]string{
			"USERNAME": email,
			"PASSWORD": password,
		},
	}

	var result authResult
	if err := c.call("InitiateAuth", request, &result); err != nil {
		return nil, err
	}

	session := &Session{
		IDToken:      result.AuthenticationResult.IDToken,
		AccessToken:  result.AuthenticationResult.AccessToken,
		RefreshToken: result.AuthenticationResult.RefreshToken,
	}

	if err := c.saveSession(session); err != nil {
		return nil, err
	}

	// Загружаем атрибуты пользователя после входа
	name := session.Name()
	mail := session.Email()
	if attrs, err := c.UserAttributes(); err == nil {
		if attrs["name"] != "" {
			name = attrs["name"]
		}
		if attrs["email"] != "" {
			mail = attrs["email"]
		}
	}
	if name == "" && mail != "" {
		name = strings.SplitN(mail, "@", 2)[0]
	}

	info, _ := json.Marshal(map[string]string{"name": name, "email": mail})
	if err := c.state.Set(store.KeyCognitoUser, string(info)); err != nil {
		log.Printf("Failed to store user info: %v", err)
	}

	return session, nil
}

// CurrentSession возвращает текущую сессию или nil, если её нет.
// Истёкшая сессия прозрачно обновляется по refresh-токену.
func (c *CognitoClient) CurrentSession() (*Session, error) {
	session := &Session{
		IDToken:      c.state.Get(store.KeyIDToken),
		AccessToken:  c.state.Get(store.KeyAccessToken),
		RefreshToken: c.state.Get(store.KeyRefreshToken),
	}

	if session.IDToken == "" {
		return nil, nil
	}

	if session.IsValid() {
		return session, nil
	}

	if session.RefreshToken == "" {
		return nil, nil
	}

	return c.RefreshSession()
}

// RefreshSession обновляет токены по refresh-токену
func (c *CognitoClient) RefreshSession() (*Session, error) {
	refreshToken := c.state.Get(store.KeyRefreshToken)
	if refreshToken == "" {
		return nil, &ProviderError{Op: "InitiateAuth", Message: "no refresh token"}
	}

	request := map[string]interface{}{
		"AuthFlow": "REFRESH_TOKEN_AUTH",
		"ClientId": c.cfg.ClientID,
		"AuthParameters": map[string]string{
			"REFRESH_TOKEN": refreshToken,
		},
	}

	var result authResult
	if err := c.call("InitiateAuth", request, &result); err != nil {
		return nil, err
	}

	session := &Session{
		IDToken:      result.AuthenticationResult.IDToken,
		AccessToken:  result.AuthenticationResult.AccessToken,
		RefreshToken: refreshToken,
	}

	if err := c.saveSession(session); err != nil {
		return nil, err
	}

	return session, nil
}

// UserAttributes возвращает атрибуты текущего пользователя
func (c *CognitoClient) UserAttributes() (map[string]string, error) {
	accessToken := c.state.Get(store.KeyAccessToken)
	if accessToken == "" {
		return nil, &ProviderError{Op: "GetUser", Message: "not signed in"}
	}

	request := map[string]string{"AccessToken": accessToken}

	var result struct {
		UserAttributes []attribute `json:"UserAttributes"`
	}
	if err := c.call("GetUser", request, &result); err != nil {
		return nil, err
	}

	attrs := make(map[string]string, len(result.UserAttributes))
	for _, a := range result.UserAttributes {
		attrs[a.Name] = a.Value
	}
	return attrs, nil
}

// SignOut завершает сессию и очищает локальное состояние
func (c *CognitoClient) SignOut() error {
	accessToken := c.state.Get(store.KeyAccessToken)
	if accessToken != "" {
		request := map[string]string{"AccessToken": accessToken}
		if err := c.call("GlobalSignOut", request, nil); err != nil {
			// Токен мог уже истечь, локальное состояние чистим в любом случае
			log.Printf("Sign out call failed: %v", err)
		}
	}

	for _, key := range []string{store.KeyIDToken, store.KeyAccessToken, store.KeyRefreshToken, store.KeyCognitoUser} {
		if err := c.state.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

// saveSession сохраняет токены сессии в локальное хранилище
func (c *CognitoClient) saveSession(session *Session) error {
	if err := c.state.Set(store.KeyIDToken, session.IDToken); err != nil {
		return err
	}
	if err := c.state.Set(store.KeyAccessToken, session.AccessToken); err != nil {
		return err
	}
	if session.RefreshToken != "" {
		if err := c.state.Set(store.KeyRefreshToken, session.RefreshToken); err != nil {
			return err
		}
	}
	return nil
}
