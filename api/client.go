package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/KJ-77/samihaproj/auth"
	"github.com/KJ-77/samihaproj/models"
)

// Client — клиент REST API бэкенда.
// GET-запросы идут с bearer-токеном текущей сессии, POST-запросы — без
// токена (текущее поведение бэкенда, см. политику доступа в DESIGN.md).
type Client struct {
	BaseURL  string
	Provider auth.Provider
	HTTP     *http.Client
}

// NewClient создает клиент API
func NewClient(baseURL string, provider auth.Provider) *Client {
	return &Client{
		BaseURL:  baseURL,
		Provider: provider,
		HTTP:     &http.Client{},
	}
}

// Get выполняет аутентифицированный GET-запрос и возвращает тело ответа
func (c *Client) Get(path string) ([]byte, error) {
	session, err := c.Provider.CurrentSession()
	if err != nil {
		return nil, &AuthError{Reason: err.Error()}
	}
	if session == nil || !session.IsValid() {
		return nil, &AuthError{Reason: "no valid session"}
	}

	req, err := http.NewRequest(http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", session.IDToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HttpError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	return data, nil
}

// Post выполняет POST-запрос с JSON-телом и возвращает тело ответа.
// Пустой или не-JSON ответ на успешный запрос не считается ошибкой.
func (c *Client) Post(path string, body interface{}) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HttpError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	return data, nil
}

// ListTests загружает каталог тестов
func (c *Client) ListTests() ([]models.Test, error) {
	data, err := c.Get("/tests")
	if err != nil {
		return nil, err
	}
	return models.DecodeTests(data)
}

// GetTestQuestions загружает вопросы теста
func (c *Client) GetTestQuestions(testID int) ([]models.Question, error) {
	data, err := c.Get(fmt.Sprintf("/tests/%d", testID))
	if err != nil {
		return nil, err
	}
	return models.DecodeQuestions(data)
}

// CreateSession создает на бэкенде сессию прохождения теста
// и возвращает её идентификатор
func (c *Client) CreateSession(userID string, testID int) (string, error) {
	body := models.CreateSessionRequest{UserID: userID, TestID: testID}
	data, err := c.Post("/sessions", body)
	if err != nil {
		return "", err
	}
	return models.ExtractSessionID(data)
}

// SubmitAnswers отправляет набор ответов для сессии.
// Тело успешного ответа бэкенда игнорируется.
func (c *Client) SubmitAnswers(sessionID string, answers models.AnswerSet) error {
	body := models.SubmitRequest{Answers: answers}
	_, err := c.Post(fmt.Sprintf("/sessions/%s/submit", sessionID), body)
	return err
}

// ListDiagnoses загружает результаты пользователя, новые первыми
func (c *Client) ListDiagnoses(userID string) ([]models.Diagnosis, error) {
	data, err := c.Get("/diagnoses/" + userID)
	if err != nil {
		return nil, err
	}
	return models.DecodeDiagnoses(data)
}

// ListSamihaQuestions загружает все персональные вопросы для Самихи
func (c *Client) ListSamihaQuestions() ([]models.SamihaQuestion, error) {
	data, err := c.Get("/questions-for-samiha")
	if err != nil {
		return nil, err
	}
	return models.DecodeSamihaQuestions(data)
}

// ListUsers загружает список пользователей (только для администраторов)
func (c *Client) ListUsers() ([]models.User, error) {
	data, err := c.Get("/users")
	if err != nil {
		return nil, err
	}
	return models.DecodeUsers(data)
}
