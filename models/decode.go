package models

import (
	"encoding/json"
	"fmt"
)

// Бэкенд исторически отдаёт коллекции в двух видах: голым массивом
// или объектом-обёрткой ({tests: [...]}, {users: [...]} и т.д.).
// Функции ниже приводят оба вида к одному каноническому срезу
// и возвращают ошибку, если не подошёл ни один.

// DecodeTests разбирает ответ GET /tests
func DecodeTests(data []byte) ([]Test, error) {
	var tests []Test
	if err := json.Unmarshal(data, &tests); err == nil {
		return tests, nil
	}

	var wrapped struct {
		Tests []Test `json:"tests"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Tests != nil {
		return wrapped.Tests, nil
	}

	return nil, fmt.Errorf("unexpected tests response shape: %s", truncate(data))
}

// DecodeQuestions разбирает ответ GET /tests/{id}
func DecodeQuestions(data []byte) ([]Question, error) {
	var questions []Question
	if err := json.Unmarshal(data, &questions); err == nil {
		return questions, nil
	}

	var wrapped struct {
		Questions []Question `json:"questions"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Questions != nil {
		return wrapped.Questions, nil
	}

	return nil, fmt.Errorf("unexpected questions response shape: %s", truncate(data))
}

// DecodeDiagnoses разбирает ответ GET /diagnoses/{userId}
func DecodeDiagnoses(data []byte) ([]Diagnosis, error) {
	var wrapped struct {
		Diagnoses []Diagnosis `json:"diagnoses"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Diagnoses != nil {
		return wrapped.Diagnoses, nil
	}

	var diagnoses []Diagnosis
	if err := json.Unmarshal(data, &diagnoses); err == nil {
		return diagnoses, nil
	}

	return nil, fmt.Errorf("unexpected diagnoses response shape: %s", truncate(data))
}

// DecodeSamihaQuestions разбирает ответ GET /questions-for-samiha
func DecodeSamihaQuestions(data []byte) ([]SamihaQuestion, error) {
	var questions []SamihaQuestion
	if err := json.Unmarshal(data, &questions); err == nil {
		return questions, nil
	}

	var wrapped struct {
		Questions []SamihaQuestion `json:"questions"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Questions != nil {
		return wrapped.Questions, nil
	}

	return nil, fmt.Errorf("unexpected questions response shape: %s", truncate(data))
}

// DecodeUsers разбирает ответ GET /users
func DecodeUsers(data []byte) ([]User, error) {
	var users []User
	if err := json.Unmarshal(data, &users); err == nil {
		return users, nil
	}

	var wrapped struct {
		Users []User `json:"users"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Users != nil {
		return wrapped.Users, nil
	}

	return nil, fmt.Errorf("unexpected users response shape: %s", truncate(data))
}

// ExtractSessionID извлекает идентификатор сессии из ответа POST /sessions.
// Бэкенд в разное время возвращал его в полях id, session_id и session.id,
// числом или строкой — принимаем все три варианта.
func ExtractSessionID(data []byte) (string, error) {
	var resp struct {
		ID        json.RawMessage `json:"id"`
		SessionID json.RawMessage `json:"session_id"`
		Session   struct {
			ID json.RawMessage `json:"id"`
		} `json:"session"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("unexpected session response shape: %s", truncate(data))
	}

	for _, raw := range []json.RawMessage{resp.ID, resp.SessionID, resp.Session.ID} {
		if id := rawToString(raw); id != "" {
			return id, nil
		}
	}

	return "", fmt.Errorf("session id not found in response: %s", truncate(data))
}

// rawToString приводит строковое или числовое JSON-значение к строке
func rawToString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}

	return ""
}

// truncate обрезает тело ответа для сообщения об ошибке
func truncate(data []byte) string {
	const limit = 200
	s := string(data)
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
