package api

import "fmt"

// AuthError — запрос требует действующей сессии, а её нет
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "not authenticated: " + e.Reason
}

// HttpError — бэкенд ответил статусом вне 2xx.
// Body содержит сырой текст ответа без изменений.
type HttpError struct {
	StatusCode int
	Body       string
}

func (e *HttpError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("api request failed (HTTP %d): %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("api request failed (HTTP %d)", e.StatusCode)
}
