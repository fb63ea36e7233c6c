package models

// Test представляет тест из каталога
type Test struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Title         string     `json:"title"`
	Category      string     `json:"category"`
	Description   string     `json:"description"`
	QuestionCount int        `json:"questionCount"`
	Questions     []Question `json:"questions,omitempty"`
}

// DisplayName возвращает отображаемое название теста
func (t Test) DisplayName() string {
	if t.Title != "" {
		return t.Title
	}
	if t.Name != "" {
		return t.Name
	}
	return "Untitled Test"
}

// DisplayCategory возвращает категорию теста
func (t Test) DisplayCategory() string {
	if t.Category != "" {
		return t.Category
	}
	return "General"
}

// Question представляет вопрос теста.
// Первый элемент списка вопросов может дублировать название
// и описание теста в полях Name и Description.
type Question struct {
	ID          int               `json:"id"`
	Question    string            `json:"question"`
	Choices     map[string]string `json:"choices"`
	Name        string            `json:"name,omitempty"`
	Description string            `json:"description,omitempty"`
}

// SelectedAnswer представляет выбранный вариант ответа на один вопрос.
// Index — ключ варианта, Text — его текст без изменений, Question — текст вопроса.
type SelectedAnswer struct {
	Index    string `json:"index"`
	Text     string `json:"text"`
	Question string `json:"question"`
}

// AnswerSet — набор ответов попытки, ключ — ID вопроса
type AnswerSet map[int]SelectedAnswer

// SubmitRequest — тело запроса отправки ответов
type SubmitRequest struct {
	Answers AnswerSet `json:"answers"`
}

// CreateSessionRequest — тело запроса создания сессии теста
type CreateSessionRequest struct {
	UserID string `json:"user_id"`
	TestID int    `json:"test_id"`
}

// Diagnosis представляет результат пройденного теста
type Diagnosis struct {
	UserID      string `json:"user_id"`
	TestName    string `json:"test_name"`
	Diagnosis   string `json:"diagnosis"`
	Description string `json:"description"`
	CompletedAt string `json:"completed_at"`
}

// SamihaQuestion представляет персональный вопрос для Самихи
type SamihaQuestion struct {
	ID       int    `json:"id"`
	UserID   string `json:"user_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Answered сообщает, получен ли ответ на вопрос
func (q SamihaQuestion) Answered() bool {
	return q.Answer != ""
}

// User представляет пользователя в системе
type User struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}
