package runner

import (
	"log"

	"github.com/KJ-77/samihaproj/api"
	"github.com/KJ-77/samihaproj/auth"
	"github.com/KJ-77/samihaproj/models"
)

// State — состояние прохождения теста
type State int

const (
	StateIdle State = iota
	StateListed
	StateSessionCreated
	StateQuestionsLoaded
	StateAnswering
	StateSubmitted
	StateDiagnosisShown
)

// String возвращает название состояния
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateListed:
		return "Listed"
	case StateSessionCreated:
		return "SessionCreated"
	case StateQuestionsLoaded:
		return "QuestionsLoaded"
	case StateAnswering:
		return "Answering"
	case StateSubmitted:
		return "Submitted"
	case StateDiagnosisShown:
		return "DiagnosisShown"
	default:
		return "Unknown"
	}
}

// API — операции бэкенда, нужные для прохождения теста
type API interface {
	ListTests() ([]models.Test, error)
	GetTestQuestions(testID int) ([]models.Question, error)
	CreateSession(userID string, testID int) (string, error)
	SubmitAnswers(sessionID string, answers models.AnswerSet) error
	ListDiagnoses(userID string) ([]models.Diagnosis, error)
}

// Runner ведет пользователя по шагам прохождения теста:
// каталог → сессия → вопросы → ответы → отправка → диагноз.
// Все состояние попытки живет здесь и не переживает перезапуск.
type Runner struct {
	api      API
	provider auth.Provider

	state     State
	tests     []models.Test
	testID    int
	userID    string
	sessionID string
	questions []models.Question
	answers   models.AnswerSet
}

// New создает Runner в состоянии Idle
func New(backend API, provider auth.Provider) *Runner {
	return &Runner{
		api:      backend,
		provider: provider,
		state:    StateIdle,
	}
}

// State возвращает текущее состояние
func (r *Runner) State() State {
	return r.state
}

// Tests возвращает загруженный каталог тестов
func (r *Runner) Tests() []models.Test {
	return r.tests
}

// Questions возвращает вопросы текущей попытки
func (r *Runner) Questions() []models.Question {
	return r.questions
}

// SessionID возвращает идентификатор текущей сессии теста
func (r *Runner) SessionID() string {
	return r.sessionID
}

// Answers возвращает собранный набор ответов
func (r *Runner) Answers() models.AnswerSet {
	return r.answers
}

// LoadCatalog загружает список доступных тестов.
// При ошибке состояние не меняется, попытку можно повторить вручную.
func (r *Runner) LoadCatalog() ([]models.Test, error) {
	tests, err := r.api.ListTests()
	if err != nil {
		return nil, err
	}

	r.tests = tests
	r.state = StateListed
	return tests, nil
}

// Start начинает прохождение теста: проверяет сессию пользователя,
// создает сессию теста на бэкенде и загружает вопросы.
// Без действующей сессии возвращает AuthError, не делая ни одного
// сетевого вызова.
func (r *Runner) Start(testID int) error {
	if r.state != StateListed {
		return &SubmissionError{Reason: "no test catalog loaded, state is " + r.state.String()}
	}

	session, err := r.provider.CurrentSession()
	if err != nil {
		return &api.AuthError{Reason: err.Error()}
	}
	if session == nil || !session.IsValid() {
		return &api.AuthError{Reason: "you must be logged in to start a test"}
	}

	userID := session.Subject()

	sessionID, err := r.api.CreateSession(userID, testID)
	if err != nil {
		return err
	}
	r.userID = userID
	r.testID = testID
	r.sessionID = sessionID
	r.state = StateSessionCreated
	log.Printf("Test session %s started for test %d", sessionID, testID)

	questions, err := r.api.GetTestQuestions(testID)
	if err != nil {
		// Без вопросов попытка не подлежит восстановлению
		r.reset()
		return err
	}
	if len(questions) == 0 {
		r.reset()
		return &SubmissionError{Reason: "no questions available for this test"}
	}

	r.questions = questions
	r.state = StateQuestionsLoaded
	return nil
}

// BeginAnswering переводит попытку в режим сбора ответов.
// Сетевых вызовов нет, это шаг отрисовки формы.
func (r *Runner) BeginAnswering() error {
	if r.state != StateQuestionsLoaded {
		return &SubmissionError{Reason: "questions are not loaded, state is " + r.state.String()}
	}
	r.answers = make(models.AnswerSet, len(r.questions))
	r.state = StateAnswering
	return nil
}

// Answer записывает выбранный вариант ответа на вопрос.
// Ключ и текст варианта сохраняются без изменений.
func (r *Runner) Answer(questionID int, choiceKey string) error {
	if r.state != StateAnswering {
		return &SubmissionError{Reason: "not in answering state"}
	}

	for _, q := range r.questions {
		if q.ID != questionID {
			continue
		}
		text, ok := q.Choices[choiceKey]
		if !ok {
			return &ValidationError{Missing: []int{questionID}}
		}
		r.answers[questionID] = models.SelectedAnswer{
			Index:    choiceKey,
			Text:     text,
			Question: q.Question,
		}
		return nil
	}

	return &ValidationError{Missing: []int{questionID}}
}

// Submit отправляет набор ответов для текущей сессии.
// Неполный набор отклоняется локально, без сетевого вызова.
func (r *Runner) Submit() error {
	if r.state != StateAnswering {
		return &SubmissionError{Reason: "not in answering state"}
	}
	if r.sessionID == "" {
		// Без идентификатора сессии попытку не спасти
		r.reset()
		return &SubmissionError{Reason: "test session is missing, start the test again"}
	}

	var missing []int
	for _, q := range r.questions {
		if _, answered := r.answers[q.ID]; !answered {
			missing = append(missing, q.ID)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}

	if err := r.api.SubmitAnswers(r.sessionID, r.answers); err != nil {
		return err
	}

	r.state = StateSubmitted
	return nil
}

// ShowDiagnosis загружает результаты после отправки ответов:
// последний диагноз и полную историю. Обе загрузки необязательные —
// ошибка одной не блокирует другую, показывается заглушка.
func (r *Runner) ShowDiagnosis() (*models.Diagnosis, []models.Diagnosis, error) {
	if r.state != StateSubmitted {
		return nil, nil, &SubmissionError{Reason: "answers are not submitted yet"}
	}

	// Последний диагноз и история загружаются независимо:
	// ошибка одной загрузки не мешает другой.
	var latest *models.Diagnosis
	if diagnoses, err := r.api.ListDiagnoses(r.userID); err != nil {
		log.Printf("Failed to load latest diagnosis: %v", err)
	} else if len(diagnoses) > 0 {
		latest = &diagnoses[0]
	}

	var history []models.Diagnosis
	if diagnoses, err := r.api.ListDiagnoses(r.userID); err != nil {
		log.Printf("Failed to load diagnosis history: %v", err)
	} else {
		history = diagnoses
	}

	r.state = StateDiagnosisShown
	return latest, history, nil
}

// reset сбрасывает попытку до состояния Listed
func (r *Runner) reset() {
	r.testID = 0
	r.sessionID = ""
	r.questions = nil
	r.answers = nil
	r.state = StateListed
}
