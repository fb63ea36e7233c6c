package runner

import "fmt"

// ValidationError — набор ответов покрывает не все вопросы теста.
// Отправка отклоняется локально, без сетевого вызова.
type ValidationError struct {
	Missing []int // ID вопросов без выбранного ответа
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("answers are incomplete: %d question(s) not answered", len(e.Missing))
}

// SubmissionError — попытка отправить ответы без действующей сессии теста.
// Пользователь должен начать тест заново.
type SubmissionError struct {
	Reason string
}

func (e *SubmissionError) Error() string {
	return "cannot submit answers: " + e.Reason
}
