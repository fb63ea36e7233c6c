package history

import (
	"fmt"
	"strings"

	"github.com/KJ-77/samihaproj/models"
)

// Заглушки для пустой истории
const (
	NoHistoryPlaceholder   = "You have no completed tests yet."
	NoDiagnosisPlaceholder = "No diagnosis available"
)

// API — операции бэкенда для просмотра истории
type API interface {
	ListDiagnoses(userID string) ([]models.Diagnosis, error)
}

// Viewer показывает историю результатов пользователя
type Viewer struct {
	api API
}

// NewViewer создает просмотрщик истории
func NewViewer(backend API) *Viewer {
	return &Viewer{api: backend}
}

// Load загружает историю диагнозов пользователя, новые первыми.
// Порядок задает бэкенд, клиент его не проверяет.
func (v *Viewer) Load(userID string) ([]models.Diagnosis, error) {
	return v.api.ListDiagnoses(userID)
}

// Latest возвращает самый свежий диагноз или nil, если истории нет
func Latest(diagnoses []models.Diagnosis) *models.Diagnosis {
	if len(diagnoses) == 0 {
		return nil
	}
	return &diagnoses[0]
}

// Card возвращает краткую карточку одного результата:
// название теста, текст диагноза и дата завершения.
func Card(d models.Diagnosis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Test: %s\n", d.TestName)
	fmt.Fprintf(&b, "Diagnosis: %s\n", d.Diagnosis)
	fmt.Fprintf(&b, "Completed: %s\n", d.CompletedAt)
	return b.String()
}

// Detail возвращает подробный вид результата с полным описанием
func Detail(d models.Diagnosis) string {
	var b strings.Builder
	b.WriteString(Card(d))
	if d.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", d.Description)
	}
	return b.String()
}

// LatestView возвращает вид последнего диагноза.
// Без диагноза показывается заглушка без блока описания.
func LatestView(d *models.Diagnosis) string {
	if d == nil {
		return NoDiagnosisPlaceholder + "\n"
	}
	return Detail(*d)
}

// HistoryView возвращает список карточек или заглушку для пустой истории
func HistoryView(diagnoses []models.Diagnosis) string {
	if len(diagnoses) == 0 {
		return NoHistoryPlaceholder + "\n"
	}

	var b strings.Builder
	for i, d := range diagnoses {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Card(d))
	}
	return b.String()
}

// ExportPrintable собирает версию результата для печати.
// Это то же содержимое, что и в карточке: поля должны совпадать.
func ExportPrintable(d models.Diagnosis) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head><title>Test Result</title></head>\n<body>\n")
	fmt.Fprintf(&b, "  <h1>%s</h1>\n", d.TestName)
	fmt.Fprintf(&b, "  <h2>%s</h2>\n", d.Diagnosis)
	if d.Description != "" {
		fmt.Fprintf(&b, "  <p>%s</p>\n", d.Description)
	}
	fmt.Fprintf(&b, "  <p>Completed: %s</p>\n", d.CompletedAt)
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
