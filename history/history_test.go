package history

import (
	"errors"
	"strings"
	"testing"

	"github.com/KJ-77/samihaproj/models"
)

// fakeAPI отдает заготовленную историю
type fakeAPI struct {
	diagnoses []models.Diagnosis
	err       error
	userID    string
}

func (f *fakeAPI) ListDiagnoses(userID string) ([]models.Diagnosis, error) {
	f.userID = userID
	return f.diagnoses, f.err
}

var sample = models.Diagnosis{
	UserID:      "user-42",
	TestName:    "EQ Test",
	Diagnosis:   "Balanced",
	Description: "You keep your emotions in check.",
	CompletedAt: "2026-02-01",
}

func TestLoadPassesUserID(t *testing.T) {
	backend := &fakeAPI{diagnoses: []models.Diagnosis{sample}}
	viewer := NewViewer(backend)

	diagnoses, err := viewer.Load("user-42")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if backend.userID != "user-42" {
		t.Errorf("Load() requested user %q, want user-42", backend.userID)
	}
	if len(diagnoses) != 1 {
		t.Fatalf("got %d diagnoses, want 1", len(diagnoses))
	}
}

func TestLoadPropagatesError(t *testing.T) {
	backend := &fakeAPI{err: errors.New("down")}
	viewer := NewViewer(backend)

	if _, err := viewer.Load("user-42"); err == nil {
		t.Error("expected error from backend")
	}
}

func TestLatest(t *testing.T) {
	second := sample
	second.Diagnosis = "Older result"

	if got := Latest([]models.Diagnosis{sample, second}); got == nil || got.Diagnosis != "Balanced" {
		t.Errorf("Latest() = %v, want the first (newest) record", got)
	}
	if got := Latest(nil); got != nil {
		t.Errorf("Latest(nil) = %v, want nil", got)
	}
}

// Карточка в истории и вид последнего диагноза должны показывать
// одни и те же значения полей одной записи
func TestCardAndLatestViewShowSameFields(t *testing.T) {
	card := Card(sample)
	latest := LatestView(&sample)

	for _, field := range []string{sample.TestName, sample.Diagnosis, sample.CompletedAt} {
		if !strings.Contains(card, field) {
			t.Errorf("card is missing %q:\n%s", field, card)
		}
		if !strings.Contains(latest, field) {
			t.Errorf("latest view is missing %q:\n%s", field, latest)
		}
	}
}

func TestEmptyHistoryPlaceholders(t *testing.T) {
	if got := HistoryView(nil); !strings.Contains(got, NoHistoryPlaceholder) {
		t.Errorf("HistoryView(nil) = %q, want placeholder", got)
	}

	got := LatestView(nil)
	if !strings.Contains(got, NoDiagnosisPlaceholder) {
		t.Errorf("LatestView(nil) = %q, want placeholder", got)
	}
	if strings.Contains(got, "Description") {
		t.Errorf("empty latest view must not contain a description block: %q", got)
	}
}

func TestDetailIncludesDescription(t *testing.T) {
	detail := Detail(sample)
	if !strings.Contains(detail, sample.Description) {
		t.Errorf("detail is missing description:\n%s", detail)
	}

	bare := sample
	bare.Description = ""
	if strings.Contains(Detail(bare), "Description:") {
		t.Error("detail without description must omit the block")
	}
}

// Экспорт для печати должен содержать те же поля, что и карточка
func TestExportPrintableMatchesCardFields(t *testing.T) {
	page := ExportPrintable(sample)

	for _, field := range []string{sample.TestName, sample.Diagnosis, sample.Description, sample.CompletedAt} {
		if !strings.Contains(page, field) {
			t.Errorf("printable export is missing %q:\n%s", field, page)
		}
	}

	if !strings.Contains(page, "<html>") {
		t.Errorf("export must be a standalone page:\n%s", page)
	}
}

func TestHistoryViewListsAllCards(t *testing.T) {
	second := sample
	second.TestName = "Personality Test"
	second.Diagnosis = "Introvert"

	view := HistoryView([]models.Diagnosis{sample, second})

	for _, field := range []string{"EQ Test", "Balanced", "Personality Test", "Introvert"} {
		if !strings.Contains(view, field) {
			t.Errorf("history view is missing %q:\n%s", field, view)
		}
	}
}
