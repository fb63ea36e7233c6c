package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if got := s.Get(KeyIDToken); got != "" {
		t.Errorf("Get on empty store = %q, want empty", got)
	}

	if err := s.Set(KeyIDToken, "token-1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := s.Get(KeyIDToken); got != "token-1" {
		t.Errorf("Get() = %q, want token-1", got)
	}

	if err := s.Delete(KeyIDToken); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if got := s.Get(KeyIDToken); got != "" {
		t.Errorf("Get after Delete = %q, want empty", got)
	}
}

func TestStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := s.Set(KeyPreferredLanguage, "ar"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Open() after write error = %v", err)
	}
	if got := reopened.Get(KeyPreferredLanguage); got != "ar" {
		t.Errorf("reopened Get() = %q, want ar", got)
	}
}

func TestStoreConsumeReadsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := s.Set(KeyRedirectAfterLogin, "TEST.HTML"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	first, err := s.Consume(KeyRedirectAfterLogin)
	if err != nil {
		t.Fatalf("Consume() error = %v", err)
	}
	if first != "TEST.HTML" {
		t.Errorf("first Consume() = %q, want TEST.HTML", first)
	}

	second, err := s.Consume(KeyRedirectAfterLogin)
	if err != nil {
		t.Fatalf("second Consume() error = %v", err)
	}
	if second != "" {
		t.Errorf("second Consume() = %q, want empty", second)
	}
}

func TestOpenCorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(path); err == nil {
		t.Error("expected error for corrupted state file")
	}
}
