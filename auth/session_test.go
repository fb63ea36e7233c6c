package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// mintToken выпускает ID-токен с нужными клеймами для тестов
func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestSessionIsValid(t *testing.T) {
	tests := []struct {
		name    string
		session *Session
		want    bool
	}{
		{
			name:    "nil session",
			session: nil,
			want:    false,
		},
		{
			name:    "empty token",
			session: &Session{},
			want:    false,
		},
		{
			name:    "garbage token",
			session: &Session{IDToken: "not-a-jwt"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("live token", func(t *testing.T) {
		s := &Session{IDToken: mintToken(t, jwt.MapClaims{
			"sub": "user-1",
			"exp": time.Now().Add(time.Hour).Unix(),
		})}
		if !s.IsValid() {
			t.Error("expected session with future exp to be valid")
		}
	})

	t.Run("expired token", func(t *testing.T) {
		s := &Session{IDToken: mintToken(t, jwt.MapClaims{
			"sub": "user-1",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})}
		if s.IsValid() {
			t.Error("expected session with past exp to be invalid")
		}
	})

	t.Run("token without exp", func(t *testing.T) {
		s := &Session{IDToken: mintToken(t, jwt.MapClaims{"sub": "user-1"})}
		if s.IsValid() {
			t.Error("expected session without exp to be invalid")
		}
	})
}

func TestSessionClaims(t *testing.T) {
	s := &Session{IDToken: mintToken(t, jwt.MapClaims{
		"sub":            "a1b2c3",
		"email":          "user@example.com",
		"name":           "Samia",
		"cognito:groups": []string{"Admin", "Coaches"},
		"exp":            time.Now().Add(time.Hour).Unix(),
	})}

	if got := s.Subject(); got != "a1b2c3" {
		t.Errorf("Subject() = %q, want a1b2c3", got)
	}
	if got := s.Email(); got != "user@example.com" {
		t.Errorf("Email() = %q, want user@example.com", got)
	}
	if got := s.Name(); got != "Samia" {
		t.Errorf("Name() = %q, want Samia", got)
	}
	if !s.InGroup("Admin") {
		t.Error("expected user to be in Admin group")
	}
	if s.InGroup("Moderators") {
		t.Error("did not expect user to be in Moderators group")
	}
}

func TestSessionNameFallsBackToEmail(t *testing.T) {
	s := &Session{IDToken: mintToken(t, jwt.MapClaims{
		"sub":   "a1b2c3",
		"email": "samiha@example.com",
	})}

	if got := s.Name(); got != "samiha" {
		t.Errorf("Name() = %q, want samiha", got)
	}
}

func TestSessionGroupsMissingClaim(t *testing.T) {
	s := &Session{IDToken: mintToken(t, jwt.MapClaims{"sub": "a1b2c3"})}

	if groups := s.Groups(); len(groups) != 0 {
		t.Errorf("Groups() = %v, want empty", groups)
	}
	if s.InGroup("Admin") {
		t.Error("user without groups claim must not be admin")
	}
}
