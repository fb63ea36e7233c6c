package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KJ-77/samihaproj/api"
	"github.com/KJ-77/samihaproj/auth"
	"github.com/KJ-77/samihaproj/config"
	"github.com/KJ-77/samihaproj/gate"
	"github.com/KJ-77/samihaproj/models"
	"github.com/KJ-77/samihaproj/store"
)

// newBackend поднимает поддельный бэкенд со всем REST-контрактом
func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	router := mux.NewRouter()

	router.HandleFunc("/tests", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.Test{
			{ID: 1, Name: "EQ Test", Description: "Emotional intelligence"},
		})
	}).Methods("GET")

	router.HandleFunc("/tests/{id}", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.Question{
			{
				ID:          10,
				Question:    "How do you react to stress?",
				Choices:     map[string]string{"a": "Calmly", "b": "Loudly"},
				Name:        "EQ Test",
				Description: "Emotional intelligence",
			},
			{
				ID:       11,
				Question: "How do you rest?",
				Choices:  map[string]string{"a": "Alone", "b": "With friends"},
			},
		})
	}).Methods("GET")

	router.HandleFunc("/sessions", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"session_id": "sess-1"})
	}).Methods("POST")

	router.HandleFunc("/sessions/{id}/submit", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sess-1", mux.Vars(r)["id"])
		w.WriteHeader(http.StatusOK)
	}).Methods("POST")

	router.HandleFunc("/diagnoses/{userId}", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"diagnoses": []models.Diagnosis{
				{UserID: "user-42", TestName: "EQ Test", Diagnosis: "Balanced", CompletedAt: "2026-02-01"},
			},
		})
	}).Methods("GET")

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

// newSignedInApp собирает приложение с уже сохраненной сессией
func newSignedInApp(t *testing.T, backendURL string) *App {
	t.Helper()

	state, err := store.Open(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "user-42",
		"email": "user@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)
	require.NoError(t, state.Set(store.KeyIDToken, signed))

	cfg := &config.Config{
		APIBaseURL: backendURL,
		ClientID:   "client-1",
		Region:     "me-central-1",
		AdminGroup: "Admin",
	}

	cognito := auth.NewCognitoClient(cfg, state)
	return &App{
		Config:  cfg,
		State:   state,
		Cognito: cognito,
		API:     api.NewClient(backendURL, cognito),
		Gate:    gate.NewGate(cognito, state, cfg.AdminGroup),
	}
}

func runCommand(t *testing.T, app *App, stdin string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestTestsListCommand(t *testing.T) {
	backend := newBackend(t)
	app := newSignedInApp(t, backend.URL)

	out, err := runCommand(t, app, "", "tests", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "EQ Test")
	assert.Contains(t, out, "Emotional intelligence")
}

func TestTestsStartFullFlow(t *testing.T) {
	backend := newBackend(t)
	app := newSignedInApp(t, backend.URL)

	out, err := runCommand(t, app, "a\nb\n", "tests", "start", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "How do you react to stress?")
	assert.Contains(t, out, "[a] Calmly")
	assert.Contains(t, out, "Test submitted.")
	assert.Contains(t, out, "Balanced")
}

func TestTestsStartRetriesUnknownChoice(t *testing.T) {
	backend := newBackend(t)
	app := newSignedInApp(t, backend.URL)

	// Первый ввод неизвестен, затем два корректных ответа
	out, err := runCommand(t, app, "x\na\nb\n", "tests", "start", "1")
	require.NoError(t, err)

	assert.Contains(t, out, `Unknown choice "x"`)
	assert.Contains(t, out, "Test submitted.")
}

func TestDiagnosesLatestCommand(t *testing.T) {
	backend := newBackend(t)
	app := newSignedInApp(t, backend.URL)

	out, err := runCommand(t, app, "", "diagnoses", "latest")
	require.NoError(t, err)

	assert.Contains(t, out, "EQ Test")
	assert.Contains(t, out, "Balanced")
	assert.Contains(t, out, "2026-02-01")
}

func TestOpenCommandRedirectsLoggedOutUser(t *testing.T) {
	backend := newBackend(t)
	app := newSignedInApp(t, backend.URL)
	require.NoError(t, app.State.Delete(store.KeyIDToken))

	out, err := runCommand(t, app, "", "open", "test")
	require.NoError(t, err)

	assert.Contains(t, out, gate.LoginPage)
	assert.Equal(t, "TEST.HTML", app.State.Get(store.KeyRedirectAfterLogin))
}

func TestOpenCommandLoggedInUser(t *testing.T) {
	backend := newBackend(t)
	app := newSignedInApp(t, backend.URL)

	out, err := runCommand(t, app, "", "open", "test")
	require.NoError(t, err)

	assert.Contains(t, out, "TEST.HTML")
}
