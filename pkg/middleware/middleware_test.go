package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/larscobian/Pizzana-Dashboard/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	log.SetupTestLogger()
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAdminKey(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo-pizzana"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name           string
		keyHash        string
		key            string
		expectedStatus int
	}{
		{name: "Chave correta", keyHash: string(hash), key: "segredo-pizzana", expectedStatus: http.StatusNoContent},
		{name: "Chave errada", keyHash: string(hash), key: "outra", expectedStatus: http.StatusUnauthorized},
		{name: "Sem cabeçalho", keyHash: string(hash), expectedStatus: http.StatusUnauthorized},
		{name: "Sem hash configurado", key: "segredo-pizzana", expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/debug", nil)
			if tt.key != "" {
				req.Header.Set(AdminKeyHeader, tt.key)
			}
			rec := httptest.NewRecorder()

			AdminKey(tt.keyHash)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000", " https://pizzana.cl "})(okHandler())

	t.Run("Origem permitida recebe cabeçalhos", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		req.Header.Set("Origin", "https://pizzana.cl")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "https://pizzana.cl", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Origem desconhecida segue sem cabeçalhos", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight responde 200", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/dashboard", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	rec := httptest.NewRecorder()

	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLoggingMiddlewareInjectsCorrelationID(t *testing.T) {
	var correlationID string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusAccepted)
	}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/all/run", nil))

	assert.NotEmpty(t, correlationID)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}
