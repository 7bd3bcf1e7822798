package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(
		WithJSONFallbacks(),
		WithRoutes(Route{
			Path:   "/v1/ping",
			Method: http.MethodGet,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, "handler")
				w.WriteHeader(http.StatusNoContent)
			}),
			Middlewares: []func(http.Handler) http.Handler{mark("primeiro"), mark("segundo")},
		}),
	)

	tests := []struct {
		name     string
		method   string
		path     string
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Middlewares aplicados na ordem declarada",
			method: http.MethodGet,
			path:   "/v1/ping",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNoContent, rec.Code)
				assert.Equal(t, []string{"primeiro", "segundo", "handler"}, order)
			},
		},
		{
			name:   "Rota desconhecida responde JSON 404",
			method: http.MethodGet,
			path:   "/v1/nada",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, rec.Code)
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
				assert.True(t, strings.Contains(rec.Body.String(), "Ruta no encontrada"))
			},
		},
		{
			name:   "Método não suportado responde 405",
			method: http.MethodPost,
			path:   "/v1/ping",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
				assert.Contains(t, rec.Body.String(), "Method not allowed")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order = nil
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			tt.validate(t, rec)
		})
	}
}
