package middleware

import (
	"net/http"
	"strings"

	"github.com/larscobian/Pizzana-Dashboard/pkg/apiErrors"
	"github.com/larscobian/Pizzana-Dashboard/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

// AdminKeyHeader é o cabeçalho que carrega a chave administrativa
const AdminKeyHeader = "X-Admin-Key"

// AdminKey restringe a rota a quem enviar a chave cujo hash bcrypt está configurado.
// Sem hash configurado, as rotas administrativas ficam fechadas.
func AdminKey(keyHash string) func(http.Handler) http.Handler {
	hash := []byte(strings.TrimSpace(keyHash))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := log.ForContext(r.Context()).WithField("path", r.URL.Path)

			if len(hash) == 0 {
				logger.Warn("middleware: rota administrativa sem chave configurada")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Rota administrativa desabilitada", nil)
				return
			}

			key := r.Header.Get(AdminKeyHeader)
			if key == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidAdminKey, "Chave administrativa obrigatória", nil)
				return
			}

			if err := bcrypt.CompareHashAndPassword(hash, []byte(key)); err != nil {
				logger.Warn("middleware: chave administrativa inválida")
				apiErrors.WriteError(w, apiErrors.ErrInvalidAdminKey, "Chave administrativa inválida", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
