package handler

import (
	"errors"
	"net/http"

	"github.com/larscobian/Pizzana-Dashboard/internal/usecases/dashboarding"
	"github.com/larscobian/Pizzana-Dashboard/pkg/log"
)

// GetDebugSummary devolve a contagem das abas e amostras das primeiras linhas
func GetDebugSummary(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.GetDebugSummary(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("handler: erro no diagnóstico da planilha")
			writeServiceError(w, err, "Error desconocido", errorDetails(err))
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	})
}

// TestConnection verifica as credenciais e lista as abas da planilha
func TestConnection(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status, err := service.CheckConnection(r.Context())
		if err == nil {
			writeJSON(w, r, http.StatusOK, status)
			return
		}

		log.ForContext(r.Context()).WithError(err).Warn("handler: teste de conexão falhou")

		if errors.Is(err, dashboarding.ErrMissingCredential) && status != nil {
			writeServiceError(w, err, "Missing environment variables", status.Credentials)
			return
		}

		writeServiceError(w, err, "Connection failed", errorDetails(err))
	})
}
