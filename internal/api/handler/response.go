package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/larscobian/Pizzana-Dashboard/internal/usecases/dashboarding"
	"github.com/larscobian/Pizzana-Dashboard/pkg/apiErrors"
	"github.com/larscobian/Pizzana-Dashboard/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: erro ao enviar resposta")
	}
}

// writeServiceError traduz o código de um DashboardError; outros erros viram 500.
// O texto do erro de origem não vai para a resposta.
func writeServiceError(w http.ResponseWriter, err error, message string, details any) {
	code := apiErrors.ErrInternalServer

	var dashboardErr *dashboarding.DashboardError
	if errors.As(err, &dashboardErr) {
		code = dashboardErr.Code
	}

	apiErrors.WriteError(w, code, message, details)
}

// errorDetails expõe os detalhes do DashboardError; usado apenas nas rotas administrativas
func errorDetails(err error) any {
	var dashboardErr *dashboarding.DashboardError
	if errors.As(err, &dashboardErr) && dashboardErr.Details != "" {
		return dashboardErr.Details
	}
	return nil
}
