package handler

import (
	"net/http"

	"github.com/larscobian/Pizzana-Dashboard/internal/domain"
	"github.com/larscobian/Pizzana-Dashboard/internal/usecases/dashboarding"
	"github.com/larscobian/Pizzana-Dashboard/pkg/log"
)

// DashboardErrorMessage é a mensagem devolvida quando a planilha não pode ser lida
const DashboardErrorMessage = "Error al obtener datos del dashboard"

// GetDashboard calcula as métricas do período pedido em ?period=&startDate=&endDate=&granularity=
func GetDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := dashboardParams(r)
		logger.WithFields(log.Fields{
			"period":                params.Period,
			"dashboard_start":       params.StartDate,
			"dashboard_end":         params.EndDate,
			"dashboard_granularity": params.Granularity,
		}).Debug("handler: calculando dashboard")

		response, err := service.GetDashboard(r.Context(), params)
		if err != nil {
			logger.WithError(err).Error("handler: erro ao calcular dashboard")
			writeServiceError(w, err, DashboardErrorMessage, nil)
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}

// dashboardParams lê a query string. Granularidade desconhecida cai no padrão mensal.
func dashboardParams(r *http.Request) domain.DashboardParams {
	query := r.URL.Query()

	params := domain.DashboardParams{
		Period:      domain.Period(query.Get("period")),
		StartDate:   query.Get("startDate"),
		EndDate:     query.Get("endDate"),
		Granularity: domain.Granularity(query.Get("granularity")),
	}

	if params.Period == "" {
		params.Period = domain.Period6Months
	}

	switch params.Granularity {
	case domain.GranularityDays, domain.GranularityWeeks, domain.GranularityMonths:
	default:
		params.Granularity = domain.GranularityMonths
	}

	return params
}

// GetAvailablePeriods lista os meses com KPIs disponíveis
func GetAvailablePeriods(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		periods, err := service.GetAvailablePeriods(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("handler: erro ao listar períodos")
			writeServiceError(w, err, DashboardErrorMessage, nil)
			return
		}

		writeJSON(w, r, http.StatusOK, periods)
	})
}
