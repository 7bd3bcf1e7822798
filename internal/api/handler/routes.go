package handler

import (
	"net/http"

	"github.com/larscobian/Pizzana-Dashboard/internal/api/handler/router"
	"github.com/larscobian/Pizzana-Dashboard/internal/usecases/dashboarding"
	"github.com/larscobian/Pizzana-Dashboard/pkg/metrics"
	"github.com/larscobian/Pizzana-Dashboard/pkg/middleware"
)

type adminMiddleware = func(http.Handler) http.Handler

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/periods",
			Method:  http.MethodGet,
			Handler: GetAvailablePeriods(service),
		},
	}
}

func Diagnostics(service dashboarding.Dashboarder, adminKeyHash string) []router.Route {
	adminOnly := []adminMiddleware{middleware.AdminKey(adminKeyHash)}

	return []router.Route{
		{
			Path:        "/v1/debug",
			Method:      http.MethodGet,
			Handler:     GetDebugSummary(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/test-connection",
			Method:      http.MethodGet,
			Handler:     TestConnection(service),
			Middlewares: adminOnly,
		},
	}
}

func CronJobs(services CronJobServices, adminKeyHash string) []router.Route {
	adminOnly := []adminMiddleware{middleware.AdminKey(adminKeyHash)}

	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: adminOnly,
		},
	}
}
