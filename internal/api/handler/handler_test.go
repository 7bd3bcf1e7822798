package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/larscobian/Pizzana-Dashboard/internal/api/handler/router"
	"github.com/larscobian/Pizzana-Dashboard/internal/domain"
	"github.com/larscobian/Pizzana-Dashboard/internal/usecases/dashboarding"
	"github.com/larscobian/Pizzana-Dashboard/internal/usecases/dashboarding/mocks"
	"github.com/larscobian/Pizzana-Dashboard/pkg/apiErrors"
	"github.com/larscobian/Pizzana-Dashboard/pkg/log"
	"github.com/larscobian/Pizzana-Dashboard/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const adminKey = "chave-admin"

func init() {
	log.SetupTestLogger()
}

func adminKeyHash(t *testing.T) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminKey), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

type fakeSyncJob struct {
	mu        sync.Mutex
	triggered int
	status    map[string]any
}

func (f *fakeSyncJob) TriggerManualSync() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.triggered++
}

func (f *fakeSyncJob) GetStatus() map[string]any {
	return f.status
}

func TestGetDashboard(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		setup    func(m *mocks.MockDashboarder)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:  "Sem parâmetros usa seis meses e granularidade mensal",
			query: "",
			setup: func(m *mocks.MockDashboarder) {
				m.EXPECT().GetDashboard(gomock.Any(), domain.DashboardParams{
					Period:      domain.Period6Months,
					Granularity: domain.GranularityMonths,
				}).Return(&domain.DashboardResponse{
					General: domain.GeneralMetrics{TotalRevenue: 1500},
				}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
				general := decode(t, rec)["general"].(map[string]any)
				assert.Equal(t, 1500.0, general["totalRevenue"])
			},
		},
		{
			name:  "Período personalizado e granularidade desconhecida",
			query: "?period=custom&startDate=2024-03-01&endDate=2024-03-31&granularity=hours",
			setup: func(m *mocks.MockDashboarder) {
				m.EXPECT().GetDashboard(gomock.Any(), domain.DashboardParams{
					Period:      domain.Period("custom"),
					StartDate:   "2024-03-01",
					EndDate:     "2024-03-31",
					Granularity: domain.GranularityMonths,
				}).Return(&domain.DashboardResponse{}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name:  "Falha na planilha responde 500 sem expor o erro de origem",
			query: "?period=current_month&granularity=days",
			setup: func(m *mocks.MockDashboarder) {
				m.EXPECT().GetDashboard(gomock.Any(), gomock.Any()).Return(nil,
					dashboarding.NewDashboardError(dashboarding.ErrDataSource, dashboarding.CodeDataSource, "quota exceeded"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				body := decode(t, rec)
				assert.Equal(t, apiErrors.ErrDataSource, body["code"])
				assert.Equal(t, DashboardErrorMessage, body["message"])
				assert.NotContains(t, body, "details")
				assert.NotContains(t, rec.Body.String(), "quota exceeded")
			},
		},
		{
			name:  "Erro inesperado vira erro interno",
			query: "",
			setup: func(m *mocks.MockDashboarder) {
				m.EXPECT().GetDashboard(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Equal(t, apiErrors.ErrInternalServer, decode(t, rec)["code"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockDashboarder(ctrl)
			tt.setup(service)

			rec := httptest.NewRecorder()
			GetDashboard(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard"+tt.query, nil))

			tt.validate(t, rec)
		})
	}
}

func TestGetAvailablePeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboarder(ctrl)
	service.EXPECT().GetAvailablePeriods(gomock.Any()).Return(&domain.AvailablePeriods{
		Periods: []string{"2024-02", "2024-03"},
		Years:   []string{"2024"},
		Months:  []string{"02", "03"},
		Sources: []string{"sheet"},
	}, nil)

	rt := router.New(router.WithRoutes(Dashboard(service)...))
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard/periods", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"2024-02", "2024-03"}, decode(t, rec)["periods"])
}

func TestDiagnostics(t *testing.T) {
	hash := adminKeyHash(t)

	tests := []struct {
		name     string
		path     string
		key      string
		setup    func(m *mocks.MockDashboarder)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Debug sem chave administrativa é recusado",
			path: "/v1/debug",
			key:  "",
			setup: func(m *mocks.MockDashboarder) {
				m.EXPECT().GetDebugSummary(gomock.Any()).Times(0)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
			},
		},
		{
			name: "Debug devolve contagens",
			path: "/v1/debug",
			key:  adminKey,
			setup: func(m *mocks.MockDashboarder) {
				m.EXPECT().GetDebugSummary(gomock.Any()).Return(&domain.DebugSummary{
					Summary: domain.DatasetSummary{TotalOrders: 12, TotalKPIs: 3},
				}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				summary := decode(t, rec)["summary"].(map[string]any)
				assert.Equal(t, 12.0, summary["totalPedidos"])
				assert.Equal(t, 3.0, summary["totalKPIs"])
			},
		},
		{
			name: "Teste de conexão com credenciais ausentes",
			path: "/v1/test-connection",
			key:  adminKey,
			setup: func(m *mocks.MockDashboarder) {
				m.EXPECT().CheckConnection(gomock.Any()).Return(
					&domain.ConnectionStatus{Credentials: domain.CredentialsCheck{SpreadsheetID: true}},
					dashboarding.NewDashboardError(dashboarding.ErrMissingCredential, dashboarding.CodeMissingCredential, "Missing environment variables"),
				)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				body := decode(t, rec)
				assert.Equal(t, apiErrors.ErrMissingCredential, body["code"])
				assert.Equal(t, "Missing environment variables", body["message"])
				details := body["details"].(map[string]any)
				assert.Equal(t, false, details["clientEmail"])
				assert.Equal(t, true, details["spreadsheetId"])
			},
		},
		{
			name: "Teste de conexão com falha na API",
			path: "/v1/test-connection",
			key:  adminKey,
			setup: func(m *mocks.MockDashboarder) {
				m.EXPECT().CheckConnection(gomock.Any()).Return(
					&domain.ConnectionStatus{},
					dashboarding.NewDashboardError(dashboarding.ErrDataSource, dashboarding.CodeDataSource, "permission denied"),
				)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				body := decode(t, rec)
				assert.Equal(t, "Connection failed", body["message"])
				assert.Equal(t, "permission denied", body["details"])
			},
		},
		{
			name: "Teste de conexão bem sucedido",
			path: "/v1/test-connection",
			key:  adminKey,
			setup: func(m *mocks.MockDashboarder) {
				m.EXPECT().CheckConnection(gomock.Any()).Return(&domain.ConnectionStatus{
					Success:             true,
					SpreadsheetTitle:    "Pizzana",
					SheetsCount:         2,
					AgendaEventosExists: true,
					AllSheets:           []string{"PEDIDOS", "AGENDA EVENTOS"},
				}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				body := decode(t, rec)
				assert.Equal(t, true, body["success"])
				assert.Equal(t, true, body["agendaEventosExists"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockDashboarder(ctrl)
			tt.setup(service)

			rt := router.New(router.WithRoutes(Diagnostics(service, hash)...))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.key != "" {
				req.Header.Set(middleware.AdminKeyHeader, tt.key)
			}
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, req)

			tt.validate(t, rec)
		})
	}
}

func TestCronJobs(t *testing.T) {
	hash := adminKeyHash(t)

	tests := []struct {
		name     string
		method   string
		path     string
		validate func(t *testing.T, rec *httptest.ResponseRecorder, dataset, kpis *fakeSyncJob)
	}{
		{
			name:   "Dispara apenas a leitura da planilha",
			method: http.MethodPost,
			path:   "/v1/cron/run/dataset",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, dataset, kpis *fakeSyncJob) {
				assert.Equal(t, http.StatusAccepted, rec.Code)
				assert.Equal(t, 1, dataset.triggered)
				assert.Equal(t, 0, kpis.triggered)
			},
		},
		{
			name:   "Dispara todas as cron jobs",
			method: http.MethodPost,
			path:   "/v1/cron/run/all",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, dataset, kpis *fakeSyncJob) {
				assert.Equal(t, http.StatusAccepted, rec.Code)
				assert.Equal(t, 1, dataset.triggered)
				assert.Equal(t, 1, kpis.triggered)
			},
		},
		{
			name:   "Tipo inválido responde 400",
			method: http.MethodPost,
			path:   "/v1/cron/run/meta",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, dataset, kpis *fakeSyncJob) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidRequest, decode(t, rec)["code"])
				assert.Zero(t, dataset.triggered+kpis.triggered)
			},
		},
		{
			name:   "Status reúne os dois agendadores",
			method: http.MethodGet,
			path:   "/v1/cron/status",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, dataset, kpis *fakeSyncJob) {
				assert.Equal(t, http.StatusOK, rec.Code)
				body := decode(t, rec)
				assert.Contains(t, body, CronJobTypeDataset)
				assert.Contains(t, body, CronJobTypeKPIHistory)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataset := &fakeSyncJob{status: map[string]any{"sync_enabled": true}}
			kpis := &fakeSyncJob{status: map[string]any{"sync_enabled": false}}

			rt := router.New(router.WithRoutes(CronJobs(CronJobServices{
				DatasetSyncService:    dataset,
				KPIHistorySyncService: kpis,
			}, hash)...))

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set(middleware.AdminKeyHeader, adminKey)
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, req)

			tt.validate(t, rec, dataset, kpis)
		})
	}
}

func TestHealthcheckAndMetricsRoutes(t *testing.T) {
	rt := router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Metrics()...),
	)

	for _, path := range []string{"/healthcheck", "/metrics"} {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}
