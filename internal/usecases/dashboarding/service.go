package dashboarding

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/larscobian/Pizzana-Dashboard/infrastructure/integrator/sheets"
	"github.com/larscobian/Pizzana-Dashboard/infrastructure/repository"
	"github.com/larscobian/Pizzana-Dashboard/internal/config"
	"github.com/larscobian/Pizzana-Dashboard/internal/domain"
	"github.com/larscobian/Pizzana-Dashboard/pkg/log"
	"github.com/larscobian/Pizzana-Dashboard/pkg/metrics"
)

// Quantidade de amostras devolvidas pelo diagnóstico
const (
	sampleOrders   = 5
	sampleKPIs     = 3
	sampleProducts = 3
	sampleClients  = 3
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Dashboarder calcula o dashboard e os diagnósticos a partir da planilha
type Dashboarder interface {
	GetDashboard(ctx context.Context, params domain.DashboardParams) (*domain.DashboardResponse, error)
	GetDebugSummary(ctx context.Context) (*domain.DebugSummary, error)
	CheckConnection(ctx context.Context) (*domain.ConnectionStatus, error)
	GetAvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error)
}

// Service implementa Dashboarder
type Service struct {
	cfg        *config.Config
	source     sheets.SheetsIntegrator
	kpiHistory repository.PeriodKPIRepository
	now        func() time.Time
}

// NewService cria uma nova instância do serviço de dashboard
func NewService(cfg *config.Config, source sheets.SheetsIntegrator) Dashboarder {
	return &Service{
		cfg:    cfg,
		source: source,
		now:    time.Now,
	}
}

// WithKPIHistory completa os meses ausentes da aba KPIs com o histórico gravado
func (s *Service) WithKPIHistory(repo repository.PeriodKPIRepository) *Service {
	s.kpiHistory = repo
	return s
}

// WithClock troca o relógio usado para resolver os períodos
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) GetDashboard(ctx context.Context, params domain.DashboardParams) (*domain.DashboardResponse, error) {
	logger := log.ForContext(ctx)

	if params.Period == "" {
		params.Period = domain.Period6Months
	}
	switch params.Granularity {
	case domain.GranularityDays, domain.GranularityWeeks, domain.GranularityMonths:
	default:
		params.Granularity = domain.GranularityMonths
	}

	raw, err := s.source.FetchDataset(ctx)
	if err != nil {
		logger.WithError(err).Error("dashboard: erro ao ler a planilha")
		return nil, NewDashboardError(ErrDataSource, CodeDataSource, err.Error())
	}

	loc := s.location()
	now := s.now().In(loc)

	orders, kpis, products, _ := s.normalize(ctx, raw)

	window := ResolveWindow(params.Period, params.StartDate, params.EndDate, now, loc)
	kpis = s.mergeKPIHistory(ctx, kpis, window)

	metrics.DashboardRequests.WithLabelValues(periodMetricLabel(params.Period), string(params.Granularity)).Inc()

	response := Assemble(AssembleInput{
		Params:   params,
		Orders:   orders,
		KPIs:     kpis,
		Catalog:  domain.NewProductCatalog(products),
		Now:      now,
		Location: loc,
	})

	logger.WithFields(log.Fields{
		"period":                 params.Period,
		"dashboard_orders":       len(orders),
		"dashboard_total":        response.General.TotalRevenue,
		"dashboard_granularity":  params.Granularity,
		"dashboard_chart_points": len(response.General.CandlestickData),
	}).Info("dashboard: métricas calculadas")

	return response, nil
}

func (s *Service) GetDebugSummary(ctx context.Context) (*domain.DebugSummary, error) {
	raw, err := s.source.FetchDataset(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("dashboard: erro ao ler a planilha para diagnóstico")
		return nil, NewDashboardError(ErrDataSource, CodeDataSource, err.Error())
	}

	_, kpis, products, rejections := s.normalize(ctx, raw)

	samples := make([]domain.OrderSample, 0, sampleOrders)
	for _, order := range limit(raw.Orders, sampleOrders) {
		samples = append(samples, domain.OrderSample{
			ID:     order.ID,
			Date:   order.Date,
			Total:  ParseAmount(order.Total),
			Type:   order.Type,
			Client: order.ClientName,
		})
	}

	return &domain.DebugSummary{
		Summary: domain.DatasetSummary{
			TotalOrders:   len(raw.Orders),
			TotalClients:  len(raw.Clients),
			TotalKPIs:     len(raw.KPIs),
			TotalProducts: len(raw.Products),
			RejectedRows:  len(rejections),
		},
		SampleOrders:   samples,
		SampleKPIs:     limit(kpis, sampleKPIs),
		SampleProducts: limit(products, sampleProducts),
		SampleClients:  NormalizeClients(limit(raw.Clients, sampleClients)),
		Rejections:     rejections,
	}, nil
}

func (s *Service) CheckConnection(ctx context.Context) (*domain.ConnectionStatus, error) {
	credentials := s.credentials()
	if !credentials.Complete() {
		log.ForContext(ctx).WithFields(log.Fields{
			"dashboard_client_email":   credentials.ClientEmail,
			"dashboard_private_key":    credentials.PrivateKey,
			"dashboard_spreadsheet_id": credentials.SpreadsheetID,
		}).Warn("dashboard: variáveis de acesso à planilha ausentes")

		return &domain.ConnectionStatus{Credentials: credentials},
			NewDashboardError(ErrMissingCredential, CodeMissingCredential, "Missing environment variables")
	}

	status, err := s.source.CheckConnection(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("dashboard: falha no teste de conexão")
		return &domain.ConnectionStatus{Credentials: credentials},
			NewDashboardError(ErrDataSource, CodeDataSource, err.Error())
	}

	status.Credentials = credentials
	return status, nil
}

// normalize converte as quatro abas e registra cada linha rejeitada
func (s *Service) normalize(ctx context.Context, raw *domain.RawDataset) ([]domain.Order, []domain.PeriodKPI, []domain.Product, []domain.RowRejection) {
	orders, orderRejections := NormalizeOrders(raw.Orders, s.location())
	kpis, kpiRejections := NormalizeKPIs(raw.KPIs)
	products := NormalizeProducts(raw.Products)

	rejections := append(orderRejections, kpiRejections...)
	logger := log.ForContext(ctx)
	for _, rejection := range rejections {
		metrics.RejectedRows.WithLabelValues(rejection.Sheet).Inc()
		logger.WithFields(log.Fields{
			"sheet":           rejection.Sheet,
			"row":             rejection.Row,
			"dashboard_id":    rejection.ID,
			"dashboard_value": rejection.Value,
		}).Warnf("dashboard: linha descartada: %s", rejection.Reason)
	}

	return orders, kpis, products, rejections
}

// mergeKPIHistory acrescenta os meses gravados que não estão na planilha.
// A linha da planilha sempre prevalece e cada mês aparece uma única vez.
func (s *Service) mergeKPIHistory(ctx context.Context, kpis []domain.PeriodKPI, w domain.DateWindow) []domain.PeriodKPI {
	if s.kpiHistory == nil {
		return kpis
	}

	start, end := w.Start, w.End
	if start.After(end) {
		start, end = end, start
	}

	entries, err := s.kpiHistory.GetByPeriodRange(ctx, start, end)
	if err != nil {
		log.ForContext(ctx).WithError(fmt.Errorf("%w: %v", ErrKPIHistory, err)).
			Warn("dashboard: seguindo apenas com os KPIs da planilha")
		return kpis
	}

	seen := make(map[string]bool, len(kpis)+len(entries))
	for _, kpi := range kpis {
		seen[kpi.Period()] = true
	}

	merged := kpis
	for _, entry := range entries {
		if entry == nil || seen[entry.KPI.Period()] {
			continue
		}
		seen[entry.KPI.Period()] = true
		merged = append(merged, entry.KPI)
	}

	return merged
}

// periodMetricLabel limita os valores do label de período aos tokens conhecidos
func periodMetricLabel(period domain.Period) string {
	if _, ok := periodLabels[period]; ok || period == domain.PeriodCustom {
		return string(period)
	}
	return "other"
}

func (s *Service) credentials() domain.CredentialsCheck {
	gs := s.cfg.GoogleSheets
	hasFile := strings.TrimSpace(gs.CredentialsFile) != ""

	return domain.CredentialsCheck{
		ClientEmail:   hasFile || strings.TrimSpace(gs.ClientEmail) != "",
		PrivateKey:    hasFile || strings.TrimSpace(gs.PrivateKey) != "",
		SpreadsheetID: strings.TrimSpace(gs.SpreadsheetID) != "",
	}
}

func (s *Service) location() *time.Location {
	if s.cfg.App.Location != nil {
		return s.cfg.App.Location
	}
	return time.Local
}
