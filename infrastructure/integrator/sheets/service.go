package sheets

import (
	"context"
	"time"

	"github.com/larscobian/Pizzana-Dashboard/infrastructure/integrator/sheets/sheetsclient"
	"github.com/larscobian/Pizzana-Dashboard/internal/config"
	"github.com/larscobian/Pizzana-Dashboard/internal/domain"
	"github.com/larscobian/Pizzana-Dashboard/pkg/log"
	"github.com/larscobian/Pizzana-Dashboard/pkg/metrics"
	"github.com/pkg/errors"
)

// AgendaEventosSheet é a aba de agenda verificada no teste de conexão
const AgendaEventosSheet = "AGENDA EVENTOS"

type SheetsIntegrator interface {
	// FetchDataset devolve as quatro abas, usando o cache quando habilitado
	FetchDataset(ctx context.Context) (*domain.RawDataset, error)
	// RefreshDataset ignora o cache e relê a planilha
	RefreshDataset(ctx context.Context) (*domain.RawDataset, error)
	CheckConnection(ctx context.Context) (*domain.ConnectionStatus, error)
}

type SheetsService struct {
	cfg    *config.Config
	Client sheetsclient.Client
	cache  *datasetCache
}

func New(cfg *config.Config, client sheetsclient.Client) *SheetsService {
	return &SheetsService{
		cfg:    cfg,
		Client: client,
	}
}

// WithCache mantém o último dataset lido por ttl; ttl <= 0 desabilita o cache
func (s *SheetsService) WithCache(ttl time.Duration) *SheetsService {
	if ttl > 0 {
		s.cache = newDatasetCache(ttl, time.Now)
	}
	return s
}

func (s *SheetsService) FetchDataset(ctx context.Context) (*domain.RawDataset, error) {
	if s.cache == nil {
		return s.fetch(ctx)
	}
	return s.cache.get(ctx, s.fetch)
}

func (s *SheetsService) RefreshDataset(ctx context.Context) (*domain.RawDataset, error) {
	if s.cache == nil {
		return s.fetch(ctx)
	}
	return s.cache.refresh(ctx, s.fetch)
}

func (s *SheetsService) CheckConnection(ctx context.Context) (*domain.ConnectionStatus, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	info, err := s.Client.GetSpreadsheet(ctx, s.cfg.GoogleSheets.SpreadsheetID)
	if err != nil {
		return nil, errors.Wrap(err, "sheets: erro ao testar conexão")
	}

	status := &domain.ConnectionStatus{
		Success:          true,
		SpreadsheetTitle: info.Title,
		SheetsCount:      len(info.Sheets),
		AllSheets:        info.Sheets,
	}
	for _, name := range info.Sheets {
		if name == AgendaEventosSheet {
			status.AgendaEventosExists = true
			break
		}
	}

	return status, nil
}

func (s *SheetsService) fetch(ctx context.Context) (*domain.RawDataset, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	values, err := s.Client.BatchGet(ctx, s.cfg.GoogleSheets.SpreadsheetID, datasetRanges)
	if err != nil {
		metrics.DatasetFetchDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return nil, errors.Wrap(err, "sheets: erro ao ler abas da planilha")
	}
	metrics.DatasetFetchDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())

	dataset := parseDataset(values)

	log.ForContext(ctx).WithFields(log.Fields{
		"dashboard_orders":   len(dataset.Orders),
		"dashboard_clients":  len(dataset.Clients),
		"dashboard_kpis":     len(dataset.KPIs),
		"dashboard_products": len(dataset.Products),
	}).Debug("sheets: dataset lido da planilha")

	return dataset, nil
}

func (s *SheetsService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.GoogleSheets.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.GoogleSheets.RequestTimeout)
}
