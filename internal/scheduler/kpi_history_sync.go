package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/larscobian/Pizzana-Dashboard/infrastructure/integrator/sheets"
	"github.com/larscobian/Pizzana-Dashboard/infrastructure/repository"
	"github.com/larscobian/Pizzana-Dashboard/internal/config"
	"github.com/larscobian/Pizzana-Dashboard/internal/domain"
	"github.com/larscobian/Pizzana-Dashboard/internal/usecases/dashboarding"
	"github.com/larscobian/Pizzana-Dashboard/pkg/log"
	"github.com/larscobian/Pizzana-Dashboard/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

// KPIHistorySyncConfig representa a configuração do agendador do histórico de KPIs
type KPIHistorySyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// KPIHistorySyncResult resume uma execução da sincronização
type KPIHistorySyncResult struct {
	Saved    int
	Failed   int
	Rejected int
}

// KPIHistorySyncService grava no banco os KPIs mensais da planilha, para que os meses
// apagados ou reescritos na aba KPIs continuem disponíveis no gráfico mensal
type KPIHistorySyncService struct {
	scheduler           *gocron.Scheduler
	config              KPIHistorySyncConfig
	source              sheets.SheetsIntegrator
	kpiRepo             repository.PeriodKPIRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          KPIHistorySyncResult
}

// NewKPIHistorySyncService cria uma nova instância do serviço de sincronização do histórico
func NewKPIHistorySyncService(
	source sheets.SheetsIntegrator,
	kpiRepo repository.PeriodKPIRepository,
	appConfig *config.Config,
) *KPIHistorySyncService {
	syncConfig := KPIHistorySyncConfig{
		CronSchedule:      appConfig.KPIHistorySync.CronSchedule,
		MaxConcurrentJobs: appConfig.KPIHistorySync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.KPIHistorySync.Enabled,
	}
	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = 1
	}

	log.L.WithFields(log.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("scheduler: configuração do histórico de KPIs carregada")

	return &KPIHistorySyncService{
		scheduler: gocron.NewScheduler(location(appConfig)),
		config:    syncConfig,
		source:    source,
		kpiRepo:   kpiRepo,
	}
}

// Start inicia o agendador
func (s *KPIHistorySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("scheduler: sincronização do histórico de KPIs desabilitada por configuração")
		return nil
	}
	if s.kpiRepo == nil {
		return fmt.Errorf("erro ao agendar histórico de KPIs: banco de dados não configurado")
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("scheduler: iniciando sincronização do histórico de KPIs")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncKPIHistory(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar histórico de KPIs: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("scheduler: parando sincronização do histórico de KPIs")
		s.scheduler.Stop()
	}()

	return nil
}

// syncKPIHistory lê a aba KPIs e grava cada mês no histórico
func (s *KPIHistorySyncService) syncKPIHistory(ctx context.Context) {
	startTime := time.Now()

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("scheduler: histórico de KPIs já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	result, err := s.saveKPIs(ctx)
	if err != nil {
		log.L.WithError(err).Error("scheduler: erro ao sincronizar histórico de KPIs")
		return
	}

	s.syncMutex.Lock()
	s.lastResult = result
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	log.L.WithFields(log.Fields{
		"duration_ms":        time.Since(startTime).Milliseconds(),
		"dashboard_saved":    result.Saved,
		"dashboard_failed":   result.Failed,
		"dashboard_rejected": result.Rejected,
	}).Info("scheduler: histórico de KPIs sincronizado")
}

// saveKPIs grava os KPIs da planilha com no máximo MaxConcurrentJobs escritas simultâneas.
// A falha de um mês é registrada e não interrompe os demais.
func (s *KPIHistorySyncService) saveKPIs(ctx context.Context) (KPIHistorySyncResult, error) {
	dataset, err := s.source.FetchDataset(ctx)
	if err != nil {
		return KPIHistorySyncResult{}, fmt.Errorf("erro ao ler KPIs da planilha: %w", err)
	}

	kpis, rejections := dashboarding.NormalizeKPIs(dataset.KPIs)

	var saved, failed int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.MaxConcurrentJobs)

	for _, kpi := range kpis {
		g.Go(func() error {
			entry := &domain.PeriodKPIEntry{Period: kpi.Period(), KPI: kpi}
			if err := s.kpiRepo.SaveOrUpdate(gctx, entry); err != nil {
				atomic.AddInt32(&failed, 1)
				metrics.KPIHistorySaved.WithLabelValues("error").Inc()
				log.L.WithError(err).WithField("period", entry.Period).
					Error("scheduler: erro ao gravar KPI no histórico")
				return nil
			}

			atomic.AddInt32(&saved, 1)
			metrics.KPIHistorySaved.WithLabelValues("ok").Inc()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return KPIHistorySyncResult{}, err
	}

	return KPIHistorySyncResult{
		Saved:    int(saved),
		Failed:   int(failed),
		Rejected: len(rejections),
	}, nil
}

// TriggerManualSync inicia manualmente uma sincronização do histórico de KPIs
func (s *KPIHistorySyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("scheduler: histórico de KPIs já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	if s.kpiRepo == nil {
		log.L.Warn("scheduler: histórico de KPIs indisponível sem banco de dados")
		return
	}

	log.L.Info("scheduler: iniciando sincronização manual do histórico de KPIs")
	go s.syncKPIHistory(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *KPIHistorySyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           s.syncRunning,
		"history_available":      s.kpiRepo != nil,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_saved":             s.lastResult.Saved,
		"last_failed":            s.lastResult.Failed,
		"last_rejected":          s.lastResult.Rejected,
	}
}
