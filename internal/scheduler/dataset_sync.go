package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/larscobian/Pizzana-Dashboard/infrastructure/integrator/sheets"
	"github.com/larscobian/Pizzana-Dashboard/internal/config"
	"github.com/larscobian/Pizzana-Dashboard/pkg/log"
)

// DatasetSyncConfig representa a configuração do agendador de leitura da planilha
type DatasetSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DatasetSyncService relê a planilha periodicamente para manter o cache aquecido
type DatasetSyncService struct {
	scheduler           *gocron.Scheduler
	config              DatasetSyncConfig
	source              sheets.SheetsIntegrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	lastOrdersCount     int
}

// NewDatasetSyncService cria uma nova instância do serviço de leitura agendada da planilha
func NewDatasetSyncService(source sheets.SheetsIntegrator, appConfig *config.Config) *DatasetSyncService {
	syncConfig := DatasetSyncConfig{
		CronSchedule: appConfig.DatasetSync.CronSchedule,
		SyncEnabled:  appConfig.DatasetSync.Enabled,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("scheduler: configuração da leitura da planilha carregada")

	return &DatasetSyncService{
		scheduler: gocron.NewScheduler(location(appConfig)),
		config:    syncConfig,
		source:    source,
	}
}

// Start inicia o agendador
func (s *DatasetSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("scheduler: leitura agendada da planilha desabilitada por configuração")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("scheduler: iniciando leitura agendada da planilha")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshDataset(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar leitura da planilha: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("scheduler: parando leitura agendada da planilha")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshDataset ignora o cache e relê as abas da planilha
func (s *DatasetSyncService) refreshDataset(ctx context.Context) {
	startTime := time.Now()
	if !s.begin(startTime) {
		log.L.Info("scheduler: leitura da planilha já em andamento, ignorando")
		return
	}
	defer s.finish()

	dataset, err := s.source.RefreshDataset(ctx)
	if err != nil {
		s.syncMutex.Lock()
		s.lastSyncError = err.Error()
		s.syncMutex.Unlock()
		log.L.WithError(err).Error("scheduler: erro ao reler a planilha")
		return
	}

	s.syncMutex.Lock()
	s.lastSyncError = ""
	s.lastOrdersCount = len(dataset.Orders)
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	log.L.WithFields(log.Fields{
		"duration_ms":      time.Since(startTime).Milliseconds(),
		"dashboard_orders": len(dataset.Orders),
	}).Info("scheduler: planilha relida com sucesso")
}

// begin marca a execução e o seu início; os campos de status só mudam com syncMutex
func (s *DatasetSyncService) begin(startedAt time.Time) bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = startedAt
	return true
}

func (s *DatasetSyncService) finish() {
	s.syncMutex.Lock()
	s.syncRunning = false
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente uma releitura da planilha
func (s *DatasetSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("scheduler: leitura da planilha já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	log.L.Info("scheduler: iniciando leitura manual da planilha")
	go s.refreshDataset(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *DatasetSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
		"last_orders_count":      s.lastOrdersCount,
	}
}

func location(appConfig *config.Config) *time.Location {
	if appConfig.App.Location != nil {
		return appConfig.App.Location
	}
	return time.Local
}
