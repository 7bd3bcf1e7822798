package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/larscobian/Pizzana-Dashboard/pkg/apiErrors"
	"github.com/larscobian/Pizzana-Dashboard/pkg/log"
)

// Tipos de cron job que podem ser disparados manualmente
const (
	CronJobTypeDataset    = "dataset"
	CronJobTypeKPIHistory = "kpi-history"
	CronJobTypeAll        = "all"
)

// SyncJob é um agendador que aceita execução manual e informa seu status
type SyncJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os agendadores que podem ser executados manualmente
type CronJobServices struct {
	DatasetSyncService    SyncJob
	KPIHistorySyncService SyncJob
}

func (s CronJobServices) jobs() map[string]SyncJob {
	jobs := make(map[string]SyncJob, 2)
	if s.DatasetSyncService != nil {
		jobs[CronJobTypeDataset] = s.DatasetSyncService
	}
	if s.KPIHistorySyncService != nil {
		jobs[CronJobTypeKPIHistory] = s.KPIHistorySyncService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs := services.jobs()

		switch cronType {
		case CronJobTypeDataset, CronJobTypeKPIHistory:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
				return
			}
			job.TriggerManualSync()

		case CronJobTypeAll:
			for _, job := range jobs {
				job.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: dataset, kpi-history, all", nil)
			return
		}

		logger.WithField("dashboard_cron_type", cronType).Info("handler: cron job disparada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
