package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pizzana"

var (
	// RejectedRows conta linhas descartadas na normalização, por aba
	RejectedRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rejected_rows_total",
		Help:      "Linhas da planilha descartadas durante a normalização.",
	}, []string{"sheet"})

	// DatasetFetchDuration mede a leitura da planilha
	DatasetFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dataset_fetch_duration_seconds",
		Help:      "Duração da leitura das abas da planilha.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	// DatasetCache conta acertos e falhas do cache da planilha
	DatasetCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dataset_cache_total",
		Help:      "Consultas ao cache da planilha por resultado.",
	}, []string{"result"})

	// DashboardRequests conta os dashboards calculados por período e granularidade
	DashboardRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_requests_total",
		Help:      "Dashboards calculados por período e granularidade.",
	}, []string{"period", "granularity"})

	// HTTPRequestDuration mede as requisições HTTP por método e status
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duração das requisições HTTP.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "status"})

	// KPIHistorySaved conta KPIs gravados no histórico
	KPIHistorySaved = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "kpi_history_saved_total",
		Help:      "KPIs mensais gravados no histórico por resultado.",
	}, []string{"result"})
)

// Handler expõe as métricas no formato do Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}
