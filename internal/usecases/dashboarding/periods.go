package dashboarding

import (
	"context"
	"sort"

	"github.com/larscobian/Pizzana-Dashboard/internal/domain"
	"github.com/larscobian/Pizzana-Dashboard/pkg/log"
)

// Origens dos períodos disponíveis
const (
	SourceSheet   = "sheet"
	SourceHistory = "history"
)

// GetAvailablePeriods junta os meses da aba KPIs com os meses gravados no histórico.
// Uma falha no histórico não impede a resposta com os meses da planilha.
func (s *Service) GetAvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error) {
	raw, err := s.source.FetchDataset(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("dashboard: erro ao ler a planilha para listar períodos")
		return nil, NewDashboardError(ErrDataSource, CodeDataSource, err.Error())
	}

	kpis, _ := NormalizeKPIs(raw.KPIs)

	periodMap := make(map[string]bool, len(kpis))
	for _, kpi := range kpis {
		periodMap[kpi.Period()] = true
	}
	sources := []string{SourceSheet}

	if s.kpiHistory != nil {
		stored, err := s.kpiHistory.GetAllPeriods(ctx)
		if err != nil {
			log.ForContext(ctx).WithError(err).Warn("dashboard: histórico de KPIs indisponível ao listar períodos")
		} else {
			sources = append(sources, SourceHistory)
			for _, period := range stored {
				periodMap[period] = true
			}
		}
	}

	yearMap := make(map[string]bool)
	monthMap := make(map[string]bool)
	periods := make([]string, 0, len(periodMap))
	for period := range periodMap {
		periods = append(periods, period)

		// yyyy-mm
		if len(period) == 7 {
			yearMap[period[:4]] = true
			monthMap[period[5:]] = true
		}
	}

	sort.Strings(periods)

	return &domain.AvailablePeriods{
		Periods: periods,
		Years:   sortedKeys(yearMap),
		Months:  sortedKeys(monthMap),
		Sources: sources,
	}, nil
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
