package dashboarding

import (
	"fmt"
	"time"

	"github.com/larscobian/Pizzana-Dashboard/internal/domain"
	"github.com/larscobian/Pizzana-Dashboard/pkg/utils"
)

// defaultTrailingMonths é usado para tokens desconhecidos e para custom sem datas válidas
const defaultTrailingMonths = 6

// trailingMonths mapeia os períodos que começam no início de um mês anterior
var trailingMonths = map[domain.Period]int{
	domain.Period3Months:     3,
	domain.Period6Months:     6,
	domain.PeriodCurrentYear: 12,
	domain.Period2Years:      24,
	domain.PeriodLastMonth:   1,
	domain.Period12Months:    12,
}

var periodLabels = map[domain.Period]string{
	domain.PeriodCurrentMonth: "Este mes",
	domain.Period30Days:       "Últimos 30 días",
	domain.Period3Months:      "Últimos 3 meses",
	domain.Period6Months:      "Últimos 6 meses",
	domain.PeriodCurrentYear:  "Último año",
	domain.Period2Years:       "2 años",
	domain.PeriodLastMonth:    "Último Mes",
	domain.Period12Months:     "Últimos 12 Meses",
}

const defaultPeriodLabel = "Período Seleccionado"

// ResolveWindow converte o token de período em uma janela concreta relativa a now.
// Períodos custom não são validados: start > end é repassado sem correção.
func ResolveWindow(period domain.Period, customStart, customEnd string, now time.Time, loc *time.Location) domain.DateWindow {
	now = now.In(loc)

	if period == domain.PeriodCustom && customStart != "" && customEnd != "" {
		start, errStart := utils.ParseISOInLocation(customStart, loc)
		end, errEnd := utils.ParseISOInLocation(customEnd, loc)
		if errStart == nil && errEnd == nil {
			return domain.DateWindow{Start: start, End: end}
		}
	}

	switch period {
	case domain.PeriodCurrentMonth:
		return domain.DateWindow{Start: utils.StartOfMonth(now), End: now}
	case domain.Period30Days:
		// 30 x 24h exatos, sem alinhar ao calendário
		return domain.DateWindow{Start: now.Add(-30 * 24 * time.Hour), End: now}
	}

	months, ok := trailingMonths[period]
	if !ok {
		months = defaultTrailingMonths
	}

	return domain.DateWindow{
		Start: utils.StartOfMonth(now).AddDate(0, -months, 0),
		End:   now,
	}
}

// PreviousWindow retorna a janela imediatamente anterior com a mesma duração,
// terminando um milissegundo antes do início da janela atual
func PreviousWindow(w domain.DateWindow) domain.DateWindow {
	end := w.Start.Add(-time.Millisecond)
	return domain.DateWindow{
		Start: end.Add(-w.Duration()),
		End:   end,
	}
}

// PeriodLabel gera o rótulo exibido para o período
func PeriodLabel(period domain.Period, w domain.DateWindow) string {
	if period == domain.PeriodCustom {
		return fmt.Sprintf("%s - %s", w.Start.Format("02/01/2006"), w.End.Format("02/01/2006"))
	}

	if label, ok := periodLabels[period]; ok {
		return label
	}

	return defaultPeriodLabel
}
