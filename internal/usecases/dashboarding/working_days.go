package dashboarding

import (
	"time"

	"github.com/larscobian/Pizzana-Dashboard/internal/domain"
	"github.com/larscobian/Pizzana-Dashboard/pkg/utils"
)

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthName retorna o nome do mês em espanhol
func MonthName(month time.Month) string {
	return monthNames[month-1]
}

// EligibleDays retorna todas as sextas e sábados do mês
func EligibleDays(year int, month time.Month, loc *time.Location) []time.Time {
	var days []time.Time
	for d := time.Date(year, month, 1, 0, 0, 0, 0, loc); d.Month() == month; d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Friday || d.Weekday() == time.Saturday {
			days = append(days, d)
		}
	}
	return days
}

// monthsInWindow retorna o primeiro dia de cada mês que cruza a janela
func monthsInWindow(w domain.DateWindow) []time.Time {
	if w.Start.After(w.End) {
		return nil
	}

	var months []time.Time
	last := utils.StartOfMonth(w.End)
	for m := utils.StartOfMonth(w.Start); !m.After(last); m = m.AddDate(0, 1, 0) {
		months = append(months, m)
	}
	return months
}

type dayActivity struct {
	orders int
	local  int
	events int
}

// OperationRate compara, mês a mês, as sextas e sábados trabalhados segundo os KPIs
// com os possíveis no calendário. O detalhe diário usa os pedidos apenas como
// informação e não entra no cálculo da taxa.
func OperationRate(kpis []domain.PeriodKPI, orders []domain.Order, w domain.DateWindow) domain.OperationRate {
	loc := w.Start.Location()

	kpiByPeriod := make(map[string]domain.PeriodKPI, len(kpis))
	for _, k := range kpis {
		if _, exists := kpiByPeriod[k.Period()]; !exists {
			kpiByPeriod[k.Period()] = k
		}
	}

	activity := make(map[string]*dayActivity)
	for _, o := range orders {
		key := o.Date.Format(time.DateOnly)
		a, ok := activity[key]
		if !ok {
			a = &dayActivity{}
			activity[key] = a
		}
		a.orders++
		switch o.Channel {
		case domain.ChannelLocal:
			a.local++
		case domain.ChannelEvent:
			a.events++
		}
	}

	result := domain.OperationRate{Months: make([]domain.MonthWorkingData, 0)}

	for _, first := range monthsInWindow(w) {
		kpi := kpiByPeriod[domain.PeriodKey(first.Year(), int(first.Month()))]
		eligible := EligibleDays(first.Year(), first.Month(), loc)

		worked := kpi.FridaysWorked + kpi.SaturdaysWorked
		month := domain.MonthWorkingData{
			Year:              first.Year(),
			Month:             int(first.Month()),
			MonthName:         MonthName(first.Month()),
			Fridays:           kpi.FridaysWorked,
			Saturdays:         kpi.SaturdaysWorked,
			TotalPossible:     len(eligible),
			ActualWorked:      worked,
			Rate:              utils.Percentage(float64(worked), float64(len(eligible))),
			WorkingDaysDetail: make([]domain.WorkingDayRecord, 0, len(eligible)),
		}

		for _, day := range eligible {
			record := domain.WorkingDayRecord{
				Date:        day.Format(time.DateOnly),
				Day:         day.Day(),
				DayOfWeek:   "friday",
				WeekOfMonth: (day.Day() + 6) / 7,
			}
			if day.Weekday() == time.Saturday {
				record.DayOfWeek = "saturday"
			}
			if a, ok := activity[record.Date]; ok {
				record.Worked = a.orders > 0
				record.OrdersCount = a.orders
				record.LocalOrders = a.local
				record.EventOrders = a.events
				record.HasLocal = a.local > 0
				record.HasEvents = a.events > 0
			}
			month.WorkingDaysDetail = append(month.WorkingDaysDetail, record)
		}

		result.TotalPossible += month.TotalPossible
		result.TotalWorked += month.ActualWorked
		result.Months = append(result.Months, month)
	}

	result.Rate = utils.Percentage(float64(result.TotalWorked), float64(result.TotalPossible))

	return result
}
