package domain

import "time"

// Period é o token de período aceito pelo dashboard
type Period string

const (
	PeriodCurrentMonth Period = "current_month"
	Period30Days       Period = "30_days"
	Period3Months      Period = "3_months"
	Period6Months      Period = "6_months"
	PeriodCurrentYear  Period = "current_year"
	Period2Years       Period = "2_years"
	PeriodLastMonth    Period = "last_month"
	Period12Months     Period = "12_months"
	PeriodCustom       Period = "custom"
)

// Granularity define o agrupamento da série do gráfico principal
type Granularity string

const (
	GranularityMonths Granularity = "months"
	GranularityWeeks  Granularity = "weeks"
	GranularityDays   Granularity = "days"
)

// DateWindow é um intervalo fechado [Start, End]
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// Contains indica se t está dentro da janela, incluindo as bordas
func (w DateWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Duration retorna a duração da janela
func (w DateWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// DashboardParams são os parâmetros de uma requisição de dashboard
type DashboardParams struct {
	Period      Period
	StartDate   string
	EndDate     string
	Granularity Granularity
}
