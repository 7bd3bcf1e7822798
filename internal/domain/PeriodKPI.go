package domain

import "time"

// PeriodKPI consolida os indicadores de um mês (uma linha da aba KPIs)
type PeriodKPI struct {
	Year            int     `json:"ano"`
	Month           int     `json:"mes"`
	Clients         int     `json:"clientes"`
	TotalRevenue    float64 `json:"ingresos_total"`
	TotalSales      int     `json:"ventas_total"`
	LocalRevenue    float64 `json:"ingresos_local"`
	LocalSales      int     `json:"ventas_local"`
	EventRevenue    float64 `json:"ingresos_eventos"`
	EventSales      int     `json:"ventas_eventos"`
	FairRevenue     float64 `json:"ingresos_feria"`
	FairSales       int     `json:"ventas_feria"`
	OtherRevenue    float64 `json:"ingresos_otros"`
	OtherSales      int     `json:"ventas_otros"`
	WorkDays        int     `json:"work_days"`
	FridaysWorked   int     `json:"viernes"`
	SaturdaysWorked int     `json:"sabados"`
}

// Period retorna o identificador yyyy-mm do KPI
func (k PeriodKPI) Period() string {
	return PeriodKey(k.Year, k.Month)
}

// FirstDay retorna o primeiro dia do mês do KPI no fuso informado
func (k PeriodKPI) FirstDay(loc *time.Location) time.Time {
	return time.Date(k.Year, time.Month(k.Month), 1, 0, 0, 0, 0, loc)
}

// PeriodKey monta a chave yyyy-mm usada para indexar KPIs
func PeriodKey(year, month int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// PeriodKPIEntry é um KPI mensal persistido no histórico
type PeriodKPIEntry struct {
	ID        string    `json:"id"`
	Period    string    `json:"period"` // yyyy-mm
	KPI       PeriodKPI `json:"kpi"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
