package domain

// AvailablePeriods lista os meses com KPIs disponíveis, na planilha ou no histórico
type AvailablePeriods struct {
	Periods []string `json:"periods"` // yyyy-mm
	Years   []string `json:"years"`
	Months  []string `json:"months"`
	Sources []string `json:"sources"` // "sheet", "history"
}
