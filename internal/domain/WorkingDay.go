package domain

// WorkingDayRecord descreve uma sexta ou um sábado do mês e se houve pedidos nele
type WorkingDayRecord struct {
	Date        string `json:"date"`
	Day         int    `json:"day"`
	DayOfWeek   string `json:"dayOfWeek"` // friday | saturday
	WeekOfMonth int    `json:"weekOfMonth"`
	Worked      bool   `json:"worked"`
	HasLocal    bool   `json:"hasLocal"`
	HasEvents   bool   `json:"hasEvents"`
	OrdersCount int    `json:"ordersCount"`
	LocalOrders int    `json:"localOrders"`
	EventOrders int    `json:"eventOrders"`
}

// MonthWorkingData resume os dias trabalhados de um mês
type MonthWorkingData struct {
	Year              int                `json:"year"`
	Month             int                `json:"month"`
	MonthName         string             `json:"monthName"`
	Fridays           int                `json:"viernes"`
	Saturdays         int                `json:"sabados"`
	TotalPossible     int                `json:"totalPossible"`
	ActualWorked      int                `json:"actualWorked"`
	Rate              float64            `json:"rate"`
	WorkingDaysDetail []WorkingDayRecord `json:"workingDaysDetail"`
}

// OperationRate é a taxa de operação acumulada de todos os meses da janela
type OperationRate struct {
	Rate          float64            `json:"rate"`
	TotalPossible int                `json:"totalPossible"`
	TotalWorked   int                `json:"totalWorked"`
	Months        []MonthWorkingData `json:"months"`
}
