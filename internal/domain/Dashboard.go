package domain

// DailyRevenue é o faturamento de um dia
type DailyRevenue struct {
	Date          string  `json:"date"`
	Revenue       float64 `json:"revenue"`
	FormattedDate string  `json:"formattedDate"`
}

// ChartPoint é um ponto da série principal (mês, semana ou dia)
type ChartPoint struct {
	Label         string  `json:"month"`
	Total         float64 `json:"total"`
	Local         float64 `json:"local"`
	Events        float64 `json:"eventos"`
	Fair          float64 `json:"feria"`
	Other         float64 `json:"otros"`
	ChangePercent float64 `json:"changePercent"`
	LocalPercent  float64 `json:"localPercent"`
	EventPercent  float64 `json:"eventPercent"`
}

// ChannelStats são os números de um canal dentro da janela
type ChannelStats struct {
	Channel    Channel `json:"channel"`
	Revenue    float64 `json:"revenue"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ChannelSplit particiona o faturamento da janela por canal
type ChannelSplit struct {
	Total    float64        `json:"total"`
	Channels []ChannelStats `json:"channels"`
}

// Get retorna os números do canal informado
func (s ChannelSplit) Get(channel Channel) ChannelStats {
	for _, c := range s.Channels {
		if c.Channel == channel {
			return c
		}
	}
	return ChannelStats{Channel: channel}
}

// TopClient é um cliente no ranking por faturamento
type TopClient struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// TopProduct é um produto no ranking por unidades vendidas
type TopProduct struct {
	Emoji   string  `json:"emoji"`
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// GeneralMetrics é o bloco geral do dashboard
type GeneralMetrics struct {
	TotalRevenue     float64            `json:"totalRevenue"`
	RevenueChange    float64            `json:"revenueChange"`
	LocalRevenue     float64            `json:"localRevenue"`
	EventRevenue     float64            `json:"eventRevenue"`
	LocalPercentage  float64            `json:"localPercentage"`
	EventPercentage  float64            `json:"eventPercentage"`
	ChannelSplit     ChannelSplit       `json:"channelSplit"`
	CandlestickData  []ChartPoint       `json:"candlestickData"`
	ChartGranularity Granularity        `json:"chartGranularity"`
	PeriodLabel      string             `json:"periodLabel"`
	StartDate        string             `json:"startDate"`
	EndDate          string             `json:"endDate"`
	OperationRate    float64            `json:"operationRate"`
	WorkingDaysData  []MonthWorkingData `json:"workingDaysData"`
}

// LocalMetrics é o bloco do canal Local
type LocalMetrics struct {
	DailyRevenue  []DailyRevenue `json:"dailyRevenue"`
	TotalRevenue  float64        `json:"totalRevenue"`
	TotalSales    int            `json:"totalSales"`
	UniqueClients int            `json:"uniqueClients"`
	TopClients    []TopClient    `json:"topClients"`
	TopPizzas     []TopProduct   `json:"topPizzas"`
	PeriodLabel   string         `json:"periodLabel"`
}

// EventMetrics é o bloco do canal Evento
type EventMetrics struct {
	DailyRevenue  []DailyRevenue `json:"dailyRevenue"`
	TotalRevenue  float64        `json:"totalRevenue"`
	TotalSales    int            `json:"totalSales"`
	UniqueClients int            `json:"uniqueClients"`
	PeriodLabel   string         `json:"periodLabel"`
}

// DashboardResponse é a resposta completa do endpoint de dashboard
type DashboardResponse struct {
	General GeneralMetrics `json:"general"`
	Local   LocalMetrics   `json:"local"`
	Events  EventMetrics   `json:"events"`
}
