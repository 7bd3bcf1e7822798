package dashboarding

import (
	"time"

	"github.com/larscobian/Pizzana-Dashboard/internal/domain"
)

// Tamanho dos rankings do bloco Local
const topRankingSize = 5

// AssembleInput reúne os dados já normalizados de uma requisição
type AssembleInput struct {
	Params   domain.DashboardParams
	Orders   []domain.Order
	KPIs     []domain.PeriodKPI
	Catalog  domain.ProductCatalog
	Now      time.Time
	Location *time.Location
}

// Assemble resolve a janela, filtra as janelas atual e anterior e compõe a resposta
func Assemble(in AssembleInput) *domain.DashboardResponse {
	window := ResolveWindow(in.Params.Period, in.Params.StartDate, in.Params.EndDate, in.Now, in.Location)
	previous := PreviousWindow(window)
	label := PeriodLabel(in.Params.Period, window)

	current := FilterByWindow(in.Orders, window)
	comparison := FilterByWindow(in.Orders, previous)

	totalRevenue := TotalRevenue(current)
	split := ChannelSplit(current)
	local := split.Get(domain.ChannelLocal)
	events := split.Get(domain.ChannelEvent)

	localOrders := FilterByChannel(current, domain.ChannelLocal)
	eventOrders := FilterByChannel(current, domain.ChannelEvent)

	granularity := in.Params.Granularity
	if granularity == "" {
		granularity = domain.GranularityMonths
	}

	operation := OperationRate(in.KPIs, in.Orders, window)

	return &domain.DashboardResponse{
		General: domain.GeneralMetrics{
			TotalRevenue:     totalRevenue,
			RevenueChange:    PercentageChange(totalRevenue, TotalRevenue(comparison)),
			LocalRevenue:     local.Revenue,
			EventRevenue:     events.Revenue,
			LocalPercentage:  local.Percentage,
			EventPercentage:  events.Percentage,
			ChannelSplit:     split,
			CandlestickData:  ChartSeries(granularity, in.Orders, in.KPIs, window),
			ChartGranularity: granularity,
			PeriodLabel:      label,
			StartDate:        window.Start.Format(time.DateOnly),
			EndDate:          window.End.Format(time.DateOnly),
			OperationRate:    operation.Rate,
			WorkingDaysData:  operation.Months,
		},
		Local: domain.LocalMetrics{
			DailyRevenue:  DailyRevenue(localOrders),
			TotalRevenue:  local.Revenue,
			TotalSales:    len(localOrders),
			UniqueClients: UniqueClientCount(localOrders),
			TopClients:    TopClients(localOrders, topRankingSize),
			TopPizzas:     TopProducts(localOrders, in.Catalog, topRankingSize),
			PeriodLabel:   label,
		},
		Events: domain.EventMetrics{
			DailyRevenue:  DailyRevenue(eventOrders),
			TotalRevenue:  events.Revenue,
			TotalSales:    len(eventOrders),
			UniqueClients: UniqueClientCount(eventOrders),
			PeriodLabel:   label,
		},
	}
}

