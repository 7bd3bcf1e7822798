package dashboarding

import (
	"testing"
	"time"

	"github.com/larscobian/Pizzana-Dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble(t *testing.T) {
	raw := []domain.RawOrder{
		{Row: 2, ID: "P1", Date: "01/03/2024", ClientName: "Ana", Total: "$1.000", Type: "Local",
			Items: []domain.RawOrderItem{{Product: "🌼", Quantity: "1"}, {Product: "🍄", Quantity: "2"}}},
		{Row: 3, ID: "P2", Date: "2024-03-02", ClientName: "Beto", Total: "$2.000", Type: "Evento"},
		{Row: 4, ID: "P3", Date: "", ClientName: "Carla", Total: "$9.000", Type: "Local"},
		{Row: 5, ID: "P4", Date: "20/02/2024", ClientName: "Dani", Total: "$1.500", Type: "Local"},
	}
	orders, rejections := NormalizeOrders(raw, testLoc)
	require.Len(t, rejections, 1)

	catalog := domain.NewProductCatalog([]domain.Product{{Name: "Margarita", Emoji: "🌼", Price: 1000}})
	kpis := []domain.PeriodKPI{{Year: 2024, Month: 3, TotalRevenue: 3000, LocalRevenue: 1000, EventRevenue: 2000, FridaysWorked: 1, SaturdaysWorked: 1}}

	tests := []struct {
		name     string
		params   domain.DashboardParams
		validate func(t *testing.T, resp *domain.DashboardResponse)
	}{
		{
			name: "Janela de março com pedidos DD/MM e ISO",
			params: domain.DashboardParams{
				Period:    domain.PeriodCustom,
				StartDate: "2024-03-01",
				EndDate:   "2024-03-31",
			},
			validate: func(t *testing.T, resp *domain.DashboardResponse) {
				general := resp.General
				assert.Equal(t, 3000.0, general.TotalRevenue)
				assert.Equal(t, 1000.0, general.LocalRevenue)
				assert.Equal(t, 2000.0, general.EventRevenue)
				assert.Equal(t, 33.33, general.LocalPercentage)
				assert.Equal(t, 66.67, general.EventPercentage)
				assert.Equal(t, "2024-03-01", general.StartDate)
				assert.Equal(t, "2024-03-31", general.EndDate)
				assert.Equal(t, "01/03/2024 - 31/03/2024", general.PeriodLabel)
				assert.Equal(t, domain.GranularityMonths, general.ChartGranularity)

				// Janela anterior de mesma duração cobre o pedido de fevereiro
				assert.Equal(t, 100.0, general.RevenueChange)

				require.Len(t, general.CandlestickData, 1)
				assert.Equal(t, "3/2024", general.CandlestickData[0].Label)

				assert.Equal(t, 20.0, general.OperationRate)
				require.Len(t, general.WorkingDaysData, 1)

				assert.Equal(t, 1, resp.Local.TotalSales)
				assert.Equal(t, 1, resp.Local.UniqueClients)
				assert.Equal(t, []domain.TopClient{{Name: "Ana", Revenue: 1000, Orders: 1}}, resp.Local.TopClients)
				assert.Equal(t, []domain.TopProduct{
					{Emoji: "🍄", Name: UnknownProductName, Count: 2, Revenue: 0},
					{Emoji: "🌼", Name: "Margarita", Count: 1, Revenue: 1000},
				}, resp.Local.TopPizzas)

				assert.Equal(t, 1, resp.Events.TotalSales)
				assert.Equal(t, []domain.DailyRevenue{{Date: "2024-03-02", Revenue: 2000, FormattedDate: "02/03"}}, resp.Events.DailyRevenue)
			},
		},
		{
			name:   "Granularidade diária usa os pedidos",
			params: domain.DashboardParams{Period: domain.PeriodCurrentMonth, Granularity: domain.GranularityDays},
			validate: func(t *testing.T, resp *domain.DashboardResponse) {
				assert.Equal(t, "Este mes", resp.General.PeriodLabel)
				require.Len(t, resp.General.CandlestickData, 2)
				assert.Equal(t, "2024-03-01", resp.General.CandlestickData[0].Label)
				assert.Equal(t, 100.0, resp.General.CandlestickData[1].ChangePercent)
			},
		},
	}

	now := time.Date(2024, 3, 15, 18, 0, 0, 0, testLoc)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Assemble(AssembleInput{
				Params:   tt.params,
				Orders:   orders,
				KPIs:     kpis,
				Catalog:  catalog,
				Now:      now,
				Location: testLoc,
			})
			require.NotNil(t, resp)
			tt.validate(t, resp)
		})
	}
}
