package dashboarding

import (
	"testing"
	"time"

	"github.com/larscobian/Pizzana-Dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEligibleDays(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    time.Month
		expected int
	}{
		{name: "Maio de 2024 tem 5 sextas e 4 sábados", year: 2024, month: time.May, expected: 9},
		{name: "Março de 2024 tem 5 sextas e 5 sábados", year: 2024, month: time.March, expected: 10},
		{name: "Fevereiro de 2024", year: 2024, month: time.February, expected: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := EligibleDays(tt.year, tt.month, testLoc)
			assert.Len(t, days, tt.expected)
			for _, d := range days {
				assert.Contains(t, []time.Weekday{time.Friday, time.Saturday}, d.Weekday())
			}
		})
	}
}

func TestOperationRate(t *testing.T) {
	tests := []struct {
		name     string
		kpis     []domain.PeriodKPI
		orders   []domain.Order
		window   domain.DateWindow
		validate func(t *testing.T, rate domain.OperationRate)
	}{
		{
			name: "Taxa do mês a partir dos KPIs",
			kpis: []domain.PeriodKPI{{Year: 2024, Month: 5, FridaysWorked: 4, SaturdaysWorked: 3}},
			orders: []domain.Order{
				newOrder("1", day(2024, 5, 3), "Ana", domain.ChannelLocal, 1000),
				newOrder("2", day(2024, 5, 3), "Beto", domain.ChannelEvent, 1000),
				newOrder("3", day(2024, 5, 7), "Carla", domain.ChannelLocal, 1000),
			},
			window: domain.DateWindow{Start: day(2024, 5, 1), End: time.Date(2024, 5, 31, 23, 0, 0, 0, testLoc)},
			validate: func(t *testing.T, rate domain.OperationRate) {
				assert.Equal(t, 77.78, rate.Rate)
				assert.Equal(t, 9, rate.TotalPossible)
				assert.Equal(t, 7, rate.TotalWorked)

				require.Len(t, rate.Months, 1)
				month := rate.Months[0]
				assert.Equal(t, "Mayo", month.MonthName)
				assert.Equal(t, 4, month.Fridays)
				assert.Equal(t, 3, month.Saturdays)
				require.Len(t, month.WorkingDaysDetail, 9)

				first := month.WorkingDaysDetail[0]
				assert.Equal(t, "2024-05-03", first.Date)
				assert.Equal(t, "friday", first.DayOfWeek)
				assert.Equal(t, 1, first.WeekOfMonth)
				assert.True(t, first.Worked)
				assert.True(t, first.HasLocal)
				assert.True(t, first.HasEvents)
				assert.Equal(t, 2, first.OrdersCount)

				second := month.WorkingDaysDetail[1]
				assert.Equal(t, "saturday", second.DayOfWeek)
				assert.False(t, second.Worked)

				last := month.WorkingDaysDetail[8]
				assert.Equal(t, 31, last.Day)
				assert.Equal(t, 5, last.WeekOfMonth)
			},
		},
		{
			name:   "Mês sem KPI conta zero trabalhados",
			window: domain.DateWindow{Start: time.Date(2024, 4, 20, 0, 0, 0, 0, testLoc), End: day(2024, 5, 10)},
			kpis:   []domain.PeriodKPI{{Year: 2024, Month: 5, FridaysWorked: 2, SaturdaysWorked: 1}},
			validate: func(t *testing.T, rate domain.OperationRate) {
				require.Len(t, rate.Months, 2)
				assert.Equal(t, "Abril", rate.Months[0].MonthName)
				assert.Equal(t, 0, rate.Months[0].ActualWorked)
				assert.Equal(t, 0.0, rate.Months[0].Rate)
				assert.Equal(t, 8+9, rate.TotalPossible)
				assert.Equal(t, 3, rate.TotalWorked)
			},
		},
		{
			name:   "Janela invertida não tem meses",
			window: domain.DateWindow{Start: day(2024, 5, 10), End: day(2024, 5, 1)},
			validate: func(t *testing.T, rate domain.OperationRate) {
				assert.Empty(t, rate.Months)
				assert.Equal(t, 0.0, rate.Rate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, OperationRate(tt.kpis, tt.orders, tt.window))
		})
	}
}
