package dashboarding

import (
	"fmt"
	"sort"
	"time"

	"github.com/larscobian/Pizzana-Dashboard/internal/domain"
	"github.com/larscobian/Pizzana-Dashboard/pkg/utils"
)

// FilterByWindow retorna os pedidos com start <= data <= end
func FilterByWindow(orders []domain.Order, w domain.DateWindow) []domain.Order {
	filtered := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if w.Contains(o.Date) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// FilterByChannel retorna os pedidos do canal informado
func FilterByChannel(orders []domain.Order, channel domain.Channel) []domain.Order {
	filtered := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.Channel == channel {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// DailyRevenue soma o faturamento por dia em ordem cronológica
func DailyRevenue(orders []domain.Order) []domain.DailyRevenue {
	// Chaves yyyy-mm-dd ordenam cronologicamente como texto
	byDay := make(map[string]float64)
	labels := make(map[string]string)
	for _, o := range orders {
		key := o.Date.Format(time.DateOnly)
		byDay[key] += o.Total
		labels[key] = o.Date.Format("02/01")
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	result := make([]domain.DailyRevenue, 0, len(days))
	for _, day := range days {
		result = append(result, domain.DailyRevenue{
			Date:          day,
			Revenue:       byDay[day],
			FormattedDate: labels[day],
		})
	}
	return result
}

// WeekStart retorna a segunda-feira da semana de t; domingo pertence à semana anterior
func WeekStart(t time.Time) time.Time {
	dow := int(t.Weekday())
	diff := 1 - dow
	if dow == 0 {
		diff = -6
	}
	return utils.StartOfDay(t).AddDate(0, 0, diff)
}

type bucket struct {
	key    string
	totals map[domain.Channel]float64
}

// BucketOrders agrupa os pedidos por dia ou por semana, separando os canais.
// Qualquer granularidade diferente de semanas é tratada como diária.
func BucketOrders(orders []domain.Order, granularity domain.Granularity) []domain.ChartPoint {
	keyOf := utils.StartOfDay
	if granularity == domain.GranularityWeeks {
		keyOf = WeekStart
	}

	buckets := make(map[string]*bucket)
	for _, o := range orders {
		key := keyOf(o.Date).Format(time.DateOnly)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{key: key, totals: make(map[domain.Channel]float64, len(domain.Channels))}
			buckets[key] = b
		}
		b.totals[o.Channel] += o.Total
	}

	sorted := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		sorted = append(sorted, b)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].key < sorted[j].key })

	points := make([]domain.ChartPoint, 0, len(sorted))
	for _, b := range sorted {
		local := b.totals[domain.ChannelLocal]
		events := b.totals[domain.ChannelEvent]
		fair := b.totals[domain.ChannelFair]
		other := b.totals[domain.ChannelOther]

		points = append(points, domain.ChartPoint{
			Label:  b.key,
			Total:  local + events + fair + other,
			Local:  local,
			Events: events,
			Fair:   fair,
			Other:  other,
		})
	}

	return withChangeAndShares(points)
}

// BucketKPIs monta a série mensal a partir dos KPIs cujo primeiro dia cai na janela
func BucketKPIs(kpis []domain.PeriodKPI, w domain.DateWindow) []domain.ChartPoint {
	loc := w.Start.Location()

	inWindow := make([]domain.PeriodKPI, 0, len(kpis))
	for _, k := range kpis {
		if w.Contains(k.FirstDay(loc)) {
			inWindow = append(inWindow, k)
		}
	}
	sort.SliceStable(inWindow, func(i, j int) bool {
		return inWindow[i].FirstDay(loc).Before(inWindow[j].FirstDay(loc))
	})

	points := make([]domain.ChartPoint, 0, len(inWindow))
	for _, k := range inWindow {
		points = append(points, domain.ChartPoint{
			Label:  fmt.Sprintf("%d/%d", k.Month, k.Year),
			Total:  k.TotalRevenue,
			Local:  k.LocalRevenue,
			Events: k.EventRevenue,
			Fair:   k.FairRevenue,
			Other:  k.OtherRevenue,
		})
	}

	return withChangeAndShares(points)
}

// ChartSeries escolhe a série do gráfico principal; o padrão é mensal via KPIs
func ChartSeries(granularity domain.Granularity, orders []domain.Order, kpis []domain.PeriodKPI, w domain.DateWindow) []domain.ChartPoint {
	switch granularity {
	case domain.GranularityDays, domain.GranularityWeeks:
		return BucketOrders(FilterByWindow(orders, w), granularity)
	default:
		return BucketKPIs(kpis, w)
	}
}

// withChangeAndShares preenche a variação contra o ponto anterior e a participação
// dos canais Local e Evento. Espera os pontos já em ordem cronológica.
func withChangeAndShares(points []domain.ChartPoint) []domain.ChartPoint {
	for i := range points {
		if i > 0 {
			points[i].ChangePercent = PercentageChange(points[i].Total, points[i-1].Total)
		}
		points[i].LocalPercent = utils.Percentage(points[i].Local, points[i].Total)
		points[i].EventPercent = utils.Percentage(points[i].Events, points[i].Total)
	}
	return points
}
