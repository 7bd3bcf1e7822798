package dashboarding

import (
	"strconv"
	"strings"
	"time"

	"github.com/larscobian/Pizzana-Dashboard/internal/domain"
	"github.com/larscobian/Pizzana-Dashboard/pkg/utils"
	"github.com/shopspring/decimal"
)

// Nomes das abas usados nos registros de rejeição
const (
	SheetOrders   = "PEDIDOS"
	SheetClients  = "CLIENTES"
	SheetKPIs     = "KPIs"
	SheetProducts = "PRODUCTOS"
)

// Número de colunas esperadas na aba KPIs
const kpiColumns = 16

var amountReplacer = strings.NewReplacer("$", "", ".", "", ",", "", " ", "")

// ParseOrderDate interpreta a data de um pedido. Com "/" o formato é DD/MM/YYYY,
// caso contrário ISO-8601. O resultado é a meia-noite do dia no fuso informado.
func ParseOrderDate(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrEmptyDate
	}

	if strings.Contains(raw, "/") {
		parts := strings.Split(raw, "/")
		if len(parts) != 3 {
			return time.Time{}, ErrInvalidDate
		}

		// O ano pode vir seguido da hora ("01/03/2024 10:00:00")
		day, okDay := leadingInt(parts[0])
		month, okMonth := leadingInt(parts[1])
		year, okYear := leadingInt(parts[2])
		if !okDay || !okMonth || !okYear {
			return time.Time{}, ErrInvalidDate
		}

		// time.Date normaliza valores fora do intervalo (31/02 vira 02/03)
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), nil
	}

	t, err := utils.ParseISOInLocation(raw, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	return utils.StartOfDay(t), nil
}

// ParseAmount remove "$", "." e "," antes de converter; ausente ou inválido vira 0
func ParseAmount(raw string) float64 {
	cleaned := amountReplacer.Replace(strings.TrimSpace(raw))
	if cleaned == "" {
		return 0
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}

	return value.InexactFloat64()
}

// ParseCount lê o inteiro no início do texto ("2.0" vira 2); sem dígitos vira 0
func ParseCount(raw string) int {
	value, _ := leadingInt(raw)
	return value
}

// leadingInt lê o sinal e os dígitos iniciais e ignora o resto do texto
func leadingInt(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)

	end := 0
	if end < len(raw) && (raw[end] == '-' || raw[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	value, err := strconv.Atoi(raw[:end])
	if err != nil {
		return 0, false
	}
	return value, true
}

// ParseChannel converte o tipo do pedido em canal; valores desconhecidos caem em Otros
func ParseChannel(raw string) domain.Channel {
	switch domain.Channel(raw) {
	case domain.ChannelLocal:
		return domain.ChannelLocal
	case domain.ChannelEvent:
		return domain.ChannelEvent
	case domain.ChannelFair:
		return domain.ChannelFair
	default:
		return domain.ChannelOther
	}
}

// NormalizeOrder converte uma linha bruta em pedido tipado ou em rejeição
func NormalizeOrder(raw domain.RawOrder, loc *time.Location) (domain.Order, *domain.RowRejection) {
	date, err := ParseOrderDate(raw.Date, loc)
	if err != nil {
		return domain.Order{}, &domain.RowRejection{
			Sheet:  SheetOrders,
			Row:    raw.Row,
			ID:     raw.ID,
			Value:  raw.Date,
			Reason: err.Error(),
		}
	}

	items := make([]domain.OrderItem, 0, len(raw.Items))
	for _, item := range raw.Items {
		quantity := ParseCount(item.Quantity)
		if quantity <= 0 {
			continue
		}
		items = append(items, domain.OrderItem{Product: item.Product, Quantity: quantity})
	}

	return domain.Order{
		ID:         raw.ID,
		Date:       date,
		ClientName: raw.ClientName,
		Channel:    ParseChannel(raw.Type),
		RawChannel: raw.Type,
		Total:      ParseAmount(raw.Total),
		PreTotal:   ParseAmount(raw.PreTotal),
		Delivery:   ParseAmount(raw.Delivery),
		Commission: ParseAmount(raw.Commission),
		Items:      items,
	}, nil
}

// NormalizeOrders separa as linhas válidas das rejeitadas, preservando a ordem de entrada
func NormalizeOrders(raw []domain.RawOrder, loc *time.Location) ([]domain.Order, []domain.RowRejection) {
	orders := make([]domain.Order, 0, len(raw))
	var rejections []domain.RowRejection

	for _, r := range raw {
		order, rejection := NormalizeOrder(r, loc)
		if rejection != nil {
			rejections = append(rejections, *rejection)
			continue
		}
		orders = append(orders, order)
	}

	return orders, rejections
}

// NormalizeKPIs converte as linhas da aba KPIs. Linhas sem ano ou mês numérico são
// rejeitadas; quando um mesmo mês aparece mais de uma vez, vale a primeira linha.
func NormalizeKPIs(raw []domain.RawKPI) ([]domain.PeriodKPI, []domain.RowRejection) {
	kpis := make([]domain.PeriodKPI, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	var rejections []domain.RowRejection

	for _, r := range raw {
		values := make([]string, kpiColumns)
		copy(values, r.Values)

		year, okYear := leadingInt(values[0])
		month, okMonth := leadingInt(values[1])
		if !okYear || !okMonth || month < 1 || month > 12 {
			rejections = append(rejections, domain.RowRejection{
				Sheet:  SheetKPIs,
				Row:    r.Row,
				Value:  strings.TrimSpace(values[0] + " " + values[1]),
				Reason: ErrInvalidKPI.Error(),
			})
			continue
		}

		kpi := domain.PeriodKPI{
			Year:            year,
			Month:           month,
			Clients:         ParseCount(values[2]),
			TotalRevenue:    ParseAmount(values[3]),
			TotalSales:      ParseCount(values[4]),
			LocalRevenue:    ParseAmount(values[5]),
			LocalSales:      ParseCount(values[6]),
			EventRevenue:    ParseAmount(values[7]),
			EventSales:      ParseCount(values[8]),
			FairRevenue:     ParseAmount(values[9]),
			FairSales:       ParseCount(values[10]),
			OtherRevenue:    ParseAmount(values[11]),
			OtherSales:      ParseCount(values[12]),
			WorkDays:        ParseCount(values[13]),
			FridaysWorked:   ParseCount(values[14]),
			SaturdaysWorked: ParseCount(values[15]),
		}

		if seen[kpi.Period()] {
			rejections = append(rejections, domain.RowRejection{
				Sheet:  SheetKPIs,
				Row:    r.Row,
				Value:  kpi.Period(),
				Reason: "mês duplicado",
			})
			continue
		}
		seen[kpi.Period()] = true

		kpis = append(kpis, kpi)
	}

	return kpis, rejections
}

// NormalizeProducts converte as linhas da aba PRODUCTOS
func NormalizeProducts(raw []domain.RawProduct) []domain.Product {
	products := make([]domain.Product, 0, len(raw))
	for _, r := range raw {
		products = append(products, domain.Product{
			Name:        r.Name,
			Emoji:       r.Emoji,
			Price:       ParseAmount(r.Price),
			Active:      r.Active == "SI",
			Ingredients: r.Ingredients,
		})
	}
	return products
}

// NormalizeClients converte as linhas da aba CLIENTES
func NormalizeClients(raw []domain.RawClient) []domain.Client {
	clients := make([]domain.Client, 0, len(raw))
	for _, r := range raw {
		values := make([]string, 10)
		copy(values, r.Values)

		clients = append(clients, domain.Client{
			Name:           values[0],
			Whatsapp:       values[1],
			Address:        values[2],
			FirstPurchase:  values[3],
			LastPurchase:   values[4],
			OrdersCount:    ParseCount(values[5]),
			TotalSpent:     ParseAmount(values[6]),
			DaysSinceOrder: ParseCount(values[7]),
			Status:         values[8],
			Notes:          values[9],
		})
	}
	return clients
}
