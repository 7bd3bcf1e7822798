package sheets

import (
	"fmt"
	"strings"

	"github.com/larscobian/Pizzana-Dashboard/internal/domain"
)

const (
	ordersRange   = "PEDIDOS!A:Y"
	clientsRange  = "CLIENTES!A:J"
	kpisRange     = "KPIs!A:P"
	productsRange = "PRODUCTOS!A:E"

	kpiHeaderRows = 2
)

// Ranges lidos em uma única chamada batchGet, na ordem esperada por parseDataset
var datasetRanges = []string{ordersRange, clientsRange, kpisRange, productsRange}

// PizzaColumns são os cabeçalhos da aba PEDIDOS que guardam a quantidade de cada pizza
var PizzaColumns = []string{"🌼", "⚡", "🌿", "🧀", "🥬", "🍕", "🤌", "🍄", "🌽"}

// Colunas fixas da aba PEDIDOS
const (
	colOrderID         = 0
	colOrderDate       = 1
	colOrderClient     = 2
	colOrderWhatsapp   = 3
	colOrderAddress    = 4
	colOrderNotes      = 14
	colOrderMethod     = 15
	colOrderDeliveryBy = 16
	colOrderCommune    = 17
	colOrderPreTotal   = 18
	colOrderDelivery   = 19
	colOrderCommission = 20
	colOrderTotal      = 21
	colOrderType       = 22
)

func parseDataset(values [][][]interface{}) *domain.RawDataset {
	sheet := func(i int) [][]interface{} {
		if i < len(values) {
			return values[i]
		}
		return nil
	}

	return &domain.RawDataset{
		Orders:   parseOrders(sheet(0)),
		Clients:  parseClients(sheet(1)),
		KPIs:     parseKPIs(sheet(2)),
		Products: parseProducts(sheet(3)),
	}
}

func parseOrders(values [][]interface{}) []domain.RawOrder {
	if len(values) < 2 {
		return []domain.RawOrder{}
	}

	pizzaIndex := make(map[string]int, len(PizzaColumns))
	for i, header := range values[0] {
		name := strings.TrimSpace(cellValue(header))
		for _, emoji := range PizzaColumns {
			if name != emoji {
				continue
			}
			if _, exists := pizzaIndex[emoji]; !exists {
				pizzaIndex[emoji] = i
			}
		}
	}

	orders := make([]domain.RawOrder, 0, len(values)-1)
	for i, row := range values[1:] {
		order := domain.RawOrder{
			Row:        i + 2,
			ID:         cell(row, colOrderID),
			Date:       cell(row, colOrderDate),
			ClientName: cell(row, colOrderClient),
			Whatsapp:   cell(row, colOrderWhatsapp),
			Address:    cell(row, colOrderAddress),
			Notes:      cell(row, colOrderNotes),
			Method:     cell(row, colOrderMethod),
			DeliveryBy: cell(row, colOrderDeliveryBy),
			Commune:    cell(row, colOrderCommune),
			PreTotal:   cell(row, colOrderPreTotal),
			Delivery:   cell(row, colOrderDelivery),
			Commission: cell(row, colOrderCommission),
			Total:      cell(row, colOrderTotal),
			Type:       cell(row, colOrderType),
		}

		for _, emoji := range PizzaColumns {
			idx, ok := pizzaIndex[emoji]
			if !ok {
				continue
			}
			quantity := cell(row, idx)
			if quantity == "" {
				continue
			}
			order.Items = append(order.Items, domain.RawOrderItem{Product: emoji, Quantity: quantity})
		}

		orders = append(orders, order)
	}

	return orders
}

func parseClients(values [][]interface{}) []domain.RawClient {
	if len(values) < 2 {
		return []domain.RawClient{}
	}

	clients := make([]domain.RawClient, 0, len(values)-1)
	for i, row := range values[1:] {
		clients = append(clients, domain.RawClient{Row: i + 2, Values: cells(row, 10)})
	}

	return clients
}

func parseKPIs(values [][]interface{}) []domain.RawKPI {
	if len(values) <= kpiHeaderRows {
		return []domain.RawKPI{}
	}

	kpis := make([]domain.RawKPI, 0, len(values)-kpiHeaderRows)
	for i, row := range values[kpiHeaderRows:] {
		kpis = append(kpis, domain.RawKPI{Row: i + kpiHeaderRows + 1, Values: cells(row, 16)})
	}

	return kpis
}

func parseProducts(values [][]interface{}) []domain.RawProduct {
	if len(values) < 2 {
		return []domain.RawProduct{}
	}

	products := make([]domain.RawProduct, 0, len(values)-1)
	for i, row := range values[1:] {
		products = append(products, domain.RawProduct{
			Row:         i + 2,
			Name:        cell(row, 0),
			Emoji:       cell(row, 1),
			Price:       cell(row, 2),
			Active:      cell(row, 3),
			Ingredients: cell(row, 4),
		})
	}

	return products
}

// cells devolve exatamente width colunas, completando com vazio
func cells(row []interface{}, width int) []string {
	out := make([]string, width)
	for i := range out {
		out[i] = cell(row, i)
	}
	return out
}

func cell(row []interface{}, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return cellValue(row[index])
}

func cellValue(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	default:
		return fmt.Sprint(value)
	}
}
