package sheets

import (
	"testing"

	"github.com/larscobian/Pizzana-Dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderHeader() []interface{} {
	header := make([]interface{}, 23)
	header[0] = "ID"
	header[1] = "FECHA"
	header[2] = "CLIENTE"
	for i, emoji := range PizzaColumns {
		header[5+i] = emoji
	}
	header[21] = "TOTAL"
	header[22] = "TIPO"
	return header
}

func TestParseOrders(t *testing.T) {
	tests := []struct {
		name     string
		values   [][]interface{}
		validate func(t *testing.T, orders []domain.RawOrder)
	}{
		{
			name:   "Aba vazia ou só com cabeçalho",
			values: [][]interface{}{orderHeader()},
			validate: func(t *testing.T, orders []domain.RawOrder) {
				assert.Empty(t, orders)
				assert.NotNil(t, orders)
			},
		},
		{
			name: "Mapeia colunas fixas e pizzas pelo cabeçalho",
			values: [][]interface{}{
				orderHeader(),
				{"P-1", "01/03/2024", "Ana", "", "", "2", "", "1", "", "", "", "", "", "", "sin cebolla", "", "", "", "", "", "", "$12.000", "Local"},
			},
			validate: func(t *testing.T, orders []domain.RawOrder) {
				require.Len(t, orders, 1)
				order := orders[0]
				assert.Equal(t, 2, order.Row)
				assert.Equal(t, "P-1", order.ID)
				assert.Equal(t, "01/03/2024", order.Date)
				assert.Equal(t, "Ana", order.ClientName)
				assert.Equal(t, "sin cebolla", order.Notes)
				assert.Equal(t, "$12.000", order.Total)
				assert.Equal(t, "Local", order.Type)
				assert.Equal(t, []domain.RawOrderItem{
					{Product: "🌼", Quantity: "2"},
					{Product: "🌿", Quantity: "1"},
				}, order.Items)
			},
		},
		{
			name: "Linha curta completa com vazio",
			values: [][]interface{}{
				orderHeader(),
				{"P-2", float64(45352)},
			},
			validate: func(t *testing.T, orders []domain.RawOrder) {
				require.Len(t, orders, 1)
				assert.Equal(t, "45352", orders[0].Date)
				assert.Equal(t, "", orders[0].Total)
				assert.Empty(t, orders[0].Items)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, parseOrders(tt.values))
		})
	}
}

func TestParseKPIs(t *testing.T) {
	values := [][]interface{}{
		{"RESUMEN"},
		{"AÑO", "MES"},
		{"2024", "3", "10", "$100.000"},
		{"2024", "4"},
	}

	kpis := parseKPIs(values)

	require.Len(t, kpis, 2)
	assert.Equal(t, 3, kpis[0].Row)
	assert.Equal(t, 4, kpis[1].Row)
	assert.Len(t, kpis[0].Values, 16)
	assert.Equal(t, "$100.000", kpis[0].Values[3])
	assert.Equal(t, "", kpis[1].Values[15])
}

func TestParseProductsAndClients(t *testing.T) {
	products := parseProducts([][]interface{}{
		{"NOMBRE", "EMOJI", "PRECIO", "ACTIVO", "INGREDIENTES"},
		{"Margarita", "🌼", "$9.990", "SI", "tomate, mozzarella"},
	})
	require.Len(t, products, 1)
	assert.Equal(t, domain.RawProduct{
		Row:         2,
		Name:        "Margarita",
		Emoji:       "🌼",
		Price:       "$9.990",
		Active:      "SI",
		Ingredients: "tomate, mozzarella",
	}, products[0])

	clients := parseClients([][]interface{}{
		{"NOMBRE"},
		{"Ana", "+56 9 1234 5678"},
	})
	require.Len(t, clients, 1)
	assert.Len(t, clients[0].Values, 10)
	assert.Equal(t, "Ana", clients[0].Values[0])
}

func TestParseDatasetMissingRanges(t *testing.T) {
	dataset := parseDataset(nil)

	assert.Empty(t, dataset.Orders)
	assert.Empty(t, dataset.Clients)
	assert.Empty(t, dataset.KPIs)
	assert.Empty(t, dataset.Products)
}
