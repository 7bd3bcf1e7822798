package dashboarding

import (
	"sort"

	"github.com/larscobian/Pizzana-Dashboard/internal/domain"
	"github.com/larscobian/Pizzana-Dashboard/pkg/utils"
)

// UnknownProductName é o nome usado para emojis ausentes do catálogo
const UnknownProductName = "Desconocida"

// TotalRevenue soma o total dos pedidos
func TotalRevenue(orders []domain.Order) float64 {
	var total float64
	for _, o := range orders {
		total += o.Total
	}
	return total
}

// PercentageChange calcula (current - previous) / previous * 100 com duas casas.
// Retorna 0 quando previous é 0, mesmo que current seja positivo.
func PercentageChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace((current - previous) / previous * 100)
}

// ChannelSplit particiona faturamento e quantidade de pedidos por canal
func ChannelSplit(orders []domain.Order) domain.ChannelSplit {
	revenue := make(map[domain.Channel]float64, len(domain.Channels))
	count := make(map[domain.Channel]int, len(domain.Channels))
	var total float64

	for _, o := range orders {
		revenue[o.Channel] += o.Total
		count[o.Channel]++
		total += o.Total
	}

	split := domain.ChannelSplit{
		Total:    total,
		Channels: make([]domain.ChannelStats, 0, len(domain.Channels)),
	}
	for _, channel := range domain.Channels {
		split.Channels = append(split.Channels, domain.ChannelStats{
			Channel:    channel,
			Revenue:    revenue[channel],
			Count:      count[channel],
			Percentage: utils.Percentage(revenue[channel], total),
		})
	}

	return split
}

// UniqueClientCount conta nomes de clientes distintos por comparação exata
func UniqueClientCount(orders []domain.Order) int {
	clients := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		clients[o.ClientName] = struct{}{}
	}
	return len(clients)
}

// TopClients ordena os clientes por faturamento decrescente e retorna os n primeiros.
// Empates mantêm a ordem da primeira aparição do cliente.
func TopClients(orders []domain.Order, n int) []domain.TopClient {
	index := make(map[string]int)
	clients := make([]domain.TopClient, 0)

	for _, o := range orders {
		i, ok := index[o.ClientName]
		if !ok {
			i = len(clients)
			index[o.ClientName] = i
			clients = append(clients, domain.TopClient{Name: o.ClientName})
		}
		clients[i].Revenue += o.Total
		clients[i].Orders++
	}

	sort.SliceStable(clients, func(i, j int) bool {
		return clients[i].Revenue > clients[j].Revenue
	})

	return limit(clients, n)
}

// TopProducts soma as unidades vendidas por produto e valoriza cada unidade pelo
// preço atual do catálogo. Emojis fora do catálogo contam unidades com receita 0.
func TopProducts(orders []domain.Order, catalog domain.ProductCatalog, n int) []domain.TopProduct {
	index := make(map[string]int)
	products := make([]domain.TopProduct, 0)

	for _, o := range orders {
		for _, item := range o.Items {
			if item.Quantity <= 0 {
				continue
			}

			product, known := catalog.Lookup(item.Product)

			i, ok := index[item.Product]
			if !ok {
				i = len(products)
				index[item.Product] = i

				name := UnknownProductName
				if known && product.Name != "" {
					name = product.Name
				}
				products = append(products, domain.TopProduct{Emoji: item.Product, Name: name})
			}

			// Produto desconhecido tem preço zero
			price := product.Price
			products[i].Count += item.Quantity
			products[i].Revenue += float64(item.Quantity) * price
		}
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Count > products[j].Count
	})

	return limit(products, n)
}

func limit[T any](items []T, n int) []T {
	if n >= 0 && len(items) > n {
		return items[:n]
	}
	return items
}
