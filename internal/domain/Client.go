package domain

// Client representa uma linha da aba CLIENTES
type Client struct {
	Name           string  `json:"nombre"`
	Whatsapp       string  `json:"whatsapp"`
	Address        string  `json:"direccion"`
	FirstPurchase  string  `json:"primera_compra"`
	LastPurchase   string  `json:"ultima_compra"`
	OrdersCount    int     `json:"n_pedidos"`
	TotalSpent     float64 `json:"total_gastado"`
	DaysSinceOrder int     `json:"dias_sin_comprar"`
	Status         string  `json:"estado"`
	Notes          string  `json:"notas"`
}
