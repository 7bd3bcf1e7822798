package domain

// RawOrder é a linha da aba PEDIDOS antes da normalização
type RawOrder struct {
	Row        int // Número da linha na planilha (1 = cabeçalho)
	ID         string
	Date       string
	ClientName string
	Whatsapp   string
	Address    string
	Items      []RawOrderItem
	Notes      string
	Method     string
	DeliveryBy string
	Commune    string
	PreTotal   string
	Delivery   string
	Commission string
	Total      string
	Type       string
}

// RawOrderItem é a célula de quantidade de uma coluna de pizza
type RawOrderItem struct {
	Product  string
	Quantity string
}

// RawKPI é a linha da aba KPIs antes da normalização
type RawKPI struct {
	Row    int
	Values []string
}

// RawProduct é a linha da aba PRODUCTOS antes da normalização
type RawProduct struct {
	Row         int
	Name        string
	Emoji       string
	Price       string
	Active      string
	Ingredients string
}

// RawClient é a linha da aba CLIENTES antes da normalização
type RawClient struct {
	Row    int
	Values []string
}

// RawDataset agrupa todas as abas lidas da planilha em uma única leitura
type RawDataset struct {
	Orders   []RawOrder
	Clients  []RawClient
	KPIs     []RawKPI
	Products []RawProduct
}

// RowRejection descreve uma linha descartada durante a normalização
type RowRejection struct {
	Sheet  string `json:"sheet"`
	Row    int    `json:"row"`
	ID     string `json:"id,omitempty"`
	Value  string `json:"value,omitempty"`
	Reason string `json:"reason"`
}
