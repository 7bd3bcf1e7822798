package domain

// DatasetSummary traz a contagem de linhas de cada aba
type DatasetSummary struct {
	TotalOrders   int `json:"totalPedidos"`
	TotalClients  int `json:"totalClientes"`
	TotalKPIs     int `json:"totalKPIs"`
	TotalProducts int `json:"totalProductos"`
	RejectedRows  int `json:"rejectedRows"`
}

// OrderSample é a visão resumida de um pedido para diagnóstico
type OrderSample struct {
	ID     string  `json:"id"`
	Date   string  `json:"fecha"`
	Total  float64 `json:"total"`
	Type   string  `json:"tipo"`
	Client string  `json:"cliente"`
}

// DebugSummary é a resposta do endpoint de diagnóstico
type DebugSummary struct {
	Summary        DatasetSummary `json:"summary"`
	SampleOrders   []OrderSample  `json:"samplePedidos"`
	SampleKPIs     []PeriodKPI    `json:"sampleKPIs"`
	SampleProducts []Product      `json:"sampleProductos"`
	SampleClients  []Client       `json:"sampleClientes"`
	Rejections     []RowRejection `json:"rejections,omitempty"`
}

// ConnectionStatus é o resultado do teste de conexão com a planilha
type ConnectionStatus struct {
	Success             bool             `json:"success"`
	SpreadsheetTitle    string           `json:"spreadsheetTitle,omitempty"`
	SheetsCount         int              `json:"sheetsCount"`
	AgendaEventosExists bool             `json:"agendaEventosExists"`
	AllSheets           []string         `json:"allSheets"`
	Credentials         CredentialsCheck `json:"credentials"`
}

// CredentialsCheck indica quais variáveis de acesso à planilha estão configuradas
type CredentialsCheck struct {
	ClientEmail   bool `json:"clientEmail"`
	PrivateKey    bool `json:"privateKey"`
	SpreadsheetID bool `json:"spreadsheetId"`
}

// Complete indica se todas as credenciais estão presentes
func (c CredentialsCheck) Complete() bool {
	return c.ClientEmail && c.PrivateKey && c.SpreadsheetID
}
