package domain

import "time"

// Channel identifica o canal de venda de um pedido
type Channel string

const (
	ChannelLocal Channel = "Local"
	ChannelEvent Channel = "Evento"
	ChannelFair  Channel = "Feria"
	ChannelOther Channel = "Otros"
)

// Channels lista os canais na ordem em que aparecem nos relatórios
var Channels = []Channel{ChannelLocal, ChannelEvent, ChannelFair, ChannelOther}

// OrderItem representa a quantidade vendida de um produto, identificado pelo emoji da coluna
type OrderItem struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// Order é um pedido já normalizado, com data e valores tipados
type Order struct {
	ID         string      `json:"id"`
	Date       time.Time   `json:"date"` // Meia-noite do dia do pedido no fuso configurado
	ClientName string      `json:"clientName"`
	Channel    Channel     `json:"channel"`
	RawChannel string      `json:"rawChannel,omitempty"`
	Total      float64     `json:"total"`
	PreTotal   float64     `json:"preTotal"`
	Delivery   float64     `json:"delivery"`
	Commission float64     `json:"commission"`
	Items      []OrderItem `json:"items,omitempty"`
}
