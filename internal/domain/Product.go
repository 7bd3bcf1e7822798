package domain

// Product é um item do cardápio (aba PRODUCTOS)
type Product struct {
	Name        string  `json:"nombre"`
	Emoji       string  `json:"emoji"`
	Price       float64 `json:"precio"`
	Active      bool    `json:"activo"`
	Ingredients string  `json:"ingredientes"`
}

// ProductCatalog é um retrato somente leitura dos preços atuais, indexado pelo emoji
type ProductCatalog struct {
	byEmoji map[string]Product
}

// NewProductCatalog cria o catálogo mantendo o primeiro produto de cada emoji
func NewProductCatalog(products []Product) ProductCatalog {
	byEmoji := make(map[string]Product, len(products))
	for _, p := range products {
		if _, exists := byEmoji[p.Emoji]; exists {
			continue
		}
		byEmoji[p.Emoji] = p
	}

	return ProductCatalog{byEmoji: byEmoji}
}

// Lookup busca o produto pelo emoji
func (c ProductCatalog) Lookup(emoji string) (Product, bool) {
	p, ok := c.byEmoji[emoji]
	return p, ok
}

// Len retorna a quantidade de produtos distintos no catálogo
func (c ProductCatalog) Len() int {
	return len(c.byEmoji)
}
