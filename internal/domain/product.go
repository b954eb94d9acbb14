// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	CategoryID   *string         `json:"category_id,omitempty"`
	CategoryName *string         `json:"category_name,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ProductInput é o corpo aceito na criação e atualização de produtos.
// Price é ponteiro para diferenciar "não informado" de zero.
type ProductInput struct {
	Name       string           `json:"name"`
	Price      *decimal.Decimal `json:"price"`
	CategoryID *string          `json:"category_id"`
}

// Snapshot copia os dados do produto no momento da venda
func (p Product) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ID:         p.ID,
		Name:       p.Name,
		Price:      decimal.NewNullDecimal(p.Price),
		CategoryID: p.CategoryID,
	}
}
