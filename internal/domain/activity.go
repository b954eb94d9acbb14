package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ActivityType string

const (
	ActivityPurchase ActivityType = "purchase"
	ActivityRefund   ActivityType = "refund"
	ActivityOther    ActivityType = "other"
)

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityPurchase, ActivityRefund, ActivityOther:
		return true
	}
	return false
}

// ProductSnapshot é a cópia desnormalizada do produto gravada na atividade.
// Price pode vir nulo de registros antigos.
type ProductSnapshot struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Price      decimal.NullDecimal `json:"price"`
	CategoryID *string             `json:"category_id,omitempty"`
}

// Activity é uma entrada do livro de vendas (append-only)
type Activity struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Product      ProductSnapshot `json:"product"`
	Date         time.Time       `json:"date"`
	Type         ActivityType    `json:"type"`
	Notes        *string         `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

func (a Activity) IsPurchase() bool {
	return a.Type == ActivityPurchase
}

type ActivityFilters struct {
	CustomerID string
	Type       ActivityType
}

type ActivityInput struct {
	CustomerID string       `json:"customer_id"`
	ProductID  string       `json:"product_id"`
	Type       ActivityType `json:"type"`
	Date       *time.Time   `json:"date"`
	Notes      *string      `json:"notes"`
}
