package domain

import "time"

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type CustomerInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CustomerProduct representa um produto vinculado ao cliente (relação N:N)
type CustomerProduct struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Product    Product   `json:"product"`
	CreatedAt  time.Time `json:"created_at"`
}
