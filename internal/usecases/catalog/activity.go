package catalog

import (
	"context"
	"strings"

	"github.com/vfg2006/crm-api/internal/domain"
)

func (s *Service) ListActivities(ctx context.Context, filters domain.ActivityFilters) ([]*domain.Activity, error) {
	if filters.Type != "" && !filters.Type.Valid() {
		return nil, invalid([]ValidationError{{Field: "type", Message: "Tipo de atividade inválido"}})
	}

	activities, err := s.activities.ListActivities(ctx, filters)
	if err != nil {
		return nil, databaseError(err, "Falha ao listar atividades")
	}

	return activities, nil
}

// CreateActivity registra uma atividade manual. O produto só é obrigatório em compras.
func (s *Service) CreateActivity(ctx context.Context, input *domain.ActivityInput) (*domain.Activity, error) {
	fields := make([]ValidationError, 0)
	if strings.TrimSpace(input.CustomerID) == "" {
		fields = append(fields, ValidationError{Field: "customer_id", Message: "O cliente é obrigatório"})
	}
	if !input.Type.Valid() {
		fields = append(fields, ValidationError{Field: "type", Message: "Tipo de atividade inválido"})
	}
	if input.Type == domain.ActivityPurchase && strings.TrimSpace(input.ProductID) == "" {
		fields = append(fields, ValidationError{Field: "product_id", Message: "Compras exigem um produto"})
	}
	if len(fields) > 0 {
		return nil, invalid(fields)
	}

	customer, err := s.GetCustomer(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	var snapshot domain.ProductSnapshot
	if input.ProductID != "" {
		product, err := s.GetProduct(ctx, input.ProductID)
		if err != nil {
			return nil, err
		}
		snapshot = product.Snapshot()
	}

	activity := s.newActivity(customer, snapshot, input.Type, input.Notes)
	if input.Date != nil {
		activity.Date = input.Date.UTC()
	}

	created, err := s.activities.CreateActivity(ctx, activity)
	if err != nil {
		return nil, databaseError(err, "Falha ao registrar atividade")
	}

	return created, nil
}
