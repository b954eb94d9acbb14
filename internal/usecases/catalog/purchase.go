package catalog

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/domain"
)

func (s *Service) ListCustomerProducts(ctx context.Context, customerID string) ([]*domain.CustomerProduct, error) {
	if _, err := s.GetCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	links, err := s.customerProducts.ListCustomerProducts(ctx, customerID)
	if err != nil {
		return nil, databaseError(err, "Falha ao listar produtos do cliente")
	}

	return links, nil
}

// AddProductToCustomer vincula o produto e registra a compra com o preço atual.
// Se o vínculo já existe nada muda e a atividade devolvida é nil.
func (s *Service) AddProductToCustomer(ctx context.Context, customerID, productID string) (*domain.Activity, error) {
	customer, err := s.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	link := &domain.CustomerProduct{
		ID:         s.newID(),
		CustomerID: customer.ID,
		Product:    *product,
	}
	activity := s.newActivity(customer, product.Snapshot(), domain.ActivityPurchase, nil)

	linked, err := s.customerProducts.LinkProduct(ctx, link, activity)
	if err != nil {
		return nil, databaseError(err, "Falha ao vincular produto ao cliente")
	}

	if !linked {
		logrus.Debugf("Produto %s já vinculado ao cliente %s", product.ID, customer.ID)
		return nil, nil
	}

	return activity, nil
}

// RemoveProductFromCustomer desfaz o vínculo e registra o estorno
func (s *Service) RemoveProductFromCustomer(ctx context.Context, customerID, productID string) (*domain.Activity, error) {
	customer, err := s.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	activity := s.newActivity(customer, product.Snapshot(), domain.ActivityRefund, nil)

	unlinked, err := s.customerProducts.UnlinkProduct(ctx, customer.ID, product.ID, activity)
	if err != nil {
		return nil, databaseError(err, "Falha ao desvincular produto do cliente")
	}

	if !unlinked {
		return nil, notFound("Produto não vinculado ao cliente")
	}

	return activity, nil
}

func (s *Service) newActivity(customer *domain.Customer, product domain.ProductSnapshot, kind domain.ActivityType, notes *string) *domain.Activity {
	return &domain.Activity{
		ID:           s.newID(),
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Product:      product,
		Date:         s.now().UTC(),
		Type:         kind,
		Notes:        notes,
	}
}
