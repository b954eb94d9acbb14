package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/vfg2006/crm-api/infrastructure/repository"
	"github.com/vfg2006/crm-api/internal/domain"
)

func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return nil, databaseError(err, "Falha ao listar produtos")
	}
	return products, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.products.GetProductByID(ctx, id)
	if err != nil {
		return nil, databaseError(err, "Falha ao buscar produto")
	}
	if product == nil {
		return nil, notFound("Produto não encontrado")
	}
	return product, nil
}

func (s *Service) CreateProduct(ctx context.Context, input *domain.ProductInput) (*domain.Product, error) {
	product := &domain.Product{ID: s.newID()}
	if err := s.applyProductInput(ctx, product, input); err != nil {
		return nil, err
	}

	created, err := s.products.CreateProduct(ctx, product)
	if err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, duplicate("name", "Já existe um produto com este nome")
		}
		return nil, databaseError(err, "Falha ao criar produto")
	}

	return created, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id string, input *domain.ProductInput) (*domain.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.applyProductInput(ctx, product, input); err != nil {
		return nil, err
	}

	if err := s.products.UpdateProduct(ctx, product); err != nil {
		switch {
		case isMissing(err):
			return nil, notFound("Produto não encontrado")
		case errors.Is(err, repository.ErrUniqueViolation):
			return nil, duplicate("name", "Já existe um produto com este nome")
		}
		return nil, databaseError(err, "Falha ao atualizar produto")
	}

	return product, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.DeleteProduct(ctx, id); err != nil {
		if isMissing(err) {
			return notFound("Produto não encontrado")
		}
		return databaseError(err, "Falha ao remover produto")
	}
	return nil
}

// applyProductInput valida a entrada e copia os campos para o produto.
// O próprio produto é ignorado na verificação de nome duplicado.
func (s *Service) applyProductInput(ctx context.Context, product *domain.Product, input *domain.ProductInput) error {
	if fields := ValidateProduct(input); len(fields) > 0 {
		return invalid(fields)
	}

	name := strings.TrimSpace(input.Name)

	existing, err := s.products.FindProductByName(ctx, name)
	if err != nil {
		return databaseError(err, "Falha ao verificar nome do produto")
	}
	if existing != nil && existing.ID != product.ID {
		return duplicate("name", "Já existe um produto com este nome")
	}

	product.Name = name
	product.Price = *input.Price
	product.CategoryID = nil
	product.CategoryName = nil

	if input.CategoryID != nil && *input.CategoryID != "" {
		category, err := s.categories.GetCategoryByID(ctx, *input.CategoryID)
		if err != nil {
			return databaseError(err, "Falha ao buscar categoria")
		}
		if category == nil {
			return invalid([]ValidationError{{Field: "category_id", Message: "Categoria não encontrada"}})
		}
		product.CategoryID = &category.ID
		product.CategoryName = &category.Name
	}

	return nil
}
