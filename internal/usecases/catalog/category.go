package catalog

import (
	"context"
	"strings"

	"github.com/vfg2006/crm-api/internal/domain"
)

func (s *Service) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, databaseError(err, "Falha ao listar categorias")
	}
	return categories, nil
}

func (s *Service) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	category, err := s.categories.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, databaseError(err, "Falha ao buscar categoria")
	}
	if category == nil {
		return nil, notFound("Categoria não encontrada")
	}
	return category, nil
}

func (s *Service) CreateCategory(ctx context.Context, input *domain.CategoryInput) (*domain.Category, error) {
	if fields := ValidateCategory(input); len(fields) > 0 {
		return nil, invalid(fields)
	}

	category := &domain.Category{
		ID:          s.newID(),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Color:       input.Color,
	}

	created, err := s.categories.CreateCategory(ctx, category)
	if err != nil {
		return nil, databaseError(err, "Falha ao criar categoria")
	}

	return created, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id string, input *domain.CategoryInput) (*domain.Category, error) {
	if fields := ValidateCategory(input); len(fields) > 0 {
		return nil, invalid(fields)
	}

	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = strings.TrimSpace(input.Name)
	category.Description = input.Description
	category.Color = input.Color

	if err := s.categories.UpdateCategory(ctx, category); err != nil {
		if isMissing(err) {
			return nil, notFound("Categoria não encontrada")
		}
		return nil, databaseError(err, "Falha ao atualizar categoria")
	}

	return category, nil
}

// DeleteCategory remove a categoria. Vendas antigas que apontam para ela
// deixam de aparecer no ranking de categorias.
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	if err := s.categories.DeleteCategory(ctx, id); err != nil {
		if isMissing(err) {
			return notFound("Categoria não encontrada")
		}
		return databaseError(err, "Falha ao remover categoria")
	}
	return nil
}
