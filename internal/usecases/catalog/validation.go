package catalog

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/crm-api/internal/domain"
)

const minNameLength = 2

var (
	maxProductPrice = decimal.NewFromInt(10000)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func validateName(name, label string) *ValidationError {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return &ValidationError{Field: "name", Message: "O nome " + label + " é obrigatório"}
	}
	if utf8.RuneCountInString(trimmed) < minNameLength {
		return &ValidationError{Field: "name", Message: "O nome " + label + " deve ter pelo menos 2 caracteres"}
	}
	return nil
}

func validatePrice(price *decimal.Decimal) *ValidationError {
	switch {
	case price == nil:
		return &ValidationError{Field: "price", Message: "O preço é obrigatório"}
	case price.IsNegative():
		return &ValidationError{Field: "price", Message: "O preço não pode ser negativo"}
	case price.GreaterThan(maxProductPrice):
		return &ValidationError{Field: "price", Message: "O preço não pode ser maior que 10.000"}
	case !price.Equal(price.Truncate(2)):
		return &ValidationError{Field: "price", Message: "O preço não pode ter mais de 2 casas decimais"}
	}
	return nil
}

func validateEmail(email string) *ValidationError {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return &ValidationError{Field: "email", Message: "O email é obrigatório"}
	}
	if !emailPattern.MatchString(trimmed) {
		return &ValidationError{Field: "email", Message: "Informe um email válido"}
	}
	return nil
}

// ValidateProduct aplica as regras de formato do produto; unicidade é verificada no serviço
func ValidateProduct(input *domain.ProductInput) []ValidationError {
	errs := make([]ValidationError, 0)

	if err := validateName(input.Name, "do produto"); err != nil {
		errs = append(errs, *err)
	}

	if err := validatePrice(input.Price); err != nil {
		errs = append(errs, *err)
	}

	return errs
}

func ValidateCustomer(input *domain.CustomerInput) []ValidationError {
	errs := make([]ValidationError, 0)

	if err := validateName(input.Name, "do cliente"); err != nil {
		errs = append(errs, *err)
	}

	if err := validateEmail(input.Email); err != nil {
		errs = append(errs, *err)
	}

	return errs
}

func ValidateCategory(input *domain.CategoryInput) []ValidationError {
	errs := make([]ValidationError, 0)

	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "O nome da categoria é obrigatório"})
	}

	return errs
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
