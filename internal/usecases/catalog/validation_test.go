package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/crm-api/internal/domain"
)

func decimalPtr(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}

func TestValidateProduct(t *testing.T) {
	tests := []struct {
		name           string
		input          domain.ProductInput
		expectedFields []string
	}{
		{
			name:  "válido",
			input: domain.ProductInput{Name: "Notebook", Price: decimalPtr("3500.99")},
		},
		{
			name:  "preço zero",
			input: domain.ProductInput{Name: "Brinde", Price: decimalPtr("0")},
		},
		{
			name:  "preço no limite",
			input: domain.ProductInput{Name: "Servidor", Price: decimalPtr("10000")},
		},
		{
			name:           "nome vazio e preço ausente",
			input:          domain.ProductInput{Name: "   "},
			expectedFields: []string{"name", "price"},
		},
		{
			name:           "nome curto",
			input:          domain.ProductInput{Name: " a ", Price: decimalPtr("1")},
			expectedFields: []string{"name"},
		},
		{
			name:           "preço negativo",
			input:          domain.ProductInput{Name: "Caneta", Price: decimalPtr("-0.01")},
			expectedFields: []string{"price"},
		},
		{
			name:           "preço acima do limite",
			input:          domain.ProductInput{Name: "Carro", Price: decimalPtr("10000.01")},
			expectedFields: []string{"price"},
		},
		{
			name:           "mais de duas casas decimais",
			input:          domain.ProductInput{Name: "Parafuso", Price: decimalPtr("0.125")},
			expectedFields: []string{"price"},
		},
		{
			name:  "zeros à direita não contam como casas decimais",
			input: domain.ProductInput{Name: "Parafuso", Price: decimalPtr("1.500")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateProduct(&tt.input)

			fields := make([]string, 0, len(errs))
			for _, err := range errs {
				fields = append(fields, err.Field)
			}

			if len(tt.expectedFields) == 0 {
				assert.Empty(t, fields)
				return
			}
			assert.Equal(t, tt.expectedFields, fields)
		})
	}
}

func TestValidateCustomer(t *testing.T) {
	tests := []struct {
		name           string
		input          domain.CustomerInput
		expectedFields []string
	}{
		{
			name:  "válido",
			input: domain.CustomerInput{Name: "Ana Souza", Email: " Ana@Exemplo.com "},
		},
		{
			name:           "email sem domínio",
			input:          domain.CustomerInput{Name: "Ana", Email: "ana@exemplo"},
			expectedFields: []string{"email"},
		},
		{
			name:           "email com espaço",
			input:          domain.CustomerInput{Name: "Ana", Email: "ana souza@exemplo.com"},
			expectedFields: []string{"email"},
		},
		{
			name:           "tudo vazio",
			input:          domain.CustomerInput{},
			expectedFields: []string{"name", "email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateCustomer(&tt.input)

			fields := make([]string, 0, len(errs))
			for _, err := range errs {
				fields = append(fields, err.Field)
			}

			if len(tt.expectedFields) == 0 {
				assert.Empty(t, fields)
				return
			}
			assert.Equal(t, tt.expectedFields, fields)
		})
	}
}

func TestValidateCategory(t *testing.T) {
	assert.Empty(t, ValidateCategory(&domain.CategoryInput{Name: "Livros"}))
	assert.Len(t, ValidateCategory(&domain.CategoryInput{Name: " "}), 1)
}
