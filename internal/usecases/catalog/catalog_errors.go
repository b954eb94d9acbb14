package catalog

import (
	"errors"
	"fmt"
)

// Erros específicos do catálogo
var (
	ErrNotFound   = errors.New("registro não encontrado")
	ErrValidation = errors.New("dados inválidos")
	ErrDuplicate  = errors.New("registro duplicado")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// ValidationError aponta o campo rejeitado e o motivo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CatalogError é um erro com contexto adicional para o catálogo
type CatalogError struct {
	Err     error             // Erro base
	Code    string            // Código de erro para API
	Details string            // Detalhes adicionais
	Fields  []ValidationError // Campos inválidos (quando aplicável)
}

// Error implementa a interface error
func (e *CatalogError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CatalogError) Unwrap() error {
	return e.Err
}

// NewCatalogError cria um novo CatalogError
func NewCatalogError(err error, code string, details string) *CatalogError {
	return &CatalogError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewValidationError agrupa os campos inválidos em um único erro
func NewValidationError(code string, fields []ValidationError) *CatalogError {
	return &CatalogError{
		Err:     ErrValidation,
		Code:    code,
		Details: "verifique os campos informados",
		Fields:  fields,
	}
}
