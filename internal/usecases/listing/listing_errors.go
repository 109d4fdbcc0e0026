package listing

import (
	"errors"
	"fmt"
)

// Erros específicos para as consultas de leitura direta
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrOverallStatNotFound = errors.New("overall stat not found")
	ErrStoreFailure        = errors.New("store failure")
)

// ListingError é um erro com contexto adicional para as consultas
type ListingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ListingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ListingError) Unwrap() error {
	return e.Err
}

// NewListingError cria um novo ListingError
func NewListingError(err error, code string, details string) *ListingError {
	return &ListingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
