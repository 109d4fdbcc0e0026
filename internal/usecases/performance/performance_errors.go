package performance

import (
	"errors"
	"fmt"
)

// Erros específicos para o endpoint de performance
var (
	ErrNotFound     = errors.New("user performance not found")
	ErrStoreFailure = errors.New("store failure")
)

// PerformanceError é um erro com contexto adicional para performance
type PerformanceError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	UserID  string // ID do usuário consultado
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *PerformanceError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *PerformanceError) Unwrap() error {
	return e.Err
}

// NewPerformanceError cria um novo PerformanceError
func NewPerformanceError(err error, code string, userID string, details string) *PerformanceError {
	return &PerformanceError{
		Err:     err,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
