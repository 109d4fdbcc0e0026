package dashboarding

import (
	"errors"
	"fmt"
)

// Erros específicos do painel geral
var (
	ErrOverallStatNotFound = errors.New("overall stat not found")
	ErrStoreFailure        = errors.New("store failure")
)

// DashboardError é um erro com contexto adicional para o painel
type DashboardError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Year    int    // Ano consultado
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (ano %d): %s", e.Err.Error(), e.Year, e.Details)
	}
	return fmt.Sprintf("%s (ano %d)", e.Err.Error(), e.Year)
}

// Unwrap retorna o erro subjacente
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError cria um novo DashboardError
func NewDashboardError(err error, code string, year int, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Year:    year,
		Details: details,
	}
}
