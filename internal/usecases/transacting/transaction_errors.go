package transacting

import (
	"errors"
	"fmt"
)

// Erros específicos para a listagem de transações
var (
	// Erros de validação
	ErrInvalidSortSpec   = errors.New("invalid sort specification")
	ErrInvalidPagination = errors.New("invalid pagination parameters")

	// Erros de banco de dados
	ErrStoreFailure = errors.New("store failure")
)

// TransactionError é um erro com contexto adicional para transações
type TransactionError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *TransactionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError cria um novo TransactionError
func NewTransactionError(err error, code string, details string) *TransactionError {
	return &TransactionError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
