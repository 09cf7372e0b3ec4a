package account

import (
	"errors"
	"fmt"
)

// Erros específicos para o cadastro de api keys
var (
	// Erros de validação
	ErrAPIKeyRequired        = errors.New("api key is required")
	ErrUserIDRequired        = errors.New("user ID is required")
	ErrInvalidSequencer      = errors.New("invalid sequencer")
	ErrWorkspaceIDRequired   = errors.New("workspace ID is required for pipl")
	ErrTokenValidationFailed = errors.New("api key validation failed")

	// Erros de banco de dados
	ErrSaveAPIKey = errors.New("error saving api key")
)

// AccountError é um erro com contexto adicional para o cadastro
type AccountError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *AccountError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AccountError) Unwrap() error {
	return e.Err
}

func NewAccountError(err error, code string, details string) *AccountError {
	return &AccountError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
