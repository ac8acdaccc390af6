package googleads

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de mutações na plataforma
var (
	ErrDuplicateOperation = errors.New("duplicate operation in batch")
	ErrTooManyPaused      = errors.New("too many campaigns paused in batch")
)

// MutationError é um erro de validação de lote com contexto da entidade envolvida
type MutationError struct {
	Err      error  // Erro base
	EntityID string // Campanha ou orçamento envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *MutationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *MutationError) Unwrap() error {
	return e.Err
}

// NewMutationError cria um novo MutationError
func NewMutationError(err error, entityID string, details string) *MutationError {
	return &MutationError{
		Err:      err,
		EntityID: entityID,
		Details:  details,
	}
}
