package cache

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de cache
var (
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrWriteEntry        = errors.New("error writing cache entry")
)

// SourceError é um erro de atualização de cache com contexto do escopo afetado.
// A falha é restrita ao escopo: a entrada anterior permanece intacta no store.
type SourceError struct {
	Err      error  // Erro base
	TenantID string // Tenant envolvido
	Category string // Categoria de cache
	Scope    string // Escopo afetado
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *SourceError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s [%s/%s/%s]: %s", e.Err.Error(), e.TenantID, e.Category, e.Scope, e.Details)
	}
	return fmt.Sprintf("%s [%s/%s/%s]", e.Err.Error(), e.TenantID, e.Category, e.Scope)
}

// Unwrap retorna o erro subjacente
func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError cria um novo SourceError
func NewSourceError(err error, tenantID, category, scope, details string) *SourceError {
	return &SourceError{
		Err:      err,
		TenantID: tenantID,
		Category: category,
		Scope:    scope,
		Details:  details,
	}
}
