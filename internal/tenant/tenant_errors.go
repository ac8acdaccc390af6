package tenant

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de configuração de tenants
var (
	ErrTenantNotFound       = errors.New("tenant not found")
	ErrMissingTenantID      = errors.New("tenant id is required")
	ErrInvalidTimezone      = errors.New("invalid tenant timezone")
	ErrInvalidNamingPattern = errors.New("invalid account naming pattern")
	ErrMissingAdTypes       = errors.New("ad types are required")
	ErrMissingDBSchema      = errors.New("db schema is required")
	ErrReadConfig           = errors.New("error reading tenant config file")
)

// ConfigError é um erro de configuração com contexto do tenant envolvido
type ConfigError struct {
	Err      error  // Erro base
	TenantID string // Tenant envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ConfigError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError cria um novo ConfigError
func NewConfigError(err error, tenantID string, details string) *ConfigError {
	return &ConfigError{
		Err:      err,
		TenantID: tenantID,
		Details:  details,
	}
}
