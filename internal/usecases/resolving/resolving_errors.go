package resolving

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/spendsphere-api/internal/domain"
)

// Erros específicos para o contexto de resolução de contas
var (
	ErrListAccounts    = errors.New("error fetching accounts from ads platform")
	ErrListPeriods     = errors.New("error fetching active periods from sheet")
	ErrDecodeCache     = errors.New("error decoding cached classification payload")
	ErrNoCodesRequired = errors.New("at least one account code is required")
)

// ResolvingError é um erro com contexto adicional para resolução de contas
type ResolvingError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	TenantID string // Tenant envolvido
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ResolvingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ResolvingError) Unwrap() error {
	return e.Err
}

// NewResolvingError cria um novo ResolvingError
func NewResolvingError(err error, code string, tenantID string, details string) *ResolvingError {
	return &ResolvingError{
		Err:      err,
		Code:     code,
		TenantID: tenantID,
		Details:  details,
	}
}

// ValidationError carrega a classificação completa dos códigos solicitados.
// Cada código aparece em exatamente um dos quatro baldes.
type ValidationError struct {
	Result domain.CodeValidationResult
}

// Error implementa a interface error
func (e *ValidationError) Error() string {
	parts := make([]string, 0, 3)
	if len(e.Result.Invalid) > 0 {
		parts = append(parts, fmt.Sprintf("inválidos: %s", strings.Join(e.Result.Invalid, ", ")))
	}
	if len(e.Result.InactiveByName) > 0 {
		parts = append(parts, fmt.Sprintf("inativos pelo nome: %s", strings.Join(e.Result.InactiveByName, ", ")))
	}
	if len(e.Result.InactiveByPeriod) > 0 {
		parts = append(parts, fmt.Sprintf("inativos pelo período: %s", strings.Join(e.Result.InactiveByPeriod, ", ")))
	}
	return "códigos de conta rejeitados - " + strings.Join(parts, "; ")
}
