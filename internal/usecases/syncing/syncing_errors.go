package syncing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de sincronização
var (
	// Erros de montagem das linhas
	ErrFetchMasterBudgets = errors.New("error fetching master budgets from database")
	ErrFetchAllocations   = errors.New("error fetching allocations from database")
	ErrFetchRollovers     = errors.New("error fetching rollovers from database")
	ErrFetchAccelerations = errors.New("error fetching accelerations from database")
	ErrFetchAdsData       = errors.New("error fetching campaign data from ads platform")

	// Erros de cache de deduplicação
	ErrDedupeRead  = errors.New("error reading warning dedupe cache")
	ErrDedupeWrite = errors.New("error writing warning dedupe cache")

	// Erros da operação de cache
	ErrUnknownCacheAlias = errors.New("unknown cache category alias")

	// Erros de execução
	ErrGenerateRunID = errors.New("error generating run identifier")
)

// SyncError é um erro com contexto adicional para a sincronização
type SyncError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	TenantID string // Tenant envolvido
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *SyncError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *SyncError) Unwrap() error {
	return e.Err
}

// NewSyncError cria um novo SyncError
func NewSyncError(err error, code string, tenantID string, details string) *SyncError {
	return &SyncError{
		Err:      err,
		Code:     code,
		TenantID: tenantID,
		Details:  details,
	}
}
