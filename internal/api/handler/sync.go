package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spendsphere-api/internal/cache"
	"github.com/vfg2006/spendsphere-api/internal/tenant"
	"github.com/vfg2006/spendsphere-api/internal/usecases/resolving"
	"github.com/vfg2006/spendsphere-api/internal/usecases/syncing"
	"github.com/vfg2006/spendsphere-api/pkg/apiErrors"
	"github.com/vfg2006/spendsphere-api/pkg/middleware"
)

// SyncRequest é o corpo da requisição de sincronização
type SyncRequest struct {
	Month        int      `json:"month"`
	Year         int      `json:"year"`
	DryRun       bool     `json:"dry_run"`
	AccountCodes []string `json:"account_codes"`
	Refresh      bool     `json:"refresh"`
}

func Synchronize(service syncing.Synchronizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tc, ok := tenantFromRequest(w, r)
		if !ok {
			return
		}

		var req SyncRequest
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
				return
			}
		}

		result, err := service.Synchronize(r.Context(), tc, syncing.SyncParams{
			Month:        req.Month,
			Year:         req.Year,
			DryRun:       req.DryRun,
			AccountCodes: req.AccountCodes,
			Refresh:      req.Refresh,
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"tenant_id": tc.ID,
				"error":     err.Error(),
			}).Error("Erro na sincronização de orçamentos")

			writePipelineError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// tenantFromRequest recupera o tenant injetado pelo middleware. A ausência
// indica rota registrada fora da cadeia de middlewares, nunca erro do cliente.
func tenantFromRequest(w http.ResponseWriter, r *http.Request) (*tenant.Tenant, bool) {
	tc, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrMissingTenant, "Tenant não resolvido para a requisição", nil)
		return nil, false
	}
	return tc, true
}

// writePipelineError traduz os erros do pipeline para a resposta HTTP
func writePipelineError(w http.ResponseWriter, err error) {
	var validationErr *resolving.ValidationError
	if errors.As(err, &validationErr) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidAccountCodes, validationErr.Error(), validationErr.Result)
		return
	}

	var resolvingErr *resolving.ResolvingError
	if errors.As(err, &resolvingErr) {
		apiErrors.WriteError(w, resolvingErr.Code, resolvingErr.Error(), nil)
		return
	}

	var syncErr *syncing.SyncError
	if errors.As(err, &syncErr) {
		apiErrors.WriteError(w, syncErr.Code, syncErr.Error(), nil)
		return
	}

	var sourceErr *cache.SourceError
	if errors.As(err, &sourceErr) {
		apiErrors.WriteError(w, apiErrors.ErrSourceUnavailable, sourceErr.Error(), map[string]interface{}{
			"category": sourceErr.Category,
			"scope":    sourceErr.Scope,
		})
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no pipeline de sincronização", nil)
}
