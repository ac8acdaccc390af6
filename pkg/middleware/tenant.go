package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/vfg2006/spendsphere-api/internal/tenant"
	"github.com/vfg2006/spendsphere-api/pkg/apiErrors"
)

type contextKey string

// ContextKeyTenant guarda a configuração resolvida do tenant da requisição
const ContextKeyTenant contextKey = "tenant"

// HeaderTenantID identifica o tenant em todas as rotas de negócio
const HeaderTenantID = "X-Tenant-Id"

// TenantMiddleware resolve o cabeçalho X-Tenant-Id na configuração do tenant
// e a injeta no contexto. O healthcheck dispensa tenant.
func TenantMiddleware(provider tenant.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/healthcheck" {
				next.ServeHTTP(w, r)
				return
			}

			tenantID := r.Header.Get(HeaderTenantID)
			if tenantID == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingTenant, "Cabeçalho X-Tenant-Id é obrigatório", nil)
				return
			}

			tc, err := provider.Get(tenantID)
			if err != nil {
				if errors.Is(err, tenant.ErrTenantNotFound) {
					apiErrors.WriteError(w, apiErrors.ErrUnknownTenant, "Tenant desconhecido", map[string]interface{}{
						"tenant_id": tenantID,
					})
					return
				}

				apiErrors.WriteError(w, apiErrors.ErrTenantConfig, "Configuração do tenant inválida", map[string]interface{}{
					"tenant_id": tenantID,
				})
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyTenant, tc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TenantFromContext recupera a configuração injetada pelo TenantMiddleware
func TenantFromContext(ctx context.Context) (*tenant.Tenant, bool) {
	tc, ok := ctx.Value(ContextKeyTenant).(*tenant.Tenant)
	return tc, ok
}
