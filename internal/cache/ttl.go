package cache

import (
	"os"
	"strings"
	"time"

	"github.com/vfg2006/spendsphere-api/internal/domain"
	"github.com/vfg2006/spendsphere-api/internal/tenant"
)

const (
	defaultTTL = 24 * time.Hour

	// Orçamentos e campanhas mudam a cada execução; TTL curto por padrão
	volatileTTL = 5 * time.Minute
)

// ResolveTTL decide o TTL efetivo de uma categoria, nesta ordem:
// variável de ambiente CACHE_TTL_<CATEGORIA> > categoria do tenant >
// padrão do tenant > padrão fixo.
func ResolveTTL(tc *tenant.Tenant, category string) time.Duration {
	if raw := os.Getenv("CACHE_TTL_" + strings.ToUpper(category)); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			return d
		}
	}

	if tc != nil {
		if d, ok := tc.CacheTTL[category]; ok {
			return d
		}

		if tc.CacheTTLDefault > 0 {
			return tc.CacheTTLDefault
		}
	}

	switch category {
	case domain.CacheCategoryBudgets, domain.CacheCategoryCampaigns:
		return volatileTTL
	}

	return defaultTTL
}
