// Package tenant carrega e valida a configuração por tenant do pipeline
package tenant

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/spendsphere-api/internal/domain"
)

// defaultNamingPattern extrai o código da conta do nome descritivo.
// O prefixo de inatividade é tolerado para que contas desativadas continuem parseáveis.
const defaultNamingPattern = `^(?:zzz\.)?(?P<code>[A-Za-z0-9]+)_(?P<name>.+)$`

var defaultInactivePrefixes = []string{"zzz."}

// Tenant é a configuração completa de um tenant, carregada do arquivo YAML
// correspondente e passada explicitamente pelo pipeline. Nenhum estado global.
type Tenant struct {
	ID       string `mapstructure:"id"`
	Timezone string `mapstructure:"timezone"`

	// Convenção de nomes das contas e prefixos que marcam inatividade
	NamingPattern    string   `mapstructure:"naming_pattern"`
	InactivePrefixes []string `mapstructure:"inactive_prefixes"`

	// Tipos de anúncio conhecidos e o mapeamento de serviço para tipo
	AdTypes        []string          `mapstructure:"ad_types"`
	ServiceAdTypes map[string]string `mapstructure:"service_ad_types"`

	DBSchema        string `mapstructure:"db_schema"`
	SheetID         string `mapstructure:"sheet_id"`
	LoginCustomerID string `mapstructure:"login_customer_id"`

	CacheTTLDefault time.Duration            `mapstructure:"cache_ttl_default"`
	CacheTTL        map[string]time.Duration `mapstructure:"cache_ttl"`
	WarningTTL      time.Duration            `mapstructure:"warning_ttl"`

	BudgetAmountThreshold *decimal.Decimal `mapstructure:"budget_amount_threshold"`
	MinBudgetDelta        *decimal.Decimal `mapstructure:"min_budget_delta"`

	MaxWorkers  int  `mapstructure:"max_workers"`
	SyncEnabled bool `mapstructure:"sync_enabled"`

	namingRe *regexp.Regexp
	location *time.Location
}

// Validate verifica as chaves obrigatórias e pré-compila o que for derivado.
// Falhas aqui são fatais para a requisição, nunca silenciosamente ignoradas.
func (t *Tenant) Validate() error {
	if t.ID == "" {
		return NewConfigError(ErrMissingTenantID, "", "chave 'id' ausente na configuração do tenant")
	}

	if t.Timezone == "" {
		t.Timezone = domain.DefaultTimezone
	}

	loc, err := time.LoadLocation(t.Timezone)
	if err != nil {
		return NewConfigError(ErrInvalidTimezone, t.ID, "fuso horário inválido: "+t.Timezone)
	}
	t.location = loc

	if t.NamingPattern == "" {
		t.NamingPattern = defaultNamingPattern
	}

	re, err := regexp.Compile(t.NamingPattern)
	if err != nil {
		return NewConfigError(ErrInvalidNamingPattern, t.ID, "padrão de nomes inválido: "+t.NamingPattern)
	}
	t.namingRe = re

	if len(t.InactivePrefixes) == 0 {
		t.InactivePrefixes = defaultInactivePrefixes
	}

	if len(t.AdTypes) == 0 {
		return NewConfigError(ErrMissingAdTypes, t.ID, "nenhum tipo de anúncio configurado")
	}

	if t.DBSchema == "" {
		return NewConfigError(ErrMissingDBSchema, t.ID, "chave 'db_schema' ausente na configuração do tenant")
	}

	if t.MaxWorkers <= 0 {
		t.MaxWorkers = domain.DefaultMaxWorkers
	}

	return nil
}

// Location retorna o fuso horário do tenant, já carregado por Validate
func (t *Tenant) Location() *time.Location {
	if t.location == nil {
		return time.UTC
	}
	return t.location
}

// NamingRegexp retorna a expressão compilada da convenção de nomes
func (t *Tenant) NamingRegexp() *regexp.Regexp {
	return t.namingRe
}

// EffectiveMinBudgetDelta retorna o delta mínimo do tenant ou o padrão da plataforma
func (t *Tenant) EffectiveMinBudgetDelta() decimal.Decimal {
	if t.MinBudgetDelta != nil {
		return *t.MinBudgetDelta
	}
	return domain.MinBudgetDelta
}

// AdTypeForService resolve o tipo de anúncio de um código de serviço.
// Serviços sem mapeamento não participam da agregação de orçamentos.
func (t *Tenant) AdTypeForService(serviceCode string) (string, bool) {
	adType, ok := t.ServiceAdTypes[serviceCode]
	return adType, ok
}
