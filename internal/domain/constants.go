package domain

import "github.com/shopspring/decimal"

// Limites de segurança da plataforma de anúncios
var (
	// MinBudget é o menor valor diário aceito pela plataforma
	MinBudget = decimal.RequireFromString("0.01")

	// MinBudgetDelta é a variação mínima padrão para justificar um ajuste de valor
	MinBudgetDelta = decimal.RequireFromString("0.50")

	// MaxBudgetMultiplier limita aumentos bruscos: o novo valor não pode exceder
	// o valor atual multiplicado por este fator
	MaxBudgetMultiplier = decimal.NewFromInt(10)
)

const (
	// MaxUpdatesPerRequest é o tamanho máximo de um lote de mutações
	MaxUpdatesPerRequest = 100

	// MaxPausedCampaigns limita quantas campanhas podem ser pausadas em um mesmo lote
	MaxPausedCampaigns = 50

	// DefaultMaxWorkers limita as execuções concorrentes de mutação
	DefaultMaxWorkers = 8

	// DefaultTimezone é o fuso usado quando o tenant não define um
	DefaultTimezone = "America/Chicago"
)

// Categorias de cache conhecidas
const (
	CacheCategoryAccountCodes = "account_codes"
	CacheCategoryClients      = "google_ads_clients"
	CacheCategoryBudgets      = "google_ads_budgets"
	CacheCategoryCampaigns    = "google_ads_campaigns"
	CacheCategoryWarnings     = "google_ads_warnings"
	CacheCategorySheets       = "google_sheets"
)
