package domain

import "github.com/shopspring/decimal"

// BudgetRow é a linha consolidada do pipeline: um orçamento da plataforma com
// todos os dados financeiros e de classificação necessários para decidir mutações
type BudgetRow struct {
	AccountCode     string  `json:"account_code"`
	AdTypeCode      string  `json:"ad_type_code"`
	CustomerID      string  `json:"customer_id"`
	AccountName     string  `json:"account_name"`
	BudgetID        string  `json:"budget_id"`
	BudgetName      string  `json:"budget_name"`
	OrphanBudget    bool    `json:"orphan_budget"`

	Campaigns []Campaign `json:"campaigns"`

	// Valor diário atual do orçamento na plataforma. Nulo quando desconhecido.
	BudgetAmount *decimal.Decimal `json:"budget_amount,omitempty"`

	NetAmount    decimal.Decimal  `json:"net_amount"`
	Rollover     decimal.Decimal  `json:"rollover"`
	Allocation   *decimal.Decimal `json:"allocation,omitempty"`
	Acceleration decimal.Decimal  `json:"acceleration"`
	TotalCost    decimal.Decimal  `json:"total_cost"`

	// Derivados pelo cálculo de orçamento diário
	AllocatedBudget *decimal.Decimal `json:"allocated_budget,omitempty"`
	Remaining       *decimal.Decimal `json:"remaining,omitempty"`
	DaysLeft        int              `json:"days_left"`
	DailyBudget     *decimal.Decimal `json:"daily_budget,omitempty"`
	Pacing          *decimal.Decimal `json:"pacing,omitempty"`
	PercentSpend    *decimal.Decimal `json:"percent_spend,omitempty"`

	ActiveByName   bool `json:"active_by_name"`
	ActiveByPeriod bool `json:"active_by_period"`

	Warnings []Warning `json:"warnings,omitempty"`
}

// AccountActive indica se a conta da linha está ativa pelas duas verificações
func (r *BudgetRow) AccountActive() bool {
	return r.ActiveByName && r.ActiveByPeriod
}

// HasEnabledCampaign verifica se existe ao menos uma campanha habilitada na linha
func (r *BudgetRow) HasEnabledCampaign() bool {
	for _, c := range r.Campaigns {
		if c.Status == CampaignStatusEnabled {
			return true
		}
	}
	return false
}

// HasActiveNamedCampaign verifica se existe campanha sem prefixo de inatividade
func (r *BudgetRow) HasActiveNamedCampaign() bool {
	for _, c := range r.Campaigns {
		if !c.HasInactivePrefix {
			return true
		}
	}
	return false
}
