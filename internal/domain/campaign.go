package domain

import "github.com/shopspring/decimal"

// CampaignStatus representa o estado de veiculação de uma campanha na plataforma
type CampaignStatus string

const (
	CampaignStatusEnabled CampaignStatus = "ENABLED"
	CampaignStatusPaused  CampaignStatus = "PAUSED"
	CampaignStatusRemoved CampaignStatus = "REMOVED"
)

// Campaign representa uma campanha vinculada a um orçamento compartilhado
type Campaign struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Status            CampaignStatus `json:"status"`
	CustomerID        string         `json:"customer_id"`
	BudgetID          string         `json:"budget_id"`
	HasInactivePrefix bool           `json:"has_inactive_prefix"`
}

// CampaignBudget representa um orçamento compartilhado da plataforma
type CampaignBudget struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
}

// SpendEntry representa o custo acumulado de uma campanha no período
type SpendEntry struct {
	CustomerID string          `json:"customer_id"`
	CampaignID string          `json:"campaign_id"`
	BudgetID   string          `json:"budget_id"`
	Cost       decimal.Decimal `json:"cost"`
}
