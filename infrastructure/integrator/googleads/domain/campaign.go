package domain

// Campaign representa uma campanha como retornada pela API
type Campaign struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	BudgetID string `json:"campaignBudgetId"`
}

// CampaignsResponse é o envelope da listagem de campanhas
type CampaignsResponse struct {
	Results       []Campaign `json:"results"`
	NextPageToken string     `json:"nextPageToken,omitempty"`
}

// Budget representa um orçamento compartilhado como retornado pela API.
// Valores monetários trafegam em micros (1 unidade = 1.000.000 micros).
type Budget struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	AmountMicros int64  `json:"amountMicros"`
}

// BudgetsResponse é o envelope da listagem de orçamentos
type BudgetsResponse struct {
	Results       []Budget `json:"results"`
	NextPageToken string   `json:"nextPageToken,omitempty"`
}

// Spend representa o custo acumulado de uma campanha no intervalo consultado
type Spend struct {
	CampaignID string `json:"campaignId"`
	BudgetID   string `json:"campaignBudgetId"`
	CostMicros int64  `json:"costMicros"`
}

// SpendResponse é o envelope da consulta de custos
type SpendResponse struct {
	Results       []Spend `json:"results"`
	NextPageToken string  `json:"nextPageToken,omitempty"`
}
