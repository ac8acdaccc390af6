package domain

import "github.com/shopspring/decimal"

// MutationOutcomeStatus representa o resultado da aplicação de uma mutação
type MutationOutcomeStatus string

const (
	MutationApplied MutationOutcomeStatus = "APPLIED"
	MutationFailed  MutationOutcomeStatus = "FAILED"
	MutationSkipped MutationOutcomeStatus = "SKIPPED"
	MutationDryRun  MutationOutcomeStatus = "DRY_RUN"
)

// StatusAction descreve a mudança de status pretendida para uma campanha
type StatusAction struct {
	CampaignID   string         `json:"campaign_id"`
	CampaignName string         `json:"campaign_name"`
	From         CampaignStatus `json:"from"`
	To           CampaignStatus `json:"to"`
}

// AmountAction descreve o ajuste de valor diário pretendido para um orçamento
type AmountAction struct {
	BudgetID string           `json:"budget_id"`
	From     *decimal.Decimal `json:"from,omitempty"`
	To       decimal.Decimal  `json:"to"`
}

// MutationDecision é a saída do motor de regras para uma linha. As decisões de
// status e de valor são independentes: uma pode existir sem a outra.
type MutationDecision struct {
	AccountCode string `json:"account_code"`
	AdTypeCode  string `json:"ad_type_code"`
	CustomerID  string `json:"customer_id"`
	BudgetID    string `json:"budget_id"`

	StatusActions    []StatusAction `json:"status_actions,omitempty"`
	StatusSkipReason string         `json:"status_skip_reason,omitempty"`

	AmountAction     *AmountAction `json:"amount_action,omitempty"`
	AmountSkipReason string        `json:"amount_skip_reason,omitempty"`
}

// HasMutation indica se a decisão produz ao menos uma mutação
func (d MutationDecision) HasMutation() bool {
	return len(d.StatusActions) > 0 || d.AmountAction != nil
}

// SkippedRow registra uma linha excluída da avaliação de regras, com o motivo
type SkippedRow struct {
	AccountCode string `json:"account_code"`
	AdTypeCode  string `json:"ad_type_code"`
	CustomerID  string `json:"customer_id"`
	BudgetID    string `json:"budget_id"`
	Reason      string `json:"reason"`
}

// MutationOutcome registra o resultado por mutação após a execução
type MutationOutcome struct {
	CustomerID string                `json:"customer_id"`
	BudgetID   string                `json:"budget_id"`
	CampaignID string                `json:"campaign_id,omitempty"`
	Kind       string                `json:"kind"` // "status" ou "amount"
	Status     MutationOutcomeStatus `json:"status"`
	Error      string                `json:"error,omitempty"`
}

// SyncSummary agrega os totais de uma execução de sincronização
type SyncSummary struct {
	RowsBuilt       int `json:"rows_built"`
	RowsSkipped     int `json:"rows_skipped"`
	StatusMutations int `json:"status_mutations"`
	AmountMutations int `json:"amount_mutations"`
	Applied         int `json:"applied"`
	Failed          int `json:"failed"`
	Warnings        int `json:"warnings"`
	SuppressedWarns int `json:"suppressed_warnings"`
	DryRun          bool `json:"dry_run"`
}

// SyncResult é o envelope completo devolvido pela operação de sincronização
type SyncResult struct {
	RunID     string             `json:"run_id"`
	Tenant    string             `json:"tenant"`
	Period    Period             `json:"period"`
	Decisions []MutationDecision `json:"decisions"`
	Outcomes  []MutationOutcome  `json:"outcomes"`
	Skipped   []SkippedRow       `json:"skipped"`
	Warnings  []Warning          `json:"warnings"`
	Summary   SyncSummary        `json:"summary"`
}
