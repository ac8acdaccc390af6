package domain

import "time"

// WarningCode identifica a condição operacional sinalizada em uma linha
type WarningCode string

const (
	WarningBudgetAmountThresholdExceeded WarningCode = "BUDGET_AMOUNT_THRESHOLD_EXCEEDED"
	WarningSpendWithoutAllocation        WarningCode = "SPEND_WITHOUT_ALLOCATION"
	WarningBudgetLessThanSpend           WarningCode = "BUDGET_LESS_THAN_SPEND"
	WarningPacingOver100                 WarningCode = "PACING_OVER_100"
	WarningSpendPercentOver100           WarningCode = "SPEND_PERCENT_OVER_100"
)

// Warning representa uma condição anômala detectada durante a sincronização
type Warning struct {
	Code        WarningCode `json:"code"`
	Message     string      `json:"message"`
	AccountCode string      `json:"account_code"`
	AdTypeCode  string      `json:"ad_type_code"`
	CustomerID  string      `json:"customer_id"`
	BudgetID    string      `json:"budget_id"`
	CampaignID  string      `json:"campaign_id,omitempty"`
	EmittedAt   time.Time   `json:"emitted_at"`
	Suppressed  bool        `json:"suppressed"`
}
