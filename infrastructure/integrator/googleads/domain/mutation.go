package domain

// StatusOperation é uma operação de mudança de status de campanha
type StatusOperation struct {
	CampaignID string `json:"campaignId"`
	Status     string `json:"status"`
}

// AmountOperation é uma operação de ajuste de valor diário de orçamento
type AmountOperation struct {
	BudgetID     string `json:"budgetId"`
	AmountMicros int64  `json:"amountMicros"`
}

// OperationResult é o resultado individual de uma operação dentro do lote.
// A API devolve um resultado por operação, na mesma ordem do envio.
type OperationResult struct {
	ResourceName string    `json:"resourceName,omitempty"`
	Error        *APIError `json:"error,omitempty"`
}

// Failed indica se a operação falhou dentro de um lote parcialmente aplicado
func (r OperationResult) Failed() bool {
	return r.Error != nil
}

// MutateResponse é o envelope da resposta de um lote de mutações
type MutateResponse struct {
	Results []OperationResult `json:"results"`
}
