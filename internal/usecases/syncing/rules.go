package syncing

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/spendsphere-api/internal/domain"
	"github.com/vfg2006/spendsphere-api/internal/tenant"
)

// Motivos de pulo registrados nas decisões
const (
	reasonNoAllocationActive   = "conta ativa sem alocação no período"
	reasonNoAllocation         = "sem alocação no período"
	reasonNoCampaigns          = "sem campanhas vinculadas"
	reasonNoDailyBudget        = "verba diária não calculada"
	reasonUnknownCurrentAmount = "valor atual do orçamento desconhecido"
	reasonAmountUpToDate       = "valor já conforme"
	reasonBelowMinDelta        = "variação abaixo do delta mínimo"
	reasonStatusUpToDate       = "status já conforme"
	reasonOnlyInactiveNames    = "todas as campanhas têm prefixo de inatividade"
)

// Decide avalia uma linha e produz as decisões de status e de valor, sempre
// independentes entre si. Linha ativa sem alocação é excluída por inteiro e
// devolvida como pulada; linha inativa sem alocação ainda pode pausar campanhas.
func Decide(tc *tenant.Tenant, row *domain.BudgetRow) (*domain.MutationDecision, *domain.SkippedRow) {
	if row.Allocation == nil && row.AccountActive() {
		return nil, &domain.SkippedRow{
			AccountCode: row.AccountCode,
			AdTypeCode:  row.AdTypeCode,
			CustomerID:  row.CustomerID,
			BudgetID:    row.BudgetID,
			Reason:      reasonNoAllocationActive,
		}
	}

	decision := &domain.MutationDecision{
		AccountCode: row.AccountCode,
		AdTypeCode:  row.AdTypeCode,
		CustomerID:  row.CustomerID,
		BudgetID:    row.BudgetID,
	}

	decideStatus(row, decision)
	decideAmount(tc, row, decision)

	return decision, nil
}

// decideStatus compara o status atual de cada campanha com o esperado.
// Campanhas com prefixo de inatividade no nome nunca são alteradas.
func decideStatus(row *domain.BudgetRow, decision *domain.MutationDecision) {
	if len(row.Campaigns) == 0 {
		decision.StatusSkipReason = reasonNoCampaigns
		return
	}

	expected := expectedStatus(row)

	mutable := 0
	for _, c := range row.Campaigns {
		if c.HasInactivePrefix {
			continue
		}
		mutable++

		if c.Status != expected {
			decision.StatusActions = append(decision.StatusActions, domain.StatusAction{
				CampaignID:   c.ID,
				CampaignName: c.Name,
				From:         c.Status,
				To:           expected,
			})
		}
	}

	if mutable == 0 {
		decision.StatusSkipReason = reasonOnlyInactiveNames
		return
	}

	if len(decision.StatusActions) == 0 {
		decision.StatusSkipReason = reasonStatusUpToDate
	}
}

// expectedStatus deriva o status esperado das campanhas da linha
func expectedStatus(row *domain.BudgetRow) domain.CampaignStatus {
	if !row.AccountActive() {
		return domain.CampaignStatusPaused
	}

	if row.DailyBudget != nil && row.DailyBudget.GreaterThanOrEqual(domain.MinBudget) {
		return domain.CampaignStatusEnabled
	}

	return domain.CampaignStatusPaused
}

// decideAmount calcula o valor alvo do orçamento e decide se o ajuste vale a
// pena. O piso de 0.01 sempre se aplica, mesmo abaixo do delta mínimo.
func decideAmount(tc *tenant.Tenant, row *domain.BudgetRow, decision *domain.MutationDecision) {
	switch {
	case row.Allocation == nil:
		decision.AmountSkipReason = reasonNoAllocation
		return
	case len(row.Campaigns) == 0:
		decision.AmountSkipReason = reasonNoCampaigns
		return
	case row.DailyBudget == nil:
		decision.AmountSkipReason = reasonNoDailyBudget
		return
	case row.BudgetAmount == nil:
		decision.AmountSkipReason = reasonUnknownCurrentAmount
		return
	}

	target := targetAmount(*row.DailyBudget)
	current := *row.BudgetAmount

	if target.Equal(current) {
		decision.AmountSkipReason = reasonAmountUpToDate
		return
	}

	floorAmount := target.IsZero() || target.Equal(domain.MinBudget)
	delta := target.Sub(current).Abs()

	if !floorAmount && delta.LessThanOrEqual(tc.EffectiveMinBudgetDelta()) {
		decision.AmountSkipReason = fmt.Sprintf("%s (%s <= %s)",
			reasonBelowMinDelta, delta.StringFixed(2), tc.EffectiveMinBudgetDelta().StringFixed(2))
		return
	}

	decision.AmountAction = &domain.AmountAction{
		BudgetID: row.BudgetID,
		From:     &current,
		To:       target,
	}
}

// targetAmount aplica o piso da plataforma: verba não positiva vira 0.01
func targetAmount(dailyBudget decimal.Decimal) decimal.Decimal {
	if dailyBudget.LessThanOrEqual(decimal.Zero) {
		return domain.MinBudget
	}
	return dailyBudget
}
