package syncing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/spendsphere-api/internal/cache"
	"github.com/vfg2006/spendsphere-api/internal/domain"
)

func warningCodes(warnings []domain.Warning) []domain.WarningCode {
	codes := make([]domain.WarningCode, 0, len(warnings))
	for _, w := range warnings {
		codes = append(codes, w.Code)
	}
	return codes
}

func TestEvaluateWarnings(t *testing.T) {
	enabled := domain.Campaign{ID: "c1", Name: "TAAA_SEARCH", Status: domain.CampaignStatusEnabled}
	paused := domain.Campaign{ID: "c2", Name: "TAAA_PMAX", Status: domain.CampaignStatusPaused}

	t.Run("Custo com alocação zerada usa a variante de mensagem de alocação zerada", func(t *testing.T) {
		tc := testTenant(t)
		row := activeRow(enabled)
		row.Allocation = decimalPtr("0")
		row.TotalCost = decimal100(t)

		warnings := EvaluateWarnings(tc, row)

		require.Len(t, warnings, 1)
		assert.Equal(t, domain.WarningSpendWithoutAllocation, warnings[0].Code)
		assert.Contains(t, warnings[0].Message, "alocação zerada")
	})

	t.Run("Custo sem alocação usa a variante de alocação ausente", func(t *testing.T) {
		tc := testTenant(t)
		row := activeRow(enabled)
		row.Allocation = nil
		row.TotalCost = decimal100(t)

		warnings := EvaluateWarnings(tc, row)

		require.Len(t, warnings, 1)
		assert.Equal(t, domain.WarningSpendWithoutAllocation, warnings[0].Code)
		assert.Contains(t, warnings[0].Message, "sem alocação cadastrada")
	})

	t.Run("Orçamento alocado menor que o custo dispara o aviso", func(t *testing.T) {
		tc := testTenant(t)
		row := activeRow(enabled)
		row.TotalCost = decimal100(t)
		row.AllocatedBudget = decimalPtr("80")

		warnings := EvaluateWarnings(tc, row)

		assert.Contains(t, warningCodes(warnings), domain.WarningBudgetLessThanSpend)
	})

	t.Run("Todas as campanhas pausadas suprime as regras de gasto", func(t *testing.T) {
		tc := testTenant(t)
		row := activeRow(paused)
		row.Allocation = nil
		row.TotalCost = decimal100(t)
		row.AllocatedBudget = decimalPtr("80")

		warnings := EvaluateWarnings(tc, row)

		assert.NotContains(t, warningCodes(warnings), domain.WarningSpendWithoutAllocation)
		assert.NotContains(t, warningCodes(warnings), domain.WarningBudgetLessThanSpend)
	})

	t.Run("Limite de valor configurado não é suprimido por campanhas pausadas", func(t *testing.T) {
		tc := testTenant(t)
		tc.BudgetAmountThreshold = decimalPtr("40")

		row := activeRow(paused)
		row.DailyBudget = decimalPtr("55")

		warnings := EvaluateWarnings(tc, row)

		require.Len(t, warnings, 1)
		assert.Equal(t, domain.WarningBudgetAmountThresholdExceeded, warnings[0].Code)
	})

	t.Run("Sem limite configurado o aviso de valor nunca dispara", func(t *testing.T) {
		tc := testTenant(t)
		row := activeRow(enabled)
		row.DailyBudget = decimalPtr("999999")

		warnings := EvaluateWarnings(tc, row)

		assert.NotContains(t, warningCodes(warnings), domain.WarningBudgetAmountThresholdExceeded)
	})

	t.Run("Ritmo e percentual de gasto acima de 100 disparam avisos independentes", func(t *testing.T) {
		tc := testTenant(t)
		row := activeRow(enabled)
		row.Pacing = decimalPtr("112.50")
		row.PercentSpend = decimalPtr("101.20")

		warnings := EvaluateWarnings(tc, row)

		codes := warningCodes(warnings)
		assert.Contains(t, codes, domain.WarningPacingOver100)
		assert.Contains(t, codes, domain.WarningSpendPercentOver100)
	})
}

func decimal100(t *testing.T) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString("100")
}

func TestDeduper_Filter(t *testing.T) {
	base := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	warning := domain.Warning{
		Code:        domain.WarningPacingOver100,
		AccountCode: "TAAA",
		AdTypeCode:  "SEARCH",
		CustomerID:  "111",
		BudgetID:    "b1",
	}

	t.Run("Mesma impressão digital no mesmo dia dentro da janela é suprimida", func(t *testing.T) {
		tc := testTenant(t)
		deduper := NewDeduper(cache.NewFileStore(t.TempDir()))
		deduper.now = func() time.Time { return base }

		first, err := deduper.Filter(tc, []domain.Warning{warning})
		require.NoError(t, err)
		require.Len(t, first, 1)
		assert.False(t, first[0].Suppressed)

		deduper.now = func() time.Time { return base.Add(2 * time.Hour) }

		second, err := deduper.Filter(tc, []domain.Warning{warning})
		require.NoError(t, err)
		require.Len(t, second, 1)
		assert.True(t, second[0].Suppressed)
	})

	t.Run("Virada do dia local reinicia a deduplicação mesmo com TTL restante", func(t *testing.T) {
		tc := testTenant(t)
		deduper := NewDeduper(cache.NewFileStore(t.TempDir()))

		// 23:30 no fuso do tenant
		late := time.Date(2025, 6, 15, 23, 30, 0, 0, tc.Location())
		deduper.now = func() time.Time { return late }

		first, err := deduper.Filter(tc, []domain.Warning{warning})
		require.NoError(t, err)
		assert.False(t, first[0].Suppressed)

		// Uma hora depois já é outro dia local, TTL de 24h ainda vigente
		deduper.now = func() time.Time { return late.Add(time.Hour) }

		second, err := deduper.Filter(tc, []domain.Warning{warning})
		require.NoError(t, err)
		assert.False(t, second[0].Suppressed)
	})

	t.Run("TTL vencido no mesmo dia volta a emitir", func(t *testing.T) {
		tc := testTenant(t)
		tc.WarningTTL = 30 * time.Minute

		deduper := NewDeduper(cache.NewFileStore(t.TempDir()))

		morning := time.Date(2025, 6, 15, 8, 0, 0, 0, tc.Location())
		deduper.now = func() time.Time { return morning }

		_, err := deduper.Filter(tc, []domain.Warning{warning})
		require.NoError(t, err)

		deduper.now = func() time.Time { return morning.Add(time.Hour) }

		second, err := deduper.Filter(tc, []domain.Warning{warning})
		require.NoError(t, err)
		assert.False(t, second[0].Suppressed)
	})

	t.Run("TTL negativo degrada para deduplicação apenas no mesmo dia", func(t *testing.T) {
		tc := testTenant(t)
		tc.WarningTTL = -1

		deduper := NewDeduper(cache.NewFileStore(t.TempDir()))

		morning := time.Date(2025, 6, 15, 8, 0, 0, 0, tc.Location())
		deduper.now = func() time.Time { return morning }

		_, err := deduper.Filter(tc, []domain.Warning{warning})
		require.NoError(t, err)

		// Dez horas depois, mesmo dia local: ainda suprimido
		deduper.now = func() time.Time { return morning.Add(10 * time.Hour) }

		second, err := deduper.Filter(tc, []domain.Warning{warning})
		require.NoError(t, err)
		assert.True(t, second[0].Suppressed)
	})

	t.Run("Códigos distintos para a mesma linha não se suprimem", func(t *testing.T) {
		tc := testTenant(t)
		deduper := NewDeduper(cache.NewFileStore(t.TempDir()))
		deduper.now = func() time.Time { return base }

		other := warning
		other.Code = domain.WarningSpendPercentOver100

		result, err := deduper.Filter(tc, []domain.Warning{warning, other})
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.False(t, result[0].Suppressed)
		assert.False(t, result[1].Suppressed)
	})
}
