package syncing

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spendsphere-api/internal/cache"
	"github.com/vfg2006/spendsphere-api/internal/domain"
	"github.com/vfg2006/spendsphere-api/internal/tenant"
	"github.com/vfg2006/spendsphere-api/pkg/apiErrors"
)

// defaultWarningTTL é a janela padrão de deduplicação de avisos
const defaultWarningTTL = 24 * time.Hour

const dedupeScope = "fingerprints"

// EvaluateWarnings avalia as regras de aviso de uma linha. Cada regra é
// independente; qualquer subconjunto pode disparar para a mesma linha.
func EvaluateWarnings(tc *tenant.Tenant, row *domain.BudgetRow) []domain.Warning {
	warnings := make([]domain.Warning, 0, 2)

	if w := evaluateAmountThreshold(tc, row); w != nil {
		warnings = append(warnings, *w)
	}

	// As duas regras de gasto compartilham a supressão por linha: sem
	// campanhas, todas pausadas ou todas com prefixo de inatividade
	if len(row.Campaigns) > 0 && row.HasEnabledCampaign() && row.HasActiveNamedCampaign() {
		if w := evaluateSpendWithoutAllocation(row); w != nil {
			warnings = append(warnings, *w)
		}
		if w := evaluateBudgetLessThanSpend(row); w != nil {
			warnings = append(warnings, *w)
		}
	}

	if row.Pacing != nil && row.Pacing.GreaterThan(hundred) {
		warnings = append(warnings, newWarning(row, domain.WarningPacingOver100,
			fmt.Sprintf("ritmo de gasto em %s%% do orçamento acelerado", row.Pacing.StringFixed(2))))
	}

	if row.PercentSpend != nil && row.PercentSpend.GreaterThan(hundred) {
		warnings = append(warnings, newWarning(row, domain.WarningSpendPercentOver100,
			fmt.Sprintf("gasto em %s%% do orçamento alocado", row.PercentSpend.StringFixed(2))))
	}

	return warnings
}

func evaluateAmountThreshold(tc *tenant.Tenant, row *domain.BudgetRow) *domain.Warning {
	if tc.BudgetAmountThreshold == nil || row.DailyBudget == nil {
		return nil
	}

	target := targetAmount(*row.DailyBudget)
	if target.LessThanOrEqual(*tc.BudgetAmountThreshold) {
		return nil
	}

	w := newWarning(row, domain.WarningBudgetAmountThresholdExceeded,
		fmt.Sprintf("valor alvo %s acima do limite configurado %s",
			target.StringFixed(2), tc.BudgetAmountThreshold.StringFixed(2)))
	return &w
}

func evaluateSpendWithoutAllocation(row *domain.BudgetRow) *domain.Warning {
	if !row.TotalCost.IsPositive() {
		return nil
	}

	// Mensagens distintas para alocação ausente e alocação zerada
	switch {
	case row.Allocation == nil:
		w := newWarning(row, domain.WarningSpendWithoutAllocation,
			fmt.Sprintf("custo de %s sem alocação cadastrada no período", row.TotalCost.StringFixed(2)))
		return &w
	case row.Allocation.IsZero():
		w := newWarning(row, domain.WarningSpendWithoutAllocation,
			fmt.Sprintf("custo de %s com alocação zerada no período", row.TotalCost.StringFixed(2)))
		return &w
	}

	return nil
}

func evaluateBudgetLessThanSpend(row *domain.BudgetRow) *domain.Warning {
	if !row.TotalCost.IsPositive() || row.AllocatedBudget == nil {
		return nil
	}

	if row.AllocatedBudget.GreaterThanOrEqual(row.TotalCost) {
		return nil
	}

	w := newWarning(row, domain.WarningBudgetLessThanSpend,
		fmt.Sprintf("orçamento alocado %s menor que o custo acumulado %s",
			row.AllocatedBudget.StringFixed(2), row.TotalCost.StringFixed(2)))
	return &w
}

func newWarning(row *domain.BudgetRow, code domain.WarningCode, message string) domain.Warning {
	return domain.Warning{
		Code:        code,
		Message:     message,
		AccountCode: row.AccountCode,
		AdTypeCode:  row.AdTypeCode,
		CustomerID:  row.CustomerID,
		BudgetID:    row.BudgetID,
	}
}

// Deduper suprime avisos repetidos por impressão digital, com TTL e reinício
// obrigatório na virada do dia local do tenant
type Deduper struct {
	store cache.Store

	now func() time.Time
}

func NewDeduper(store cache.Store) *Deduper {
	return &Deduper{
		store: store,
		now:   time.Now,
	}
}

// Filter marca como suprimidos os avisos cuja impressão digital já foi emitida
// dentro da janela, no mesmo dia local. O estado é regravado por inteiro e
// entradas que não podem mais suprimir nada são descartadas na escrita.
func (d *Deduper) Filter(tc *tenant.Tenant, warnings []domain.Warning) ([]domain.Warning, error) {
	if len(warnings) == 0 {
		return warnings, nil
	}

	entries, err := d.readEntries(tc)
	if err != nil {
		return nil, err
	}

	now := d.now().In(tc.Location())
	ttl := d.effectiveTTL(tc)

	result := make([]domain.Warning, 0, len(warnings))
	for _, w := range warnings {
		fp := fingerprint(w)

		last, seen := entries[fp]
		if seen && d.suppresses(last, now, ttl, tc.Location()) {
			w.Suppressed = true
			w.EmittedAt = last
			result = append(result, w)
			continue
		}

		w.Suppressed = false
		w.EmittedAt = now
		entries[fp] = now
		result = append(result, w)
	}

	d.prune(entries, now, ttl, tc.Location())

	if err := d.writeEntries(tc, entries); err != nil {
		return nil, err
	}

	return result, nil
}

// suppresses decide se uma emissão anterior ainda vale: a virada do dia local
// sempre reinicia a deduplicação, mesmo com TTL restante
func (d *Deduper) suppresses(last, now time.Time, ttl time.Duration, loc *time.Location) bool {
	if !sameLocalDay(last, now, loc) {
		return false
	}

	// TTL não positivo degrada para deduplicação apenas no mesmo dia
	if ttl <= 0 {
		return true
	}

	return now.Sub(last) <= ttl
}

func (d *Deduper) prune(entries map[string]time.Time, now time.Time, ttl time.Duration, loc *time.Location) {
	for fp, last := range entries {
		if !d.suppresses(last, now, ttl, loc) {
			delete(entries, fp)
		}
	}
}

// effectiveTTL resolve a janela do tenant. Zero significa não configurado;
// valor negativo é configuração explícita de dedupe apenas no mesmo dia.
func (d *Deduper) effectiveTTL(tc *tenant.Tenant) time.Duration {
	if tc.WarningTTL == 0 {
		return defaultWarningTTL
	}
	return tc.WarningTTL
}

func (d *Deduper) readEntries(tc *tenant.Tenant) (map[string]time.Time, error) {
	entry, err := d.store.Get(tc.ID, domain.CacheCategoryWarnings, dedupeScope)
	if err != nil {
		return nil, NewSyncError(ErrDedupeRead, apiErrors.ErrInternalServer, tc.ID, err.Error())
	}

	entries := make(map[string]time.Time)
	if entry == nil {
		return entries, nil
	}

	if err := json.Unmarshal(entry.Payload, &entries); err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tc.ID,
		}).Warn("Cache de deduplicação ilegível, reiniciando estado")
		return make(map[string]time.Time), nil
	}

	return entries, nil
}

func (d *Deduper) writeEntries(tc *tenant.Tenant, entries map[string]time.Time) error {
	payload, err := json.Marshal(entries)
	if err != nil {
		return NewSyncError(ErrDedupeWrite, apiErrors.ErrInternalServer, tc.ID, err.Error())
	}

	if err := d.store.Put(tc.ID, domain.CacheCategoryWarnings, dedupeScope, payload); err != nil {
		return NewSyncError(ErrDedupeWrite, apiErrors.ErrInternalServer, tc.ID, err.Error())
	}

	return nil
}

// fingerprint deriva a identidade estável de um aviso para deduplicação
func fingerprint(w domain.Warning) string {
	identity := strings.Join([]string{
		w.CustomerID,
		string(w.Code),
		w.AccountCode,
		w.AdTypeCode,
		w.BudgetID,
		w.CampaignID,
	}, "|")

	sum := sha256.Sum256([]byte(identity))
	return hex.EncodeToString(sum[:])
}

func sameLocalDay(a, b time.Time, loc *time.Location) bool {
	a = a.In(loc)
	b = b.In(loc)
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
