package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccelerationScope define o nível em que um multiplicador de aceleração se aplica
type AccelerationScope string

const (
	AccelerationScopeAccount AccelerationScope = "ACCOUNT"
	AccelerationScopeAdType  AccelerationScope = "AD_TYPE"
	AccelerationScopeBudget  AccelerationScope = "BUDGET"
)

// MasterBudget representa uma linha de orçamento mestre por conta e serviço
type MasterBudget struct {
	ID          int64           `json:"id"`
	AccountCode string          `json:"account_code"`
	ServiceCode string          `json:"service_code"`
	NetAmount   decimal.Decimal `json:"net_amount"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
}

// Allocation representa o percentual alocado para um tipo de anúncio de uma conta
type Allocation struct {
	AccountCode string          `json:"account_code"`
	AdTypeCode  string          `json:"ad_type_code"`
	Percent     decimal.Decimal `json:"percent"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
}

// Rollover representa o saldo de meses anteriores carregado para o mês corrente
type Rollover struct {
	AccountCode string          `json:"account_code"`
	AdTypeCode  string          `json:"ad_type_code"`
	Amount      decimal.Decimal `json:"amount"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
}

// Acceleration representa um multiplicador percentual de ritmo de gasto.
// O escopo mais específico vence: BUDGET > AD_TYPE > ACCOUNT.
type Acceleration struct {
	ID          int64             `json:"id"`
	Scope       AccelerationScope `json:"scope"`
	AccountCode string            `json:"account_code"`
	AdTypeCode  *string           `json:"ad_type_code,omitempty"`
	BudgetID    *string           `json:"budget_id,omitempty"`
	Multiplier  decimal.Decimal   `json:"multiplier"`
	DateCreated time.Time         `json:"date_created"`
	DateUpdated *time.Time        `json:"date_updated,omitempty"`
}

// EffectiveDate retorna a data usada no desempate entre acelerações de mesmo escopo
func (a Acceleration) EffectiveDate() time.Time {
	if a.DateUpdated != nil {
		return *a.DateUpdated
	}
	return a.DateCreated
}

// ActivePeriod representa a janela de atividade de uma conta.
// Limites ausentes significam janela aberta naquele lado.
type ActivePeriod struct {
	AccountCode string     `json:"account_code"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// Contains verifica se a data de referência está dentro da janela de atividade
func (p ActivePeriod) Contains(asOf time.Time) bool {
	ref := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, asOf.Location())

	if p.StartDate != nil && ref.Before(truncateToDay(*p.StartDate, asOf.Location())) {
		return false
	}

	if p.EndDate != nil && ref.After(truncateToDay(*p.EndDate, asOf.Location())) {
		return false
	}

	return true
}

func truncateToDay(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// Period representa o mês de referência da sincronização
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// FirstDay retorna o primeiro dia do período no fuso informado
func (p Period) FirstDay(loc *time.Location) time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, loc)
}

// LastDay retorna o último dia do período no fuso informado
func (p Period) LastDay(loc *time.Location) time.Time {
	return p.FirstDay(loc).AddDate(0, 1, -1)
}

// Contains verifica se a data pertence ao período
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && int(t.Month()) == p.Month
}

// Before verifica se o período antecede o período informado
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}
