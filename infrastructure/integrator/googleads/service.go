// Package googleads integra o pipeline com a plataforma de anúncios:
// leituras de contas, campanhas, orçamentos e custos, e aplicação de mutações
// em lotes com falha parcial.
package googleads

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	gadsdomain "github.com/vfg2006/spendsphere-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/spendsphere-api/infrastructure/integrator/googleads/gadsclient"
	"github.com/vfg2006/spendsphere-api/internal/config"
	"github.com/vfg2006/spendsphere-api/internal/domain"
	"github.com/vfg2006/spendsphere-api/internal/tenant"
	"github.com/vfg2006/spendsphere-api/pkg/utils"
)

// AdsIntegrator é o contrato de leitura e mutação da plataforma de anúncios
type AdsIntegrator interface {
	ListAccounts(ctx context.Context, tc *tenant.Tenant) ([]domain.RawAccount, error)
	ListCampaigns(ctx context.Context, tc *tenant.Tenant, customerID string) ([]domain.Campaign, error)
	ListBudgets(ctx context.Context, tc *tenant.Tenant, customerID string) ([]domain.CampaignBudget, error)
	ListSpend(ctx context.Context, tc *tenant.Tenant, customerID string, period domain.Period) ([]domain.SpendEntry, error)
	ApplyStatusChanges(ctx context.Context, tc *tenant.Tenant, customerID string, actions []domain.StatusAction) ([]domain.MutationOutcome, error)
	ApplyAmountChanges(ctx context.Context, tc *tenant.Tenant, customerID string, actions []domain.AmountAction) ([]domain.MutationOutcome, error)
}

type GoogleAdsIntegrator struct {
	cfg    *config.Config
	Client gadsclient.Client
}

func New(cfg *config.Config, client gadsclient.Client) *GoogleAdsIntegrator {
	return &GoogleAdsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *GoogleAdsIntegrator) ListAccounts(ctx context.Context, tc *tenant.Tenant) ([]domain.RawAccount, error) {
	accounts, err := s.Client.ListAccounts(ctx, tc.LoginCustomerID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tc.ID,
			"error":     err.Error(),
		}).Error("ads: falha ao listar contas na API")
		return nil, err
	}

	raw := make([]domain.RawAccount, 0, len(accounts))
	for _, acc := range accounts {
		raw = append(raw, domain.RawAccount{
			CustomerID:      acc.CustomerID,
			DescriptiveName: acc.DescriptiveName,
		})
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id": tc.ID,
		"accounts":  len(raw),
	}).Debug("ads: contas listadas com sucesso")

	return raw, nil
}

func (s *GoogleAdsIntegrator) ListCampaigns(ctx context.Context, tc *tenant.Tenant, customerID string) ([]domain.Campaign, error) {
	campaigns, err := s.Client.ListCampaigns(ctx, tc.LoginCustomerID, customerID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id":   tc.ID,
			"customer_id": customerID,
			"error":       err.Error(),
		}).Error("ads: falha ao listar campanhas na API")
		return nil, err
	}

	result := make([]domain.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		status := domain.CampaignStatus(c.Status)
		if status == domain.CampaignStatusRemoved {
			continue
		}

		result = append(result, domain.Campaign{
			ID:                c.ID,
			Name:              c.Name,
			Status:            status,
			CustomerID:        customerID,
			BudgetID:          c.BudgetID,
			HasInactivePrefix: hasInactivePrefix(c.Name, tc.InactivePrefixes),
		})
	}

	return result, nil
}

func (s *GoogleAdsIntegrator) ListBudgets(ctx context.Context, tc *tenant.Tenant, customerID string) ([]domain.CampaignBudget, error) {
	budgets, err := s.Client.ListBudgets(ctx, tc.LoginCustomerID, customerID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id":   tc.ID,
			"customer_id": customerID,
			"error":       err.Error(),
		}).Error("ads: falha ao listar orçamentos na API")
		return nil, err
	}

	result := make([]domain.CampaignBudget, 0, len(budgets))
	for _, b := range budgets {
		result = append(result, domain.CampaignBudget{
			ID:         b.ID,
			Name:       b.Name,
			CustomerID: customerID,
			Amount:     utils.MicrosToDecimal(b.AmountMicros),
		})
	}

	return result, nil
}

func (s *GoogleAdsIntegrator) ListSpend(ctx context.Context, tc *tenant.Tenant, customerID string, period domain.Period) ([]domain.SpendEntry, error) {
	loc := tc.Location()
	startDate := period.FirstDay(loc).Format(time.DateOnly)
	endDate := period.LastDay(loc).Format(time.DateOnly)

	spend, err := s.Client.ListSpend(ctx, tc.LoginCustomerID, customerID, startDate, endDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id":   tc.ID,
			"customer_id": customerID,
			"start_date":  startDate,
			"end_date":    endDate,
			"error":       err.Error(),
		}).Error("ads: falha ao consultar custos na API")
		return nil, err
	}

	result := make([]domain.SpendEntry, 0, len(spend))
	for _, sp := range spend {
		result = append(result, domain.SpendEntry{
			CustomerID: customerID,
			CampaignID: sp.CampaignID,
			BudgetID:   sp.BudgetID,
			Cost:       utils.MicrosToDecimal(sp.CostMicros),
		})
	}

	return result, nil
}

// ApplyStatusChanges valida e envia as mudanças de status em lotes. A validação
// rejeita o lote inteiro: duplicatas e pausa em massa indicam erro do chamador.
func (s *GoogleAdsIntegrator) ApplyStatusChanges(
	ctx context.Context,
	tc *tenant.Tenant,
	customerID string,
	actions []domain.StatusAction,
) ([]domain.MutationOutcome, error) {
	if err := validateStatusActions(actions); err != nil {
		return nil, err
	}

	ops := make([]gadsdomain.StatusOperation, 0, len(actions))
	for _, a := range actions {
		ops = append(ops, gadsdomain.StatusOperation{
			CampaignID: a.CampaignID,
			Status:     string(a.To),
		})
	}

	outcomes := make([]domain.MutationOutcome, 0, len(actions))

	for offset := 0; offset < len(ops); offset += domain.MaxUpdatesPerRequest {
		end := offset + domain.MaxUpdatesPerRequest
		if end > len(ops) {
			end = len(ops)
		}

		resp, err := s.Client.MutateCampaignStatuses(ctx, tc.LoginCustomerID, customerID, ops[offset:end])
		if err != nil {
			// Falha do lote inteiro: registra cada operação como falha e segue
			for _, a := range actions[offset:end] {
				outcomes = append(outcomes, statusOutcome(customerID, a, domain.MutationFailed, err.Error()))
			}
			continue
		}

		for i, a := range actions[offset:end] {
			outcome := statusOutcome(customerID, a, domain.MutationApplied, "")
			if i < len(resp.Results) && resp.Results[i].Failed() {
				outcome.Status = domain.MutationFailed
				outcome.Error = resp.Results[i].Error.Error()
			}
			outcomes = append(outcomes, outcome)
		}
	}

	return outcomes, nil
}

// ApplyAmountChanges valida e envia os ajustes de valor em lotes. Aumentos
// bruscos acima do multiplicador máximo falham individualmente, sem derrubar
// as demais operações.
func (s *GoogleAdsIntegrator) ApplyAmountChanges(
	ctx context.Context,
	tc *tenant.Tenant,
	customerID string,
	actions []domain.AmountAction,
) ([]domain.MutationOutcome, error) {
	if err := validateAmountActions(actions); err != nil {
		return nil, err
	}

	outcomes := make([]domain.MutationOutcome, 0, len(actions))
	sendable := make([]domain.AmountAction, 0, len(actions))

	for _, a := range actions {
		if a.From != nil && a.From.IsPositive() && a.To.GreaterThan(a.From.Mul(domain.MaxBudgetMultiplier)) {
			outcomes = append(outcomes, amountOutcome(customerID, a, domain.MutationFailed,
				fmt.Sprintf("aumento de %s para %s excede o multiplicador máximo de %s",
					a.From.StringFixed(2), a.To.StringFixed(2), domain.MaxBudgetMultiplier.String())))
			continue
		}
		sendable = append(sendable, a)
	}

	ops := make([]gadsdomain.AmountOperation, 0, len(sendable))
	for _, a := range sendable {
		ops = append(ops, gadsdomain.AmountOperation{
			BudgetID:     a.BudgetID,
			AmountMicros: utils.DecimalToMicros(a.To),
		})
	}

	for offset := 0; offset < len(ops); offset += domain.MaxUpdatesPerRequest {
		end := offset + domain.MaxUpdatesPerRequest
		if end > len(ops) {
			end = len(ops)
		}

		resp, err := s.Client.MutateBudgetAmounts(ctx, tc.LoginCustomerID, customerID, ops[offset:end])
		if err != nil {
			for _, a := range sendable[offset:end] {
				outcomes = append(outcomes, amountOutcome(customerID, a, domain.MutationFailed, err.Error()))
			}
			continue
		}

		for i, a := range sendable[offset:end] {
			outcome := amountOutcome(customerID, a, domain.MutationApplied, "")
			if i < len(resp.Results) && resp.Results[i].Failed() {
				outcome.Status = domain.MutationFailed
				outcome.Error = resp.Results[i].Error.Error()
			}
			outcomes = append(outcomes, outcome)
		}
	}

	return outcomes, nil
}

func statusOutcome(customerID string, a domain.StatusAction, status domain.MutationOutcomeStatus, errMsg string) domain.MutationOutcome {
	return domain.MutationOutcome{
		CustomerID: customerID,
		CampaignID: a.CampaignID,
		Kind:       "status",
		Status:     status,
		Error:      errMsg,
	}
}

func amountOutcome(customerID string, a domain.AmountAction, status domain.MutationOutcomeStatus, errMsg string) domain.MutationOutcome {
	return domain.MutationOutcome{
		CustomerID: customerID,
		BudgetID:   a.BudgetID,
		Kind:       "amount",
		Status:     status,
		Error:      errMsg,
	}
}

// validateStatusActions rejeita lotes com campanhas duplicadas ou pausa em massa
func validateStatusActions(actions []domain.StatusAction) error {
	seen := make(map[string]struct{}, len(actions))
	paused := 0

	for _, a := range actions {
		if _, dup := seen[a.CampaignID]; dup {
			return NewMutationError(ErrDuplicateOperation, a.CampaignID,
				"campanha aparece mais de uma vez no lote")
		}
		seen[a.CampaignID] = struct{}{}

		if a.To == domain.CampaignStatusPaused {
			paused++
		}
	}

	if paused > domain.MaxPausedCampaigns {
		return NewMutationError(ErrTooManyPaused, "",
			fmt.Sprintf("%d campanhas seriam pausadas no mesmo lote (máximo %d)", paused, domain.MaxPausedCampaigns))
	}

	return nil
}

// validateAmountActions rejeita lotes com orçamentos duplicados
func validateAmountActions(actions []domain.AmountAction) error {
	seen := make(map[string]struct{}, len(actions))

	for _, a := range actions {
		if _, dup := seen[a.BudgetID]; dup {
			return NewMutationError(ErrDuplicateOperation, a.BudgetID,
				"orçamento aparece mais de uma vez no lote")
		}
		seen[a.BudgetID] = struct{}{}
	}

	return nil
}

// hasInactivePrefix verifica os prefixos de inatividade sem diferenciar caixa
func hasInactivePrefix(name string, prefixes []string) bool {
	lower := strings.ToLower(name)
	for _, prefix := range prefixes {
		if strings.HasPrefix(lower, strings.ToLower(prefix)) {
			return true
		}
	}
	return false
}
