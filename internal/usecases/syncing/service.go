// Package syncing implementa o pipeline de sincronização de orçamentos: monta
// as linhas por orçamento, decide mutações de status e de valor, avalia avisos
// com deduplicação e aplica o resultado na plataforma em dry-run ou ao vivo.
package syncing

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spendsphere-api/internal/cache"
	"github.com/vfg2006/spendsphere-api/internal/domain"
	"github.com/vfg2006/spendsphere-api/internal/tenant"
	"github.com/vfg2006/spendsphere-api/internal/usecases/resolving"
	"github.com/vfg2006/spendsphere-api/pkg/apiErrors"
	"github.com/vfg2006/spendsphere-api/pkg/utils"
)

// SyncParams controla uma execução do pipeline
type SyncParams struct {
	Month int
	Year  int

	DryRun bool

	// AccountCodes restringe a execução às contas informadas. Códigos
	// inválidos ou inativos abortam a execução com a classificação completa.
	AccountCodes []string

	// Refresh força a atualização de todas as categorias de cache envolvidas
	Refresh bool
}

type Synchronizer interface {
	Synchronize(ctx context.Context, tc *tenant.Tenant, params SyncParams) (*domain.SyncResult, error)
	BuildRows(ctx context.Context, tc *tenant.Tenant, params SyncParams) ([]domain.BudgetRow, error)
	RefreshCache(ctx context.Context, tc *tenant.Tenant, aliases []string) (map[string]string, error)
}

type Service struct {
	resolver resolving.AccountResolver
	builder  *RowBuilder
	deduper  *Deduper
	executor *Executor
	store    cache.Store

	now func() time.Time
}

func NewService(
	resolver resolving.AccountResolver,
	builder *RowBuilder,
	deduper *Deduper,
	executor *Executor,
	store cache.Store,
) Synchronizer {
	return &Service{
		resolver: resolver,
		builder:  builder,
		deduper:  deduper,
		executor: executor,
		store:    store,
		now:      time.Now,
	}
}

// Synchronize executa o pipeline completo para o tenant e o período. O sucesso
// parcial é sempre explícito no envelope: decisões, resultados por mutação,
// linhas puladas com motivo e avisos, suprimidos inclusos e marcados.
func (s *Service) Synchronize(ctx context.Context, tc *tenant.Tenant, params SyncParams) (*domain.SyncResult, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, NewSyncError(ErrGenerateRunID, apiErrors.ErrInternalServer, tc.ID, err.Error())
	}

	period := s.resolvePeriod(tc, params)

	logrus.WithFields(logrus.Fields{
		"run_id":    runID,
		"tenant_id": tc.ID,
		"month":     period.Month,
		"year":      period.Year,
		"dry_run":   params.DryRun,
	}).Info("Iniciando sincronização de orçamentos")

	accounts, err := s.resolveAccounts(ctx, tc, period, params)
	if err != nil {
		return nil, err
	}

	rows, err := s.builder.Build(ctx, tc, period, accounts, params.Refresh)
	if err != nil {
		return nil, err
	}

	decisions := make([]domain.MutationDecision, 0, len(rows))
	skipped := make([]domain.SkippedRow, 0)
	allWarnings := make([]domain.Warning, 0)

	for i := range rows {
		row := &rows[i]

		decision, skip := Decide(tc, row)
		if skip != nil {
			skipped = append(skipped, *skip)
		} else {
			decisions = append(decisions, *decision)
		}

		// Linhas puladas continuam elegíveis para avisos
		warnings := EvaluateWarnings(tc, row)
		row.Warnings = warnings
		allWarnings = append(allWarnings, warnings...)
	}

	allWarnings, err = s.deduper.Filter(tc, allWarnings)
	if err != nil {
		return nil, err
	}

	// Avisos suprimidos ficam fora do envelope; o resumo contabiliza ambos
	visibleWarnings := make([]domain.Warning, 0, len(allWarnings))
	for _, w := range allWarnings {
		if !w.Suppressed {
			visibleWarnings = append(visibleWarnings, w)
		}
	}

	mutable := make([]domain.MutationDecision, 0, len(decisions))
	for _, d := range decisions {
		if d.HasMutation() {
			mutable = append(mutable, d)
		}
	}

	outcomes := s.executor.Execute(ctx, tc, mutable, params.DryRun)

	result := &domain.SyncResult{
		RunID:     runID,
		Tenant:    tc.ID,
		Period:    period,
		Decisions: decisions,
		Outcomes:  outcomes,
		Skipped:   skipped,
		Warnings:  visibleWarnings,
		Summary:   summarize(rows, skipped, decisions, outcomes, allWarnings, params.DryRun),
	}

	logrus.WithFields(logrus.Fields{
		"run_id":    runID,
		"tenant_id": tc.ID,
	}).Debug("Resumo da sincronização: ", utils.PrettyJson(result.Summary))

	return result, nil
}

// BuildRows monta e avalia as linhas sem decidir nem aplicar mutações, para
// inspeção do estado intermediário do pipeline
func (s *Service) BuildRows(ctx context.Context, tc *tenant.Tenant, params SyncParams) ([]domain.BudgetRow, error) {
	period := s.resolvePeriod(tc, params)

	accounts, err := s.resolveAccounts(ctx, tc, period, params)
	if err != nil {
		return nil, err
	}

	rows, err := s.builder.Build(ctx, tc, period, accounts, params.Refresh)
	if err != nil {
		return nil, err
	}

	// Avisos sem deduplicação: a inspeção não deve consumir a janela
	for i := range rows {
		rows[i].Warnings = EvaluateWarnings(tc, &rows[i])
	}

	return rows, nil
}

// cacheAliases normaliza os apelidos aceitos pela operação de atualização
var cacheAliases = map[string]string{
	"accounts":             domain.CacheCategoryClients,
	"clients":              domain.CacheCategoryClients,
	"google_ads_clients":   domain.CacheCategoryClients,
	"codes":                domain.CacheCategoryAccountCodes,
	"account_codes":        domain.CacheCategoryAccountCodes,
	"budgets":              domain.CacheCategoryBudgets,
	"google_ads_budgets":   domain.CacheCategoryBudgets,
	"campaigns":            domain.CacheCategoryCampaigns,
	"google_ads_campaigns": domain.CacheCategoryCampaigns,
	"warnings":             domain.CacheCategoryWarnings,
	"google_ads_warnings":  domain.CacheCategoryWarnings,
	"sheet":                domain.CacheCategorySheets,
	"sheets":               domain.CacheCategorySheets,
	"google_sheets":        domain.CacheCategorySheets,
}

var allCategories = []string{
	domain.CacheCategoryClients,
	domain.CacheCategoryAccountCodes,
	domain.CacheCategoryBudgets,
	domain.CacheCategoryCampaigns,
	domain.CacheCategoryWarnings,
	domain.CacheCategorySheets,
}

// RefreshCache invalida as categorias pedidas, aceitando apelidos. Lista vazia
// invalida todas as categorias do tenant. O próximo acesso refaz a busca na
// fonte de forma síncrona.
func (s *Service) RefreshCache(ctx context.Context, tc *tenant.Tenant, aliases []string) (map[string]string, error) {
	categories := make([]string, 0, len(aliases))

	if len(aliases) == 0 {
		categories = allCategories
	}

	for _, alias := range aliases {
		category, known := cacheAliases[alias]
		if !known {
			return nil, NewSyncError(ErrUnknownCacheAlias, apiErrors.ErrInvalidRequest, tc.ID, alias)
		}
		categories = append(categories, category)
	}

	result := make(map[string]string, len(categories))
	for _, category := range categories {
		if err := s.store.Invalidate(tc.ID, category); err != nil {
			result[category] = err.Error()
			continue
		}
		result[category] = "invalidated"
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id":  tc.ID,
		"categories": categories,
	}).Info("Categorias de cache invalidadas")

	return result, nil
}

// resolvePeriod usa o mês corrente no fuso do tenant quando não informado
func (s *Service) resolvePeriod(tc *tenant.Tenant, params SyncParams) domain.Period {
	if params.Month > 0 && params.Year > 0 {
		return domain.Period{Month: params.Month, Year: params.Year}
	}

	now := s.now().In(tc.Location())
	return domain.Period{Month: int(now.Month()), Year: now.Year()}
}

// resolveAccounts resolve a classificação completa e aplica o recorte de
// códigos da requisição, validando cada um
func (s *Service) resolveAccounts(
	ctx context.Context,
	tc *tenant.Tenant,
	period domain.Period,
	params SyncParams,
) ([]domain.AccountClassification, error) {
	resolveParams := resolving.ResolveParams{
		Month:      period.Month,
		Year:       period.Year,
		IncludeAll: true,
		Refresh:    params.Refresh,
	}

	if len(params.AccountCodes) > 0 {
		_, actives, err := s.resolver.ValidateCodes(ctx, tc, params.AccountCodes, resolveParams)
		if err != nil {
			return nil, err
		}
		return actives, nil
	}

	return s.resolver.Resolve(ctx, tc, resolveParams)
}

func summarize(
	rows []domain.BudgetRow,
	skipped []domain.SkippedRow,
	decisions []domain.MutationDecision,
	outcomes []domain.MutationOutcome,
	warnings []domain.Warning,
	dryRun bool,
) domain.SyncSummary {
	summary := domain.SyncSummary{
		RowsBuilt:   len(rows),
		RowsSkipped: len(skipped),
		DryRun:      dryRun,
	}

	for _, d := range decisions {
		summary.StatusMutations += len(d.StatusActions)
		if d.AmountAction != nil {
			summary.AmountMutations++
		}
	}

	for _, o := range outcomes {
		switch o.Status {
		case domain.MutationApplied:
			summary.Applied++
		case domain.MutationFailed:
			summary.Failed++
		}
	}

	for _, w := range warnings {
		if w.Suppressed {
			summary.SuppressedWarns++
			continue
		}
		summary.Warnings++
	}

	return summary
}
