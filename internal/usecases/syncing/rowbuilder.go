package syncing

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spendsphere-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/spendsphere-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/spendsphere-api/infrastructure/repository"
	"github.com/vfg2006/spendsphere-api/internal/cache"
	"github.com/vfg2006/spendsphere-api/internal/domain"
	"github.com/vfg2006/spendsphere-api/internal/tenant"
	"github.com/vfg2006/spendsphere-api/pkg/apiErrors"
	"golang.org/x/sync/errgroup"
)

var hundred = decimal.NewFromInt(100)

// defaultAcceleration é o multiplicador neutro quando nenhum registro se aplica
var defaultAcceleration = hundred

// RowBuilder junta orçamentos mestres, campanhas, custos, alocações, saldos
// acumulados, janelas de vigência e acelerações em uma linha por orçamento
// da plataforma. Os dados voláteis passam pelo cache com TTL curto.
type RowBuilder struct {
	loader       *cache.Loader
	adsService   googleads.AdsIntegrator
	sheetService sheets.SheetIntegrator

	masterBudgetRepo repository.MasterBudgetRepository
	allocationRepo   repository.AllocationRepository
	rolloverRepo     repository.RolloverRepository
	accelerationRepo repository.AccelerationRepository

	now func() time.Time
}

func NewRowBuilder(
	loader *cache.Loader,
	adsService googleads.AdsIntegrator,
	sheetService sheets.SheetIntegrator,
	masterBudgetRepo repository.MasterBudgetRepository,
	allocationRepo repository.AllocationRepository,
	rolloverRepo repository.RolloverRepository,
	accelerationRepo repository.AccelerationRepository,
) *RowBuilder {
	return &RowBuilder{
		loader:           loader,
		adsService:       adsService,
		sheetService:     sheetService,
		masterBudgetRepo: masterBudgetRepo,
		allocationRepo:   allocationRepo,
		rolloverRepo:     rolloverRepo,
		accelerationRepo: accelerationRepo,
		now:              time.Now,
	}
}

// periodData agrupa o resultado das consultas relacionais do período
type periodData struct {
	masterBudgets []*domain.MasterBudget
	allocations   []*domain.Allocation
	rollovers     []*domain.Rollover
	accelerations []*domain.Acceleration
}

// accountData agrupa o estado atual de uma conta na plataforma
type accountData struct {
	campaigns []domain.Campaign
	budgets   []domain.CampaignBudget
	spend     []domain.SpendEntry
}

// Build monta as linhas de sincronização do período para as contas informadas.
// Uma linha por orçamento da plataforma; orçamentos mestres sem orçamento na
// plataforma geram linhas sem campanhas, para visibilidade no resultado.
func (b *RowBuilder) Build(
	ctx context.Context,
	tc *tenant.Tenant,
	period domain.Period,
	accounts []domain.AccountClassification,
	refresh bool,
) ([]domain.BudgetRow, error) {
	data, err := b.fetchPeriodData(ctx, tc, period)
	if err != nil {
		return nil, err
	}

	windows, err := b.fetchActivePeriods(ctx, tc, refresh)
	if err != nil {
		return nil, err
	}

	// Soma líquida por (conta, tipo de anúncio) via mapeamento de serviços
	masterByKey := make(map[string]decimal.Decimal)
	accountsWithMaster := make(map[string]bool)
	for _, mb := range data.masterBudgets {
		adType, ok := tc.AdTypeForService(mb.ServiceCode)
		if !ok {
			logrus.WithFields(logrus.Fields{
				"tenant_id":    tc.ID,
				"service_code": mb.ServiceCode,
			}).Debug("Serviço sem tipo de anúncio mapeado, ignorado na agregação")
			continue
		}

		key := joinKey(mb.AccountCode, adType)
		masterByKey[key] = masterByKey[key].Add(mb.NetAmount)
		accountsWithMaster[mb.AccountCode] = true
	}

	allocationByKey := make(map[string]decimal.Decimal, len(data.allocations))
	for _, al := range data.allocations {
		allocationByKey[joinKey(al.AccountCode, al.AdTypeCode)] = al.Percent
	}

	rolloverByKey := make(map[string]decimal.Decimal, len(data.rollovers))
	for _, rb := range data.rollovers {
		rolloverByKey[joinKey(rb.AccountCode, rb.AdTypeCode)] = rolloverByKey[joinKey(rb.AccountCode, rb.AdTypeCode)].Add(rb.Amount)
	}

	accelerationsByAccount := make(map[string][]*domain.Acceleration)
	for _, ac := range data.accelerations {
		accelerationsByAccount[ac.AccountCode] = append(accelerationsByAccount[ac.AccountCode], ac)
	}

	platformData, err := b.fetchAccountData(ctx, tc, period, accounts, refresh)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.BudgetRow, 0, len(accounts))

	for _, account := range accounts {
		state := platformData[account.CustomerID]
		if state == nil {
			state = &accountData{}
		}

		campaignsByBudget := make(map[string][]domain.Campaign)
		for _, c := range state.campaigns {
			campaignsByBudget[c.BudgetID] = append(campaignsByBudget[c.BudgetID], c)
		}

		costByBudget := make(map[string]decimal.Decimal)
		for _, sp := range state.spend {
			costByBudget[sp.BudgetID] = costByBudget[sp.BudgetID].Add(sp.Cost)
		}

		coveredAdTypes := make(map[string]bool)

		for _, budget := range state.budgets {
			adType := inferAdType(budget.Name, tc.AdTypes)
			if adType == "" {
				logrus.WithFields(logrus.Fields{
					"tenant_id":   tc.ID,
					"budget_name": budget.Name,
				}).Debug("Orçamento da plataforma sem tipo de anúncio reconhecível, descartado")
				continue
			}

			key := joinKey(account.Code, adType)
			_, hasMaster := masterByKey[key]
			allocation, hasAllocation := allocationByKey[key]

			// Orçamento órfão: sem orçamento mestre para o tipo, mas relevante
			// porque tem alocação ou a conta participa do orçamento mestre
			if !hasMaster && !hasAllocation && !accountsWithMaster[account.Code] {
				continue
			}

			coveredAdTypes[adType] = true

			row := domain.BudgetRow{
				AccountCode:    account.Code,
				AdTypeCode:     adType,
				CustomerID:     account.CustomerID,
				AccountName:    account.Name,
				BudgetID:       budget.ID,
				BudgetName:     budget.Name,
				OrphanBudget:   !hasMaster,
				Campaigns:      campaignsByBudget[budget.ID],
				NetAmount:      masterByKey[key],
				Rollover:       rolloverByKey[key],
				TotalCost:      costByBudget[budget.ID],
				ActiveByName:   account.ActiveByName,
				ActiveByPeriod: account.ActiveByPeriod,
			}

			amount := budget.Amount
			row.BudgetAmount = &amount

			if hasAllocation {
				row.Allocation = &allocation
			}

			row.Acceleration = pickAcceleration(accelerationsByAccount[account.Code], adType, budget.ID)

			b.computeDerived(tc, period, &row, windows[account.Code])
			rows = append(rows, row)
		}

		// Tipos com orçamento mestre mas sem orçamento na plataforma entram
		// sem campanhas, para o resultado apontar a lacuna
		for _, adType := range tc.AdTypes {
			key := joinKey(account.Code, adType)
			if _, hasMaster := masterByKey[key]; !hasMaster || coveredAdTypes[adType] {
				continue
			}

			allocation, hasAllocation := allocationByKey[key]

			row := domain.BudgetRow{
				AccountCode:    account.Code,
				AdTypeCode:     adType,
				CustomerID:     account.CustomerID,
				AccountName:    account.Name,
				NetAmount:      masterByKey[key],
				Rollover:       rolloverByKey[key],
				ActiveByName:   account.ActiveByName,
				ActiveByPeriod: account.ActiveByPeriod,
			}

			if hasAllocation {
				row.Allocation = &allocation
			}

			row.Acceleration = pickAcceleration(accelerationsByAccount[account.Code], adType, "")

			b.computeDerived(tc, period, &row, windows[account.Code])
			rows = append(rows, row)
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].AccountCode != rows[j].AccountCode {
			return rows[i].AccountCode < rows[j].AccountCode
		}
		return rows[i].AdTypeCode > rows[j].AdTypeCode
	})

	logrus.WithFields(logrus.Fields{
		"tenant_id": tc.ID,
		"period":    fmt.Sprintf("%02d-%d", period.Month, period.Year),
		"rows":      len(rows),
	}).Debug("Linhas de sincronização montadas")

	return rows, nil
}

// fetchPeriodData executa as quatro consultas relacionais do período em paralelo
func (b *RowBuilder) fetchPeriodData(ctx context.Context, tc *tenant.Tenant, period domain.Period) (*periodData, error) {
	data := &periodData{}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		budgets, err := b.masterBudgetRepo.ListByPeriod(groupCtx, tc.DBSchema, period)
		if err != nil {
			return NewSyncError(ErrFetchMasterBudgets, apiErrors.ErrDatabaseOperation, tc.ID, err.Error())
		}
		data.masterBudgets = budgets
		return nil
	})

	group.Go(func() error {
		allocations, err := b.allocationRepo.ListByPeriod(groupCtx, tc.DBSchema, period)
		if err != nil {
			return NewSyncError(ErrFetchAllocations, apiErrors.ErrDatabaseOperation, tc.ID, err.Error())
		}
		data.allocations = allocations
		return nil
	})

	group.Go(func() error {
		rollovers, err := b.rolloverRepo.ListByPeriod(groupCtx, tc.DBSchema, period)
		if err != nil {
			return NewSyncError(ErrFetchRollovers, apiErrors.ErrDatabaseOperation, tc.ID, err.Error())
		}
		data.rollovers = rollovers
		return nil
	})

	group.Go(func() error {
		accelerations, err := b.accelerationRepo.ListByPeriod(groupCtx, tc.DBSchema, period)
		if err != nil {
			return NewSyncError(ErrFetchAccelerations, apiErrors.ErrDatabaseOperation, tc.ID, err.Error())
		}
		data.accelerations = accelerations
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return data, nil
}

// fetchActivePeriods carrega as janelas de vigência pelo cache e as indexa
// por código da conta
func (b *RowBuilder) fetchActivePeriods(ctx context.Context, tc *tenant.Tenant, refresh bool) (map[string]*domain.ActivePeriod, error) {
	payload, err := b.loader.Load(ctx, tc, domain.CacheCategorySheets, "active_periods", refresh,
		func(ctx context.Context) (json.RawMessage, error) {
			periods, err := b.sheetService.ListActivePeriods(ctx, tc)
			if err != nil {
				return nil, err
			}
			return json.Marshal(periods)
		})
	if err != nil {
		return nil, err
	}

	var periods []domain.ActivePeriod
	if err := json.Unmarshal(payload, &periods); err != nil {
		return nil, NewSyncError(ErrFetchAdsData, apiErrors.ErrInternalServer, tc.ID, err.Error())
	}

	windows := make(map[string]*domain.ActivePeriod, len(periods))
	for i := range periods {
		windows[strings.ToUpper(periods[i].AccountCode)] = &periods[i]
	}

	return windows, nil
}

// fetchAccountData busca campanhas, orçamentos e custos de cada conta na
// plataforma, em paralelo limitado e sempre através do cache volátil
func (b *RowBuilder) fetchAccountData(
	ctx context.Context,
	tc *tenant.Tenant,
	period domain.Period,
	accounts []domain.AccountClassification,
	refresh bool,
) (map[string]*accountData, error) {
	result := make(map[string]*accountData, len(accounts))

	var mu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(tc.MaxWorkers)

	for _, account := range accounts {
		account := account
		group.Go(func() error {
			state, err := b.fetchOneAccount(groupCtx, tc, period, account.CustomerID, refresh)
			if err != nil {
				return err
			}

			mu.Lock()
			result[account.CustomerID] = state
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

func (b *RowBuilder) fetchOneAccount(
	ctx context.Context,
	tc *tenant.Tenant,
	period domain.Period,
	customerID string,
	refresh bool,
) (*accountData, error) {
	state := &accountData{}

	campaignsPayload, err := b.loader.Load(ctx, tc, domain.CacheCategoryCampaigns, customerID, refresh,
		func(ctx context.Context) (json.RawMessage, error) {
			campaigns, err := b.adsService.ListCampaigns(ctx, tc, customerID)
			if err != nil {
				return nil, err
			}
			return json.Marshal(campaigns)
		})
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(campaignsPayload, &state.campaigns); err != nil {
		return nil, NewSyncError(ErrFetchAdsData, apiErrors.ErrInternalServer, tc.ID, err.Error())
	}

	budgetsPayload, err := b.loader.Load(ctx, tc, domain.CacheCategoryBudgets, customerID, refresh,
		func(ctx context.Context) (json.RawMessage, error) {
			budgets, err := b.adsService.ListBudgets(ctx, tc, customerID)
			if err != nil {
				return nil, err
			}
			return json.Marshal(budgets)
		})
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(budgetsPayload, &state.budgets); err != nil {
		return nil, NewSyncError(ErrFetchAdsData, apiErrors.ErrInternalServer, tc.ID, err.Error())
	}

	// O custo é do período, então o escopo carrega o mês consultado
	spendScope := fmt.Sprintf("%s:spend:%02d-%d", customerID, period.Month, period.Year)
	spendPayload, err := b.loader.Load(ctx, tc, domain.CacheCategoryBudgets, spendScope, refresh,
		func(ctx context.Context) (json.RawMessage, error) {
			spend, err := b.adsService.ListSpend(ctx, tc, customerID, period)
			if err != nil {
				return nil, err
			}
			return json.Marshal(spend)
		})
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(spendPayload, &state.spend); err != nil {
		return nil, NewSyncError(ErrFetchAdsData, apiErrors.ErrInternalServer, tc.ID, err.Error())
	}

	return state, nil
}

// computeDerived calcula os campos financeiros derivados da linha, uma única
// vez; as regras e os avisos referenciam estes valores sem recomputar
func (b *RowBuilder) computeDerived(tc *tenant.Tenant, period domain.Period, row *domain.BudgetRow, window *domain.ActivePeriod) {
	row.DaysLeft = b.daysLeft(tc, period, window)

	if row.Allocation == nil {
		return
	}

	allocatedBase := row.NetAmount.Add(row.Rollover).Mul(*row.Allocation).Div(hundred)
	row.AllocatedBudget = &allocatedBase

	effective := allocatedBase.Mul(row.Acceleration).Div(hundred)
	remaining := effective.Sub(row.TotalCost)
	row.Remaining = &remaining

	daily := decimal.Zero
	switch {
	case !row.AccountActive():
		// Conta inativa nunca recebe verba diária
		daily = decimal.Zero
	case row.DaysLeft > 0:
		daily = remaining.Div(decimal.NewFromInt(int64(row.DaysLeft)))
	}
	daily = daily.Round(2)
	row.DailyBudget = &daily

	if row.Pacing == nil && effective.IsPositive() {
		pacing := row.TotalCost.Div(effective).Mul(hundred).Round(2)
		row.Pacing = &pacing
	}

	if row.PercentSpend == nil && allocatedBase.IsPositive() {
		percentSpend := row.TotalCost.Div(allocatedBase).Mul(hundred).Round(2)
		row.PercentSpend = &percentSpend
	}
}

// daysLeft conta os dias restantes do período a partir de hoje no fuso do
// tenant, limitado pelo fim da janela de vigência quando ela termina no mês
func (b *RowBuilder) daysLeft(tc *tenant.Tenant, period domain.Period, window *domain.ActivePeriod) int {
	loc := tc.Location()

	ref := b.now().In(loc)
	ref = time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, loc)

	first := period.FirstDay(loc)
	last := period.LastDay(loc)

	if window != nil && window.EndDate != nil {
		end := window.EndDate.In(loc)
		end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, loc)
		if end.Before(last) {
			last = end
		}
	}

	if ref.Before(first) {
		ref = first
	}
	if ref.After(last) {
		return 0
	}

	days := 0
	for d := ref; !d.After(last); d = d.AddDate(0, 0, 1) {
		days++
	}

	return days
}

// pickAcceleration escolhe o multiplicador aplicável: escopo mais específico
// vence, empates resolvidos pela data efetiva mais recente e depois pelo id
func pickAcceleration(accelerations []*domain.Acceleration, adType, budgetID string) decimal.Decimal {
	var best *domain.Acceleration
	bestRank := -1

	for _, ac := range accelerations {
		if !ac.Multiplier.IsPositive() {
			continue
		}

		rank := -1
		switch ac.Scope {
		case domain.AccelerationScopeBudget:
			if budgetID != "" && ac.BudgetID != nil && *ac.BudgetID == budgetID {
				rank = 3
			}
		case domain.AccelerationScopeAdType:
			if ac.AdTypeCode != nil && strings.EqualFold(*ac.AdTypeCode, adType) {
				rank = 2
			}
		case domain.AccelerationScopeAccount:
			rank = 1
		}

		if rank < 0 {
			continue
		}

		if best == nil || rank > bestRank ||
			(rank == bestRank && ac.EffectiveDate().After(best.EffectiveDate())) ||
			(rank == bestRank && ac.EffectiveDate().Equal(best.EffectiveDate()) && ac.ID > best.ID) {
			best = ac
			bestRank = rank
		}
	}

	if best == nil {
		return defaultAcceleration
	}

	return best.Multiplier
}

// inferAdType reconhece o tipo de anúncio pelo nome do orçamento
func inferAdType(budgetName string, adTypes []string) string {
	upper := strings.ToUpper(budgetName)
	for _, adType := range adTypes {
		if strings.Contains(upper, strings.ToUpper(adType)) {
			return adType
		}
	}
	return ""
}

func joinKey(accountCode, adTypeCode string) string {
	return accountCode + "|" + adTypeCode
}
