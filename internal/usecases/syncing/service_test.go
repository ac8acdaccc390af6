package syncing

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gadsmocks "github.com/vfg2006/spendsphere-api/infrastructure/integrator/googleads/mocks"
	sheetmocks "github.com/vfg2006/spendsphere-api/infrastructure/integrator/sheets/mocks"
	"github.com/vfg2006/spendsphere-api/infrastructure/repository/mocks"
	"github.com/vfg2006/spendsphere-api/internal/cache"
	"github.com/vfg2006/spendsphere-api/internal/domain"
	"github.com/vfg2006/spendsphere-api/internal/usecases/resolving"
	"go.uber.org/mock/gomock"
)

// pipelineFixture liga o pipeline completo sobre mocks das fontes externas
type pipelineFixture struct {
	service Synchronizer
	store   *cache.FileStore
}

func newPipelineFixture(t *testing.T, ctrl *gomock.Controller, runs int) *pipelineFixture {
	t.Helper()

	adsService := gadsmocks.NewMockAdsIntegrator(ctrl)
	sheetService := sheetmocks.NewMockSheetIntegrator(ctrl)
	budgetRepo := mocks.NewMockMasterBudgetRepository(ctrl)
	allocRepo := mocks.NewMockAllocationRepository(ctrl)
	rolloverRepo := mocks.NewMockRolloverRepository(ctrl)
	accelRepo := mocks.NewMockAccelerationRepository(ctrl)

	period := domain.Period{Month: 6, Year: 2025}

	// As fontes da plataforma passam pelo cache: uma chamada atende às duas
	// execuções. As consultas relacionais rodam a cada execução.
	adsService.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).
		Return([]domain.RawAccount{{CustomerID: "111", DescriptiveName: "TAAA_Loja Um"}}, nil).
		Times(1)
	sheetService.EXPECT().ListActivePeriods(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(1)
	adsService.EXPECT().ListCampaigns(gomock.Any(), gomock.Any(), "111").
		Return([]domain.Campaign{
			{ID: "c1", Name: "TAAA_SEARCH", Status: domain.CampaignStatusEnabled, CustomerID: "111", BudgetID: "b1"},
		}, nil).
		Times(1)
	adsService.EXPECT().ListBudgets(gomock.Any(), gomock.Any(), "111").
		Return([]domain.CampaignBudget{
			{ID: "b1", Name: "TAAA SEARCH diário", CustomerID: "111", Amount: decimal.RequireFromString("45")},
		}, nil).
		Times(1)
	adsService.EXPECT().ListSpend(gomock.Any(), gomock.Any(), "111", period).
		Return([]domain.SpendEntry{
			{CustomerID: "111", CampaignID: "c1", BudgetID: "b1", Cost: decimal.RequireFromString("800")},
		}, nil).
		Times(1)

	budgetRepo.EXPECT().ListByPeriod(gomock.Any(), "acme", period).
		Return([]*domain.MasterBudget{
			{ID: 1, AccountCode: "TAAA", ServiceCode: "GSEARCH", NetAmount: decimal.RequireFromString("1000")},
		}, nil).
		Times(runs)
	allocRepo.EXPECT().ListByPeriod(gomock.Any(), "acme", period).
		Return([]*domain.Allocation{
			{AccountCode: "TAAA", AdTypeCode: "SEARCH", Percent: decimal.RequireFromString("50")},
		}, nil).
		Times(runs)
	rolloverRepo.EXPECT().ListByPeriod(gomock.Any(), "acme", period).Return(nil, nil).Times(runs)
	accelRepo.EXPECT().ListByPeriod(gomock.Any(), "acme", period).Return(nil, nil).Times(runs)

	store := cache.NewFileStore(t.TempDir())
	loader := cache.NewLoader(store)

	resolver := resolving.NewService(loader, adsService, sheetService)
	builder := NewRowBuilder(loader, adsService, sheetService, budgetRepo, allocRepo, rolloverRepo, accelRepo)
	builder.now = func() time.Time {
		return time.Date(2025, 6, 21, 12, 0, 0, 0, time.UTC)
	}

	service := NewService(resolver, builder, NewDeduper(store), NewExecutor(adsService), store)

	return &pipelineFixture{service: service, store: store}
}

func TestService_Synchronize_Idempotencia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newPipelineFixture(t, ctrl, 2)

	tc := builderTenant(t)
	params := SyncParams{Month: 6, Year: 2025, DryRun: true}

	first, err := f.service.Synchronize(context.Background(), tc, params)
	require.NoError(t, err)

	second, err := f.service.Synchronize(context.Background(), tc, params)
	require.NoError(t, err)

	// Sem mudança externa, as decisões são idênticas
	assert.Equal(t, first.Decisions, second.Decisions)

	// Gasto de 800 contra 500 alocados: as três regras de gasto disparam
	assert.Equal(t, 3, first.Summary.Warnings)
	assert.NotEmpty(t, first.Warnings)

	// Na segunda execução todos os avisos são deduplicados
	assert.Equal(t, 0, second.Summary.Warnings)
	assert.Equal(t, 3, second.Summary.SuppressedWarns)
	assert.Empty(t, second.Warnings)
}

func TestService_Synchronize_DryRunNaoAplicaMutacoes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newPipelineFixture(t, ctrl, 1)

	tc := builderTenant(t)

	result, err := f.service.Synchronize(context.Background(), tc, SyncParams{Month: 6, Year: 2025, DryRun: true})
	require.NoError(t, err)

	require.NotEmpty(t, result.Outcomes)
	for _, o := range result.Outcomes {
		assert.Equal(t, domain.MutationDryRun, o.Status)
	}

	assert.True(t, result.Summary.DryRun)
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, "acme", result.Tenant)
}

func TestService_RefreshCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adsService := gadsmocks.NewMockAdsIntegrator(ctrl)
	store := cache.NewFileStore(t.TempDir())
	service := NewService(nil, nil, NewDeduper(store), NewExecutor(adsService), store)

	tc := builderTenant(t)

	t.Run("Apelidos são normalizados para as categorias reais", func(t *testing.T) {
		result, err := service.RefreshCache(context.Background(), tc, []string{"accounts", "budgets"})
		require.NoError(t, err)

		assert.Equal(t, "invalidated", result[domain.CacheCategoryClients])
		assert.Equal(t, "invalidated", result[domain.CacheCategoryBudgets])
		assert.Len(t, result, 2)
	})

	t.Run("Lista vazia invalida todas as categorias", func(t *testing.T) {
		result, err := service.RefreshCache(context.Background(), tc, nil)
		require.NoError(t, err)
		assert.Len(t, result, len(allCategories))
	})

	t.Run("Apelido desconhecido é rejeitado", func(t *testing.T) {
		for _, alias := range []string{"nope", "services"} {
			_, err := service.RefreshCache(context.Background(), tc, []string{alias})
			require.ErrorIs(t, err, ErrUnknownCacheAlias)
		}
	})
}
