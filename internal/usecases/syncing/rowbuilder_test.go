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
	"github.com/vfg2006/spendsphere-api/internal/tenant"
	"go.uber.org/mock/gomock"
)

func builderTenant(t *testing.T) *tenant.Tenant {
	t.Helper()

	tc := &tenant.Tenant{
		ID:             "acme",
		Timezone:       "UTC",
		AdTypes:        []string{"SEARCH", "PMAX"},
		ServiceAdTypes: map[string]string{"GSEARCH": "SEARCH"},
		DBSchema:       "acme",
	}
	require.NoError(t, tc.Validate())

	return tc
}

type builderFixture struct {
	builder      *RowBuilder
	adsService   *gadsmocks.MockAdsIntegrator
	sheetService *sheetmocks.MockSheetIntegrator
	budgetRepo   *mocks.MockMasterBudgetRepository
	allocRepo    *mocks.MockAllocationRepository
	rolloverRepo *mocks.MockRolloverRepository
	accelRepo    *mocks.MockAccelerationRepository
}

func newBuilderFixture(t *testing.T, ctrl *gomock.Controller) *builderFixture {
	t.Helper()

	f := &builderFixture{
		adsService:   gadsmocks.NewMockAdsIntegrator(ctrl),
		sheetService: sheetmocks.NewMockSheetIntegrator(ctrl),
		budgetRepo:   mocks.NewMockMasterBudgetRepository(ctrl),
		allocRepo:    mocks.NewMockAllocationRepository(ctrl),
		rolloverRepo: mocks.NewMockRolloverRepository(ctrl),
		accelRepo:    mocks.NewMockAccelerationRepository(ctrl),
	}

	f.builder = NewRowBuilder(
		cache.NewLoader(cache.NewFileStore(t.TempDir())),
		f.adsService,
		f.sheetService,
		f.budgetRepo,
		f.allocRepo,
		f.rolloverRepo,
		f.accelRepo,
	)

	// Dia fixo dentro do período para o cálculo de dias restantes
	f.builder.now = func() time.Time {
		return time.Date(2025, 6, 21, 12, 0, 0, 0, time.UTC)
	}

	return f
}

func TestRowBuilder_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBuilderFixture(t, ctrl)
	tc := builderTenant(t)
	period := domain.Period{Month: 6, Year: 2025}

	account := domain.AccountClassification{
		Code:           "TAAA",
		Name:           "Loja Um",
		CustomerID:     "111",
		ActiveByName:   true,
		ActiveByPeriod: true,
	}

	f.budgetRepo.EXPECT().ListByPeriod(gomock.Any(), "acme", period).
		Return([]*domain.MasterBudget{
			{ID: 1, AccountCode: "TAAA", ServiceCode: "GSEARCH", NetAmount: decimal.RequireFromString("1000")},
		}, nil)

	f.allocRepo.EXPECT().ListByPeriod(gomock.Any(), "acme", period).
		Return([]*domain.Allocation{
			{AccountCode: "TAAA", AdTypeCode: "SEARCH", Percent: decimal.RequireFromString("50")},
		}, nil)

	f.rolloverRepo.EXPECT().ListByPeriod(gomock.Any(), "acme", period).
		Return([]*domain.Rollover{
			{AccountCode: "TAAA", AdTypeCode: "SEARCH", Amount: decimal.RequireFromString("200")},
		}, nil)

	adType := "SEARCH"
	f.accelRepo.EXPECT().ListByPeriod(gomock.Any(), "acme", period).
		Return([]*domain.Acceleration{
			{
				ID:          7,
				Scope:       domain.AccelerationScopeAdType,
				AccountCode: "TAAA",
				AdTypeCode:  &adType,
				Multiplier:  decimal.RequireFromString("120"),
				DateCreated: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			},
		}, nil)

	f.sheetService.EXPECT().ListActivePeriods(gomock.Any(), gomock.Any()).Return(nil, nil)

	f.adsService.EXPECT().ListCampaigns(gomock.Any(), gomock.Any(), "111").
		Return([]domain.Campaign{
			{ID: "c1", Name: "TAAA_SEARCH", Status: domain.CampaignStatusEnabled, CustomerID: "111", BudgetID: "b1"},
		}, nil)

	f.adsService.EXPECT().ListBudgets(gomock.Any(), gomock.Any(), "111").
		Return([]domain.CampaignBudget{
			{ID: "b1", Name: "TAAA SEARCH diário", CustomerID: "111", Amount: decimal.RequireFromString("45")},
			{ID: "b2", Name: "TAAA PMAX diário", CustomerID: "111", Amount: decimal.RequireFromString("10")},
		}, nil)

	f.adsService.EXPECT().ListSpend(gomock.Any(), gomock.Any(), "111", period).
		Return([]domain.SpendEntry{
			{CustomerID: "111", CampaignID: "c1", BudgetID: "b1", Cost: decimal.RequireFromString("120")},
		}, nil)

	rows, err := f.builder.Build(context.Background(), tc, period, []domain.AccountClassification{account}, false)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Ordenação: conta ASC, tipo de anúncio DESC
	assert.Equal(t, "SEARCH", rows[0].AdTypeCode)
	assert.Equal(t, "PMAX", rows[1].AdTypeCode)

	search := rows[0]
	assert.Equal(t, "b1", search.BudgetID)
	assert.False(t, search.OrphanBudget)
	require.Len(t, search.Campaigns, 1)

	// (1000 + 200) * 50% = 600; 600 * 120% - 120 = 600; 10 dias restantes = 60
	require.NotNil(t, search.AllocatedBudget)
	assert.True(t, search.AllocatedBudget.Equal(decimal.RequireFromString("600")))
	require.NotNil(t, search.Remaining)
	assert.True(t, search.Remaining.Equal(decimal.RequireFromString("600")))
	assert.Equal(t, 10, search.DaysLeft)
	require.NotNil(t, search.DailyBudget)
	assert.True(t, search.DailyBudget.Equal(decimal.RequireFromString("60")))

	require.NotNil(t, search.Pacing)
	assert.True(t, search.Pacing.Equal(decimal.RequireFromString("16.67")))
	require.NotNil(t, search.PercentSpend)
	assert.True(t, search.PercentSpend.Equal(decimal.RequireFromString("20")))

	require.NotNil(t, search.BudgetAmount)
	assert.True(t, search.BudgetAmount.Equal(decimal.RequireFromString("45")))

	// Orçamento órfão: sem orçamento mestre para PMAX, mas a conta participa
	orphan := rows[1]
	assert.Equal(t, "b2", orphan.BudgetID)
	assert.True(t, orphan.OrphanBudget)
	assert.Nil(t, orphan.Allocation)
	assert.Nil(t, orphan.DailyBudget)
}

func TestRowBuilder_Build_ContaInativaTemVerbaZerada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBuilderFixture(t, ctrl)
	tc := builderTenant(t)
	period := domain.Period{Month: 6, Year: 2025}

	account := domain.AccountClassification{
		Code:           "TAAA",
		CustomerID:     "111",
		ActiveByName:   false,
		ActiveByPeriod: true,
	}

	f.budgetRepo.EXPECT().ListByPeriod(gomock.Any(), "acme", period).
		Return([]*domain.MasterBudget{
			{ID: 1, AccountCode: "TAAA", ServiceCode: "GSEARCH", NetAmount: decimal.RequireFromString("1000")},
		}, nil)
	f.allocRepo.EXPECT().ListByPeriod(gomock.Any(), "acme", period).
		Return([]*domain.Allocation{
			{AccountCode: "TAAA", AdTypeCode: "SEARCH", Percent: decimal.RequireFromString("50")},
		}, nil)
	f.rolloverRepo.EXPECT().ListByPeriod(gomock.Any(), "acme", period).Return(nil, nil)
	f.accelRepo.EXPECT().ListByPeriod(gomock.Any(), "acme", period).Return(nil, nil)
	f.sheetService.EXPECT().ListActivePeriods(gomock.Any(), gomock.Any()).Return(nil, nil)

	f.adsService.EXPECT().ListCampaigns(gomock.Any(), gomock.Any(), "111").Return(nil, nil)
	f.adsService.EXPECT().ListBudgets(gomock.Any(), gomock.Any(), "111").
		Return([]domain.CampaignBudget{
			{ID: "b1", Name: "TAAA SEARCH diário", CustomerID: "111", Amount: decimal.RequireFromString("45")},
		}, nil)
	f.adsService.EXPECT().ListSpend(gomock.Any(), gomock.Any(), "111", period).Return(nil, nil)

	rows, err := f.builder.Build(context.Background(), tc, period, []domain.AccountClassification{account}, false)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	require.NotNil(t, rows[0].DailyBudget)
	assert.True(t, rows[0].DailyBudget.IsZero())
}

func TestRowBuilder_DaysLeft_LimitadoPelaJanelaDeVigencia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBuilderFixture(t, ctrl)
	tc := builderTenant(t)
	period := domain.Period{Month: 6, Year: 2025}

	end := time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC)
	window := &domain.ActivePeriod{AccountCode: "TAAA", EndDate: &end}

	// 21 a 25 de junho, inclusivo
	assert.Equal(t, 5, f.builder.daysLeft(tc, period, window))

	// Sem janela, vale o fim do mês: 21 a 30
	assert.Equal(t, 10, f.builder.daysLeft(tc, period, nil))

	// Referência após o fim do período
	past := domain.Period{Month: 5, Year: 2025}
	assert.Equal(t, 0, f.builder.daysLeft(tc, past, nil))
}

func TestPickAcceleration(t *testing.T) {
	adType := "SEARCH"
	budgetID := "b1"
	earlier := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	later := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		accelerations []*domain.Acceleration
		expected      string
	}{
		{
			name:          "Sem registros aplica o multiplicador neutro",
			accelerations: nil,
			expected:      "100",
		},
		{
			name: "Escopo de orçamento vence o de tipo e o de conta",
			accelerations: []*domain.Acceleration{
				{ID: 1, Scope: domain.AccelerationScopeAccount, AccountCode: "TAAA", Multiplier: decimal.RequireFromString("110"), DateCreated: later},
				{ID: 2, Scope: domain.AccelerationScopeAdType, AccountCode: "TAAA", AdTypeCode: &adType, Multiplier: decimal.RequireFromString("120"), DateCreated: later},
				{ID: 3, Scope: domain.AccelerationScopeBudget, AccountCode: "TAAA", BudgetID: &budgetID, Multiplier: decimal.RequireFromString("130"), DateCreated: earlier},
			},
			expected: "130",
		},
		{
			name: "Empate de escopo resolve pela data efetiva mais recente",
			accelerations: []*domain.Acceleration{
				{ID: 1, Scope: domain.AccelerationScopeAccount, AccountCode: "TAAA", Multiplier: decimal.RequireFromString("110"), DateCreated: earlier},
				{ID: 2, Scope: domain.AccelerationScopeAccount, AccountCode: "TAAA", Multiplier: decimal.RequireFromString("140"), DateCreated: later},
			},
			expected: "140",
		},
		{
			name: "Empate total resolve pelo maior id",
			accelerations: []*domain.Acceleration{
				{ID: 1, Scope: domain.AccelerationScopeAccount, AccountCode: "TAAA", Multiplier: decimal.RequireFromString("110"), DateCreated: earlier},
				{ID: 9, Scope: domain.AccelerationScopeAccount, AccountCode: "TAAA", Multiplier: decimal.RequireFromString("150"), DateCreated: earlier},
			},
			expected: "150",
		},
		{
			name: "Multiplicador não positivo é ignorado",
			accelerations: []*domain.Acceleration{
				{ID: 1, Scope: domain.AccelerationScopeAccount, AccountCode: "TAAA", Multiplier: decimal.Zero, DateCreated: later},
			},
			expected: "100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pickAcceleration(tt.accelerations, "SEARCH", "b1")
			assert.True(t, result.Equal(decimal.RequireFromString(tt.expected)),
				"esperado %s, obtido %s", tt.expected, result.String())
		})
	}
}

func TestInferAdType(t *testing.T) {
	adTypes := []string{"SEARCH", "PMAX"}

	assert.Equal(t, "SEARCH", inferAdType("TAAA search diário", adTypes))
	assert.Equal(t, "PMAX", inferAdType("TAAA_PMAX", adTypes))
	assert.Equal(t, "", inferAdType("TAAA display", adTypes))
}
