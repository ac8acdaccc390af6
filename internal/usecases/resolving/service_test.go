package resolving

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gadsmocks "github.com/vfg2006/spendsphere-api/infrastructure/integrator/googleads/mocks"
	sheetmocks "github.com/vfg2006/spendsphere-api/infrastructure/integrator/sheets/mocks"
	"github.com/vfg2006/spendsphere-api/internal/cache"
	"github.com/vfg2006/spendsphere-api/internal/domain"
	"github.com/vfg2006/spendsphere-api/internal/tenant"
	"go.uber.org/mock/gomock"
)

func testTenant(t *testing.T) *tenant.Tenant {
	t.Helper()

	tc := &tenant.Tenant{
		ID:       "acme",
		Timezone: "America/Chicago",
		AdTypes:  []string{"SEARCH", "PMAX"},
		DBSchema: "acme",
	}
	require.NoError(t, tc.Validate())

	return tc
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestService_Resolve(t *testing.T) {
	asOf := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	accounts := []domain.RawAccount{
		{CustomerID: "111", DescriptiveName: "TAAA_Loja Um"},
		{CustomerID: "222", DescriptiveName: "zzz.TBBB_Loja Dois"},
		{CustomerID: "333", DescriptiveName: "TCCC_Loja Três"},
		{CustomerID: "444", DescriptiveName: "sem convencao de nomes"},
	}

	// TCCC encerrou a vigência antes da data de referência
	periods := []domain.ActivePeriod{
		{AccountCode: "TCCC", EndDate: timePtr(time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC))},
	}

	tests := []struct {
		name     string
		params   ResolveParams
		validate func(t *testing.T, result []domain.AccountClassification)
	}{
		{
			name:   "Escopo ativo retorna apenas contas ativas pelas duas verificações",
			params: ResolveParams{AsOf: timePtr(asOf)},
			validate: func(t *testing.T, result []domain.AccountClassification) {
				require.Len(t, result, 1)
				assert.Equal(t, "TAAA", result[0].Code)
				assert.Equal(t, "Loja Um", result[0].Name)
				assert.Equal(t, "111", result[0].CustomerID)
				assert.True(t, result[0].Active())
			},
		},
		{
			name:   "Escopo completo retorna todas as contas parseáveis com as duas flags",
			params: ResolveParams{AsOf: timePtr(asOf), IncludeAll: true},
			validate: func(t *testing.T, result []domain.AccountClassification) {
				require.Len(t, result, 3)

				byCode := make(map[string]domain.AccountClassification, len(result))
				for _, c := range result {
					byCode[c.Code] = c
				}

				assert.True(t, byCode["TAAA"].ActiveByName)
				assert.True(t, byCode["TAAA"].ActiveByPeriod)

				assert.False(t, byCode["TBBB"].ActiveByName)
				assert.True(t, byCode["TBBB"].ActiveByPeriod)

				assert.True(t, byCode["TCCC"].ActiveByName)
				assert.False(t, byCode["TCCC"].ActiveByPeriod)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			adsService := gadsmocks.NewMockAdsIntegrator(ctrl)
			sheetService := sheetmocks.NewMockSheetIntegrator(ctrl)

			adsService.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return(accounts, nil)
			sheetService.EXPECT().ListActivePeriods(gomock.Any(), gomock.Any()).Return(periods, nil)

			loader := cache.NewLoader(cache.NewFileStore(t.TempDir()))
			service := NewService(loader, adsService, sheetService)

			result, err := service.Resolve(context.Background(), testTenant(t), tt.params)
			require.NoError(t, err)

			tt.validate(t, result)
		})
	}
}

func TestService_Resolve_UsaCacheNaSegundaChamada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adsService := gadsmocks.NewMockAdsIntegrator(ctrl)
	sheetService := sheetmocks.NewMockSheetIntegrator(ctrl)

	// As fontes são consultadas uma única vez: a segunda resolução vem do cache
	adsService.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).
		Return([]domain.RawAccount{{CustomerID: "111", DescriptiveName: "TAAA_Loja Um"}}, nil).
		Times(1)
	sheetService.EXPECT().ListActivePeriods(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(1)

	loader := cache.NewLoader(cache.NewFileStore(t.TempDir()))
	service := NewService(loader, adsService, sheetService)

	tc := testTenant(t)
	asOf := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	first, err := service.Resolve(context.Background(), tc, ResolveParams{AsOf: timePtr(asOf)})
	require.NoError(t, err)

	second, err := service.Resolve(context.Background(), tc, ResolveParams{AsOf: timePtr(asOf)})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestService_ValidateCodes(t *testing.T) {
	asOf := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	accounts := []domain.RawAccount{
		{CustomerID: "111", DescriptiveName: "TAAA_Loja Um"},
		{CustomerID: "222", DescriptiveName: "zzz.TBBB_Loja Dois"},
		{CustomerID: "333", DescriptiveName: "TCCC_Loja Três"},
	}
	periods := []domain.ActivePeriod{
		{AccountCode: "TCCC", EndDate: timePtr(time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC))},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adsService := gadsmocks.NewMockAdsIntegrator(ctrl)
	sheetService := sheetmocks.NewMockSheetIntegrator(ctrl)

	adsService.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return(accounts, nil)
	sheetService.EXPECT().ListActivePeriods(gomock.Any(), gomock.Any()).Return(periods, nil)

	loader := cache.NewLoader(cache.NewFileStore(t.TempDir()))
	service := NewService(loader, adsService, sheetService)

	result, actives, err := service.ValidateCodes(
		context.Background(),
		testTenant(t),
		[]string{"TAAA", "TBBB", "TCCC", "TZZZ"},
		ResolveParams{AsOf: timePtr(asOf)},
	)

	// Cada código cai em exatamente um balde, e o erro carrega a classificação
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotNil(t, result)

	assert.Equal(t, []string{"TAAA"}, result.Valid)
	assert.Equal(t, []string{"TZZZ"}, result.Invalid)
	assert.Equal(t, []string{"TBBB"}, result.InactiveByName)
	assert.Equal(t, []string{"TCCC"}, result.InactiveByPeriod)
	assert.False(t, result.AllValid())

	require.Len(t, actives, 1)
	assert.Equal(t, "TAAA", actives[0].Code)
}

func TestService_ValidateCodes_TodosValidos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adsService := gadsmocks.NewMockAdsIntegrator(ctrl)
	sheetService := sheetmocks.NewMockSheetIntegrator(ctrl)

	adsService.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).
		Return([]domain.RawAccount{{CustomerID: "111", DescriptiveName: "TAAA_Loja Um"}}, nil)
	sheetService.EXPECT().ListActivePeriods(gomock.Any(), gomock.Any()).Return(nil, nil)

	loader := cache.NewLoader(cache.NewFileStore(t.TempDir()))
	service := NewService(loader, adsService, sheetService)

	result, actives, err := service.ValidateCodes(
		context.Background(),
		testTenant(t),
		[]string{"taaa"},
		ResolveParams{},
	)

	require.NoError(t, err)
	assert.True(t, result.AllValid())
	assert.Equal(t, []string{"taaa"}, result.Valid)
	require.Len(t, actives, 1)
	assert.Equal(t, "TAAA", actives[0].Code)
}

func TestResolveAsOf(t *testing.T) {
	tc := testTenant(t)
	explicit := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 15, 18, 30, 0, 0, tc.Location())

	tests := []struct {
		name     string
		params   ResolveParams
		validate func(t *testing.T, asOf time.Time)
	}{
		{
			name:   "Sobreposição explícita tem precedência sobre o período",
			params: ResolveParams{AsOf: timePtr(explicit), Month: 6, Year: 2025},
			validate: func(t *testing.T, asOf time.Time) {
				assert.True(t, explicit.Equal(asOf))
			},
		},
		{
			name:   "Período corrente usa a data de hoje no fuso do tenant",
			params: ResolveParams{Month: 6, Year: 2025},
			validate: func(t *testing.T, asOf time.Time) {
				assert.Equal(t, 2025, asOf.Year())
				assert.Equal(t, time.June, asOf.Month())
				assert.Equal(t, 15, asOf.Day())
				assert.Equal(t, tc.Location(), asOf.Location())
			},
		},
		{
			name:   "Período passado deriva o último dia do mês",
			params: ResolveParams{Month: 4, Year: 2025},
			validate: func(t *testing.T, asOf time.Time) {
				assert.Equal(t, 2025, asOf.Year())
				assert.Equal(t, time.April, asOf.Month())
				assert.Equal(t, 30, asOf.Day())
			},
		},
		{
			name:   "Ano anterior conta como período passado mesmo com mês maior",
			params: ResolveParams{Month: 12, Year: 2024},
			validate: func(t *testing.T, asOf time.Time) {
				assert.Equal(t, 2024, asOf.Year())
				assert.Equal(t, time.December, asOf.Month())
				assert.Equal(t, 31, asOf.Day())
			},
		},
		{
			name:   "Período futuro deriva o primeiro dia do mês",
			params: ResolveParams{Month: 8, Year: 2025},
			validate: func(t *testing.T, asOf time.Time) {
				assert.Equal(t, 2025, asOf.Year())
				assert.Equal(t, time.August, asOf.Month())
				assert.Equal(t, 1, asOf.Day())
			},
		},
		{
			name:   "Sem sobreposição nem período usa a data corrente no fuso do tenant",
			params: ResolveParams{},
			validate: func(t *testing.T, asOf time.Time) {
				assert.Equal(t, tc.Location(), asOf.Location())
				assert.True(t, now.Equal(asOf))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, resolveAsOf(tc, tt.params, now))
		})
	}
}

func TestService_Resolve_JanelaEncerradaNoMesCorrenteInativaAConta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adsService := gadsmocks.NewMockAdsIntegrator(ctrl)
	sheetService := sheetmocks.NewMockSheetIntegrator(ctrl)

	accounts := []domain.RawAccount{
		{CustomerID: "111", DescriptiveName: "TAAA_Loja Um"},
	}
	// A vigência de TAAA encerrou no dia 10 do mês corrente
	periods := []domain.ActivePeriod{
		{AccountCode: "TAAA", EndDate: timePtr(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))},
	}

	adsService.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return(accounts, nil)
	sheetService.EXPECT().ListActivePeriods(gomock.Any(), gomock.Any()).Return(periods, nil)

	loader := cache.NewLoader(cache.NewFileStore(t.TempDir()))

	tc := testTenant(t)
	service := NewService(loader, adsService, sheetService).(*Service)
	service.now = func() time.Time {
		return time.Date(2025, 6, 20, 9, 0, 0, 0, tc.Location())
	}

	// O período corrente usa hoje como data de referência, não o primeiro dia
	result, err := service.Resolve(context.Background(), tc, ResolveParams{
		Month:      6,
		Year:       2025,
		IncludeAll: true,
	})
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, "TAAA", result[0].Code)
	assert.True(t, result[0].ActiveByName)
	assert.False(t, result[0].ActiveByPeriod)
	assert.False(t, result[0].Active())
}
