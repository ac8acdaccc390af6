// Package resolving classifica as contas da plataforma de anúncios por tenant:
// extrai o código do nome descritivo, avalia atividade pelo nome e pela janela
// de vigência e mantém o resultado no cache por escopo.
package resolving

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spendsphere-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/spendsphere-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/spendsphere-api/internal/cache"
	"github.com/vfg2006/spendsphere-api/internal/domain"
	"github.com/vfg2006/spendsphere-api/internal/tenant"
	"github.com/vfg2006/spendsphere-api/pkg/apiErrors"
	"golang.org/x/sync/errgroup"
)

// Escopos de cache da classificação de contas
const (
	ScopeActive = "active"
	ScopeAll    = "all"

	scopeActivePeriods = "active_periods"
)

// ResolveParams controla a data de referência e o alcance da resolução
type ResolveParams struct {
	// AsOf sobrepõe a data de referência quando informada
	AsOf *time.Time

	// Month e Year derivam a data de referência quando AsOf é nulo
	Month int
	Year  int

	IncludeAll bool
	Refresh    bool
}

type AccountResolver interface {
	Resolve(ctx context.Context, tc *tenant.Tenant, params ResolveParams) ([]domain.AccountClassification, error)
	ValidateCodes(ctx context.Context, tc *tenant.Tenant, codes []string, params ResolveParams) (*domain.CodeValidationResult, []domain.AccountClassification, error)
}

type Service struct {
	loader       *cache.Loader
	adsService   googleads.AdsIntegrator
	sheetService sheets.SheetIntegrator

	now func() time.Time
}

func NewService(
	loader *cache.Loader,
	adsService googleads.AdsIntegrator,
	sheetService sheets.SheetIntegrator,
) AccountResolver {
	return &Service{
		loader:       loader,
		adsService:   adsService,
		sheetService: sheetService,
		now:          time.Now,
	}
}

// Resolve devolve a classificação das contas do tenant na data de referência.
// O resultado fica no cache sob o escopo correspondente: "active" guarda apenas
// contas ativas pelas duas verificações, "all" guarda todas as parseáveis.
func (s *Service) Resolve(ctx context.Context, tc *tenant.Tenant, params ResolveParams) ([]domain.AccountClassification, error) {
	asOf := resolveAsOf(tc, params, s.now())

	scope := ScopeActive
	if params.IncludeAll {
		scope = ScopeAll
	}

	payload, err := s.loader.Load(ctx, tc, domain.CacheCategoryAccountCodes, scope, params.Refresh,
		func(ctx context.Context) (json.RawMessage, error) {
			classifications, err := s.classify(ctx, tc, asOf, params)
			if err != nil {
				return nil, err
			}
			return json.Marshal(classifications)
		})
	if err != nil {
		return nil, err
	}

	var classifications []domain.AccountClassification
	if err := json.Unmarshal(payload, &classifications); err != nil {
		return nil, NewResolvingError(ErrDecodeCache, apiErrors.ErrInternalServer, tc.ID, err.Error())
	}

	return classifications, nil
}

// ValidateCodes classifica cada código solicitado em exatamente um balde.
// Quando algum código não é válido e ativo, o erro carrega a classificação
// completa; os demais códigos da mesma requisição continuam classificados.
func (s *Service) ValidateCodes(
	ctx context.Context,
	tc *tenant.Tenant,
	codes []string,
	params ResolveParams,
) (*domain.CodeValidationResult, []domain.AccountClassification, error) {
	if len(codes) == 0 {
		return nil, nil, NewResolvingError(ErrNoCodesRequired, apiErrors.ErrMissingRequiredData, tc.ID, "")
	}

	// A validação precisa enxergar contas inativas para distinguir
	// "inexistente" de "inativa"
	params.IncludeAll = true

	classifications, err := s.Resolve(ctx, tc, params)
	if err != nil {
		return nil, nil, err
	}

	byCode := make(map[string]domain.AccountClassification, len(classifications))
	for _, c := range classifications {
		byCode[c.Code] = c
	}

	result := &domain.CodeValidationResult{
		Valid:            make([]string, 0, len(codes)),
		Invalid:          make([]string, 0),
		InactiveByName:   make([]string, 0),
		InactiveByPeriod: make([]string, 0),
	}
	actives := make([]domain.AccountClassification, 0, len(codes))

	for _, code := range codes {
		classification, found := byCode[strings.ToUpper(strings.TrimSpace(code))]
		if !found {
			result.Invalid = append(result.Invalid, code)
			continue
		}

		switch {
		case !classification.ActiveByName:
			result.InactiveByName = append(result.InactiveByName, code)
		case !classification.ActiveByPeriod:
			result.InactiveByPeriod = append(result.InactiveByPeriod, code)
		default:
			result.Valid = append(result.Valid, code)
			actives = append(actives, classification)
		}
	}

	if !result.AllValid() {
		return result, actives, &ValidationError{Result: *result}
	}

	return result, actives, nil
}

// classify busca contas e janelas de vigência em paralelo e aplica a convenção
// de nomes do tenant. Nomes que não casam com o padrão são descartados.
func (s *Service) classify(
	ctx context.Context,
	tc *tenant.Tenant,
	asOf time.Time,
	params ResolveParams,
) ([]domain.AccountClassification, error) {
	var (
		accounts []domain.RawAccount
		periods  []domain.ActivePeriod
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		payload, err := s.loader.Load(groupCtx, tc, domain.CacheCategoryClients, ScopeAll, params.Refresh,
			func(ctx context.Context) (json.RawMessage, error) {
				raw, err := s.adsService.ListAccounts(ctx, tc)
				if err != nil {
					return nil, err
				}
				return json.Marshal(raw)
			})
		if err != nil {
			return err
		}
		return json.Unmarshal(payload, &accounts)
	})

	group.Go(func() error {
		payload, err := s.loader.Load(groupCtx, tc, domain.CacheCategorySheets, scopeActivePeriods, params.Refresh,
			func(ctx context.Context) (json.RawMessage, error) {
				raw, err := s.sheetService.ListActivePeriods(ctx, tc)
				if err != nil {
					return nil, err
				}
				return json.Marshal(raw)
			})
		if err != nil {
			return err
		}
		return json.Unmarshal(payload, &periods)
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	periodsByCode := make(map[string]domain.ActivePeriod, len(periods))
	for _, p := range periods {
		periodsByCode[strings.ToUpper(p.AccountCode)] = p
	}

	re := tc.NamingRegexp()
	codeIdx := re.SubexpIndex("code")
	nameIdx := re.SubexpIndex("name")

	classifications := make([]domain.AccountClassification, 0, len(accounts))

	for _, acc := range accounts {
		match := re.FindStringSubmatch(acc.DescriptiveName)
		if match == nil || codeIdx < 0 || match[codeIdx] == "" {
			logrus.WithFields(logrus.Fields{
				"tenant_id":        tc.ID,
				"descriptive_name": acc.DescriptiveName,
			}).Debug("Conta fora da convenção de nomes, descartada")
			continue
		}

		code := strings.ToUpper(match[codeIdx])

		name := ""
		if nameIdx >= 0 {
			name = match[nameIdx]
		}

		classification := domain.AccountClassification{
			Code:            code,
			Name:            name,
			DescriptiveName: acc.DescriptiveName,
			CustomerID:      acc.CustomerID,
			ActiveByName:    !hasInactivePrefix(acc.DescriptiveName, tc.InactivePrefixes),
			ActiveByPeriod:  activeAt(periodsByCode, code, asOf),
		}

		if !params.IncludeAll && !classification.Active() {
			continue
		}

		classifications = append(classifications, classification)
	}

	sort.Slice(classifications, func(i, j int) bool {
		return classifications[i].Code < classifications[j].Code
	})

	logrus.WithFields(logrus.Fields{
		"tenant_id":   tc.ID,
		"as_of":       asOf.Format(time.DateOnly),
		"include_all": params.IncludeAll,
		"accounts":    len(classifications),
	}).Debug("Contas classificadas")

	return classifications, nil
}

// resolveAsOf aplica a precedência da data de referência: sobreposição
// explícita, depois o período informado, depois hoje no fuso do tenant.
// A data representativa do período depende da posição dele em relação ao
// mês corrente: período corrente usa hoje (janelas que encerraram durante
// o mês inativam a conta imediatamente), período passado usa o último dia
// do mês e período futuro usa o primeiro.
func resolveAsOf(tc *tenant.Tenant, params ResolveParams, now time.Time) time.Time {
	today := now.In(tc.Location())

	if params.AsOf != nil {
		return params.AsOf.In(tc.Location())
	}

	if params.Month > 0 && params.Year > 0 {
		target := domain.Period{Month: params.Month, Year: params.Year}
		current := domain.Period{Month: int(today.Month()), Year: today.Year()}

		switch {
		case target == current:
			return today
		case target.Before(current):
			return target.LastDay(tc.Location())
		default:
			return target.FirstDay(tc.Location())
		}
	}

	return today
}

// activeAt avalia a janela de vigência. Conta sem janela registrada é ativa.
func activeAt(periodsByCode map[string]domain.ActivePeriod, code string, asOf time.Time) bool {
	period, found := periodsByCode[code]
	if !found {
		return true
	}
	return period.Contains(asOf)
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
