package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spendsphere-api/internal/domain"
	"github.com/vfg2006/spendsphere-api/internal/usecases/resolving"
	"github.com/vfg2006/spendsphere-api/pkg/apiErrors"
	"github.com/vfg2006/spendsphere-api/pkg/utils"
)

// CodeValidationResponse devolve os quatro baldes da validação e a
// classificação completa dos códigos aprovados
type CodeValidationResponse struct {
	domain.CodeValidationResult
	AllValid bool                           `json:"all_valid"`
	Active   []domain.AccountClassification `json:"active"`
}

func ValidateAccountCodes(service resolving.AccountResolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tc, ok := tenantFromRequest(w, r)
		if !ok {
			return
		}

		rawCodes := r.URL.Query().Get("codes")
		if rawCodes == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro 'codes' é obrigatório", nil)
			return
		}
		codes := strings.Split(rawCodes, ",")

		params, err := resolveParamsFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		result, actives, err := service.ValidateCodes(r.Context(), tc, codes, params)

		// Códigos reprovados não são um erro do endpoint de validação,
		// os baldes são a própria resposta
		var validationErr *resolving.ValidationError
		if err != nil && !errors.As(err, &validationErr) {
			logrus.WithFields(logrus.Fields{
				"tenant_id": tc.ID,
				"error":     err.Error(),
			}).Error("Erro ao validar códigos de conta")

			writePipelineError(w, err)
			return
		}

		resp := CodeValidationResponse{
			CodeValidationResult: *result,
			AllValid:             result.AllValid(),
			Active:               actives,
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// resolveParamsFromQuery lê a data de referência da query string: as_of
// explícito vence, senão month/year, senão a data atual do tenant
func resolveParamsFromQuery(r *http.Request) (resolving.ResolveParams, error) {
	params := resolving.ResolveParams{
		Refresh: r.URL.Query().Get("refresh") == "true",
	}

	if rawAsOf := r.URL.Query().Get("as_of"); rawAsOf != "" {
		asOf, err := utils.ParseDate(rawAsOf)
		if err != nil {
			return params, errors.New("parâmetro 'as_of' inválido, esperado o formato AAAA-MM-DD")
		}
		params.AsOf = asOf
	}

	month, err := intQueryParam(r, "month")
	if err != nil {
		return params, err
	}
	year, err := intQueryParam(r, "year")
	if err != nil {
		return params, err
	}

	if (month == 0) != (year == 0) {
		return params, errors.New("parâmetros 'month' e 'year' devem ser informados juntos")
	}
	if month != 0 && (month < 1 || month > 12) {
		return params, errors.New("parâmetro 'month' deve estar entre 1 e 12")
	}

	params.Month = month
	params.Year = year

	return params, nil
}

func intQueryParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("parâmetro '" + name + "' deve ser numérico")
	}

	return value, nil
}
