package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spendsphere-api/internal/domain"
	"github.com/vfg2006/spendsphere-api/internal/usecases/syncing"
	"github.com/vfg2006/spendsphere-api/pkg/apiErrors"
)

// RowsResponse devolve as linhas transformadas sem decidir nem aplicar mutações
type RowsResponse struct {
	Rows  []domain.BudgetRow `json:"rows"`
	Total int                `json:"total"`
}

// InspectRows monta e devolve as linhas do período para inspeção. A execução
// nunca muta a plataforma, mesmo com decisões pendentes nas linhas.
func InspectRows(service syncing.Synchronizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tc, ok := tenantFromRequest(w, r)
		if !ok {
			return
		}

		params, err := resolveParamsFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		var accountCodes []string
		if rawCodes := r.URL.Query().Get("codes"); rawCodes != "" {
			accountCodes = strings.Split(rawCodes, ",")
		}

		rows, err := service.BuildRows(r.Context(), tc, syncing.SyncParams{
			Month:        params.Month,
			Year:         params.Year,
			AccountCodes: accountCodes,
			Refresh:      params.Refresh,
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"tenant_id": tc.ID,
				"error":     err.Error(),
			}).Error("Erro ao montar linhas de orçamento para inspeção")

			writePipelineError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(RowsResponse{Rows: rows, Total: len(rows)}); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
