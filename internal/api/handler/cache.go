package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spendsphere-api/internal/usecases/syncing"
	"github.com/vfg2006/spendsphere-api/pkg/apiErrors"
)

// RefreshCacheRequest lista as categorias a invalidar. Aliases de conveniência
// são aceitos e a lista vazia invalida todas as categorias.
type RefreshCacheRequest struct {
	Categories []string `json:"categories"`
}

// RefreshCacheResponse relata o resultado por categoria invalidada
type RefreshCacheResponse struct {
	Categories map[string]string `json:"categories"`
}

func RefreshCache(service syncing.Synchronizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tc, ok := tenantFromRequest(w, r)
		if !ok {
			return
		}

		var req RefreshCacheRequest
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
				return
			}
		}

		result, err := service.RefreshCache(r.Context(), tc, req.Categories)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"tenant_id": tc.ID,
				"error":     err.Error(),
			}).Error("Erro ao atualizar o cache do tenant")

			writePipelineError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(RefreshCacheResponse{Categories: result}); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
