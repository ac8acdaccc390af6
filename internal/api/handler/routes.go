package handler

import (
	"net/http"

	"github.com/vfg2006/spendsphere-api/internal/api/handler/router"
	"github.com/vfg2006/spendsphere-api/internal/usecases/resolving"
	"github.com/vfg2006/spendsphere-api/internal/usecases/syncing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Sync(service syncing.Synchronizer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync",
			Method:  http.MethodPost,
			Handler: Synchronize(service),
		},
		{
			Path:    "/v1/rows",
			Method:  http.MethodGet,
			Handler: InspectRows(service),
		},
		{
			Path:    "/v1/cache/refresh",
			Method:  http.MethodPost,
			Handler: RefreshCache(service),
		},
	}
}

func Accounts(service resolving.AccountResolver) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/validate",
			Method:  http.MethodGet,
			Handler: ValidateAccountCodes(service),
		},
	}
}
