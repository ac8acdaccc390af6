package gadsclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	gadsdomain "github.com/vfg2006/spendsphere-api/infrastructure/integrator/googleads/domain"
)

// ListAccounts busca todas as contas de cliente acessíveis, seguindo a paginação
func (c *GAdsClient) ListAccounts(ctx context.Context, loginCustomerID string) ([]gadsdomain.Account, error) {
	accounts := make([]gadsdomain.Account, 0)
	pageToken := ""

	for {
		params := url.Values{}
		params.Add("fields", "customerId,descriptiveName")
		if pageToken != "" {
			params.Add("pageToken", pageToken)
		}

		endpoint := c.url("/customers:list") + "?" + params.Encode()

		var response gadsdomain.AccountsResponse
		if err := c.do(ctx, loginCustomerID, http.MethodGet, endpoint, nil, &response); err != nil {
			return nil, fmt.Errorf("erro ao listar contas: %w", err)
		}

		accounts = append(accounts, response.Results...)

		if response.NextPageToken == "" {
			return accounts, nil
		}
		pageToken = response.NextPageToken
	}
}
