package gadsclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	gadsdomain "github.com/vfg2006/spendsphere-api/infrastructure/integrator/googleads/domain"
)

// ListCampaigns busca as campanhas do cliente. Campanhas removidas são
// excluídas na fonte e nunca chegam ao pipeline.
func (c *GAdsClient) ListCampaigns(ctx context.Context, loginCustomerID, customerID string) ([]gadsdomain.Campaign, error) {
	campaigns := make([]gadsdomain.Campaign, 0)
	pageToken := ""

	for {
		params := url.Values{}
		params.Add("fields", "id,name,status,campaignBudgetId")
		params.Add("statuses", "ENABLED,PAUSED")
		if pageToken != "" {
			params.Add("pageToken", pageToken)
		}

		endpoint := c.url(fmt.Sprintf("/customers/%s/campaigns", customerID)) + "?" + params.Encode()

		var response gadsdomain.CampaignsResponse
		if err := c.do(ctx, loginCustomerID, http.MethodGet, endpoint, nil, &response); err != nil {
			return nil, fmt.Errorf("erro ao listar campanhas do cliente %s: %w", customerID, err)
		}

		campaigns = append(campaigns, response.Results...)

		if response.NextPageToken == "" {
			return campaigns, nil
		}
		pageToken = response.NextPageToken
	}
}

// ListBudgets busca os orçamentos compartilhados do cliente
func (c *GAdsClient) ListBudgets(ctx context.Context, loginCustomerID, customerID string) ([]gadsdomain.Budget, error) {
	budgets := make([]gadsdomain.Budget, 0)
	pageToken := ""

	for {
		params := url.Values{}
		params.Add("fields", "id,name,amountMicros")
		if pageToken != "" {
			params.Add("pageToken", pageToken)
		}

		endpoint := c.url(fmt.Sprintf("/customers/%s/campaignBudgets", customerID)) + "?" + params.Encode()

		var response gadsdomain.BudgetsResponse
		if err := c.do(ctx, loginCustomerID, http.MethodGet, endpoint, nil, &response); err != nil {
			return nil, fmt.Errorf("erro ao listar orçamentos do cliente %s: %w", customerID, err)
		}

		budgets = append(budgets, response.Results...)

		if response.NextPageToken == "" {
			return budgets, nil
		}
		pageToken = response.NextPageToken
	}
}

// ListSpend busca o custo acumulado por campanha no intervalo informado
func (c *GAdsClient) ListSpend(ctx context.Context, loginCustomerID, customerID, startDate, endDate string) ([]gadsdomain.Spend, error) {
	spend := make([]gadsdomain.Spend, 0)
	pageToken := ""

	for {
		params := url.Values{}
		params.Add("startDate", startDate)
		params.Add("endDate", endDate)
		if pageToken != "" {
			params.Add("pageToken", pageToken)
		}

		endpoint := c.url(fmt.Sprintf("/customers/%s/spend", customerID)) + "?" + params.Encode()

		var response gadsdomain.SpendResponse
		if err := c.do(ctx, loginCustomerID, http.MethodGet, endpoint, nil, &response); err != nil {
			return nil, fmt.Errorf("erro ao consultar custos do cliente %s: %w", customerID, err)
		}

		spend = append(spend, response.Results...)

		if response.NextPageToken == "" {
			return spend, nil
		}
		pageToken = response.NextPageToken
	}
}
