package gadsclient

import (
	"context"
	"fmt"
	"net/http"

	gadsdomain "github.com/vfg2006/spendsphere-api/infrastructure/integrator/googleads/domain"
)

type mutateStatusRequest struct {
	Operations     []gadsdomain.StatusOperation `json:"operations"`
	PartialFailure bool                         `json:"partialFailure"`
}

type mutateAmountRequest struct {
	Operations     []gadsdomain.AmountOperation `json:"operations"`
	PartialFailure bool                         `json:"partialFailure"`
}

// MutateCampaignStatuses envia um lote de mudanças de status. Com partialFailure
// habilitado, operações inválidas falham individualmente sem abortar o lote.
func (c *GAdsClient) MutateCampaignStatuses(
	ctx context.Context,
	loginCustomerID, customerID string,
	ops []gadsdomain.StatusOperation,
) (*gadsdomain.MutateResponse, error) {
	endpoint := c.url(fmt.Sprintf("/customers/%s/campaigns:mutate", customerID))

	request := mutateStatusRequest{
		Operations:     ops,
		PartialFailure: true,
	}

	response := &gadsdomain.MutateResponse{}
	if err := c.do(ctx, loginCustomerID, http.MethodPost, endpoint, request, response); err != nil {
		return nil, fmt.Errorf("erro ao mutar status de campanhas do cliente %s: %w", customerID, err)
	}

	return response, nil
}

// MutateBudgetAmounts envia um lote de ajustes de valor diário de orçamentos
func (c *GAdsClient) MutateBudgetAmounts(
	ctx context.Context,
	loginCustomerID, customerID string,
	ops []gadsdomain.AmountOperation,
) (*gadsdomain.MutateResponse, error) {
	endpoint := c.url(fmt.Sprintf("/customers/%s/campaignBudgets:mutate", customerID))

	request := mutateAmountRequest{
		Operations:     ops,
		PartialFailure: true,
	}

	response := &gadsdomain.MutateResponse{}
	if err := c.do(ctx, loginCustomerID, http.MethodPost, endpoint, request, response); err != nil {
		return nil, fmt.Errorf("erro ao mutar orçamentos do cliente %s: %w", customerID, err)
	}

	return response, nil
}
