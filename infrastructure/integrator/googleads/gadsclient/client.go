package gadsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	gadsdomain "github.com/vfg2006/spendsphere-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/spendsphere-api/internal/config"
)

type Client interface {
	ListAccounts(ctx context.Context, loginCustomerID string) ([]gadsdomain.Account, error)
	ListCampaigns(ctx context.Context, loginCustomerID, customerID string) ([]gadsdomain.Campaign, error)
	ListBudgets(ctx context.Context, loginCustomerID, customerID string) ([]gadsdomain.Budget, error)
	ListSpend(ctx context.Context, loginCustomerID, customerID, startDate, endDate string) ([]gadsdomain.Spend, error)
	MutateCampaignStatuses(ctx context.Context, loginCustomerID, customerID string, ops []gadsdomain.StatusOperation) (*gadsdomain.MutateResponse, error)
	MutateBudgetAmounts(ctx context.Context, loginCustomerID, customerID string, ops []gadsdomain.AmountOperation) (*gadsdomain.MutateResponse, error)
}

type GAdsClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &GAdsClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// do executa a requisição com os cabeçalhos de autenticação e decodifica a
// resposta no destino informado
func (c *GAdsClient) do(ctx context.Context, loginCustomerID, method, url string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("erro ao serializar o corpo da requisição: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}

	req.Header.Set("Authorization", "Bearer "+c.Cfg.GoogleAds.AccessToken)
	req.Header.Set("developer-token", c.Cfg.GoogleAds.DeveloperToken)
	if loginCustomerID != "" {
		req.Header.Set("login-customer-id", loginCustomerID)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &gadsdomain.APIError{}
		if err := json.Unmarshal(data, apiErr); err == nil && apiErr.Message != "" {
			return apiErr
		}
		return fmt.Errorf("ads api: status inesperado %d: %s", resp.StatusCode, string(data))
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return err
	}

	return nil
}

// url monta o endereço completo a partir da URL base configurada
func (c *GAdsClient) url(path string) string {
	return fmt.Sprintf("%s%s", c.Cfg.GoogleAds.BaseURL, path)
}
