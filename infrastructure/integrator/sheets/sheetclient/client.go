package sheetclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spendsphere-api/internal/config"
)

type Client interface {
	ReadRange(ctx context.Context, sheetID, readRange string) ([][]string, error)
}

// valuesResponse é o envelope da API de planilhas
type valuesResponse struct {
	Range  string     `json:"range"`
	Values [][]string `json:"values"`
}

// SheetClient lê intervalos de planilhas. O cliente subjacente NÃO é seguro
// para uso concorrente: todas as chamadas são serializadas pelo mutex, mesmo
// quando o restante do pipeline roda em paralelo.
type SheetClient struct {
	Cfg        *config.Config
	httpClient *http.Client

	mu sync.Mutex
}

func NewClient(cfg *config.Config) Client {
	return &SheetClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *SheetClient) ReadRange(ctx context.Context, sheetID, readRange string) ([][]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	params := url.Values{}
	params.Add("key", c.Cfg.Sheets.APIKey)

	endpoint := fmt.Sprintf("%s/spreadsheets/%s/values/%s?%s",
		c.Cfg.Sheets.BaseURL, sheetID, url.PathEscape(readRange), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheets api: status inesperado %d: %s", resp.StatusCode, string(body))
	}

	var response valuesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Values, nil
}
