// Package sheets integra o pipeline com a planilha de janelas de atividade
package sheets

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spendsphere-api/infrastructure/integrator/sheets/sheetclient"
	"github.com/vfg2006/spendsphere-api/internal/config"
	"github.com/vfg2006/spendsphere-api/internal/domain"
	"github.com/vfg2006/spendsphere-api/internal/tenant"
)

// activePeriodsRange é o intervalo com código da conta e limites da janela
const activePeriodsRange = "active_periods!A2:C"

// SheetIntegrator é o contrato de leitura da planilha do tenant
type SheetIntegrator interface {
	ListActivePeriods(ctx context.Context, tc *tenant.Tenant) ([]domain.ActivePeriod, error)
}

type Service struct {
	cfg    *config.Config
	Client sheetclient.Client
}

func New(cfg *config.Config, client sheetclient.Client) *Service {
	return &Service{
		cfg:    cfg,
		Client: client,
	}
}

// ListActivePeriods lê as janelas de atividade da planilha do tenant.
// Quando um código de conta aparece mais de uma vez, a última linha vence.
// Limites ausentes ou não parseáveis significam janela aberta naquele lado.
func (s *Service) ListActivePeriods(ctx context.Context, tc *tenant.Tenant) ([]domain.ActivePeriod, error) {
	if tc.SheetID == "" {
		return nil, nil
	}

	rows, err := s.Client.ReadRange(ctx, tc.SheetID, activePeriodsRange)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tc.ID,
			"sheet_id":  tc.SheetID,
			"error":     err.Error(),
		}).Error("sheets: falha ao ler janelas de atividade")
		return nil, err
	}

	byCode := make(map[string]domain.ActivePeriod)
	order := make([]string, 0)

	for _, row := range rows {
		if len(row) == 0 || row[0] == "" {
			continue
		}

		period := domain.ActivePeriod{AccountCode: row[0]}

		if len(row) > 1 {
			period.StartDate = parseSheetDate(row[1], tc.Location())
		}

		if len(row) > 2 {
			period.EndDate = parseSheetDate(row[2], tc.Location())
		}

		if _, exists := byCode[period.AccountCode]; !exists {
			order = append(order, period.AccountCode)
		}
		byCode[period.AccountCode] = period
	}

	periods := make([]domain.ActivePeriod, 0, len(byCode))
	for _, code := range order {
		periods = append(periods, byCode[code])
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id": tc.ID,
		"periods":   len(periods),
	}).Debug("sheets: janelas de atividade carregadas")

	return periods, nil
}

func parseSheetDate(raw string, loc *time.Location) *time.Time {
	if raw == "" {
		return nil
	}

	t, err := time.ParseInLocation(time.DateOnly, raw, loc)
	if err != nil {
		return nil
	}

	return &t
}
