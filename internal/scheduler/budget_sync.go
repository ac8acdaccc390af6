// Package scheduler agenda a sincronização automática de orçamentos por tenant
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spendsphere-api/internal/config"
	"github.com/vfg2006/spendsphere-api/internal/tenant"
	"github.com/vfg2006/spendsphere-api/internal/usecases/syncing"
)

// BudgetSyncConfig representa a configuração do agendador de sincronização
type BudgetSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	DryRun       bool
}

// BudgetSyncService gerencia o agendamento e a execução da sincronização de
// orçamentos para todos os tenants configurados
type BudgetSyncService struct {
	scheduler *gocron.Scheduler
	config    BudgetSyncConfig

	tenantProvider tenant.Provider
	syncService    syncing.Synchronizer

	syncRunning bool
	syncMutex   sync.Mutex
}

// NewBudgetSyncService cria uma nova instância do serviço de sincronização agendada
func NewBudgetSyncService(
	tenantProvider tenant.Provider,
	syncService syncing.Synchronizer,
	appConfig *config.Config,
) *BudgetSyncService {
	syncConfig := BudgetSyncConfig{
		CronSchedule: appConfig.BudgetSync.CronSchedule,
		SyncEnabled:  appConfig.BudgetSync.Enabled,
		DryRun:       appConfig.BudgetSync.DryRun,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
		"dry_run":       syncConfig.DryRun,
	}).Info("Configuração do agendador de sincronização de orçamentos carregada")

	return &BudgetSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		tenantProvider: tenantProvider,
		syncService:    syncService,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *BudgetSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização automática de orçamentos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de orçamentos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllTenants(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de orçamentos: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de orçamentos")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllTenants executa o pipeline para cada tenant configurado. A falha de
// um tenant nunca contamina o resultado dos demais.
func (s *BudgetSyncService) syncAllTenants(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de orçamentos já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	tenantIDs := s.tenantProvider.IDs()
	if len(tenantIDs) == 0 {
		logrus.Info("Nenhum tenant configurado para sincronização de orçamentos")
		return
	}

	logrus.WithFields(logrus.Fields{
		"tenants": len(tenantIDs),
		"dry_run": s.config.DryRun,
	}).Info("Iniciando sincronização de orçamentos para todos os tenants")

	succeeded := 0
	failed := 0

	for _, tenantID := range tenantIDs {
		if err := s.syncOneTenant(ctx, tenantID); err != nil {
			failed++
			continue
		}
		succeeded++
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"succeeded": succeeded,
		"failed":    failed,
	}).Info("Sincronização de orçamentos concluída")
}

func (s *BudgetSyncService) syncOneTenant(ctx context.Context, tenantID string) error {
	tc, err := s.tenantProvider.Get(tenantID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"error":     err.Error(),
		}).Error("Erro ao carregar configuração do tenant para sincronização agendada")
		return err
	}

	if !tc.SyncEnabled {
		logrus.WithField("tenant_id", tenantID).Info("Tenant com sincronização automática desabilitada, ignorando")
		return nil
	}

	result, err := s.syncService.Synchronize(ctx, tc, syncing.SyncParams{
		DryRun: s.config.DryRun,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"error":     err.Error(),
		}).Error("Erro na sincronização agendada do tenant")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id":        tenantID,
		"run_id":           result.RunID,
		"rows":             result.Summary.RowsBuilt,
		"status_mutations": result.Summary.StatusMutations,
		"amount_mutations": result.Summary.AmountMutations,
		"failed":           result.Summary.Failed,
		"warnings":         result.Summary.Warnings,
	}).Info("Sincronização agendada do tenant concluída")

	return nil
}
