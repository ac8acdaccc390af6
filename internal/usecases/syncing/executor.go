package syncing

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spendsphere-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/spendsphere-api/internal/domain"
	"github.com/vfg2006/spendsphere-api/internal/tenant"
)

// Executor aplica as mutações decididas na plataforma de anúncios. Cada
// cliente gera até dois lotes (status e valor) que executam em paralelo
// limitado; a falha de um lote nunca interrompe os demais.
type Executor struct {
	adsService googleads.AdsIntegrator
}

func NewExecutor(adsService googleads.AdsIntegrator) *Executor {
	return &Executor{
		adsService: adsService,
	}
}

// customerBatch agrupa as mutações de um cliente da plataforma
type customerBatch struct {
	customerID    string
	statusActions []domain.StatusAction
	amountActions []domain.AmountAction
}

// Execute aplica as decisões. Em dry-run produz o mesmo formato de resultado
// sem nenhuma chamada externa. As linhas não dependem umas das outras: não há
// garantia de ordem entre lotes concorrentes.
func (e *Executor) Execute(
	ctx context.Context,
	tc *tenant.Tenant,
	decisions []domain.MutationDecision,
	dryRun bool,
) []domain.MutationOutcome {
	if dryRun {
		return e.dryRunOutcomes(decisions)
	}

	batches := groupByCustomer(decisions)

	outcomes := make([]domain.MutationOutcome, 0)
	var mu sync.Mutex

	semaphore := make(chan struct{}, tc.MaxWorkers)
	var wg sync.WaitGroup

	appendOutcomes := func(batch []domain.MutationOutcome) {
		mu.Lock()
		outcomes = append(outcomes, batch...)
		mu.Unlock()
	}

	for _, batch := range batches {
		// Status e valor do mesmo cliente podem rodar em paralelo entre si
		if len(batch.statusActions) > 0 {
			wg.Add(1)
			semaphore <- struct{}{}

			go func(b *customerBatch) {
				defer func() {
					<-semaphore
					wg.Done()
				}()

				result, err := e.adsService.ApplyStatusChanges(ctx, tc, b.customerID, b.statusActions)
				if err != nil {
					appendOutcomes(failedStatusOutcomes(b, err))
					return
				}
				appendOutcomes(result)
			}(batch)
		}

		if len(batch.amountActions) > 0 {
			wg.Add(1)
			semaphore <- struct{}{}

			go func(b *customerBatch) {
				defer func() {
					<-semaphore
					wg.Done()
				}()

				result, err := e.adsService.ApplyAmountChanges(ctx, tc, b.customerID, b.amountActions)
				if err != nil {
					appendOutcomes(failedAmountOutcomes(b, err))
					return
				}
				appendOutcomes(result)
			}(batch)
		}
	}

	wg.Wait()

	logrus.WithFields(logrus.Fields{
		"tenant_id": tc.ID,
		"customers": len(batches),
		"outcomes":  len(outcomes),
	}).Info("Mutações aplicadas na plataforma")

	return outcomes
}

// dryRunOutcomes produz o resultado que a execução real produziria, sem
// efeitos colaterais externos
func (e *Executor) dryRunOutcomes(decisions []domain.MutationDecision) []domain.MutationOutcome {
	outcomes := make([]domain.MutationOutcome, 0, len(decisions))

	for _, d := range decisions {
		for _, a := range d.StatusActions {
			outcomes = append(outcomes, domain.MutationOutcome{
				CustomerID: d.CustomerID,
				CampaignID: a.CampaignID,
				Kind:       "status",
				Status:     domain.MutationDryRun,
			})
		}

		if d.AmountAction != nil {
			outcomes = append(outcomes, domain.MutationOutcome{
				CustomerID: d.CustomerID,
				BudgetID:   d.AmountAction.BudgetID,
				Kind:       "amount",
				Status:     domain.MutationDryRun,
			})
		}
	}

	return outcomes
}

// groupByCustomer agrega as decisões por cliente da plataforma, preservando a
// ordem de chegada dos clientes
func groupByCustomer(decisions []domain.MutationDecision) []*customerBatch {
	byCustomer := make(map[string]*customerBatch)
	order := make([]string, 0)

	for _, d := range decisions {
		batch, found := byCustomer[d.CustomerID]
		if !found {
			batch = &customerBatch{customerID: d.CustomerID}
			byCustomer[d.CustomerID] = batch
			order = append(order, d.CustomerID)
		}

		batch.statusActions = append(batch.statusActions, d.StatusActions...)

		if d.AmountAction != nil {
			batch.amountActions = append(batch.amountActions, *d.AmountAction)
		}
	}

	batches := make([]*customerBatch, 0, len(order))
	for _, customerID := range order {
		batches = append(batches, byCustomer[customerID])
	}

	return batches
}

// failedStatusOutcomes registra a falha do lote inteiro, operação por operação
func failedStatusOutcomes(batch *customerBatch, err error) []domain.MutationOutcome {
	outcomes := make([]domain.MutationOutcome, 0, len(batch.statusActions))
	for _, a := range batch.statusActions {
		outcomes = append(outcomes, domain.MutationOutcome{
			CustomerID: batch.customerID,
			CampaignID: a.CampaignID,
			Kind:       "status",
			Status:     domain.MutationFailed,
			Error:      err.Error(),
		})
	}
	return outcomes
}

func failedAmountOutcomes(batch *customerBatch, err error) []domain.MutationOutcome {
	outcomes := make([]domain.MutationOutcome, 0, len(batch.amountActions))
	for _, a := range batch.amountActions {
		outcomes = append(outcomes, domain.MutationOutcome{
			CustomerID: batch.customerID,
			BudgetID:   a.BudgetID,
			Kind:       "amount",
			Status:     domain.MutationFailed,
			Error:      err.Error(),
		})
	}
	return outcomes
}
