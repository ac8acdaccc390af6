package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spendsphere-api/internal/tenant"
)

// FetchFunc busca o payload de um escopo direto na fonte
type FetchFunc func(ctx context.Context) (json.RawMessage, error)

// Loader combina o Store com a busca na fonte: devolve a entrada quando fresca
// e atualiza sincronamente quando ausente, vencida ou forçada.
type Loader struct {
	store Store

	maxRetries uint64
	now        func() time.Time
}

// NewLoader cria um Loader sobre o store informado
func NewLoader(store Store) *Loader {
	return &Loader{
		store:      store,
		maxRetries: 3,
		now:        time.Now,
	}
}

// Load resolve o payload de (tenant, categoria, escopo). Quando a busca na
// fonte falha após as tentativas, a entrada anterior fica intacta no store e
// o erro devolvido é um SourceError restrito ao escopo.
func (l *Loader) Load(
	ctx context.Context,
	tc *tenant.Tenant,
	category string,
	scope string,
	force bool,
	fetch FetchFunc,
) (json.RawMessage, error) {
	ttl := ResolveTTL(tc, category)

	if !force {
		entry, err := l.store.Get(tc.ID, category, scope)
		if err != nil {
			return nil, err
		}

		if entry != nil && !entry.Stale(ttl, l.now()) {
			return entry.Payload, nil
		}
	}

	payload, err := l.fetchWithRetry(ctx, fetch)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tc.ID,
			"category":  category,
			"scope":     scope,
			"error":     err.Error(),
		}).Error("Falha ao atualizar cache a partir da fonte")

		return nil, NewSourceError(ErrSourceUnavailable, tc.ID, category, scope, err.Error())
	}

	if err := l.store.Put(tc.ID, category, scope, payload); err != nil {
		return nil, err
	}

	return payload, nil
}

// fetchWithRetry tenta a fonte com backoff exponencial limitado
func (l *Loader) fetchWithRetry(ctx context.Context, fetch FetchFunc) (json.RawMessage, error) {
	var payload json.RawMessage

	operation := func() error {
		data, err := fetch(ctx)
		if err != nil {
			return err
		}
		payload = data
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), l.maxRetries),
		ctx,
	)

	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	return payload, nil
}
