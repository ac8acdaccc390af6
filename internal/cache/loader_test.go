package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/spendsphere-api/internal/tenant"
)

func testTenant(t *testing.T) *tenant.Tenant {
	t.Helper()

	tc := &tenant.Tenant{
		ID:       "acme",
		Timezone: "America/Chicago",
		AdTypes:  []string{"GG", "YT"},
		DBSchema: "acme",
		CacheTTL: map[string]time.Duration{
			"account_codes": time.Hour,
		},
	}
	require.NoError(t, tc.Validate())

	return tc
}

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()
	tc := testTenant(t)

	var payloadFresh = json.RawMessage(`{"fonte":"nova"}`)

	tests := []struct {
		name     string
		force    bool
		setup    func(store Store)
		fetch    FetchFunc
		expected string
		hasError bool
	}{
		{
			name: "Entrada fresca deve ser devolvida sem consultar a fonte",
			setup: func(store Store) {
				require.NoError(t, store.Put("acme", "account_codes", "active", json.RawMessage(`{"fonte":"cache"}`)))
			},
			fetch: func(ctx context.Context) (json.RawMessage, error) {
				t.Fatal("a fonte não deveria ser consultada com cache fresco")
				return nil, nil
			},
			expected: `{"fonte":"cache"}`,
		},
		{
			name:  "Ausência deve disparar busca síncrona na fonte",
			setup: func(store Store) {},
			fetch: func(ctx context.Context) (json.RawMessage, error) {
				return payloadFresh, nil
			},
			expected: `{"fonte":"nova"}`,
		},
		{
			name:  "Atualização forçada ignora entrada fresca",
			force: true,
			setup: func(store Store) {
				require.NoError(t, store.Put("acme", "account_codes", "active", json.RawMessage(`{"fonte":"cache"}`)))
			},
			fetch: func(ctx context.Context) (json.RawMessage, error) {
				return payloadFresh, nil
			},
			expected: `{"fonte":"nova"}`,
		},
		{
			name:  "Falha da fonte devolve SourceError",
			setup: func(store Store) {},
			fetch: func(ctx context.Context) (json.RawMessage, error) {
				return nil, assert.AnError
			},
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewFileStore(t.TempDir())
			tt.setup(store)

			loader := NewLoader(store)
			loader.maxRetries = 0

			payload, err := loader.Load(ctx, tc, "account_codes", "active", tt.force, tt.fetch)

			if tt.hasError {
				require.Error(t, err)

				var srcErr *SourceError
				require.ErrorAs(t, err, &srcErr)
				assert.Equal(t, "acme", srcErr.TenantID)
				assert.Equal(t, "account_codes", srcErr.Category)
				assert.Equal(t, "active", srcErr.Scope)
				assert.ErrorIs(t, err, ErrSourceUnavailable)
				return
			}

			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(payload))
		})
	}
}

func TestLoader_FailureKeepsPreviousEntry(t *testing.T) {
	ctx := context.Background()
	tc := testTenant(t)

	store := NewFileStore(t.TempDir())
	require.NoError(t, store.Put("acme", "account_codes", "active", json.RawMessage(`{"fonte":"anterior"}`)))

	loader := NewLoader(store)
	loader.maxRetries = 0

	_, err := loader.Load(ctx, tc, "account_codes", "active", true, func(ctx context.Context) (json.RawMessage, error) {
		return nil, assert.AnError
	})
	require.Error(t, err)

	// A entrada anterior permanece intacta após a falha
	entry, err := store.Get("acme", "account_codes", "active")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.JSONEq(t, `{"fonte":"anterior"}`, string(entry.Payload))
}

func TestLoader_RetriesBeforeFailing(t *testing.T) {
	ctx := context.Background()
	tc := testTenant(t)

	store := NewFileStore(t.TempDir())
	loader := NewLoader(store)
	loader.maxRetries = 2

	calls := 0
	payload, err := loader.Load(ctx, tc, "account_codes", "active", true, func(ctx context.Context) (json.RawMessage, error) {
		calls++
		if calls < 3 {
			return nil, assert.AnError
		}
		return json.RawMessage(`{"fonte":"terceira"}`), nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.JSONEq(t, `{"fonte":"terceira"}`, string(payload))
}

func TestResolveTTL(t *testing.T) {
	tc := testTenant(t)

	tests := []struct {
		name     string
		category string
		env      string
		expected time.Duration
	}{
		{
			name:     "Categoria configurada no tenant usa o TTL do tenant",
			category: "account_codes",
			expected: time.Hour,
		},
		{
			name:     "Categoria volátil sem configuração usa TTL curto",
			category: "google_ads_budgets",
			expected: 5 * time.Minute,
		},
		{
			name:     "Categoria comum sem configuração usa padrão fixo",
			category: "google_sheets",
			expected: 24 * time.Hour,
		},
		{
			name:     "Variável de ambiente tem prioridade sobre o tenant",
			category: "account_codes",
			env:      "15m",
			expected: 15 * time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv("CACHE_TTL_ACCOUNT_CODES", tt.env)
			}

			assert.Equal(t, tt.expected, ResolveTTL(tc, tt.category))
		})
	}
}
