package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_PutGet(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	payload := json.RawMessage(`{"accounts":["TAAA","TBBB"]}`)

	err := store.Put("acme", "account_codes", "active", payload)
	require.NoError(t, err)

	entry, err := store.Get("acme", "account_codes", "active")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.JSONEq(t, string(payload), string(entry.Payload))
	assert.WithinDuration(t, time.Now(), entry.UpdatedAt, 5*time.Second)
}

func TestFileStore_GetMiss(t *testing.T) {
	store := NewFileStore(t.TempDir())

	tests := []struct {
		name  string
		setup func(dir string)
	}{
		{
			name:  "Arquivo inexistente deve contar como ausência",
			setup: func(dir string) {},
		},
		{
			name: "Arquivo corrompido deve contar como ausência",
			setup: func(dir string) {
				path := filepath.Join(dir, "acme", "account_codes.json")
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
				require.NoError(t, os.WriteFile(path, []byte("{nao é json"), 0o644))
			},
		},
		{
			name: "Versão de formato divergente deve contar como ausência",
			setup: func(dir string) {
				path := filepath.Join(dir, "acme", "account_codes.json")
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
				legacy := `{"format_version":1,"scopes":{"active":{"payload":{},"updated_at":"2024-01-01T00:00:00Z"}}}`
				require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			store = NewFileStore(dir)
			tt.setup(dir)

			entry, err := store.Get("acme", "account_codes", "active")
			assert.NoError(t, err)
			assert.Nil(t, entry)
		})
	}
}

func TestFileStore_PutReplacesWholeScope(t *testing.T) {
	store := NewFileStore(t.TempDir())

	require.NoError(t, store.Put("acme", "google_ads_budgets", "TAAA", json.RawMessage(`{"a":1,"b":2}`)))
	require.NoError(t, store.Put("acme", "google_ads_budgets", "TAAA", json.RawMessage(`{"c":3}`)))

	entry, err := store.Get("acme", "google_ads_budgets", "TAAA")
	require.NoError(t, err)
	require.NotNil(t, entry)

	// A escrita substitui o escopo inteiro, sem mesclar com o payload anterior
	assert.JSONEq(t, `{"c":3}`, string(entry.Payload))
}

func TestFileStore_ScopesAreIndependent(t *testing.T) {
	store := NewFileStore(t.TempDir())

	require.NoError(t, store.Put("acme", "google_ads_budgets", "TAAA", json.RawMessage(`{"a":1}`)))
	require.NoError(t, store.Put("acme", "google_ads_budgets", "TBBB", json.RawMessage(`{"b":2}`)))

	entryA, err := store.Get("acme", "google_ads_budgets", "TAAA")
	require.NoError(t, err)
	require.NotNil(t, entryA)
	assert.JSONEq(t, `{"a":1}`, string(entryA.Payload))

	entryB, err := store.Get("acme", "google_ads_budgets", "TBBB")
	require.NoError(t, err)
	require.NotNil(t, entryB)
	assert.JSONEq(t, `{"b":2}`, string(entryB.Payload))
}

func TestFileStore_NoCrossTenantSharing(t *testing.T) {
	store := NewFileStore(t.TempDir())

	require.NoError(t, store.Put("acme", "account_codes", "active", json.RawMessage(`{"a":1}`)))

	entry, err := store.Get("globex", "account_codes", "active")
	assert.NoError(t, err)
	assert.Nil(t, entry)
}

func TestFileStore_Invalidate(t *testing.T) {
	tests := []struct {
		name        string
		invalidate  []string
		wantActive  bool
		wantAllScope bool
	}{
		{
			name:        "Invalidar um escopo específico mantém os demais",
			invalidate:  []string{"active"},
			wantActive:  false,
			wantAllScope: true,
		},
		{
			name:        "Invalidar sem escopos remove a categoria inteira",
			invalidate:  nil,
			wantActive:  false,
			wantAllScope: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewFileStore(t.TempDir())

			require.NoError(t, store.Put("acme", "account_codes", "active", json.RawMessage(`{"a":1}`)))
			require.NoError(t, store.Put("acme", "account_codes", "all", json.RawMessage(`{"b":2}`)))

			require.NoError(t, store.Invalidate("acme", "account_codes", tt.invalidate...))

			entry, err := store.Get("acme", "account_codes", "active")
			require.NoError(t, err)
			assert.Equal(t, tt.wantActive, entry != nil)

			entry, err = store.Get("acme", "account_codes", "all")
			require.NoError(t, err)
			assert.Equal(t, tt.wantAllScope, entry != nil)
		})
	}
}

func TestEntry_Stale(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		updated  time.Time
		ttl      time.Duration
		expected bool
	}{
		{
			name:     "Entrada dentro do TTL não está vencida",
			updated:  now.Add(-10 * time.Minute),
			ttl:      time.Hour,
			expected: false,
		},
		{
			name:     "Entrada além do TTL está vencida",
			updated:  now.Add(-2 * time.Hour),
			ttl:      time.Hour,
			expected: true,
		},
		{
			name:     "Entrada exatamente no limite não está vencida",
			updated:  now.Add(-time.Hour),
			ttl:      time.Hour,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &Entry{UpdatedAt: tt.updated}
			assert.Equal(t, tt.expected, entry.Stale(tt.ttl, now))
		})
	}
}
