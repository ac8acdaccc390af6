// Package cache implementa o armazenamento por tenant usado pelo pipeline.
// Cada entrada pertence a um (tenant, categoria, escopo); leituras nunca
// devolvem dados vencidos silenciosamente e escritas substituem o escopo inteiro.
package cache

import (
	"encoding/json"
	"time"
)

// formatVersion marca o layout das entradas persistidas. Entradas gravadas com
// versão diferente são tratadas como ausentes, nunca migradas.
const formatVersion = 2

// Entry é uma entrada de cache com o instante da última atualização
type Entry struct {
	Payload   json.RawMessage `json:"payload"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Stale verifica se a entrada ultrapassou o TTL
func (e *Entry) Stale(ttl time.Duration, now time.Time) bool {
	return now.Sub(e.UpdatedAt) > ttl
}

// Store é o contrato de armazenamento do pipeline. Get retorna nil quando a
// entrada não existe ou não pode ser decodificada; isso nunca é um erro.
type Store interface {
	Get(tenantID, category, scope string) (*Entry, error)
	Put(tenantID, category, scope string, payload json.RawMessage) error
	Invalidate(tenantID, category string, scopes ...string) error
}
