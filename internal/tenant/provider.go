package tenant

import (
	"fmt"
	"path/filepath"
	"reflect"
	"sync"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Provider resolve a configuração de um tenant pelo seu identificador
type Provider interface {
	Get(tenantID string) (*Tenant, error)
	IDs() []string
}

type fileProvider struct {
	dir   string
	mu    sync.RWMutex
	cache map[string]*Tenant
}

// NewFileProvider cria um provider que lê arquivos <dir>/<tenant>.yaml.
// Cada arquivo é lido uma única vez e mantido em memória; o processo precisa
// ser reiniciado para recarregar configurações alteradas.
func NewFileProvider(dir string) Provider {
	return &fileProvider{
		dir:   dir,
		cache: make(map[string]*Tenant),
	}
}

func (p *fileProvider) Get(tenantID string) (*Tenant, error) {
	p.mu.RLock()
	if t, ok := p.cache[tenantID]; ok {
		p.mu.RUnlock()
		return t, nil
	}
	p.mu.RUnlock()

	t, err := p.load(tenantID)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.cache[tenantID] = t
	p.mu.Unlock()

	return t, nil
}

func (p *fileProvider) IDs() []string {
	files, err := filepath.Glob(filepath.Join(p.dir, "*.yaml"))
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar arquivos de configuração de tenants")
		return nil
	}

	ids := make([]string, 0, len(files))
	for _, f := range files {
		base := filepath.Base(f)
		ids = append(ids, base[:len(base)-len(filepath.Ext(base))])
	}

	return ids
}

func (p *fileProvider) load(tenantID string) (*Tenant, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(filepath.Join(p.dir, fmt.Sprintf("%s.yaml", tenantID)))

	if err := v.ReadInConfig(); err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"error":     err.Error(),
		}).Warn("Não foi possível ler o arquivo de configuração do tenant")
		return nil, NewConfigError(ErrTenantNotFound, tenantID, err.Error())
	}

	t := &Tenant{}
	err := v.Unmarshal(t, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			stringToDecimalHookFunc(),
		),
	))
	if err != nil {
		return nil, NewConfigError(ErrReadConfig, tenantID, err.Error())
	}

	if t.ID == "" {
		t.ID = tenantID
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id": t.ID,
		"timezone":  t.Timezone,
	}).Info("Configuração do tenant carregada")

	return t, nil
}

// stringToDecimalHookFunc converte strings e números do YAML para decimal.Decimal
func stringToDecimalHookFunc() mapstructure.DecodeHookFuncType {
	decimalType := reflect.TypeOf(decimal.Decimal{})

	return func(from, to reflect.Type, data interface{}) (interface{}, error) {
		if to != decimalType {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return decimal.NewFromString(v)
		case float64:
			return decimal.NewFromFloat(v), nil
		case int:
			return decimal.NewFromInt(int64(v)), nil
		default:
			return data, nil
		}
	}
}
