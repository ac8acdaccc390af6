package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var jsonit = jsoniter.ConfigCompatibleWithStandardLibrary

// envelope é o layout do arquivo por (tenant, categoria): todos os escopos juntos
type envelope struct {
	FormatVersion int               `json:"format_version"`
	Scopes        map[string]*Entry `json:"scopes"`
}

// FileStore persiste entradas em <dir>/<tenant>/<categoria>.json.
// Escritas são atômicas (arquivo temporário + fsync + rename) e serializadas
// por um mutex por (tenant, categoria).
type FileStore struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	now func() time.Time
}

// NewFileStore cria um FileStore no diretório informado
func NewFileStore(dir string) *FileStore {
	return &FileStore{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
		now:   time.Now,
	}
}

func (s *FileStore) lockFor(tenantID, category string) *sync.Mutex {
	key := fmt.Sprintf("%s/%s", tenantID, category)

	s.mu.Lock()
	defer s.mu.Unlock()

	if l, ok := s.locks[key]; ok {
		return l
	}

	l := &sync.Mutex{}
	s.locks[key] = l
	return l
}

func (s *FileStore) path(tenantID, category string) string {
	return filepath.Join(s.dir, tenantID, fmt.Sprintf("%s.json", category))
}

// Get retorna a entrada do escopo ou nil quando ausente. Arquivos corrompidos,
// inexistentes ou de versão antiga contam como ausência, nunca como erro.
func (s *FileStore) Get(tenantID, category, scope string) (*Entry, error) {
	lock := s.lockFor(tenantID, category)
	lock.Lock()
	defer lock.Unlock()

	env := s.read(tenantID, category)
	if env == nil {
		return nil, nil
	}

	entry, ok := env.Scopes[scope]
	if !ok {
		return nil, nil
	}

	return entry, nil
}

// Put substitui integralmente o escopo pelo novo payload
func (s *FileStore) Put(tenantID, category, scope string, payload json.RawMessage) error {
	lock := s.lockFor(tenantID, category)
	lock.Lock()
	defer lock.Unlock()

	env := s.read(tenantID, category)
	if env == nil {
		env = &envelope{FormatVersion: formatVersion, Scopes: make(map[string]*Entry)}
	}

	env.Scopes[scope] = &Entry{
		Payload:   payload,
		UpdatedAt: s.now(),
	}

	return s.write(tenantID, category, env)
}

// Invalidate remove escopos da categoria. Sem escopos, remove a categoria inteira.
func (s *FileStore) Invalidate(tenantID, category string, scopes ...string) error {
	lock := s.lockFor(tenantID, category)
	lock.Lock()
	defer lock.Unlock()

	if len(scopes) == 0 {
		err := os.Remove(s.path(tenantID, category))
		if err != nil && !os.IsNotExist(err) {
			return errors.Wrap(err, "erro ao remover arquivo de cache")
		}
		return nil
	}

	env := s.read(tenantID, category)
	if env == nil {
		return nil
	}

	for _, scope := range scopes {
		delete(env.Scopes, scope)
	}

	return s.write(tenantID, category, env)
}

// read decodifica o arquivo da categoria. Qualquer falha vira ausência.
func (s *FileStore) read(tenantID, category string) *envelope {
	data, err := os.ReadFile(s.path(tenantID, category))
	if err != nil {
		return nil
	}

	env := &envelope{}
	if err := jsonit.Unmarshal(data, env); err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"category":  category,
		}).Warn("Arquivo de cache ilegível, tratando como ausente")
		return nil
	}

	if env.FormatVersion != formatVersion {
		logrus.WithFields(logrus.Fields{
			"tenant_id":      tenantID,
			"category":       category,
			"format_version": env.FormatVersion,
		}).Info("Versão de formato de cache divergente, tratando como ausente")
		return nil
	}

	if env.Scopes == nil {
		env.Scopes = make(map[string]*Entry)
	}

	return env
}

// write grava o envelope de forma atômica: temporário no mesmo diretório,
// fsync e rename. Leitores nunca observam um arquivo parcial.
func (s *FileStore) write(tenantID, category string, env *envelope) error {
	target := s.path(tenantID, category)

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.Wrap(ErrWriteEntry, err.Error())
	}

	data, err := jsonit.Marshal(env)
	if err != nil {
		return errors.Wrap(ErrWriteEntry, err.Error())
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), fmt.Sprintf(".%s-*.tmp", category))
	if err != nil {
		return errors.Wrap(ErrWriteEntry, err.Error())
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(ErrWriteEntry, err.Error())
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(ErrWriteEntry, err.Error())
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(ErrWriteEntry, err.Error())
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(ErrWriteEntry, err.Error())
	}

	return nil
}
