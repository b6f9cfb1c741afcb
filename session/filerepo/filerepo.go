// Package filerepo persists the client's durable state as a JSON key/value
// file under the configured data folder, the desktop equivalent of the web
// client's local storage.
package filerepo

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	errs "github.com/jrsteele09/go-ecom-client/internal/errors"
	"github.com/jrsteele09/go-ecom-client/session"
	"github.com/pkg/errors"
)

var _ session.Repo = (*FileRepo)(nil)

type FileRepo struct {
	path    string
	lock    sync.Mutex
	entries map[string]string
}

// New loads (or creates) the storage file at dataFolder/state.json.
func New(dataFolder string) (*FileRepo, error) {
	if err := os.MkdirAll(dataFolder, 0o755); err != nil {
		return nil, errors.Wrap(err, "[filerepo.New] create data folder")
	}

	r := &FileRepo{
		path:    filepath.Join(dataFolder, "state.json"),
		entries: make(map[string]string),
	}

	raw, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return r, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "[filerepo.New] read state file")
	}
	if err := json.Unmarshal(raw, &r.entries); err != nil {
		return nil, errors.Wrap(err, "[filerepo.New] decode state file")
	}
	return r, nil
}

func (r *FileRepo) Get(key string) (string, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	value, ok := r.entries[key]
	if !ok {
		return "", errs.ErrNotFound
	}
	return value, nil
}

func (r *FileRepo) Set(key, value string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.entries[key] = value
	return r.flush()
}

func (r *FileRepo) Delete(key string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.entries[key]; !ok {
		return nil
	}
	delete(r.entries, key)
	return r.flush()
}

// flush writes atomically via a temp file rename. Callers hold the lock.
func (r *FileRepo) flush() error {
	raw, err := json.MarshalIndent(r.entries, "", "  ")
	if err != nil {
		return errors.Wrap(err, "[FileRepo.flush] encode entries")
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return errors.Wrap(err, "[FileRepo.flush] write temp file")
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return errors.Wrap(err, "[FileRepo.flush] rename temp file")
	}
	return nil
}
