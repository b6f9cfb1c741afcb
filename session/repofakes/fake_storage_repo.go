package repofakes

import (
	"sync"

	errs "github.com/jrsteele09/go-ecom-client/internal/errors"
	"github.com/jrsteele09/go-ecom-client/session"
)

var _ session.Repo = (*FakeStorageRepo)(nil)

type FakeStorageRepo struct {
	lock    sync.RWMutex
	entries map[string]string
}

func NewFakeStorageRepo() *FakeStorageRepo {
	return &FakeStorageRepo{entries: make(map[string]string)}
}

func (r *FakeStorageRepo) Get(key string) (string, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	value, ok := r.entries[key]
	if !ok {
		return "", errs.ErrNotFound
	}
	return value, nil
}

func (r *FakeStorageRepo) Set(key, value string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.entries[key] = value
	return nil
}

func (r *FakeStorageRepo) Delete(key string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	delete(r.entries, key)
	return nil
}

// Len reports the number of stored entries, for test assertions.
func (r *FakeStorageRepo) Len() int {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return len(r.entries)
}
