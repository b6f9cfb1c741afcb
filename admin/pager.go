package admin

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// FetchPageFunc fetches one page of items. Pages are 1-based.
type FetchPageFunc[T any] func(ctx context.Context, page, limit int) ([]T, error)

// Pager accumulates items across incremental "load more" fetches,
// deduplicating by id. Once a fetch returns an empty page, no further pages
// are offered.
type Pager[T any] struct {
	fetch FetchPageFunc[T]
	id    func(T) int64
	limit int

	lock    sync.Mutex
	page    int
	hasMore bool
	items   []T
	seen    map[int64]struct{}
}

func NewPager[T any](limit int, id func(T) int64, fetch FetchPageFunc[T]) *Pager[T] {
	return &Pager[T]{
		fetch:   fetch,
		id:      id,
		limit:   limit,
		hasMore: true,
		seen:    make(map[int64]struct{}),
	}
}

// LoadMore fetches the next page and appends only items whose id is not
// already accumulated.
func (p *Pager[T]) LoadMore(ctx context.Context) error {
	p.lock.Lock()
	if !p.hasMore {
		p.lock.Unlock()
		return nil
	}
	nextPage := p.page + 1
	p.lock.Unlock()

	fetched, err := p.fetch(ctx, nextPage, p.limit)
	if err != nil {
		return errors.Wrapf(err, "[Pager.LoadMore] page %d", nextPage)
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	p.page = nextPage
	if len(fetched) == 0 {
		p.hasMore = false
		return nil
	}
	for _, item := range fetched {
		id := p.id(item)
		if _, ok := p.seen[id]; ok {
			continue
		}
		p.seen[id] = struct{}{}
		p.items = append(p.items, item)
	}
	return nil
}

// Items returns the accumulated collection.
func (p *Pager[T]) Items() []T {
	p.lock.Lock()
	defer p.lock.Unlock()
	return append([]T(nil), p.items...)
}

// HasMore reports whether further pages may exist.
func (p *Pager[T]) HasMore() bool {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.hasMore
}
