// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-notes-client/internal/logger"
	"github.com/MKhiriev/go-notes-client/internal/service"
	"github.com/MKhiriev/go-notes-client/models"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Notes is the query/mutation layer over a [service.ClientNotesService].
type Notes struct {
	mu sync.Mutex

	svc   service.ClientNotesService
	cache *lru.Cache[models.ListFilter, *entry]

	active  models.ListFilter
	nextGen uint64

	mutations map[Mutation]MutationState
	edit      *EditState

	subscribers []chan struct{}

	logger *logger.Logger
}

// NewNotes returns a Notes layer keeping at most cacheSize filters. The
// active filter starts as "all notes" and nothing is fetched until
// [Notes.Refresh] or [Notes.SetFilter] is called.
func NewNotes(svc service.ClientNotesService, cacheSize int, log *logger.Logger) (*Notes, error) {
	cache, err := lru.New[models.ListFilter, *entry](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create notes cache: %w", err)
	}

	mutations := make(map[Mutation]MutationState, len(Mutations))
	for _, m := range Mutations {
		mutations[m] = MutationState{}
	}

	return &Notes{
		svc:       svc,
		cache:     cache,
		active:    models.ListFilter{}.Normalize(),
		mutations: mutations,
		logger:    log,
	}, nil
}

// Subscribe returns a channel that receives a value whenever the view may
// have changed. Signals are coalesced: a slow reader sees at least one
// pending signal, not one per change.
func (n *Notes) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	n.mu.Lock()
	n.subscribers = append(n.subscribers, ch)
	n.mu.Unlock()
	return ch
}

// notifyLocked must be called with mu held.
func (n *Notes) notifyLocked() {
	for _, ch := range n.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// View returns a snapshot of the active filter's state.
func (n *Notes) View() View {
	n.mu.Lock()
	defer n.mu.Unlock()

	v := View{
		Filter:    n.active,
		Status:    StatusIdle,
		Mutations: make(map[Mutation]MutationState, len(n.mutations)),
	}
	if e, ok := n.cache.Peek(n.active); ok {
		v.Notes = slices.Clone(e.notes)
		v.Status = e.status
		v.Err = e.err
		v.Stale = e.stale
	}
	if n.edit != nil {
		edit := *n.edit
		v.Edit = &edit
	}
	for m, s := range n.mutations {
		v.Mutations[m] = s
	}
	return v
}

// Filter returns the active filter.
func (n *Notes) Filter() models.ListFilter {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.active
}

// SetFilter makes filter the active one and fetches it. Cached data for the
// filter, if any, stays visible while the fetch is pending.
func (n *Notes) SetFilter(ctx context.Context, filter models.ListFilter) error {
	active, err := n.SetActive(filter)
	if err != nil {
		return err
	}
	return n.fetch(ctx, active)
}

// SetActive makes filter the active one without fetching it and returns the
// normalized key. Callers that fetch later use [Notes.Load] with that key;
// the view follows the last SetActive no matter in which order loads finish.
func (n *Notes) SetActive(filter models.ListFilter) (models.ListFilter, error) {
	filter = filter.Normalize()
	if err := filter.Validate(); err != nil {
		return models.ListFilter{}, err
	}

	n.mu.Lock()
	n.active = filter
	n.notifyLocked()
	n.mu.Unlock()

	return filter, nil
}

// Load fetches filter into the cache. It does not change the active filter,
// so a load for a key that is no longer active only warms the cache.
func (n *Notes) Load(ctx context.Context, filter models.ListFilter) error {
	filter = filter.Normalize()
	if err := filter.Validate(); err != nil {
		return err
	}
	return n.fetch(ctx, filter)
}

// Refresh refetches the active filter.
func (n *Notes) Refresh(ctx context.Context) error {
	return n.fetch(ctx, n.Filter())
}

func (n *Notes) fetch(ctx context.Context, key models.ListFilter) error {
	n.mu.Lock()
	n.nextGen++
	gen := n.nextGen
	e, ok := n.cache.Get(key)
	if !ok {
		e = &entry{}
		n.cache.Add(key, e)
	}
	e.gen = gen
	e.status = StatusPending
	n.notifyLocked()
	n.mu.Unlock()

	notes, err := n.svc.List(ctx, key)

	n.mu.Lock()
	defer n.mu.Unlock()

	cur, ok := n.cache.Peek(key)
	if !ok || cur != e || cur.gen != gen {
		n.logger.Debug().Str("func", "Notes.fetch").Uint64("gen", gen).
			Str("keyword", key.Keyword).Str("archived", string(key.Archived)).
			Msg("discarding superseded list response")
		return ErrSuperseded
	}

	if err != nil {
		e.status = StatusError
		e.err = err
		n.notifyLocked()
		return err
	}

	e.notes = notes
	e.status = StatusSuccess
	e.err = nil
	e.stale = false
	n.notifyLocked()
	return nil
}

// invalidate marks the active filter stale and refetches it.
func (n *Notes) invalidate(ctx context.Context) {
	n.mu.Lock()
	key := n.active
	if e, ok := n.cache.Peek(key); ok {
		e.stale = true
	}
	n.mu.Unlock()

	if err := n.fetch(ctx, key); err != nil && !errors.Is(err, ErrSuperseded) {
		n.logger.Err(err).Str("func", "Notes.invalidate").Msg("refetch after mutation failed")
	}
}

// mutate runs fn as mutation m. On success onSuccess (if any) runs under
// the lock, then the active filter is invalidated.
func (n *Notes) mutate(ctx context.Context, m Mutation, fn func() error, onSuccess func()) error {
	n.mu.Lock()
	if n.mutations[m].Pending {
		n.mu.Unlock()
		return ErrMutationPending
	}
	n.mutations[m] = MutationState{Pending: true}
	n.notifyLocked()
	n.mu.Unlock()

	err := fn()

	n.mu.Lock()
	n.mutations[m] = MutationState{Err: err}
	if err == nil && onSuccess != nil {
		onSuccess()
	}
	n.notifyLocked()
	n.mu.Unlock()

	if err != nil {
		return err
	}

	n.invalidate(ctx)
	return nil
}

// Create adds a note. Empty title or content is rejected without a request.
func (n *Notes) Create(ctx context.Context, title, content string) error {
	return n.mutate(ctx, MutationCreate, func() error {
		_, err := n.svc.Create(ctx, title, content)
		return err
	}, nil)
}

// Update sends the non-empty fields of title and content for note id. On
// success any in-progress inline edit is cleared.
func (n *Notes) Update(ctx context.Context, id int64, title, content string) error {
	return n.mutate(ctx, MutationUpdate, func() error {
		_, err := n.svc.Update(ctx, id, title, content)
		return err
	}, func() {
		n.edit = nil
	})
}

// ToggleArchive archives note, or unarchives it if it is already archived.
func (n *Notes) ToggleArchive(ctx context.Context, note models.Note) error {
	return n.mutate(ctx, MutationArchive, func() error {
		var err error
		if note.Archived {
			_, err = n.svc.Unarchive(ctx, note.ID)
		} else {
			_, err = n.svc.Archive(ctx, note.ID)
		}
		return err
	}, nil)
}

// Delete removes note id.
func (n *Notes) Delete(ctx context.Context, id int64) error {
	return n.mutate(ctx, MutationDelete, func() error {
		return n.svc.Delete(ctx, id)
	}, nil)
}

// Get fetches one note without touching the cache.
func (n *Notes) Get(ctx context.Context, id int64) (models.Note, error) {
	return n.svc.Get(ctx, id)
}

// Reset drops every cached list, the edit state and mutation errors, and
// restores the default filter. Fetches still in flight are discarded when
// they settle. Called when the session ends.
func (n *Notes) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.cache.Purge()
	n.active = models.ListFilter{}.Normalize()
	n.edit = nil
	for _, m := range Mutations {
		n.mutations[m] = MutationState{}
	}
	n.notifyLocked()
}
