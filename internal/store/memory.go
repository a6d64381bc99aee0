// Package store provides the in-memory link store.
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rcabral/shortly/internal/shortener"
	"github.com/rcabral/shortly/internal/validate"
)

type record struct {
	link shortener.Link
	seq  uint64
}

// MemoryStore is an in-memory link store guarded by a single RWMutex. It
// keeps a secondary target->code index so duplicate-target detection does
// not scan the whole map on every create.
type MemoryStore struct {
	mu          sync.RWMutex
	links       map[string]record
	targets     map[string]string
	generate    shortener.CodeGenerator
	maxAttempts int
	seq         uint64
}

// NewMemoryStore creates an empty store. Candidate codes come from generate;
// maxAttempts bounds the allocation retry loop (values below 1 fall back to
// the default).
func NewMemoryStore(generate shortener.CodeGenerator, maxAttempts int) *MemoryStore {
	if maxAttempts < 1 {
		maxAttempts = shortener.DefaultMaxAttempts
	}

	return &MemoryStore{
		links:       make(map[string]record),
		targets:     make(map[string]string),
		generate:    generate,
		maxAttempts: maxAttempts,
	}
}

// Create stores a new link for target and returns it with created=true. If
// the target is already shortened the existing link is returned with
// created=false and nothing is allocated. The generate-check-insert sequence
// runs in one critical section so concurrent creates cannot race on a
// candidate code.
func (s *MemoryStore) Create(_ context.Context, target string) (shortener.Link, bool, error) {
	if !validate.URL(target) {
		return shortener.Link{}, false, shortener.ErrInvalidTarget
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if code, ok := s.targets[target]; ok {
		return s.links[code].link, false, nil
	}

	code, err := s.allocate()
	if err != nil {
		return shortener.Link{}, false, err
	}

	s.seq++
	link := shortener.Link{
		Code:      code,
		Target:    target,
		CreatedAt: time.Now(),
	}
	s.links[code] = record{link: link, seq: s.seq}
	s.targets[target] = code

	return link, true, nil
}

// allocate draws candidates until one misses the live set. Callers must hold
// the write lock.
func (s *MemoryStore) allocate() (string, error) {
	for i := 0; i < s.maxAttempts; i++ {
		code := s.generate()
		if _, taken := s.links[code]; !taken {
			return code, nil
		}
	}

	return "", shortener.ErrCodeSpaceExhausted
}

// Get returns the link stored under code.
func (s *MemoryStore) Get(_ context.Context, code string) (shortener.Link, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.links[code]
	if !ok {
		return shortener.Link{}, shortener.ErrNotFound
	}

	return rec.link, nil
}

// Update replaces the target of an existing link. The code and creation
// timestamp are preserved. An invalid target leaves the stored link
// untouched.
func (s *MemoryStore) Update(_ context.Context, code, target string) error {
	if !validate.URL(target) {
		return shortener.ErrInvalidTarget
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.links[code]
	if !ok {
		return shortener.ErrNotFound
	}

	if s.targets[rec.link.Target] == code {
		delete(s.targets, rec.link.Target)
	}

	rec.link.Target = target
	s.links[code] = rec

	// Updates may point two codes at the same target; the index keeps the
	// first owner so deletes stay consistent.
	if _, taken := s.targets[target]; !taken {
		s.targets[target] = code
	}

	return nil
}

// Delete removes the link stored under code.
func (s *MemoryStore) Delete(_ context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.links[code]
	if !ok {
		return shortener.ErrNotFound
	}

	delete(s.links, code)

	if s.targets[rec.link.Target] == code {
		delete(s.targets, rec.link.Target)
	}

	return nil
}

// List returns all live links ordered by creation time, newest first. Ties
// are broken by insertion order, later insertions first.
func (s *MemoryStore) List(_ context.Context) []shortener.Link {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := make([]record, 0, len(s.links))
	for _, rec := range s.links {
		recs = append(recs, rec)
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].link.CreatedAt.Equal(recs[j].link.CreatedAt) {
			return recs[i].seq > recs[j].seq
		}

		return recs[i].link.CreatedAt.After(recs[j].link.CreatedAt)
	})

	links := make([]shortener.Link, len(recs))
	for i, rec := range recs {
		links[i] = rec.link
	}

	return links
}

// Codes returns the codes of all live links.
func (s *MemoryStore) Codes(_ context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	codes := make([]string, 0, len(s.links))
	for code := range s.links {
		codes = append(codes, code)
	}

	return codes
}
