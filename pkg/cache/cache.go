// Package cache provides an LRU store of computed factorial results with
// msgpack disk persistence, so repeated and batch invocations skip recomputation.
package cache

import (
	"container/list"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Entry is one persisted factorial result.
type Entry struct {
	N          int       `msgpack:"n"`
	Value      int64     `msgpack:"value"`
	CreatedAt  time.Time `msgpack:"created_at"`
	AccessedAt time.Time `msgpack:"accessed_at"`
}

// Store is an in-memory LRU of factorial results keyed by input n.
// All methods are safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	items   map[int]*list.Element
	lru     *list.List // front = most recently used; values are *Entry
	maxSize int
}

// New creates a Store holding at most maxSize entries. 0 means unlimited.
func New(maxSize int) *Store {
	return &Store{
		items:   make(map[int]*list.Element),
		lru:     list.New(),
		maxSize: maxSize,
	}
}

// Get retrieves the cached factorial of n.
func (s *Store) Get(n int) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, found := s.items[n]
	if !found {
		return 0, false
	}

	entry := elem.Value.(*Entry)
	entry.AccessedAt = time.Now()
	s.lru.MoveToFront(elem)
	return entry.Value, true
}

// Put stores the factorial of n, evicting the least recently used entry
// when the store is full.
func (s *Store) Put(n int, value int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	if elem, exists := s.items[n]; exists {
		entry := elem.Value.(*Entry)
		entry.Value = value
		entry.AccessedAt = now
		s.lru.MoveToFront(elem)
		return
	}

	s.items[n] = s.lru.PushFront(&Entry{
		N:          n,
		Value:      value,
		CreatedAt:  now,
		AccessedAt: now,
	})

	s.evictIfNeeded()
}

// Delete removes the entry for n, if present.
func (s *Store) Delete(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, found := s.items[n]
	if !found {
		return
	}
	s.lru.Remove(elem)
	delete(s.items, n)
}

// Clear removes all entries.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[int]*list.Element)
	s.lru.Init()
}

// Len returns the number of entries in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store) evictIfNeeded() {
	for s.maxSize > 0 && s.lru.Len() > s.maxSize {
		back := s.lru.Back()
		if back == nil {
			return
		}
		entry := back.Value.(*Entry)
		s.lru.Remove(back)
		delete(s.items, entry.N)
	}
}

// Save persists the store to w using msgpack, most recently used first.
func (s *Store) Save(w io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]Entry, 0, s.lru.Len())
	for elem := s.lru.Front(); elem != nil; elem = elem.Next() {
		entries = append(entries, *elem.Value.(*Entry))
	}

	return msgpack.NewEncoder(w).Encode(entries)
}

// Load replaces the store contents from r. Entries past the size limit are
// dropped in persisted LRU order.
func (s *Store) Load(r io.Reader) error {
	var entries []Entry
	if err := msgpack.NewDecoder(r).Decode(&entries); err != nil {
		return fmt.Errorf("decoding cache: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[int]*list.Element, len(entries))
	s.lru.Init()

	for i := range entries {
		if s.maxSize > 0 && s.lru.Len() >= s.maxSize {
			break
		}
		entry := entries[i]
		if _, exists := s.items[entry.N]; exists {
			continue
		}
		s.items[entry.N] = s.lru.PushBack(&entry)
	}

	return nil
}

// SaveFile writes the store to path atomically, creating parent directories.
func (s *Store) SaveFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating cache directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".cache-*")
	if err != nil {
		return fmt.Errorf("creating temp cache file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := s.Save(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// LoadFile restores the store from path. The caller decides whether a missing
// file matters; it surfaces as an error satisfying os.IsNotExist semantics.
func (s *Store) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return s.Load(f)
}
