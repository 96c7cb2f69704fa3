package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

// Store is a flat-file JSON document store. Each key maps to one file under
// the data directory and is always read and written as a whole document.
//
// Every key carries its own mutex, and Update runs a full
// read-modify-write cycle under that mutex, so concurrent mutations of the
// same document are serialized within the process and never lose updates.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a store rooted at dir, creating the directory if needed
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

func (s *Store) lock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// read loads the document for key into out. A missing or unreadable file
// leaves out at its defaults: availability is preferred over strict
// durability, so a corrupt document resets to empty rather than failing.
func (s *Store) read(key string, out any) {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("document", key).Msg("document unreadable, using defaults")
		}
		return
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Warn().Err(err).Str("document", key).Msg("document corrupt, using defaults")
	}
}

// write persists the document atomically (temp file + rename)
func (s *Store) write(key string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document %s: %w", key, err)
	}
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write document %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("replace document %s: %w", key, err)
	}
	return nil
}

// Read loads the document for key into out under the document lock
func (s *Store) Read(key string, out any) error {
	l := s.lock(key)
	l.Lock()
	defer l.Unlock()
	s.read(key, out)
	return nil
}

// Write replaces the document for key under the document lock
func (s *Store) Write(key string, v any) error {
	l := s.lock(key)
	l.Lock()
	defer l.Unlock()
	return s.write(key, v)
}

// Update runs one serialized read-modify-write cycle: it loads the document
// into doc, calls mutate, and persists doc if mutate succeeds. When mutate
// returns an error nothing is written.
func (s *Store) Update(key string, doc any, mutate func() error) error {
	l := s.lock(key)
	l.Lock()
	defer l.Unlock()

	s.read(key, doc)
	if err := mutate(); err != nil {
		return err
	}
	return s.write(key, doc)
}
