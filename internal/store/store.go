package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"github.com/example/deutschbuddy/pkg/models"
)

// Store keeps all user profiles in a single JSON document keyed by chat ID.
// Every write loads the whole document, mutates one record and writes the
// whole document back.
//
// Each Update runs its load-modify-save under a mutex, so concurrent Update
// calls within this process cannot drop each other's writes. A Get followed
// by a later Update is still read-then-write at document granularity:
// last write wins. Callers that need atomicity must do their mutation
// inside a single Update.
type Store struct {
	mu   sync.Mutex
	path string
}

// New creates a store backed by the given file path. The file is created
// lazily on first write.
func New(path string) *Store {
	return &Store{path: path}
}

// Get returns the profile for a chat. It never fails: unknown chats get the
// default profile, and records persisted by older versions are backfilled
// with defaults for any missing field.
func (s *Store) Get(chatID int64) models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.loadAll()
	return decodeProfile(doc[key(chatID)])
}

// Update applies mutate to the chat's profile and persists the whole
// document. The profile passed to mutate is backfilled the same way Get
// backfills.
func (s *Store) Update(chatID int64, mutate func(*models.Profile)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.loadAll()
	p := decodeProfile(doc[key(chatID)])
	mutate(&p)

	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode profile for chat %d: %w", chatID, err)
	}
	doc[key(chatID)] = raw
	return s.saveAll(doc)
}

// ChatIDs returns the IDs of all chats with a persisted profile.
func (s *Store) ChatIDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.loadAll()
	ids := make([]int64, 0, len(doc))
	for k := range doc {
		id, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func key(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}

// decodeProfile overlays a persisted record onto the default template, so
// fields added after the record was written keep their defaults.
func decodeProfile(raw json.RawMessage) models.Profile {
	p := models.DefaultProfile()
	if len(raw) > 0 {
		// A record that fails to decode is treated as absent.
		_ = json.Unmarshal(raw, &p)
	}
	if p.Progress == nil {
		p.Progress = map[string]int{}
	}
	if p.SeenWords == nil {
		p.SeenWords = []int{}
	}
	if p.SRS == nil {
		p.SRS = map[string]models.SRSEntry{}
	}
	return p
}

// loadAll reads the backing document. A missing or malformed file yields an
// empty store rather than an error.
func (s *Store) loadAll() map[string]json.RawMessage {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]json.RawMessage{}
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil || doc == nil {
		return map[string]json.RawMessage{}
	}
	return doc
}

func (s *Store) saveAll(doc map[string]json.RawMessage) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create state directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state document: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write state document: %w", err)
	}
	return nil
}
