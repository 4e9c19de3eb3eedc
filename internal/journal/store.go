// Package journal keys documents by calendar day and keeps their text.
package journal

import (
	"sort"
	"sync"
	"time"

	"github.com/bethropolis/quill/internal/config"
	"github.com/bethropolis/quill/internal/logger"
)

// Key returns the document key of the day containing t.
func Key(t time.Time) string {
	return t.Format(config.DayLayout)
}

// ParseKey returns midnight of the day named by key, in loc.
func ParseKey(key string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(config.DayLayout, key, loc)
}

// Day truncates t to midnight of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Store holds the text of each journal day.
type Store interface {
	Load(key string) (string, bool)
	Save(key, text string)
}

// MemoryStore is a Store that lives as long as the process.
type MemoryStore struct {
	mu   sync.RWMutex
	days map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{days: make(map[string]string)}
}

// Load returns the text of the day; ok is false for a day never written.
func (s *MemoryStore) Load(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.days[key]
	return text, ok
}

// Save stores the text of a day. Empty text forgets the day.
func (s *MemoryStore) Save(key, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if text == "" {
		delete(s.days, key)
	} else {
		s.days[key] = text
	}
	logger.DebugTagf("journal", "saved %s (%d bytes)", key, len(text))
}

// Keys returns the days that have text, oldest first.
func (s *MemoryStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.days))
	for k := range s.days {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
