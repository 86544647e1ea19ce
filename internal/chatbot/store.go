package chatbot

import (
	"sync"
)

// SessionStore is a thread-safe LRU cache of live chat sessions.
type SessionStore struct {
	mu      sync.Mutex
	maxSize int
	entries map[string]*Session
	order   []string // oldest first
}

// NewSessionStore creates a store holding at most maxSize sessions.
// If maxSize <= 0, it defaults to 500.
func NewSessionStore(maxSize int) *SessionStore {
	if maxSize <= 0 {
		maxSize = 500
	}
	return &SessionStore{
		maxSize: maxSize,
		entries: make(map[string]*Session),
	}
}

// Get returns the session with id, or nil if it was never stored or has
// been evicted.
func (c *SessionStore) Get(id string) *Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.entries[id]
	if !ok {
		return nil
	}
	c.moveToEnd(id)
	return s
}

// Put adds a session, evicting the least recently used one if full.
func (c *SessionStore) Put(s *Session) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[s.ID]; ok {
		c.entries[s.ID] = s
		c.moveToEnd(s.ID)
		return
	}

	for len(c.entries) >= c.maxSize && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[s.ID] = s
	c.order = append(c.order, s.ID)
}

// Len returns the number of cached sessions.
func (c *SessionStore) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *SessionStore) moveToEnd(id string) {
	for i, k := range c.order {
		if k == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, id)
			return
		}
	}
}
