// Package session tracks the players connected to the SSH server.
package session

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// ID uniquely identifies one SSH connection.
type ID string

// Info describes a connected player.
type Info struct {
	ID      ID
	User    string
	Remote  string
	Started time.Time
	Board   string // Variant being played, empty while in the menu
}

// Registry tracks active sessions.
// Thread-safe for concurrent access.
type Registry struct {
	mu       sync.RWMutex
	sessions map[ID]*Info
	seq      atomic.Uint64
}

// NewRegistry creates a new session registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[ID]*Info),
	}
}

// Open registers a new session for the given user and returns its ID.
func (r *Registry) Open(user, remote string) ID {
	id := ID(fmt.Sprintf("%s-%d", user, r.seq.Add(1)))

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = &Info{
		ID:      id,
		User:    user,
		Remote:  remote,
		Started: time.Now(),
	}
	return id
}

// Close removes a session from the registry and returns how long it lasted.
func (r *Registry) Close(id ID) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	info, ok := r.sessions[id]
	if !ok {
		return 0
	}
	delete(r.sessions, id)
	return time.Since(info.Started)
}

// SetBoard records which variant a session is playing. An empty board means
// the player is back in the menu.
func (r *Registry) SetBoard(id ID, board string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if info, ok := r.sessions[id]; ok {
		info.Board = board
	}
}

// Get retrieves a session by ID.
func (r *Registry) Get(id ID) (Info, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.sessions[id]
	if !ok {
		return Info{}, false
	}
	return *info, true
}

// Count returns the number of registered sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// List returns all sessions ordered by start time.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Info, 0, len(r.sessions))
	for _, info := range r.sessions {
		result = append(result, *info)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Started.Equal(result[j].Started) {
			return result[i].ID < result[j].ID
		}
		return result[i].Started.Before(result[j].Started)
	})
	return result
}
