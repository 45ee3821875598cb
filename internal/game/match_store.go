// internal/game/match_store.go
package game

import "sync"

// MatchStore keeps the live matches in memory, keyed by room code. It is
// owned by the transport layer; the engine itself holds no process-wide
// state.
type MatchStore struct {
	mu      sync.Mutex
	matches map[string]*Match
}

// NewMatchStore returns an empty in-memory store.
func NewMatchStore() *MatchStore {
	return &MatchStore{
		matches: make(map[string]*Match),
	}
}

// AddMatch stores the match under its room code. It fails when the code
// is already taken.
func (s *MatchStore) AddMatch(m *Match) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.matches[m.RoomCode]; exists {
		return false
	}
	s.matches[m.RoomCode] = m
	return true
}

// GetMatch retrieves a match by room code if it exists.
func (s *MatchStore) GetMatch(roomCode string) (*Match, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.matches[roomCode]
	return m, ok
}

// DeleteMatch removes a match from the store.
func (s *MatchStore) DeleteMatch(roomCode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.matches, roomCode)
}

// RoomCodes returns the codes of every live match, for listing.
func (s *MatchStore) RoomCodes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	codes := make([]string, 0, len(s.matches))
	for code := range s.matches {
		codes = append(codes, code)
	}
	return codes
}
