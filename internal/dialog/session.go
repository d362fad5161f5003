package dialog

import "sync"

// Session is the per-conversation scratch state. It exists only between
// the entry point and commit/cancel and is never persisted.
type Session struct {
	State  State
	Action Action
	Date   string // selected date, YYYY-MM-DD
	Dept   string // department code (check-in flow only)
}

// sessionMap keeps one session per user. Sessions are bounded (a handful
// of string fields) and live until committed or cancelled, so there is no
// eviction. The lock guards only map access; it is never held across a
// storage call.
type sessionMap struct {
	mu sync.Mutex
	m  map[int64]Session
}

func newSessionMap() *sessionMap {
	return &sessionMap{m: make(map[int64]Session)}
}

func (sm *sessionMap) get(userID int64) Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.m[userID] // zero value = StateIdle
}

func (sm *sessionMap) put(userID int64, s Session) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if s.State == StateIdle {
		delete(sm.m, userID)
		return
	}
	sm.m[userID] = s
}

func (sm *sessionMap) drop(userID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.m, userID)
}
