package osstate

import "sync"

// SyncState wraps a State and provides synchronized access to it.
// Changes are serialized against every other call, lookups may run in parallel.
type SyncState struct {
	lock  sync.RWMutex
	state *State
}

func NewSyncState(state *State) *SyncState {
	return &SyncState{state: state}
}

func (ss *SyncState) Chdir(path []string) error {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	return ss.state.Chdir(path)
}

func (ss *SyncState) Mkdir(name string) error {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	return ss.state.Mkdir(name)
}

// Paths implements State.Paths.  It never observes a tree in the middle of a change.
func (ss *SyncState) Paths() ([]string, error) {
	ss.lock.RLock()
	defer ss.lock.RUnlock()

	return ss.state.Paths()
}

func (ss *SyncState) Cwd() []string {
	ss.lock.RLock()
	defer ss.lock.RUnlock()

	return ss.state.Cwd()
}

func (ss *SyncState) Pwd() string {
	ss.lock.RLock()
	defer ss.lock.RUnlock()

	return ss.state.Pwd()
}

// Do runs fn with exclusive access to the wrapped state, e.g. to change
// directory and create a directory without another caller interleaving.
func (ss *SyncState) Do(fn func(*State) error) error {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	return fn(ss.state)
}
