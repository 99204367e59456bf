package ledger

import "sync"

// StorageKey addresses one storage item of one pallet.
type StorageKey struct {
	Pallet string
	Item   string
}

func (k StorageKey) String() string { return k.Pallet + "::" + k.Item }

// State is a key/value store with a single pending layer on top of the
// committed values. Reads observe pending writes first. The pending layer is
// either flushed into the committed map (commit) or dropped (revert) once the
// enclosing dispatch finishes.
type State struct {
	committed map[StorageKey][]byte

	// pending records the final value for every key written during the
	// current dispatch. A nil value marks a removal.
	pending map[StorageKey][]byte

	// pendingEvents are only published when the dispatch commits.
	pendingEvents []Event
	events        []Event

	mu sync.Mutex
}

// NewState returns an empty state.
func NewState() *State {
	return &State{committed: make(map[StorageKey][]byte)}
}

// ensureJournal lazily allocs the pending layer.
func (s *State) ensureJournal() {
	if s.pending == nil {
		s.pending = make(map[StorageKey][]byte)
	}
}

// get returns the value stored under key. The returned slice is a copy.
func (s *State) get(key StorageKey) ([]byte, bool) {
	if s.pending != nil {
		if v, ok := s.pending[key]; ok {
			if v == nil {
				return nil, false
			}
			return append([]byte(nil), v...), true
		}
	}
	v, ok := s.committed[key]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), v...), true
}

func (s *State) put(key StorageKey, value []byte) {
	s.ensureJournal()
	v := make([]byte, len(value))
	copy(v, value)
	s.pending[key] = v
}

func (s *State) depositEvent(ev Event) {
	s.pendingEvents = append(s.pendingEvents, ev)
}

// commit applies everything recorded in the pending layer and clears it.
func (s *State) commit() {
	for key, val := range s.pending {
		if val == nil {
			delete(s.committed, key)
			continue
		}
		s.committed[key] = val
	}
	s.events = append(s.events, s.pendingEvents...)
	s.pending = nil
	s.pendingEvents = nil
}

// revert drops the pending layer.
func (s *State) revert() {
	s.pending = nil
	s.pendingEvents = nil
}

// hasPending reports whether un-flushed writes exist.
func (s *State) hasPending() bool {
	return len(s.pending) > 0 || len(s.pendingEvents) > 0
}

// Get returns the committed value under key.
func (s *State) Get(key StorageKey) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.committed[key]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), v...), true
}

// Events returns a copy of all committed events in deposit order.
func (s *State) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Event(nil), s.events...)
}
