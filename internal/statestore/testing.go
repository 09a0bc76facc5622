package statestore

// Seed is a test helper that stores value at address when using the in-memory
// store, directly or behind Scoped.
func Seed(s Store, address, value string) {
	if mem, ok := unwrap(s).(*memoryStore); ok {
		mem.mu.Lock()
		defer mem.mu.Unlock()
		mem.entries[address] = value
	}
}

// Writes is a test helper reporting how many Set calls the in-memory store has
// accepted. Seed does not count.
func Writes(s Store) int {
	if mem, ok := unwrap(s).(*memoryStore); ok {
		mem.mu.RLock()
		defer mem.mu.RUnlock()
		return mem.writes
	}
	return 0
}

func unwrap(s Store) Store {
	if sc, ok := s.(*scopedStore); ok {
		return sc.inner
	}
	return s
}
