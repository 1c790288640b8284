package usecase

import "sync"

// gameLocker serialises work per game id. Entries are dropped once nobody holds or waits for them.
type gameLocker struct {
	mu    sync.Mutex
	locks map[string]*gameLock
}

type gameLock struct {
	mu   sync.Mutex
	refs int
}

func newGameLocker() *gameLocker {
	return &gameLocker{locks: make(map[string]*gameLock)}
}

// Lock - blocks until id is free and returns the matching unlock.
func (that *gameLocker) Lock(id string) func() {
	that.mu.Lock()
	lock, ok := that.locks[id]
	if !ok {
		lock = &gameLock{}
		that.locks[id] = lock
	}
	lock.refs++
	that.mu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		that.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(that.locks, id)
		}
		that.mu.Unlock()
	}
}

func (that *gameLocker) size() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.locks)
}
