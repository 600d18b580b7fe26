package usecase

import "sync"

// pairLockTable serializes read-modify-write cycles per canonical pair
// key. The store has no optimistic-concurrency token, so without this two
// concurrent completions racing on the same pair record would drop
// dimension scores (last write wins).
type pairLockTable struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newPairLockTable() *pairLockTable {
	return &pairLockTable{locks: make(map[string]*sync.Mutex)}
}

func (t *pairLockTable) lock(keyA, keyB string) func() {
	key := keyA + "|" + keyB
	t.mu.Lock()
	l, ok := t.locks[key]
	if !ok {
		l = &sync.Mutex{}
		t.locks[key] = l
	}
	t.mu.Unlock()

	l.Lock()
	return l.Unlock
}
