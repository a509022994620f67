package services

import "sync"

// userLocks provides a mutex per user ID. Commands for the same user must
// not interleave between a balance check and its mutation; commands for
// different users proceed concurrently. Mutexes are never removed: the set
// of users is small and accounts are never deleted.
type userLocks struct {
	locks sync.Map // userID -> *sync.Mutex
}

func (l *userLocks) get(userID int64) *sync.Mutex {
	if mu, ok := l.locks.Load(userID); ok {
		return mu.(*sync.Mutex)
	}
	mu, _ := l.locks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
