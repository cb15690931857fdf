// Package lock provides per-user single-flight guarding for click handling.
// Requirements: 5.1 - At most one in-flight click operation per user
// Requirements: 5.2 - Clicks arriving while the guard is held are dropped
package lock

import "sync"

// UserLock tracks which users currently have a click operation in flight.
// Acquisition never blocks: a second acquire for the same user fails
// immediately, which is what makes rapid double-taps and duplicate
// platform deliveries safe to drop.
type UserLock struct {
	inflight sync.Map // map[int64]struct{}
}

// NewUserLock creates a new UserLock instance.
func NewUserLock() *UserLock {
	return &UserLock{}
}

// TryAcquire marks the user as in-process and returns true, or returns
// false immediately if an operation for that user is already in flight.
// Requirements: 5.1
func (ul *UserLock) TryAcquire(userID int64) bool {
	_, loaded := ul.inflight.LoadOrStore(userID, struct{}{})
	return !loaded
}

// Release unconditionally clears the in-process mark for the user.
// Safe to call from a different goroutine than the one that acquired,
// which the penalty timer callback relies on.
// Requirements: 5.1
func (ul *UserLock) Release(userID int64) {
	ul.inflight.Delete(userID)
}

// IsBusy reports whether the user currently has an operation in flight.
// Point-in-time check, may change immediately after.
func (ul *UserLock) IsBusy(userID int64) bool {
	_, ok := ul.inflight.Load(userID)
	return ok
}
