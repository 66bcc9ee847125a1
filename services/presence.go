package services

import (
	"sync"
	"time"

	"github.com/pbrudny/financial-decisions-retro/models"
)

// Partner presence is process-wide, in-memory only. Losing it on restart is
// acceptable; it carries no lifecycle invariant.
var (
	lastSeenMu sync.Mutex
	lastSeen   = map[models.UserID]time.Time{}
)

// MarkSeen records that a party was just active.
func MarkSeen(user models.UserID) {
	lastSeenMu.Lock()
	defer lastSeenMu.Unlock()
	lastSeen[user] = time.Now().UTC()
}

// PartnerLastSeen returns when the caller's partner was last active, or nil
// if it has never been observed in this process.
func PartnerLastSeen(user models.UserID) *time.Time {
	lastSeenMu.Lock()
	defer lastSeenMu.Unlock()
	t, ok := lastSeen[user.Partner()]
	if !ok {
		return nil
	}
	return &t
}

// ResetPresence clears all last-seen entries. Used by tests.
func ResetPresence() {
	lastSeenMu.Lock()
	defer lastSeenMu.Unlock()
	lastSeen = map[models.UserID]time.Time{}
}
