package entities

import "time"

// EngineState is the snapshot loaded from the persistence gateway at startup.
// In-memory state built from it stays authoritative afterwards; persistence
// writes are best-effort.
type EngineState struct {
	Balances    map[int64]int64
	DailyClaims map[int64]time.Time
	PoolAmount  int64
	LastDrawAt  time.Time
	NextDrawAt  time.Time
	Tickets     []*LotteryTicket
}
