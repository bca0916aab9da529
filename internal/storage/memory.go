// internal/storage/memory.go
// Package storage owns the in-memory user store. Records live for the
// lifetime of the process and are never written to disk.
package storage

import (
	cmap "github.com/orcaman/concurrent-map/v2"

	"health-bot/internal/models"
)

// Store maps Telegram user ids to their profile/ledger records. The map
// itself only needs synchronization on lazy insert; all per-field access
// is serialized by the record's own lock.
type Store struct {
	users cmap.ConcurrentMap[int64, *models.User]
}

func NewStore() *Store {
	return &Store{
		users: cmap.NewWithCustomShardingFunction[int64, *models.User](shardInt64),
	}
}

func shardInt64(key int64) uint32 {
	return uint32(uint64(key) ^ (uint64(key) >> 32))
}

// Ensure returns the record for id, creating an all-zero one on first
// contact. A racing insert for the same id resolves to a single winner;
// both callers observe the same record.
func (s *Store) Ensure(id int64) *models.User {
	if u, ok := s.users.Get(id); ok {
		return u
	}
	s.users.SetIfAbsent(id, models.NewUser(id))
	u, _ := s.users.Get(id)
	return u
}

// Get returns the record for id without creating one.
func (s *Store) Get(id int64) (*models.User, bool) {
	return s.users.Get(id)
}

// Count reports how many users have interacted with the process.
func (s *Store) Count() int {
	return s.users.Count()
}
