package memory

import (
	"sync"

	"animochi/internal/domain/pet"
	"animochi/internal/domain/quest"
)

// Store backs the in-memory adapters used by tests and local runs. The tx
// manager serializes mutations through the store mutex, which stands in for
// the database transaction.
type Store struct {
	mu       sync.Mutex
	monsters map[string]pet.Monster
	wallets  map[string]int
	events   []pet.ActionEvent
	quests   map[string]quest.Progress
}

func NewStore() *Store {
	return &Store{
		monsters: make(map[string]pet.Monster),
		wallets:  make(map[string]int),
		quests:   make(map[string]quest.Progress),
	}
}

func (s *Store) SeedMonster(m pet.Monster) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.monsters[m.ID] = m
}

func (s *Store) SeedWallet(ownerID string, balance int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wallets[ownerID] = balance
}

func (s *Store) SeedQuest(p quest.Progress) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quests[p.ID] = p
}
