package store

import (
	"sync"

	"github.com/hernifleitas/sos-delivery-sub000/internal/domain"
)

// PresenceStore owns the three correlated per-rider maps. They form one
// transactional unit per rider: the ingest decision logic reads all three
// before writing them, so every mutation goes through Update, which holds
// the store lock for the whole read-modify-write.
//
// A single mutex over the whole store is enough at rider ping rates; view
// scans copy records out under the read lock.
type PresenceStore struct {
	mu       sync.RWMutex
	presence map[string]*domain.RiderPresence
	memory   map[string]*domain.AlertMemory
	receipts map[string]*domain.ReceiptRecord
}

func New() *PresenceStore {
	return &PresenceStore{
		presence: make(map[string]*domain.RiderPresence),
		memory:   make(map[string]*domain.AlertMemory),
		receipts: make(map[string]*domain.ReceiptRecord),
	}
}

// Tx is a view over one rider's three records, valid only inside the
// closure passed to Update.
type Tx struct {
	s       *PresenceStore
	riderID string
}

// Presence returns a copy of the rider's presence record, or nil for a
// never-seen rider.
func (tx *Tx) Presence() *domain.RiderPresence {
	if p, ok := tx.s.presence[tx.riderID]; ok {
		cp := *p
		return &cp
	}
	return nil
}

func (tx *Tx) Memory() *domain.AlertMemory {
	if m, ok := tx.s.memory[tx.riderID]; ok {
		cp := *m
		return &cp
	}
	return nil
}

func (tx *Tx) Receipt() *domain.ReceiptRecord {
	if r, ok := tx.s.receipts[tx.riderID]; ok {
		cp := *r
		return &cp
	}
	return nil
}

func (tx *Tx) SetPresence(p domain.RiderPresence) {
	tx.s.presence[tx.riderID] = &p
}

func (tx *Tx) SetMemory(m domain.AlertMemory) {
	tx.s.memory[tx.riderID] = &m
}

func (tx *Tx) DropMemory() {
	delete(tx.s.memory, tx.riderID)
}

func (tx *Tx) SetReceipt(r domain.ReceiptRecord) {
	tx.s.receipts[tx.riderID] = &r
}

// Update runs fn under the store lock. fn must not retain the Tx.
func (s *PresenceStore) Update(riderID string, fn func(tx *Tx)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&Tx{s: s, riderID: riderID})
}

// RiderRecords is a consistent copy of one rider's records, as handed to
// view scans. Memory and Receipt are nil when absent.
type RiderRecords struct {
	Presence domain.RiderPresence
	Memory   *domain.AlertMemory
	Receipt  *domain.ReceiptRecord
}

// ForEach visits every rider that has a presence record. Each rider's
// records are copied under the read lock, so fn sees them consistent with
// each other; consistency across riders is not guaranteed and not needed.
func (s *PresenceStore) ForEach(fn func(rec RiderRecords)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for id, p := range s.presence {
		rec := RiderRecords{Presence: *p}
		if m, ok := s.memory[id]; ok {
			cp := *m
			rec.Memory = &cp
		}
		if r, ok := s.receipts[id]; ok {
			cp := *r
			rec.Receipt = &cp
		}
		fn(rec)
	}
}

func (s *PresenceStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.presence)
}

func (s *PresenceStore) MemoryLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.memory)
}

// EvictIf removes all three records for the rider when cond still holds
// under the write lock, so a ping racing a sweep decision wins.
func (s *PresenceStore) EvictIf(riderID string, cond func(rec RiderRecords) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.presence[riderID]
	if !ok {
		return false
	}
	rec := RiderRecords{Presence: *p}
	if m, ok := s.memory[riderID]; ok {
		cp := *m
		rec.Memory = &cp
	}
	if r, ok := s.receipts[riderID]; ok {
		cp := *r
		rec.Receipt = &cp
	}
	if !cond(rec) {
		return false
	}

	delete(s.presence, riderID)
	delete(s.memory, riderID)
	delete(s.receipts, riderID)
	return true
}
