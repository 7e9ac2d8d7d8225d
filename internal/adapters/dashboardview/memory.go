package dashboardview

import (
	"sync"
	"time"

	"github.com/Amund211/savewatch/internal/domain"
)

// MemoryView keeps the dashboard in memory for the HTTP ports to read
type MemoryView struct {
	mu          sync.RWMutex
	pending     Snapshot
	published   Snapshot
	subscribers map[chan Snapshot]struct{}
}

func NewMemoryView() *MemoryView {
	initial := DefaultSnapshot()
	return &MemoryView{
		pending:     initial.clone(),
		published:   initial,
		subscribers: make(map[chan Snapshot]struct{}),
	}
}

// Snapshot returns a copy of the last published snapshot
func (v *MemoryView) Snapshot() Snapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.published.clone()
}

// Subscribe returns a channel that receives every published snapshot
//
// Slow subscribers only see the latest snapshot. The channel is never closed,
// call unsubscribe when done listening.
func (v *MemoryView) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	v.mu.Lock()
	v.subscribers[ch] = struct{}{}
	v.mu.Unlock()

	unsubscribe := func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.subscribers, ch)
	}

	return ch, unsubscribe
}

func (v *MemoryView) SubscriberCount() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.subscribers)
}

func (v *MemoryView) Flush() {
	v.mu.Lock()
	v.pending.Version = v.published.Version + 1
	v.published = v.pending.clone()
	snapshot := v.published.clone()

	subscribers := make([]chan Snapshot, 0, len(v.subscribers))
	for ch := range v.subscribers {
		subscribers = append(subscribers, ch)
	}
	v.mu.Unlock()

	// Send without holding the lock
	for _, ch := range subscribers {
		sendLatest(ch, snapshot)
	}
}

func sendLatest(ch chan Snapshot, snapshot Snapshot) {
	select {
	case ch <- snapshot:
		return
	default:
	}

	// Replace the unread snapshot with the newer one
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- snapshot:
	default:
	}
}

func (v *MemoryView) update(apply func(s *Snapshot)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	apply(&v.pending)
}

func (v *MemoryView) SetLevel(level int) {
	v.update(func(s *Snapshot) { s.SetLevel(level) })
}

func (v *MemoryView) SetHealth(health string) {
	v.update(func(s *Snapshot) { s.SetHealth(health) })
}

func (v *MemoryView) SetHealthBar(percent float64) {
	v.update(func(s *Snapshot) { s.SetHealthBar(percent) })
}

func (v *MemoryView) SetExperience(experience int) {
	v.update(func(s *Snapshot) { s.SetExperience(experience) })
}

func (v *MemoryView) SetWeapon(weapon string) {
	v.update(func(s *Snapshot) { s.SetWeapon(weapon) })
}

func (v *MemoryView) SetFloor(floor int) {
	v.update(func(s *Snapshot) { s.SetFloor(floor) })
}

func (v *MemoryView) SetScore(score int) {
	v.update(func(s *Snapshot) { s.SetScore(score) })
}

func (v *MemoryView) SetEnemiesKilled(kills int) {
	v.update(func(s *Snapshot) { s.SetEnemiesKilled(kills) })
}

func (v *MemoryView) SetPlayTime(playTime string) {
	v.update(func(s *Snapshot) { s.SetPlayTime(playTime) })
}

func (v *MemoryView) SetPotions(potions domain.Potions) {
	v.update(func(s *Snapshot) { s.SetPotions(potions) })
}

func (v *MemoryView) SetDamageDealt(damage int) {
	v.update(func(s *Snapshot) { s.SetDamageDealt(damage) })
}

func (v *MemoryView) SetDamageTaken(damage int) {
	v.update(func(s *Snapshot) { s.SetDamageTaken(damage) })
}

func (v *MemoryView) SetPotionsUsed(used int) {
	v.update(func(s *Snapshot) { s.SetPotionsUsed(used) })
}

func (v *MemoryView) SetHighestFloor(floor int) {
	v.update(func(s *Snapshot) { s.SetHighestFloor(floor) })
}

func (v *MemoryView) SetLastSave(lastSave string) {
	v.update(func(s *Snapshot) { s.SetLastSave(lastSave) })
}

func (v *MemoryView) SetAchievements(achievements []domain.AchievementStatus) {
	v.update(func(s *Snapshot) { s.SetAchievements(achievements) })
}

func (v *MemoryView) SetUpdatedAt(updatedAt time.Time) {
	v.update(func(s *Snapshot) { s.SetUpdatedAt(updatedAt) })
}

// Type assertion
var _ DashboardView = (*MemoryView)(nil)
