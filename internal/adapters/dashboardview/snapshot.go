package dashboardview

import (
	"fmt"
	"slices"
	"time"

	"github.com/Amund211/savewatch/internal/domain"
)

type Snapshot struct {
	Version int64 `json:"version"`

	Level            int     `json:"level"`
	Health           string  `json:"health"`
	HealthBarPercent float64 `json:"healthBarPercent"`
	Experience       int     `json:"experience"`
	Weapon           string  `json:"weapon"`

	Floor         int    `json:"floor"`
	Score         int    `json:"score"`
	EnemiesKilled int    `json:"enemiesKilled"`
	PlayTime      string `json:"playTime"`

	Potions domain.Potions `json:"potions"`

	DamageDealt  int    `json:"damageDealt"`
	DamageTaken  int    `json:"damageTaken"`
	PotionsUsed  int    `json:"potionsUsed"`
	HighestFloor int    `json:"highestFloor"`
	LastSave     string `json:"lastSave"`

	Achievements []domain.AchievementStatus `json:"achievements"`

	// nil until the first successful render
	UpdatedAt *time.Time `json:"updatedAt"`
}

// DefaultSnapshot is what the dashboard shows before any save has been read
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Level:            domain.DefaultLevel,
		Health:           fmt.Sprintf("%d/%d", domain.DefaultHealth, domain.DefaultMaxHealth),
		HealthBarPercent: domain.HealthBarPercent(domain.DefaultHealth, domain.DefaultMaxHealth),
		Weapon:           domain.DefaultWeapon,
		Floor:            domain.DefaultFloor,
		PlayTime:         domain.FormatDuration(0),
		HighestFloor:     domain.DefaultHighestFloor,
		LastSave:         domain.DefaultLastSave,
		Achievements:     domain.EvaluateAchievements(nil),
	}
}

func (s Snapshot) clone() Snapshot {
	cloned := s
	cloned.Achievements = slices.Clone(s.Achievements)
	if s.UpdatedAt != nil {
		updatedAt := *s.UpdatedAt
		cloned.UpdatedAt = &updatedAt
	}
	return cloned
}

func (s *Snapshot) SetLevel(level int) {
	s.Level = level
}

func (s *Snapshot) SetHealth(health string) {
	s.Health = health
}

func (s *Snapshot) SetHealthBar(percent float64) {
	s.HealthBarPercent = percent
}

func (s *Snapshot) SetExperience(experience int) {
	s.Experience = experience
}

func (s *Snapshot) SetWeapon(weapon string) {
	s.Weapon = weapon
}

func (s *Snapshot) SetFloor(floor int) {
	s.Floor = floor
}

func (s *Snapshot) SetScore(score int) {
	s.Score = score
}

func (s *Snapshot) SetEnemiesKilled(kills int) {
	s.EnemiesKilled = kills
}

func (s *Snapshot) SetPlayTime(playTime string) {
	s.PlayTime = playTime
}

func (s *Snapshot) SetPotions(potions domain.Potions) {
	s.Potions = potions
}

func (s *Snapshot) SetDamageDealt(damage int) {
	s.DamageDealt = damage
}

func (s *Snapshot) SetDamageTaken(damage int) {
	s.DamageTaken = damage
}

func (s *Snapshot) SetPotionsUsed(used int) {
	s.PotionsUsed = used
}

func (s *Snapshot) SetHighestFloor(floor int) {
	s.HighestFloor = floor
}

func (s *Snapshot) SetLastSave(lastSave string) {
	s.LastSave = lastSave
}

func (s *Snapshot) SetAchievements(achievements []domain.AchievementStatus) {
	s.Achievements = slices.Clone(achievements)
}

func (s *Snapshot) SetUpdatedAt(updatedAt time.Time) {
	s.UpdatedAt = &updatedAt
}
