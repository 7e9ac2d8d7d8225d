package domain

import "math"

const (
	DefaultLevel        = 1
	DefaultHealth       = 150
	DefaultMaxHealth    = 150
	DefaultWeapon       = "Wooden Sword"
	DefaultFloor        = 1
	DefaultHighestFloor = 1
	DefaultLastSave     = "Never"
)

// GameState is a point-in-time snapshot of the game's save file.
//
// Every field is optional. The accessor methods substitute the documented
// default for a missing field, and are safe to call on a nil *GameState.
type GameState struct {
	PlayerLevel      *int     `json:"playerLevel"`
	PlayerHealth     *int     `json:"playerHealth"`
	PlayerMaxHealth  *int     `json:"playerMaxHealth"`
	PlayerExperience *int     `json:"playerExperience"`
	CurrentWeapon    *string  `json:"currentWeapon"`
	CurrentFloor     *int     `json:"currentFloor"`
	Score            *int     `json:"score"`
	EnemiesKilled    *int     `json:"enemiesKilled"`
	PlayTime         *float64 `json:"playTime"`

	PotionCounts *PotionCounts `json:"potions"`

	TotalDamageDealt *int    `json:"totalDamageDealt"`
	TotalDamageTaken *int    `json:"totalDamageTaken"`
	PotionsUsed      *int    `json:"potionsUsed"`
	HighestFloor     *int    `json:"highestFloor"`
	LastSaveTime     *string `json:"lastSaveTime"`
}

type PotionCounts struct {
	Health  *int `json:"health"`
	Speed   *int `json:"speed"`
	Stealth *int `json:"stealth"`
	Rage    *int `json:"rage"`
	Mana    *int `json:"mana"`
}

// Potions is the defaulted view of PotionCounts
type Potions struct {
	Health  int `json:"health"`
	Speed   int `json:"speed"`
	Stealth int `json:"stealth"`
	Rage    int `json:"rage"`
	Mana    int `json:"mana"`
}

func intOr(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}

func stringOr(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}

func (s *GameState) Level() int {
	if s == nil {
		return DefaultLevel
	}
	return intOr(s.PlayerLevel, DefaultLevel)
}

func (s *GameState) Health() int {
	if s == nil {
		return DefaultHealth
	}
	return intOr(s.PlayerHealth, DefaultHealth)
}

func (s *GameState) MaxHealth() int {
	if s == nil {
		return DefaultMaxHealth
	}
	return intOr(s.PlayerMaxHealth, DefaultMaxHealth)
}

func (s *GameState) Experience() int {
	if s == nil {
		return 0
	}
	return intOr(s.PlayerExperience, 0)
}

func (s *GameState) Weapon() string {
	if s == nil {
		return DefaultWeapon
	}
	return stringOr(s.CurrentWeapon, DefaultWeapon)
}

func (s *GameState) Floor() int {
	if s == nil {
		return DefaultFloor
	}
	return intOr(s.CurrentFloor, DefaultFloor)
}

func (s *GameState) CurrentScore() int {
	if s == nil {
		return 0
	}
	return intOr(s.Score, 0)
}

func (s *GameState) Kills() int {
	if s == nil {
		return 0
	}
	return intOr(s.EnemiesKilled, 0)
}

// PlayTimeSeconds is the play time floored to whole seconds
func (s *GameState) PlayTimeSeconds() int {
	if s == nil || s.PlayTime == nil {
		return 0
	}
	playTime := *s.PlayTime
	if math.IsNaN(playTime) || playTime < 0 {
		return 0
	}
	if playTime > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Floor(playTime))
}

// Potions returns all potion counts, zeroed when the save has no potions object
func (s *GameState) Potions() Potions {
	if s == nil || s.PotionCounts == nil {
		return Potions{}
	}
	return Potions{
		Health:  intOr(s.PotionCounts.Health, 0),
		Speed:   intOr(s.PotionCounts.Speed, 0),
		Stealth: intOr(s.PotionCounts.Stealth, 0),
		Rage:    intOr(s.PotionCounts.Rage, 0),
		Mana:    intOr(s.PotionCounts.Mana, 0),
	}
}

func (s *GameState) DamageDealt() int {
	if s == nil {
		return 0
	}
	return intOr(s.TotalDamageDealt, 0)
}

func (s *GameState) DamageTaken() int {
	if s == nil {
		return 0
	}
	return intOr(s.TotalDamageTaken, 0)
}

func (s *GameState) UsedPotions() int {
	if s == nil {
		return 0
	}
	return intOr(s.PotionsUsed, 0)
}

func (s *GameState) DeepestFloor() int {
	if s == nil {
		return DefaultHighestFloor
	}
	return intOr(s.HighestFloor, DefaultHighestFloor)
}

func (s *GameState) LastSave() string {
	if s == nil {
		return DefaultLastSave
	}
	return stringOr(s.LastSaveTime, DefaultLastSave)
}
