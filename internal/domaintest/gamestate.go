package domaintest

import (
	"github.com/Amund211/savewatch/internal/domain"
)

type gameStateBuilder struct {
	state *domain.GameState
}

func (b *gameStateBuilder) WithLevel(level int) *gameStateBuilder {
	b.state.PlayerLevel = &level
	return b
}

func (b *gameStateBuilder) WithHealth(health, maxHealth int) *gameStateBuilder {
	b.state.PlayerHealth = &health
	b.state.PlayerMaxHealth = &maxHealth
	return b
}

func (b *gameStateBuilder) WithExperience(experience int) *gameStateBuilder {
	b.state.PlayerExperience = &experience
	return b
}

func (b *gameStateBuilder) WithWeapon(weapon string) *gameStateBuilder {
	b.state.CurrentWeapon = &weapon
	return b
}

func (b *gameStateBuilder) WithFloor(floor int) *gameStateBuilder {
	b.state.CurrentFloor = &floor
	return b
}

func (b *gameStateBuilder) WithScore(score int) *gameStateBuilder {
	b.state.Score = &score
	return b
}

func (b *gameStateBuilder) WithEnemiesKilled(kills int) *gameStateBuilder {
	b.state.EnemiesKilled = &kills
	return b
}

func (b *gameStateBuilder) WithPlayTime(seconds float64) *gameStateBuilder {
	b.state.PlayTime = &seconds
	return b
}

func (b *gameStateBuilder) WithPotions(health, speed, stealth, rage, mana int) *gameStateBuilder {
	b.state.PotionCounts = &domain.PotionCounts{
		Health:  &health,
		Speed:   &speed,
		Stealth: &stealth,
		Rage:    &rage,
		Mana:    &mana,
	}
	return b
}

func (b *gameStateBuilder) WithDamage(dealt, taken int) *gameStateBuilder {
	b.state.TotalDamageDealt = &dealt
	b.state.TotalDamageTaken = &taken
	return b
}

func (b *gameStateBuilder) WithPotionsUsed(used int) *gameStateBuilder {
	b.state.PotionsUsed = &used
	return b
}

func (b *gameStateBuilder) WithHighestFloor(floor int) *gameStateBuilder {
	b.state.HighestFloor = &floor
	return b
}

func (b *gameStateBuilder) WithLastSaveTime(lastSave string) *gameStateBuilder {
	b.state.LastSaveTime = &lastSave
	return b
}

func (b *gameStateBuilder) Build() domain.GameState {
	return *b.state
}

func (b *gameStateBuilder) BuildPtr() *domain.GameState {
	// Make a copy, so further mutations to the builder don't affect the returned state
	// NOTE: The field pointers are fresh for every With* call, so sharing them is fine
	state := b.Build()
	return &state
}

// NewGameStateBuilder starts from an empty save where every field takes its default
func NewGameStateBuilder() *gameStateBuilder {
	return &gameStateBuilder{
		state: &domain.GameState{},
	}
}
