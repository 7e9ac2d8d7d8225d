package app

import (
	"fmt"
	"time"

	"github.com/Amund211/savewatch/internal/adapters/dashboardview"
	"github.com/Amund211/savewatch/internal/domain"
)

// Render writes every display slot from the given state
//
// Missing fields are rendered as their defaults. The view is not flushed.
func Render(view dashboardview.DashboardView, state *domain.GameState, now time.Time) {
	// Player
	view.SetLevel(state.Level())

	health := state.Health()
	maxHealth := state.MaxHealth()
	view.SetHealth(fmt.Sprintf("%d/%d", health, maxHealth))
	view.SetHealthBar(domain.HealthBarPercent(health, maxHealth))

	view.SetExperience(state.Experience())
	view.SetWeapon(state.Weapon())

	// Progress
	view.SetFloor(state.Floor())
	view.SetScore(state.CurrentScore())
	view.SetEnemiesKilled(state.Kills())
	view.SetPlayTime(domain.FormatDuration(state.PlayTimeSeconds()))

	// Inventory
	view.SetPotions(state.Potions())

	// Statistics
	view.SetDamageDealt(state.DamageDealt())
	view.SetDamageTaken(state.DamageTaken())
	view.SetPotionsUsed(state.UsedPotions())
	view.SetHighestFloor(state.DeepestFloor())

	view.SetLastSave(state.LastSave())

	RenderAchievements(view, state)

	view.SetUpdatedAt(now)
}

// RenderAchievements evaluates every achievement against the state from scratch
func RenderAchievements(view dashboardview.DashboardView, state *domain.GameState) {
	view.SetAchievements(domain.EvaluateAchievements(state))
}
