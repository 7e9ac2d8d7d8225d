package dashboardview

import (
	"time"

	"github.com/Amund211/savewatch/internal/domain"
)

// DashboardView is the set of named display slots the renderer writes to
//
// Setters stage values, Flush makes the staged values visible as one unit.
type DashboardView interface {
	SetLevel(level int)
	SetHealth(health string)
	SetHealthBar(percent float64)
	SetExperience(experience int)
	SetWeapon(weapon string)
	SetFloor(floor int)
	SetScore(score int)
	SetEnemiesKilled(kills int)
	SetPlayTime(playTime string)
	SetPotions(potions domain.Potions)
	SetDamageDealt(damage int)
	SetDamageTaken(damage int)
	SetPotionsUsed(used int)
	SetHighestFloor(floor int)
	SetLastSave(lastSave string)
	SetAchievements(achievements []domain.AchievementStatus)
	SetUpdatedAt(updatedAt time.Time)

	Flush()
}
