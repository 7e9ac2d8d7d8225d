package dashboardview

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// TextView prints the dashboard to a writer every time it is flushed
type TextView struct {
	Snapshot

	w   io.Writer
	err error
}

func NewTextView(w io.Writer) *TextView {
	return &TextView{
		Snapshot: DefaultSnapshot(),
		w:        w,
	}
}

func (v *TextView) Flush() {
	v.Version++
	if _, err := io.WriteString(v.w, FormatText(v.Snapshot)); err != nil && v.err == nil {
		v.err = fmt.Errorf("failed to write dashboard: %w", err)
	}
}

// Err returns the first error hit while writing a flushed report
func (v *TextView) Err() error {
	return v.err
}

// FormatText renders a snapshot as a plain text report
func FormatText(s Snapshot) string {
	var b strings.Builder

	line := func(label string, value any) {
		fmt.Fprintf(&b, "%-16s %v\n", label+":", value)
	}

	b.WriteString("== Player ==\n")
	line("Level", s.Level)
	line("Health", fmt.Sprintf("%s (%.0f%%)", s.Health, s.HealthBarPercent))
	line("Experience", s.Experience)
	line("Weapon", s.Weapon)

	b.WriteString("== Progress ==\n")
	line("Floor", s.Floor)
	line("Score", s.Score)
	line("Enemies killed", s.EnemiesKilled)
	line("Play time", s.PlayTime)

	b.WriteString("== Inventory ==\n")
	line("Health potions", s.Potions.Health)
	line("Speed potions", s.Potions.Speed)
	line("Stealth potions", s.Potions.Stealth)
	line("Rage potions", s.Potions.Rage)
	line("Mana potions", s.Potions.Mana)

	b.WriteString("== Statistics ==\n")
	line("Damage dealt", s.DamageDealt)
	line("Damage taken", s.DamageTaken)
	line("Potions used", s.PotionsUsed)
	line("Highest floor", s.HighestFloor)
	line("Last save", s.LastSave)

	b.WriteString("== Achievements ==\n")
	for _, achievement := range s.Achievements {
		marker := "[ ]"
		if achievement.Unlocked {
			marker = "[x]"
		}
		fmt.Fprintf(&b, "%s %s %s\n", marker, achievement.Icon, achievement.Tooltip)
	}

	updatedAt := "never"
	if s.UpdatedAt != nil {
		updatedAt = s.UpdatedAt.Format(time.TimeOnly)
	}
	line("Updated", updatedAt)

	return b.String()
}

// Type assertion
var _ DashboardView = (*TextView)(nil)
