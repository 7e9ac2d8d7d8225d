package domain

import "fmt"

// FormatDuration renders a number of seconds for display
//
// Hours drop the seconds ("1h 1m"), minutes keep them ("2m 5s"), and anything
// below a minute is shown in seconds ("45s"). Negative input is treated as 0.
func FormatDuration(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}

// HealthBarPercent is the filled share of the health bar, clamped to [0, 100]
func HealthBarPercent(health, maxHealth int) float64 {
	if maxHealth <= 0 {
		return 0
	}

	percent := 100 * float64(health) / float64(maxHealth)
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
