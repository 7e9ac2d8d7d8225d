package domain

const LockedTooltip = "Locked"

type AchievementDef struct {
	ID   string
	Name string
	Icon string

	// NOTE: Must only depend on the given state
	Unlocked func(state *GameState) bool
}

type AchievementStatus struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Unlocked bool   `json:"unlocked"`
	Tooltip  string `json:"tooltip"`
}

var achievements = []AchievementDef{
	{
		ID:       "first-kill",
		Name:     "First Blood",
		Icon:     "🎯",
		Unlocked: func(state *GameState) bool { return state.Kills() >= 1 },
	},
	{
		ID:       "level-5",
		Name:     "Rising Hero",
		Icon:     "⭐",
		Unlocked: func(state *GameState) bool { return state.Level() >= 5 },
	},
	{
		ID:       "level-10",
		Name:     "Legendary",
		Icon:     "👑",
		Unlocked: func(state *GameState) bool { return state.Level() >= 10 },
	},
	{
		ID:       "score-1k",
		Name:     "Millionaire",
		Icon:     "💰",
		Unlocked: func(state *GameState) bool { return state.CurrentScore() >= 1000 },
	},
	{
		ID:       "kills-10",
		Name:     "Slayer",
		Icon:     "⚔️",
		Unlocked: func(state *GameState) bool { return state.Kills() >= 10 },
	},
	{
		ID:       "floor-5",
		Name:     "Deep Delver",
		Icon:     "🏰",
		Unlocked: func(state *GameState) bool { return state.DeepestFloor() >= 5 },
	},
}

// Achievements returns a copy of the static achievement list
func Achievements() []AchievementDef {
	defs := make([]AchievementDef, len(achievements))
	copy(defs, achievements)
	return defs
}

// EvaluateAchievements computes the unlock status of every achievement from scratch
func EvaluateAchievements(state *GameState) []AchievementStatus {
	statuses := make([]AchievementStatus, 0, len(achievements))
	for _, def := range achievements {
		unlocked := def.Unlocked(state)

		tooltip := LockedTooltip
		if unlocked {
			tooltip = def.Name
		}

		statuses = append(statuses, AchievementStatus{
			ID:       def.ID,
			Name:     def.Name,
			Icon:     def.Icon,
			Unlocked: unlocked,
			Tooltip:  tooltip,
		})
	}
	return statuses
}
