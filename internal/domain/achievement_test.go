package domain_test

import (
	"testing"

	"github.com/Amund211/savewatch/internal/domain"
	"github.com/Amund211/savewatch/internal/domaintest"
	"github.com/stretchr/testify/require"
)

func unlockedIDs(statuses []domain.AchievementStatus) []string {
	ids := []string{}
	for _, status := range statuses {
		if status.Unlocked {
			ids = append(ids, status.ID)
		}
	}
	return ids
}

func TestEvaluateAchievements(t *testing.T) {
	t.Parallel()

	t.Run("definitions", func(t *testing.T) {
		t.Parallel()

		defs := domain.Achievements()
		ids := make([]string, 0, len(defs))
		for _, def := range defs {
			ids = append(ids, def.ID)
		}
		require.Equal(t, []string{"first-kill", "level-5", "level-10", "score-1k", "kills-10", "floor-5"}, ids)
	})

	t.Run("empty state unlocks nothing", func(t *testing.T) {
		t.Parallel()

		statuses := domain.EvaluateAchievements(&domain.GameState{})
		require.Len(t, statuses, 6)
		require.Empty(t, unlockedIDs(statuses))

		for _, status := range statuses {
			require.Equal(t, "Locked", status.Tooltip)
		}
	})

	t.Run("nil state unlocks nothing", func(t *testing.T) {
		t.Parallel()

		require.Empty(t, unlockedIDs(domain.EvaluateAchievements(nil)))
	})

	t.Run("single kill unlocks only first kill", func(t *testing.T) {
		t.Parallel()

		state := domaintest.NewGameStateBuilder().WithEnemiesKilled(1).BuildPtr()
		statuses := domain.EvaluateAchievements(state)

		require.Equal(t, []string{"first-kill"}, unlockedIDs(statuses))
		require.Equal(t, domain.AchievementStatus{
			ID:       "first-kill",
			Name:     "First Blood",
			Icon:     "🎯",
			Unlocked: true,
			Tooltip:  "First Blood",
		}, statuses[0])
	})

	t.Run("thresholds", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			name  string
			state *domain.GameState
			want  []string
		}{
			{
				name:  "level 4",
				state: domaintest.NewGameStateBuilder().WithLevel(4).BuildPtr(),
				want:  []string{},
			},
			{
				name:  "level 5",
				state: domaintest.NewGameStateBuilder().WithLevel(5).BuildPtr(),
				want:  []string{"level-5"},
			},
			{
				name:  "level 10",
				state: domaintest.NewGameStateBuilder().WithLevel(10).BuildPtr(),
				want:  []string{"level-5", "level-10"},
			},
			{
				name:  "score 999",
				state: domaintest.NewGameStateBuilder().WithScore(999).BuildPtr(),
				want:  []string{},
			},
			{
				name:  "score 1000",
				state: domaintest.NewGameStateBuilder().WithScore(1000).BuildPtr(),
				want:  []string{"score-1k"},
			},
			{
				name:  "10 kills",
				state: domaintest.NewGameStateBuilder().WithEnemiesKilled(10).BuildPtr(),
				want:  []string{"first-kill", "kills-10"},
			},
			{
				name:  "highest floor 5",
				state: domaintest.NewGameStateBuilder().WithHighestFloor(5).BuildPtr(),
				want:  []string{"floor-5"},
			},
			{
				name:  "current floor does not count",
				state: domaintest.NewGameStateBuilder().WithFloor(7).BuildPtr(),
				want:  []string{},
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()

				require.Equal(t, tc.want, unlockedIDs(domain.EvaluateAchievements(tc.state)))
			})
		}
	})

	t.Run("evaluation is stateless", func(t *testing.T) {
		t.Parallel()

		state := domaintest.NewGameStateBuilder().
			WithLevel(10).
			WithScore(1500).
			WithEnemiesKilled(12).
			WithHighestFloor(5).
			BuildPtr()

		first := domain.EvaluateAchievements(state)
		for range 5 {
			require.Equal(t, first, domain.EvaluateAchievements(state))
		}

		// A later snapshot with lower values locks the achievements again
		require.Empty(t, unlockedIDs(domain.EvaluateAchievements(&domain.GameState{})))
		require.Equal(t, first, domain.EvaluateAchievements(state))
	})
}
