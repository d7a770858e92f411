package progress

import (
	"testing"
	"time"

	"github.com/sandeepkv93/studyd/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func habit(name string, day int, done bool) model.Habit {
	return model.Habit{ID: name + "-" + time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC).Format("0102"), Name: name, Type: model.HabitTypeStudy, Target: 1, Unit: "h", Completed: done, Date: time.Date(2024, 6, day, 9, 0, 0, 0, time.UTC)}
}

func TestHabitDaysOldestFirst(t *testing.T) {
	habits := []model.Habit{
		habit("Leer", 12, true),
		habit("Dormir", 12, false),
		habit("Leer", 10, true),
		habit("Leer", 1, true),
	}
	days := HabitDays(habits, now, 7)
	require.Len(t, days, 7)
	assert.Equal(t, 6, days[0].Date.Day())
	assert.Equal(t, 12, days[6].Date.Day())
	assert.Equal(t, Progress{Completed: 1, Total: 2}, days[6].Progress)
	assert.Equal(t, Progress{Completed: 1, Total: 1}, days[4].Progress)
	assert.Equal(t, Progress{}, days[5].Progress)

	assert.InDelta(t, 0.75, AverageRate(days), 1e-9)
	assert.Nil(t, HabitDays(habits, now, 0))
	assert.Equal(t, 0.0, AverageRate(nil))
}

func TestByHabitStreaks(t *testing.T) {
	habits := []model.Habit{
		habit("Leer", 9, true),
		habit("Leer", 10, true),
		habit("Leer", 11, true),
		habit("Leer", 12, false),
		habit("Dormir", 12, true),
		habit("Dormir", 10, true),
	}
	got := ByHabit(habits, now)
	require.Len(t, got, 2)
	assert.Equal(t, "Leer", got[0].Name)
	assert.Equal(t, 3, got[0].Streak, "open today does not break the streak")
	assert.Equal(t, 4, got[0].Days)
	assert.Equal(t, 3, got[0].Done)
	assert.Equal(t, "Dormir", got[1].Name)
	assert.Equal(t, 1, got[1].Streak)
}
