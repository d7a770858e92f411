package progress

import (
	"testing"
	"time"

	"github.com/sandeepkv93/studyd/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC) // Wednesday

func task(id, subject string, due time.Time, done bool) model.Task {
	return model.Task{ID: id, Name: id, Subject: subject, DueDate: due, Type: model.TaskTypeHomework, Priority: model.PriorityMedium, Completed: done}
}

func TestOfRateAndPercent(t *testing.T) {
	empty := Of(nil)
	assert.Equal(t, 0.0, empty.Rate())
	assert.Equal(t, 0, empty.Percent())

	p := Of([]model.Task{
		task("a", "Historia", now, true),
		task("b", "Historia", now, false),
		task("c", "Historia", now, true),
	})
	assert.Equal(t, Progress{Completed: 2, Total: 3}, p)
	assert.Equal(t, 67, p.Percent())
	assert.Equal(t, 1, p.Pending())
}

func TestInPeriod(t *testing.T) {
	tasks := []model.Task{
		task("mon", "x", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), false),
		task("sun-late", "x", time.Date(2024, 6, 16, 23, 59, 0, 0, time.UTC), false),
		task("next-mon", "x", time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC), false),
		task("jun-30-late", "x", time.Date(2024, 6, 30, 22, 0, 0, 0, time.UTC), false),
		task("may", "x", time.Date(2024, 5, 31, 9, 0, 0, 0, time.UTC), false),
	}
	ids := func(in []model.Task) []string {
		out := make([]string, 0, len(in))
		for _, t := range in {
			out = append(out, t.ID)
		}
		return out
	}
	assert.Equal(t, []string{"mon", "sun-late"}, ids(InPeriod(tasks, PeriodWeek, now)))
	assert.Equal(t, []string{"mon", "sun-late", "next-mon", "jun-30-late"}, ids(InPeriod(tasks, PeriodMonth, now)))
	assert.Len(t, InPeriod(tasks, PeriodAll, now), 5)
}

func TestPeriodCycle(t *testing.T) {
	assert.Equal(t, PeriodMonth, PeriodWeek.Next())
	assert.Equal(t, PeriodAll, PeriodMonth.Next())
	assert.Equal(t, PeriodWeek, PeriodAll.Next())
	assert.False(t, Period("year").IsValid())
}

func TestGoalGap(t *testing.T) {
	assert.Equal(t, 75, GoalGap(0))
	assert.Equal(t, 25, GoalGap(0.5))
	assert.Equal(t, 0, GoalGap(0.75))
	assert.Equal(t, 0, GoalGap(1))
}

func TestBySubjectDropsEmptyAndKeepsOrphans(t *testing.T) {
	subjects := model.DefaultSubjects()
	tasks := []model.Task{
		task("a", "Historia", now, true),
		task("b", "Matemáticas", now, false),
		task("c", "Historia", now, false),
		task("d", "Filosofía", now, true),
	}
	got := BySubject(tasks, subjects)
	require.Len(t, got, 3)
	assert.Equal(t, "Matemáticas", got[0].Key)
	assert.Equal(t, Progress{Completed: 0, Total: 1}, got[0].Progress)
	assert.Equal(t, "Historia", got[1].Key)
	assert.Equal(t, Progress{Completed: 1, Total: 2}, got[1].Progress)
	assert.Equal(t, "Filosofía", got[2].Key)
}

func TestByPriorityAndType(t *testing.T) {
	a := task("a", "x", now, true)
	a.Priority = model.PriorityLow
	b := task("b", "x", now, false)
	b.Priority = model.PriorityHigh
	b.Type = model.TaskTypeExam

	pr := ByPriority([]model.Task{a, b})
	require.Len(t, pr, 2)
	assert.Equal(t, model.PriorityHigh, pr[0].Key)
	assert.Equal(t, model.PriorityLow, pr[1].Key)

	ty := ByType([]model.Task{a, b})
	require.Len(t, ty, 2)
	assert.Equal(t, model.TaskTypeHomework, ty[0].Key)
	assert.Equal(t, model.TaskTypeExam, ty[1].Key)
}

func TestBacklogPressure(t *testing.T) {
	overdueHigh := task("a", "x", now.Add(-48*time.Hour), false)
	overdueHigh.Priority = model.PriorityHigh
	dueToday := task("b", "x", now.Add(2*time.Hour), false)
	doneOverdue := task("c", "x", now.Add(-48*time.Hour), true)

	p := BacklogPressure([]model.Task{overdueHigh, dueToday, doneOverdue}, now)
	assert.Equal(t, 4, p.Score)
	assert.Equal(t, "medium", p.Label)

	many := make([]model.Task, 0, 8)
	for i := 0; i < 8; i++ {
		many = append(many, task("o", "x", now.Add(-time.Hour*24), false))
	}
	p = BacklogPressure(many, now)
	assert.Equal(t, 10, p.Score)
	assert.Equal(t, "high", p.Label)
}
