package progress

import (
	"github.com/sandeepkv93/studyd/internal/model"
)

// Group is the progress of one breakdown bucket.
type Group[K comparable] struct {
	Key K
	Progress
}

func breakdown[K comparable](tasks []model.Task, keys []K, keyOf func(model.Task) K) []Group[K] {
	counts := make(map[K]*Progress, len(keys))
	for _, t := range tasks {
		k := keyOf(t)
		p, ok := counts[k]
		if !ok {
			p = &Progress{}
			counts[k] = p
		}
		p.Total++
		if t.Completed {
			p.Completed++
		}
	}
	out := make([]Group[K], 0, len(keys))
	for _, k := range keys {
		if p, ok := counts[k]; ok && p.Total > 0 {
			out = append(out, Group[K]{Key: k, Progress: *p})
		}
	}
	return out
}

// BySubject groups tasks by subject name in the order of subjects. Tasks whose
// subject no longer exists are grouped after the known ones, in first-seen
// order.
func BySubject(tasks []model.Task, subjects []model.Subject) []Group[string] {
	keys := make([]string, 0, len(subjects))
	seen := make(map[string]bool, len(subjects))
	for _, s := range subjects {
		if !seen[s.Name] {
			seen[s.Name] = true
			keys = append(keys, s.Name)
		}
	}
	for _, t := range tasks {
		if !seen[t.Subject] {
			seen[t.Subject] = true
			keys = append(keys, t.Subject)
		}
	}
	return breakdown(tasks, keys, func(t model.Task) string { return t.Subject })
}

// ByPriority groups from high to low.
func ByPriority(tasks []model.Task) []Group[model.Priority] {
	return breakdown(tasks, model.Priorities(), func(t model.Task) model.Priority { return t.Priority })
}

func ByType(tasks []model.Task) []Group[model.TaskType] {
	return breakdown(tasks, model.TaskTypes(), func(t model.Task) model.TaskType { return t.Type })
}
