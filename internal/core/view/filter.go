// Package view derives what the task list shows for a given filter configuration.
package view

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"todolist/internal/core/domain"
)

type Result struct {
	Visible     []domain.Task
	Completed   []domain.Task
	Uncompleted []domain.Task

	// TotalCount is the size of the unfiltered collection.
	TotalCount int
	// CompletedCount and RemainingCount are computed over Visible.
	CompletedCount int
	RemainingCount int
}

// Empty signals that nothing matched and the caller should show a "no results" hint.
func (r Result) Empty() bool {
	return len(r.Completed) == 0 && len(r.Uncompleted) == 0
}

// Derive never modifies tasks or cfg.
func Derive(tasks []domain.Task, cfg domain.FilterConfig) Result {
	m := newMatcher(cfg)

	res := Result{
		Visible:     make([]domain.Task, 0, len(tasks)),
		Completed:   []domain.Task{},
		Uncompleted: []domain.Task{},
		TotalCount:  len(tasks),
	}
	for _, task := range tasks {
		if !m.match(task) {
			continue
		}
		res.Visible = append(res.Visible, task)
		if task.Completed {
			res.Completed = append(res.Completed, task)
		} else {
			res.Uncompleted = append(res.Uncompleted, task)
		}
	}
	res.CompletedCount = len(res.Completed)
	res.RemainingCount = len(res.Uncompleted)

	return res
}

type matcher struct {
	cfg    domain.FilterConfig
	lower  cases.Caser
	search string
}

// Search is a lower-cased substring match. Full case folding is not used,
// so "ss" does not match "ß".
func newMatcher(cfg domain.FilterConfig) *matcher {
	lower := cases.Lower(language.Und)
	return &matcher{
		cfg:    cfg,
		lower:  lower,
		search: lower.String(cfg.SearchText),
	}
}

func (m *matcher) match(task domain.Task) bool {
	if m.cfg.HideCompleted && task.Completed {
		return false
	}
	if m.search != "" &&
		!strings.Contains(m.lower.String(task.Name), m.search) &&
		!strings.Contains(m.lower.String(task.Description), m.search) {
		return false
	}
	if len(m.cfg.SelectedPriorities) > 0 && !m.cfg.HasPriority(task.Priority) {
		return false
	}
	return true
}
