package view_test

import (
	"testing"

	"todolist/internal/core/domain"
	"todolist/internal/core/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	buyMilk  = domain.Task{ID: 1, Name: "Buy milk", Priority: domain.PriorityLow}
	callBank = domain.Task{ID: 2, Name: "Call bank", Priority: domain.PriorityHigh, Completed: true}
)

func TestDerive_NoFilter(t *testing.T) {
	tasks := []domain.Task{buyMilk, callBank}

	res := view.Derive(tasks, domain.FilterConfig{})

	assert.Equal(t, tasks, res.Visible)
	assert.Equal(t, []domain.Task{callBank}, res.Completed)
	assert.Equal(t, []domain.Task{buyMilk}, res.Uncompleted)
	assert.Equal(t, 2, res.TotalCount)
	assert.Equal(t, 1, res.CompletedCount)
	assert.Equal(t, 1, res.RemainingCount)
	assert.False(t, res.Empty())
}

func TestDerive_SearchScenario(t *testing.T) {
	res := view.Derive([]domain.Task{buyMilk, callBank}, domain.FilterConfig{SearchText: "buy"})

	assert.Equal(t, []domain.Task{buyMilk}, res.Visible)
	assert.Equal(t, []domain.Task{buyMilk}, res.Uncompleted)
	assert.Empty(t, res.Completed)
	assert.Equal(t, 2, res.TotalCount)
	assert.Equal(t, 0, res.CompletedCount)
	assert.Equal(t, 1, res.RemainingCount)
}

func TestDerive_SearchMatchesDescriptionCaseInsensitive(t *testing.T) {
	tasks := []domain.Task{
		{ID: 1, Name: "Отчёт", Description: "Отправить в БАНК до пятницы", Priority: domain.PriorityMedium},
		{ID: 2, Name: "Groceries", Description: "bread", Priority: domain.PriorityLow},
	}

	res := view.Derive(tasks, domain.FilterConfig{SearchText: "банк"})
	require.Len(t, res.Visible, 1)
	assert.Equal(t, uint64(1), res.Visible[0].ID)

	res = view.Derive(tasks, domain.FilterConfig{SearchText: "BREAD"})
	require.Len(t, res.Visible, 1)
	assert.Equal(t, uint64(2), res.Visible[0].ID)
}

func TestDerive_SearchLowerCasesWithoutFolding(t *testing.T) {
	tasks := []domain.Task{{ID: 1, Name: "Straße", Priority: domain.PriorityLow}}

	res := view.Derive(tasks, domain.FilterConfig{SearchText: "ss"})
	assert.Empty(t, res.Visible)
	assert.True(t, res.Empty())

	res = view.Derive(tasks, domain.FilterConfig{SearchText: "STRAßE"})
	assert.Len(t, res.Visible, 1)
}

func TestDerive_HideCompleted(t *testing.T) {
	tasks := []domain.Task{callBank, buyMilk, {ID: 3, Name: "done too", Completed: true, Priority: domain.PriorityLow}}

	res := view.Derive(tasks, domain.FilterConfig{HideCompleted: true})

	assert.Equal(t, []domain.Task{buyMilk}, res.Visible)
	assert.Empty(t, res.Completed)
	assert.Equal(t, 3, res.TotalCount)
	assert.Equal(t, 0, res.CompletedCount)
	assert.Equal(t, 1, res.RemainingCount)
}

func TestDerive_PrioritySelection(t *testing.T) {
	low := domain.Task{ID: 1, Name: "low", Priority: domain.PriorityLow}
	medium := domain.Task{ID: 2, Name: "medium", Priority: domain.PriorityMedium}
	high := domain.Task{ID: 3, Name: "high", Priority: domain.PriorityHigh}
	tasks := []domain.Task{low, medium, high}

	res := view.Derive(tasks, domain.FilterConfig{
		SelectedPriorities: []domain.Priority{domain.PriorityHigh, domain.PriorityMedium},
	})

	assert.Equal(t, []domain.Task{medium, high}, res.Visible)
}

func TestDerive_AllCriteriaCombine(t *testing.T) {
	tasks := []domain.Task{
		{ID: 1, Name: "report draft", Priority: domain.PriorityHigh},
		{ID: 2, Name: "report final", Priority: domain.PriorityHigh, Completed: true},
		{ID: 3, Name: "report notes", Priority: domain.PriorityLow},
		{ID: 4, Name: "lunch", Priority: domain.PriorityHigh},
	}

	res := view.Derive(tasks, domain.FilterConfig{
		SearchText:         "report",
		HideCompleted:      true,
		SelectedPriorities: []domain.Priority{domain.PriorityHigh},
	})

	require.Len(t, res.Visible, 1)
	assert.Equal(t, uint64(1), res.Visible[0].ID)
}

func TestDerive_EmptyResult(t *testing.T) {
	res := view.Derive([]domain.Task{buyMilk}, domain.FilterConfig{SearchText: "nothing like this"})

	assert.True(t, res.Empty())
	assert.Empty(t, res.Visible)
	assert.Equal(t, 1, res.TotalCount)

	assert.True(t, view.Derive(nil, domain.FilterConfig{}).Empty())
}

func TestDerive_Idempotent(t *testing.T) {
	tasks := []domain.Task{buyMilk, callBank}
	cfg := domain.FilterConfig{SearchText: "a", SelectedPriorities: []domain.Priority{domain.PriorityLow, domain.PriorityHigh}}
	tasksBefore := append([]domain.Task(nil), tasks...)

	first := view.Derive(tasks, cfg)
	second := view.Derive(tasks, cfg)

	assert.Equal(t, first, second)
	assert.Equal(t, tasksBefore, tasks)
	assert.Equal(t, []domain.Priority{domain.PriorityLow, domain.PriorityHigh}, cfg.SelectedPriorities)
}
