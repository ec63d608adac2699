package ports

import (
	"context"

	"todolist/internal/core/domain"
	"todolist/internal/core/view"
)

// TaskStore is the ordered task collection owned by the service.
// Implementations need not be safe for concurrent use.
type TaskStore interface {
	Add(name, description string, priority domain.Priority) (domain.Task, error)
	SetCompleted(id uint64, completed bool) bool
	Delete(id uint64) bool
	Generate(count int) []domain.Task
	Tasks() []domain.Task
	Len() int
	CreatedCount() int
}

type TaskService interface {
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	SetTaskCompleted(ctx context.Context, id uint64, completed bool) error
	DeleteTask(ctx context.Context, id uint64) error
	GenerateTasks(ctx context.Context, count int) (domain.GenerateResult, error)
	ListTasks(ctx context.Context, filter domain.FilterConfig) (view.Result, error)
	Stats(ctx context.Context) (domain.Stats, error)
}
