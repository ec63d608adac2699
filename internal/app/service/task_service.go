package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
	"todolist/internal/core/view"
)

// TaskService owns the task store. Every call holds the same lock so
// intents from concurrent callers are applied one at a time, in arrival order.
type TaskService struct {
	mu    sync.Mutex
	store ports.TaskStore
}

func NewTaskService(taskStore ports.TaskStore) *TaskService {
	zap.L().Info("task store ready", zap.Int("tasks", taskStore.Len()))
	return &TaskService{store: taskStore}
}

func (s *TaskService) CreateTask(_ context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.trackSize(s.store.Len())

	task, err := s.store.Add(input.Name, input.Description, input.Priority)
	if err != nil {
		return domain.Task{}, err
	}

	zap.L().Debug("task created",
		zap.Uint64("task_id", task.ID),
		zap.String("priority", string(task.Priority)),
		zap.Int("created_total", s.store.CreatedCount()),
	)
	return task, nil
}

func (s *TaskService) SetTaskCompleted(_ context.Context, id uint64, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.SetCompleted(id, completed) {
		zap.L().Debug("toggle ignored, task not found", zap.Uint64("task_id", id))
	}
	return nil
}

func (s *TaskService) DeleteTask(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.trackSize(s.store.Len())

	if !s.store.Delete(id) {
		zap.L().Debug("delete ignored, task not found", zap.Uint64("task_id", id))
	}
	return nil
}

// GenerateTasks reports the collection size read under the same lock as the generation.
func (s *TaskService) GenerateTasks(_ context.Context, count int) (domain.GenerateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.trackSize(s.store.Len())

	tasks := s.store.Generate(count)
	zap.L().Info("tasks generated", zap.Int("count", len(tasks)))
	return domain.GenerateResult{Tasks: tasks, Total: s.store.Len()}, nil
}

func (s *TaskService) ListTasks(_ context.Context, filter domain.FilterConfig) (view.Result, error) {
	s.mu.Lock()
	tasks := s.store.Tasks()
	s.mu.Unlock()

	return view.Derive(tasks, filter), nil
}

func (s *TaskService) Stats(_ context.Context) (domain.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.Stats{
		Total:   s.store.Len(),
		Created: s.store.CreatedCount(),
	}, nil
}

// trackSize must be deferred with the size read before the mutation.
func (s *TaskService) trackSize(before int) {
	if after := s.store.Len(); after != before {
		zap.L().Info("task list updated", zap.Int("before", before), zap.Int("after", after))
	}
}

var _ ports.TaskService = (*TaskService)(nil)
