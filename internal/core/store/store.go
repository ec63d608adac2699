// Package store holds the ordered, in-memory task collection.
//
// A Store has a single owner and is not safe for concurrent use; callers that
// share it between goroutines must serialize access themselves.
package store

import (
	"fmt"
	"slices"
	"strings"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
	"todolist/pkg/clock"
)

// Namer produces the name and description of the n-th generated task (n starts at 1).
type Namer func(n int) (name, description string)

func DefaultNamer(n int) (string, string) {
	return fmt.Sprintf("Task %d", n), fmt.Sprintf("Description of task %d", n)
}

type Option func(*Store)

func WithClock(c clock.Clock) Option {
	return func(s *Store) { s.clock = c }
}

func WithFormatter(f clock.Formatter) Option {
	return func(s *Store) { s.formatter = f }
}

func WithNamer(n Namer) Option {
	return func(s *Store) { s.namer = n }
}

type Store struct {
	tasks   []domain.Task
	lastID  uint64
	created int

	clock     clock.Clock
	formatter clock.Formatter
	namer     Namer
}

func New(opts ...Option) *Store {
	s := &Store{
		clock:     clock.RealClock{},
		formatter: clock.NewFormatter("ru"),
		namer:     DefaultNamer,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) nextID() uint64 {
	s.lastID++
	return s.lastID
}

func (s *Store) newTask(name, description string, priority domain.Priority) domain.Task {
	now := s.clock.Now()
	return domain.Task{
		ID:            s.nextID(),
		Name:          name,
		Description:   description,
		CreatedAt:     now,
		CreatedAtText: s.formatter.Format(now),
		Priority:      priority,
	}
}

// Add puts a new task at the front of the collection.
func (s *Store) Add(name, description string, priority domain.Priority) (domain.Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Task{}, domain.ErrEmptyName
	}
	if !priority.Valid() {
		return domain.Task{}, domain.ErrInvalidPriority
	}

	task := s.newTask(name, description, priority)
	s.tasks = slices.Insert(s.tasks, 0, task)
	s.created++

	return task, nil
}

// SetCompleted reports whether a task with id exists. Unknown ids are ignored.
func (s *Store) SetCompleted(id uint64, completed bool) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks[i].Completed = completed
	return true
}

// Delete reports whether a task with id was removed. Unknown ids are ignored.
func (s *Store) Delete(id uint64) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return true
}

// Generate appends count low-priority tasks and returns them.
// Generated tasks do not count towards CreatedCount.
func (s *Store) Generate(count int) []domain.Task {
	if count <= 0 {
		return nil
	}

	s.tasks = slices.Grow(s.tasks, count)
	start := len(s.tasks)
	for n := 1; n <= count; n++ {
		name, description := s.namer(n)
		s.tasks = append(s.tasks, s.newTask(name, description, domain.PriorityLow))
	}

	return slices.Clone(s.tasks[start:])
}

// Tasks returns a copy of the collection in display order.
func (s *Store) Tasks() []domain.Task {
	return slices.Clone(s.tasks)
}

func (s *Store) Len() int {
	return len(s.tasks)
}

func (s *Store) CreatedCount() int {
	return s.created
}

func (s *Store) indexOf(id uint64) int {
	return slices.IndexFunc(s.tasks, func(t domain.Task) bool {
		return t.ID == id
	})
}

var _ ports.TaskStore = (*Store)(nil)
