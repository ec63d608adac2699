package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"todolist/internal/app/service"
	"todolist/internal/core/domain"
	"todolist/internal/core/store"
	"todolist/pkg/clock"
	"todolist/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type taskStoreMock struct {
	mock.Mock
}

func (m *taskStoreMock) Add(name, description string, priority domain.Priority) (domain.Task, error) {
	args := m.Called(name, description, priority)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskStoreMock) SetCompleted(id uint64, completed bool) bool {
	return m.Called(id, completed).Bool(0)
}

func (m *taskStoreMock) Delete(id uint64) bool {
	return m.Called(id).Bool(0)
}

func (m *taskStoreMock) Generate(count int) []domain.Task {
	return m.Called(count).Get(0).([]domain.Task)
}

func (m *taskStoreMock) Tasks() []domain.Task {
	return m.Called().Get(0).([]domain.Task)
}

func (m *taskStoreMock) Len() int {
	return m.Called().Int(0)
}

func (m *taskStoreMock) CreatedCount() int {
	return m.Called().Int(0)
}

func newService() *service.TaskService {
	return service.NewTaskService(store.New(
		store.WithClock(clock.NewFakeClock(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))),
	))
}

func TestTaskService_CreateAndList(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	milk, err := svc.CreateTask(ctx, domain.CreateTaskInput{Name: "Buy milk", Priority: domain.PriorityLow})
	require.NoError(t, err)
	bank, err := svc.CreateTask(ctx, domain.CreateTaskInput{Name: "Call bank", Priority: domain.PriorityHigh})
	require.NoError(t, err)
	require.NoError(t, svc.SetTaskCompleted(ctx, bank.ID, true))

	res, err := svc.ListTasks(ctx, domain.FilterConfig{SearchText: "buy"})
	require.NoError(t, err)

	require.Len(t, res.Visible, 1)
	assert.Equal(t, milk.ID, res.Visible[0].ID)
	assert.Empty(t, res.Completed)
	assert.Equal(t, 2, res.TotalCount)
}

func TestTaskService_CreateTask_EmptyName(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	_, err := svc.CreateTask(ctx, domain.CreateTaskInput{Name: "  ", Description: "kept by the form", Priority: domain.PriorityHigh})

	assert.ErrorIs(t, err, domain.ErrEmptyName)
	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Stats{}, stats)
}

func TestTaskService_UnknownIDsAreNoops(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	_, err := svc.CreateTask(ctx, domain.CreateTaskInput{Name: "only", Priority: domain.PriorityLow})
	require.NoError(t, err)

	assert.NoError(t, svc.SetTaskCompleted(ctx, 404, true))
	assert.NoError(t, svc.DeleteTask(ctx, 404))

	res, err := svc.ListTasks(ctx, domain.FilterConfig{})
	require.NoError(t, err)
	require.Len(t, res.Visible, 1)
	assert.False(t, res.Visible[0].Completed)
}

func TestTaskService_StatsKeepsCreatedAfterDelete(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	a, err := svc.CreateTask(ctx, domain.CreateTaskInput{Name: "a", Priority: domain.PriorityLow})
	require.NoError(t, err)
	_, err = svc.CreateTask(ctx, domain.CreateTaskInput{Name: "b", Priority: domain.PriorityLow})
	require.NoError(t, err)
	_, err = svc.GenerateTasks(ctx, 5)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteTask(ctx, a.ID))

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Stats{Total: 6, Created: 2}, stats)
}

func TestTaskService_GenerateTasksReportsSizeAfterBatch(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	_, err := svc.CreateTask(ctx, domain.CreateTaskInput{Name: "mine", Priority: domain.PriorityLow})
	require.NoError(t, err)

	res, err := svc.GenerateTasks(ctx, 4)
	require.NoError(t, err)

	assert.Len(t, res.Tasks, 4)
	assert.Equal(t, 5, res.Total)
}

func TestTaskService_GenerateTasksReadsTotalFromStore(t *testing.T) {
	storeMock := new(taskStoreMock)
	storeMock.On("Len").Return(0).Once()
	storeMock.On("Generate", 2).Return([]domain.Task{{ID: 1}, {ID: 2}}).Once()
	storeMock.On("Len").Return(7)

	svc := service.NewTaskService(storeMock)
	res, err := svc.GenerateTasks(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, 7, res.Total)
	assert.Len(t, res.Tasks, 2)
	storeMock.AssertExpectations(t)
}

func TestTaskService_ConcurrentCreatesKeepIDsUnique(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateTask(ctx, domain.CreateTaskInput{Name: "parallel", Priority: domain.PriorityMedium})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	res, err := svc.ListTasks(ctx, domain.FilterConfig{})
	require.NoError(t, err)
	require.Len(t, res.Visible, 50)

	seen := map[uint64]bool{}
	for _, task := range res.Visible {
		assert.False(t, seen[task.ID])
		seen[task.ID] = true
	}
}

func TestLocalizedNamer(t *testing.T) {
	translator.Translator = i18n.NewBundle(language.English)
	require.NoError(t, translator.Translator.AddMessages(language.Russian,
		&i18n.Message{ID: "generatedTaskName", Other: "Задача {{.N}}"},
		&i18n.Message{ID: "generatedTaskDescription", Other: "Описание задачи {{.N}}"},
	))
	t.Cleanup(func() { translator.Translator = nil })

	name, description := service.LocalizedNamer(translator.LanguageRu)(3)

	assert.Equal(t, "Задача 3", name)
	assert.Equal(t, "Описание задачи 3", description)
}
