package mapper

import (
	"time"

	"todolist/internal/adapter/http/dto"
	"todolist/internal/core/domain"
	"todolist/internal/core/view"
	"todolist/pkg/translator"
)

func ToTaskItems(tasks []domain.Task, lang string) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task, lang))
	}
	return items
}

func ToTaskItem(task domain.Task, lang string) dto.TaskItem {
	return dto.TaskItem{
		ID:            task.ID,
		Name:          task.Name,
		Description:   task.Description,
		Completed:     task.Completed,
		Priority:      string(task.Priority),
		PriorityLabel: PriorityLabel(task.Priority, lang),
		CreatedAt:     task.CreatedAt.Format(time.RFC3339),
		CreatedAtText: task.CreatedAtText,
	}
}

func ToTaskView(res view.Result, lang string) dto.TaskView {
	out := dto.TaskView{
		Visible:        ToTaskItems(res.Visible, lang),
		Completed:      ToTaskItems(res.Completed, lang),
		Uncompleted:    ToTaskItems(res.Uncompleted, lang),
		TotalCount:     res.TotalCount,
		CompletedCount: res.CompletedCount,
		RemainingCount: res.RemainingCount,
		Empty:          res.Empty(),
	}
	if out.Empty {
		out.EmptyMessage = translator.Translate("noResults", lang, nil)
	}
	return out
}

func ToGenerateTasksResponse(res domain.GenerateResult) dto.GenerateTasksResponse {
	return dto.GenerateTasksResponse{Generated: len(res.Tasks), Total: res.Total}
}

func ToStats(stats domain.Stats) dto.Stats {
	return dto.Stats{Total: stats.Total, Created: stats.Created}
}

func PriorityLabel(p domain.Priority, lang string) string {
	if !p.Valid() {
		return string(p)
	}
	return translator.Translate(p.MessageID(), lang, nil)
}
