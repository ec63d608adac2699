package dto

type TaskItem struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Completed     bool   `json:"completed"`
	Priority      string `json:"priority"`
	PriorityLabel string `json:"priority_label"`
	CreatedAt     string `json:"created_at"`
	CreatedAtText string `json:"created_at_text"`
}

type TaskView struct {
	Visible        []TaskItem `json:"visible"`
	Completed      []TaskItem `json:"completed"`
	Uncompleted    []TaskItem `json:"uncompleted"`
	TotalCount     int        `json:"total_count"`
	CompletedCount int        `json:"completed_count"`
	RemainingCount int        `json:"remaining_count"`
	Empty          bool       `json:"empty"`
	EmptyMessage   string     `json:"empty_message,omitempty"`
}

type CreateTaskRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type UpdateTaskRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

type GenerateTasksRequest struct {
	Count *int `json:"count" binding:"omitempty,gt=0,lte=100000"`
}

type GenerateTasksResponse struct {
	Generated int `json:"generated"`
	Total     int `json:"total"`
}

type Stats struct {
	Total   int `json:"total"`
	Created int `json:"created"`
}

type ListTasksQuery struct {
	Search        string   `form:"search"`
	HideCompleted bool     `form:"hide_completed"`
	Priorities    []string `form:"priority"`
}
