package validation

import (
	"errors"
	"strings"

	"todolist/internal/adapter/http/dto"
	"todolist/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// BuildCreateTaskInput checks the name before the priority, so an empty name is
// reported as domain.ErrEmptyName whatever else the request holds. The name is
// passed on untrimmed; the store trims it.
func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.CreateTaskInput{}, domain.ErrEmptyName
	}

	priority, err := domain.ParsePriority(req.Priority)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}

	return domain.CreateTaskInput{
		Name:        req.Name,
		Description: req.Description,
		Priority:    priority,
	}, nil
}

func BuildFilterConfig(query dto.ListTasksQuery) (domain.FilterConfig, error) {
	cfg := domain.FilterConfig{
		SearchText:    query.Search,
		HideCompleted: query.HideCompleted,
	}

	for _, raw := range query.Priorities {
		// priority=high,medium and priority=high&priority=medium are both accepted.
		for _, value := range strings.Split(raw, ",") {
			if strings.TrimSpace(value) == "" {
				continue
			}
			p, err := domain.ParsePriority(value)
			if err != nil {
				return domain.FilterConfig{}, err
			}
			if !cfg.HasPriority(p) {
				cfg.SelectedPriorities = append(cfg.SelectedPriorities, p)
			}
		}
	}

	return cfg, nil
}

func ResolveGenerateCount(req dto.GenerateTasksRequest, fallback int) (int, error) {
	if req.Count == nil {
		return fallback, nil
	}
	if *req.Count <= 0 {
		return 0, ErrInvalidTaskPayload
	}
	return *req.Count, nil
}
