package domain

import (
	"slices"
	"strings"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every priority in display order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Russian form labels, accepted on input alongside the wire codes.
var priorityLabelsRu = map[string]Priority{
	"не срочно": PriorityLow,
	"средне":    PriorityMedium,
	"срочно":    PriorityHigh,
}

func (p Priority) Valid() bool {
	return slices.Contains(Priorities, p)
}

// MessageID is the translation key of the priority label.
func (p Priority) MessageID() string {
	switch p {
	case PriorityHigh:
		return "priorityHigh"
	case PriorityMedium:
		return "priorityMedium"
	default:
		return "priorityLow"
	}
}

// ParsePriority accepts a wire code or a Russian label. Empty input means the form default.
func ParsePriority(value string) (Priority, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return PriorityLow, nil
	}
	if p := Priority(value); p.Valid() {
		return p, nil
	}
	if p, ok := priorityLabelsRu[value]; ok {
		return p, nil
	}
	return "", ErrInvalidPriority
}

type Task struct {
	ID            uint64
	Name          string
	Description   string
	Completed     bool
	CreatedAt     time.Time
	CreatedAtText string
	Priority      Priority
}

type CreateTaskInput struct {
	Name        string
	Description string
	Priority    Priority
}

type Stats struct {
	// Total is the live collection size.
	Total int
	// Created counts successful adds over the process lifetime. Deletes never lower it.
	Created int
}

// GenerateResult is a generated batch together with the collection size right after it.
type GenerateResult struct {
	Tasks []Task
	Total int
}

// FilterConfig is view-layer state consumed by view.Derive.
// Zero value shows everything.
type FilterConfig struct {
	SearchText         string
	HideCompleted      bool
	SelectedPriorities []Priority
}

func (c FilterConfig) HasPriority(p Priority) bool {
	return slices.Contains(c.SelectedPriorities, p)
}

// TogglePriority selects p if it is not selected yet and deselects it otherwise.
func (c *FilterConfig) TogglePriority(p Priority) {
	if c.HasPriority(p) {
		c.SelectedPriorities = slices.DeleteFunc(slices.Clone(c.SelectedPriorities), func(s Priority) bool {
			return s == p
		})
		return
	}
	c.SelectedPriorities = append(slices.Clone(c.SelectedPriorities), p)
}
