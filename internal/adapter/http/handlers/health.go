package handlers

import (
	"context"
	"os"
	"time"

	"todolist/internal/adapter/http/middleware"
	"todolist/internal/core/ports"

	"github.com/gin-gonic/gin"
)

const (
	StatusOk            = "ok"
	StatusDown          = "down"
	healthStoreTimeout  = 2 * time.Second
	healthSystemTimeFmt = "2006-01-02 15:04:05"
)

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Store string `json:"store"`
}

type HealthStore struct {
	Total   int `json:"total"`
	Created int `json:"created"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	Status            HealthServices `json:"status"`
	Tasks             *HealthStore   `json:"tasks,omitempty"`
}

type HealthHandler struct {
	taskService ports.TaskService
}

func NewHealthHandler(taskService ports.TaskService) *HealthHandler {
	return &HealthHandler{taskService: taskService}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := 200
	message := StatusOk

	if _, ok := h.readStore(c.Request.Context()); !ok {
		statusCode = 500
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        AppVersion(),
		CurrentSystemTime: time.Now().Format(healthSystemTimeFmt),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	report := HealthAdvanced{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        AppVersion(),
		CurrentSystemTime: time.Now().Format(healthSystemTimeFmt),
		Language:          middleware.GetLang(c),
		Status:            HealthServices{Store: StatusDown},
	}

	if stats, ok := h.readStore(c.Request.Context()); ok {
		report.Status.Store = StatusOk
		report.Tasks = stats
	}

	c.JSON(200, report)
}

func (h *HealthHandler) readStore(ctx context.Context) (*HealthStore, bool) {
	if h.taskService == nil {
		return nil, false
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, healthStoreTimeout)
	defer cancel()

	stats, err := h.taskService.Stats(timeoutCtx)
	if err != nil {
		return nil, false
	}
	return &HealthStore{Total: stats.Total, Created: stats.Created}, true
}

func AppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
