package tests

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	httpadapter "todolist/internal/adapter/http"
	"todolist/internal/adapter/http/handlers"
	appservice "todolist/internal/app/service"
	"todolist/internal/core/store"
	"todolist/pkg/clock"
	"todolist/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

const translationFolder = "../../../../pkg/translator/translation"

// APISuiteBase wires the real router to a fresh in-memory service for every test.
type APISuiteBase struct {
	suite.Suite

	Clock   *clock.FakeClock
	Service *appservice.TaskService
	router  *gin.Engine
}

func (s *APISuiteBase) SetupSuite() {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: []string{translator.LanguageRu, translator.LanguageEn},
	})
}

func (s *APISuiteBase) SetupTest() {
	s.Clock = clock.NewFakeClock(time.Date(2026, 2, 13, 10, 20, 30, 0, time.UTC))
	taskStore := store.New(
		store.WithClock(s.Clock),
		store.WithFormatter(clock.NewFormatter(translator.LanguageRu)),
		store.WithNamer(appservice.LocalizedNamer(translator.LanguageRu)),
	)
	s.Service = appservice.NewTaskService(taskStore)

	router := gin.New()
	httpadapter.RegisterRoutes(router,
		handlers.NewHealthHandler(s.Service),
		handlers.NewTaskHandler(s.Service, 1000),
	)
	s.router = router
}

func (s *APISuiteBase) Do(method, target, body string) *httptest.ResponseRecorder {
	return s.DoLang(method, target, body, translator.LanguageEn)
}

func (s *APISuiteBase) DoLang(method, target, body, lang string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if lang != "" {
		req.Header.Set("Accept-Language", lang)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}
