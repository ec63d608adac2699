package service

import (
	"todolist/internal/core/store"
	"todolist/pkg/translator"
)

// LocalizedNamer names generated tasks in lang ("Задача 1" / "Описание задачи 1" for ru).
func LocalizedNamer(lang string) store.Namer {
	return func(n int) (string, string) {
		data := map[string]any{"N": n}
		return translator.Translate("generatedTaskName", lang, data),
			translator.Translate("generatedTaskDescription", lang, data)
	}
}
