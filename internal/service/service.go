package service

import (
	"context"

	"timeline-service/internal/model"
)

// EventParams содержит сырые значения полей формы добавления/редактирования.
// Даты приходят строками в формате YYYY-MM-DD; пустая строка означает
// отсутствие значения. Category проверяется по закрытому набору значений.
type EventParams struct {
	Title       string
	Description string
	Category    string `validate:"required,oneof=Pop Jazz Folk Rock Hip-hop Classical"`
	StartDate   string
	EndDate     string
	Image       string
}

// EventService интерфейс бизнес-логики жизненного цикла записей каталога.
// Add и Edit применяют одни и те же правила валидации и нормализации.
type EventService interface {
	// Add валидирует поля, нормализует даты и добавляет новую запись
	Add(ctx context.Context, params EventParams) (model.Event, error)

	// Edit целиком заменяет запись с указанным ID новыми значениями полей
	Edit(ctx context.Context, id string, params EventParams) (model.Event, error)

	// Delete удаляет запись по ID; отсутствующий ID не является ошибкой
	Delete(ctx context.Context, id string) error

	// Get возвращает запись по её ID
	Get(ctx context.Context, id string) (model.Event, error)

	// List возвращает все записи в порядке вставки
	List(ctx context.Context) ([]model.Event, error)
}
