package repository

import (
	"context"

	"timeline-service/internal/model"
)

// EventRepository интерфейс для работы с записями каталога в хранилище.
// Хранилище сохраняет порядок вставки: List всегда возвращает записи в том
// порядке, в котором они были добавлены. Порядок отображения вычисляется
// представлениями заново при каждом чтении и в хранилище не попадает.
type EventRepository interface {
	// Create добавляет новую запись и возвращает её с назначенным ID
	Create(ctx context.Context, event model.Event) (model.Event, error)

	// GetByID возвращает запись по её ID
	GetByID(ctx context.Context, id string) (model.Event, error)

	// List возвращает снимок всех записей в порядке вставки
	List(ctx context.Context) ([]model.Event, error)

	// Update целиком заменяет существующую запись с тем же ID
	Update(ctx context.Context, event model.Event) (model.Event, error)

	// Delete удаляет запись по ID
	Delete(ctx context.Context, id string) error
}
