package memory

import (
	"context"
	"errors"
	"sync"

	"timeline-service/internal/model"
	"timeline-service/internal/repository"

	"github.com/google/uuid"
)

// ErrEventNotFound возвращается, когда запись не найдена
var ErrEventNotFound = errors.New("event not found")

var _ repository.EventRepository = (*repo)(nil)

// repo хранит записи в map для поиска по ID и отдельно порядок вставки,
// потому что представления требуют стабильного исходного порядка.
type repo struct {
	mu     sync.RWMutex
	events map[string]model.Event
	order  []string
}

// NewRepository создает новый экземпляр in-memory репозитория
func NewRepository() repository.EventRepository {
	return &repo{
		events: make(map[string]model.Event),
	}
}

// Create добавляет новую запись и возвращает её с назначенным ID
func (r *repo) Create(ctx context.Context, event model.Event) (model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Генерируем UUID если не передан
	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	if _, exists := r.events[event.ID]; exists {
		return model.Event{}, errors.New("event id already exists")
	}

	r.events[event.ID] = event
	r.order = append(r.order, event.ID)

	return event, nil
}

// GetByID возвращает запись по её ID
func (r *repo) GetByID(ctx context.Context, id string) (model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	event, exists := r.events[id]
	if !exists {
		return model.Event{}, ErrEventNotFound
	}

	return event, nil
}

// List возвращает снимок всех записей в порядке вставки
func (r *repo) List(ctx context.Context) ([]model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]model.Event, 0, len(r.order))
	for _, id := range r.order {
		events = append(events, r.events[id])
	}

	return events, nil
}

// Update целиком заменяет существующую запись с тем же ID.
// Позиция записи в порядке вставки не меняется.
func (r *repo) Update(ctx context.Context, event model.Event) (model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.events[event.ID]; !exists {
		return model.Event{}, ErrEventNotFound
	}

	r.events[event.ID] = event

	return event, nil
}

// Delete удаляет запись по ID
func (r *repo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.events[id]; !exists {
		return ErrEventNotFound
	}

	delete(r.events, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}
