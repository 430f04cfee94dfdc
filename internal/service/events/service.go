package events

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"timeline-service/internal/model"
	"timeline-service/internal/repository"
	"timeline-service/internal/repository/memory"
	svc "timeline-service/internal/service"

	"github.com/go-playground/validator/v10"
)

// Ошибки валидации. Все они локально восстановимы: при отказе хранилище
// не меняется, и повтор с теми же значениями дает тот же отказ.
var (
	// ErrInvalidDate - дата передана, но не разбирается как YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date format")

	// ErrInvalidDateRange - дата начала позже даты окончания
	ErrInvalidDateRange = errors.New("start date cannot be later than end date")

	// ErrMissingRequiredFields - не заполнены название или дата начала
	ErrMissingRequiredFields = errors.New("title and start date are required")

	// ErrInvalidCategory - категория вне закрытого набора значений
	ErrInvalidCategory = errors.New("category is not in the allowed set")
)

var _ svc.EventService = (*service)(nil)

type service struct {
	eventRepository repository.EventRepository
	notifier        *Notifier
	validate        *validator.Validate
}

// NewEventService создает новый экземпляр сервиса записей каталога.
// notifier может быть nil, если уведомления об изменениях не нужны.
func NewEventService(eventRepository repository.EventRepository, notifier *Notifier) svc.EventService {
	return &service{
		eventRepository: eventRepository,
		notifier:        notifier,
		validate:        validator.New(),
	}
}

// normalize применяет правила валидации в контрактном порядке и собирает
// нормализованную запись для хранилища:
//  1. диапазон дат (проверяется ПЕРВЫМ: заявка, нарушающая оба правила,
//     получает отказ именно по диапазону)
//  2. обязательные поля (название и дата начала)
//  3. категория по закрытому набору
//
// Отсутствующая дата окончания нормализуется в nil (открытый диапазон),
// никогда - в дату по умолчанию.
func (s *service) normalize(params svc.EventParams) (model.Event, error) {
	var (
		startDate model.Date
		endDate   *model.Date
		hasStart  bool
	)

	if raw := strings.TrimSpace(params.StartDate); raw != "" {
		parsed, err := model.ParseDate(raw)
		if err != nil {
			return model.Event{}, fmt.Errorf("start date %q: %w", raw, ErrInvalidDate)
		}
		startDate = parsed
		hasStart = true
	}

	if raw := strings.TrimSpace(params.EndDate); raw != "" {
		parsed, err := model.ParseDate(raw)
		if err != nil {
			return model.Event{}, fmt.Errorf("end date %q: %w", raw, ErrInvalidDate)
		}
		endDate = &parsed
	}

	// Правило 1: порядок дат
	if hasStart && endDate != nil && startDate.After(*endDate) {
		return model.Event{}, ErrInvalidDateRange
	}

	// Правило 2: обязательные поля
	title := strings.TrimSpace(params.Title)
	if title == "" || !hasStart {
		return model.Event{}, ErrMissingRequiredFields
	}

	// Правило 3: категория из закрытого набора
	if err := s.validate.Struct(params); err != nil {
		return model.Event{}, fmt.Errorf("category %q: %w", params.Category, ErrInvalidCategory)
	}

	return model.Event{
		Title:       title,
		Description: strings.TrimSpace(params.Description),
		Category:    model.Category(params.Category),
		StartDate:   startDate,
		EndDate:     endDate,
		Image:       params.Image,
	}, nil
}

// Add валидирует поля, нормализует даты и добавляет новую запись
func (s *service) Add(ctx context.Context, params svc.EventParams) (model.Event, error) {
	event, err := s.normalize(params)
	if err != nil {
		return model.Event{}, err
	}

	createdEvent, err := s.eventRepository.Create(ctx, event)
	if err != nil {
		return model.Event{}, err
	}

	s.publish(ChangeCreated, createdEvent)

	return createdEvent, nil
}

// Edit целиком заменяет запись с указанным ID новыми значениями полей.
// ID сохраняется; частичных обновлений нет - запись принимает ровно те
// значения, которые были отправлены. Отсутствующий ID возвращает
// memory.ErrEventNotFound.
func (s *service) Edit(ctx context.Context, id string, params svc.EventParams) (model.Event, error) {
	if id == "" {
		return model.Event{}, errors.New("id cannot be empty")
	}

	event, err := s.normalize(params)
	if err != nil {
		return model.Event{}, err
	}

	event.ID = id

	updatedEvent, err := s.eventRepository.Update(ctx, event)
	if err != nil {
		return model.Event{}, err
	}

	s.publish(ChangeUpdated, updatedEvent)

	return updatedEvent, nil
}

// Delete удаляет запись по ID. Отсутствующий ID - тихий no-op: при обычной
// работе представлений ID приходят из самого хранилища, поэтому такой
// случай не показывается пользователю как ошибка.
func (s *service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	deleted, err := s.eventRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, memory.ErrEventNotFound) {
			return nil
		}
		return err
	}

	if err := s.eventRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, memory.ErrEventNotFound) {
			return nil
		}
		return err
	}

	s.publish(ChangeDeleted, deleted)

	return nil
}

// Get возвращает запись по её ID
func (s *service) Get(ctx context.Context, id string) (model.Event, error) {
	if id == "" {
		return model.Event{}, errors.New("id cannot be empty")
	}

	event, err := s.eventRepository.GetByID(ctx, id)
	if err != nil {
		return model.Event{}, err
	}

	return event, nil
}

// List возвращает все записи в порядке вставки
func (s *service) List(ctx context.Context) ([]model.Event, error) {
	events, err := s.eventRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	return events, nil
}

func (s *service) publish(changeType ChangeType, event model.Event) {
	if s.notifier != nil {
		s.notifier.Publish(Change{Type: changeType, Event: event})
	}
}
