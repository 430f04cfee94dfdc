package view

import (
	"timeline-service/internal/model"
)

// TableFilter содержит границы фильтра по датам для табличного представления.
// Незаданная граница трактуется как минус/плюс-бесконечность.
type TableFilter struct {
	From *model.Date // Нижняя граница даты начала (включительно)
	To   *model.Date // Верхняя граница даты окончания (включительно)
}

// FilterOption функциональная опция для конфигурации фильтра
type FilterOption func(*TableFilter)

// WithDateFrom задает нижнюю границу: проходят записи с датой начала >= from
func WithDateFrom(from model.Date) FilterOption {
	return func(f *TableFilter) {
		f.From = &from
	}
}

// WithDateTo задает верхнюю границу: проходят записи с датой окончания <= to
func WithDateTo(to model.Date) FilterOption {
	return func(f *TableFilter) {
		f.To = &to
	}
}

// NewTableFilter создает новый фильтр с применением переданных опций
func NewTableFilter(opts ...FilterOption) *TableFilter {
	filter := &TableFilter{}
	for _, opt := range opts {
		opt(filter)
	}
	return filter
}

// IsEmpty проверяет, является ли фильтр пустым (обе границы не заданы)
func (f *TableFilter) IsEmpty() bool {
	return f.From == nil && f.To == nil
}

// Matches сообщает, проходит ли запись фильтр. Открытая дата окончания
// считается плюс-бесконечностью: такая запись не проходит конечную верхнюю
// границу - "действующие" записи исключаются, когда пользователь просит
// показать только завершившееся к заданной дате.
func (f *TableFilter) Matches(event model.Event) bool {
	if f.From != nil && event.StartDate.Before(*f.From) {
		return false
	}

	if f.To != nil {
		if event.EndDate == nil {
			return false
		}
		if event.EndDate.After(*f.To) {
			return false
		}
	}

	return true
}

// applyFilter возвращает записи, проходящие фильтр, в исходном порядке
func applyFilter(events []model.Event, filter *TableFilter) []model.Event {
	if filter == nil || filter.IsEmpty() {
		filtered := make([]model.Event, len(events))
		copy(filtered, events)
		return filtered
	}

	filtered := make([]model.Event, 0, len(events))
	for _, event := range events {
		if filter.Matches(event) {
			filtered = append(filtered, event)
		}
	}

	return filtered
}
