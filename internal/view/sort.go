package view

import (
	"sort"

	"timeline-service/internal/model"
)

// Column - колонка таблицы, по которой идет сортировка
type Column string

const (
	ColumnTitle     Column = "title"
	ColumnCategory  Column = "category"
	ColumnStartDate Column = "startDate"
	ColumnEndDate   Column = "endDate"
)

// Columns возвращает все сортируемые колонки в порядке отображения
func Columns() []Column {
	return []Column{ColumnTitle, ColumnCategory, ColumnStartDate, ColumnEndDate}
}

// Valid сообщает, является ли значение известной колонкой
func (c Column) Valid() bool {
	switch c {
	case ColumnTitle, ColumnCategory, ColumnStartDate, ColumnEndDate:
		return true
	}
	return false
}

// Direction - направление сортировки
type Direction int

const (
	Unsorted Direction = iota
	Ascending
	Descending
)

// SortState - состояние сортировки таблицы. Активна максимум одна колонка;
// Unsorted означает исходный порядок хранилища.
type SortState struct {
	Column    Column
	Direction Direction
}

// Toggle переключает сортировку по колонке через три состояния:
// без сортировки -> по возрастанию -> по убыванию -> без сортировки.
// Переключение на другую колонку сбрасывает предыдущую.
func (s *SortState) Toggle(column Column) {
	if s.Column != column {
		s.Column = column
		s.Direction = Ascending
		return
	}

	switch s.Direction {
	case Unsorted:
		s.Direction = Ascending
	case Ascending:
		s.Direction = Descending
	case Descending:
		s.Direction = Unsorted
	}
}

// IsActive сообщает, задана ли активная сортировка
func (s SortState) IsActive() bool {
	return s.Direction != Unsorted && s.Column != ""
}

// Marker возвращает маркер направления для заголовка колонки
func (s SortState) Marker(column Column) string {
	if s.Column != column {
		return ""
	}
	switch s.Direction {
	case Ascending:
		return " ▲"
	case Descending:
		return " ▼"
	}
	return ""
}

// lessByColumn сравнивает две записи по значению колонки.
// Текстовые колонки сравниваются с учетом регистра; даты - календарно.
// Открытая дата окончания считается плюс-бесконечностью и стоит после
// любой конкретной даты.
func lessByColumn(a, b model.Event, column Column) bool {
	switch column {
	case ColumnTitle:
		return a.Title < b.Title
	case ColumnCategory:
		return a.Category < b.Category
	case ColumnStartDate:
		return a.StartDate.Before(b.StartDate)
	case ColumnEndDate:
		switch {
		case a.EndDate == nil:
			return false
		case b.EndDate == nil:
			return true
		default:
			return a.EndDate.Before(*b.EndDate)
		}
	}
	return false
}

// applySort возвращает копию среза, стабильно отсортированную по состоянию.
// При Unsorted возвращается копия в исходном порядке.
func applySort(events []model.Event, state SortState) []model.Event {
	sorted := make([]model.Event, len(events))
	copy(sorted, events)

	if !state.IsActive() {
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if state.Direction == Descending {
			return lessByColumn(sorted[j], sorted[i], state.Column)
		}
		return lessByColumn(sorted[i], sorted[j], state.Column)
	})

	return sorted
}
