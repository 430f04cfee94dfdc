// Package view реализует проекции над коллекцией записей каталога:
// хронологическую ленту и таблицу с фильтром и сортировкой.
//
// Все проекции чистые: входной срез не изменяется, результат вычисляется
// заново при каждом вызове и нигде не кэшируется. За этими функциями можно
// позже спрятать кэширующий слой, не трогая вызывающий код.
package view

import (
	"sort"

	"timeline-service/internal/model"
)

// Chronological возвращает все записи, отсортированные по возрастанию даты
// начала. Сортировка стабильная: записи с одинаковой датой начала сохраняют
// исходный порядок хранилища. Дата окончания на порядок не влияет,
// фильтрация не применяется.
func Chronological(events []model.Event) []model.Event {
	sorted := make([]model.Event, len(events))
	copy(sorted, events)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate.Before(sorted[j].StartDate)
	})

	return sorted
}

// Table возвращает записи для табличного представления: сначала фильтр по
// границам дат, затем стабильная сортировка по активной колонке.
func Table(events []model.Event, filter *TableFilter, state SortState) []model.Event {
	return applySort(applyFilter(events, filter), state)
}
