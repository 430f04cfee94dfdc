package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeline-service/internal/model"
)

func makeEvent(title string, category model.Category, start model.Date, end *model.Date) model.Event {
	return model.Event{
		ID:        title,
		Title:     title,
		Category:  category,
		StartDate: start,
		EndDate:   end,
	}
}

func datePtr(year int, month time.Month, day int) *model.Date {
	d := model.NewDate(year, month, day)
	return &d
}

func sampleEvents() []model.Event {
	// Порядок вставки: Nirvana, Queen, Miles Davis, Daft Punk
	return []model.Event{
		makeEvent("Nirvana", model.CategoryRock, model.NewDate(1987, time.January, 1), datePtr(1994, time.April, 5)),
		makeEvent("Queen", model.CategoryRock, model.NewDate(1970, time.June, 27), nil),
		makeEvent("Miles Davis", model.CategoryJazz, model.NewDate(1926, time.May, 26), datePtr(1991, time.September, 28)),
		makeEvent("Daft Punk", model.CategoryPop, model.NewDate(1993, time.January, 1), datePtr(2021, time.February, 22)),
	}
}

func titles(events []model.Event) []string {
	result := make([]string, len(events))
	for i, event := range events {
		result[i] = event.Title
	}
	return result
}

func TestChronological(t *testing.T) {
	events := sampleEvents()

	sorted := Chronological(events)

	assert.Equal(t, []string{"Miles Davis", "Queen", "Nirvana", "Daft Punk"}, titles(sorted))
	// Вход не изменяется
	assert.Equal(t, "Nirvana", events[0].Title)
}

func TestChronological_StableOnEqualStartDates(t *testing.T) {
	start := model.NewDate(1970, time.January, 1)
	events := []model.Event{
		makeEvent("First", model.CategoryRock, start, nil),
		makeEvent("Second", model.CategoryRock, start, nil),
		makeEvent("Third", model.CategoryRock, start, nil),
	}

	sorted := Chronological(events)

	// Одинаковые даты начала сохраняют порядок хранилища
	assert.Equal(t, []string{"First", "Second", "Third"}, titles(sorted))
}

func TestTable_Unfiltered(t *testing.T) {
	events := sampleEvents()

	rows := Table(events, nil, SortState{})

	// Без фильтра и сортировки - исходный порядок хранилища
	assert.Equal(t, titles(events), titles(rows))
}

func TestTable_SortByTitle(t *testing.T) {
	events := sampleEvents()

	rows := Table(events, nil, SortState{Column: ColumnTitle, Direction: Ascending})
	assert.Equal(t, []string{"Daft Punk", "Miles Davis", "Nirvana", "Queen"}, titles(rows))

	rows = Table(events, nil, SortState{Column: ColumnTitle, Direction: Descending})
	assert.Equal(t, []string{"Queen", "Nirvana", "Miles Davis", "Daft Punk"}, titles(rows))
}

func TestTable_SortByEndDate_OpenEndedLast(t *testing.T) {
	events := sampleEvents()

	rows := Table(events, nil, SortState{Column: ColumnEndDate, Direction: Ascending})

	// Открытая дата окончания трактуется как плюс-бесконечность
	assert.Equal(t, []string{"Miles Davis", "Nirvana", "Daft Punk", "Queen"}, titles(rows))

	rows = Table(events, nil, SortState{Column: ColumnEndDate, Direction: Descending})
	assert.Equal(t, "Queen", rows[0].Title)
}

func TestTable_SortStable(t *testing.T) {
	events := []model.Event{
		makeEvent("Beatles", model.CategoryRock, model.NewDate(1960, time.August, 1), nil),
		makeEvent("Armstrong", model.CategoryJazz, model.NewDate(1920, time.January, 1), nil),
		makeEvent("Zeppelin", model.CategoryRock, model.NewDate(1968, time.September, 25), nil),
	}

	rows := Table(events, nil, SortState{Column: ColumnCategory, Direction: Ascending})

	// Внутри одинаковой категории сохраняется порядок хранилища
	assert.Equal(t, []string{"Armstrong", "Beatles", "Zeppelin"}, titles(rows))
}

func TestTable_FilterFrom(t *testing.T) {
	events := sampleEvents()

	filter := NewTableFilter(WithDateFrom(model.NewDate(1970, time.January, 1)))
	rows := Table(events, filter, SortState{})

	assert.Equal(t, []string{"Nirvana", "Queen", "Daft Punk"}, titles(rows))
}

func TestTable_FilterTo_ExcludesOpenEnded(t *testing.T) {
	events := sampleEvents()

	// Верхняя граница задана: открытая запись (Queen) не проходит,
	// даже если ее дата начала попадает в диапазон
	filter := NewTableFilter(WithDateTo(model.NewDate(2000, time.January, 1)))
	rows := Table(events, filter, SortState{})

	assert.Equal(t, []string{"Nirvana", "Miles Davis"}, titles(rows))
}

func TestTable_FilterBoundsInclusive(t *testing.T) {
	events := sampleEvents()

	filter := NewTableFilter(
		WithDateFrom(model.NewDate(1926, time.May, 26)),
		WithDateTo(model.NewDate(1991, time.September, 28)),
	)
	rows := Table(events, filter, SortState{})

	// Границы включительные: Miles Davis совпадает с обеими
	assert.Equal(t, []string{"Miles Davis"}, titles(rows))
}

func TestTable_EmptyFilterPassesAll(t *testing.T) {
	events := sampleEvents()

	filter := NewTableFilter()
	require.True(t, filter.IsEmpty())

	rows := Table(events, filter, SortState{})
	assert.Len(t, rows, len(events))
}

func TestTable_FilterThenSort(t *testing.T) {
	events := sampleEvents()

	filter := NewTableFilter(WithDateTo(model.NewDate(2025, time.January, 1)))
	rows := Table(events, filter, SortState{Column: ColumnTitle, Direction: Ascending})

	assert.Equal(t, []string{"Daft Punk", "Miles Davis", "Nirvana"}, titles(rows))
}

func TestSortState_ToggleCycle(t *testing.T) {
	state := SortState{}

	state.Toggle(ColumnTitle)
	assert.Equal(t, SortState{Column: ColumnTitle, Direction: Ascending}, state)

	state.Toggle(ColumnTitle)
	assert.Equal(t, SortState{Column: ColumnTitle, Direction: Descending}, state)

	// Третий щелчок возвращает исходный порядок хранилища
	state.Toggle(ColumnTitle)
	assert.Equal(t, Unsorted, state.Direction)
	assert.False(t, state.IsActive())
}

func TestSortState_ToggleSwitchesColumn(t *testing.T) {
	state := SortState{Column: ColumnTitle, Direction: Descending}

	// Переход на другую колонку сбрасывает предыдущую и начинает с возрастания
	state.Toggle(ColumnStartDate)
	assert.Equal(t, SortState{Column: ColumnStartDate, Direction: Ascending}, state)
}

func TestSortState_Marker(t *testing.T) {
	state := SortState{Column: ColumnTitle, Direction: Ascending}

	assert.Equal(t, " ▲", state.Marker(ColumnTitle))
	assert.Equal(t, "", state.Marker(ColumnCategory))

	state.Direction = Descending
	assert.Equal(t, " ▼", state.Marker(ColumnTitle))
}

func TestColumn_Valid(t *testing.T) {
	for _, column := range Columns() {
		assert.True(t, column.Valid(), "column %q", column)
	}
	assert.False(t, Column("description").Valid())
}
