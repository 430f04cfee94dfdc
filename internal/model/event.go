package model

import (
	"errors"
	"strings"
)

// Category - категория события из закрытого набора значений.
// Представления не должны вводить значения вне этого набора.
type Category string

const (
	CategoryPop       Category = "Pop"
	CategoryJazz      Category = "Jazz"
	CategoryFolk      Category = "Folk"
	CategoryRock      Category = "Rock"
	CategoryHipHop    Category = "Hip-hop"
	CategoryClassical Category = "Classical"
)

// Categories возвращает все допустимые категории в фиксированном порядке
func Categories() []Category {
	return []Category{
		CategoryPop,
		CategoryJazz,
		CategoryFolk,
		CategoryRock,
		CategoryHipHop,
		CategoryClassical,
	}
}

// Valid сообщает, входит ли категория в закрытый набор
func (c Category) Valid() bool {
	switch c {
	case CategoryPop, CategoryJazz, CategoryFolk, CategoryRock, CategoryHipHop, CategoryClassical:
		return true
	}
	return false
}

// Event представляет запись каталога (доменная модель):
// музыканта или группу с диапазоном дат, категорией, описанием и изображением.
type Event struct {
	ID          string   // UUID записи, назначается хранилищем и не меняется
	Title       string   // Название (обязательное поле)
	Description string   // Описание (опциональное)
	Category    Category // Категория из закрытого набора
	StartDate   Date     // Дата начала (обязательное поле)
	EndDate     *Date    // Дата окончания; nil означает открытый диапазон ("Present")
	Image       string   // Data-URL или ссылка на файл изображения (опциональное)
}

// Validate проверяет инварианты записи
func (e *Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return errors.New("title cannot be empty")
	}
	if !e.Category.Valid() {
		return errors.New("category is not in the allowed set")
	}
	if e.StartDate.IsZero() {
		return errors.New("start date is required")
	}
	if e.EndDate != nil && e.StartDate.After(*e.EndDate) {
		return errors.New("start date cannot be later than end date")
	}
	return nil
}

// IsOpenEnded сообщает, является ли диапазон записи открытым
func (e *Event) IsOpenEnded() bool {
	return e.EndDate == nil
}

// IsEmpty проверяет, пуста ли запись
func (e *Event) IsEmpty() bool {
	return e.ID == "" && e.Title == "" && e.StartDate.IsZero()
}
