package model

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// CanonicalDateLayout - каноничный формат хранения даты (без времени и таймзоны)
	CanonicalDateLayout = "2006-01-02"

	// DisplayDateLayout - формат отображения даты в представлениях
	DisplayDateLayout = "02/01/2006"
)

// Date представляет календарную дату с точностью до дня.
// Сравнение дат - календарное, не текстовое.
type Date struct {
	t time.Time
}

// NewDate создает дату из года, месяца и дня
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate разбирает дату в каноничном формате YYYY-MM-DD
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(CanonicalDateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return Date{t: t}, nil
}

// String возвращает каноничное представление даты (YYYY-MM-DD)
func (d Date) String() string {
	return d.t.Format(CanonicalDateLayout)
}

// Display возвращает отображаемое представление даты (DD/MM/YYYY)
func (d Date) Display() string {
	return d.t.Format(DisplayDateLayout)
}

// Before сообщает, наступает ли дата d раньше other
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After сообщает, наступает ли дата d позже other
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Equal сообщает, совпадают ли календарные даты
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// Compare возвращает -1, 0 или +1 при календарном сравнении с other
func (d Date) Compare(other Date) int {
	return d.t.Compare(other.t)
}

// IsZero сообщает, является ли дата нулевым значением
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// UnmarshalYAML читает дату из YAML-скаляра в каноничном формате
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}

	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// MarshalYAML записывает дату как YAML-скаляр в каноничном формате
func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}
