package converter

import (
	"timeline-service/internal/model"
)

// PresentLabel - отображаемый текст для открытой даты окончания
const PresentLabel = "Present"

// Row - запись каталога с производными полями отображения.
// Производные поля вычисляются заново при каждом чтении и никогда не
// записываются обратно в хранилище.
type Row struct {
	model.Event

	StartDateFormatted string // Дата начала в формате DD/MM/YYYY
	EndDateFormatted   string // Дата окончания в формате DD/MM/YYYY или "Present"
}

// ToRow конвертирует доменную модель в строку представления
func ToRow(event model.Event) Row {
	endFormatted := PresentLabel
	if event.EndDate != nil {
		endFormatted = event.EndDate.Display()
	}

	return Row{
		Event:              event,
		StartDateFormatted: event.StartDate.Display(),
		EndDateFormatted:   endFormatted,
	}
}

// ToRows конвертирует срез доменных моделей в строки представления
func ToRows(events []model.Event) []Row {
	if events == nil {
		return nil
	}

	rows := make([]Row, len(events))
	for i, event := range events {
		rows[i] = ToRow(event)
	}

	return rows
}
