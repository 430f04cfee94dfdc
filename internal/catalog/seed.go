// Package catalog загружает стартовый набор записей каталога.
// Набор фиксирован на время жизни процесса: хранилище не персистентно
// и при перезапуске заполняется заново.
package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"timeline-service/internal/model"
	"timeline-service/internal/repository"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var embeddedSeed []byte

// seedFile - структура YAML-файла с начальными записями
type seedFile struct {
	Events []seedRecord `yaml:"events"`
}

// seedRecord - одна запись начального набора
type seedRecord struct {
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	Category    string      `yaml:"category"`
	StartDate   model.Date  `yaml:"start_date"`
	EndDate     *model.Date `yaml:"end_date"`
	Image       string      `yaml:"image"`
}

// Load читает начальный набор записей. Пустой path означает встроенный
// набор; иначе читается указанный YAML-файл. Порядок записей в файле
// становится порядком вставки в хранилище.
func Load(path string) ([]model.Event, error) {
	data := embeddedSeed
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		data = fileData
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal seed: %w", err)
	}

	events := make([]model.Event, 0, len(file.Events))
	for i, record := range file.Events {
		event := model.Event{
			Title:       record.Title,
			Description: record.Description,
			Category:    model.Category(record.Category),
			StartDate:   record.StartDate,
			EndDate:     record.EndDate,
			Image:       record.Image,
		}

		if err := event.Validate(); err != nil {
			return nil, fmt.Errorf("seed record %d (%q): %w", i, record.Title, err)
		}

		events = append(events, event)
	}

	return events, nil
}

// Populate добавляет записи набора в хранилище в порядке следования
func Populate(ctx context.Context, eventRepository repository.EventRepository, events []model.Event) error {
	for _, event := range events {
		if _, err := eventRepository.Create(ctx, event); err != nil {
			return fmt.Errorf("seed event %q: %w", event.Title, err)
		}
	}
	return nil
}
