package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeline-service/internal/model"
	"timeline-service/internal/repository/memory"
)

func TestLoad_Embedded(t *testing.T) {
	events, err := Load("")
	require.NoError(t, err)

	assert.Len(t, events, 13)

	// Порядок файла - порядок вставки
	assert.Equal(t, "Dua Lipa", events[0].Title)
	assert.Equal(t, "Claude Debussy", events[len(events)-1].Title)

	for _, event := range events {
		assert.NoError(t, event.Validate(), "event %q", event.Title)
	}
}

func TestLoad_OpenEndedRecords(t *testing.T) {
	events, err := Load("")
	require.NoError(t, err)

	byTitle := make(map[string]model.Event, len(events))
	for _, event := range events {
		byTitle[event.Title] = event
	}

	// Действующие исполнители - без даты окончания
	assert.Nil(t, byTitle["Dua Lipa"].EndDate)
	assert.Nil(t, byTitle["Ed Sheeran"].EndDate)

	// Завершившиеся - с конкретной датой
	require.NotNil(t, byTitle["Miles Davis"].EndDate)
	assert.Equal(t, "1991-09-28", byTitle["Miles Davis"].EndDate.String())
}

func TestLoad_CustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := `events:
  - title: Test Artist
    category: Jazz
    start_date: "1950-01-01"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	events, err := Load(path)
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, "Test Artist", events[0].Title)
	assert.Equal(t, model.CategoryJazz, events[0].Category)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := `events:
  - title: Broken
    category: Metal
    start_date: "1950-01-01"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestPopulate_KeepsOrder(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()

	events, err := Load("")
	require.NoError(t, err)
	require.NoError(t, Populate(ctx, repo, events))

	listed, err := repo.List(ctx)
	require.NoError(t, err)

	require.Len(t, listed, len(events))
	for i, event := range events {
		assert.Equal(t, event.Title, listed[i].Title)
	}
}
