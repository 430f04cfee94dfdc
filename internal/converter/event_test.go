package converter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"timeline-service/internal/model"
)

func TestToRow_FormatsDates(t *testing.T) {
	end := model.NewDate(1991, time.September, 28)
	event := model.Event{
		ID:        "test-id",
		Title:     "Miles Davis",
		Category:  model.CategoryJazz,
		StartDate: model.NewDate(1926, time.May, 26),
		EndDate:   &end,
	}

	row := ToRow(event)

	assert.Equal(t, "26/05/1926", row.StartDateFormatted)
	assert.Equal(t, "28/09/1991", row.EndDateFormatted)
	// Исходная запись доступна целиком
	assert.Equal(t, "Miles Davis", row.Title)
	assert.Equal(t, "test-id", row.ID)
}

func TestToRow_OpenEndedShowsPresent(t *testing.T) {
	event := model.Event{
		Title:     "Queen",
		Category:  model.CategoryRock,
		StartDate: model.NewDate(1970, time.June, 27),
	}

	row := ToRow(event)

	assert.Equal(t, "27/06/1970", row.StartDateFormatted)
	assert.Equal(t, PresentLabel, row.EndDateFormatted)
}

func TestToRows(t *testing.T) {
	events := []model.Event{
		{Title: "First", StartDate: model.NewDate(1970, time.January, 1)},
		{Title: "Second", StartDate: model.NewDate(1980, time.January, 1)},
	}

	rows := ToRows(events)

	assert.Len(t, rows, 2)
	assert.Equal(t, "First", rows[0].Title)
	assert.Equal(t, "Second", rows[1].Title)

	assert.Nil(t, ToRows(nil))
}
