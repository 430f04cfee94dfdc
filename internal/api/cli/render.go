package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"timeline-service/internal/converter"
	"timeline-service/internal/view"
)

// RenderTimeline печатает вертикальную хронологическую ленту.
// Записи приходят уже отсортированными проекцией view.Chronological.
func RenderTimeline(w io.Writer, rows []converter.Row) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "The catalog is empty.")
		return
	}

	for i, row := range rows {
		fmt.Fprintf(w, "%3d. %s - %s\n", i+1, row.StartDateFormatted, row.EndDateFormatted)
		fmt.Fprintf(w, "     %s [%s]\n", row.Title, row.Category)
		if row.Description != "" {
			fmt.Fprintf(w, "     %s\n", row.Description)
		}
		if row.Image != "" {
			fmt.Fprintf(w, "     image: %s\n", imageSummary(row.Image))
		}
		fmt.Fprintln(w)
	}
}

// RenderTable печатает табличное представление с маркерами сортировки
// в заголовках активной колонки.
func RenderTable(w io.Writer, rows []converter.Row, state view.SortState) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "#\tTitle%s\tCategory%s\tStart Date%s\tEnd Date%s\n",
		state.Marker(view.ColumnTitle),
		state.Marker(view.ColumnCategory),
		state.Marker(view.ColumnStartDate),
		state.Marker(view.ColumnEndDate),
	)

	for i, row := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			i+1, row.Title, row.Category, row.StartDateFormatted, row.EndDateFormatted)
	}

	tw.Flush()

	if len(rows) == 0 {
		fmt.Fprintln(w, "No events match the current filters.")
	}
}

// imageSummary сокращает data-URL до читаемой пометки; ссылки на файлы
// печатаются как есть.
func imageSummary(image string) string {
	const maxShown = 48
	if len(image) > maxShown {
		return fmt.Sprintf("%s... (%d bytes)", image[:maxShown], len(image))
	}
	return image
}
