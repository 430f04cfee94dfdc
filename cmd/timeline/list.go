package main

import (
	"context"
	"fmt"

	"timeline-service/internal/api/cli"
	"timeline-service/internal/converter"
	"timeline-service/internal/model"
	"timeline-service/internal/view"

	"github.com/spf13/cobra"
)

var listFlags struct {
	view  string
	sort  string
	order string
	from  string
	to    string
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Render the catalog once and exit",
	Long: `Render the catalog once and exit.

Examples:
  timeline list
  timeline list --view table --sort endDate --order desc
  timeline list --view table --from 1900-01-01 --to 1950-01-01`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listFlags.view, "view", cli.ViewTimeline, "view to render: timeline or table")
	listCmd.Flags().StringVar(&listFlags.sort, "sort", "", "table sort column: title, category, startDate or endDate")
	listCmd.Flags().StringVar(&listFlags.order, "order", "asc", "sort order: asc or desc")
	listCmd.Flags().StringVar(&listFlags.from, "from", "", "only events starting on or after this date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listFlags.to, "to", "", "only events ended on or before this date (YYYY-MM-DD)")

	rootCmd.AddCommand(listCmd)
}

// runList печатает одно представление каталога без интерактивной сессии
func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	eventService, _, err := buildService(ctx, cfg)
	if err != nil {
		return err
	}

	allEvents, err := eventService.List(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if listFlags.view == cli.ViewTimeline {
		cli.RenderTimeline(out, converter.ToRows(view.Chronological(allEvents)))
		return nil
	}

	if listFlags.view != cli.ViewTable {
		return fmt.Errorf("unknown view %q", listFlags.view)
	}

	sortState, err := parseSortFlags()
	if err != nil {
		return err
	}

	filter, err := parseFilterFlags()
	if err != nil {
		return err
	}

	visible := view.Table(allEvents, filter, sortState)
	cli.RenderTable(out, converter.ToRows(visible), sortState)
	return nil
}

func parseSortFlags() (view.SortState, error) {
	if listFlags.sort == "" {
		return view.SortState{}, nil
	}

	column := view.Column(listFlags.sort)
	if !column.Valid() {
		return view.SortState{}, fmt.Errorf("unknown sort column %q", listFlags.sort)
	}

	direction := view.Ascending
	switch listFlags.order {
	case "asc":
	case "desc":
		direction = view.Descending
	default:
		return view.SortState{}, fmt.Errorf("unknown sort order %q", listFlags.order)
	}

	return view.SortState{Column: column, Direction: direction}, nil
}

func parseFilterFlags() (*view.TableFilter, error) {
	opts := []view.FilterOption{}

	if listFlags.from != "" {
		from, err := model.ParseDate(listFlags.from)
		if err != nil {
			return nil, err
		}
		opts = append(opts, view.WithDateFrom(from))
	}

	if listFlags.to != "" {
		to, err := model.ParseDate(listFlags.to)
		if err != nil {
			return nil, err
		}
		opts = append(opts, view.WithDateTo(to))
	}

	return view.NewTableFilter(opts...), nil
}
