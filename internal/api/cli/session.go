// Package cli реализует интерактивную сессию редактора каталога -
// слой взаимодействия поверх EventService. Сессия однопоточная: каждая
// команда выполняется до конца, после чего активное представление
// перечитывается из хранилища заново.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"timeline-service/internal/converter"
	"timeline-service/internal/logger"
	"timeline-service/internal/model"
	"timeline-service/internal/repository/memory"
	svc "timeline-service/internal/service"
	"timeline-service/internal/service/events"
	"timeline-service/internal/view"

	"go.uber.org/zap"
)

// Представления сессии
const (
	ViewTimeline = "timeline"
	ViewTable    = "table"
)

// Session - интерактивная сессия редактора каталога
type Session struct {
	eventService svc.EventService
	notifier     *events.Notifier
	changes      chan events.Change

	scanner *bufio.Scanner
	out     io.Writer

	activeView string
	sortState  view.SortState
	filterFrom *model.Date
	filterTo   *model.Date

	// Строки последней отрисовки: пользователь ссылается на записи
	// по номеру строки, а сервис работает с ID из хранилища.
	lastShown []converter.Row

	// readFile подменяется в тестах
	readFile func(path string) ([]byte, error)
}

// NewSession создает новую сессию редактора. notifier может быть nil -
// тогда подтверждения сохранения не показываются.
func NewSession(eventService svc.EventService, notifier *events.Notifier, in io.Reader, out io.Writer, defaultView string) *Session {
	s := &Session{
		eventService: eventService,
		notifier:     notifier,
		scanner:      bufio.NewScanner(in),
		out:          out,
		activeView:   ViewTimeline,
		readFile:     defaultReadFile,
	}

	if defaultView == ViewTable {
		s.activeView = ViewTable
	}

	if notifier != nil {
		s.changes = notifier.Subscribe()
	}

	return s
}

// Close освобождает ресурсы сессии
func (s *Session) Close() {
	if s.notifier != nil && s.changes != nil {
		s.notifier.Unsubscribe(s.changes)
		s.changes = nil
	}
}

// Run запускает цикл чтения команд. Возвращается при команде quit,
// конце ввода или отмене контекста.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Music Timeline")
	fmt.Fprintln(s.out, `Type "help" for the list of commands.`)
	fmt.Fprintln(s.out)

	if err := s.render(ctx); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, "> ")
		line, ok := s.readLine()
		if !ok {
			return nil
		}

		quit, err := s.dispatch(ctx, line)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// dispatch разбирает и выполняет одну команду
func (s *Session) dispatch(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	command, args := fields[0], fields[1:]
	logger.Debug("dispatching command", zap.String("command", command))

	switch command {
	case "help":
		s.printHelp()
		return false, nil
	case "show":
		return false, s.render(ctx)
	case "view":
		return false, s.switchView(ctx, args)
	case "sort":
		return false, s.setSortKey(ctx, args)
	case "filter":
		return false, s.setDateFilters(ctx, args)
	case "add":
		return false, s.addRecord(ctx)
	case "edit":
		return false, s.editRecord(ctx, args)
	case "delete":
		return false, s.deleteRecord(ctx, args)
	case "quit", "exit":
		return true, nil
	default:
		fmt.Fprintf(s.out, "Unknown command %q. Type \"help\" for the list of commands.\n", command)
		return false, nil
	}
}

// switchView переключает активное представление
func (s *Session) switchView(ctx context.Context, args []string) error {
	if len(args) != 1 || (args[0] != ViewTimeline && args[0] != ViewTable) {
		fmt.Fprintln(s.out, "Usage: view timeline|table")
		return nil
	}

	s.activeView = args[0]
	return s.render(ctx)
}

// setSortKey переключает сортировку таблицы по колонке.
// Повторный выбор той же колонки проходит цикл
// asc -> desc -> без сортировки; другая колонка сбрасывает предыдущую.
func (s *Session) setSortKey(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: sort title|category|start|end")
		return nil
	}

	column, ok := parseColumn(args[0])
	if !ok {
		fmt.Fprintf(s.out, "Unknown column %q. Columns: title, category, start, end.\n", args[0])
		return nil
	}

	s.sortState.Toggle(column)
	if s.activeView != ViewTable {
		s.activeView = ViewTable
	}
	return s.render(ctx)
}

// setDateFilters задает границы фильтра таблицы. "-" очищает границу.
func (s *Session) setDateFilters(ctx context.Context, args []string) error {
	if len(args) != 2 {
		fmt.Fprintln(s.out, `Usage: filter <from|-> <to|->  (dates in YYYY-MM-DD)`)
		return nil
	}

	from, err := parseBound(args[0])
	if err != nil {
		fmt.Fprintln(s.out, "Dates must use the YYYY-MM-DD format.")
		return nil
	}

	to, err := parseBound(args[1])
	if err != nil {
		fmt.Fprintln(s.out, "Dates must use the YYYY-MM-DD format.")
		return nil
	}

	s.filterFrom = from
	s.filterTo = to
	if s.activeView != ViewTable {
		s.activeView = ViewTable
	}
	return s.render(ctx)
}

// addRecord проводит пользователя через форму добавления
func (s *Session) addRecord(ctx context.Context) error {
	params, ok := s.promptParams(nil)
	if !ok {
		return nil
	}

	if _, err := s.eventService.Add(ctx, params); err != nil {
		s.printRejection(err)
		return nil
	}

	s.consumeChange()
	fmt.Fprintln(s.out, "Event added.")
	return s.render(ctx)
}

// editRecord целиком заменяет запись новыми значениями полей
func (s *Session) editRecord(ctx context.Context, args []string) error {
	row, ok := s.resolveRow(args)
	if !ok {
		return nil
	}

	params, ok := s.promptParams(row)
	if !ok {
		return nil
	}

	if _, err := s.eventService.Edit(ctx, row.ID, params); err != nil {
		if errors.Is(err, memory.ErrEventNotFound) {
			// ID берутся из последней отрисовки, так что сюда можно
			// попасть только если запись исчезла между командами.
			logger.Warn("edit target disappeared", zap.String("id", row.ID))
			return s.render(ctx)
		}
		s.printRejection(err)
		return nil
	}

	if s.consumeChange() {
		fmt.Fprintln(s.out, "Changes were successfully saved.")
	}
	return s.render(ctx)
}

// deleteRecord удаляет запись после подтверждения
func (s *Session) deleteRecord(ctx context.Context, args []string) error {
	row, ok := s.resolveRow(args)
	if !ok {
		return nil
	}

	fmt.Fprintf(s.out, "Are you sure you want to delete %q? [y/N]: ", row.Title)
	answer, _ := s.readLine()
	if !strings.EqualFold(strings.TrimSpace(answer), "y") {
		fmt.Fprintln(s.out, "Cancelled.")
		return nil
	}

	if err := s.eventService.Delete(ctx, row.ID); err != nil {
		return err
	}

	s.consumeChange()
	fmt.Fprintln(s.out, "Event deleted.")
	return s.render(ctx)
}

// render перечитывает хранилище и печатает активное представление.
// Производные данные не кэшируются: каждая отрисовка - свежая проекция.
func (s *Session) render(ctx context.Context) error {
	allEvents, err := s.eventService.List(ctx)
	if err != nil {
		return err
	}

	switch s.activeView {
	case ViewTable:
		visible := view.Table(allEvents, s.currentFilter(), s.sortState)
		rows := converter.ToRows(visible)
		s.lastShown = rows

		s.printFilterStatus()
		RenderTable(s.out, rows, s.sortState)
	default:
		rows := converter.ToRows(view.Chronological(allEvents))
		s.lastShown = rows

		RenderTimeline(s.out, rows)
	}

	fmt.Fprintf(s.out, "[%s view, %d of %d events]\n", s.activeView, len(s.lastShown), len(allEvents))
	return nil
}

// currentFilter собирает фильтр таблицы из текущих границ
func (s *Session) currentFilter() *view.TableFilter {
	opts := []view.FilterOption{}
	if s.filterFrom != nil {
		opts = append(opts, view.WithDateFrom(*s.filterFrom))
	}
	if s.filterTo != nil {
		opts = append(opts, view.WithDateTo(*s.filterTo))
	}
	return view.NewTableFilter(opts...)
}

func (s *Session) printFilterStatus() {
	if s.filterFrom == nil && s.filterTo == nil {
		return
	}

	from, to := "-", "-"
	if s.filterFrom != nil {
		from = s.filterFrom.String()
	}
	if s.filterTo != nil {
		to = s.filterTo.String()
	}
	fmt.Fprintf(s.out, "Filter: start >= %s, end <= %s\n", from, to)
}

// resolveRow находит запись по номеру строки последней отрисовки
func (s *Session) resolveRow(args []string) (*converter.Row, bool) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: edit|delete <row number>")
		return nil, false
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(s.lastShown) {
		fmt.Fprintf(s.out, "No row %q in the current view.\n", args[0])
		return nil, false
	}

	row := s.lastShown[n-1]
	return &row, true
}

// printRejection печатает отказ валидации. Хранилище при отказе не
// изменилось, поэтому все отказы восстановимы на месте.
func (s *Session) printRejection(err error) {
	switch {
	case errors.Is(err, events.ErrInvalidDateRange):
		fmt.Fprintln(s.out, "Start date cannot be later than end date. Please correct the dates.")
	case errors.Is(err, events.ErrMissingRequiredFields):
		fmt.Fprintln(s.out, "Please fill out at least the title and start date.")
	case errors.Is(err, events.ErrInvalidDate):
		fmt.Fprintln(s.out, "Dates must use the YYYY-MM-DD format.")
	case errors.Is(err, events.ErrInvalidCategory):
		fmt.Fprintf(s.out, "Category must be one of: %s.\n", categoryList())
	default:
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

// consumeChange неблокирующе забирает уведомление об изменении
func (s *Session) consumeChange() bool {
	if s.changes == nil {
		return false
	}
	select {
	case <-s.changes:
		return true
	default:
		return false
	}
}

func (s *Session) readLine() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

func (s *Session) printHelp() {
	fmt.Fprint(s.out, `Commands:
  show                    redraw the current view
  view timeline|table     switch between the views
  sort <column>           toggle table sorting (title, category, start, end);
                          repeated toggles cycle asc -> desc -> off
  filter <from> <to>      show only events within the date bounds ("-" clears a bound)
  add                     add a new event
  edit <n>                edit the event shown at row n
  delete <n>              delete the event shown at row n
  quit                    leave the editor
`)
}

// parseColumn отображает пользовательский токен в колонку таблицы
func parseColumn(token string) (view.Column, bool) {
	switch strings.ToLower(token) {
	case "title":
		return view.ColumnTitle, true
	case "category":
		return view.ColumnCategory, true
	case "start", "startdate":
		return view.ColumnStartDate, true
	case "end", "enddate":
		return view.ColumnEndDate, true
	}
	return "", false
}

// parseBound разбирает границу фильтра; "-" или пустая строка снимают её
func parseBound(token string) (*model.Date, error) {
	if token == "-" || token == "" {
		return nil, nil
	}
	parsed, err := model.ParseDate(token)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func categoryList() string {
	categories := model.Categories()
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
