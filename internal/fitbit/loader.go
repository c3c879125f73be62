package fitbit

import (
	"context"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/tidwall/gjson"
)

const (
	msPerMinute = 60 * 1000

	// LateNightThreshold is the start minute below which a sleep is counted
	// on the previous evening's scale.
	LateNightThreshold = 240
	minutesPerDay      = 1440
)

// Progress is reported to an Observer after each source has been joined.
type Progress struct {
	// Index is the 1-based position of the processed source
	Index   int
	Total   int
	Source  string
	Records int
}

// Observer receives progress events. It is called synchronously.
type Observer func(Progress)

// Report describes a completed load.
type Report struct {
	Table *domain.SleepTable
	// Records is the row count before naps were excluded
	Records int
	// Excluded counts rows dropped because mainSleep was false
	Excluded int
}

// Option configures a Loader.
type Option func(*Loader)

// WithObserver registers a per-source progress callback.
func WithObserver(o Observer) Option {
	return func(l *Loader) {
		l.observer = o
	}
}

// WithDiscoveredStages also derives percentage columns for legacy stages
// (asleep, awake, restless) whose minutes column is present.
func WithDiscoveredStages() Option {
	return func(l *Loader) {
		l.discoverStages = true
	}
}

// Loader builds the unified sleep table from export sources.
type Loader struct {
	observer       Observer
	discoverStages bool
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load parses, joins, annotates and filters the sources into one table.
func (l *Loader) Load(ctx context.Context, sources []Source) (*domain.SleepTable, error) {
	report, err := l.LoadReport(ctx, sources)
	if err != nil {
		return nil, err
	}
	return report.Table, nil
}

// LoadReport is Load with row accounting.
func (l *Loader) LoadReport(ctx context.Context, sources []Source) (*Report, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: no sleep sources given", domain.ErrInvalidInput)
	}

	var rows []domain.SleepRow
	present := make(map[string]struct{})

	// Sources are accumulated strictly in order
	for i, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		records, err := readSource(src)
		if err != nil {
			return nil, err
		}

		for pos, rec := range records {
			row, err := joinRecord(rec)
			if err != nil {
				return nil, fmt.Errorf("%w: source %q record %d", err, src.Name(), pos)
			}
			for k := range row.Values {
				present[k] = struct{}{}
			}
			rows = append(rows, row)
		}

		if l.observer != nil {
			l.observer(Progress{Index: i + 1, Total: len(sources), Source: src.Name(), Records: len(records)})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})

	stages := l.stagesFor(present)
	for i := range rows {
		if err := annotate(&rows[i], stages); err != nil {
			return nil, fmt.Errorf("%w: row dated %s", err, rows[i].Date.Format(domain.DateLayout))
		}
	}

	report := &Report{Records: len(rows)}

	kept := rows[:0]
	for _, row := range rows {
		if isNap(row) {
			report.Excluded++
			continue
		}
		for _, col := range domain.DroppedColumns {
			delete(row.Values, col)
		}
		kept = append(kept, row)
	}

	report.Table = &domain.SleepTable{
		Columns: buildColumns(present, stages),
		Rows:    kept,
	}
	return report, nil
}

func (l *Loader) stagesFor(present map[string]struct{}) []string {
	stages := append([]string(nil), domain.Stages...)
	if !l.discoverStages {
		return stages
	}
	for _, s := range domain.LegacyStages {
		if _, ok := present[domain.StageMinutesColumn(s)]; ok {
			stages = append(stages, s)
		}
	}
	return stages
}

// readSource decodes one export into its records.
func readSource(src Source) ([]map[string]any, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, fmt.Errorf("open source %q: %w", src.Name(), err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read source %q: %w", src.Name(), err)
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: source %q is not valid JSON", domain.ErrMalformedSource, src.Name())
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: source %q is not a list of sleep records", domain.ErrMalformedSource, src.Name())
	}

	items := root.Array()
	records := make([]map[string]any, 0, len(items))
	for i, item := range items {
		rec, ok := item.Value().(map[string]any)
		if !item.IsObject() || !ok {
			return nil, fmt.Errorf("%w: source %q record %d is not an object", domain.ErrMalformedSource, src.Name(), i)
		}
		records = append(records, rec)
	}
	return records, nil
}

// joinRecord merges a record with its flattened levels and indexes it by date.
func joinRecord(rec map[string]any) (domain.SleepRow, error) {
	levels, ok := rec[domain.ColumnLevels].(map[string]any)
	if !ok {
		return domain.SleepRow{}, fmt.Errorf("%w: levels missing or not an object", domain.ErrShapeMismatch)
	}

	values := make(map[string]any, len(rec)+16)
	for k, v := range rec {
		values[k] = v
	}
	for k, v := range Flatten(levels) {
		if _, clash := values[k]; clash {
			return domain.SleepRow{}, fmt.Errorf("%w: levels column %q collides with a record field", domain.ErrShapeMismatch, k)
		}
		values[k] = v
	}

	date, err := parseSleepDate(values[domain.ColumnDateOfSleep])
	if err != nil {
		return domain.SleepRow{}, err
	}
	delete(values, domain.ColumnDateOfSleep)

	return domain.SleepRow{Date: date, Values: values}, nil
}

var dateLayouts = []string{
	domain.DateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
}

func parseSleepDate(v any) (time.Time, error) {
	if v == nil {
		return time.Time{}, domain.ErrMissingDate
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return time.Time{}, fmt.Errorf("%w: %v", domain.ErrInvalidDate, v)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
}

var clockLayouts = []string{
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"15:04",
}

// minutesOfDay returns the wall-clock minute of a timestamp, NaN when absent.
func minutesOfDay(field string, v any) (float64, error) {
	if v == nil {
		return math.NaN(), nil
	}
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("%w: %s=%v", domain.ErrInvalidField, field, v)
	}
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return float64(t.Hour()*60 + t.Minute()), nil
		}
	}
	return 0, fmt.Errorf("%w: %s=%q", domain.ErrInvalidField, field, s)
}

func number(field string, v any) (float64, error) {
	switch n := v.(type) {
	case nil:
		return math.NaN(), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %s=%v", domain.ErrInvalidField, field, v)
	}
}

// annotate computes the derived columns of one row in place.
func annotate(row *domain.SleepRow, stages []string) error {
	v := row.Values
	v[domain.ColumnDayOfWeek] = row.Date.Weekday().String()

	ms, err := number(domain.ColumnDuration, v[domain.ColumnDuration])
	if err != nil {
		return err
	}
	duration := ms / msPerMinute
	v[domain.ColumnDuration] = duration

	for _, stage := range stages {
		col := domain.StageMinutesColumn(stage)
		minutes, err := number(col, v[col])
		if err != nil {
			return err
		}
		// Zero duration yields a non-finite share
		v[domain.StagePercentColumn(stage)] = 100 * minutes / duration
	}

	start, err := minutesOfDay(domain.ColumnStartTime, v[domain.ColumnStartTime])
	if err != nil {
		return err
	}
	if start < LateNightThreshold {
		start += minutesPerDay
	}
	v[domain.ColumnStartMin] = start

	end, err := minutesOfDay(domain.ColumnEndTime, v[domain.ColumnEndTime])
	if err != nil {
		return err
	}
	v[domain.ColumnEndMin] = end
	return nil
}

// isNap reports whether a row is explicitly flagged as not the main sleep.
// Missing or non-boolean flags are kept.
func isNap(row domain.SleepRow) bool {
	main, ok := row.Values[domain.ColumnMainSleep].(bool)
	return ok && !main
}

func buildColumns(present map[string]struct{}, stages []string) []string {
	derived := []string{domain.ColumnDayOfWeek}
	for _, s := range domain.Stages {
		derived = append(derived, domain.StagePercentColumn(s))
	}
	derived = append(derived, domain.ColumnStartMin, domain.ColumnEndMin)
	for _, s := range stages[len(domain.Stages):] {
		derived = append(derived, domain.StagePercentColumn(s))
	}

	skip := map[string]bool{domain.ColumnDateOfSleep: true}
	for _, c := range domain.DroppedColumns {
		skip[c] = true
	}
	for _, c := range derived {
		skip[c] = true
	}

	raw := []string{domain.ColumnDuration}
	for k := range present {
		if !skip[k] && k != domain.ColumnDuration {
			raw = append(raw, k)
		}
	}
	sort.Strings(raw)
	return append(raw, derived...)
}
