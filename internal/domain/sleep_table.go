package domain

import (
	"fmt"
	"math"
	"time"
)

// Column names produced by the loader.
const (
	ColumnDateOfSleep = "dateOfSleep"
	ColumnDayOfWeek   = "dayOfWeek"
	ColumnDuration    = "duration"
	ColumnMainSleep   = "mainSleep"
	ColumnStartTime   = "startTime"
	ColumnEndTime     = "endTime"
	ColumnStartMin    = "startMin"
	ColumnEndMin      = "endMin"
	ColumnEfficiency  = "efficiency"
	ColumnLevels      = "levels"
)

// Stages are the sleep stages of the current export schema, in derivation order.
var Stages = []string{"rem", "deep", "wake", "light"}

// LegacyStages appear in exports recorded before stage tracking.
var LegacyStages = []string{"asleep", "awake", "restless"}

// DroppedColumns are bookkeeping fields removed from the unified table.
var DroppedColumns = []string{"logId", "data", "shortData", "infoCode", ColumnLevels}

// StageMinutesColumn returns the flattened summary column holding a stage's minutes.
func StageMinutesColumn(stage string) string {
	return "summary." + stage + ".minutes"
}

// StagePercentColumn returns the derived column holding a stage's share of duration.
func StagePercentColumn(stage string) string {
	return stage + ".%"
}

// SleepRow is one night of the unified table. Values holds float64, string,
// bool, []any, map[string]any or nil cells keyed by column name.
type SleepRow struct {
	Date   time.Time      `json:"date"`
	Values map[string]any `json:"values"`
}

// SleepTable is the unified sleep dataset, indexed by sleep date in ascending order.
type SleepTable struct {
	Columns []string   `json:"columns"`
	Rows    []SleepRow `json:"rows"`
}

func (t *SleepTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

func (t *SleepTable) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Dates returns the row index.
func (t *SleepTable) Dates() []time.Time {
	dates := make([]time.Time, len(t.Rows))
	for i, r := range t.Rows {
		dates[i] = r.Date
	}
	return dates
}

// From returns the first sleep date, or the zero time for an empty table.
func (t *SleepTable) From() time.Time {
	if t.Len() == 0 {
		return time.Time{}
	}
	return t.Rows[0].Date
}

// To returns the last sleep date, or the zero time for an empty table.
func (t *SleepTable) To() time.Time {
	if t.Len() == 0 {
		return time.Time{}
	}
	return t.Rows[len(t.Rows)-1].Date
}

// Float returns a column as numbers. Missing and non-numeric cells are NaN.
func (t *SleepTable) Float(column string) ([]float64, error) {
	if !t.HasColumn(column) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}
	out := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		if v, ok := r.Values[column].(float64); ok {
			out[i] = v
		} else {
			out[i] = math.NaN()
		}
	}
	return out, nil
}

// String returns a column as text. Non-string cells are empty.
func (t *SleepTable) String(column string) ([]string, error) {
	if !t.HasColumn(column) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}
	out := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		out[i], _ = r.Values[column].(string)
	}
	return out, nil
}

// NumericColumns lists, in table order, the columns whose non-missing cells
// are all numbers and that have at least one number.
func (t *SleepTable) NumericColumns() []string {
	var cols []string
	for _, c := range t.Columns {
		numeric, seen := true, false
		for _, r := range t.Rows {
			v, ok := r.Values[c]
			if !ok || v == nil {
				continue
			}
			if _, isNum := v.(float64); !isNum {
				numeric = false
				break
			}
			seen = true
		}
		if numeric && seen {
			cols = append(cols, c)
		}
	}
	return cols
}
