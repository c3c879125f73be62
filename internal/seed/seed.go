// Package seed generates synthetic Fitbit sleep exports for demos and tests.
package seed

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"
)

const (
	clockLayout = "2006-01-02T15:04:05.000"
	dateLayout  = "2006-01-02"

	napChance = 0.2
)

type stageSummary struct {
	Count               int `json:"count"`
	Minutes             int `json:"minutes"`
	ThirtyDayAvgMinutes int `json:"thirtyDayAvgMinutes"`
}

type levelEntry struct {
	DateTime string `json:"dateTime"`
	Level    string `json:"level"`
	Seconds  int    `json:"seconds"`
}

type levels struct {
	Summary   map[string]stageSummary `json:"summary"`
	Data      []levelEntry            `json:"data"`
	ShortData []levelEntry            `json:"shortData"`
}

type record struct {
	DateOfSleep         string `json:"dateOfSleep"`
	Duration            int64  `json:"duration"`
	Efficiency          int    `json:"efficiency"`
	EndTime             string `json:"endTime"`
	InfoCode            int    `json:"infoCode"`
	Levels              levels `json:"levels"`
	LogID               int64  `json:"logId"`
	MainSleep           bool   `json:"mainSleep"`
	MinutesAfterWakeup  int    `json:"minutesAfterWakeup"`
	MinutesAsleep       int    `json:"minutesAsleep"`
	MinutesAwake        int    `json:"minutesAwake"`
	MinutesToFallAsleep int    `json:"minutesToFallAsleep"`
	StartTime           string `json:"startTime"`
	TimeInBed           int    `json:"timeInBed"`
	Type                string `json:"type"`
}

// Generate returns an export covering days nights whose sleep dates start
// at start. Bedtimes range from 22:00 to 01:30 and roughly one day in five
// also carries an afternoon nap. The output is fully determined by rng.
func Generate(start time.Time, days int, rng *rand.Rand) ([]byte, error) {
	if days < 0 {
		return nil, fmt.Errorf("days must not be negative, got %d", days)
	}

	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	logID := int64(26589710000)
	records := make([]record, 0, days+days/4)

	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)

		// Bedtime offset from 22:00 of the previous evening, up to 3h30
		bedtime := date.Add(-2*time.Hour + time.Duration(rng.Intn(211))*time.Minute)
		inBed := 360 + rng.Intn(181)
		logID += int64(1 + rng.Intn(1000))
		records = append(records, night(date, bedtime, inBed, logID, rng))

		if rng.Float64() < napChance {
			napStart := date.Add(time.Duration(13*60+rng.Intn(180)) * time.Minute)
			logID += int64(1 + rng.Intn(1000))
			records = append(records, nap(date, napStart, 20+rng.Intn(41), logID))
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return data, nil
}

func night(date, bedtime time.Time, inBed int, logID int64, rng *rand.Rand) record {
	wake := inBed * (8 + rng.Intn(8)) / 100
	asleep := inBed - wake
	deep := asleep * (12 + rng.Intn(12)) / 100
	rem := asleep * (15 + rng.Intn(12)) / 100
	light := asleep - deep - rem
	end := bedtime.Add(time.Duration(inBed) * time.Minute)

	return record{
		DateOfSleep: date.Format(dateLayout),
		Duration:    int64(inBed) * 60 * 1000,
		Efficiency:  100 * asleep / inBed,
		EndTime:     end.Format(clockLayout),
		Levels: levels{
			Summary: map[string]stageSummary{
				"deep":  {Count: 2 + rng.Intn(4), Minutes: deep, ThirtyDayAvgMinutes: 80},
				"light": {Count: 20 + rng.Intn(10), Minutes: light, ThirtyDayAvgMinutes: 230},
				"rem":   {Count: 4 + rng.Intn(4), Minutes: rem, ThirtyDayAvgMinutes: 90},
				"wake":  {Count: 15 + rng.Intn(15), Minutes: wake, ThirtyDayAvgMinutes: 50},
			},
			Data:      []levelEntry{{DateTime: bedtime.Format(clockLayout), Level: "wake", Seconds: 30 * (1 + rng.Intn(20))}},
			ShortData: []levelEntry{},
		},
		LogID:               logID,
		MainSleep:           true,
		MinutesAfterWakeup:  rng.Intn(5),
		MinutesAsleep:       asleep,
		MinutesAwake:        wake,
		MinutesToFallAsleep: 0,
		StartTime:           bedtime.Format(clockLayout),
		TimeInBed:           inBed,
		Type:                "stages",
	}
}

// nap is a short sleep in the legacy classic schema, flagged as not the main sleep.
func nap(date, start time.Time, minutes int, logID int64) record {
	return record{
		DateOfSleep: date.Format(dateLayout),
		Duration:    int64(minutes) * 60 * 1000,
		Efficiency:  95,
		EndTime:     start.Add(time.Duration(minutes) * time.Minute).Format(clockLayout),
		Levels: levels{
			Summary: map[string]stageSummary{
				"asleep":   {Count: 0, Minutes: minutes - 2},
				"awake":    {Count: 1, Minutes: 1},
				"restless": {Count: 1, Minutes: 1},
			},
			Data:      []levelEntry{},
			ShortData: []levelEntry{},
		},
		LogID:         logID,
		MainSleep:     false,
		MinutesAsleep: minutes - 2,
		MinutesAwake:  2,
		StartTime:     start.Format(clockLayout),
		TimeInBed:     minutes,
		Type:          "classic",
	}
}
