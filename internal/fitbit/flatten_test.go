package fitbit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  map[string]any
	}{
		{
			name: "nested maps join with dots",
			input: map[string]any{
				"summary": map[string]any{
					"deep": map[string]any{"count": 3.0, "minutes": 90.0},
					"rem":  map[string]any{"minutes": 60.0},
				},
			},
			want: map[string]any{
				"summary.deep.count":   3.0,
				"summary.deep.minutes": 90.0,
				"summary.rem.minutes":  60.0,
			},
		},
		{
			name: "sequences are leaves",
			input: map[string]any{
				"data":      []any{map[string]any{"level": "wake"}},
				"shortData": []any{},
			},
			want: map[string]any{
				"data":      []any{map[string]any{"level": "wake"}},
				"shortData": []any{},
			},
		},
		{
			name:  "empty nested map has no keys",
			input: map[string]any{"summary": map[string]any{}, "type": "stages"},
			want:  map[string]any{"type": "stages"},
		},
		{
			name:  "nil leaf kept",
			input: map[string]any{"a": map[string]any{"b": nil}},
			want:  map[string]any{"a.b": nil},
		},
		{
			name:  "non-map root",
			input: []any{1.0, 2.0},
			want:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Flatten(tt.input))
		})
	}
}

func TestFlattenKeys_Sorted(t *testing.T) {
	flat := Flatten(map[string]any{
		"summary": map[string]any{
			"wake":  map[string]any{"minutes": 1.0},
			"deep":  map[string]any{"minutes": 1.0, "count": 1.0},
			"light": map[string]any{"minutes": 1.0},
		},
		"data": []any{},
	})

	assert.Equal(t, []string{
		"data",
		"summary.deep.count",
		"summary.deep.minutes",
		"summary.light.minutes",
		"summary.wake.minutes",
	}, FlattenKeys(flat))
}
