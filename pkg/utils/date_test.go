package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateWithLayouts(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		layouts  []string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "Primeiro layout válido",
			input:    "2024-03-15",
			layouts:  []string{time.DateOnly, "02/01/2006"},
			expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Cai para o layout seguinte",
			input:    "15/03/2024",
			layouts:  []string{time.DateOnly, "02/01/2006"},
			expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "Nenhum layout corresponde",
			input:   "March 15",
			layouts: []string{time.DateOnly},
			wantErr: true,
		},
		{
			name:    "Data vazia",
			input:   "",
			layouts: []string{time.DateOnly},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseDateWithLayouts(tt.input, tt.layouts...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, date)
		})
	}
}

func TestMonthRange(t *testing.T) {
	first, last := MonthRange(time.Date(2024, 2, 17, 13, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), last)

	first, last = MonthRange(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), last)
}
