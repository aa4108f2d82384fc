package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pos-sales-analytics/internal/domain"
)

func TestRound(t *testing.T) {
	assert.Equal(t, 12.35, RoundWithTwoDecimalPlace(12.345001))
	assert.Equal(t, 12.3, Round(12.345, 1))
	assert.Equal(t, 0.0, Round(0, 2))
	assert.True(t, math.IsNaN(Round(math.NaN(), 2)))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	assert.NoError(t, err)
	assert.Len(t, id, 8)
}

func TestPrettyJson(t *testing.T) {
	assert.Equal(t, "{\n\t\"a\": 1\n}", PrettyJson(map[string]int{"a": 1}))
	assert.Equal(t, "{\n\t\"b\": true\n}", PrettyJson([]byte(`{"b":true}`)))
	assert.Equal(t, "not json", PrettyJson([]byte("not json")))
}

func TestPrettyJsonReport(t *testing.T) {
	report := &domain.Report{
		ID:              "abc12345",
		Period:          "02-2024",
		OpportunityCost: 25,
		Summary: &domain.SalesSummary{
			Daily: &domain.Bucket{
				KeyColumns:  []string{"Date"},
				ValueColumn: "Net sales (EUR)",
				Rows: []domain.BucketRow{
					{Key: []domain.Cell{domain.Missing()}, Value: 7, Count: 1},
				},
			},
		},
		HourlyItemRate: []domain.Point{{Label: "09:00", Value: 1}},
	}

	var out string
	require.NotPanics(t, func() { out = PrettyJson(report) })

	assert.Contains(t, out, "\n\t\"id\": \"abc12345\"")
	assert.Contains(t, out, "\"key\": [\n")
	assert.Contains(t, out, "null")
	assert.Contains(t, out, "\"label\": \"09:00\"")
}
