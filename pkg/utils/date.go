package utils

import (
	"fmt"
	"time"
)

// ParseDateWithLayouts tenta cada layout na ordem e retorna a primeira data válida
func ParseDateWithLayouts(dateStr string, layouts ...string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("data vazia")
	}

	for _, layout := range layouts {
		if date, err := time.Parse(layout, dateStr); err == nil {
			return date, nil
		}
	}

	return time.Time{}, fmt.Errorf("data %q não corresponde a nenhum formato conhecido", dateStr)
}

// MonthRange retorna o primeiro e o último dia do mês de referência
func MonthRange(ref time.Time) (time.Time, time.Time) {
	firstDayOfMonth := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	lastDayOfMonth := firstDayOfMonth.AddDate(0, 1, -1)
	return firstDayOfMonth, lastDayOfMonth
}
