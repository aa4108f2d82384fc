package analyzing

import (
	"strings"
	"time"

	"github.com/vfg2006/pos-sales-analytics/internal/domain"
	"github.com/vfg2006/pos-sales-analytics/pkg/utils"
)

// fallbackDateLayouts são tentados depois do formato configurado
var fallbackDateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	time.DateTime,
	"02/01/2006",
	"2006/01/02",
	"02.01.2006",
}

// Normalize interpreta as colunas de data e horário e acrescenta as colunas
// de semana ISO e mês do ano. Valores inválidos viram células ausentes;
// se nenhuma linha for interpretada a configuração é rejeitada.
func Normalize(t *domain.Table, opts domain.AnalysisOptions) (*domain.Table, error) {
	cols := opts.Columns
	if err := requireColumns(t, cols.DateVar, cols.TimeVar); err != nil {
		return nil, err
	}

	formatTime := opts.FormatTime
	if formatTime == "" {
		formatTime = domain.DefaultFormatTime
	}

	dateLayouts := fallbackDateLayouts
	if opts.FormatDate != "" {
		dateLayouts = append([]string{opts.FormatDate}, fallbackDateLayouts...)
	}

	dates := t.Cells(cols.DateVar)
	times := t.Cells(cols.TimeVar)
	weeks := make([]domain.Cell, len(dates))
	months := make([]domain.Cell, len(dates))

	parsedDates, parsedTimes := 0, 0
	for i := range dates {
		dates[i] = parseDateCell(dates[i], dateLayouts)
		times[i] = parseTimeCell(times[i], formatTime)

		weeks[i] = domain.Missing()
		months[i] = domain.Missing()
		if d, ok := dates[i].Time(); ok {
			_, week := d.ISOWeek()
			weeks[i] = domain.Number(float64(week))
			months[i] = domain.Number(float64(d.Month()))
			parsedDates++
		}

		if !times[i].IsMissing() {
			parsedTimes++
		}
	}

	if t.Len() > 0 && parsedDates == 0 {
		return nil, NewColumnError(ErrConfiguration, cols.DateVar, "nenhuma data pôde ser interpretada")
	}
	if t.Len() > 0 && parsedTimes == 0 {
		return nil, NewColumnError(ErrConfiguration, cols.TimeVar, "nenhum horário corresponde ao formato "+formatTime)
	}

	out := t
	for _, column := range []struct {
		name   string
		values []domain.Cell
	}{
		{cols.DateVar, dates},
		{cols.TimeVar, times},
		{weekColumn(cols), weeks},
		{monthColumn(cols), months},
	} {
		var err error
		out, err = out.WithColumn(column.name, column.values)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// ParseTimeOfDay interpreta um horário isolado no formato configurado
func ParseTimeOfDay(value, layout string) (time.Time, error) {
	if layout == "" {
		layout = domain.DefaultFormatTime
	}

	parsed, err := time.Parse(layout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, NewAnalysisError(ErrParse, err.Error())
	}

	tod, _ := domain.TimeOfDay(parsed).Time()
	return tod, nil
}

func parseDateCell(c domain.Cell, layouts []string) domain.Cell {
	switch c.Kind() {
	case domain.KindDate:
		return c
	case domain.KindString:
		s, _ := c.Str()
		d, err := utils.ParseDateWithLayouts(strings.TrimSpace(s), layouts...)
		if err != nil {
			return domain.Missing()
		}
		return domain.Date(d)
	default:
		return domain.Missing()
	}
}

func parseTimeCell(c domain.Cell, layout string) domain.Cell {
	switch c.Kind() {
	case domain.KindTime:
		return c
	case domain.KindString:
		s, _ := c.Str()
		tod, err := ParseTimeOfDay(s, layout)
		if err != nil {
			return domain.Missing()
		}
		return domain.TimeOfDay(tod)
	default:
		return domain.Missing()
	}
}

func weekColumn(cols domain.Columns) string {
	if cols.WeekVar == "" {
		return domain.DefaultWeekVar
	}
	return cols.WeekVar
}

func monthColumn(cols domain.Columns) string {
	if cols.MonthVar == "" {
		return domain.DefaultMonthVar
	}
	return cols.MonthVar
}

func hourColumn(cols domain.Columns) string {
	if cols.HourVar == "" {
		return domain.DefaultHourVar
	}
	return cols.HourVar
}
