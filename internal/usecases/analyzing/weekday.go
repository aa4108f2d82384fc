package analyzing

import (
	"time"

	"github.com/vfg2006/pos-sales-analytics/internal/domain"
)

// FilterWeekdays aplica o filtro histórico de fins de semana:
// com weekdays=true mantém as linhas cujo dia é diferente de sábado OU diferente
// de domingo. Nenhum dia é os dois ao mesmo tempo, então toda linha é mantida.
// Use FilterWeekdaysStrict para excluir de fato sábados e domingos.
func FilterWeekdays(t *domain.Table, dateVar string, weekdays bool) (*domain.Table, error) {
	if err := requireColumns(t, dateVar); err != nil {
		return nil, err
	}

	if !weekdays {
		return t, nil
	}

	return t.Filter(func(i int) bool {
		day, ok := weekdayOf(t.Value(i, dateVar))
		if !ok {
			return true
		}
		notSaturday := day != time.Saturday
		notSunday := day != time.Sunday
		return notSaturday || notSunday
	}), nil
}

// FilterWeekdaysStrict exclui as linhas de sábado e domingo.
// Linhas sem data válida são mantidas.
func FilterWeekdaysStrict(t *domain.Table, dateVar string, weekdays bool) (*domain.Table, error) {
	if err := requireColumns(t, dateVar); err != nil {
		return nil, err
	}

	if !weekdays {
		return t, nil
	}

	return t.Filter(func(i int) bool {
		day, ok := weekdayOf(t.Value(i, dateVar))
		if !ok {
			return true
		}
		return day != time.Saturday && day != time.Sunday
	}), nil
}

// filterByOptions escolhe a variante do filtro conforme as opções
func filterByOptions(t *domain.Table, opts domain.AnalysisOptions) (*domain.Table, error) {
	if opts.StrictWeekdays {
		return FilterWeekdaysStrict(t, opts.Columns.DateVar, opts.Weekdays)
	}
	return FilterWeekdays(t, opts.Columns.DateVar, opts.Weekdays)
}

func weekdayOf(c domain.Cell) (time.Weekday, bool) {
	if c.Kind() != domain.KindDate {
		return 0, false
	}
	d, _ := c.Time()
	return d.Weekday(), true
}
