package analyzing

import (
	"fmt"
	"sort"
	"time"

	"github.com/vfg2006/pos-sales-analytics/internal/domain"
)

// HourlyItemRate calcula a média de itens vendidos por hora do dia entre os
// dias observados: soma a quantidade por (hora, dia) e tira a média por hora.
// Com opts.Plot a distribuição ordenada por hora é enviada ao plotter.
func HourlyItemRate(t *domain.Table, opts domain.AnalysisOptions, plotter Plotter) (*domain.Bucket, error) {
	cols := opts.Columns
	if err := requireColumns(t, cols.DateVar, cols.TimeVar, cols.QuantityVar); err != nil {
		return nil, err
	}

	if opts.Plot && plotter == nil {
		return nil, NewAnalysisError(ErrConfiguration, "gráfico solicitado sem destino configurado")
	}

	normalized, err := Normalize(t, opts)
	if err != nil {
		return nil, err
	}

	filtered, err := filterByOptions(normalized, opts)
	if err != nil {
		return nil, err
	}

	// Linhas sem horário interpretado não pertencem a nenhuma hora
	timed := filtered.Filter(func(i int) bool {
		return filtered.Value(i, cols.TimeVar).Kind() == domain.KindTime
	})

	hourVar := hourColumn(cols)
	hours := make([]domain.Cell, timed.Len())
	for i := range hours {
		tod, _ := timed.Value(i, cols.TimeVar).Time()
		hours[i] = domain.String(hourKey(tod))
	}

	withHours, err := timed.WithColumn(hourVar, hours)
	if err != nil {
		return nil, err
	}

	perDay, err := Aggregate(withHours, []string{hourVar, cols.DateVar}, cols.QuantityVar, Sum)
	if err != nil {
		return nil, err
	}

	// Dias sem quantidade observada na hora ficam fora da média
	perDayTable := perDay.Table()
	observed := perDayTable.Filter(func(i int) bool {
		return !perDayTable.Value(i, cols.QuantityVar).IsMissing()
	})

	rate, err := Aggregate(observed, []string{hourVar}, cols.QuantityVar, Mean)
	if err != nil {
		return nil, err
	}

	sortByHour(rate)

	if opts.Plot {
		if err := plotter.PlotBars(opts.PlotTitle, rate.Points()); err != nil {
			return nil, fmt.Errorf("erro ao renderizar gráfico de itens por hora: %w", err)
		}
	}

	return rate, nil
}

// hourKey trunca o horário na hora e renderiza com largura fixa ("09:00")
func hourKey(tod time.Time) string {
	return fmt.Sprintf("%02d:00", tod.Hour())
}

// sortByHour ordena as linhas pelo rótulo da hora
func sortByHour(b *domain.Bucket) {
	sort.SliceStable(b.Rows, func(i, j int) bool {
		return b.Rows[i].Key[0].Label() < b.Rows[j].Key[0].Label()
	})
}
