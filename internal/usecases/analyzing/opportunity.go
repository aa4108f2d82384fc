package analyzing

import (
	"github.com/vfg2006/pos-sales-analytics/internal/domain"
)

// OpportunityCost estima a receita média diária perdida caso a loja fechasse
// no horário opts.TimeClosure: soma as vendas posteriores ao fechamento e divide
// pelo número de dias distintos com vendas no período filtrado (não apenas os
// dias com vendas tardias).
func OpportunityCost(t *domain.Table, opts domain.AnalysisOptions) (float64, error) {
	cols := opts.Columns
	if err := requireColumns(t, cols.DateVar, cols.TimeVar, cols.SalesVar); err != nil {
		return 0, err
	}

	closure, err := ParseTimeOfDay(opts.TimeClosure, opts.FormatTime)
	if err != nil {
		return 0, NewAnalysisError(ErrConfiguration, "horário de fechamento inválido: "+opts.TimeClosure)
	}

	normalized, err := Normalize(t, opts)
	if err != nil {
		return 0, err
	}

	filtered, err := filterByOptions(normalized, opts)
	if err != nil {
		return 0, err
	}

	// Horários ausentes nunca são posteriores ao fechamento
	late := filtered.Filter(func(i int) bool {
		tod, ok := filtered.Value(i, cols.TimeVar).Time()
		return ok && tod.After(closure)
	})

	lateByDay, err := Aggregate(late, []string{cols.DateVar}, cols.SalesVar, Sum)
	if err != nil {
		return 0, err
	}

	days := countDistinctDates(filtered, cols.DateVar)
	if days == 0 {
		return 0, NewColumnError(ErrEmptyGroup, cols.DateVar, "nenhum dia com vendas no período filtrado")
	}

	return lateByDay.Total() / float64(days), nil
}

// countDistinctDates conta as datas distintas, ignorando células ausentes
func countDistinctDates(t *domain.Table, dateVar string) int {
	seen := make(map[string]bool)
	for _, cell := range t.Cells(dateVar) {
		if cell.Kind() != domain.KindDate {
			continue
		}
		seen[cell.GroupKey()] = true
	}
	return len(seen)
}
