package analyzing

import (
	"github.com/vfg2006/pos-sales-analytics/internal/domain"
)

// BuildSummary monta o resumo de vendas: receita somada por dia, semana ISO e
// mês, total de descontos e a tendência linear da receita diária
func BuildSummary(t *domain.Table, opts domain.AnalysisOptions) (*domain.SalesSummary, error) {
	cols := opts.Columns
	if err := requireColumns(t, cols.DateVar, cols.TimeVar, cols.SalesVar, cols.DiscountVar); err != nil {
		return nil, err
	}

	normalized, err := Normalize(t, opts)
	if err != nil {
		return nil, err
	}

	daily, err := Aggregate(normalized, []string{cols.DateVar}, cols.SalesVar, Sum)
	if err != nil {
		return nil, err
	}

	weekly, err := Aggregate(normalized, []string{weekColumn(cols)}, cols.SalesVar, Sum)
	if err != nil {
		return nil, err
	}

	monthly, err := Aggregate(normalized, []string{monthColumn(cols)}, cols.SalesVar, Sum)
	if err != nil {
		return nil, err
	}

	totalDiscount := 0.0
	for _, cell := range normalized.Cells(cols.DiscountVar) {
		if discount, ok := cell.Float(); ok {
			totalDiscount += discount
		}
	}

	trend, err := FitTrend(daily)
	if err != nil {
		return nil, err
	}

	return &domain.SalesSummary{
		Daily:         daily,
		Weekly:        weekly,
		Monthly:       monthly,
		TotalDiscount: totalDiscount,
		Trend:         trend,
	}, nil
}
