package analyzing

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pos-sales-analytics/internal/domain"
)

type saleRow struct {
	date     string
	time     string
	amount   float64
	discount float64
	quantity float64
	name     string
}

// testOptions usa o esquema padrão com horários no formato hh:mm
func testOptions() domain.AnalysisOptions {
	opts := domain.DefaultAnalysisOptions()
	opts.FormatTime = "15:04"
	opts.TimeClosure = "17:00"
	return opts
}

// buildTable monta uma tabela como chegaria de um export: data e hora em texto
func buildTable(t *testing.T, rows ...saleRow) *domain.Table {
	t.Helper()

	cols := domain.DefaultColumns()
	table := domain.NewTable(cols.DateVar, cols.TimeVar, cols.SalesVar, cols.DiscountVar, cols.QuantityVar, cols.NameVar)
	for _, r := range rows {
		require.NoError(t, table.Append(
			domain.String(r.date),
			domain.String(r.time),
			domain.Number(r.amount),
			domain.Number(r.discount),
			domain.Number(r.quantity),
			domain.String(r.name),
		))
	}

	return table
}

// scenarioTable é a tabela de três vendas usada nos cenários de referência
func scenarioTable(t *testing.T) *domain.Table {
	return buildTable(t,
		saleRow{date: "2024-01-01", time: "09:00", amount: 10, discount: 1, quantity: 1, name: "A"},
		saleRow{date: "2024-01-01", time: "18:00", amount: 20, discount: 0, quantity: 2, name: "B"},
		saleRow{date: "2024-01-02", time: "19:00", amount: 30, discount: 2.5, quantity: 1, name: "A"},
	)
}

func sumColumn(table *domain.Table, column string) float64 {
	total := 0.0
	for _, cell := range table.Cells(column) {
		if v, ok := cell.Float(); ok {
			total += v
		}
	}
	return total
}
