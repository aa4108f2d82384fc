package analyzing

import (
	"strconv"

	"github.com/vfg2006/pos-sales-analytics/internal/domain"
)

// ProductLineContribution calcula a receita média por ciclo de compra de uma
// linha de produtos: soma as vendas dos produtos do conjunto e divide pela
// frequência de pedidos do período.
func ProductLineContribution(t *domain.Table, products []string, salesVar, nameVar string, orderFrequency float64) (float64, error) {
	if err := requireColumns(t, salesVar, nameVar); err != nil {
		return 0, err
	}

	if orderFrequency == 0 {
		return 0, NewAnalysisError(ErrEmptyGroup, "frequência de pedidos igual a zero")
	}
	if orderFrequency < 0 {
		return 0, NewAnalysisError(ErrConfiguration, "frequência de pedidos negativa: "+strconv.FormatFloat(orderFrequency, 'f', -1, 64))
	}

	line := make(map[string]bool, len(products))
	for _, product := range products {
		line[product] = true
	}

	total := 0.0
	for i := 0; i < t.Len(); i++ {
		name, ok := t.Value(i, nameVar).Str()
		if !ok || !line[name] {
			continue
		}

		if amount, ok := t.Value(i, salesVar).Float(); ok {
			total += amount
		}
	}

	return total / orderFrequency, nil
}
