package analyzing

import (
	"fmt"
	"strings"

	"github.com/vfg2006/pos-sales-analytics/internal/domain"
)

// Reducer define como os valores de um grupo são reduzidos
type Reducer int

const (
	Sum Reducer = iota
	Mean
)

func (r Reducer) String() string {
	switch r {
	case Sum:
		return "sum"
	case Mean:
		return "mean"
	default:
		return fmt.Sprintf("reducer(%d)", int(r))
	}
}

// Estrutura para acumular os valores de cada chave distinta
type groupAggregator struct {
	key   []domain.Cell
	sum   float64
	count int
}

// Aggregate agrupa as linhas pelas colunas informadas (chave composta) e reduz
// a coluna de valor. Valores ausentes ou não numéricos não entram na soma nem
// na contagem da média. Chaves ausentes formam um grupo próprio.
func Aggregate(t *domain.Table, groupBy []string, valueColumn string, reducer Reducer) (*domain.Bucket, error) {
	if len(groupBy) == 0 {
		return nil, NewAnalysisError(ErrConfiguration, "nenhuma coluna de agrupamento informada")
	}

	if err := requireColumns(t, append(append([]string{}, groupBy...), valueColumn)...); err != nil {
		return nil, err
	}

	if reducer != Sum && reducer != Mean {
		return nil, NewAnalysisError(ErrConfiguration, "redutor desconhecido: "+reducer.String())
	}

	// Mapa para localizar o acumulador de cada chave e slice para manter a ordem
	accumulators := make(map[string]*groupAggregator)
	order := make([]*groupAggregator, 0)

	for i := 0; i < t.Len(); i++ {
		key := make([]domain.Cell, len(groupBy))
		parts := make([]string, len(groupBy))
		for j, column := range groupBy {
			key[j] = t.Value(i, column)
			parts[j] = key[j].GroupKey()
		}
		mapKey := strings.Join(parts, "\x1f")

		acc, exists := accumulators[mapKey]
		if !exists {
			acc = &groupAggregator{key: key}
			accumulators[mapKey] = acc
			order = append(order, acc)
		}

		if value, ok := t.Value(i, valueColumn).Float(); ok {
			acc.sum += value
			acc.count++
		}
	}

	bucket := &domain.Bucket{
		KeyColumns:  append([]string{}, groupBy...),
		ValueColumn: valueColumn,
		Rows:        make([]domain.BucketRow, 0, len(order)),
	}

	for _, acc := range order {
		value := acc.sum
		if reducer == Mean {
			if acc.count == 0 {
				return nil, NewColumnError(ErrEmptyGroup, valueColumn, "grupo sem valores observados: "+keyLabel(acc.key))
			}
			value = acc.sum / float64(acc.count)
		}

		bucket.Rows = append(bucket.Rows, domain.BucketRow{
			Key:   acc.key,
			Value: value,
			Count: acc.count,
		})
	}

	return bucket, nil
}

func keyLabel(key []domain.Cell) string {
	labels := make([]string, len(key))
	for i, cell := range key {
		labels[i] = cell.Label()
	}
	return strings.Join(labels, ", ")
}
