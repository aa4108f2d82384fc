package domain

import (
	"strings"
)

// BucketRow é uma linha agregada: a chave composta e o valor reduzido
type BucketRow struct {
	Key   []Cell  `json:"key"`
	Value float64 `json:"value"`
	// Count é o número de valores observados (não ausentes) no grupo
	Count int `json:"count"`
}

// Bucket é o resultado de uma agregação, uma linha por chave distinta
// na ordem em que cada chave apareceu
type Bucket struct {
	KeyColumns  []string    `json:"key_columns"`
	ValueColumn string      `json:"value_column"`
	Rows        []BucketRow `json:"rows"`
}

func (b *Bucket) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Rows)
}

// Total soma os valores de todas as linhas
func (b *Bucket) Total() float64 {
	if b == nil {
		return 0
	}

	total := 0.0
	for _, row := range b.Rows {
		total += row.Value
	}
	return total
}

// Get busca o valor de uma chave composta
func (b *Bucket) Get(key ...Cell) (float64, bool) {
	if b == nil {
		return 0, false
	}

	for _, row := range b.Rows {
		if len(row.Key) != len(key) {
			continue
		}

		match := true
		for i := range key {
			if !row.Key[i].Equal(key[i]) {
				match = false
				break
			}
		}

		if match {
			return row.Value, true
		}
	}

	return 0, false
}

// Table converte o bucket em tabela para uma nova etapa de agregação.
// Grupos sem valores observados (Count zero) viram células ausentes.
func (b *Bucket) Table() *Table {
	t := NewTable(append(append([]string{}, b.KeyColumns...), b.ValueColumn)...)

	for _, row := range b.Rows {
		value := Number(row.Value)
		if row.Count == 0 {
			value = Missing()
		}

		cells := make([]Cell, 0, len(row.Key)+1)
		cells = append(cells, row.Key...)
		cells = append(cells, value)
		_ = t.Append(cells...)
	}

	return t
}

// Points converte o bucket na distribuição rotulada consumida pelo gráfico
func (b *Bucket) Points() []Point {
	if b == nil {
		return nil
	}

	points := make([]Point, 0, len(b.Rows))
	for _, row := range b.Rows {
		labels := make([]string, len(row.Key))
		for i, cell := range row.Key {
			labels[i] = cell.Label()
		}

		points = append(points, Point{
			Label: strings.Join(labels, " "),
			Value: row.Value,
		})
	}

	return points
}

// Point é um par (rótulo, valor) de uma série categórica
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}
