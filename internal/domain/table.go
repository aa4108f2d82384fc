package domain

import (
	"fmt"
)

// Table é uma tabela de vendas unitárias endereçável pelo nome das colunas.
// Depois de montada não é alterada: Filter e WithColumn devolvem novas tabelas.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]Cell
}

// NewTable cria uma tabela vazia com as colunas informadas
func NewTable(columns ...string) *Table {
	t := &Table{
		columns: make([]string, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}

	for _, name := range columns {
		if _, exists := t.index[name]; exists {
			continue
		}
		t.index[name] = len(t.columns)
		t.columns = append(t.columns, name)
	}

	return t
}

// Append adiciona uma linha durante a montagem da tabela
func (t *Table) Append(cells ...Cell) error {
	if len(cells) != len(t.columns) {
		return fmt.Errorf("linha com %d células para %d colunas", len(cells), len(t.columns))
	}

	row := make([]Cell, len(cells))
	copy(row, cells)
	t.rows = append(t.rows, row)
	return nil
}

func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Value retorna a célula da linha i na coluna informada (ausente se a coluna não existir)
func (t *Table) Value(i int, column string) Cell {
	j, ok := t.index[column]
	if !ok {
		return Missing()
	}
	return t.rows[i][j]
}

// Cells retorna uma cópia de todas as células de uma coluna
func (t *Table) Cells(column string) []Cell {
	j, ok := t.index[column]
	if !ok {
		return nil
	}

	out := make([]Cell, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[j]
	}
	return out
}

// Filter devolve uma nova tabela apenas com as linhas aceitas pelo predicado
func (t *Table) Filter(keep func(i int) bool) *Table {
	out := &Table{
		columns: t.columns,
		index:   t.index,
		rows:    make([][]Cell, 0, len(t.rows)),
	}

	for i, row := range t.rows {
		if keep(i) {
			out.rows = append(out.rows, row)
		}
	}

	return out
}

// WithColumn devolve uma nova tabela com a coluna substituída ou adicionada ao final
func (t *Table) WithColumn(name string, values []Cell) (*Table, error) {
	if len(values) != len(t.rows) {
		return nil, fmt.Errorf("coluna %q com %d valores para %d linhas", name, len(values), len(t.rows))
	}

	j, exists := t.index[name]

	out := NewTable(t.columns...)
	if !exists {
		out = NewTable(append(t.Columns(), name)...)
		j = len(t.columns)
	}

	out.rows = make([][]Cell, len(t.rows))
	for i, row := range t.rows {
		newRow := make([]Cell, len(out.columns))
		copy(newRow, row)
		newRow[j] = values[i]
		out.rows[i] = newRow
	}

	return out, nil
}
