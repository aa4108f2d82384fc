package domain

import (
	"math"
	"time"
)

// SaleRecord representa uma venda unitária do ponto de venda
type SaleRecord struct {
	Date        *time.Time
	TimeOfDay   *time.Time
	Amount      float64
	Discount    float64
	Quantity    int
	ProductName string
}

// FromRecords monta uma tabela já tipada a partir de vendas unitárias,
// usando os nomes de coluna configurados
func FromRecords(cols Columns, records []*SaleRecord) *Table {
	t := NewTable(cols.DateVar, cols.TimeVar, cols.SalesVar, cols.DiscountVar, cols.QuantityVar, cols.NameVar)

	for _, r := range records {
		if r == nil {
			continue
		}

		date := Missing()
		if r.Date != nil {
			date = Date(*r.Date)
		}

		tod := Missing()
		if r.TimeOfDay != nil {
			tod = TimeOfDay(*r.TimeOfDay)
		}

		// a quantidade de células sempre bate com as colunas acima
		_ = t.Append(
			date,
			tod,
			Number(r.Amount),
			Number(r.Discount),
			Number(float64(r.Quantity)),
			String(r.ProductName),
		)
	}

	return t
}

// ToRecords converte uma tabela normalizada de volta em vendas unitárias.
// Linhas sem data ou sem horário interpretados são descartadas e contadas em skipped.
func ToRecords(cols Columns, t *Table) (records []*SaleRecord, skipped int) {
	records = make([]*SaleRecord, 0, t.Len())

	for i := 0; i < t.Len(); i++ {
		dateCell, timeCell := t.Value(i, cols.DateVar), t.Value(i, cols.TimeVar)
		if dateCell.Kind() != KindDate || timeCell.Kind() != KindTime {
			skipped++
			continue
		}
		date, _ := dateCell.Time()
		tod, _ := timeCell.Time()

		amount, _ := t.Value(i, cols.SalesVar).Float()
		discount, _ := t.Value(i, cols.DiscountVar).Float()
		quantity, _ := t.Value(i, cols.QuantityVar).Float()
		name, _ := t.Value(i, cols.NameVar).Str()

		records = append(records, &SaleRecord{
			Date:        &date,
			TimeOfDay:   &tod,
			Amount:      amount,
			Discount:    discount,
			Quantity:    int(math.Round(quantity)),
			ProductName: name,
		})
	}

	return records, skipped
}
