package repository

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pos-sales-analytics/internal/domain"
)

func TestBuildListQuery(t *testing.T) {
	start := time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		placeholder squirrel.PlaceholderFormat
		expectedSQL string
	}{
		{
			name:        "Postgres",
			placeholder: squirrel.Dollar,
			expectedSQL: "SELECT s.sold_at, s.net_amount, s.discount, s.quantity, s.product_name FROM sales s WHERE s.sold_at >= $1 AND s.sold_at < $2 ORDER BY s.sold_at ASC",
		},
		{
			name:        "MySQL",
			placeholder: squirrel.Question,
			expectedSQL: "SELECT s.sold_at, s.net_amount, s.discount, s.quantity, s.product_name FROM sales s WHERE s.sold_at >= ? AND s.sold_at < ? ORDER BY s.sold_at ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListQuery(start, end, tt.placeholder)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedSQL, query)
			assert.Equal(t, []interface{}{
				time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			}, args)
		})
	}
}

type fakeRow struct {
	values []interface{}
	err    error
}

func (f fakeRow) Scan(dest ...interface{}) error {
	if f.err != nil {
		return f.err
	}

	for i, d := range dest {
		switch target := d.(type) {
		case *sql.NullTime:
			if v, ok := f.values[i].(time.Time); ok {
				*target = sql.NullTime{Time: v, Valid: true}
			}
		case *decimal.NullDecimal:
			if v, ok := f.values[i].(string); ok {
				*target = decimal.NullDecimal{Decimal: decimal.RequireFromString(v), Valid: true}
			}
		case *sql.NullInt64:
			if v, ok := f.values[i].(int64); ok {
				*target = sql.NullInt64{Int64: v, Valid: true}
			}
		case *sql.NullString:
			if v, ok := f.values[i].(string); ok {
				*target = sql.NullString{String: v, Valid: true}
			}
		}
	}

	return nil
}

func TestScanSale(t *testing.T) {
	t.Run("Separa data e horário da venda", func(t *testing.T) {
		soldAt := time.Date(2024, 3, 5, 18, 45, 10, 0, time.UTC)

		sale, err := scanSale(fakeRow{values: []interface{}{soldAt, "12.90", "1.10", int64(2), "Latte"}})
		require.NoError(t, err)

		require.NotNil(t, sale.Date)
		require.NotNil(t, sale.TimeOfDay)
		assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), *sale.Date)
		assert.Equal(t, 18, sale.TimeOfDay.Hour())
		assert.Equal(t, 45, sale.TimeOfDay.Minute())
		assert.Equal(t, 12.9, sale.Amount)
		assert.Equal(t, 1.1, sale.Discount)
		assert.Equal(t, 2, sale.Quantity)
		assert.Equal(t, "Latte", sale.ProductName)
	})

	t.Run("Colunas nulas", func(t *testing.T) {
		sale, err := scanSale(fakeRow{values: []interface{}{nil, "5", nil, nil, nil}})
		require.NoError(t, err)

		assert.Nil(t, sale.Date)
		assert.Nil(t, sale.TimeOfDay)
		assert.Equal(t, 5.0, sale.Amount)
		assert.Equal(t, 0.0, sale.Discount)
		assert.Empty(t, sale.ProductName)
	})

	t.Run("Erro de leitura", func(t *testing.T) {
		_, err := scanSale(fakeRow{err: errors.New("conn reset")})
		assert.EqualError(t, err, "conn reset")
	})
}

func TestBuildInsertQuery(t *testing.T) {
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	tod := time.Date(0, 1, 1, 18, 45, 0, 0, time.UTC)

	t.Run("Combina data e horário em sold_at", func(t *testing.T) {
		query, args, err := buildInsertQuery([]*domain.SaleRecord{
			{Date: &date, TimeOfDay: &tod, Amount: 12.9, Discount: 1.1, Quantity: 2, ProductName: "Latte"},
			{Date: nil, TimeOfDay: &tod, Amount: 3},
		}, squirrel.Dollar)
		require.NoError(t, err)

		assert.Equal(t, "INSERT INTO sales (sold_at,net_amount,discount,quantity,product_name) VALUES ($1,$2,$3,$4,$5)", query)
		assert.Equal(t, []interface{}{
			time.Date(2024, 3, 5, 18, 45, 0, 0, time.UTC),
			"12.90",
			"1.10",
			2,
			"Latte",
		}, args)
	})

	t.Run("Lote sem vendas válidas", func(t *testing.T) {
		query, args, err := buildInsertQuery([]*domain.SaleRecord{{Amount: 1}}, squirrel.Question)
		require.NoError(t, err)
		assert.Empty(t, query)
		assert.Empty(t, args)
	})
}
