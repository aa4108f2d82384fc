package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pos-sales-analytics/internal/domain"
)

func TestAggregate(t *testing.T) {
	opts := testOptions()
	cols := opts.Columns

	table := buildTable(t,
		saleRow{date: "2024-01-01", time: "09:00", amount: 10, quantity: 1, name: "A"},
		saleRow{date: "2024-01-01", time: "09:30", amount: 15, quantity: 3, name: "B"},
		saleRow{date: "2024-01-02", time: "18:00", amount: 20, quantity: 2, name: "A"},
		saleRow{date: "bad-date", time: "10:00", amount: 7, quantity: 1, name: "C"},
	)
	normalized, err := Normalize(table, opts)
	require.NoError(t, err)

	t.Run("soma por chave simples na ordem de aparição", func(t *testing.T) {
		bucket, err := Aggregate(normalized, []string{cols.DateVar}, cols.SalesVar, Sum)
		require.NoError(t, err)
		require.Equal(t, 3, bucket.Len())

		assert.Equal(t, "2024-01-01", bucket.Rows[0].Key[0].Label())
		assert.Equal(t, 25.0, bucket.Rows[0].Value)
		assert.Equal(t, 2, bucket.Rows[0].Count)
		assert.Equal(t, "2024-01-02", bucket.Rows[1].Key[0].Label())
		assert.Equal(t, 20.0, bucket.Rows[1].Value)

		// Data ausente forma um grupo próprio
		assert.True(t, bucket.Rows[2].Key[0].IsMissing())
		assert.Equal(t, 7.0, bucket.Rows[2].Value)
	})

	t.Run("soma dos grupos conserva o total da coluna", func(t *testing.T) {
		for _, groupBy := range [][]string{
			{cols.DateVar},
			{cols.WeekVar},
			{cols.MonthVar},
			{cols.NameVar},
			{cols.NameVar, cols.DateVar},
		} {
			bucket, err := Aggregate(normalized, groupBy, cols.SalesVar, Sum)
			require.NoError(t, err)
			assert.InDelta(t, sumColumn(normalized, cols.SalesVar), bucket.Total(), 1e-9, "group by %v", groupBy)
		}
	})

	t.Run("chave composta", func(t *testing.T) {
		bucket, err := Aggregate(normalized, []string{cols.NameVar, cols.DateVar}, cols.QuantityVar, Sum)
		require.NoError(t, err)
		require.Equal(t, 4, bucket.Len())

		value, ok := bucket.Get(domain.String("A"), normalized.Value(0, cols.DateVar))
		require.True(t, ok)
		assert.Equal(t, 1.0, value)

		value, ok = bucket.Get(domain.String("A"), normalized.Value(2, cols.DateVar))
		require.True(t, ok)
		assert.Equal(t, 2.0, value)
	})

	t.Run("média por grupo", func(t *testing.T) {
		bucket, err := Aggregate(normalized, []string{cols.DateVar}, cols.QuantityVar, Mean)
		require.NoError(t, err)

		value, ok := bucket.Get(normalized.Value(0, cols.DateVar))
		require.True(t, ok)
		assert.Equal(t, 2.0, value)
	})

	t.Run("valores ausentes ficam fora da soma e da média", func(t *testing.T) {
		withMissing := domain.NewTable("key", "value")
		require.NoError(t, withMissing.Append(domain.String("x"), domain.Number(4)))
		require.NoError(t, withMissing.Append(domain.String("x"), domain.Missing()))
		require.NoError(t, withMissing.Append(domain.String("x"), domain.Number(2)))

		sum, err := Aggregate(withMissing, []string{"key"}, "value", Sum)
		require.NoError(t, err)
		assert.Equal(t, 6.0, sum.Rows[0].Value)

		mean, err := Aggregate(withMissing, []string{"key"}, "value", Mean)
		require.NoError(t, err)
		assert.Equal(t, 3.0, mean.Rows[0].Value)
		assert.Equal(t, 2, mean.Rows[0].Count)
	})

	t.Run("média de grupo sem valores observados", func(t *testing.T) {
		empty := domain.NewTable("key", "value")
		require.NoError(t, empty.Append(domain.String("x"), domain.Missing()))

		sum, err := Aggregate(empty, []string{"key"}, "value", Sum)
		require.NoError(t, err)
		assert.Equal(t, 0.0, sum.Rows[0].Value)

		_, err = Aggregate(empty, []string{"key"}, "value", Mean)
		assert.ErrorIs(t, err, ErrEmptyGroup)
	})

	t.Run("tabela vazia gera bucket vazio", func(t *testing.T) {
		bucket, err := Aggregate(domain.NewTable("key", "value"), []string{"key"}, "value", Mean)
		require.NoError(t, err)
		assert.Equal(t, 0, bucket.Len())
		assert.Equal(t, 0.0, bucket.Total())
	})

	t.Run("configuração inválida", func(t *testing.T) {
		_, err := Aggregate(normalized, []string{"Unknown"}, cols.SalesVar, Sum)
		assert.ErrorIs(t, err, ErrConfiguration)

		_, err = Aggregate(normalized, []string{cols.DateVar}, "Unknown", Sum)
		assert.ErrorIs(t, err, ErrConfiguration)

		_, err = Aggregate(normalized, nil, cols.SalesVar, Sum)
		assert.ErrorIs(t, err, ErrConfiguration)

		_, err = Aggregate(normalized, []string{cols.DateVar}, cols.SalesVar, Reducer(9))
		assert.ErrorIs(t, err, ErrConfiguration)
	})
}

func TestBucketTableFeedsSecondStage(t *testing.T) {
	first := domain.NewTable("hour", "day", "qty")
	require.NoError(t, first.Append(domain.String("09:00"), domain.String("d1"), domain.Number(1)))
	require.NoError(t, first.Append(domain.String("09:00"), domain.String("d1"), domain.Number(3)))
	require.NoError(t, first.Append(domain.String("09:00"), domain.String("d2"), domain.Number(2)))

	perDay, err := Aggregate(first, []string{"hour", "day"}, "qty", Sum)
	require.NoError(t, err)

	mean, err := Aggregate(perDay.Table(), []string{"hour"}, "qty", Mean)
	require.NoError(t, err)
	require.Equal(t, 1, mean.Len())

	// (4 + 2) / 2 dias observados, não / 3 vendas
	assert.Equal(t, 3.0, mean.Rows[0].Value)
}

func TestBucketTableKeepsUnobservedGroupsMissing(t *testing.T) {
	first := domain.NewTable("hour", "day", "qty")
	require.NoError(t, first.Append(domain.String("09:00"), domain.String("d1"), domain.Number(2)))
	require.NoError(t, first.Append(domain.String("09:00"), domain.String("d2"), domain.Missing()))

	perDay, err := Aggregate(first, []string{"hour", "day"}, "qty", Sum)
	require.NoError(t, err)

	table := perDay.Table()
	observed, ok := table.Value(0, "qty").Float()
	require.True(t, ok)
	assert.Equal(t, 2.0, observed)
	assert.True(t, table.Value(1, "qty").IsMissing())

	mean, err := Aggregate(table, []string{"hour"}, "qty", Mean)
	require.NoError(t, err)
	assert.Equal(t, 2.0, mean.Rows[0].Value)
}
