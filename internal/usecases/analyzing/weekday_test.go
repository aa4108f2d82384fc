package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterWeekdays(t *testing.T) {
	opts := testOptions()
	dateVar := opts.Columns.DateVar

	// 06/01/2024 é sábado e 07/01/2024 é domingo
	table := buildTable(t,
		saleRow{date: "2024-01-05", time: "10:00", amount: 10},
		saleRow{date: "2024-01-06", time: "11:00", amount: 20},
		saleRow{date: "2024-01-07", time: "12:00", amount: 30},
		saleRow{date: "invalid", time: "12:00", amount: 40},
	)
	normalized, err := Normalize(table, opts)
	require.NoError(t, err)

	t.Run("weekdays=true mantém todas as linhas (predicado histórico é sempre verdadeiro)", func(t *testing.T) {
		// Comportamento atual, não corrigido: sábado e domingo continuam na tabela
		filtered, err := FilterWeekdays(normalized, dateVar, true)
		require.NoError(t, err)
		assert.Equal(t, normalized.Len(), filtered.Len())
	})

	t.Run("weekdays=false é a identidade", func(t *testing.T) {
		filtered, err := FilterWeekdays(normalized, dateVar, false)
		require.NoError(t, err)
		assert.Same(t, normalized, filtered)
	})

	t.Run("variante estrita exclui sábado e domingo", func(t *testing.T) {
		filtered, err := FilterWeekdaysStrict(normalized, dateVar, true)
		require.NoError(t, err)
		require.Equal(t, 2, filtered.Len())
		assert.Equal(t, "2024-01-05", filtered.Value(0, dateVar).Label())
		assert.True(t, filtered.Value(1, dateVar).IsMissing())
	})

	t.Run("variante estrita com weekdays=false é a identidade", func(t *testing.T) {
		filtered, err := FilterWeekdaysStrict(normalized, dateVar, false)
		require.NoError(t, err)
		assert.Equal(t, normalized.Len(), filtered.Len())
	})

	t.Run("coluna de data inexistente", func(t *testing.T) {
		_, err := FilterWeekdays(normalized, "Datum", true)
		assert.ErrorIs(t, err, ErrConfiguration)
	})
}
