package domain

import (
	"time"
)

// SalesSummary representa o resumo de vendas de uma tabela: agregados diário,
// semanal e mensal, total de descontos e a tendência linear da receita diária
type SalesSummary struct {
	Daily         *Bucket `json:"daily"`
	Weekly        *Bucket `json:"weekly"`
	Monthly       *Bucket `json:"monthly"`
	TotalDiscount float64 `json:"total_discount"`
	Trend         Trend   `json:"trend"`
}

// FittedPoint é um ponto da regressão: valor observado, ajustado e resíduo
type FittedPoint struct {
	Date     time.Time `json:"date"`
	Observed float64   `json:"observed"`
	Fitted   float64   `json:"fitted"`
	Residual float64   `json:"residual"`
}

// Trend é a reta de mínimos quadrados da receita diária em função da data.
// O eixo x é o número de dias desde a época Unix.
type Trend struct {
	Slope          float64       `json:"slope"`
	Intercept      float64       `json:"intercept"`
	RSquared       float64       `json:"r_squared"`
	ResidualStdErr float64       `json:"residual_std_err"`
	N              int           `json:"n"`
	Fitted         []FittedPoint `json:"fitted"`
}

// DayOrdinal converte uma data no eixo x da regressão
func DayOrdinal(date time.Time) float64 {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return float64(d.Unix() / 86400)
}

// Predict retorna o valor ajustado para uma data
func (t Trend) Predict(date time.Time) float64 {
	return t.Intercept + t.Slope*DayOrdinal(date)
}

// FittedAt busca o ponto ajustado de uma data observada
func (t Trend) FittedAt(date time.Time) (FittedPoint, bool) {
	x := DayOrdinal(date)
	for _, p := range t.Fitted {
		if DayOrdinal(p.Date) == x {
			return p, true
		}
	}
	return FittedPoint{}, false
}
