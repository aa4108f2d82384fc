package analyzing

import (
	"math"
	"sort"
	"time"

	"github.com/vfg2006/pos-sales-analytics/internal/domain"
)

// FitTrend ajusta por mínimos quadrados a receita diária em função da data.
// O bucket deve ter a data como primeira coluna da chave; dias sem data
// válida ficam fora do ajuste.
func FitTrend(daily *domain.Bucket) (domain.Trend, error) {
	type observation struct {
		date time.Time
		x, y float64
	}

	observations := make([]observation, 0, daily.Len())
	distinct := make(map[float64]bool)
	for _, row := range daily.Rows {
		if len(row.Key) == 0 || row.Key[0].Kind() != domain.KindDate {
			continue
		}

		date, _ := row.Key[0].Time()
		x := domain.DayOrdinal(date)
		observations = append(observations, observation{date: date, x: x, y: row.Value})
		distinct[x] = true
	}

	if len(distinct) < 2 {
		return domain.Trend{}, NewAnalysisError(ErrInsufficientData, "são necessários pelo menos 2 dias distintos")
	}

	sort.SliceStable(observations, func(i, j int) bool {
		return observations[i].x < observations[j].x
	})

	n := float64(len(observations))
	meanX, meanY := 0.0, 0.0
	for _, o := range observations {
		meanX += o.x
		meanY += o.y
	}
	meanX /= n
	meanY /= n

	// Somas centradas para evitar perda de precisão com ordinais grandes
	sxx, sxy, syy := 0.0, 0.0, 0.0
	for _, o := range observations {
		dx := o.x - meanX
		dy := o.y - meanY
		sxx += dx * dx
		sxy += dx * dy
		syy += dy * dy
	}

	slope := sxy / sxx
	intercept := meanY - slope*meanX

	trend := domain.Trend{
		Slope:     slope,
		Intercept: intercept,
		N:         len(observations),
		Fitted:    make([]domain.FittedPoint, 0, len(observations)),
	}

	ssRes := 0.0
	for _, o := range observations {
		fitted := intercept + slope*o.x
		residual := o.y - fitted
		ssRes += residual * residual

		trend.Fitted = append(trend.Fitted, domain.FittedPoint{
			Date:     o.date,
			Observed: o.y,
			Fitted:   fitted,
			Residual: residual,
		})
	}

	trend.RSquared = 1
	if syy > 0 {
		trend.RSquared = 1 - ssRes/syy
	}

	if len(observations) > 2 {
		trend.ResidualStdErr = math.Sqrt(ssRes / (n - 2))
	}

	return trend, nil
}
