package analyzing

import (
	"context"

	"github.com/vfg2006/pos-sales-analytics/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// Plotter define o destino externo que renderiza uma série de barras rotuladas
type Plotter interface {
	// PlotBars renderiza a distribuição na ordem recebida
	PlotBars(title string, points []domain.Point) error
}

// Analyzer é a interface completa das análises de vendas com as opções configuradas
type Analyzer interface {
	// OpportunityCost estima a receita média diária após o horário de fechamento
	OpportunityCost(table *domain.Table) (float64, error)

	// ProductLineContribution calcula a receita por ciclo de compra da linha de produtos
	ProductLineContribution(table *domain.Table) (float64, error)

	// SalesSummary monta o resumo diário, semanal e mensal com tendência
	SalesSummary(table *domain.Table) (*domain.SalesSummary, error)

	// HourlyItemRate calcula a média de itens por hora do dia
	HourlyItemRate(table *domain.Table) (*domain.Bucket, error)

	// Report executa todas as análises sobre a mesma tabela
	Report(ctx context.Context, table *domain.Table) (*domain.Report, error)
}
