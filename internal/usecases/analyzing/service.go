package analyzing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pos-sales-analytics/internal/domain"
	"github.com/vfg2006/pos-sales-analytics/pkg/log"
	"github.com/vfg2006/pos-sales-analytics/pkg/utils"
)

// Service aplica as análises de vendas com as opções configuradas
type Service struct {
	opts    domain.AnalysisOptions
	plotter Plotter
	now     func() time.Time
}

// NewService cria uma nova instância do serviço de análises
func NewService(opts domain.AnalysisOptions, plotter Plotter) Analyzer {
	return &Service{
		opts:    opts,
		plotter: plotter,
		now:     time.Now,
	}
}

// Options retorna as opções usadas pelo serviço
func (s *Service) Options() domain.AnalysisOptions {
	return s.opts
}

// OpportunityCost estima a receita média diária após o horário de fechamento
func (s *Service) OpportunityCost(table *domain.Table) (float64, error) {
	cost, err := OpportunityCost(table, s.opts)
	if err != nil {
		logrus.WithError(err).WithField("time_closure", s.opts.TimeClosure).Warn("Erro ao estimar custo de oportunidade")
		return 0, err
	}

	return cost, nil
}

// ProductLineContribution calcula a receita por ciclo de compra da linha de produtos
func (s *Service) ProductLineContribution(table *domain.Table) (float64, error) {
	contribution, err := ProductLineContribution(
		table,
		s.opts.ProductLine,
		s.opts.Columns.SalesVar,
		s.opts.Columns.NameVar,
		s.opts.OrderFrequency,
	)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"products":        len(s.opts.ProductLine),
			"order_frequency": s.opts.OrderFrequency,
		}).Warn("Erro ao calcular contribuição da linha de produtos")
		return 0, err
	}

	return contribution, nil
}

// SalesSummary monta o resumo diário, semanal e mensal com tendência
func (s *Service) SalesSummary(table *domain.Table) (*domain.SalesSummary, error) {
	summary, err := BuildSummary(table, s.opts)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao montar resumo de vendas")
		return nil, err
	}

	return summary, nil
}

// HourlyItemRate calcula a média de itens por hora do dia
func (s *Service) HourlyItemRate(table *domain.Table) (*domain.Bucket, error) {
	rate, err := HourlyItemRate(table, s.opts, s.plotter)
	if err != nil {
		logrus.WithError(err).WithField("plot", s.opts.Plot).Warn("Erro ao calcular itens por hora")
		return nil, err
	}

	return rate, nil
}

// Report executa todas as análises sobre a mesma tabela. Um período com menos
// de dois dias gera o relatório sem resumo; qualquer outro erro interrompe a execução.
func (s *Service) Report(ctx context.Context, table *domain.Table) (*domain.Report, error) {
	logger := log.ForContext(ctx)

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID do relatório: %w", err)
	}

	report := &domain.Report{
		ID:          id,
		GeneratedAt: s.now(),
		Rows:        table.Len(),
	}

	logger.WithFields(log.Fields{
		"report_id": id,
		"rows":      table.Len(),
	}).Info("Iniciando relatório de vendas")

	report.OpportunityCost, err = s.OpportunityCost(table)
	if err != nil {
		return nil, err
	}

	if len(s.opts.ProductLine) > 0 {
		contribution, err := s.ProductLineContribution(table)
		if err != nil {
			return nil, err
		}
		report.ProductLineContribution = &contribution
	}

	report.Summary, err = s.SalesSummary(table)
	if err != nil {
		if !errors.Is(err, ErrInsufficientData) {
			return nil, err
		}
		logger.WithField("report_id", id).Warn("Período com menos de dois dias, relatório gerado sem resumo")
	}

	rate, err := s.HourlyItemRate(table)
	if err != nil {
		return nil, err
	}
	report.HourlyItemRate = rate.Points()

	logger.WithFields(log.Fields{
		"report_id":        id,
		"opportunity_cost": utils.RoundWithTwoDecimalPlace(report.OpportunityCost),
		"hours":            len(report.HourlyItemRate),
	}).Info("Relatório de vendas concluído")

	return report, nil
}
