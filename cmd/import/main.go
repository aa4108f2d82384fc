package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pos-sales-analytics/infrastructure/database"
	"github.com/vfg2006/pos-sales-analytics/infrastructure/repository"
	"github.com/vfg2006/pos-sales-analytics/infrastructure/spreadsheet"
	"github.com/vfg2006/pos-sales-analytics/internal/config"
	"github.com/vfg2006/pos-sales-analytics/internal/domain"
	"github.com/vfg2006/pos-sales-analytics/internal/usecases/analyzing"
)

// Importa um export xlsx do PDV (SOURCE_PATH) para a tabela sales do banco configurado
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando importação de vendas...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	opts, err := cfg.AnalysisOptions()
	if err != nil {
		logrus.WithError(err).Fatal("Configuração de análise inválida")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	startTime := time.Now()

	table, err := spreadsheet.NewReader(cfg.Source.Path, cfg.Source.Sheet, cfg.Source.Progress, opts.Columns).Load(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao ler planilha de vendas")
	}

	normalized, err := analyzing.Normalize(table, opts)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao interpretar datas e horários da planilha")
	}

	records, skipped := domain.ToRecords(opts.Columns, normalized)
	if skipped > 0 {
		logrus.WithField("skipped", skipped).Warn("Linhas sem data ou horário válidos não serão importadas")
	}

	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer conn.Close()

	inserted, err := repository.NewSaleRepository(conn).InsertBatch(ctx, records)
	if err != nil {
		conn.Close()
		logrus.WithError(err).Fatal("Importação cancelada, nenhuma venda gravada")
	}

	logrus.WithFields(logrus.Fields{
		"inserted": inserted,
		"skipped":  skipped,
		"duration": time.Since(startTime).String(),
	}).Info("Importação concluída")
}
