package main

import (
	"context"
	"fmt"
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
	"github.com/vfg2006/pos-sales-analytics/internal/scheduler"
	"github.com/vfg2006/pos-sales-analytics/internal/usecases/analyzing"
	"github.com/vfg2006/pos-sales-analytics/pkg/utils"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	opts, err := cfg.AnalysisOptions()
	if err != nil {
		logrus.WithError(err).Fatal("Configuração de análise inválida")
	}

	var plotter analyzing.Plotter
	if cfg.Plot.Enabled {
		plotter = spreadsheet.NewChartPlotter(cfg.Plot.Output, cfg.Plot.Sheet)
	}

	analyzer := analyzing.NewService(opts, plotter)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	switch cfg.Source.Kind {
	case config.SourceDatabase:
		err = runDatabase(ctx, cfg, analyzer, opts.Columns)
	default:
		err = runSpreadsheet(ctx, cfg, analyzer, opts.Columns)
	}

	if err != nil {
		logrus.WithError(err).Error("Execução finalizada com erro")
		cancel()
		os.Exit(1)
	}
}

// runSpreadsheet analisa um export xlsx e imprime o relatório
func runSpreadsheet(ctx context.Context, cfg *config.Config, analyzer analyzing.Analyzer, columns domain.Columns) error {
	reader := spreadsheet.NewReader(cfg.Source.Path, cfg.Source.Sheet, cfg.Source.Progress, columns)

	table, err := reader.Load(ctx)
	if err != nil {
		return err
	}

	report, err := analyzer.Report(ctx, table)
	if err != nil {
		return err
	}

	printReport(ctx, report)
	return nil
}

// runDatabase gera os relatórios mensais a partir do banco, agendados ou imediatamente
func runDatabase(ctx context.Context, cfg *config.Config, analyzer analyzing.Analyzer, columns domain.Columns) error {
	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	saleRepo := repository.NewSaleRepository(conn)
	reportSyncService := scheduler.NewReportSyncService(saleRepo, analyzer, columns, printReport, cfg)

	if !cfg.ReportSync.Enabled {
		_, err := reportSyncService.RunNow(ctx)
		return err
	}

	if err := reportSyncService.Start(ctx); err != nil {
		return err
	}
	logrus.Info("Agendador de relatórios mensais iniciado com sucesso")

	<-ctx.Done()
	logrus.Info("Encerrando")
	return nil
}

func printReport(_ context.Context, report *domain.Report) {
	fmt.Println(utils.PrettyJson(report))
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// dbconn cria uma conexão com o banco de dados de vendas
func dbconn(ctx context.Context, dbConfig config.Database) *database.Connection {
	conn, err := database.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).WithField("driver", dbConfig.Driver).Fatal("Erro ao conectar ao banco de dados")
	}

	logrus.WithField("driver", dbConfig.Driver).Info("Conexão com o banco de dados estabelecida com sucesso")
	return conn
}
