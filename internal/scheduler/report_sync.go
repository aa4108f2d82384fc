package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pos-sales-analytics/infrastructure/repository"
	"github.com/vfg2006/pos-sales-analytics/internal/config"
	"github.com/vfg2006/pos-sales-analytics/internal/domain"
	"github.com/vfg2006/pos-sales-analytics/internal/usecases/analyzing"
	"github.com/vfg2006/pos-sales-analytics/pkg/log"
	"github.com/vfg2006/pos-sales-analytics/pkg/utils"
)

// ErrSyncRunning indica que já existe uma geração de relatórios em andamento
var ErrSyncRunning = fmt.Errorf("geração de relatórios já em andamento")

// ReportHandler recebe cada relatório mensal gerado
type ReportHandler func(ctx context.Context, report *domain.Report)

// ReportSyncConfig representa a configuração do agendador de relatórios mensais
type ReportSyncConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	MonthLookBack int
}

// ReportSyncService gera periodicamente o relatório de vendas dos meses anteriores
type ReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              ReportSyncConfig
	columns             domain.Columns
	saleRepo            repository.SaleRepository
	analyzer            analyzing.Analyzer
	handle              ReportHandler
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewReportSyncService cria uma nova instância do agendador de relatórios
func NewReportSyncService(
	saleRepo repository.SaleRepository,
	analyzer analyzing.Analyzer,
	columns domain.Columns,
	handle ReportHandler,
	appConfig *config.Config,
) *ReportSyncService {
	syncConfig := ReportSyncConfig{
		CronSchedule:  appConfig.ReportSync.CronSchedule,
		SyncEnabled:   appConfig.ReportSync.Enabled,
		MonthLookBack: appConfig.ReportSync.MonthLookBack,
	}
	if syncConfig.MonthLookBack < 1 {
		syncConfig.MonthLookBack = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"sync_enabled":   syncConfig.SyncEnabled,
		"month_lookback": syncConfig.MonthLookBack,
	}).Info("Configuração do agendador de relatórios carregada")

	return &ReportSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		columns:   columns,
		saleRepo:  saleRepo,
		analyzer:  analyzer,
		handle:    handle,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Geração agendada de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de relatórios mensais")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunNow(ctx); err != nil {
			logrus.WithError(err).Error("Erro na geração agendada de relatórios")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatórios mensais: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de relatórios mensais")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow gera os relatórios dos últimos MonthLookBack meses completos, do mais
// recente para o mais antigo. Meses sem vendas são ignorados; uma falha em um mês
// não impede os demais.
func (s *ReportSyncService) RunNow(ctx context.Context) ([]*domain.Report, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de relatórios já em andamento, ignorando")
		return nil, ErrSyncRunning
	}
	startTime := s.now()
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx)

	currentMonth := time.Date(startTime.Year(), startTime.Month(), 1, 0, 0, 0, 0, startTime.Location())

	reports := make([]*domain.Report, 0, s.config.MonthLookBack)
	failed := 0
	for i := 1; i <= s.config.MonthLookBack; i++ {
		if err := ctx.Err(); err != nil {
			return reports, err
		}

		firstDayOfMonth, lastDayOfMonth := utils.MonthRange(currentMonth.AddDate(0, -i, 0))

		report, err := s.reportMonth(ctx, firstDayOfMonth, lastDayOfMonth)
		if err != nil {
			failed++
			logger.WithError(err).WithField("month", firstDayOfMonth.Format("01-2006")).Error("Erro ao gerar relatório mensal")
			continue
		}
		if report == nil {
			continue
		}

		reports = append(reports, report)
		if s.handle != nil {
			s.handle(ctx, report)
		}
	}

	completedAt := s.now()
	s.syncMutex.Lock()
	s.lastSyncCompletedAt = completedAt
	s.syncMutex.Unlock()

	logger.WithFields(log.Fields{
		"reports":  len(reports),
		"failed":   failed,
		"duration": completedAt.Sub(startTime).String(),
	}).Info("Geração de relatórios mensais concluída")

	if failed > 0 {
		return reports, fmt.Errorf("%d de %d meses falharam", failed, s.config.MonthLookBack)
	}

	return reports, nil
}

// reportMonth retorna nil sem erro quando o mês não possui vendas
func (s *ReportSyncService) reportMonth(ctx context.Context, startDate, endDate time.Time) (*domain.Report, error) {
	month := startDate.Format("01-2006")

	sales, err := s.saleRepo.ListByPeriod(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas de %s: %w", month, err)
	}

	if len(sales) == 0 {
		log.ForContext(ctx).WithField("month", month).Info("Nenhuma venda no período, relatório ignorado")
		return nil, nil
	}

	report, err := s.analyzer.Report(ctx, domain.FromRecords(s.columns, sales))
	if err != nil {
		return nil, err
	}
	report.Period = month

	return report, nil
}

// GetStatus retorna o status atual do agendador
func (s *ReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
