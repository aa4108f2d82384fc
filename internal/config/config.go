package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/pos-sales-analytics/internal/domain"
	"github.com/vfg2006/pos-sales-analytics/internal/usecases/analyzing"
)

const (
	SourceXLSX     = "xlsx"
	SourceDatabase = "database"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Source     Source     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Analysis   Analysis   `mapstructure:",squash"`
	Plot       Plot       `mapstructure:",squash"`
	ReportSync ReportSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Source indica de onde vêm as vendas: um export xlsx do PDV ou o banco de dados
type Source struct {
	Kind     string `mapstructure:"source_kind"`
	Path     string `mapstructure:"source_path"`
	Sheet    string `mapstructure:"source_sheet"`
	Progress bool   `mapstructure:"source_progress"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Analysis agrupa os nomes de colunas e os parâmetros das análises
type Analysis struct {
	DateVar     string `mapstructure:"analysis_date_var"`
	TimeVar     string `mapstructure:"analysis_time_var"`
	SalesVar    string `mapstructure:"analysis_sales_var"`
	DiscountVar string `mapstructure:"analysis_discount_var"`
	QuantityVar string `mapstructure:"analysis_quantity_var"`
	NameVar     string `mapstructure:"analysis_name_var"`
	WeekVar     string `mapstructure:"analysis_week_var"`
	MonthVar    string `mapstructure:"analysis_month_var"`
	HourVar     string `mapstructure:"analysis_hour_var"`

	FormatTime     string   `mapstructure:"analysis_format_time"`
	FormatDate     string   `mapstructure:"analysis_format_date"`
	Weekdays       bool     `mapstructure:"analysis_weekdays"`
	StrictWeekdays bool     `mapstructure:"analysis_strict_weekdays"`
	OrderFrequency float64  `mapstructure:"analysis_order_frequency"`
	TimeClosure    string   `mapstructure:"analysis_time_closure"`
	ProductLine    []string `mapstructure:"analysis_product_line"`
}

type Plot struct {
	Enabled bool   `mapstructure:"plot_enabled"`
	Output  string `mapstructure:"plot_output"`
	Sheet   string `mapstructure:"plot_sheet"`
	Title   string `mapstructure:"plot_title"`
}

type ReportSync struct {
	CronSchedule  string `mapstructure:"report_sync_cron"`
	Enabled       bool   `mapstructure:"report_sync_enabled"`
	MonthLookBack int    `mapstructure:"report_sync_month_lookback"`
}

func SetDefaults() {
	defaults := domain.DefaultAnalysisOptions()

	viper.SetDefault("SOURCE_KIND", SourceXLSX)
	viper.SetDefault("SOURCE_PATH", "sales.xlsx")
	viper.SetDefault("SOURCE_SHEET", "") // Vazio usa a primeira planilha do arquivo
	viper.SetDefault("SOURCE_PROGRESS", false)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/pos")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("ANALYSIS_DATE_VAR", defaults.Columns.DateVar)
	viper.SetDefault("ANALYSIS_TIME_VAR", defaults.Columns.TimeVar)
	viper.SetDefault("ANALYSIS_SALES_VAR", defaults.Columns.SalesVar)
	viper.SetDefault("ANALYSIS_DISCOUNT_VAR", defaults.Columns.DiscountVar)
	viper.SetDefault("ANALYSIS_QUANTITY_VAR", defaults.Columns.QuantityVar)
	viper.SetDefault("ANALYSIS_NAME_VAR", defaults.Columns.NameVar)
	viper.SetDefault("ANALYSIS_WEEK_VAR", defaults.Columns.WeekVar)
	viper.SetDefault("ANALYSIS_MONTH_VAR", defaults.Columns.MonthVar)
	viper.SetDefault("ANALYSIS_HOUR_VAR", defaults.Columns.HourVar)

	viper.SetDefault("ANALYSIS_FORMAT_TIME", defaults.FormatTime)
	viper.SetDefault("ANALYSIS_FORMAT_DATE", defaults.FormatDate)
	viper.SetDefault("ANALYSIS_WEEKDAYS", defaults.Weekdays)
	viper.SetDefault("ANALYSIS_STRICT_WEEKDAYS", false)
	viper.SetDefault("ANALYSIS_ORDER_FREQUENCY", defaults.OrderFrequency)
	viper.SetDefault("ANALYSIS_TIME_CLOSURE", defaults.TimeClosure)
	viper.SetDefault("ANALYSIS_PRODUCT_LINE", "") // Lista separada por vírgulas

	viper.SetDefault("PLOT_ENABLED", false)
	viper.SetDefault("PLOT_OUTPUT", "hourly_items.xlsx")
	viper.SetDefault("PLOT_SHEET", "Itens por hora")
	viper.SetDefault("PLOT_TITLE", defaults.PlotTitle)

	// Relatório do mês anterior
	viper.SetDefault("REPORT_SYNC_CRON", "0 5 1 * *") // No primeiro dia de cada mês às 5h da manhã
	viper.SetDefault("REPORT_SYNC_ENABLED", false)
	viper.SetDefault("REPORT_SYNC_MONTH_LOOKBACK", 1)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Analysis.ProductLine = trimProducts(config.Analysis.ProductLine)

	switch config.Source.Kind {
	case SourceXLSX, SourceDatabase:
	default:
		return nil, fmt.Errorf("fonte de vendas desconhecida: %q", config.Source.Kind)
	}

	config.Database.DSN = buildDSN(config.Database)

	return config, nil
}

// AnalysisOptions converte a configuração nas opções das análises, validando
// o horário de fechamento e a frequência de pedidos antes de qualquer cálculo
func (c *Config) AnalysisOptions() (domain.AnalysisOptions, error) {
	a := c.Analysis

	opts := domain.AnalysisOptions{
		Columns: domain.Columns{
			DateVar:     a.DateVar,
			TimeVar:     a.TimeVar,
			SalesVar:    a.SalesVar,
			DiscountVar: a.DiscountVar,
			QuantityVar: a.QuantityVar,
			NameVar:     a.NameVar,
			WeekVar:     a.WeekVar,
			MonthVar:    a.MonthVar,
			HourVar:     a.HourVar,
		},
		FormatTime:     a.FormatTime,
		FormatDate:     a.FormatDate,
		Weekdays:       a.Weekdays,
		StrictWeekdays: a.StrictWeekdays,
		Plot:           c.Plot.Enabled,
		OrderFrequency: a.OrderFrequency,
		TimeClosure:    a.TimeClosure,
		ProductLine:    a.ProductLine,
		PlotTitle:      c.Plot.Title,
	}

	if _, err := analyzing.ParseTimeOfDay(opts.TimeClosure, opts.FormatTime); err != nil {
		return domain.AnalysisOptions{}, analyzing.NewAnalysisError(
			analyzing.ErrConfiguration,
			fmt.Sprintf("horário de fechamento %q não corresponde ao formato %q", opts.TimeClosure, opts.FormatTime),
		)
	}

	if opts.OrderFrequency <= 0 {
		return domain.AnalysisOptions{}, analyzing.NewAnalysisError(
			analyzing.ErrConfiguration,
			fmt.Sprintf("frequência de pedidos deve ser positiva: %v", opts.OrderFrequency),
		)
	}

	if opts.Plot && c.Plot.Output == "" {
		return domain.AnalysisOptions{}, analyzing.NewAnalysisError(analyzing.ErrConfiguration, "gráfico habilitado sem arquivo de saída")
	}

	return opts, nil
}

func buildDSN(db Database) string {
	if db.Driver == "mysql" {
		// go-sql-driver/mysql usa user:password@tcp(host:port)/dbname
		host, name, _ := strings.Cut(db.URL, "/")
		return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true", db.User, db.Password, host, name)
	}

	return fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
	)
}

func trimProducts(products []string) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
