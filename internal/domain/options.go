package domain

// Nomes de coluna padrão do export do terminal de vendas
const (
	DefaultDateVar     = "Date"
	DefaultTimeVar     = "Time"
	DefaultSalesVar    = "Net sales (EUR)"
	DefaultDiscountVar = "Discount"
	DefaultQuantityVar = "Quantity"
	DefaultNameVar     = "Name"
	DefaultWeekVar     = "Week"
	DefaultMonthVar    = "Month"
	DefaultHourVar     = "Hour"

	DefaultFormatTime = "15:04:05"
	DefaultFormatDate = "2006-01-02"
)

// Columns mapeia cada campo da venda para o nome da coluna na tabela de entrada
type Columns struct {
	DateVar     string `json:"date_var"`
	TimeVar     string `json:"time_var"`
	SalesVar    string `json:"sales_var"`
	DiscountVar string `json:"discount_var"`
	QuantityVar string `json:"quantity_var"`
	NameVar     string `json:"name_var"`
	WeekVar     string `json:"week_var"`
	MonthVar    string `json:"month_var"`
	HourVar     string `json:"hour_var"`
}

// DefaultColumns retorna o esquema padrão do export
func DefaultColumns() Columns {
	return Columns{
		DateVar:     DefaultDateVar,
		TimeVar:     DefaultTimeVar,
		SalesVar:    DefaultSalesVar,
		DiscountVar: DefaultDiscountVar,
		QuantityVar: DefaultQuantityVar,
		NameVar:     DefaultNameVar,
		WeekVar:     DefaultWeekVar,
		MonthVar:    DefaultMonthVar,
		HourVar:     DefaultHourVar,
	}
}

// AnalysisOptions reúne os parâmetros reconhecidos pelos componentes de análise
type AnalysisOptions struct {
	Columns Columns `json:"columns"`

	// FormatTime e FormatDate usam o layout de referência do pacote time
	FormatTime string `json:"format_time"`
	FormatDate string `json:"format_date"`

	Weekdays       bool `json:"weekdays"`
	StrictWeekdays bool `json:"strict_weekdays"`
	Plot           bool `json:"plot"`

	OrderFrequency float64  `json:"order_frequency"`
	TimeClosure    string   `json:"time_closure"`
	ProductLine    []string `json:"product_line"`

	PlotTitle string `json:"plot_title"`
}

// DefaultAnalysisOptions retorna opções com o esquema padrão
func DefaultAnalysisOptions() AnalysisOptions {
	return AnalysisOptions{
		Columns:        DefaultColumns(),
		FormatTime:     DefaultFormatTime,
		FormatDate:     DefaultFormatDate,
		OrderFrequency: 1,
		TimeClosure:    "19:00:00",
		PlotTitle:      "Itens vendidos por hora",
	}
}
