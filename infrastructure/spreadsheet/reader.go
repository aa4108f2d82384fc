package spreadsheet

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pos-sales-analytics/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Reader carrega o export de vendas do PDV (xlsx) em uma tabela. A primeira
// linha da planilha é o cabeçalho e dá nome às colunas.
type Reader struct {
	path     string
	sheet    string
	progress bool
	columns  domain.Columns
}

func NewReader(path, sheet string, progress bool, columns domain.Columns) *Reader {
	return &Reader{
		path:     path,
		sheet:    sheet,
		progress: progress,
		columns:  columns,
	}
}

// Load lê a planilha inteira. Colunas de valor (vendas, desconto, quantidade)
// viram números; data e horário seriais do Excel viram células tipadas e os
// demais valores ficam como texto para o normalizador.
func (r *Reader) Load(ctx context.Context) (*domain.Table, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir planilha %s", r.path)
	}
	defer f.Close()

	sheet := r.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.Errorf("planilha %s não possui abas", r.path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler aba %q", sheet)
	}

	if len(rows) == 0 {
		return nil, errors.Errorf("aba %q está vazia, cabeçalho esperado na primeira linha", sheet)
	}

	header := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		header[i] = strings.TrimSpace(name)
	}

	table := domain.NewTable(header...)
	columns := table.Columns()

	// NewTable descarta nomes repetidos; cada coluna lê a primeira ocorrência
	positions := make([]int, 0, len(columns))
	for _, name := range columns {
		for i, h := range header {
			if h == name {
				positions = append(positions, i)
				break
			}
		}
	}

	var bar *progressbar.ProgressBar
	if r.progress {
		bar = progressbar.Default(int64(len(rows)-1), "lendo vendas")
	}

	skipped := 0
	for n, row := range rows[1:] {
		if n%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		if isBlank(row) {
			skipped++
			continue
		}

		cells := make([]domain.Cell, len(positions))
		for c, pos := range positions {
			raw := ""
			if pos < len(row) {
				raw = strings.TrimSpace(row[pos])
			}
			cells[c] = r.convert(columns[c], raw)
		}

		if err := table.Append(cells...); err != nil {
			return nil, errors.Wrapf(err, "linha %d", n+2)
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}

	logrus.WithFields(logrus.Fields{
		"path":    r.path,
		"sheet":   sheet,
		"rows":    table.Len(),
		"columns": len(columns),
		"skipped": skipped,
	}).Info("Planilha de vendas carregada")

	return table, nil
}

func (r *Reader) convert(column, raw string) domain.Cell {
	if raw == "" {
		return domain.Missing()
	}

	switch column {
	case r.columns.SalesVar, r.columns.DiscountVar, r.columns.QuantityVar:
		return parseAmount(raw)
	case r.columns.DateVar:
		if serial, err := strconv.ParseFloat(raw, 64); err == nil {
			if date, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return domain.Date(date)
			}
		}
	case r.columns.TimeVar:
		if serial, err := strconv.ParseFloat(raw, 64); err == nil && serial >= 0 && serial < 1 {
			if tod, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return domain.TimeOfDay(tod)
			}
		}
	}

	return domain.String(raw)
}

// parseAmount aceita separador decimal com vírgula ("12,90") e símbolo de moeda
func parseAmount(raw string) domain.Cell {
	cleaned := strings.TrimSpace(strings.Trim(raw, "€$R "))
	if strings.Contains(cleaned, ",") && !strings.Contains(cleaned, ".") {
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	} else {
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		logrus.WithField("value", raw).Debug("Valor numérico inválido na planilha")
		return domain.Missing()
	}

	return domain.Number(value.InexactFloat64())
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
