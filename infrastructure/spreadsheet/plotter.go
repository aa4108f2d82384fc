package spreadsheet

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pos-sales-analytics/internal/domain"
	"github.com/xuri/excelize/v2"
)

// ChartPlotter grava a série em uma pasta de trabalho xlsx com um gráfico de colunas
type ChartPlotter struct {
	path  string
	sheet string
}

func NewChartPlotter(path, sheet string) *ChartPlotter {
	if sheet == "" {
		sheet = "Chart"
	}
	return &ChartPlotter{path: path, sheet: sheet}
}

// PlotBars escreve rótulos na coluna A, valores na coluna B e um gráfico ao lado
func (p *ChartPlotter) PlotBars(title string, points []domain.Point) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), p.sheet); err != nil {
		return errors.Wrap(err, "erro ao nomear aba do gráfico")
	}

	if err := f.SetSheetRow(p.sheet, "A1", &[]interface{}{"Label", title}); err != nil {
		return errors.Wrap(err, "erro ao escrever cabeçalho")
	}

	for i, point := range points {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(p.sheet, cell, &[]interface{}{point.Label, point.Value}); err != nil {
			return errors.Wrapf(err, "erro ao escrever ponto %s", point.Label)
		}
	}

	if len(points) > 0 {
		last := len(points) + 1
		err := f.AddChart(p.sheet, "D2", &excelize.Chart{
			Type: excelize.Col,
			Series: []excelize.ChartSeries{
				{
					Name:       fmt.Sprintf("'%s'!$B$1", p.sheet),
					Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", p.sheet, last),
					Values:     fmt.Sprintf("'%s'!$B$2:$B$%d", p.sheet, last),
				},
			},
			Title:  []excelize.RichTextRun{{Text: title}},
			Legend: excelize.ChartLegend{Position: "none"},
		})
		if err != nil {
			return errors.Wrap(err, "erro ao criar gráfico")
		}
	} else {
		logrus.WithField("title", title).Warn("Série vazia, gráfico não gerado")
	}

	if err := f.SaveAs(p.path); err != nil {
		return errors.Wrapf(err, "erro ao salvar gráfico em %s", p.path)
	}

	logrus.WithFields(logrus.Fields{
		"path":   p.path,
		"points": len(points),
	}).Info("Gráfico salvo")

	return nil
}
