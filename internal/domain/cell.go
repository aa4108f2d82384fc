package domain

import (
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// CellKind identifica o tipo de valor guardado em uma célula
type CellKind int

const (
	KindMissing CellKind = iota
	KindString
	KindNumber
	KindDate
	KindTime
)

// Formatos usados para renderizar chaves de agrupamento
const (
	DateLabelLayout = time.DateOnly
	TimeLabelLayout = "15:04"
)

// Cell é um valor anulável de uma tabela de vendas.
// Uma célula ausente substitui o "NaN" implícito: falhas de parse viram KindMissing.
type Cell struct {
	kind CellKind
	str  string
	num  float64
	tm   time.Time
}

func Missing() Cell {
	return Cell{kind: KindMissing}
}

func String(s string) Cell {
	return Cell{kind: KindString, str: s}
}

func Number(f float64) Cell {
	return Cell{kind: KindNumber, num: f}
}

// Date cria uma célula de data, descartando o horário
func Date(t time.Time) Cell {
	return Cell{kind: KindDate, tm: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// TimeOfDay cria uma célula de horário sobre uma data de referência arbitrária
func TimeOfDay(t time.Time) Cell {
	return Cell{kind: KindTime, tm: time.Date(0, time.January, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)}
}

func (c Cell) Kind() CellKind {
	return c.kind
}

func (c Cell) IsMissing() bool {
	return c.kind == KindMissing
}

// Str retorna o conteúdo textual da célula
func (c Cell) Str() (string, bool) {
	return c.str, c.kind == KindString
}

// Float retorna o valor numérico da célula
func (c Cell) Float() (float64, bool) {
	return c.num, c.kind == KindNumber
}

// Time retorna a data (KindDate) ou o horário (KindTime) da célula
func (c Cell) Time() (time.Time, bool) {
	return c.tm, c.kind == KindDate || c.kind == KindTime
}

// Label renderiza a célula como texto; células ausentes viram string vazia
func (c Cell) Label() string {
	switch c.kind {
	case KindString:
		return c.str
	case KindNumber:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	case KindDate:
		return c.tm.Format(DateLabelLayout)
	case KindTime:
		return c.tm.Format(TimeLabelLayout)
	default:
		return ""
	}
}

// Equal compara tipo e valor; duas células ausentes são iguais
func (c Cell) Equal(other Cell) bool {
	if c.kind != other.kind {
		return false
	}

	switch c.kind {
	case KindString:
		return c.str == other.str
	case KindNumber:
		return c.num == other.num
	case KindDate, KindTime:
		return c.tm.Equal(other.tm)
	default:
		return true
	}
}

// GroupKey codifica tipo e valor da célula para uso em chaves de mapa
func (c Cell) GroupKey() string {
	if c.kind == KindTime {
		return strconv.Itoa(int(c.kind)) + ":" + c.tm.Format("15:04:05.999999999")
	}
	return strconv.Itoa(int(c.kind)) + ":" + c.Label()
}

func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case KindMissing:
		return []byte("null"), nil
	case KindNumber:
		return jsoniter.Marshal(c.num)
	default:
		return jsoniter.Marshal(c.Label())
	}
}
