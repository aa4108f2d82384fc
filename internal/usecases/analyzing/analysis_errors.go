package analyzing

import (
	"errors"
	"fmt"
)

// Erros específicos das análises de vendas
var (
	// Campo de data/hora que não pôde ser interpretado; a célula vira ausente
	ErrParse = errors.New("value could not be parsed")

	// Divisão por uma contagem zero (nenhuma linha ou grupo qualificado)
	ErrEmptyGroup = errors.New("empty group: division by zero")

	// Menos de dois pontos distintos para a reta de tendência
	ErrInsufficientData = errors.New("insufficient data for trend fit")

	// Coluna inexistente ou formato que não interpreta nenhuma linha
	ErrConfiguration = errors.New("invalid analysis configuration")
)

// AnalysisError é um erro com contexto adicional sobre a coluna envolvida
type AnalysisError struct {
	Err     error  // Erro base
	Column  string // Coluna envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AnalysisError) Error() string {
	msg := e.Err.Error()
	if e.Column != "" {
		msg = fmt.Sprintf("%s (coluna %q)", msg, e.Column)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

// Unwrap retorna o erro subjacente
func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError cria um novo AnalysisError
func NewAnalysisError(err error, details string) *AnalysisError {
	return &AnalysisError{
		Err:     err,
		Details: details,
	}
}

// NewColumnError cria um novo AnalysisError associado a uma coluna
func NewColumnError(err error, column string, details string) *AnalysisError {
	return &AnalysisError{
		Err:     err,
		Column:  column,
		Details: details,
	}
}

// requireColumns valida antecipadamente as colunas referenciadas pela configuração
func requireColumns(columns interface{ HasColumn(string) bool }, names ...string) error {
	for _, name := range names {
		if name == "" {
			return NewAnalysisError(ErrConfiguration, "nome de coluna vazio")
		}
		if !columns.HasColumn(name) {
			return NewColumnError(ErrConfiguration, name, "coluna não encontrada na tabela")
		}
	}
	return nil
}
