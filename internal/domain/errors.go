package domain

import (
	"errors"
	"fmt"
)

// Erros fatais de uma execução: nenhum deles produz saída parcial.
// Rejeições por regra de negócio (preço negativo, venda não paga, cliente
// inativo) NÃO são erros — são resultados esperados de qualidade de dados.
var (
	ErrMissingSource = errors.New("arquivo de origem obrigatório ausente")
	ErrSourceFormat  = errors.New("arquivo de origem com formato inválido")
	ErrInvalidDate   = errors.New("data de negócio inválida")
)

// MissingSourceError indica que um dos três arquivos de origem não existe
// para a data processada.
type MissingSourceError struct {
	Path string
}

func (e *MissingSourceError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingSource, e.Path)
}

func (e *MissingSourceError) Unwrap() error {
	return ErrMissingSource
}

// SourceFormatError identifica o registro que impediu o carregamento de uma
// origem. Um arquivo corrompido aborta a execução inteira (fail-fast).
type SourceFormatError struct {
	File   string
	Record int // linha do CSV ou índice do objeto no JSON (0 = arquivo inteiro)
	Reason string
}

func (e *SourceFormatError) Error() string {
	if e.Record > 0 {
		return fmt.Sprintf("%s: %s, registro %d: %s", ErrSourceFormat, e.File, e.Record, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrSourceFormat, e.File, e.Reason)
}

func (e *SourceFormatError) Unwrap() error {
	return ErrSourceFormat
}

// InvalidDateError indica que o argumento de data não está no formato
// YYYY-MM-DD.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("%s: %q (formato esperado: YYYY-MM-DD)", ErrInvalidDate, e.Value)
}

func (e *InvalidDateError) Unwrap() error {
	return ErrInvalidDate
}
