package domain

import (
	"errors"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// Errores de "no encontrado" por entidad. Todos cumplen errors.Is(err, ErrNotFound).
var (
	ErrCustomerNotFound      = &notFoundError{msg: "Customer not found"}
	ErrInvoiceNotFound       = &notFoundError{msg: "Invoice not found"}
	ErrPaymentNotFound       = &notFoundError{msg: "Payment not found"}
	ErrCommunicationNotFound = &notFoundError{msg: "Communication not found"}
)

type notFoundError struct{ msg string }

func (e *notFoundError) Error() string        { return e.msg }
func (e *notFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError agrupa los errores de validación por campo (nombre JSON -> mensaje).
// Cumple errors.Is(err, ErrInvalidInput).
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError construye el error con un único campo.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validación: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }
