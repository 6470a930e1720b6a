// Package validation valida los DTOs de entrada con go-playground/validator y
// traduce los fallos a domain.ValidationError (nombre JSON del campo -> mensaje).
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/intellicollect-api/internal/domain"
	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
)

// Validator envoltorio de *validator.Validate configurado para los DTOs del API.
type Validator struct {
	v *validator.Validate
}

// New construye el validador: nombres de campo desde la etiqueta json (o query),
// fechas vacías como ausentes y montos decimales comparables con gt/gte.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		d, ok := field.Interface().(entity.Date)
		if !ok || d.IsZero() {
			return nil
		}
		return d.String()
	}, entity.Date{})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		d, ok := field.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}
		f, _ := d.Float64()
		return f
	}, decimal.Decimal{})
	return &Validator{v: v}
}

// Struct valida s. Devuelve *domain.ValidationError con un mensaje por campo.
func (val *Validator) Struct(s interface{}) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &domain.ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, e := range verrs {
		field := e.Field()
		if _, seen := out.Fields[field]; seen {
			continue
		}
		out.Fields[field] = Message(e)
	}
	return out
}

// Message texto legible para un fallo de validación.
func Message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "campo requerido"
	case "email":
		return "formato de email inválido"
	case "min":
		if e.Kind() == reflect.String {
			return "debe tener al menos " + e.Param() + " caracteres"
		}
		return "debe ser al menos " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "debe tener como máximo " + e.Param() + " caracteres"
		}
		return "debe ser como máximo " + e.Param()
	case "oneof":
		return "debe ser uno de: " + e.Param()
	case "gt":
		return "debe ser mayor que " + e.Param()
	case "gte":
		return "debe ser mayor o igual a " + e.Param()
	case "lte":
		return "debe ser menor o igual a " + e.Param()
	case "iso4217":
		return "código de moneda ISO 4217 inválido"
	default:
		return "valor inválido"
	}
}
