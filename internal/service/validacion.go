package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"directorio/internal/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// Report fields by their form name so messages match what the user typed into.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	// notblank: required text fields reject values made only of whitespace.
	_ = validate.RegisterValidation("notblank", validators.NotBlank)
	// nonumerico: at least one character that is neither a digit nor a space.
	_ = validate.RegisterValidation("nonumerico", func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			if !unicode.IsDigit(r) && !unicode.IsSpace(r) {
				return true
			}
		}
		return false
	})
}

// validar runs the struct's validate tags and returns an apperr validation
// error listing every failing field.
func validar(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	campos := make(map[string]string, len(ves))
	partes := make([]string, 0, len(ves))
	for _, fe := range ves {
		m := mensajeRegla(fe)
		campos[fe.Field()] = m
		partes = append(partes, fe.Field()+": "+m)
	}
	return apperr.ValidacionCampos(strings.Join(partes, "; "), campos)
}

// validarValor checks a single value against regla, labeling it campo.
func validarValor(campo, valor, regla string) error {
	err := validate.Var(valor, regla)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return err
	}
	m := mensajeRegla(ves[0])
	return apperr.ValidacionCampos(campo+": "+m, map[string]string{campo: m})
}

func mensajeRegla(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "es obligatorio"
	case "nonumerico":
		return "no puede contener solo números"
	case "numeric":
		return "debe contener solo dígitos"
	case "email":
		return "no es un correo válido"
	case "min":
		return fmt.Sprintf("debe tener al menos %s caracteres", fe.Param())
	case "max":
		return fmt.Sprintf("no puede superar %s caracteres", fe.Param())
	case "eqfield":
		return "las contraseñas no coinciden"
	case "gte":
		return fmt.Sprintf("debe ser mayor o igual a %s", fe.Param())
	}
	return "no es válido"
}

// opcional maps blank text to NULL.
func opcional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
