// Package apperr defines the domain error taxonomy shared by repositories,
// services and handlers. Storage errors are classified once, in the
// repository layer; everything above only inspects the Tipo.
package apperr

import (
	"errors"
	"fmt"
)

// Tipo identifies the class of a domain error.
type Tipo int

const (
	TipoInterno Tipo = iota
	TipoValidacion
	TipoDuplicado
	TipoConflicto
	TipoNoEncontrado
	TipoCredenciales
)

func (t Tipo) String() string {
	switch t {
	case TipoValidacion:
		return "validacion"
	case TipoDuplicado:
		return "duplicado"
	case TipoConflicto:
		return "conflicto_referencial"
	case TipoNoEncontrado:
		return "no_encontrado"
	case TipoCredenciales:
		return "credenciales"
	default:
		return "interno"
	}
}

// Error is a classified domain error. Mensaje is safe to show to the user;
// Causa keeps the underlying storage error for logs only.
type Error struct {
	Tipo    Tipo
	Mensaje string
	Campos  map[string]string
	Causa   error
}

func (e *Error) Error() string {
	if e.Causa != nil {
		return fmt.Sprintf("%s: %v", e.Mensaje, e.Causa)
	}
	return e.Mensaje
}

func (e *Error) Unwrap() error { return e.Causa }

// Is matches any *Error of the same Tipo, so errors.Is(err, ErrDuplicado)
// works regardless of the message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Tipo == e.Tipo
}

// Sentinels for errors.Is.
var (
	ErrValidacion           = &Error{Tipo: TipoValidacion, Mensaje: "Datos inválidos"}
	ErrDuplicado            = &Error{Tipo: TipoDuplicado, Mensaje: "El registro ya existe"}
	ErrConflictoReferencial = &Error{Tipo: TipoConflicto, Mensaje: MsgReferenciado}
	ErrNoEncontrado         = &Error{Tipo: TipoNoEncontrado, Mensaje: "El registro no existe"}
	ErrCredenciales         = &Error{Tipo: TipoCredenciales, Mensaje: MsgCredenciales}
)

const (
	MsgReferenciado = "No se puede eliminar: el registro está referenciado en otra tabla"
	MsgCredenciales = "Usuario o contraseña incorrectos"
	MsgInesperado   = "Ocurrió un error inesperado, intente nuevamente"
)

func Validacion(msg string) error {
	return &Error{Tipo: TipoValidacion, Mensaje: msg}
}

func Validacionf(format string, args ...any) error {
	return &Error{Tipo: TipoValidacion, Mensaje: fmt.Sprintf(format, args...)}
}

// ValidacionCampos builds a validation error from per-field messages.
func ValidacionCampos(msg string, campos map[string]string) error {
	return &Error{Tipo: TipoValidacion, Mensaje: msg, Campos: campos}
}

func Duplicado(msg string, causa error) error {
	return &Error{Tipo: TipoDuplicado, Mensaje: msg, Causa: causa}
}

func Conflicto(msg string, causa error) error {
	return &Error{Tipo: TipoConflicto, Mensaje: msg, Causa: causa}
}

func NoEncontrado(msg string) error {
	return &Error{Tipo: TipoNoEncontrado, Mensaje: msg}
}

func Credenciales() error {
	return &Error{Tipo: TipoCredenciales, Mensaje: MsgCredenciales}
}

// TipoDe returns the Tipo of err, or TipoInterno for unclassified errors.
func TipoDe(err error) Tipo {
	var e *Error
	if errors.As(err, &e) {
		return e.Tipo
	}
	return TipoInterno
}

// Mensaje returns the user-facing text for err. Unclassified errors never
// leak their text.
func Mensaje(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Tipo != TipoInterno {
		return e.Mensaje
	}
	return MsgInesperado
}

// Conocido reports whether err belongs to the taxonomy.
func Conocido(err error) bool {
	return TipoDe(err) != TipoInterno
}
