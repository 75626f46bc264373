package dto

import (
	"errors"
	"strconv"
	"strings"
)

var ErrReferenciaVacia = errors.New("referencia vacía")

// Referencia points at a row either by id or by its display label. Exactly
// one of ID and Etiqueta is set.
type Referencia struct {
	ID       uint
	Etiqueta string
}

// ParseReferencia classifies raw form input: all digits is an id, anything
// else is a label.
func ParseReferencia(raw string) (Referencia, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Referencia{}, ErrReferenciaVacia
	}
	if soloDigitos(s) {
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil || n == 0 {
			return Referencia{}, errors.New("identificador inválido: " + s)
		}
		return Referencia{ID: uint(n)}, nil
	}
	return Referencia{Etiqueta: s}, nil
}

func PorID(id uint) Referencia { return Referencia{ID: id} }

func (r Referencia) EsPorID() bool { return r.ID != 0 }

func (r Referencia) String() string {
	if r.EsPorID() {
		return strconv.FormatUint(uint64(r.ID), 10)
	}
	return r.Etiqueta
}

func soloDigitos(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
