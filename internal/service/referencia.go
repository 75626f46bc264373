package service

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"directorio/internal/apperr"
	"directorio/internal/dto"
	"directorio/internal/repository"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// plegar normalizes a label for comparison: accents removed, case folded,
// inner whitespace collapsed.
func plegar(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	r, _, err := transform.String(t, s)
	if err != nil {
		r = s
	}
	return cases.Fold().String(strings.Join(strings.Fields(r), " "))
}

func parsearReferencia(raw, entidad string) (dto.Referencia, error) {
	ref, err := dto.ParseReferencia(raw)
	if err != nil {
		return dto.Referencia{}, apperr.ValidacionCampos(entidad+": es obligatorio", map[string]string{entidad: err.Error()})
	}
	return ref, nil
}

// resolver turns a Referencia into a row. Labels must match exactly one row;
// none or several is a validation error.
func resolver[T repository.Entidad](
	ctx context.Context,
	repo repository.Almacen[T],
	ref dto.Referencia,
	etiqueta func(T) string,
	entidad string,
) (*T, error) {
	if ref.EsPorID() {
		e, err := repo.ObtenerPorID(ctx, ref.ID)
		if errors.Is(err, apperr.ErrNoEncontrado) {
			return nil, apperr.Validacionf("El %s seleccionado no existe", entidad)
		}
		return e, err
	}

	candidatos, err := repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	buscada := plegar(ref.Etiqueta)
	var hallado *T
	n := 0
	for i := range candidatos {
		if plegar(etiqueta(candidatos[i])) == buscada {
			hallado = &candidatos[i]
			n++
		}
	}
	switch n {
	case 0:
		return nil, apperr.Validacionf("No existe un %s llamado %q", entidad, ref.Etiqueta)
	case 1:
		return hallado, nil
	}
	return nil, apperr.Validacionf("El %s %q es ambiguo (%d coincidencias), seleccione uno de la lista", entidad, ref.Etiqueta, n)
}
