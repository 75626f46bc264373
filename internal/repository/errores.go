package repository

import (
	"errors"
	"strings"

	"directorio/internal/apperr"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type operacion int

const (
	opEscritura operacion = iota
	opBorrado
)

const msgReferenciaInexistente = "La referencia seleccionada no existe"

// clasificar maps driver errors (MySQL, PostgreSQL, SQLite) onto the domain
// taxonomy. A foreign key failure means "dependent rows exist" on delete and
// "referenced row missing" on insert/update.
func clasificar(err error, op operacion) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NoEncontrado("El registro no existe")
	case esDuplicado(err):
		return apperr.Duplicado("Ya existe un registro con esos datos", err)
	case esViolacionFK(err):
		if op == opBorrado {
			return apperr.Conflicto(apperr.MsgReferenciado, err)
		}
		return &apperr.Error{Tipo: apperr.TipoValidacion, Mensaje: msgReferenciaInexistente, Causa: err}
	}
	return err
}

func esDuplicado(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func esViolacionFK(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1216, 1217, 1451, 1452:
			return true
		}
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
