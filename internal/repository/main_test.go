package repository

import (
	"context"
	"strings"
	"testing"

	"directorio/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// esquemaSQLite mirrors the MySQL/PostgreSQL migrations closely enough for
// the repository queries, foreign keys included.
const esquemaSQLite = `
CREATE TABLE usuarios (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at DATETIME
);
CREATE TABLE areas (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	nombre TEXT NOT NULL,
	descripcion TEXT,
	created_at DATETIME
);
CREATE TABLE departamentos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	nombre TEXT NOT NULL,
	descripcion TEXT
);
CREATE TABLE ubicaciones (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	descripcion TEXT NOT NULL,
	geolocalizacion TEXT NOT NULL,
	direccion TEXT NOT NULL
);
CREATE TABLE cargos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	descripcion TEXT NOT NULL,
	area_id INTEGER NOT NULL REFERENCES areas(id) ON DELETE RESTRICT,
	departamento_id INTEGER NOT NULL REFERENCES departamentos(id) ON DELETE RESTRICT
);
CREATE TABLE colaboradores (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	nombre TEXT NOT NULL,
	cargo_id INTEGER NOT NULL REFERENCES cargos(id) ON DELETE RESTRICT,
	ubicacion_id INTEGER NOT NULL REFERENCES ubicaciones(id) ON DELETE RESTRICT
);
CREATE TABLE extensiones (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	colaborador_id INTEGER NOT NULL REFERENCES colaboradores(id) ON DELETE RESTRICT,
	extension TEXT NOT NULL,
	area_id INTEGER NOT NULL REFERENCES areas(id) ON DELETE RESTRICT,
	departamento_id INTEGER NOT NULL REFERENCES departamentos(id) ON DELETE RESTRICT
);
CREATE TABLE celulares (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	colaborador_id INTEGER NOT NULL REFERENCES colaboradores(id) ON DELETE RESTRICT,
	celular TEXT NOT NULL,
	area_id INTEGER NOT NULL REFERENCES areas(id) ON DELETE RESTRICT,
	departamento_id INTEGER NOT NULL REFERENCES departamentos(id) ON DELETE RESTRICT
);
CREATE TABLE correos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	colaborador_id INTEGER NOT NULL REFERENCES colaboradores(id) ON DELETE RESTRICT,
	correo TEXT NOT NULL,
	area_id INTEGER NOT NULL REFERENCES areas(id) ON DELETE RESTRICT,
	departamento_id INTEGER NOT NULL REFERENCES departamentos(id) ON DELETE RESTRICT
);
CREATE TABLE productos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	codigo TEXT NOT NULL UNIQUE,
	nombre TEXT NOT NULL,
	descripcion TEXT,
	unidad TEXT NOT NULL,
	categoria TEXT NOT NULL,
	stock INTEGER NOT NULL DEFAULT 0,
	precio NUMERIC NOT NULL,
	created_at DATETIME,
	updated_at DATETIME
)`

func nuevaDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a different database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, stmt := range strings.Split(esquemaSQLite, ";") {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

// organigrama holds the ids of a minimal Ventas/Comercial/Ejecutivo/Ana Ruiz tree.
type organigrama struct {
	area, departamento, ubicacion, cargo, colaborador uint
}

func sembrar(t *testing.T, db *gorm.DB) organigrama {
	t.Helper()
	ctx := context.Background()

	area := model.Area{Nombre: "Ventas"}
	require.NoError(t, NewAlmacen[model.Area](db, "nombre").Crear(ctx, &area))
	dep := model.Departamento{Nombre: "Comercial"}
	require.NoError(t, NewAlmacen[model.Departamento](db, "nombre").Crear(ctx, &dep))
	ub := model.Ubicacion{Descripcion: "Matriz", Geolocalizacion: "-0.18,-78.48", Direccion: "Av. Amazonas"}
	require.NoError(t, NewAlmacen[model.Ubicacion](db, "descripcion").Crear(ctx, &ub))
	cargo := model.Cargo{Descripcion: "Ejecutivo", AreaID: area.ID, DepartamentoID: dep.ID}
	require.NoError(t, NewCargoRepository(db).Crear(ctx, &cargo))
	col := model.Colaborador{Nombre: "Ana Ruiz", CargoID: cargo.ID, UbicacionID: ub.ID}
	require.NoError(t, NewColaboradorRepository(db).Crear(ctx, &col))

	return organigrama{area: area.ID, departamento: dep.ID, ubicacion: ub.ID, cargo: cargo.ID, colaborador: col.ID}
}
