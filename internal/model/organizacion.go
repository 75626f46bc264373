package model

import "time"

// Area is an organizational grouping referenced by cargos and contact records.
type Area struct {
	ID          uint    `gorm:"primaryKey"`
	Nombre      string  `gorm:"size:100;not null"`
	Descripcion *string `gorm:"size:255"`
	CreatedAt   time.Time
}

func (Area) TableName() string           { return "areas" }
func (a Area) Identificador() uint       { return a.ID }
func (Area) ColumnasEditables() []string { return []string{"nombre", "descripcion"} }

// Departamento is the second organizational grouping dimension.
type Departamento struct {
	ID          uint    `gorm:"primaryKey"`
	Nombre      string  `gorm:"size:100;not null"`
	Descripcion *string `gorm:"size:255"`
}

func (Departamento) TableName() string           { return "departamentos" }
func (d Departamento) Identificador() uint       { return d.ID }
func (Departamento) ColumnasEditables() []string { return []string{"nombre", "descripcion"} }

// Ubicacion is a physical location.
type Ubicacion struct {
	ID              uint   `gorm:"primaryKey"`
	Descripcion     string `gorm:"size:150;not null"`
	Geolocalizacion string `gorm:"size:100;not null"`
	Direccion       string `gorm:"size:100;not null"`
}

func (Ubicacion) TableName() string     { return "ubicaciones" }
func (u Ubicacion) Identificador() uint { return u.ID }
func (Ubicacion) ColumnasEditables() []string {
	return []string{"descripcion", "geolocalizacion", "direccion"}
}

// Cargo is a position bound to exactly one area and one departamento.
type Cargo struct {
	ID             uint   `gorm:"primaryKey"`
	Descripcion    string `gorm:"size:100;not null"`
	AreaID         uint   `gorm:"not null"`
	DepartamentoID uint   `gorm:"not null"`
}

func (Cargo) TableName() string     { return "cargos" }
func (c Cargo) Identificador() uint { return c.ID }
func (Cargo) ColumnasEditables() []string {
	return []string{"descripcion", "area_id", "departamento_id"}
}

// Colaborador only stores its cargo; area and departamento are always
// derived through it.
type Colaborador struct {
	ID          uint   `gorm:"primaryKey"`
	Nombre      string `gorm:"size:100;not null"`
	CargoID     uint   `gorm:"not null"`
	UbicacionID uint   `gorm:"not null"`
}

func (Colaborador) TableName() string     { return "colaboradores" }
func (c Colaborador) Identificador() uint { return c.ID }
func (Colaborador) ColumnasEditables() []string {
	return []string{"nombre", "cargo_id", "ubicacion_id"}
}
