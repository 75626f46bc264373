package model

// Vinculo ties a contact record to its collaborator. AreaID and
// DepartamentoID are a cached projection of colaborador -> cargo and are
// recomputed on every write that could change them.
type Vinculo struct {
	ColaboradorID  uint `gorm:"not null"`
	AreaID         uint `gorm:"not null"`
	DepartamentoID uint `gorm:"not null"`
}

var columnasVinculo = []string{"colaborador_id", "area_id", "departamento_id"}

func editables(valor string) []string {
	return append([]string{valor}, columnasVinculo...)
}

type Extension struct {
	ID uint `gorm:"primaryKey"`
	Vinculo
	Extension string `gorm:"size:10;not null"`
}

func (Extension) TableName() string           { return "extensiones" }
func (e Extension) Identificador() uint       { return e.ID }
func (Extension) ColumnaValor() string        { return "extension" }
func (Extension) ColumnasEditables() []string { return editables("extension") }

type Celular struct {
	ID uint `gorm:"primaryKey"`
	Vinculo
	Celular string `gorm:"size:20;not null"`
}

func (Celular) TableName() string           { return "celulares" }
func (c Celular) Identificador() uint       { return c.ID }
func (Celular) ColumnaValor() string        { return "celular" }
func (Celular) ColumnasEditables() []string { return editables("celular") }

type Correo struct {
	ID uint `gorm:"primaryKey"`
	Vinculo
	Correo string `gorm:"size:50;not null"`
}

func (Correo) TableName() string           { return "correos" }
func (c Correo) Identificador() uint       { return c.ID }
func (Correo) ColumnaValor() string        { return "correo" }
func (Correo) ColumnasEditables() []string { return editables("correo") }
