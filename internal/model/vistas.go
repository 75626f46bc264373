package model

// Read models produced by join queries. They are never written back.

type CargoDetalle struct {
	ID             uint
	Descripcion    string
	AreaID         uint
	Area           string
	DepartamentoID uint
	Departamento   string
}

type ColaboradorDetalle struct {
	ID             uint
	Nombre         string
	CargoID        uint
	Cargo          string
	AreaID         uint
	Area           string
	DepartamentoID uint
	Departamento   string
	UbicacionID    uint
	Ubicacion      string
}

// ContactoDetalle shows the stored projection next to the collaborator's
// current area and departamento so drift is visible.
type ContactoDetalle struct {
	ID                   uint
	ColaboradorID        uint
	Colaborador          string
	Valor                string
	AreaID               uint
	Area                 string
	DepartamentoID       uint
	Departamento         string
	AreaActualID         uint
	AreaActual           string
	DepartamentoActualID uint
	DepartamentoActual   string
}

// Desfasado reports whether the stored projection no longer matches the
// collaborator's current cargo.
func (c ContactoDetalle) Desfasado() bool {
	return c.AreaID != c.AreaActualID || c.DepartamentoID != c.DepartamentoActualID
}

// FilaDirectorio is one collaborator with all contact channels flattened,
// used by the directory export.
type FilaDirectorio struct {
	Colaborador  string
	Cargo        string
	Area         string
	Departamento string
	Ubicacion    string
	Extensiones  []string
	Celulares    []string
	Correos      []string
}
