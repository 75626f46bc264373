package dto

// ── Reference data ───────────────────────────────────────────────────────────

type AreaForm struct {
	Nombre      string `form:"nombre"      validate:"notblank,max=100,nonumerico"`
	Descripcion string `form:"descripcion" validate:"max=255"`
}

type DepartamentoForm struct {
	Nombre      string `form:"nombre"      validate:"notblank,max=100,nonumerico"`
	Descripcion string `form:"descripcion" validate:"max=255"`
}

type UbicacionForm struct {
	Descripcion     string `form:"descripcion"     validate:"notblank,max=150"`
	Geolocalizacion string `form:"geolocalizacion" validate:"notblank,max=100"`
	Direccion       string `form:"direccion"       validate:"notblank,max=100"`
}

// ── Positions and collaborators ──────────────────────────────────────────────

type CargoForm struct {
	Descripcion  string `form:"descripcion"  validate:"notblank,max=100,nonumerico"`
	Area         uint   `form:"area"         validate:"required"`
	Departamento uint   `form:"departamento" validate:"required"`
}

// ColaboradorForm.Cargo accepts a cargo id or its description; see
// ParseReferencia.
type ColaboradorForm struct {
	Nombre       string `form:"nombre"       validate:"notblank,max=100,nonumerico"`
	Departamento uint   `form:"departamento" validate:"required"`
	Area         uint   `form:"area"         validate:"required"`
	Cargo        string `form:"cargo"        validate:"notblank"`
	Ubicacion    uint   `form:"ubicacion"    validate:"required"`
}

// ── Contact records ──────────────────────────────────────────────────────────

// ContactoForm is shared by extensiones, celulares and correos. Valor is
// checked against the rule of each channel. Area and Departamento are
// optional: when given they must match the collaborator's cargo.
type ContactoForm struct {
	Colaborador  string `form:"colaborador"  validate:"notblank"`
	Valor        string `form:"valor"`
	Area         uint   `form:"area"`
	Departamento uint   `form:"departamento"`
}

// ── Export ───────────────────────────────────────────────────────────────────

// Archivo is a generated download.
type Archivo struct {
	Nombre        string
	TipoContenido string
	Datos         []byte
}
