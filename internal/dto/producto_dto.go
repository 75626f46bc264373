package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ProductoForm struct {
	Codigo      string `form:"codigo"      validate:"notblank,max=50"`
	Nombre      string `form:"nombre"      validate:"notblank,max=100"`
	Descripcion string `form:"descripcion" validate:"max=1000"`
	Unidad      string `form:"unidad"      validate:"notblank,max=20"`
	Categoria   string `form:"categoria"   validate:"notblank,max=50"`
	Stock       int    `form:"stock"       validate:"gte=0"`
	// Precio is parsed with shopspring/decimal by the service.
	Precio string `form:"precio" validate:"notblank"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// DisponibilidadResponse is the JSON body of GET /api/producto/:codigo.
type DisponibilidadResponse struct {
	Codigo     string `json:"codigo"`
	Nombre     string `json:"nombre"`
	Stock      int    `json:"stock"`
	Categoria  string `json:"categoria"`
	Disponible bool   `json:"disponible"`
	Servidor   string `json:"servidor"`
}
