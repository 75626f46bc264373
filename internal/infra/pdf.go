package infra

// pdf.go renders the collaborator directory with go-pdf/fpdf:
//   - title and generation timestamp
//   - one table row per collaborator, multi-valued channels joined by ", "
//   - repeated header on every page

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"directorio/internal/model"

	"github.com/go-pdf/fpdf"
)

var encabezadoDirectorio = []string{
	"Colaborador", "Cargo", "Área", "Departamento", "Ubicación", "Extensiones", "Celulares", "Correos",
}

// DirectorioPDF returns a landscape A4 document listing every collaborator.
func DirectorioPDF(filas []model.FilaDirectorio, generado time.Time) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 12)
	// Core fonts are cp1252; translate so accented names survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20
	anchos := []float64{0.15, 0.13, 0.11, 0.12, 0.12, 0.10, 0.11, 0.16}
	for i := range anchos {
		anchos[i] *= contentW
	}

	encabezado := func() {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(220, 230, 241)
		for i, h := range encabezadoDirectorio {
			pdf.CellFormat(anchos[i], 6, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 7)
	}
	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			encabezado()
		}
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-10)
		pdf.SetFont("Helvetica", "I", 7)
		pdf.CellFormat(0, 5, tr(fmt.Sprintf("Página %d", pdf.PageNo())), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()

	// ── Title ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 8, tr("Directorio de colaboradores"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, tr("Generado: "+generado.Format("02/01/2006 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// ── Table ───────────────────────────────────────────────────────────────
	encabezado()
	if len(filas) == 0 {
		pdf.CellFormat(contentW, 6, tr("Sin colaboradores registrados"), "1", 1, "C", false, 0, "")
	}
	for _, f := range filas {
		celdas := []string{
			f.Colaborador, f.Cargo, f.Area, f.Departamento, f.Ubicacion,
			strings.Join(f.Extensiones, ", "), strings.Join(f.Celulares, ", "), strings.Join(f.Correos, ", "),
		}
		for i, c := range celdas {
			pdf.CellFormat(anchos[i], 5, tr(recortar(c, anchos[i])), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render directorio: %w", err)
	}
	return buf.Bytes(), nil
}

// recortar truncates s so it fits a cell of width mm at 7pt.
func recortar(s string, ancho float64) string {
	limite := int(ancho / 1.5)
	r := []rune(s)
	if len(r) <= limite || limite < 4 {
		return s
	}
	return string(r[:limite-3]) + "..."
}
