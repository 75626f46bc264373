package infra

import (
	"bytes"
	"fmt"
	"strings"

	"directorio/internal/model"

	"github.com/xuri/excelize/v2"
)

const hojaDirectorio = "Directorio"

// DirectorioXLSX returns a workbook with one sheet listing every
// collaborator, bold header and autofilter.
func DirectorioXLSX(filas []model.FilaDirectorio) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(hojaDirectorio)
	if err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja: %w", err)
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	ultima := colName(len(encabezadoDirectorio) - 1)
	_ = f.SetColWidth(hojaDirectorio, "A", ultima, 22)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DCE6F1"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	for i, h := range encabezadoDirectorio {
		_ = f.SetCellValue(hojaDirectorio, cell(colName(i), 1), h)
	}
	_ = f.SetCellStyle(hojaDirectorio, "A1", cell(ultima, 1), headerStyle)

	for n, fila := range filas {
		row := n + 2
		valores := []string{
			fila.Colaborador, fila.Cargo, fila.Area, fila.Departamento, fila.Ubicacion,
			strings.Join(fila.Extensiones, ", "), strings.Join(fila.Celulares, ", "), strings.Join(fila.Correos, ", "),
		}
		for i, v := range valores {
			if err := f.SetCellValue(hojaDirectorio, cell(colName(i), row), v); err != nil {
				return nil, fmt.Errorf("xlsx: fila %d: %w", row, err)
			}
		}
	}

	rango := "A1:" + cell(ultima, len(filas)+1)
	if err := f.AutoFilter(hojaDirectorio, rango, nil); err != nil {
		return nil, fmt.Errorf("xlsx: autofiltro: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
