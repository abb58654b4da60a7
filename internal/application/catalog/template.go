package catalog

import (
	"bytes"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/tiendamoderna/tienda/pkg/errors"
)

// BuildImportTemplate generates the downloadable .xlsx template: the header
// row the importer expects plus one example row.
func BuildImportTemplate() (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Productos"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for i, col := range importColumns {
		cellRef, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, apperrors.Wrap(err, "error al generar la plantilla")
		}
		if err := f.SetCellValue(sheet, cellRef, col); err != nil {
			return nil, apperrors.Wrap(err, "error al generar la plantilla")
		}
	}

	example := []interface{}{
		"REM-001", "Remera básica", "Remera de algodón peinado",
		15000, 10, 25, "Remeras", "Tienda Moderna", "si",
	}
	for i, v := range example {
		cellRef, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, apperrors.Wrap(err, "error al generar la plantilla")
		}
		if err := f.SetCellValue(sheet, cellRef, v); err != nil {
			return nil, apperrors.Wrap(err, "error al generar la plantilla")
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, apperrors.Wrap(err, "error al generar la plantilla")
	}
	return buf, nil
}
