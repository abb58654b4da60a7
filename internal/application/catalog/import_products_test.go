package catalog

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tiendamoderna/tienda/internal/domain/product"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, col := range importColumns {
		cellRef, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cellRef, col))
	}
	for r, row := range rows {
		for c, v := range row {
			cellRef, err := excelize.CoordinatesToCellName(c+1, r+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cellRef, v))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func newImportEnv() (*ImportProductsUseCase, *fakeProductRepo, *fakeCategoryRepo, *fakeBrandRepo) {
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo()
	brands := newFakeBrandRepo()
	return NewImportProductsUseCase(products, categories, brands), products, categories, brands
}

func TestImportProducts_CreatesRows(t *testing.T) {
	uc, products, categories, brands := newImportEnv()

	buf := buildWorkbook(t, [][]interface{}{
		{"REM-001", "Remera básica", "Algodón peinado", 15000, 10, 25, "Remeras", "Tienda Moderna", "si"},
		{"PAN-001", "Pantalón cargo", "", 30000, "", 8, "Pantalones", "", "no"},
	})

	result, err := uc.Execute(context.Background(), buf)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 0, result.Updated)
	assert.Empty(t, result.Errors)

	// Category and brand were auto-created from their names.
	cat, err := categories.FindByName(context.Background(), "Remeras")
	require.NoError(t, err)
	assert.Equal(t, "remeras", cat.Slug)
	_, err = brands.FindByName(context.Background(), "Tienda Moderna")
	require.NoError(t, err)

	p, err := products.FindBySKU(context.Background(), "REM-001")
	require.NoError(t, err)
	assert.Equal(t, int64(15000), p.BasePrice)
	assert.Equal(t, 10.0, p.DiscountPercent)
	assert.True(t, p.Featured)

	p, err = products.FindBySKU(context.Background(), "PAN-001")
	require.NoError(t, err)
	assert.Nil(t, p.BrandID)
	assert.False(t, p.Featured)
}

func TestImportProducts_UpdatesExistingSKU(t *testing.T) {
	uc, products, _, _ := newImportEnv()
	ctx := context.Background()

	existing := product.NewProduct("REM-001", "Nombre viejo", "", 10000, 0, 5, 1, nil)
	require.NoError(t, products.Create(ctx, existing))

	buf := buildWorkbook(t, [][]interface{}{
		{"REM-001", "Nombre nuevo", "Descripción nueva", 18000, 5, 12, "Remeras", "", ""},
	})

	result, err := uc.Execute(ctx, buf)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 0, result.Created)

	p, err := products.FindBySKU(ctx, "REM-001")
	require.NoError(t, err)
	assert.Equal(t, "Nombre nuevo", p.Name)
	assert.Equal(t, int64(18000), p.BasePrice)
	assert.Equal(t, 12, p.Stock)
}

func TestImportProducts_RowErrors(t *testing.T) {
	uc, products, _, _ := newImportEnv()

	buf := buildWorkbook(t, [][]interface{}{
		{"", "Sin SKU", "", 1000, 0, 1, "Remeras", "", ""},
		{"OK-001", "", "", 1000, 0, 1, "Remeras", "", ""},
		{"OK-002", "Precio malo", "", "abc", 0, 1, "Remeras", "", ""},
		{"OK-003", "Descuento malo", "", 1000, 150, 1, "Remeras", "", ""},
		{"OK-004", "Stock malo", "", 1000, 0, -3, "Remeras", "", ""},
		{"OK-005", "Sin categoría", "", 1000, 0, 1, "", "", ""},
		{"OK-006", "Válido", "", 1000, 0, 1, "Remeras", "", "sí"},
	})

	result, err := uc.Execute(context.Background(), buf)
	require.NoError(t, err)

	assert.Equal(t, 7, result.Processed)
	assert.Equal(t, 1, result.Created)
	require.Len(t, result.Errors, 6)

	// Row numbers are 1-based spreadsheet rows, header included.
	assert.Equal(t, 2, result.Errors[0].Row)
	assert.Equal(t, "SKU", result.Errors[0].Field)
	assert.Equal(t, "Nombre", result.Errors[1].Field)
	assert.Equal(t, "PrecioBase", result.Errors[2].Field)
	assert.Equal(t, "PorcentajeDescuento", result.Errors[3].Field)
	assert.Equal(t, "Stock", result.Errors[4].Field)
	assert.Equal(t, "Categoría", result.Errors[5].Field)

	p, err := products.FindBySKU(context.Background(), "OK-006")
	require.NoError(t, err)
	assert.True(t, p.Featured)
}

func TestImportProducts_InvalidFile(t *testing.T) {
	uc, _, _, _ := newImportEnv()
	_, err := uc.Execute(context.Background(), bytes.NewReader([]byte("esto no es un xlsx")))
	assert.Error(t, err)
}

func TestBuildImportTemplate(t *testing.T) {
	buf, err := BuildImportTemplate()
	require.NoError(t, err)
	data := buf.Bytes()

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Productos")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 2)
	assert.Equal(t, importColumns, rows[0])

	// The template round-trips through the importer.
	uc, products, _, _ := newImportEnv()
	result, err := uc.Execute(context.Background(), bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Empty(t, result.Errors)

	_, err = products.FindBySKU(context.Background(), "REM-001")
	require.NoError(t, err)
}
